package seeders

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestRegisteredSeeders(t *testing.T) {
	names := Names()
	if len(names) < 2 {
		t.Fatalf("expected catalog and admin seeders registered, got %v", names)
	}
	if names[0] != "catalog" || names[1] != "admin" {
		t.Errorf("seeders out of registration order: %v", names)
	}
}

// swapRegistry empties the global registry for one test and restores it
// afterwards.
func swapRegistry(t *testing.T) {
	t.Helper()
	mu.Lock()
	saved := entries
	entries = nil
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		entries = saved
		mu.Unlock()
	})
}

func TestRunAllStopsOnError(t *testing.T) {
	swapRegistry(t)

	boom := errors.New("boom")
	var ran []string
	Register("first", func(context.Context, *mongo.Database) error {
		ran = append(ran, "first")
		return nil
	})
	Register("failing", func(context.Context, *mongo.Database) error { return boom })
	Register("never", func(context.Context, *mongo.Database) error {
		ran = append(ran, "never")
		return nil
	})

	err := RunAll(context.Background(), nil)
	if !errors.Is(err, boom) {
		t.Fatalf("expected seeder error to propagate, got %v", err)
	}
	if len(ran) != 1 || ran[0] != "first" {
		t.Errorf("seeders after the failure must not run, ran: %v", ran)
	}
}

func TestRunAllEmptyRegistry(t *testing.T) {
	swapRegistry(t)
	if err := RunAll(context.Background(), nil); err != nil {
		t.Fatalf("empty registry should be a no-op, got %v", err)
	}
}
