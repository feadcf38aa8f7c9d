package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(filepath.Join(t.TempDir(), "no-such.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MongoURL != defaultMongoURL {
		t.Errorf("MongoURL = %q, want default", cfg.MongoURL)
	}
	if cfg.AppPort != "8080" {
		t.Errorf("AppPort = %q, want 8080", cfg.AppPort)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v, want wildcard", cfg.CORSOrigins)
	}
	if cfg.LogMongo {
		t.Error("LogMongo should default to off")
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := `
# comment line
DB_NAME=bakery
JWT_SECRET="super secret"
CORS_ORIGINS=https://cafe.example.com, https://admin.example.com
LOG_MONGO=true
MAX_BODY_BYTES=1048576
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBName != "bakery" {
		t.Errorf("DBName = %q", cfg.DBName)
	}
	if cfg.JWTSecret != "super secret" {
		t.Errorf("JWTSecret = %q, quotes should be stripped", cfg.JWTSecret)
	}
	want := []string{"https://cafe.example.com", "https://admin.example.com"}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[0] != want[0] || cfg.CORSOrigins[1] != want[1] {
		t.Errorf("CORSOrigins = %v, want %v", cfg.CORSOrigins, want)
	}
	if !cfg.LogMongo {
		t.Error("LOG_MONGO=true should enable the mongo log sink")
	}
	if cfg.MaxBodyBytes != 1<<20 {
		t.Errorf("MaxBodyBytes = %d", cfg.MaxBodyBytes)
	}
}

func TestEnvironWinsOverDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("APP_PORT=3000\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("APP_PORT", "9090")

	cfg, err := load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AppPort != "9090" {
		t.Errorf("AppPort = %q, environment should win", cfg.AppPort)
	}
}

func TestBadMaxBodyFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("MAX_BODY_BYTES=banana\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MaxBodyBytes != defaultMaxBodyBytes {
		t.Errorf("MaxBodyBytes = %d, want default", cfg.MaxBodyBytes)
	}
}
