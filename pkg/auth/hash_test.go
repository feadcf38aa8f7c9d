package auth

import "testing"

func TestHashPasswordDeterministic(t *testing.T) {
	a := HashPassword("admin123")
	b := HashPassword("admin123")
	if a != b {
		t.Fatalf("same input produced different digests: %s vs %s", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(a))
	}
}

func TestHashPasswordKnownDigest(t *testing.T) {
	// sha256("admin123") — the digest format is load-bearing: stored
	// credentials were written with it.
	const want = "240be518fabd2724ddb6f04eeb1da5967448d7e831c08c8fa822809f74c720a9"
	if got := HashPassword("admin123"); got != want {
		t.Fatalf("digest mismatch: got %s, want %s", got, want)
	}
}

func TestCheckPassword(t *testing.T) {
	digest := HashPassword("secret123")
	if !CheckPassword(digest, "secret123") {
		t.Error("correct password rejected")
	}
	if CheckPassword(digest, "secret124") {
		t.Error("wrong password accepted")
	}
	if CheckPassword(digest, "") {
		t.Error("empty password accepted")
	}
}
