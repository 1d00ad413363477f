package service

import (
	"strings"
	"testing"
)

func TestHasher_RoundTrip(t *testing.T) {
	h := NewHasher(4)

	hash, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "s3cret" {
		t.Fatalf("expected hashed output, got plaintext")
	}
	if !h.Verify("s3cret", hash) {
		t.Fatalf("Verify rejected the original password")
	}
	if h.Verify("wrongpass", hash) {
		t.Fatalf("Verify accepted a wrong password")
	}
}

func TestHasher_SaltedPerCall(t *testing.T) {
	h := NewHasher(4)

	h1, err := h.Hash("same-input")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	h2, err := h.Hash("same-input")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected different hashes for identical input")
	}
}

func TestHasher_CostOutOfRangeFallsBack(t *testing.T) {
	h := NewHasher(99)

	hash, err := h.Hash("pw")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	// bcrypt encodes the cost in the hash prefix, e.g. $2a$10$...
	if !strings.HasPrefix(hash, "$2a$10$") {
		t.Fatalf("expected default cost 10 in hash, got %s", hash[:7])
	}
}
