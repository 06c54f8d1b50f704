package utils

import (
	"testing"
	"time"
)

func TestGenerateAndExtract(t *testing.T) {
	token, err := GenerateToken("user-1", "desk@bank.example", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	id, err := ExtractIDFromToken(token)
	if err != nil {
		t.Fatalf("ExtractIDFromToken: %v", err)
	}
	if id != "user-1" {
		t.Fatalf("subject = %q, want user-1", id)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-1", "desk@bank.example", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ExtractIDFromToken(token); err == nil {
		t.Fatal("expired token should not validate")
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-1", "desk@bank.example", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	tampered := token[:len(token)-2] + "xx"
	if _, err := ExtractIDFromToken(tampered); err == nil {
		t.Fatal("tampered token should not validate")
	}
}

func TestHashTokenDeterministic(t *testing.T) {
	a := HashToken("abc")
	b := HashToken("abc")
	if a != b {
		t.Fatal("hash should be deterministic")
	}
	if a == HashToken("abd") {
		t.Fatal("different tokens should hash differently")
	}
	if len(a) != 64 {
		t.Fatalf("hash should be 64 hex chars, got %d", len(a))
	}
}
