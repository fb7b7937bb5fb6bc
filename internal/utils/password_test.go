package utils

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("rahasia123", 4)
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "rahasia123" {
		t.Error("HashPassword stored the plaintext")
	}
	if !VerifyPassword(hash, "rahasia123") {
		t.Error("VerifyPassword rejected the correct password")
	}
	if VerifyPassword(hash, "salah") {
		t.Error("VerifyPassword accepted a wrong password")
	}
}
