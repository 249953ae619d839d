package utils

import "testing"

func TestHashPasswordVerifies(t *testing.T) {
	hash, err := HashPassword("Secret@123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "Secret@123" {
		t.Fatal("hash equals the input")
	}
	if !CheckPasswordHash("Secret@123", hash) {
		t.Fatal("hash does not verify against the original password")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Fatal("hash verified against the wrong password")
	}
}
