package util

import "testing"

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "hunter2hunter2" {
		t.Fatalf("HashPassword() returned the plaintext")
	}

	if !ComparePassword(hash, "hunter2hunter2") {
		t.Errorf("ComparePassword() rejected the correct password")
	}
	if ComparePassword(hash, "wrong-password") {
		t.Errorf("ComparePassword() accepted a wrong password")
	}
}
