package utils

import (
	"strings"
	"testing"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	password := "userpassword123"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "" {
		t.Fatal("expected non-empty hash")
	}
	if hash == password {
		t.Fatal("hash must not equal the raw password")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("expected a bcrypt hash, got: %s", hash)
	}

	if err := CheckPassword(hash, password); err != nil {
		t.Errorf("expected hash to match its own password, got: %v", err)
	}
}

func TestHashPassword_Salted(t *testing.T) {
	password := "same-password"

	hash1, err := HashPassword(password)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	hash2, err := HashPassword(password)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if hash1 == hash2 {
		t.Error("two hashes of the same password must differ due to the salt")
	}
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("correct-password")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if err := CheckPassword(hash, "wrong-password"); err == nil {
		t.Error("expected error for a non-matching password, got nil")
	}
}

func TestCheckPassword_NotAHash(t *testing.T) {
	if err := CheckPassword("not-a-bcrypt-hash", "whatever"); err == nil {
		t.Error("expected error for a malformed hash, got nil")
	}
}
