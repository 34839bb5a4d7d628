package utils

import "testing"

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if hash == "secret1" {
		t.Fatalf("hash must not equal the plaintext")
	}

	if !CheckPassword("secret1", hash) {
		t.Fatalf("expected correct password to verify")
	}
}

func TestCheckPasswordRejectsWrongPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	if CheckPassword("secret2", hash) {
		t.Fatalf("expected wrong password to fail")
	}
	if CheckPassword("", hash) {
		t.Fatalf("expected empty password to fail")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	second, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	if first == second {
		t.Fatalf("expected distinct salts to yield distinct hashes")
	}
}
