package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("pw1")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "pw1" {
		t.Fatal("hash equals the plaintext")
	}

	if !CheckPassword(hash, "pw1") {
		t.Error("CheckPassword rejected the correct password")
	}
	if CheckPassword(hash, "wrongpw") {
		t.Error("CheckPassword accepted a wrong password")
	}
}

func TestHashIsSalted(t *testing.T) {
	h1, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password are identical, salting is broken")
	}
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	// A garbage stored hash must verify false, not panic or error out.
	if CheckPassword("not-a-bcrypt-hash", "anything") {
		t.Error("CheckPassword accepted a malformed hash")
	}
	if CheckPassword("", "anything") {
		t.Error("CheckPassword accepted an empty hash")
	}
}
