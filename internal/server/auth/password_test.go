package auth

import "testing"

func TestHashPassword_SaltedAndVerifiable(t *testing.T) {
	t.Parallel()

	// Min cost keeps the test fast; the salting behavior is the same.
	h1, err := HashPassword("pw123", 4)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("pw123", 4)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if h1 == h2 {
		t.Fatalf("two hashes of the same plaintext must differ, both were %q", h1)
	}
	if !CheckPassword("pw123", h1) || !CheckPassword("pw123", h2) {
		t.Fatalf("CheckPassword must accept the original plaintext for both hashes")
	}
}

func TestCheckPassword_RejectsWrongPlaintext(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("correct", 4)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if CheckPassword("wrong", h) {
		t.Fatalf("CheckPassword accepted a wrong password")
	}
}

func TestCheckPassword_RejectsGarbageHash(t *testing.T) {
	t.Parallel()

	if CheckPassword("anything", "not-a-bcrypt-hash") {
		t.Fatalf("CheckPassword accepted a malformed hash")
	}
}

func TestHashPassword_InvalidCost(t *testing.T) {
	t.Parallel()

	if _, err := HashPassword("pw", 1000); err == nil {
		t.Fatalf("expected error for out-of-range cost")
	}
}
