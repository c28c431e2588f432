package security

import "testing"

func TestHashPasswordNeverStoresPlaintext(t *testing.T) {
	digest, err := HashPassword("hunter2")

	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	if digest == "hunter2" {
		t.Fatalf("digest equals the plaintext password")
	}

	if digest == "" {
		t.Fatalf("digest is empty")
	}
}

func TestCheckPasswordRoundTrip(t *testing.T) {
	digest, err := HashPassword("pw1")

	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	if err := CheckPassword(digest, "pw1"); err != nil {
		t.Fatalf("CheckPassword rejected the original plaintext: %v", err)
	}

	if err := CheckPassword(digest, "pw2"); err == nil {
		t.Fatalf("CheckPassword accepted a wrong password")
	}
}

func TestHashPasswordSaltsEachDigest(t *testing.T) {
	first, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	second, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	if first == second {
		t.Fatalf("two digests of the same password are identical, salting is broken")
	}
}
