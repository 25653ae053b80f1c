package hash_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/allandeluna/brainstash/internal/config"
	"github.com/allandeluna/brainstash/internal/platform/hash"
)

func newTestHasher() *hash.Argon2Hasher {
	cfg := &config.Argon2{
		Memory:     8192,
		Iterations: 1,
		Threads:    1,
		SaltLength: 16,
		KeyLength:  32,
	}
	return hash.NewArgon2Hasher(cfg, "test-pepper")
}

func TestArgon2Hasher_HashAndVerify(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher()
	hashed, err := hasher.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash() returned error: %v", err)
	}

	if !strings.HasPrefix(hashed, "$argon2id$") {
		t.Errorf("Hash() = %q, want $argon2id$ prefix", hashed)
	}

	ok, err := hasher.Verify("correct horse battery staple", hashed)
	if err != nil {
		t.Fatalf("Verify() returned error: %v", err)
	}
	if !ok {
		t.Error("Verify() = false for the original password")
	}
}

func TestArgon2Hasher_VerifyWrongPassword(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher()
	hashed, err := hasher.Hash("password-one")
	if err != nil {
		t.Fatalf("Hash() returned error: %v", err)
	}

	ok, err := hasher.Verify("password-two", hashed)
	if err != nil {
		t.Fatalf("Verify() returned error: %v", err)
	}
	if ok {
		t.Error("Verify() = true for the wrong password")
	}
}

func TestArgon2Hasher_VerifyMalformedHash(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher()
	if _, err := hasher.Verify("whatever", "not-a-hash"); !errors.Is(err, hash.ErrInvalidHash) {
		t.Errorf("Verify() error = %v, want %v", err, hash.ErrInvalidHash)
	}
}

func TestArgon2Hasher_HashesAreSalted(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher()
	first, err := hasher.Hash("same-password")
	if err != nil {
		t.Fatal(err)
	}
	second, err := hasher.Hash("same-password")
	if err != nil {
		t.Fatal(err)
	}

	if first == second {
		t.Error("two hashes of the same password are identical, salt is not applied")
	}
}
