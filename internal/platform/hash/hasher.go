package hash

// Hasher hashes secrets one-way and verifies a plaintext against a
// stored hash in constant time.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hashed string) (bool, error)
}
