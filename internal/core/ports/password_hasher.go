package ports

// PasswordHasher produces and checks one-way salted password digests.
// The interface keeps the core free of any particular algorithm.
type PasswordHasher interface {
	// Hash generates a salted digest from a plaintext password. The same
	// input yields a different digest on every call.
	Hash(password string) (string, error)

	// Verify reports whether plaintext matches the digest under the salt
	// and cost parameters embedded in it.
	Verify(password, digest string) bool
}
