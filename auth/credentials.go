package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/Bvqlz/Todo/apperror"
)

// HashPassword hashes a plaintext password with bcrypt. bcrypt salts
// internally, so equal passwords produce distinct hashes. A failure of the
// primitive itself (not a property of the input) is surfaced as a hashing
// error, which handlers map to a server-side 500.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", apperror.NewHashingError("failed to hash password", err)
	}
	return string(hashed), nil
}

// CheckPassword reports whether plain matches the stored bcrypt hash.
// The comparison is constant-time inside bcrypt. Any mismatch, including a
// malformed stored hash, reports false rather than an error: callers only
// need a yes/no answer and must not distinguish the failure modes.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
