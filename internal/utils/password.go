package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a plaintext password with bcrypt.  The cost is
// caller-supplied; UserRepo.Create passes Config.BcryptCost
// (BCRYPT_COST) so hashing strength is an operational knob, not a
// compile-time constant.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword reports whether plain matches the stored bcrypt
// hash.  bcrypt's comparison is constant-time, so login timing does
// not reveal how much of a guess was correct.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
