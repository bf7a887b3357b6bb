// file: internals/helpers/auth/password.go
package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// Kredensial sementara untuk row bulk-upload tanpa password.
// Di-hash persis seperti jalur create tunggal — tidak pernah plaintext di DB.
const DefaultTempPassword = "kampusku123"

func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CheckPassword(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

// GenerateOtp menghasilkan kode numerik n digit (crypto/rand).
func GenerateOtp(n int) (string, error) {
	if n <= 0 {
		n = 6
	}
	out := make([]byte, n)
	for i := range out {
		v, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("generate otp: %w", err)
		}
		out[i] = byte('0' + v.Int64())
	}
	return string(out), nil
}
