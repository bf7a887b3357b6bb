// file: internals/helpers/auth/password_test.go
package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("rahasia-banget")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia-banget", hashed)

	assert.True(t, CheckPassword(hashed, "rahasia-banget"))
	assert.False(t, CheckPassword(hashed, "salah"))
	assert.False(t, CheckPassword("bukan-hash", "rahasia-banget"))
}

func TestGenerateOtp(t *testing.T) {
	otp, err := GenerateOtp(6)
	require.NoError(t, err)
	require.Len(t, otp, 6)
	for _, r := range otp {
		assert.True(t, r >= '0' && r <= '9')
	}

	// dua panggilan hampir pasti beda; kalau sama pun bukan bug,
	// tapi panjang & digit-only harus selalu terpenuhi
	otp2, err := GenerateOtp(6)
	require.NoError(t, err)
	require.Len(t, otp2, 6)
}
