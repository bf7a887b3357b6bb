// file: internals/features/campus/hods/model/campus_model_test.go
package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOtpRoundTrip(t *testing.T) {
	purposes := []string{
		CampusOtpPurposeRegister,
		CampusOtpPurposeUpdate,
		CampusOtpPurposeDelete,
	}
	for _, p := range purposes {
		t.Run(p, func(t *testing.T) {
			var m CampusModel
			exp := time.Now().Add(10 * time.Minute)

			m.SetOtp(p, "482913", exp)
			code, expiry := m.OtpFor(p)
			require.NotNil(t, code)
			require.NotNil(t, expiry)
			assert.Equal(t, "482913", *code)
			assert.Equal(t, exp, *expiry)

			m.ClearOtp(p)
			code, expiry = m.OtpFor(p)
			assert.Nil(t, code)
			assert.Nil(t, expiry)
		})
	}
}

func TestOtpPurposesIsolated(t *testing.T) {
	var m CampusModel
	exp := time.Now().Add(10 * time.Minute)

	m.SetOtp(CampusOtpPurposeRegister, "111111", exp)
	m.SetOtp(CampusOtpPurposeDelete, "222222", exp)
	m.ClearOtp(CampusOtpPurposeRegister)

	code, _ := m.OtpFor(CampusOtpPurposeDelete)
	require.NotNil(t, code)
	assert.Equal(t, "222222", *code)
}

func TestOtpForUnknownPurpose(t *testing.T) {
	var m CampusModel
	code, expiry := m.OtpFor("refresh")
	assert.Nil(t, code)
	assert.Nil(t, expiry)
}
