package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferralCode(t *testing.T) {
	code, err := GenReferralCode("salt", 194372)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(code), referralCodeMinLength)

	fid, err := ParseReferralCode("salt", code)
	require.NoError(t, err)
	assert.Equal(t, int64(194372), fid)
}

func TestReferralCode_OtherSalt(t *testing.T) {
	code, err := GenReferralCode("salt", 194372)
	require.NoError(t, err)

	fid, err := ParseReferralCode("pepper", code)
	if err == nil {
		assert.NotEqual(t, int64(194372), fid)
	}
}

func TestParseReferralCode_Garbage(t *testing.T) {
	for _, code := range []string{"", "!!!", "0"} {
		_, err := ParseReferralCode("salt", code)
		assert.ErrorIs(t, err, ErrInvalidReferralCode, code)
	}
}
