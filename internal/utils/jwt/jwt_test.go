package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndExtract(t *testing.T) {
	token, err := CreateToken(42, "secret", time.Hour)
	require.NoError(t, err)

	userID, err := ExtractUserIDFromToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestExtract_Rejects(t *testing.T) {
	valid, err := CreateToken(42, "secret", time.Hour)
	require.NoError(t, err)
	expired, err := CreateToken(42, "secret", -time.Minute)
	require.NoError(t, err)
	anonymous, err := CreateToken(0, "secret", time.Hour)
	require.NoError(t, err)

	tests := map[string]struct {
		token  string
		secret string
	}{
		"wrong secret": {valid, "other"},
		"expired":      {expired, "secret"},
		"no user":      {anonymous, "secret"},
		"garbage":      {"not-a-token", "secret"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ExtractUserIDFromToken(tt.token, tt.secret)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
