package models

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenWithSubject(subject string) *Token {
	return &Token{
		TokenClaims: TokenClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: subject},
		},
	}
}

func TestToken_GetUserID(t *testing.T) {
	userID, err := tokenWithSubject("42").GetUserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestToken_GetUserID_InvalidSubject(t *testing.T) {
	tests := []struct {
		name    string
		subject string
	}{
		{name: "empty subject", subject: ""},
		{name: "non-numeric subject", subject: "alice"},
		{name: "overflowing subject", subject: "99999999999999999999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tokenWithSubject(tt.subject).GetUserID()
			assert.Error(t, err)
		})
	}
}

func TestToken_String(t *testing.T) {
	token := Token{SignedString: "aaaa.bbbb.cccc"}
	assert.Equal(t, "aaaa.bbbb.cccc", token.String())
}
