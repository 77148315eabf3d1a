package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "minifeed"
	testSignKey = "test-sign-key"
)

func TestGenerateJWTToken_RoundTrip(t *testing.T) {
	// Arrange & Act
	token, err := GenerateJWTToken(testIssuer, "alice", time.Hour, testSignKey)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)
	assert.Equal(t, "alice", token.Username)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "alice", parsed.Username)
	assert.Equal(t, token.SignedString, parsed.SignedString)
}

// The issued claims travel on the returned model, so callers can read the
// expiry (e.g. for a cookie Expires attribute) without re-parsing the token.
func TestGenerateJWTToken_CarriesClaims(t *testing.T) {
	before := time.Now()
	token, err := GenerateJWTToken(testIssuer, "alice", time.Hour, testSignKey)
	require.NoError(t, err)

	require.NotNil(t, token.ExpiresAt)
	assert.WithinDuration(t, before.Add(time.Hour), token.ExpiresAt.Time, 5*time.Second)
	assert.Equal(t, testIssuer, token.Issuer)
	assert.Equal(t, "alice", token.Subject)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	require.NotNil(t, parsed.ExpiresAt)
	assert.Equal(t, token.ExpiresAt.Unix(), parsed.ExpiresAt.Unix())
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		username string
		duration time.Duration
		signKey  string
	}{
		{name: "empty issuer", issuer: "", username: "alice", duration: time.Hour, signKey: testSignKey},
		{name: "empty username", issuer: testIssuer, username: "", duration: time.Hour, signKey: testSignKey},
		{name: "zero duration", issuer: testIssuer, username: "alice", duration: 0, signKey: testSignKey},
		{name: "empty sign key", issuer: testIssuer, username: "alice", duration: time.Hour, signKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.username, tt.duration, tt.signKey)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	// Arrange: a token that expired one hour ago.
	token, err := GenerateJWTToken(testIssuer, "alice", -time.Hour, testSignKey)
	require.NoError(t, err)

	// Act
	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateAndParseJWTToken_WrongSignKey(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, "alice", time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "another-key", testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token, err := GenerateJWTToken("someone-else", "alice", time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", testSignKey, testIssuer)
	assert.Error(t, err)
}
