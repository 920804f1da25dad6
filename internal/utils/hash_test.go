package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPassword      = "SecurePassword123!"
	testWrongPassword = "WrongPassword456!"
)

func TestHashPassword_Success(t *testing.T) {
	hash, err := HashPassword(testPassword)

	require.NoError(t, err, "HashPassword should not return error for valid password")
	assert.NotEmpty(t, hash, "Hash should not be empty")
	assert.NotEqual(t, testPassword, hash, "Hash should be different from password")
	assert.True(t, strings.HasPrefix(hash, "$2"), "Hash should be a bcrypt hash")
}

func TestHashPassword_EmptyPassword(t *testing.T) {
	hash, err := HashPassword("")

	assert.ErrorIs(t, err, ErrEmptyPassword, "Empty password is a validation error")
	assert.Empty(t, hash)
}

func TestHashPassword_UniqueHashes(t *testing.T) {
	hash1, err1 := HashPassword(testPassword)
	hash2, err2 := HashPassword(testPassword)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotEqual(t, hash1, hash2, "Same password should produce different hashes due to unique salt")
}

func TestVerifyPassword_Correct(t *testing.T) {
	hash, err := HashPassword(testPassword)
	require.NoError(t, err, "Setup: HashPassword should not fail")

	assert.True(t, VerifyPassword(testPassword, hash), "Password should match its hash")
}

func TestVerifyPassword_Incorrect(t *testing.T) {
	hash, err := HashPassword(testPassword)
	require.NoError(t, err, "Setup: HashPassword should not fail")

	assert.False(t, VerifyPassword(testWrongPassword, hash), "Wrong password should not match hash")
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	malformedHashes := []string{
		"",
		"plain-text-not-hash",
		"$2a$10$truncated",
	}

	for _, malformed := range malformedHashes {
		t.Run(malformed, func(t *testing.T) {
			assert.False(t, VerifyPassword(testPassword, malformed),
				"Malformed hash should never verify")
		})
	}
}

func TestVerifyPassword_TableDriven(t *testing.T) {
	testCases := []struct {
		name        string
		password    string
		testPass    string
		expectMatch bool
	}{
		{
			name:        "correct_password",
			password:    testPassword,
			testPass:    testPassword,
			expectMatch: true,
		},
		{
			name:        "incorrect_password",
			password:    testPassword,
			testPass:    testWrongPassword,
			expectMatch: false,
		},
		{
			name:        "case_sensitive",
			password:    "Password123!",
			testPass:    "password123!",
			expectMatch: false,
		},
		{
			name:        "whitespace_matters",
			password:    "Password123! ",
			testPass:    "Password123!",
			expectMatch: false,
		},
		{
			name:        "unicode_password",
			password:    "Şifre123!",
			testPass:    "Şifre123!",
			expectMatch: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			hash, err := HashPassword(tc.password)
			require.NoError(t, err, "Setup: HashPassword should not fail")

			assert.Equal(t, tc.expectMatch, VerifyPassword(tc.testPass, hash))
		})
	}
}

func BenchmarkHashPassword(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = HashPassword(testPassword)
	}
}

func BenchmarkVerifyPassword(b *testing.B) {
	hash, _ := HashPassword(testPassword)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = VerifyPassword(testPassword, hash)
	}
}
