package utils

import (
	"testing"
	"time"

	"github.com/cinebook/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret          = "test-secret-key-for-jwt-testing"
	testWrongSecret     = "wrong-secret-key-for-jwt-testing"
	testTokenDuration   = 1 * time.Hour
	testExpiredDuration = -1 * time.Hour
)

func testUser(role models.Role) *models.User {
	return &models.User{
		ID:    uuid.NewString(),
		Name:  "testuser",
		Email: "test@example.com",
		Role:  role,
	}
}

func TestGenerateToken_Success(t *testing.T) {
	user := testUser(models.RoleUser)

	token, err := GenerateToken(user, testSecret, testTokenDuration)

	require.NoError(t, err, "GenerateToken should not return error for valid input")
	assert.NotEmpty(t, token, "Token should not be empty")
	assert.Contains(t, token, ".", "JWT token should contain dots")
}

func TestGenerateToken_DifferentRoles(t *testing.T) {
	roles := []models.Role{models.RoleUser, models.RoleAdmin}

	for _, role := range roles {
		t.Run(string(role), func(t *testing.T) {
			user := testUser(role)

			token, err := GenerateToken(user, testSecret, testTokenDuration)
			require.NoError(t, err, "GenerateToken should work for all roles")

			claims, err := ValidateToken(token, testSecret)
			require.NoError(t, err)
			assert.Equal(t, role, claims.Role, "Token should carry the correct role")
		})
	}
}

func TestValidateToken_Success(t *testing.T) {
	user := testUser(models.RoleUser)
	token, err := GenerateToken(user, testSecret, testTokenDuration)
	require.NoError(t, err, "Setup: GenerateToken should not fail")

	claims, err := ValidateToken(token, testSecret)

	require.NoError(t, err, "ValidateToken should not return error for valid token")
	assert.NotNil(t, claims)
	assert.Equal(t, user.ID, claims.UserID, "UserID should match")
	assert.Equal(t, user.Role, claims.Role, "Role should match")
	assert.True(t, claims.ExpiresAt.Time.After(time.Now()), "Token should not be expired")
}

func TestValidateToken_ExpiredToken(t *testing.T) {
	user := testUser(models.RoleUser)
	token, err := GenerateToken(user, testSecret, testExpiredDuration)
	require.NoError(t, err, "Setup: GenerateToken should not fail")

	claims, err := ValidateToken(token, testSecret)

	assert.ErrorIs(t, err, ErrExpiredToken, "Expired token must be distinguishable internally")
	assert.Nil(t, claims)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	user := testUser(models.RoleUser)
	token, err := GenerateToken(user, testSecret, testTokenDuration)
	require.NoError(t, err, "Setup: GenerateToken should not fail")

	claims, err := ValidateToken(token, testWrongSecret)

	assert.ErrorIs(t, err, ErrInvalidToken, "Token signed with a different secret is invalid")
	assert.Nil(t, claims)
}

func TestValidateToken_TamperedToken(t *testing.T) {
	user := testUser(models.RoleAdmin)
	token, err := GenerateToken(user, testSecret, testTokenDuration)
	require.NoError(t, err, "Setup: GenerateToken should not fail")

	tamperedToken := token[:len(token)-5] + "XXXXX"

	claims, err := ValidateToken(tamperedToken, testSecret)

	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestValidateToken_InvalidToken(t *testing.T) {
	invalidTokens := []string{
		"",
		"invalid.token.here",
		"not-a-jwt-token",
		"a.b",
	}

	for _, invalidToken := range invalidTokens {
		t.Run(invalidToken, func(t *testing.T) {
			claims, err := ValidateToken(invalidToken, testSecret)

			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

func TestToken_RoundTrip(t *testing.T) {
	users := []*models.User{
		testUser(models.RoleUser),
		testUser(models.RoleAdmin),
	}

	for _, user := range users {
		t.Run(string(user.Role), func(t *testing.T) {
			token, err := GenerateToken(user, testSecret, testTokenDuration)
			require.NoError(t, err, "GenerateToken should succeed")

			claims, err := ValidateToken(token, testSecret)
			require.NoError(t, err, "ValidateToken should succeed")

			assert.Equal(t, user.ID, claims.UserID)
			assert.Equal(t, user.Role, claims.Role)
		})
	}
}

func BenchmarkGenerateToken(b *testing.B) {
	user := testUser(models.RoleUser)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = GenerateToken(user, testSecret, testTokenDuration)
	}
}

func BenchmarkValidateToken(b *testing.B) {
	user := testUser(models.RoleUser)
	token, _ := GenerateToken(user, testSecret, testTokenDuration)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ValidateToken(token, testSecret)
	}
}
