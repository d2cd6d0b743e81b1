//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-ops/internal/domain/user"
	"hotel-ops/internal/infra/docstore"
	"hotel-ops/internal/infra/repository"
	"hotel-ops/internal/pkg/clock"
	"hotel-ops/internal/pkg/jwt"
	"hotel-ops/internal/pkg/password"
	"hotel-ops/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (commands.AuthCommands, *repository.UserRepository, *jwt.Service, uuid.UUID) {
	t.Helper()

	store := docstore.NewMemoryStore()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	userRepo := repository.NewUserRepository(store, clk)
	jwtService := jwt.NewService("test-secret-key-for-tests-only", 15*time.Minute, 168*time.Hour)

	hash, err := password.HashPassword("correct-horse")
	require.NoError(t, err)

	userID := uuid.New()
	require.NoError(t, userRepo.Create(context.Background(), commands.UserSnapshot{
		ID:           userID,
		Email:        "manager@hotel.test",
		PasswordHash: hash,
		Role:         user.RoleManager.String(),
		IsActive:     true,
	}))

	return commands.NewAuthCommands(userRepo, jwtService, clk), userRepo, jwtService, userID
}

func mustCredentials(t *testing.T, email, pass string) user.Credentials {
	t.Helper()
	e, err := user.NewEmail(email)
	require.NoError(t, err)
	p, err := user.NewPassword(pass)
	require.NoError(t, err)
	return user.NewCredentials(e, p)
}

func TestLogin(t *testing.T) {
	auth, userRepo, jwtService, userID := newAuthFixture(t)
	ctx := context.Background()

	result, err := auth.Login(ctx, mustCredentials(t, "manager@hotel.test", "correct-horse"))
	require.NoError(t, err)
	assert.Equal(t, userID, result.UserID)
	assert.Equal(t, user.RoleManager, result.Role)
	require.NotNil(t, result.TokenPair)

	claims, err := jwtService.ValidateToken(result.TokenPair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)

	snap, err := userRepo.FindByID(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, snap.LastLogin)
}

func TestLogin_WrongPassword(t *testing.T) {
	auth, _, _, _ := newAuthFixture(t)

	_, err := auth.Login(context.Background(), mustCredentials(t, "manager@hotel.test", "wrong-password"))
	require.ErrorIs(t, err, commands.ErrInvalidCredentials)
}

func TestLogin_UnknownUserLooksLikeWrongPassword(t *testing.T) {
	auth, _, _, _ := newAuthFixture(t)

	_, err := auth.Login(context.Background(), mustCredentials(t, "nobody@hotel.test", "correct-horse"))
	require.ErrorIs(t, err, commands.ErrInvalidCredentials)
}

func TestRefreshToken(t *testing.T) {
	auth, _, jwtService, userID := newAuthFixture(t)
	ctx := context.Background()

	result, err := auth.Login(ctx, mustCredentials(t, "manager@hotel.test", "correct-horse"))
	require.NoError(t, err)

	pair, err := auth.RefreshToken(ctx, result.TokenPair.RefreshToken)
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestRefreshToken_AccessTokenRejected(t *testing.T) {
	auth, _, _, _ := newAuthFixture(t)
	ctx := context.Background()

	result, err := auth.Login(ctx, mustCredentials(t, "manager@hotel.test", "correct-horse"))
	require.NoError(t, err)

	_, err = auth.RefreshToken(ctx, result.TokenPair.AccessToken)
	require.ErrorIs(t, err, commands.ErrTokenValidation)
}
