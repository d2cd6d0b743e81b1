package commands

import (
	"context"
	"log/slog"

	"hotel-ops/internal/domain/user"
	"hotel-ops/internal/pkg/clock"
	"hotel-ops/internal/pkg/errs"
	"hotel-ops/internal/pkg/jwt"
	"hotel-ops/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type LoginResult struct {
	UserID    uuid.UUID
	Role      user.Role
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, credentials user.Credentials) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(userRepo UserRepository, jwtService *jwt.Service, clock clock.Clock) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		clock:      clock,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, credentials user.Credentials) (*LoginResult, error) {
	snap, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(snap.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	accessToken, err := a.jwtService.GenerateAccessToken(snap.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(snap.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	if err := a.userRepo.UpdateLastLogin(ctx, snap.ID, a.clock.Now()); err != nil {
		// Login itself succeeded; stale lastLogin is tolerable.
		slog.Warn("failed to update last login", "user_id", snap.ID, "error", err)
	}

	return &LoginResult{
		UserID: snap.ID,
		Role:   role,
		TokenPair: &TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	snap, err := a.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if !snap.IsActive {
		return nil, ErrUserInactive
	}

	accessToken, err := a.jwtService.GenerateAccessToken(claims.UserID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	newRefreshToken, err := a.jwtService.GenerateRefreshToken(claims.UserID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*UserSnapshot, error) {
	snap, err := a.userRepo.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration.
		return nil, ErrInvalidCredentials
	}
	if !snap.IsActive {
		return nil, ErrUserInactive
	}
	if err := password.ComparePassword(snap.PasswordHash, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}
	return snap, nil
}
