package auth

import (
	"context"
	"fmt"

	"github.com/sigea-hr/attendance-backend-go/internal/domain/auth"
	"github.com/sigea-hr/attendance-backend-go/internal/pkg/identity"
	"github.com/sigea-hr/attendance-backend-go/internal/pkg/jwt"
)

type AuthService interface {
	// Login verifies the credentials against the identity provider and
	// returns a signed session token for the cookie.
	Login(ctx context.Context, req auth.LoginRequest) (auth.SessionResponse, string, int64, error)

	// VerifySession re-validates the ID token embedded in a session against
	// the provider, so revoked accounts lose access before the cookie expires.
	VerifySession(ctx context.Context, idToken string) (auth.SessionResponse, error)
}

type authServiceImpl struct {
	provider   identity.Provider
	jwtService jwt.Service
}

func NewAuthService(provider identity.Provider, jwtService jwt.Service) AuthService {
	return &authServiceImpl{
		provider:   provider,
		jwtService: jwtService,
	}
}

func (s *authServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.SessionResponse, string, int64, error) {
	if err := req.Validate(); err != nil {
		return auth.SessionResponse{}, "", 0, err
	}

	user, err := s.provider.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		if identity.IsCredentialError(err) {
			return auth.SessionResponse{}, "", 0, auth.ErrInvalidCredentials
		}
		return auth.SessionResponse{}, "", 0, fmt.Errorf("failed to sign in: %w", err)
	}

	token, expiresAt, err := s.jwtService.GenerateSessionToken(user)
	if err != nil {
		return auth.SessionResponse{}, "", 0, fmt.Errorf("failed to generate session token: %w", err)
	}

	return toSessionResponse(user), token, expiresAt, nil
}

func (s *authServiceImpl) VerifySession(ctx context.Context, idToken string) (auth.SessionResponse, error) {
	user, err := s.provider.VerifyToken(ctx, idToken)
	if err != nil {
		if identity.IsCredentialError(err) {
			return auth.SessionResponse{}, auth.ErrInvalidToken
		}
		return auth.SessionResponse{}, fmt.Errorf("failed to verify token: %w", err)
	}

	return toSessionResponse(user), nil
}

func toSessionResponse(user identity.User) auth.SessionResponse {
	return auth.SessionResponse{
		UID:         user.UID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		PhotoURL:    user.PhotoURL,
	}
}
