package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigea-hr/attendance-backend-go/internal/domain/auth"
	"github.com/sigea-hr/attendance-backend-go/internal/pkg/identity"
	"github.com/sigea-hr/attendance-backend-go/internal/pkg/jwt"
)

type fakeProvider struct {
	users map[string]string // email -> password
}

func (f *fakeProvider) SignIn(_ context.Context, email, password string) (identity.User, error) {
	stored, ok := f.users[email]
	if !ok {
		return identity.User{}, &identity.Error{Code: "EMAIL_NOT_FOUND", Message: "no account"}
	}
	if stored != password {
		return identity.User{}, &identity.Error{Code: "INVALID_PASSWORD", Message: "wrong password"}
	}
	return identity.User{UID: "uid-" + email, Email: email, IDToken: "token-" + email}, nil
}

func (f *fakeProvider) VerifyToken(_ context.Context, idToken string) (identity.User, error) {
	for email := range f.users {
		if idToken == "token-"+email {
			return identity.User{UID: "uid-" + email, Email: email, IDToken: idToken}, nil
		}
	}
	return identity.User{}, &identity.Error{Code: "USER_DISABLED", Message: "revoked"}
}

func (f *fakeProvider) CreateUser(_ context.Context, email, password string) (string, error) {
	f.users[email] = password
	return "uid-" + email, nil
}

func newTestAuthService() AuthService {
	provider := &fakeProvider{users: map[string]string{"ana@example.com": "secret123"}}
	jwtService := jwt.NewJWTService("test-secret-key", 120*time.Hour)
	return NewAuthService(provider, jwtService)
}

func TestLogin_Success(t *testing.T) {
	svc := newTestAuthService()

	user, token, expiresAt, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ana@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "uid-ana@example.com", user.UID)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	// The session must outlive a work week.
	fiveDays := time.Now().Add(120*time.Hour - time.Minute).Unix()
	assert.Greater(t, expiresAt, fiveDays)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestAuthService()

	_, _, _, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ana@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestAuthService()

	_, _, _, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_RejectsInvalidRequest(t *testing.T) {
	svc := newTestAuthService()

	_, _, _, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "not-an-email",
		Password: "",
	})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestVerifySession(t *testing.T) {
	svc := newTestAuthService()

	user, err := svc.VerifySession(context.Background(), "token-ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)

	_, err = svc.VerifySession(context.Background(), "token-revoked")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
