package jwt

import (
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/sigea-hr/attendance-backend-go/internal/pkg/identity"
)

// SessionCookieName is the application session cookie.
const SessionCookieName = "__session"

type Service interface {
	// GenerateSessionToken signs the authenticated identity into a session JWT.
	GenerateSessionToken(user identity.User) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	SessionCookie(token string, expiresAt int64) *http.Cookie
	ExpiredSessionCookie() *http.Cookie
}

type JWTService struct {
	secretKey     string
	sessionMaxAge time.Duration
	tokenAuth     *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, sessionMaxAge time.Duration) Service {
	return &JWTService{
		secretKey:     secretKey,
		sessionMaxAge: sessionMaxAge,
		tokenAuth:     jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateSessionToken(user identity.User) (token string, expiresAt int64, err error) {
	expiresAt = time.Now().Add(j.sessionMaxAge).Unix()

	claims := map[string]interface{}{
		"uid":          user.UID,
		"email":        user.Email,
		"display_name": j.returnValueOrNil(user.DisplayName),
		"photo_url":    j.returnValueOrNil(user.PhotoURL),
		"id_token":     user.IDToken,
		"type":         "session",
		"exp":          expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) SessionCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Unix(expiresAt, 0),
		MaxAge:   int(j.sessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
}

func (j *JWTService) ExpiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// TokenFromSessionCookie extracts the session token for the jwtauth verifier.
func TokenFromSessionCookie(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (j *JWTService) returnValueOrNil(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}
