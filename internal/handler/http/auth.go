package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	domainauth "github.com/sigea-hr/attendance-backend-go/internal/domain/auth"
	"github.com/sigea-hr/attendance-backend-go/internal/handler/http/response"
	"github.com/sigea-hr/attendance-backend-go/internal/pkg/jwt"
	"github.com/sigea-hr/attendance-backend-go/internal/service/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.AuthService
	jwtService  jwt.Service
}

func NewAuthHandler(authService auth.AuthService, jwtService jwt.Service) AuthHandler {
	return &authHandlerImpl{
		authService: authService,
		jwtService:  jwtService,
	}
}

func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req domainauth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	user, token, expiresAt, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.SessionCookie(token, expiresAt))
	response.Success(w, user)
}

func (h *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.jwtService.ExpiredSessionCookie())
	response.SuccessWithMessage(w, "Session closed", nil)
}

// Me re-validates the provider token inside the session and returns the
// account, so the client can tell a revoked account from an expired cookie.
func (h *authHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, domainauth.ErrInvalidToken)
		return
	}

	idToken, ok := claims["id_token"].(string)
	if !ok || idToken == "" {
		response.HandleError(w, domainauth.ErrInvalidToken)
		return
	}

	user, err := h.authService.VerifySession(r.Context(), idToken)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, user)
}
