package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// User is the account profile returned by the credential provider.
type User struct {
	UID         string
	Email       string
	DisplayName *string
	PhotoURL    *string
	IDToken     string
}

// Provider is the opaque external credential issuer. It owns passwords and
// tokens; the application never stores either.
type Provider interface {
	// SignIn exchanges email+password for the account uid and an ID token.
	SignIn(ctx context.Context, email, password string) (User, error)

	// VerifyToken validates an ID token server-side and returns the account
	// it belongs to.
	VerifyToken(ctx context.Context, idToken string) (User, error)

	// CreateUser registers a new account and returns its uid.
	CreateUser(ctx context.Context, email, password string) (string, error)
}

// Error is a provider-level failure carrying the remote error code.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("identity provider: %s (%s)", e.Message, e.Code)
}

// IsCredentialError reports whether err is a sign-in rejection rather than a
// transport or provider failure.
func IsCredentialError(err error) bool {
	provErr, ok := err.(*Error)
	if !ok {
		return false
	}
	switch provErr.Code {
	case "EMAIL_NOT_FOUND", "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS", "USER_DISABLED":
		return true
	}
	return false
}

type restProvider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewRESTProvider returns a Provider speaking the identity-toolkit style
// JSON-over-HTTP account API.
func NewRESTProvider(baseURL, apiKey string) Provider {
	return &restProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type accountPayload struct {
	Email             string `json:"email,omitempty"`
	Password          string `json:"password,omitempty"`
	IDToken           string `json:"idToken,omitempty"`
	ReturnSecureToken bool   `json:"returnSecureToken,omitempty"`
}

type accountResponse struct {
	LocalID     string `json:"localId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoUrl"`
	IDToken     string `json:"idToken"`
	Users       []struct {
		LocalID     string `json:"localId"`
		Email       string `json:"email"`
		DisplayName string `json:"displayName"`
		PhotoURL    string `json:"photoUrl"`
	} `json:"users"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (p *restProvider) SignIn(ctx context.Context, email, password string) (User, error) {
	res, err := p.post(ctx, "accounts:signInWithPassword", accountPayload{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return User{}, err
	}

	return User{
		UID:         res.LocalID,
		Email:       res.Email,
		DisplayName: emptyAsNil(res.DisplayName),
		PhotoURL:    emptyAsNil(res.PhotoURL),
		IDToken:     res.IDToken,
	}, nil
}

func (p *restProvider) VerifyToken(ctx context.Context, idToken string) (User, error) {
	res, err := p.post(ctx, "accounts:lookup", accountPayload{IDToken: idToken})
	if err != nil {
		return User{}, err
	}
	if len(res.Users) == 0 {
		return User{}, &Error{Code: "USER_NOT_FOUND", Message: "token does not resolve to an account"}
	}

	account := res.Users[0]
	return User{
		UID:         account.LocalID,
		Email:       account.Email,
		DisplayName: emptyAsNil(account.DisplayName),
		PhotoURL:    emptyAsNil(account.PhotoURL),
		IDToken:     idToken,
	}, nil
}

func (p *restProvider) CreateUser(ctx context.Context, email, password string) (string, error) {
	res, err := p.post(ctx, "accounts:signUp", accountPayload{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return "", err
	}
	return res.LocalID, nil
}

func (p *restProvider) post(ctx context.Context, action string, payload accountPayload) (*accountResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal identity request: %w", err)
	}

	url := fmt.Sprintf("%s/%s?key=%s", p.baseURL, action, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build identity request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call identity provider: %w", err)
	}
	defer resp.Body.Close()

	var res accountResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("decode identity response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if res.Error != nil {
			return nil, &Error{Code: res.Error.Message, Message: res.Error.Message}
		}
		return nil, &Error{Code: "UNEXPECTED_STATUS", Message: resp.Status}
	}

	return &res, nil
}

func emptyAsNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
