// Package httpauth implements the auth gateway over the JSON HTTP contract
// served at <base>/api/auth.
package httpauth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/example/workerhub/internal/models"
	"github.com/example/workerhub/internal/ports/secondary"
)

// AuthError is returned for every non-2xx response.
type AuthError struct {
	Status  int
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// Is reports whether target is secondary.ErrAuth.
func (e *AuthError) Is(target error) bool {
	return target == secondary.ErrAuth
}

// Gateway implements secondary.AuthGateway with net/http.
type Gateway struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

var _ secondary.AuthGateway = (*Gateway)(nil)

// NewGateway creates a gateway for the auth service at baseURL
// (for example "http://localhost:8080/api/auth"). A zero timeout means the
// request is bounded only by its context.
func NewGateway(baseURL string, timeout time.Duration, logger *slog.Logger) *Gateway {
	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type loginBody struct {
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Type     models.UserType `json:"type,omitempty"`
}

// Login sends credentials to <base>/login.
func (g *Gateway) Login(ctx context.Context, email, password string, userType models.UserType) (*secondary.AuthResponse, error) {
	return g.post(ctx, "/login", loginBody{Email: email, Password: password, Type: userType})
}

// Register sends a registration to <base>/register.
func (g *Gateway) Register(ctx context.Context, req secondary.RegisterUserRequest) (*secondary.AuthResponse, error) {
	return g.post(ctx, "/register", req)
}

func (g *Gateway) post(ctx context.Context, path string, body any) (*secondary.AuthResponse, error) {
	url := g.baseURL + path

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", secondary.ErrAuth, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %v", secondary.ErrAuth, err)
	}
	req.Header.Set("Content-Type", "application/json")

	g.logger.DebugContext(ctx, "auth request", "url", url)

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.DebugContext(ctx, "auth request failed", "url", url, "error", err)
		return nil, fmt.Errorf("%w: %v", secondary.ErrAuth, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", secondary.ErrAuth, err)
	}

	g.logger.DebugContext(ctx, "auth response", "url", url, "status", resp.StatusCode, "bytes", len(raw))

	var decoded *secondary.AuthResponse
	if len(bytes.TrimSpace(raw)) > 0 {
		decoded = &secondary.AuthResponse{}
		if err := json.Unmarshal(raw, decoded); err != nil {
			if isSuccess(resp.StatusCode) {
				return nil, fmt.Errorf("%w: malformed response: %v", secondary.ErrAuth, err)
			}
			decoded = nil
		}
	}

	if !isSuccess(resp.StatusCode) {
		msg := http.StatusText(resp.StatusCode)
		if decoded != nil && decoded.Message != "" {
			msg = decoded.Message
		}
		return nil, &AuthError{Status: resp.StatusCode, Message: msg}
	}

	return decoded, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
