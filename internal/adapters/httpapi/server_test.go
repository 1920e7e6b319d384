package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/workerhub/internal/ctxutil"
	"github.com/example/workerhub/internal/models"
	"github.com/example/workerhub/internal/ports/primary"
)

// mockAuthService implements primary.AuthService for testing.
type mockAuthService struct {
	user        *models.AuthUser
	err         error
	lastReq     primary.AuthRegisterRequest
	lastRequest string
}

func (m *mockAuthService) Register(ctx context.Context, req primary.AuthRegisterRequest) (*models.AuthUser, error) {
	m.lastReq = req
	m.lastRequest = ctxutil.RequestIDFromContext(ctx)
	return m.user, m.err
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*models.AuthUser, error) {
	m.lastRequest = ctxutil.RequestIDFromContext(ctx)
	return m.user, m.err
}

func newTestHandler(auth *mockAuthService) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(auth, logger, []string{"http://localhost:3000"}).Handler()
}

func doPost(t *testing.T, h http.Handler, path, body string) (*httptest.ResponseRecorder, authResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var resp authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestServer_Register(t *testing.T) {
	auth := &mockAuthService{user: &models.AuthUser{ID: 7, Email: "ravi@example.com", Name: "Ravi", Type: models.UserTypeWorker}}
	h := newTestHandler(auth)

	w, resp := doPost(t, h, "/api/auth/register", `{"email":"ravi@example.com","password":"pw","name":"Ravi","type":"worker"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.User)
	assert.Equal(t, int64(7), resp.User.ID)
	assert.Equal(t, "worker", auth.lastReq.Type)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Equal(t, w.Header().Get(RequestIDHeader), auth.lastRequest)
}

func TestServer_Failures(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"duplicate email", "/api/auth/register", &primary.RejectedError{Reason: "Email already registered"}, 400, "Email already registered"},
		{"bad credentials", "/api/auth/login", &primary.RejectedError{Reason: "Invalid email or password"}, 400, "Invalid email or password"},
		{"register storage failure", "/api/auth/register", errors.New("disk full"), 500, "Registration failed: disk full"},
		{"login storage failure", "/api/auth/login", errors.New("db locked"), 500, "Login failed: db locked"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&mockAuthService{err: tt.err})

			w, resp := doPost(t, h, tt.path, `{"email":"a@b.c","password":"pw"}`)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantMsg, resp.Message)
		})
	}
}

func TestServer_MalformedBody(t *testing.T) {
	h := newTestHandler(&mockAuthService{})

	w, resp := doPost(t, h, "/api/auth/login", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
}

func TestServer_KeepsCallerRequestID(t *testing.T) {
	auth := &mockAuthService{user: &models.AuthUser{ID: 1}}
	h := newTestHandler(auth)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"a@b.c","password":"pw"}`))
	req.Header.Set(RequestIDHeader, "trace-123")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "trace-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "trace-123", auth.lastRequest)
}

func TestServer_CORSPreflight(t *testing.T) {
	h := newTestHandler(&mockAuthService{})

	req := httptest.NewRequest(http.MethodOptions, "/api/auth/login", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestServer_UnknownRoute(t *testing.T) {
	h := newTestHandler(&mockAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/login", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
