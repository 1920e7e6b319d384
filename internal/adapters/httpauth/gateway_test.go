package httpauth

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/workerhub/internal/models"
	"github.com/example/workerhub/internal/ports/secondary"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) *Gateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewGateway(srv.URL+"/api/auth/", 0, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGateway_Login_Success(t *testing.T) {
	var gotBody map[string]any
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"user":{"id":1,"email":"ravi@example.com","name":"Ravi Kumar","type":"worker"}}`))
	})

	resp, err := gw.Login(context.Background(), "ravi@example.com", "secret", "")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.User)
	assert.Equal(t, int64(1), resp.User.ID)
	assert.Equal(t, models.UserTypeWorker, resp.User.Type)

	assert.Equal(t, "ravi@example.com", gotBody["email"])
	_, hasType := gotBody["type"]
	assert.False(t, hasType, "empty type must be omitted from the body")
}

func TestGateway_Login_SendsType(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "employer", body["type"])
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	_, err := gw.Login(context.Background(), "a@b.c", "pw", models.UserTypeEmployer)
	require.NoError(t, err)
}

func TestGateway_EmptyBodyYieldsNoData(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	resp, err := gw.Register(context.Background(), secondary.RegisterUserRequest{Email: "a@b.c", Password: "pw", Name: "A", Type: models.UserTypeWorker})
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestGateway_Errors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantMsg    string
	}{
		{"message from body", http.StatusBadRequest, `{"success":false,"message":"Email already registered"}`, 400, "Email already registered"},
		{"empty body uses status text", http.StatusInternalServerError, "", 500, "Internal Server Error"},
		{"non-json body uses status text", http.StatusBadGateway, "<html>oops</html>", 502, "Bad Gateway"},
		{"json without message uses status text", http.StatusUnauthorized, `{"success":false}`, 401, "Unauthorized"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := gw.Register(context.Background(), secondary.RegisterUserRequest{Email: "a@b.c"})
			require.Error(t, err)
			assert.True(t, errors.Is(err, secondary.ErrAuth))

			var authErr *AuthError
			require.True(t, errors.As(err, &authErr))
			assert.Equal(t, tt.wantStatus, authErr.Status)
			assert.Equal(t, tt.wantMsg, authErr.Message)
		})
	}
}

func TestGateway_TransportFailureIsErrAuth(t *testing.T) {
	gw := NewGateway("http://127.0.0.1:1/api/auth", 0, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := gw.Login(context.Background(), "a@b.c", "pw", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, secondary.ErrAuth)
}

func TestGateway_HonorsContextCancellation(t *testing.T) {
	release := make(chan struct{})
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := gw.Login(ctx, "a@b.c", "pw", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, secondary.ErrAuth)
}
