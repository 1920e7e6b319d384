// Package httpapi serves the development auth API consumed by the auth gateway.
package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/cors"

	"github.com/example/workerhub/internal/ctxutil"
	"github.com/example/workerhub/internal/models"
	"github.com/example/workerhub/internal/ports/primary"
)

// RequestIDHeader carries the per-request id on both request and response.
const RequestIDHeader = "X-Request-ID"

// Server exposes primary.AuthService over HTTP.
type Server struct {
	auth           primary.AuthService
	logger         *slog.Logger
	allowedOrigins []string
}

// NewServer creates a new Server. allowedOrigins configures CORS.
func NewServer(auth primary.AuthService, logger *slog.Logger, allowedOrigins []string) *Server {
	return &Server{
		auth:           auth,
		logger:         logger,
		allowedOrigins: allowedOrigins,
	}
}

// Handler returns the routed handler wrapped with CORS and request ids.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)

	c := cors.New(cors.Options{
		AllowedOrigins:   s.allowedOrigins,
		AllowedMethods:   []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", RequestIDHeader},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: true,
	})

	return c.Handler(s.withRequestID(mux))
}

func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
	})
}

// authRequest is the body of both endpoints. Login ignores Name and Type.
type authRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Type     string `json:"type"`
}

type authResponse struct {
	Success bool             `json:"success"`
	User    *models.AuthUser `json:"user,omitempty"`
	Message string           `json:"message,omitempty"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, authResponse{Message: "Invalid request body"})
		return
	}

	user, err := s.auth.Register(r.Context(), primary.AuthRegisterRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Type:     req.Type,
	})
	if err != nil {
		s.writeFailure(w, r, "Registration failed", err)
		return
	}

	s.writeJSON(w, http.StatusOK, authResponse{Success: true, User: user, Message: "Registration successful"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, authResponse{Message: "Invalid request body"})
		return
	}

	user, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeFailure(w, r, "Login failed", err)
		return
	}

	s.writeJSON(w, http.StatusOK, authResponse{Success: true, User: user, Message: "Login successful"})
}

// writeFailure maps rejections to 400 with their reason and anything else to 500.
func (s *Server) writeFailure(w http.ResponseWriter, r *http.Request, action string, err error) {
	if errors.Is(err, primary.ErrAuthRejected) {
		s.writeJSON(w, http.StatusBadRequest, authResponse{Message: err.Error()})
		return
	}

	s.logger.ErrorContext(r.Context(), "auth request failed",
		"path", r.URL.Path,
		"request_id", ctxutil.RequestIDFromContext(r.Context()),
		"error", err,
	)
	s.writeJSON(w, http.StatusInternalServerError, authResponse{Message: action + ": " + err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body authResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Warn("failed to write response", "error", err)
	}
}
