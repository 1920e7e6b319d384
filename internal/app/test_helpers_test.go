package app

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/example/workerhub/internal/models"
	"github.com/example/workerhub/internal/ports/secondary"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixedNow is the clock used by facade tests: 2024-03-01T09:00:00Z.
var fixedNow = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

// Ensure mockSnapshotRepository implements the interface
var _ secondary.SnapshotRepository = (*mockSnapshotRepository)(nil)

// mockSnapshotRepository implements secondary.SnapshotRepository for testing.
type mockSnapshotRepository struct {
	payloads map[string][]byte
	saves    []string
	loadErr  error
	saveErr  error
}

func newMockSnapshotRepository() *mockSnapshotRepository {
	return &mockSnapshotRepository{payloads: make(map[string][]byte)}
}

func (m *mockSnapshotRepository) Load(ctx context.Context, key string) ([]byte, bool, error) {
	if m.loadErr != nil {
		return nil, false, m.loadErr
	}
	p, ok := m.payloads[key]
	return p, ok, nil
}

func (m *mockSnapshotRepository) Save(ctx context.Context, key string, payload []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.payloads[key] = append([]byte(nil), payload...)
	m.saves = append(m.saves, key)
	return nil
}

func (m *mockSnapshotRepository) Delete(ctx context.Context, key string) error {
	delete(m.payloads, key)
	return nil
}

// notification is one recorded Notify call.
type notification struct {
	level   string
	message string
}

// recordingNotifier implements secondary.Notifier by recording every call.
type recordingNotifier struct {
	sent []notification
}

func (n *recordingNotifier) Notify(ctx context.Context, level, message string) {
	n.sent = append(n.sent, notification{level: level, message: message})
}

func (n *recordingNotifier) last() notification {
	if len(n.sent) == 0 {
		return notification{}
	}
	return n.sent[len(n.sent)-1]
}

// Ensure mockAuthGateway implements the interface
var _ secondary.AuthGateway = (*mockAuthGateway)(nil)

// mockAuthGateway implements secondary.AuthGateway for testing.
type mockAuthGateway struct {
	loginResp    *secondary.AuthResponse
	loginErr     error
	registerResp *secondary.AuthResponse
	registerErr  error

	lastLoginType string
	registerCalls []secondary.RegisterUserRequest
}

func (m *mockAuthGateway) Login(ctx context.Context, email, password string, userType models.UserType) (*secondary.AuthResponse, error) {
	m.lastLoginType = string(userType)
	return m.loginResp, m.loginErr
}

func (m *mockAuthGateway) Register(ctx context.Context, req secondary.RegisterUserRequest) (*secondary.AuthResponse, error) {
	m.registerCalls = append(m.registerCalls, req)
	return m.registerResp, m.registerErr
}

// Ensure mockAuthUserRepository implements the interface
var _ secondary.AuthUserRepository = (*mockAuthUserRepository)(nil)

// mockAuthUserRepository implements secondary.AuthUserRepository for testing.
type mockAuthUserRepository struct {
	users     map[string]*secondary.AuthUserRecord
	nextID    int64
	createErr error
}

func newMockAuthUserRepository() *mockAuthUserRepository {
	return &mockAuthUserRepository{users: make(map[string]*secondary.AuthUserRecord), nextID: 1}
}

func (m *mockAuthUserRepository) Create(ctx context.Context, user *secondary.AuthUserRecord) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	stored := *user
	stored.ID = m.nextID
	m.nextID++
	m.users[user.Email] = &stored
	return stored.ID, nil
}

func (m *mockAuthUserRepository) GetByEmail(ctx context.Context, email string) (*secondary.AuthUserRecord, error) {
	if u, ok := m.users[email]; ok {
		return u, nil
	}
	return nil, nil
}

func (m *mockAuthUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	_, ok := m.users[email]
	return ok, nil
}
