package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// UserType discriminates the two kinds of authenticated actor.
type UserType string

const (
	UserTypeWorker   UserType = "worker"
	UserTypeEmployer UserType = "employer"
)

// ErrUnknownUserType is returned for a discriminator other than worker or employer.
var ErrUnknownUserType = errors.New("unknown user type")

// ParseUserType validates a user type string.
func ParseUserType(s string) (UserType, error) {
	switch UserType(s) {
	case UserTypeWorker, UserTypeEmployer:
		return UserType(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownUserType, s)
}

// Session is the currently authenticated actor. It is implemented only by
// *WorkerSession and *EmployerSession.
type Session interface {
	Type() UserType
	ActorID() int64
	DisplayName() string
	isSession()
}

// WorkerSession carries the full worker record.
type WorkerSession struct {
	Worker
}

func (s *WorkerSession) Type() UserType      { return UserTypeWorker }
func (s *WorkerSession) ActorID() int64      { return s.ID }
func (s *WorkerSession) DisplayName() string { return s.Name }
func (s *WorkerSession) isSession()          {}

// EmployerSession is an employer as provided at login or registration.
type EmployerSession struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
}

func (s *EmployerSession) Type() UserType      { return UserTypeEmployer }
func (s *EmployerSession) ActorID() int64      { return s.ID }
func (s *EmployerSession) DisplayName() string { return s.Name }
func (s *EmployerSession) isSession()          {}

type workerSessionJSON struct {
	Worker
	Type UserType `json:"type"`
}

type employerSessionJSON struct {
	EmployerSession
	Type UserType `json:"type"`
}

// MarshalSession encodes a session with its "type" discriminator.
func MarshalSession(s Session) ([]byte, error) {
	switch v := s.(type) {
	case *WorkerSession:
		return json.Marshal(workerSessionJSON{Worker: v.Worker, Type: UserTypeWorker})
	case *EmployerSession:
		return json.Marshal(employerSessionJSON{EmployerSession: *v, Type: UserTypeEmployer})
	case nil:
		return []byte("null"), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownUserType, s)
	}
}

// UnmarshalSession decodes a session written by MarshalSession.
// A JSON null decodes to a nil Session.
func UnmarshalSession(data []byte) (Session, error) {
	var probe struct {
		Type UserType `json:"type"`
	}
	if string(data) == "null" {
		return nil, nil
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	switch probe.Type {
	case UserTypeWorker:
		var w workerSessionJSON
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, fmt.Errorf("failed to decode worker session: %w", err)
		}
		return &WorkerSession{Worker: w.Worker}, nil
	case UserTypeEmployer:
		var e employerSessionJSON
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("failed to decode employer session: %w", err)
		}
		return &e.EmployerSession, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownUserType, probe.Type)
	}
}
