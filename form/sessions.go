// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package form

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is a form orchestrator addressable by ID.
type Session struct {
	*Orchestrator
	ID        string
	CreatedAt time.Time
}

// Sessions is an in-memory registry of form sessions. Sessions are not
// persisted and do not survive a restart.
type Sessions struct {
	mu       sync.Mutex
	sessions map[string]*Session
	factory  func() (*Orchestrator, error)
}

// NewSessions creates a registry that builds each session with factory.
func NewSessions(factory func() (*Orchestrator, error)) *Sessions {
	return &Sessions{
		sessions: make(map[string]*Session),
		factory:  factory,
	}
}

// Create starts a new session.
func (s *Sessions) Create() (*Session, error) {
	o, err := s.factory()
	if err != nil {
		return nil, fmt.Errorf("failed to create form session: %w", err)
	}
	session := &Session{
		Orchestrator: o,
		ID:           uuid.NewString(),
		CreatedAt:    time.Now(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session, nil
}

// Get returns the session with id.
func (s *Sessions) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Delete discards the session with id.
func (s *Sessions) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
