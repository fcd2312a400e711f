// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package auth

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"sync"
	"time"
)

// SessionTTL is how long a login lasts before the cookie goes stale.
const SessionTTL = 24 * time.Hour

const SessionCookieName = "xtab_session"

type User struct {
	Handle string
}

type Session struct {
	ID        string
	User      User
	ExpiresAt time.Time
}

// SessionStore holds active sessions in memory. Sessions do not
// survive a server restart; operators log in again.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
	}
}

func (s *SessionStore) Create(user User) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := generateSessionID()
	session := &Session{
		ID:        id,
		User:      user,
		ExpiresAt: time.Now().Add(SessionTTL),
	}
	s.sessions[id] = session
	return session
}

func (s *SessionStore) Get(id string) *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil
	}
	if time.Now().After(session.ExpiresAt) {
		return nil
	}
	return session
}

func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func generateSessionID() string {
	b := make([]byte, 32)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// GetSessionFromRequest returns the live session for the request's
// cookie, or nil when there is none or it has expired.
func GetSessionFromRequest(r *http.Request, sessions *SessionStore) *Session {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil
	}
	return sessions.Get(cookie.Value)
}
