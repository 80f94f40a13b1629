// Package session keeps login sessions in process memory, mirroring the
// rest of the data layer: a restart logs everyone out.
package session

import (
	"context"
	"sync"
	"time"

	jwtpkg "github.com/fullsco/core/internal/pkg/jwt"
	"github.com/google/uuid"
)

// DefaultTTL matches the 24-hour session cookie.
const DefaultTTL = 24 * time.Hour

// Session is one logged-in browser.
type Session struct {
	ID        string
	UserID    int
	IP        string
	UA        string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Registry is a mutex-guarded map of active sessions. Tokens handed to
// clients are JWTs bound to a registry entry, so logout actually revokes.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]Session
	ttl      time.Duration
}

func NewRegistry(ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Registry{sessions: make(map[string]Session), ttl: ttl}
}

// TTL returns the configured session lifetime.
func (r *Registry) TTL() time.Duration { return r.ttl }

// Issue registers a session and signs a token bound to it.
func (r *Registry) Issue(userID int, ip, ua string) (string, Session, error) {
	now := time.Now()
	s := Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		IP:        ip,
		UA:        ua,
		CreatedAt: now,
		ExpiresAt: now.Add(r.ttl),
	}

	token, err := jwtpkg.Sign(userID, s.ID, r.ttl)
	if err != nil {
		return "", Session{}, err
	}

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return token, s, nil
}

// Resolve validates a token and returns its live session. Expired or
// revoked sessions fail even when the JWT itself still verifies.
func (r *Registry) Resolve(token string) (Session, bool) {
	claims, err := jwtpkg.Parse(token)
	if err != nil {
		return Session{}, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[claims.SessionID]
	if !ok || s.UserID != claims.UserID {
		return Session{}, false
	}
	if time.Now().After(s.ExpiresAt) {
		delete(r.sessions, s.ID)
		return Session{}, false
	}
	return s, true
}

// Revoke drops a session; subsequent Resolve calls for its token fail.
func (r *Registry) Revoke(sessionID string) {
	r.mu.Lock()
	delete(r.sessions, sessionID)
	r.mu.Unlock()
}

// Prune removes expired sessions and reports how many were dropped.
func (r *Registry) Prune() int {
	now := time.Now()
	r.mu.Lock()
	defer r.mu.Unlock()
	dropped := 0
	for id, s := range r.sessions {
		if now.After(s.ExpiresAt) {
			delete(r.sessions, id)
			dropped++
		}
	}
	return dropped
}

// Janitor prunes on an interval until ctx is cancelled.
func (r *Registry) Janitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Prune()
		}
	}
}
