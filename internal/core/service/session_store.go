package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/getready/ats-system/internal/core/domain"
	"github.com/getready/ats-system/internal/core/ports"
)

const defaultSessionTTL = 24 * time.Hour

type sessionEntry struct {
	identity  domain.Identity
	expiresAt time.Time
}

// SessionStore is the single owner of session state: a process-local
// identity cache in front of the remote session registry. All writes to
// session state go through Establish and Clear. Cached entries carry the
// token TTL so the cache never outlives the tokens it answers for: expired
// entries are evicted on access, and every Establish sweeps out the dead
// ones so the map stays bounded by the live session count.
type SessionStore struct {
	auth     ports.AuthService
	registry ports.SessionRepository
	ttl      time.Duration
	logger   zerolog.Logger
	now      func() time.Time

	mu    sync.Mutex
	cache map[string]sessionEntry
}

func NewSessionStore(auth ports.AuthService, registry ports.SessionRepository, ttl time.Duration, logger zerolog.Logger) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStore{
		auth:     auth,
		registry: registry,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
		cache:    make(map[string]sessionEntry),
	}
}

// Establish exchanges credentials for an identity and persists the session
// locally and in the remote registry.
func (s *SessionStore) Establish(ctx context.Context, creds ports.Credentials) (*domain.Identity, error) {
	identity, err := s.auth.Login(ctx, creds)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.sweepLocked()
	s.cache[identity.Token] = sessionEntry{identity: *identity, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()

	if err := s.registry.Put(ctx, identity.Token, *identity); err != nil {
		return nil, fmt.Errorf("establish session: %w", err)
	}
	return identity, nil
}

// Current returns the identity for a token. A live local entry answers
// without a remote call; an expired one is evicted and the remote registry
// consulted, exactly as on a miss (another instance established the
// session, or the process restarted), refilling the cache on success.
func (s *SessionStore) Current(ctx context.Context, token string) (*domain.Identity, error) {
	s.mu.Lock()
	if entry, ok := s.cache[token]; ok {
		if s.now().Before(entry.expiresAt) {
			s.mu.Unlock()
			return &entry.identity, nil
		}
		delete(s.cache, token)
	}
	s.mu.Unlock()

	id, err := s.registry.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache[token] = sessionEntry{identity: *id, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()
	return id, nil
}

// Clear invalidates the session. The local entry is removed first and
// unconditionally; the remote delete is best effort, so a registry outage
// can never leave the caller logged in locally.
func (s *SessionStore) Clear(ctx context.Context, token string) {
	s.mu.Lock()
	delete(s.cache, token)
	s.mu.Unlock()

	if err := s.registry.Delete(ctx, token); err != nil {
		s.logger.Warn().Err(err).Msg("remote session invalidation failed, local session cleared")
	}
}

// sweepLocked drops every expired entry. Caller holds mu.
func (s *SessionStore) sweepLocked() {
	now := s.now()
	for token, entry := range s.cache {
		if !now.Before(entry.expiresAt) {
			delete(s.cache, token)
		}
	}
}
