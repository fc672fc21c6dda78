// Package session issues opaque guest-session tokens. Guest carts are keyed
// by the session id these tokens resolve to; the tokens live in memory and
// expire, which is what makes guest carts ephemeral.
package session

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidToken = errors.New("invalid session token")

type Service struct {
	tokens *tokenManager
	ttl    time.Duration
}

func New() *Service {
	return &Service{
		tokens: newTokenManager(),
		ttl:    72 * time.Hour,
	}
}

// Start issues a fresh session token bound to a new session id.
func (s *Service) Start(ctx context.Context) (token, sessionID string, err error) {
	sessionID, err = randomID()
	if err != nil {
		return "", "", err
	}
	token, err = s.tokens.Issue(sessionID, s.ttl)
	if err != nil {
		return "", "", err
	}
	return token, sessionID, nil
}

// Resolve returns the session id for a valid token.
func (s *Service) Resolve(ctx context.Context, token string) (string, error) {
	meta, ok := s.tokens.Validate(token)
	if !ok {
		return "", ErrInvalidToken
	}
	return meta.SessionID, nil
}

// TTLSeconds exposes the session lifetime in seconds.
func (s *Service) TTLSeconds() int {
	return int(s.ttl.Seconds())
}
