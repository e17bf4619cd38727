// File: internal/service/session.go
package service

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/blake2b"

	"speaksmart/internal/cache"
	"speaksmart/internal/model"
)

var (
	ErrInvalidToken    = errors.New("invalid session token")
	ErrSessionNotFound = errors.New("session not found")
)

// swappable in tests
var (
	timeNow      = time.Now
	newSessionID = func() string { return uuid.NewString() }
	jsonMarshal  = json.Marshal
)

// Claims is the JWT payload of a session token.
type Claims struct {
	Ruolo string `json:"ruolo"`
	jwt.RegisteredClaims
}

// Session is a live, verified session.
type Session struct {
	ID        string     `json:"-"`
	User      model.User `json:"utente"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// SessionManager issues HS256 tokens backed by a Redis record per session.
// Deleting the record revokes the token before it expires.
type SessionManager struct {
	cache  cache.Cache
	secret []byte
	ttl    time.Duration
}

func NewSessionManager(c cache.Cache, secret string, ttl time.Duration) *SessionManager {
	return &SessionManager{cache: c, secret: []byte(secret), ttl: ttl}
}

// sessionKey never stores the raw id, only its blake2b-256 digest.
func sessionKey(id string) string {
	sum := blake2b.Sum256([]byte(id))
	return "sessione:" + hex.EncodeToString(sum[:])
}

// Issue creates a session for u and returns its signed token.
func (m *SessionManager) Issue(ctx context.Context, u model.User) (string, *Session, error) {
	now := timeNow()
	s := &Session{
		ID:        newSessionID(),
		User:      u,
		ExpiresAt: now.Add(m.ttl).Truncate(time.Second),
	}

	claims := Claims{
		Ruolo: u.Ruolo,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        s.ID,
			Subject:   strconv.Itoa(u.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign session token: %w", err)
	}

	raw, err := jsonMarshal(s)
	if err != nil {
		return "", nil, fmt.Errorf("encode session: %w", err)
	}
	if err := m.cache.Set(ctx, sessionKey(s.ID), raw, m.ttl).Err(); err != nil {
		return "", nil, fmt.Errorf("store session: %w", err)
	}
	return token, s, nil
}

// Verify checks the token signature and expiry, then loads its Redis record.
func (m *SessionManager) Verify(ctx context.Context, token string) (*Session, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(timeNow),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid || claims.ID == "" {
		return nil, ErrInvalidToken
	}

	raw, err := m.cache.Get(ctx, sessionKey(claims.ID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	s := &Session{}
	if err := json.Unmarshal(raw, s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if strconv.Itoa(s.User.ID) != claims.Subject {
		return nil, ErrInvalidToken
	}
	s.ID = claims.ID
	return s, nil
}

// Revoke deletes the session record. Revoking an unknown session is not an error.
func (m *SessionManager) Revoke(ctx context.Context, id string) error {
	if err := m.cache.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}
