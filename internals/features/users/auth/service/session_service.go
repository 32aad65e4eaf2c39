// file: internals/features/users/auth/service/session_service.go
package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

/* ==========================
   Types
========================== */

type Session struct {
	Username  string    `json:"username"`
	LoginTime time.Time `json:"login_time"`
}

type SessionConfig struct {
	Secret       string
	Username     string
	PasswordHash string
	// TTL 0 keeps sessions until logout.
	TTL time.Duration
	Now func() time.Time
}

// SessionService issues signed admin tokens and keeps the live sessions in
// memory, keyed by the token id. A restart logs every admin out.
type SessionService struct {
	secret       []byte
	username     string
	passwordHash []byte
	ttl          time.Duration
	now          func() time.Time

	mu       sync.RWMutex
	sessions map[string]Session
}

func NewSessionService(cfg SessionConfig) (*SessionService, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	if cfg.Username == "" || cfg.PasswordHash == "" {
		return nil, errors.New("admin credentials are not configured")
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &SessionService{
		secret:       []byte(cfg.Secret),
		username:     cfg.Username,
		passwordHash: []byte(cfg.PasswordHash),
		ttl:          cfg.TTL,
		now:          cfg.Now,
		sessions:     map[string]Session{},
	}, nil
}

// HashPassword is used at start-up when only a plain password is configured.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

/* ==========================
   Login / Verify / Logout
========================== */

func (s *SessionService) Login(username, password string) (string, Session, error) {
	if username != s.username {
		return "", Session{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", Session{}, ErrInvalidCredentials
	}

	now := s.now()
	jti := uuid.NewString()
	claims := jwt.RegisteredClaims{
		Subject:  username,
		ID:       jti,
		IssuedAt: jwt.NewNumericDate(now),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", Session{}, fmt.Errorf("sign token: %w", err)
	}

	sess := Session{Username: username, LoginTime: now}
	s.mu.Lock()
	s.sessions[jti] = sess
	s.mu.Unlock()
	return token, sess, nil
}

// Verify accepts a token only while its session is live.
func (s *SessionService) Verify(token string) (Session, error) {
	jti, err := s.tokenID(token)
	if err != nil {
		return Session{}, ErrUnauthenticated
	}

	s.mu.RLock()
	sess, ok := s.sessions[jti]
	s.mu.RUnlock()
	if !ok || s.expired(sess, s.now()) {
		return Session{}, ErrUnauthenticated
	}
	return sess, nil
}

// Logout drops the session; unknown or malformed tokens are ignored.
func (s *SessionService) Logout(token string) {
	jti, err := s.tokenID(token)
	if err != nil {
		return
	}
	s.mu.Lock()
	delete(s.sessions, jti)
	s.mu.Unlock()
}

// Sweep removes expired sessions and returns how many were dropped.
func (s *SessionService) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for jti, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, jti)
			n++
		}
	}
	return n
}

func (s *SessionService) Active() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

/* ==========================
   Helpers
========================== */

func (s *SessionService) expired(sess Session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(sess.LoginTime) > s.ttl
}

func (s *SessionService) tokenID(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", err
	}
	if claims.ID == "" {
		return "", errors.New("token has no id")
	}
	return claims.ID, nil
}
