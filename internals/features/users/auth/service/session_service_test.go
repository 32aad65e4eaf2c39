package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newSessions(t *testing.T, ttl time.Duration) (*SessionService, *clock) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	clk := &clock{t: time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)}
	s, err := NewSessionService(SessionConfig{
		Secret:       "test-secret",
		Username:     "admin",
		PasswordHash: string(hash),
		TTL:          ttl,
		Now:          clk.now,
	})
	require.NoError(t, err)
	return s, clk
}

func TestLoginVerifyLogout(t *testing.T) {
	s, _ := newSessions(t, 0)

	token, sess, err := s.Login("admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", sess.Username)

	got, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, sess, got)

	s.Logout(token)
	_, err = s.Verify(token)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	// logging out twice is fine
	s.Logout(token)
	s.Logout("garbage")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	s, _ := newSessions(t, 0)

	_, _, err := s.Login("admin", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = s.Login("root", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Zero(t, s.Active())
}

func TestVerifyRejectsForeignTokens(t *testing.T) {
	s, _ := newSessions(t, 0)

	_, err := s.Verify("not-a-jwt")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	// well signed but never issued by this service
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{ID: "x"}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = s.Verify(forged)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	// other key
	token, _, err := s.Login("admin", "admin123")
	require.NoError(t, err)
	other, _ := newSessions(t, 0)
	other.secret = []byte("another-secret")
	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestSessionsExpireAndSweep(t *testing.T) {
	s, clk := newSessions(t, time.Hour)

	old, _, err := s.Login("admin", "admin123")
	require.NoError(t, err)
	clk.t = clk.t.Add(45 * time.Minute)
	fresh, _, err := s.Login("admin", "admin123")
	require.NoError(t, err)

	clk.t = clk.t.Add(30 * time.Minute)
	_, err = s.Verify(old)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	_, err = s.Verify(fresh)
	assert.NoError(t, err)

	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 1, s.Active())
}

func TestSweepWithoutTTLKeepsSessions(t *testing.T) {
	s, clk := newSessions(t, 0)
	_, _, err := s.Login("admin", "admin123")
	require.NoError(t, err)

	clk.t = clk.t.Add(24 * 365 * time.Hour)
	assert.Zero(t, s.Sweep())
	assert.Equal(t, 1, s.Active())
}
