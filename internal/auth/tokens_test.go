package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type memoryTokenStore struct {
	revoked map[string]time.Duration
}

func newMemoryTokenStore() *memoryTokenStore {
	return &memoryTokenStore{revoked: make(map[string]time.Duration)}
}

func (s *memoryTokenStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	s.revoked[token] = ttl
	return nil
}

func (s *memoryTokenStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	_, ok := s.revoked[token]
	return ok, nil
}

func TestIssueAndVerify(t *testing.T) {
	m := NewManager("test-secret", time.Hour, newMemoryTokenStore())

	token, err := m.Issue(42, "admin@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := m.Verify(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.AdminID)
	assert.Equal(t, "admin@example.com", claims.Email)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewManager("secret-a", time.Hour, newMemoryTokenStore())
	verifier := NewManager("secret-b", time.Hour, newMemoryTokenStore())

	token, err := issuer.Issue(1, "admin@example.com")
	assert.NoError(t, err)

	_, err = verifier.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerify_Garbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour, newMemoryTokenStore())

	_, err := m.Verify(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerify_Expired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute, newMemoryTokenStore())

	token, err := m.Issue(1, "admin@example.com")
	assert.NoError(t, err)

	_, err = m.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestRevoke(t *testing.T) {
	store := newMemoryTokenStore()
	m := NewManager("test-secret", time.Hour, store)

	token, err := m.Issue(1, "admin@example.com")
	assert.NoError(t, err)

	assert.NoError(t, m.Revoke(context.Background(), token))

	_, err = m.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrTokenRevoked)

	// stored TTL never exceeds the token's remaining lifetime
	ttl := store.revoked[token]
	assert.LessOrEqual(t, ttl, time.Hour)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestRevoke_ExpiredTokenIsNoop(t *testing.T) {
	store := newMemoryTokenStore()
	issuer := NewManager("test-secret", -time.Minute, store)

	token, err := issuer.Issue(1, "admin@example.com")
	assert.NoError(t, err)

	m := NewManager("test-secret", time.Hour, store)
	assert.NoError(t, m.Revoke(context.Background(), token))
	assert.Empty(t, store.revoked)
}
