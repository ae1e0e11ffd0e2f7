package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-long-enough"

func newTestIssuer(t *testing.T, alg string, ttl time.Duration, now time.Time) *Issuer {
	t.Helper()
	issuer, err := NewIssuer(Config{Secret: testSecret, Issuer: "dompet-test", Algorithm: alg, TTL: ttl})
	require.NoError(t, err)
	issuer.now = func() time.Time { return now }
	return issuer
}

func TestNewIssuer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "hs256", cfg: Config{Secret: testSecret, Algorithm: "HS256"}},
		{name: "hs384", cfg: Config{Secret: testSecret, Algorithm: "HS384"}},
		{name: "hs512", cfg: Config{Secret: testSecret, Algorithm: "HS512"}},
		{name: "rsa rejected", cfg: Config{Secret: testSecret, Algorithm: "RS256"}, wantErr: true},
		{name: "none rejected", cfg: Config{Secret: testSecret, Algorithm: "none"}, wantErr: true},
		{name: "unknown rejected", cfg: Config{Secret: testSecret, Algorithm: "XX1"}, wantErr: true},
		{name: "empty secret", cfg: Config{Algorithm: "HS256"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewIssuer(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("round trip carries user claims", func(t *testing.T) {
		t.Parallel()
		issuer := newTestIssuer(t, "HS256", time.Hour, fixedTime)

		signed, err := issuer.Issue(UserClaims{ID: "user-1", Email: "a@example.com", Role: "ADMIN"})
		require.NoError(t, err)
		require.NotEmpty(t, signed)

		claims, err := issuer.Verify(signed)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.ID)
		assert.Equal(t, "user-1", claims.UserClaims.ID)
		assert.Equal(t, "a@example.com", claims.UserClaims.Email)
		assert.Equal(t, "ADMIN", claims.UserClaims.Role)
		assert.Equal(t, Subject, claims.Subject)
		assert.Equal(t, "dompet-test", claims.Issuer)
		assert.Equal(t, fixedTime.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	})

	t.Run("uses configured algorithm", func(t *testing.T) {
		t.Parallel()
		issuer := newTestIssuer(t, "HS512", 0, fixedTime)

		signed, err := issuer.Issue(UserClaims{ID: "user-1"})
		require.NoError(t, err)

		parsed, _, err := jwt.NewParser().ParseUnverified(signed, &Claims{})
		require.NoError(t, err)
		assert.Equal(t, "HS512", parsed.Method.Alg())
	})

	t.Run("zero ttl omits expiry", func(t *testing.T) {
		t.Parallel()
		issuer := newTestIssuer(t, "HS256", 0, fixedTime)

		signed, err := issuer.Issue(UserClaims{ID: "user-1", Name: "Alice"})
		require.NoError(t, err)

		claims, err := issuer.Verify(signed)
		require.NoError(t, err)
		assert.Nil(t, claims.ExpiresAt)
		assert.Equal(t, "Alice", claims.UserClaims.Name)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		t.Parallel()
		issuer := newTestIssuer(t, "HS256", time.Minute, fixedTime)

		signed, err := issuer.Issue(UserClaims{ID: "user-1"})
		require.NoError(t, err)

		issuer.now = func() time.Time { return fixedTime.Add(2 * time.Minute) }
		_, err = issuer.Verify(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		t.Parallel()
		issuer := newTestIssuer(t, "HS256", time.Hour, fixedTime)
		other, err := NewIssuer(Config{Secret: "another-secret-long-enough", Issuer: "dompet-test", Algorithm: "HS256"})
		require.NoError(t, err)
		other.now = issuer.now

		signed, err := other.Issue(UserClaims{ID: "user-1"})
		require.NoError(t, err)

		_, err = issuer.Verify(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer rejected", func(t *testing.T) {
		t.Parallel()
		issuer := newTestIssuer(t, "HS256", time.Hour, fixedTime)
		other, err := NewIssuer(Config{Secret: testSecret, Issuer: "someone-else", Algorithm: "HS256"})
		require.NoError(t, err)
		other.now = issuer.now

		signed, err := other.Issue(UserClaims{ID: "user-1"})
		require.NoError(t, err)

		_, err = issuer.Verify(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("algorithm mismatch rejected", func(t *testing.T) {
		t.Parallel()
		issuer := newTestIssuer(t, "HS256", time.Hour, fixedTime)
		other := newTestIssuer(t, "HS384", time.Hour, fixedTime)

		signed, err := other.Issue(UserClaims{ID: "user-1"})
		require.NoError(t, err)

		_, err = issuer.Verify(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		t.Parallel()
		issuer := newTestIssuer(t, "HS256", time.Hour, fixedTime)

		_, err := issuer.Verify("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
