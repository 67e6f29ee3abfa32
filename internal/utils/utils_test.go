package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDurationEnv(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"10s", 10 * time.Second},
		{"5m", 5 * time.Minute},
		{"10", 10 * time.Second},
		{`"30s"`, 30 * time.Second},
		{"'45'", 45 * time.Second},
		{" 2m ", 2 * time.Minute},
	}
	for _, tc := range cases {
		got, err := ParseDurationEnv(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, bad := range []string{"", "abc", "10x"} {
		_, err := ParseDurationEnv(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseRedisURL(t *testing.T) {
	addr, password, db, err := ParseRedisURL("redis://:secret@cache.internal:6380/2")
	require.NoError(t, err)
	assert.Equal(t, "cache.internal:6380", addr)
	assert.Equal(t, "secret", password)
	assert.Equal(t, 2, db)

	addr, password, db, err = ParseRedisURL("redis://localhost:6379")
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", addr)
	assert.Empty(t, password)
	assert.Zero(t, db)

	_, _, _, err = ParseRedisURL("http://localhost:6379")
	assert.Error(t, err)

	_, _, _, err = ParseRedisURL("redis://")
	assert.Error(t, err)
}

func TestIsPGUniqueViolation(t *testing.T) {
	assert.True(t, IsPGUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsPGUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsPGUniqueViolation(errors.New("nope")))
	assert.False(t, IsPGUniqueViolation(nil))
}
