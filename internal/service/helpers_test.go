package service

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"inheritance-vault/internal/core/domain"
	"inheritance-vault/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

// fakeClock is a settable clock in unix seconds.
type fakeClock struct {
	mu  sync.Mutex
	now int64
}

func newFakeClock(now int64) *fakeClock { return &fakeClock{now: now} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return time.Unix(c.now, 0)
}

func (c *fakeClock) Set(now int64) {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
}

// markClaimed records a claim against the currently stored revision of o's will.
func markClaimed(t *testing.T, repo ports.WillRepository, o domain.Identity, at int64) {
	t.Helper()
	w, err := repo.Get(context.Background(), o)
	require.NoError(t, err)
	require.NotNil(t, w)
	won, err := repo.MarkClaimed(context.Background(), w.Snapshot(), at)
	require.NoError(t, err)
	require.True(t, won)
}
