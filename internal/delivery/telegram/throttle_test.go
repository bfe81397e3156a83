package telegram

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestThrottleAllowsOneMessagePerSecond(t *testing.T) {
	th := newUserThrottle()

	require.True(t, th.Allow(1))
	require.False(t, th.Allow(1), "second message within a second must be dropped")
}

func TestThrottleIsPerUser(t *testing.T) {
	th := newUserThrottle()

	require.True(t, th.Allow(1))
	require.False(t, th.Allow(1))
	require.True(t, th.Allow(2), "one user's flood must not starve another")
}

func TestThrottlePruneDropsIdleEntries(t *testing.T) {
	th := newUserThrottle()
	th.Allow(1)
	th.Allow(2)

	th.mu.Lock()
	th.entries[1].lastSeen = time.Now().Add(-2 * time.Minute)
	th.prune()
	th.mu.Unlock()

	th.mu.Lock()
	_, gone := th.entries[1]
	_, kept := th.entries[2]
	th.mu.Unlock()

	require.False(t, gone)
	require.True(t, kept)
}
