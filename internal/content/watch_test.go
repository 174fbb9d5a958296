package content

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestWatchInvalidates(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	writeFile(t, dir, "one.json", `{"id":"one"}`)

	store := NewStore(zaptest.NewLogger(t))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- store.Watch(ctx, dir)
	}()

	projects, err := store.Load(ctx, dir)
	require.NoError(t, err)
	require.Len(t, projects, 1)

	writeFile(t, dir, "two.json", `{"id":"two"}`)

	require.Eventually(t, func() bool {
		projects, err := store.Load(context.Background(), dir)
		return err == nil && len(projects) == 2
	}, 3*time.Second, 20*time.Millisecond, "watcher should invalidate the memoized set")

	cancel()
	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
