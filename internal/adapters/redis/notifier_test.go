package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metaaudit/internal/logger"
)

func TestNotifier_PublishSubscribe(t *testing.T) {
	mr := miniredis.RunT(t)
	client := NewClient(mr.Addr())
	t.Cleanup(func() { _ = client.Close() })
	n := NewNotifier(client, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, n.Ping(ctx))

	ch := n.Subscribe(ctx)

	// The subscription is established asynchronously; publish until it is seen.
	require.Eventually(t, func() bool {
		_ = n.Notify(ctx, "job-1")
		select {
		case id := <-ch:
			return id == "job-1"
		case <-time.After(20 * time.Millisecond):
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)
}

func TestNotifier_SubscribeClosesOnCancel(t *testing.T) {
	mr := miniredis.RunT(t)
	client := NewClient(mr.Addr())
	t.Cleanup(func() { _ = client.Close() })
	n := NewNotifier(client, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	ch := n.Subscribe(ctx)
	cancel()

	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-ch:
			return !ok
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)
}

func TestNotifier_NotifyFailsWhenServerDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := NewClient(mr.Addr())
	t.Cleanup(func() { _ = client.Close() })
	n := NewNotifier(client, logger.NewNop())
	mr.Close()

	err := n.Notify(context.Background(), "job-2")

	assert.Error(t, err)
}
