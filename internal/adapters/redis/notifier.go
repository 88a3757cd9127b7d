// Package redis publishes crawl job notifications over Redis pub/sub so that
// workers in other processes wake up as soon as a job is queued.
package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"metaaudit/internal/logger"
)

// Channel is the pub/sub channel carrying queued job ids.
const Channel = "metaaudit:crawl_jobs"

type Notifier struct {
	client *goredis.Client
	log    logger.Logger
}

func NewClient(addr string) *goredis.Client {
	return goredis.NewClient(&goredis.Options{Addr: addr})
}

func NewNotifier(client *goredis.Client, log logger.Logger) *Notifier {
	return &Notifier{client: client, log: log}
}

// Ping checks connectivity.
func (n *Notifier) Ping(ctx context.Context) error {
	return n.client.Ping(ctx).Err()
}

func (n *Notifier) Notify(ctx context.Context, jobID string) error {
	if err := n.client.Publish(ctx, Channel, jobID).Err(); err != nil {
		return fmt.Errorf("publish job %s: %w", jobID, err)
	}
	return nil
}

// Subscribe returns job ids as they are published. The channel closes when
// ctx is done.
func (n *Notifier) Subscribe(ctx context.Context) <-chan string {
	sub := n.client.Subscribe(ctx, Channel)
	out := make(chan string, 16)
	go func() {
		defer close(out)
		defer sub.Close()
		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				select {
				case out <- msg.Payload:
				default:
					// A wake-up is already pending.
					n.log.Debug("dropping crawl job notification", logger.String("job_id", msg.Payload))
				}
			}
		}
	}()
	return out
}
