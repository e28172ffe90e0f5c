package metadata

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// defaultFeedChannel is the Redis Pub/Sub channel metadata changes land on.
const defaultFeedChannel = "metadata:changed"

// redisFeed implements Feed on Redis Pub/Sub. Delivery is at-most-once;
// listeners that miss events recover by re-reading the repository.
type redisFeed struct {
	rdb     *redis.Client
	channel string
}

// NewRedisFeed creates a metadata feed on the given Redis client. An empty
// channel selects the default.
func NewRedisFeed(rdb *redis.Client, channel string) Feed {
	if channel == "" {
		channel = defaultFeedChannel
	}
	return &redisFeed{rdb: rdb, channel: channel}
}

// Publish sends one change event to the feed channel.
func (f *redisFeed) Publish(ctx context.Context, event ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("feed: marshal event: %w", err)
	}
	if err := f.rdb.Publish(ctx, f.channel, payload).Err(); err != nil {
		return fmt.Errorf("feed: publish %s: %w", f.channel, err)
	}
	return nil
}

// Subscribe returns a channel of change events. The subscription lives until
// the context is cancelled; the returned channel is closed at that point.
func (f *redisFeed) Subscribe(ctx context.Context) (<-chan ChangeEvent, error) {
	pubsub := f.rdb.Subscribe(ctx, f.channel)

	// confirm the subscription before handing the channel out
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("feed: subscribe %s: %w", f.channel, err)
	}

	out := make(chan ChangeEvent, 64)
	go func() {
		defer close(out)
		defer pubsub.Close()

		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var event ChangeEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					continue
				}
				select {
				case out <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
