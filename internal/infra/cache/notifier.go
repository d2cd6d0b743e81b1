package cache

import (
	"context"
	"encoding/json"
	"log/slog"

	"hotel-ops/internal/infra"
	"hotel-ops/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
)

const changeChannel = "hotel-ops:changes"

// RedisChangeNotifier publishes change events on a redis channel so other
// processes (and the in-process cache invalidator) see lifecycle writes.
type RedisChangeNotifier struct {
	client *redis.Client
}

func NewRedisChangeNotifier(client *redis.Client) *RedisChangeNotifier {
	return &RedisChangeNotifier{client: client}
}

func (n *RedisChangeNotifier) Publish(ctx context.Context, event commands.ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return infra.WrapRepoErr("failed to marshal change event", err, infra.KindBadDocument)
	}
	if err := n.client.Publish(ctx, changeChannel, payload).Err(); err != nil {
		return infra.WrapRepoErr("failed to publish change event", err)
	}
	return nil
}

// Subscriber delivers change events to a callback until ctx is canceled.
type Subscriber struct {
	client *redis.Client
}

func NewSubscriber(client *redis.Client) *Subscriber {
	return &Subscriber{client: client}
}

// Run blocks on the pub/sub channel. Malformed payloads are logged and
// skipped so one bad publisher cannot stall the loop.
func (s *Subscriber) Run(ctx context.Context, handle func(commands.ChangeEvent)) error {
	sub := s.client.Subscribe(ctx, changeChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var event commands.ChangeEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				slog.Warn("dropping malformed change event", "error", err)
				continue
			}
			handle(event)
		}
	}
}
