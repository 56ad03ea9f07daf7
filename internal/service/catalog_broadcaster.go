package service

import (
	"context"
	"encoding/json"
	"time"

	"storefront-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ICatalogBroadcaster tells other instances that the catalog changed so they
// reload from the repository as well.
type ICatalogBroadcaster interface {
	Announce(ctx context.Context) error
	Listen(ctx context.Context, onChange func(ctx context.Context))
}

type catalogInvalidation struct {
	Origin     string    `json:"origin"`
	OccurredAt time.Time `json:"occurred_at"`
}

type redisCatalogBroadcaster struct {
	rdb        *redis.Client
	channel    string
	instanceId string
	logger     logger.ILogger
}

func NewRedisCatalogBroadcaster(rdb *redis.Client, channel string, logger logger.ILogger) ICatalogBroadcaster {
	return &redisCatalogBroadcaster{
		rdb:        rdb,
		channel:    channel,
		instanceId: uuid.NewString(),
		logger:     logger,
	}
}

func (b *redisCatalogBroadcaster) Announce(ctx context.Context) error {
	if b.rdb == nil {
		return nil
	}
	payload, err := json.Marshal(catalogInvalidation{Origin: b.instanceId, OccurredAt: time.Now()})
	if err != nil {
		return err
	}
	return b.rdb.Publish(ctx, b.channel, payload).Err()
}

// Listen blocks until ctx is cancelled. Announcements from this instance are ignored.
func (b *redisCatalogBroadcaster) Listen(ctx context.Context, onChange func(ctx context.Context)) {
	if b.rdb == nil {
		return
	}

	pubsub := b.rdb.Subscribe(ctx, b.channel)
	defer pubsub.Close()

	b.logger.Info("CATALOG", "Listening for catalog invalidations", map[string]interface{}{"channel": b.channel})

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if !b.shouldReload(msg.Payload) {
				continue
			}
			onChange(ctx)
		}
	}
}

func (b *redisCatalogBroadcaster) shouldReload(payload string) bool {
	var inv catalogInvalidation
	if err := json.Unmarshal([]byte(payload), &inv); err != nil {
		b.logger.Warn("CATALOG", "Ignoring malformed catalog invalidation", map[string]interface{}{"error": err.Error()})
		return false
	}
	return inv.Origin != b.instanceId
}
