package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/campus-api/internal/domain"
	"github.com/campus-api/internal/domain/repository"
)

// streamMaxLen - приблизительный предел длины стрима (XADD MAXLEN ~)
const streamMaxLen = 10000

type streamRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewStreamRepository(client *redis.Client, logger *zap.Logger) repository.StreamRepository {
	return &streamRepository{
		client: client,
		logger: logger,
	}
}

// PublishChange пишет entity, action и id отдельными полями, чтобы потребитель
// мог фильтровать без разбора JSON; событие целиком лежит в data
func (r *streamRepository) PublishChange(ctx context.Context, stream string, event domain.ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}

	msgID, err := r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		MaxLen: streamMaxLen,
		Approx: true,
		Values: map[string]interface{}{
			"entity": event.Entity,
			"action": string(event.Action),
			"id":     event.ID,
			"data":   string(payload),
		},
	}).Result()
	if err != nil {
		r.logger.Error("Failed to publish change event",
			zap.String("stream", stream),
			zap.String("entity", event.Entity),
			zap.Int64("id", event.ID),
			zap.Error(err))
		return fmt.Errorf("failed to publish to stream: %w", err)
	}

	r.logger.Debug("Change event published",
		zap.String("stream", stream),
		zap.String("entity", event.Entity),
		zap.String("action", string(event.Action)),
		zap.String("message_id", msgID))
	return nil
}
