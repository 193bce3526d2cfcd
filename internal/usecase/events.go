package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/campus-api/internal/domain"
	"github.com/campus-api/internal/domain/repository"
)

const publishTimeout = 2 * time.Second

// EventPublisher пишет события об изменениях в Redis Stream.
// Nil publisher или publisher без стрима ничего не делает.
type EventPublisher struct {
	stream     repository.StreamRepository
	streamName string
	logger     *zap.Logger
}

func NewEventPublisher(
	stream repository.StreamRepository,
	streamName string,
	logger *zap.Logger,
) *EventPublisher {
	if streamName == "" {
		streamName = domain.StreamCampusChanges
	}
	return &EventPublisher{
		stream:     stream,
		streamName: streamName,
		logger:     logger,
	}
}

// Publish вызывается после успешного коммита; ошибка только логируется
func (p *EventPublisher) Publish(ctx context.Context, entity string, action domain.ChangeAction, id int64) {
	if p == nil || p.stream == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := domain.ChangeEvent{
		Entity: entity,
		Action: action,
		ID:     id,
		At:     time.Now().UTC(),
	}
	if err := p.stream.PublishChange(ctx, p.streamName, event); err != nil {
		p.logger.Warn("Failed to publish change event",
			zap.String("entity", entity),
			zap.String("action", string(action)),
			zap.Int64("id", id),
			zap.Error(err),
		)
	}
}
