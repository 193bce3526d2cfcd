package repository

import (
	"context"

	"github.com/campus-api/internal/domain"
)

// StreamRepository - журнал изменений в Redis Streams
type StreamRepository interface {
	// PublishChange добавляет событие в конец стрима
	PublishChange(ctx context.Context, stream string, event domain.ChangeEvent) error
}
