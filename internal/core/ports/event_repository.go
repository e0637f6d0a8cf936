package ports

import (
	"context"

	"github.com/lucamusic/event-platform/internal/core/domain"
)

// EventRepository defines the interface for event catalog persistence.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) (*domain.Event, error)
	FindByID(ctx context.Context, id string) (*domain.Event, error)
	FindByMusicStyle(ctx context.Context, style string) ([]domain.Event, error)
	Update(ctx context.Context, event *domain.Event) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
}
