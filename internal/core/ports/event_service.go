package ports

import (
	"context"
	"time"

	"github.com/lucamusic/event-platform/internal/core/domain"
)

// EventInput carries the writable fields of a catalog entry.
type EventInput struct {
	Name             string
	ShortDescription string
	LongDescription  string
	MusicStyle       string
	PhotoURL         string
	StartDate        time.Time
	Price            float64
	Location         domain.Location
}

type EventService interface {
	Create(ctx context.Context, input EventInput) (*domain.Event, error)
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	GetByMusicStyle(ctx context.Context, style string) ([]domain.Event, error)
	Update(ctx context.Context, id string, input EventInput) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
}
