package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lucamusic/event-platform/internal/core/domain"
	"github.com/lucamusic/event-platform/internal/core/ports"
	"github.com/lucamusic/event-platform/internal/metrics"
)

// StyleCache abstracts the Redis-backed cache for music-style lookups.
// Get returns (nil, nil) on a cache miss.
type StyleCache interface {
	Get(ctx context.Context, style string) ([]domain.Event, error)
	Set(ctx context.Context, style string, events []domain.Event) error
	Invalidate(ctx context.Context, style string) error
}

type eventService struct {
	repo  ports.EventRepository
	cache StyleCache
	log   zerolog.Logger
}

// NewEventService returns an EventService implementation.
func NewEventService(repo ports.EventRepository, cache StyleCache, log zerolog.Logger) ports.EventService {
	return &eventService{repo: repo, cache: cache, log: log}
}

func (s *eventService) Create(ctx context.Context, input ports.EventInput) (*domain.Event, error) {
	if input.Name == "" || input.MusicStyle == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	event := &domain.Event{
		Name:             input.Name,
		ShortDescription: input.ShortDescription,
		LongDescription:  input.LongDescription,
		MusicStyle:       input.MusicStyle,
		PhotoURL:         input.PhotoURL,
		StartDate:        input.StartDate,
		Price:            input.Price,
		Location:         input.Location,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.invalidateStyle(ctx, created.MusicStyle)
	metrics.EventsCreatedTotal.WithLabelValues(created.MusicStyle).Inc()
	s.log.Info().Str("event_id", created.ID).Str("music_style", created.MusicStyle).Msg("event created")
	return created, nil
}

func (s *eventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.repo.FindByID(ctx, id)
}

// GetByMusicStyle serves lookups cache-first. Cache failures degrade to a
// repository read.
func (s *eventService) GetByMusicStyle(ctx context.Context, style string) ([]domain.Event, error) {
	if style == "" {
		return nil, domain.ErrInvalidInput
	}

	cached, err := s.cache.Get(ctx, style)
	if err != nil {
		s.log.Warn().Err(err).Str("music_style", style).Msg("style cache read failed, falling back to repository")
	} else if cached != nil {
		metrics.StyleLookupsTotal.WithLabelValues("hit").Inc()
		return cached, nil
	}

	metrics.StyleLookupsTotal.WithLabelValues("miss").Inc()
	events, err := s.repo.FindByMusicStyle(ctx, style)
	if err != nil {
		return nil, fmt.Errorf("get events by music style: %w", err)
	}

	if err := s.cache.Set(ctx, style, events); err != nil {
		s.log.Warn().Err(err).Str("music_style", style).Msg("failed to fill style cache")
	}
	return events, nil
}

func (s *eventService) Update(ctx context.Context, id string, input ports.EventInput) (*domain.Event, error) {
	if id == "" || input.Name == "" || input.MusicStyle == "" {
		return nil, domain.ErrInvalidInput
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := &domain.Event{
		ID:               existing.ID,
		Name:             input.Name,
		ShortDescription: input.ShortDescription,
		LongDescription:  input.LongDescription,
		MusicStyle:       input.MusicStyle,
		PhotoURL:         input.PhotoURL,
		StartDate:        input.StartDate,
		Price:            input.Price,
		Location:         input.Location,
		CreatedAt:        existing.CreatedAt,
		UpdatedAt:        time.Now().UTC(),
	}

	saved, err := s.repo.Update(ctx, updated)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	// A restyled event leaves stale entries under both keys.
	s.invalidateStyle(ctx, existing.MusicStyle)
	if saved.MusicStyle != existing.MusicStyle {
		s.invalidateStyle(ctx, saved.MusicStyle)
	}
	return saved, nil
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.invalidateStyle(ctx, existing.MusicStyle)
	s.log.Info().Str("event_id", id).Msg("event deleted")
	return nil
}

func (s *eventService) invalidateStyle(ctx context.Context, style string) {
	if err := s.cache.Invalidate(ctx, style); err != nil {
		s.log.Warn().Err(err).Str("music_style", style).Msg("failed to invalidate style cache")
	}
}
