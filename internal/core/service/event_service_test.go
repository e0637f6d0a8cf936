package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lucamusic/event-platform/internal/core/domain"
	"github.com/lucamusic/event-platform/internal/core/ports"
)

type stubEventRepo struct {
	events map[string]*domain.Event
	nextID int
	finds  int
}

func newStubEventRepo() *stubEventRepo {
	return &stubEventRepo{events: make(map[string]*domain.Event)}
}

func (r *stubEventRepo) Create(_ context.Context, event *domain.Event) (*domain.Event, error) {
	r.nextID++
	created := *event
	created.ID = string(rune('a' + r.nextID - 1))
	r.events[created.ID] = &created
	clone := created
	return &clone, nil
}

func (r *stubEventRepo) FindByID(_ context.Context, id string) (*domain.Event, error) {
	if e, ok := r.events[id]; ok {
		clone := *e
		return &clone, nil
	}
	return nil, domain.ErrEventNotFound
}

func (r *stubEventRepo) FindByMusicStyle(_ context.Context, style string) ([]domain.Event, error) {
	r.finds++
	out := make([]domain.Event, 0)
	for _, e := range r.events {
		if e.MusicStyle == style {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *stubEventRepo) Update(_ context.Context, event *domain.Event) (*domain.Event, error) {
	if _, ok := r.events[event.ID]; !ok {
		return nil, domain.ErrEventNotFound
	}
	clone := *event
	r.events[event.ID] = &clone
	return event, nil
}

func (r *stubEventRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(r.events, id)
	return nil
}

type stubStyleCache struct {
	entries     map[string][]domain.Event
	invalidated []string
	getErr      error
}

func newStubStyleCache() *stubStyleCache {
	return &stubStyleCache{entries: make(map[string][]domain.Event)}
}

func (c *stubStyleCache) Get(_ context.Context, style string) ([]domain.Event, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries[style], nil
}

func (c *stubStyleCache) Set(_ context.Context, style string, events []domain.Event) error {
	c.entries[style] = events
	return nil
}

func (c *stubStyleCache) Invalidate(_ context.Context, style string) error {
	c.invalidated = append(c.invalidated, style)
	delete(c.entries, style)
	return nil
}

func rockInput() ports.EventInput {
	return ports.EventInput{
		Name:             "Test01",
		ShortDescription: "an evening of rock",
		MusicStyle:       "rock",
		PhotoURL:         "https://example.com/p.jpg",
		StartDate:        time.Now().Add(48 * time.Hour),
		Price:            25,
		Location:         domain.Location{Name: "The Hall", Address: "Main St 1", Capacity: 5000},
	}
}

func TestEventService_Create(t *testing.T) {
	repo := newStubEventRepo()
	cache := newStubStyleCache()
	svc := NewEventService(repo, cache, zerolog.Nop())

	event, err := svc.Create(context.Background(), rockInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if event.ID == "" {
		t.Fatalf("expected id to be assigned")
	}
	if event.MusicStyle != "rock" {
		t.Fatalf("unexpected music style: %q", event.MusicStyle)
	}
	if len(cache.invalidated) != 1 || cache.invalidated[0] != "rock" {
		t.Fatalf("expected rock cache entry to be invalidated, got %v", cache.invalidated)
	}
}

func TestEventService_Create_Validation(t *testing.T) {
	svc := NewEventService(newStubEventRepo(), newStubStyleCache(), zerolog.Nop())

	in := rockInput()
	in.Name = ""
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestEventService_GetByMusicStyle_CacheMiss(t *testing.T) {
	repo := newStubEventRepo()
	cache := newStubStyleCache()
	svc := NewEventService(repo, cache, zerolog.Nop())

	if _, err := svc.Create(context.Background(), rockInput()); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	events, err := svc.GetByMusicStyle(context.Background(), "rock")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if repo.finds != 1 {
		t.Fatalf("expected one repository read, got %d", repo.finds)
	}
	if cached := cache.entries["rock"]; len(cached) != 1 {
		t.Fatalf("expected cache to be filled, got %v", cached)
	}
}

func TestEventService_GetByMusicStyle_CacheHit(t *testing.T) {
	repo := newStubEventRepo()
	cache := newStubStyleCache()
	svc := NewEventService(repo, cache, zerolog.Nop())

	cache.entries["jazz"] = []domain.Event{{ID: "x", Name: "Cached", MusicStyle: "jazz"}}

	events, err := svc.GetByMusicStyle(context.Background(), "jazz")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if len(events) != 1 || events[0].Name != "Cached" {
		t.Fatalf("expected cached event, got %v", events)
	}
	if repo.finds != 0 {
		t.Fatalf("expected no repository read on cache hit, got %d", repo.finds)
	}
}

func TestEventService_GetByMusicStyle_CacheFailureFallsBack(t *testing.T) {
	repo := newStubEventRepo()
	cache := newStubStyleCache()
	cache.getErr = errors.New("redis down")
	svc := NewEventService(repo, cache, zerolog.Nop())

	if _, err := svc.Create(context.Background(), rockInput()); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	events, err := svc.GetByMusicStyle(context.Background(), "rock")
	if err != nil {
		t.Fatalf("expected fallback to repository, got %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
}

func TestEventService_Update_Validation(t *testing.T) {
	repo := newStubEventRepo()
	svc := NewEventService(repo, newStubStyleCache(), zerolog.Nop())

	created, err := svc.Create(context.Background(), rockInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	for _, strip := range []func(*ports.EventInput){
		func(in *ports.EventInput) { in.Name = "" },
		func(in *ports.EventInput) { in.MusicStyle = "" },
	} {
		in := rockInput()
		strip(&in)
		if _, err := svc.Update(context.Background(), created.ID, in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	}

	if got, err := repo.FindByID(context.Background(), created.ID); err != nil || got.Name != "Test01" {
		t.Fatalf("expected event unchanged, got %v (%v)", got, err)
	}
}

func TestEventService_Update_RestyleInvalidatesBothKeys(t *testing.T) {
	repo := newStubEventRepo()
	cache := newStubStyleCache()
	svc := NewEventService(repo, cache, zerolog.Nop())

	created, err := svc.Create(context.Background(), rockInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	cache.invalidated = nil

	in := rockInput()
	in.MusicStyle = "metal"
	updated, err := svc.Update(context.Background(), created.ID, in)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.MusicStyle != "metal" {
		t.Fatalf("unexpected style: %q", updated.MusicStyle)
	}
	if len(cache.invalidated) != 2 {
		t.Fatalf("expected both style keys invalidated, got %v", cache.invalidated)
	}
}

func TestEventService_Delete(t *testing.T) {
	repo := newStubEventRepo()
	cache := newStubStyleCache()
	svc := NewEventService(repo, cache, zerolog.Nop())

	created, err := svc.Create(context.Background(), rockInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestEventService_GetByID_NotFound(t *testing.T) {
	svc := NewEventService(newStubEventRepo(), newStubStyleCache(), zerolog.Nop())

	if _, err := svc.GetByID(context.Background(), "missing"); !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}
