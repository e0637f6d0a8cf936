package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lucamusic/event-platform/internal/core/domain"
)

const eventCollection = "events"

type MongoEventRepository struct {
	coll *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *MongoEventRepository {
	return &MongoEventRepository{coll: db.Collection(eventCollection)}
}

type mongoLocation struct {
	Name     string `bson:"name"`
	Address  string `bson:"address"`
	Capacity int    `bson:"capacity"`
}

type mongoEvent struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Name             string             `bson:"name"`
	ShortDescription string             `bson:"short_description"`
	LongDescription  string             `bson:"long_description,omitempty"`
	MusicStyle       string             `bson:"music_style"`
	PhotoURL         string             `bson:"photo_url,omitempty"`
	StartDate        time.Time          `bson:"start_date"`
	Price            float64            `bson:"price"`
	Location         mongoLocation      `bson:"location"`
	CreatedAt        int64              `bson:"created_at"`
	UpdatedAt        int64              `bson:"updated_at"`
}

func (r *MongoEventRepository) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	doc := toMongoEvent(event)
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	created := *event
	created.ID = oid.Hex()
	return &created, nil
}

func (r *MongoEventRepository) FindByID(ctx context.Context, id string) (*domain.Event, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEventNotFound
	}

	var me mongoEvent
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&me); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return toDomainEvent(me), nil
}

func (r *MongoEventRepository) FindByMusicStyle(ctx context.Context, style string) ([]domain.Event, error) {
	cur, err := r.coll.Find(ctx, bson.M{"music_style": style})
	if err != nil {
		return nil, fmt.Errorf("find events by music style: %w", err)
	}
	defer cur.Close(ctx)

	events := make([]domain.Event, 0)
	for cur.Next(ctx) {
		var me mongoEvent
		if err := cur.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode event: %w", err)
		}
		events = append(events, *toDomainEvent(me))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

func (r *MongoEventRepository) Update(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	oid, err := primitive.ObjectIDFromHex(event.ID)
	if err != nil {
		return nil, domain.ErrEventNotFound
	}

	doc := toMongoEvent(event)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrEventNotFound
	}
	return event, nil
}

func (r *MongoEventRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrEventNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func toMongoEvent(e *domain.Event) mongoEvent {
	return mongoEvent{
		Name:             e.Name,
		ShortDescription: e.ShortDescription,
		LongDescription:  e.LongDescription,
		MusicStyle:       e.MusicStyle,
		PhotoURL:         e.PhotoURL,
		StartDate:        e.StartDate,
		Price:            e.Price,
		Location: mongoLocation{
			Name:     e.Location.Name,
			Address:  e.Location.Address,
			Capacity: e.Location.Capacity,
		},
		CreatedAt: e.CreatedAt.Unix(),
		UpdatedAt: e.UpdatedAt.Unix(),
	}
}

func toDomainEvent(me mongoEvent) *domain.Event {
	return &domain.Event{
		ID:               me.ID.Hex(),
		Name:             me.Name,
		ShortDescription: me.ShortDescription,
		LongDescription:  me.LongDescription,
		MusicStyle:       me.MusicStyle,
		PhotoURL:         me.PhotoURL,
		StartDate:        me.StartDate,
		Price:            me.Price,
		Location: domain.Location{
			Name:     me.Location.Name,
			Address:  me.Location.Address,
			Capacity: me.Location.Capacity,
		},
		CreatedAt: unixToTime(me.CreatedAt),
		UpdatedAt: unixToTime(me.UpdatedAt),
	}
}
