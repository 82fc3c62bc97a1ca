package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/retours-express/returns-platform/internal/core/domain"
)

const collectionEvents = "return_events"

// EventRepository persists carrier events to the audit collection.
type EventRepository struct {
	col *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{col: db.Collection(collectionEvents)}
}

func (r *EventRepository) InsertEvent(ctx context.Context, event *domain.ReturnEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, event)
	return err
}

// ListByReturn returns one return's audit trail, oldest first.
func (r *EventRepository) ListByReturn(ctx context.Context, returnID string) ([]*domain.ReturnEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{"return_id": returnID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := make([]*domain.ReturnEvent, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
