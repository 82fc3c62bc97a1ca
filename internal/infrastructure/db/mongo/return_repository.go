package mongo

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/retours-express/returns-platform/internal/core/domain"
	"github.com/retours-express/returns-platform/internal/core/ports"
)

const collectionReturns = "returns"

// ReturnRepository is the durable twin of the in-memory return store.
// Ordering is by request date descending, matching the memory adapter's
// most-recent-first contract.
type ReturnRepository struct {
	col *mongo.Collection
}

func NewReturnRepository(db *mongo.Database) *ReturnRepository {
	return &ReturnRepository{col: db.Collection(collectionReturns)}
}

// Append inserts a new return request document. The return id is the
// document key, so a collision surfaces as a duplicate-key error.
func (r *ReturnRepository) Append(ctx context.Context, req *domain.ReturnRequest) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, req)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateReturn
		}
		return err
	}
	return nil
}

func (r *ReturnRepository) FindByID(ctx context.Context, id string) (*domain.ReturnRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var req domain.ReturnRequest
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&req)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReturnNotFound
		}
		return nil, err
	}
	return &req, nil
}

// UpdateStatus atomically sets the new status and progress and pushes the
// timeline entry.
func (r *ReturnRepository) UpdateStatus(ctx context.Context, id string, status domain.ReturnStatus, progress int, entry domain.TimelineEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$set":  bson.M{"status": status, "progress": progress},
			"$push": bson.M{"timeline": entry},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrReturnNotFound
	}
	return nil
}

func (r *ReturnRepository) SetSatisfaction(ctx context.Context, id string, score int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"satisfaction": score}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrReturnNotFound
	}
	return nil
}

// List returns all matching requests, most recent first.
func (r *ReturnRepository) List(ctx context.Context, filter ports.ListReturnsFilter) ([]*domain.ReturnRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" && filter.Status != "all" {
		query["status"] = filter.Status
	}
	if filter.ClientEmail != "" {
		query["client_email"] = filter.ClientEmail
	}
	if filter.Search != "" {
		regex := searchPattern(filter.Search)
		query["$or"] = bson.A{
			bson.M{"_id": regex},
			bson.M{"client_email": regex},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "request_date", Value: -1}})
	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []*domain.ReturnRequest
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// searchPattern mirrors the memory adapter's case-insensitive substring
// match. The term is escaped so metacharacters in ids and emails (".",
// "+", "(") match literally instead of as regex syntax.
func searchPattern(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
}

// EnsureIndexes creates the secondary indexes used by List.
func (r *ReturnRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "client_email", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "request_date", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
