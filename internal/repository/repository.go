package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound is returned when no record matches the given key.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when a record with the same key already exists.
	ErrDuplicateKey = errors.New("record already exists")
	// ErrInvalidKey is returned when a path key cannot be parsed for the entity.
	ErrInvalidKey = errors.New("invalid record key")
)

const opTimeout = 10 * time.Second

// Repository is a CRUD store over a single MongoDB collection,
// parameterized over the record type. Entity-specific key handling
// lives in the service layer; the repository only speaks filters.
type Repository[T any] struct {
	collection *mongo.Collection
}

func NewRepository[T any](db *mongo.Database, collection string) *Repository[T] {
	return &Repository[T]{collection: db.Collection(collection)}
}

func (r *Repository[T]) FindAll() ([]*T, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeAll[T](ctx, cursor)
}

func (r *Repository[T]) Find(filter bson.M) ([]*T, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeAll[T](ctx, cursor)
}

func (r *Repository[T]) FindOne(filter bson.M) (*T, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var record T
	err := r.collection.FindOne(ctx, filter).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &record, nil
}

func (r *Repository[T]) Insert(record *T) (*T, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, record); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, err
	}

	return record, nil
}

// Replace swaps the whole stored document for the given record. The
// record is trusted as the complete new state.
func (r *Repository[T]) Replace(filter bson.M, record *T) (*T, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	result := r.collection.FindOneAndReplace(
		ctx,
		filter,
		record,
		options.FindOneAndReplace().SetReturnDocument(options.After),
	)

	var replaced T
	if err := result.Decode(&replaced); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &replaced, nil
}

func (r *Repository[T]) Delete(filter bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// NextRecordID returns max(record_id)+1, or 1 for an empty collection.
func (r *Repository[T]) NextRecordID() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	opts := options.FindOne().
		SetSort(bson.D{{Key: "record_id", Value: -1}}).
		SetProjection(bson.M{"record_id": 1})

	var last struct {
		RecordID int `bson:"record_id"`
	}
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&last)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 1, nil
		}
		return 0, err
	}

	return last.RecordID + 1, nil
}

func decodeAll[T any](ctx context.Context, cursor *mongo.Cursor) ([]*T, error) {
	records := []*T{}
	for cursor.Next(ctx) {
		var record T
		if err := cursor.Decode(&record); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}

	return records, cursor.Err()
}
