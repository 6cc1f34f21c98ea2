package database

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// Connect establishes a connection to MongoDB and prepares the indexes
// that back the per-entity key uniqueness rules.
func Connect(mongoURI string) (*mongo.Database, error) {
	cs, err := connstring.ParseAndValidate(mongoURI)
	if err != nil {
		return nil, fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logrus.Info("connected to MongoDB")

	dbName := cs.Database
	if dbName == "" {
		dbName = "truckops"
	}

	db := client.Database(dbName)
	if err := createIndexes(db); err != nil {
		logrus.WithError(err).Warn("failed to create indexes")
	}

	return db, nil
}

// naturalKeyIndexes maps collections to the field acting as the unique
// natural key.
var naturalKeyIndexes = map[string]string{
	"employees": "name",
	"clients":   "name",
	"suppliers": "name",
	"trucks":    "number",
	"trailers":  "number",
}

// sequencedCollections hold records keyed by a synthetic integer id.
var sequencedCollections = []string{
	"trips", "maintenance", "fines", "parts", "tirs",
	"visas", "insurances", "accounts",
}

func createIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for collection, field := range naturalKeyIndexes {
		index := mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true),
		}
		if _, err := db.Collection(collection).Indexes().CreateOne(ctx, index); err != nil {
			return fmt.Errorf("index on %s.%s: %w", collection, field, err)
		}
	}

	for _, collection := range sequencedCollections {
		index := mongo.IndexModel{
			Keys:    bson.D{{Key: "record_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		}
		if _, err := db.Collection(collection).Indexes().CreateOne(ctx, index); err != nil {
			return fmt.Errorf("index on %s.record_id: %w", collection, err)
		}
	}

	// Documents are looked up by parent and type; multiple employee
	// documents may share a type, so the index is not unique.
	documentIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "parent_type", Value: 1},
			{Key: "parent_key", Value: 1},
			{Key: "type", Value: 1},
		},
	}
	if _, err := db.Collection("documents").Indexes().CreateOne(ctx, documentIndex); err != nil {
		return fmt.Errorf("index on documents: %w", err)
	}

	logrus.Info("database indexes ready")
	return nil
}

// Disconnect closes the MongoDB connection.
func Disconnect(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}

	logrus.Info("disconnected from MongoDB")
	return nil
}
