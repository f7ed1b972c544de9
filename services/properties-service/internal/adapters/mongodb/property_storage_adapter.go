package mongodb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"real-estate-platform/pkg/contextkeys"
	"real-estate-platform/pkg/logging"
	"real-estate-platform/services/properties-service/internal/adapters/propertydoc"
	"real-estate-platform/services/properties-service/internal/core/domain"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const PropertiesCollection = "properties"

// MongoStorageAdapter хранит объявления в коллекции properties
type MongoStorageAdapter struct {
	db         *mongo.Database
	collection *mongo.Collection
	now        func() time.Time
}

func NewMongoStorageAdapter(db *mongo.Database) (*MongoStorageAdapter, error) {
	if db == nil {
		return nil, fmt.Errorf("mongo.Database cannot be nil")
	}
	return &MongoStorageAdapter{
		db:         db,
		collection: db.Collection(PropertiesCollection),
		now:        time.Now,
	}, nil
}

// EnsureIndexes создает индексы по полям фильтра
func (a *MongoStorageAdapter) EnsureIndexes(ctx context.Context) error {
	_, err := a.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "location.city", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
		{Keys: bson.D{{Key: "type", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create property indexes: %w", err)
	}
	return nil
}

func (a *MongoStorageAdapter) Find(ctx context.Context, predicate domain.Predicate) ([]domain.Property, error) {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(logging.Fields{
		"component": "MongoStorageAdapter",
		"method":    "Find",
	})

	filter, err := toFilter(predicate)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "listingDate", Value: -1}, {Key: "_id", Value: 1}})
	cursor, err := a.collection.Find(ctx, filter, opts)
	if err != nil {
		repoLogger.Error("Failed to query properties", err, nil)
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []propertyDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode properties: %w", err)
	}

	properties := make([]domain.Property, 0, len(docs))
	for _, doc := range docs {
		p, err := doc.toDomain()
		if err != nil {
			repoLogger.Warn("Skipping document with malformed id", logging.Fields{"_id": doc.ID})
			continue
		}
		properties = append(properties, p)
	}

	repoLogger.Debug("Properties found", logging.Fields{"count": len(properties)})
	return properties, nil
}

func (a *MongoStorageAdapter) Create(ctx context.Context, payload json.RawMessage) (*domain.Property, error) {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(logging.Fields{
		"component": "MongoStorageAdapter",
		"method":    "Create",
	})

	p, err := propertydoc.Decode(payload, a.now())
	if err != nil {
		return nil, err
	}

	if _, err := a.collection.InsertOne(ctx, toDocument(*p)); err != nil {
		repoLogger.Error("Failed to insert property", err, nil)
		return nil, fmt.Errorf("failed to insert property: %w", err)
	}

	repoLogger.Debug("Property inserted", logging.Fields{"property_id": p.ID.String()})
	return p, nil
}

func (a *MongoStorageAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := a.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: id.String()}})
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to delete property", err, logging.Fields{
			"component":   "MongoStorageAdapter",
			"property_id": id.String(),
		})
		return fmt.Errorf("failed to delete property: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (a *MongoStorageAdapter) Ping(ctx context.Context) error {
	return a.db.Client().Ping(ctx, readpref.Primary())
}
