package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"real-estate-platform/pkg/contextkeys"
	"real-estate-platform/pkg/logging"
	"real-estate-platform/services/image-service/internal/core/domain"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const ImagesCollection = "images"

type imageDocument struct {
	ID           string    `bson:"_id"`
	PropertyID   string    `bson:"propertyId"`
	Filename     string    `bson:"filename"`
	OriginalName string    `bson:"originalName,omitempty"`
	MimeType     string    `bson:"mimetype,omitempty"`
	Size         int64     `bson:"size"`
	URL          string    `bson:"url"`
	ThumbnailURL string    `bson:"thumbnailUrl,omitempty"`
	CreatedAt    time.Time `bson:"createdAt"`
}

func (d imageDocument) toDomain() (domain.Image, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.Image{}, err
	}
	propertyID, err := uuid.Parse(d.PropertyID)
	if err != nil {
		return domain.Image{}, err
	}
	return domain.Image{
		ID:           id,
		PropertyID:   propertyID,
		Filename:     d.Filename,
		OriginalName: d.OriginalName,
		MimeType:     d.MimeType,
		Size:         d.Size,
		URL:          d.URL,
		ThumbnailURL: d.ThumbnailURL,
		CreatedAt:    d.CreatedAt.UTC(),
	}, nil
}

// ImageRepository хранит записи в коллекции images
type ImageRepository struct {
	db         *mongo.Database
	collection *mongo.Collection
}

func NewImageRepository(db *mongo.Database) (*ImageRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("mongo.Database cannot be nil")
	}
	return &ImageRepository{db: db, collection: db.Collection(ImagesCollection)}, nil
}

func (r *ImageRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "propertyId", Value: 1}, {Key: "createdAt", Value: 1}},
	})
	return err
}

func (r *ImageRepository) Save(ctx context.Context, image domain.Image) error {
	doc := imageDocument{
		ID:           image.ID.String(),
		PropertyID:   image.PropertyID.String(),
		Filename:     image.Filename,
		OriginalName: image.OriginalName,
		MimeType:     image.MimeType,
		Size:         image.Size,
		URL:          image.URL,
		ThumbnailURL: image.ThumbnailURL,
		CreatedAt:    image.CreatedAt,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to insert image", err, logging.Fields{
			"component": "MongoImageRepository",
			"image_id":  doc.ID,
		})
		return fmt.Errorf("failed to insert image: %w", err)
	}
	return nil
}

func (r *ImageRepository) FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]domain.Image, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.D{{Key: "propertyId", Value: propertyID.String()}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query images: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []imageDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode images: %w", err)
	}

	images := make([]domain.Image, 0, len(docs))
	for _, doc := range docs {
		img, err := doc.toDomain()
		if err != nil {
			contextkeys.LoggerFromContext(ctx).Warn("Skipping image document with malformed id", logging.Fields{"_id": doc.ID})
			continue
		}
		images = append(images, img)
	}
	return images, nil
}

func (r *ImageRepository) Delete(ctx context.Context, id uuid.UUID) (*domain.Image, error) {
	var doc imageDocument
	err := r.collection.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: id.String()}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete image: %w", err)
	}
	img, err := doc.toDomain()
	if err != nil {
		return nil, fmt.Errorf("deleted image has malformed id: %w", err)
	}
	return &img, nil
}

func (r *ImageRepository) Ping(ctx context.Context) error {
	return r.db.Client().Ping(ctx, readpref.Primary())
}
