package mongodb

import (
	"context"
	"testing"
	"time"

	"real-estate-platform/services/image-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestImageRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find by property", func(mt *mtest.T) {
		repo, err := NewImageRepository(mt.DB)
		require.NoError(mt, err)

		imageID, propertyID := uuid.New(), uuid.New()
		ns := mt.DB.Name() + "." + ImagesCollection
		first := mtest.CreateCursorResponse(1, ns, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: imageID.String()},
				{Key: "propertyId", Value: propertyID.String()},
				{Key: "filename", Value: "images-1-1.png"},
				{Key: "size", Value: int64(2048)},
				{Key: "url", Value: "/api/images/uploads/images-1-1.png"},
				{Key: "createdAt", Value: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
			},
			bson.D{
				{Key: "_id", Value: "legacy-object-id"},
				{Key: "propertyId", Value: propertyID.String()},
				{Key: "filename", Value: "old.png"},
			},
		)
		mt.AddMockResponses(first, mtest.CreateCursorResponse(0, ns, mtest.NextBatch))

		images, err := repo.FindByProperty(context.Background(), propertyID)
		require.NoError(mt, err)
		require.Len(mt, images, 1)
		assert.Equal(mt, imageID, images[0].ID)
		assert.Equal(mt, int64(2048), images[0].Size)
	})

	mt.Run("save", func(mt *mtest.T) {
		repo, err := NewImageRepository(mt.DB)
		require.NoError(mt, err)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err = repo.Save(context.Background(), domain.Image{ID: uuid.New(), PropertyID: uuid.New(), Filename: "a.png"})
		assert.NoError(mt, err)
	})

	mt.Run("delete returns removed record", func(mt *mtest.T) {
		repo, err := NewImageRepository(mt.DB)
		require.NoError(mt, err)

		imageID := uuid.New()
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: bson.D{
				{Key: "_id", Value: imageID.String()},
				{Key: "propertyId", Value: uuid.NewString()},
				{Key: "filename", Value: "images-2-2.jpg"},
			}},
		})

		img, err := repo.Delete(context.Background(), imageID)
		require.NoError(mt, err)
		assert.Equal(mt, "images-2-2.jpg", img.Filename)
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		repo, err := NewImageRepository(mt.DB)
		require.NoError(mt, err)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: nil}})

		_, err = repo.Delete(context.Background(), uuid.New())
		assert.ErrorIs(mt, err, domain.ErrNotFound)
	})
}
