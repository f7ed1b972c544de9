package usecase

import (
	"context"
	"errors"
	"testing"

	"real-estate-platform/services/image-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListImages(t *testing.T) {
	propertyID := uuid.New()
	repo := &memoryRepo{images: []domain.Image{
		{ID: uuid.New(), PropertyID: propertyID, Filename: "a.png"},
		{ID: uuid.New(), PropertyID: uuid.New(), Filename: "b.png"},
	}}
	uc := NewListImagesUseCase(repo)

	images, err := uc.Execute(context.Background(), propertyID.String())
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "a.png", images[0].Filename)

	images, err = uc.Execute(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.NotNil(t, images)
	assert.Empty(t, images)

	_, err = uc.Execute(context.Background(), "42")
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)

	repo.FindErr = errors.New("timeout")
	_, err = uc.Execute(context.Background(), propertyID.String())
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestDeleteImage(t *testing.T) {
	imageID := uuid.New()
	repo := &memoryRepo{images: []domain.Image{{ID: imageID, Filename: "images-1-1.png"}}}
	blobs := newMemoryBlobs()
	blobs.objects["images-1-1.png"] = []byte("x")
	uc := NewDeleteImageUseCase(repo, blobs)

	require.NoError(t, uc.Execute(context.Background(), imageID.String()))
	assert.Equal(t, 0, repo.count())
	assert.Equal(t, 0, blobs.count())

	err := uc.Execute(context.Background(), imageID.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Execute(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestDeleteImage_BlobFailureIsNotFatal(t *testing.T) {
	imageID := uuid.New()
	repo := &memoryRepo{images: []domain.Image{{ID: imageID, Filename: "gone.png"}}}
	blobs := newMemoryBlobs()

	assert.NoError(t, NewDeleteImageUseCase(repo, blobs).Execute(context.Background(), imageID.String()))
	assert.Equal(t, 0, repo.count())
}
