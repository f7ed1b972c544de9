package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"real-estate-platform/services/properties-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteProperty(t *testing.T) {
	storage := &memoryStorage{}
	created, err := storage.Create(context.Background(), json.RawMessage(validPayload))
	require.NoError(t, err)

	uc := NewDeletePropertyUseCase(storage)

	t.Run("malformed id", func(t *testing.T) {
		err := uc.Execute(context.Background(), "not-a-uuid")
		assert.ErrorIs(t, err, domain.ErrInvalidParameter)
		assert.Len(t, storage.items, 1)
	})

	t.Run("unknown id leaves store untouched", func(t *testing.T) {
		err := uc.Execute(context.Background(), uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Len(t, storage.items, 1)
	})

	t.Run("existing id", func(t *testing.T) {
		require.NoError(t, uc.Execute(context.Background(), created.ID.String()))
		assert.Empty(t, storage.items)
	})
}
