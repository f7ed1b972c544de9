package usecase

import (
	"context"
	"errors"
	"testing"

	"real-estate-platform/services/properties-service/internal/core/domain"
	"real-estate-platform/services/properties-service/internal/core/filters"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedStorage() *memoryStorage {
	two, three := 2, 3
	return &memoryStorage{items: []domain.Property{
		{Price: 150000, Size: 60, Type: domain.PropertyTypeApartment, Location: domain.Location{City: "Berlin"}, Bedrooms: &two},
		{Price: 450000, Size: 140, Type: domain.PropertyTypeHouse, Location: domain.Location{City: "Berlin"}, Bedrooms: &three},
		{Price: 800000, Size: 300, Type: domain.PropertyTypeCommercial, Location: domain.Location{City: "Munich"}},
	}}
}

func TestFindPropertiesFilters(t *testing.T) {
	uc := NewFindPropertiesUseCase(seedStorage())

	tests := []struct {
		name   string
		req    filters.Request
		prices []float64
	}{
		{name: "no filters returns everything", req: filters.Request{}, prices: []float64{150000, 450000, 800000}},
		{name: "city", req: filters.Request{"city": "Berlin"}, prices: []float64{150000, 450000}},
		{name: "price range both bounds", req: filters.Request{"minPrice": "100000", "maxPrice": "500000"}, prices: []float64{150000, 450000}},
		{name: "inclusive bounds", req: filters.Request{"minPrice": "450000", "maxPrice": "450000"}, prices: []float64{450000}},
		{name: "area and type", req: filters.Request{"minArea": "100", "type": "commercial"}, prices: []float64{800000}},
		{name: "bedrooms", req: filters.Request{"bedrooms": "3"}, prices: []float64{450000}},
		{name: "min above max", req: filters.Request{"minPrice": "500000", "maxPrice": "100000"}, prices: []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.Execute(context.Background(), tt.req)
			require.NoError(t, err)

			prices := make([]float64, 0, len(got))
			for _, p := range got {
				prices = append(prices, p.Price)
			}
			assert.ElementsMatch(t, tt.prices, prices)
		})
	}
}

func TestFindPropertiesInvalidParameterSkipsStorage(t *testing.T) {
	called := false
	uc := NewFindPropertiesUseCase(&mockStorage{
		FindFunc: func(context.Context, domain.Predicate) ([]domain.Property, error) {
			called = true
			return nil, nil
		},
	})

	_, err := uc.Execute(context.Background(), filters.Request{"minPrice": "abc"})

	require.Error(t, err)
	var perr *domain.InvalidParameterError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "minPrice", perr.Field)
	assert.False(t, called)
}

func TestFindPropertiesStorageFailure(t *testing.T) {
	uc := NewFindPropertiesUseCase(&mockStorage{
		FindFunc: func(context.Context, domain.Predicate) ([]domain.Property, error) {
			return nil, errors.New("connection reset by peer")
		},
	})

	_, err := uc.Execute(context.Background(), filters.Request{"city": "Berlin"})

	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.Contains(t, err.Error(), "connection reset by peer")
}

func TestFindPropertiesPassesPredicateToStorage(t *testing.T) {
	var seen domain.Predicate
	uc := NewFindPropertiesUseCase(&mockStorage{
		FindFunc: func(_ context.Context, predicate domain.Predicate) ([]domain.Property, error) {
			seen = predicate
			return []domain.Property{}, nil
		},
	})

	_, err := uc.Execute(context.Background(), filters.Request{"maxPrice": "500000", "minPrice": "100000"})
	require.NoError(t, err)

	require.Contains(t, seen.Ranges, domain.FieldPrice)
	r := seen.Ranges[domain.FieldPrice]
	require.NotNil(t, r.Lower)
	require.NotNil(t, r.Upper)
	assert.Equal(t, 100000.0, *r.Lower)
	assert.Equal(t, 500000.0, *r.Upper)
}
