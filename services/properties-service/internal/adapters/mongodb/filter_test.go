package mongodb

import (
	"testing"

	"real-estate-platform/services/properties-service/internal/core/domain"
	"real-estate-platform/services/properties-service/internal/core/filters"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestToFilter_Empty(t *testing.T) {
	filter, err := toFilter(domain.NewPredicate())
	require.NoError(t, err)
	assert.Empty(t, filter)
}

func TestToFilter_Full(t *testing.T) {
	pred, err := filters.Build(filters.Request{
		"city":     "Berlin",
		"type":     "house",
		"bedrooms": "3",
		"minPrice": "100000",
		"maxPrice": "500000",
		"maxArea":  "120",
	})
	require.NoError(t, err)

	filter, err := toFilter(pred)
	require.NoError(t, err)

	expected := bson.D{
		{Key: "bedrooms", Value: 3},
		{Key: "location.city", Value: "Berlin"},
		{Key: "type", Value: "house"},
		{Key: "price", Value: bson.D{{Key: "$gte", Value: 100000.0}, {Key: "$lte", Value: 500000.0}}},
		{Key: "size", Value: bson.D{{Key: "$lte", Value: 120.0}}},
	}
	assert.Equal(t, expected, filter)
}

func TestToFilter_InvertedRangeKeepsBothBounds(t *testing.T) {
	pred, err := filters.Build(filters.Request{"minPrice": "900", "maxPrice": "100"})
	require.NoError(t, err)

	filter, err := toFilter(pred)
	require.NoError(t, err)
	assert.Equal(t, bson.D{
		{Key: "price", Value: bson.D{{Key: "$gte", Value: 900.0}, {Key: "$lte", Value: 100.0}}},
	}, filter)
}

func TestToFilter_UnknownField(t *testing.T) {
	pred := domain.NewPredicate()
	pred.Equals["owner"] = "x"

	_, err := toFilter(pred)
	assert.Error(t, err)
}
