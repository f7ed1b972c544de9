package postgres

import (
	"testing"

	"real-estate-platform/services/properties-service/internal/core/domain"
	"real-estate-platform/services/properties-service/internal/core/filters"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPredicateEmpty(t *testing.T) {
	where, args, err := applyPredicate(domain.NewPredicate())
	require.NoError(t, err)
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestApplyPredicateFull(t *testing.T) {
	pred, err := filters.Build(filters.Request{
		"city":     "Berlin",
		"type":     "house",
		"bedrooms": "3",
		"minPrice": "100000",
		"maxPrice": "500000",
		"maxArea":  "200",
	})
	require.NoError(t, err)

	where, args, err := applyPredicate(pred)
	require.NoError(t, err)

	assert.Equal(t,
		"WHERE bedrooms = $1 AND city = $2 AND type = $3 AND price >= $4 AND price <= $5 AND size <= $6",
		where)
	assert.Equal(t, []interface{}{3, "Berlin", "house", 100000.0, 500000.0, 200.0}, args)
}

func TestApplyPredicateSingleBound(t *testing.T) {
	pred, err := filters.Build(filters.Request{"minArea": "75"})
	require.NoError(t, err)

	where, args, err := applyPredicate(pred)
	require.NoError(t, err)
	assert.Equal(t, "WHERE size >= $1", where)
	assert.Equal(t, []interface{}{75.0}, args)
}

func TestApplyPredicateUnknownField(t *testing.T) {
	pred := domain.NewPredicate()
	pred.Equals["color"] = "red"

	_, _, err := applyPredicate(pred)
	assert.Error(t, err)
}
