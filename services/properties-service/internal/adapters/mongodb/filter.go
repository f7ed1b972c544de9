package mongodb

import (
	"fmt"
	"sort"

	"real-estate-platform/services/properties-service/internal/core/domain"

	"go.mongodb.org/mongo-driver/bson"
)

// fields соответствие полей предиката путям в документе
var fields = map[string]string{
	domain.FieldCity:      "location.city",
	domain.FieldType:      "type",
	domain.FieldBedrooms:  "bedrooms",
	domain.FieldBathrooms: "bathrooms",
	domain.FieldPrice:     "price",
	domain.FieldSize:      "size",
}

// toFilter переводит предикат в фильтр find: равенства как есть, диапазоны через $gte/$lte
func toFilter(pred domain.Predicate) (bson.D, error) {
	filter := bson.D{}

	for _, field := range sortedKeys(pred.Equals) {
		path, ok := fields[field]
		if !ok {
			return nil, fmt.Errorf("mongodb: unsupported predicate field %q", field)
		}
		filter = append(filter, bson.E{Key: path, Value: pred.Equals[field]})
	}

	for _, field := range sortedKeys(pred.Ranges) {
		path, ok := fields[field]
		if !ok {
			return nil, fmt.Errorf("mongodb: unsupported predicate field %q", field)
		}
		r := pred.Ranges[field]
		if r == nil || (r.Lower == nil && r.Upper == nil) {
			continue
		}
		bounds := bson.D{}
		if r.Lower != nil {
			bounds = append(bounds, bson.E{Key: "$gte", Value: *r.Lower})
		}
		if r.Upper != nil {
			bounds = append(bounds, bson.E{Key: "$lte", Value: *r.Upper})
		}
		filter = append(filter, bson.E{Key: path, Value: bounds})
	}

	return filter, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
