package postgres

import (
	"fmt"
	"sort"
	"strings"

	"real-estate-platform/services/properties-service/internal/core/domain"
)

// columns соответствие полей предиката колонкам таблицы properties
var columns = map[string]string{
	domain.FieldCity:      "city",
	domain.FieldType:      "type",
	domain.FieldBedrooms:  "bedrooms",
	domain.FieldBathrooms: "bathrooms",
	domain.FieldPrice:     "price",
	domain.FieldSize:      "size",
}

type queryBuilder struct {
	conditions []string
	args       []interface{}
	argId      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		argId: 1,
		args:  make([]interface{}, 0),
	}
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argId))
	qb.args = append(qb.args, arg)
	qb.argId++
}

// AddFloatFilter добавляет включительные границы, nil граница пропускается
func (qb *queryBuilder) AddFloatFilter(fieldName string, min *float64, max *float64) {
	if min != nil {
		qb.addCondition("%s >= $%d", fieldName, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", fieldName, *max)
	}
}

func (qb *queryBuilder) build() (string, []interface{}) {
	if len(qb.conditions) == 0 {
		return "", qb.args
	}
	return "WHERE " + strings.Join(qb.conditions, " AND "), qb.args
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// applyPredicate переводит предикат в WHERE с позиционными параметрами.
// Поля обходятся в отсортированном порядке, чтобы текст запроса был стабильным.
func applyPredicate(pred domain.Predicate) (string, []interface{}, error) {
	qb := newQueryBuilder()

	for _, field := range sortedKeys(pred.Equals) {
		column, ok := columns[field]
		if !ok {
			return "", nil, fmt.Errorf("postgres: unsupported predicate field %q", field)
		}
		qb.addCondition("%s = $%d", column, pred.Equals[field])
	}

	for _, field := range sortedKeys(pred.Ranges) {
		column, ok := columns[field]
		if !ok {
			return "", nil, fmt.Errorf("postgres: unsupported predicate field %q", field)
		}
		r := pred.Ranges[field]
		if r == nil {
			continue
		}
		qb.AddFloatFilter(column, r.Lower, r.Upper)
	}

	where, args := qb.build()
	return where, args, nil
}
