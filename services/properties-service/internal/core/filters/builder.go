// Package filters переводит параметры запроса списка объявлений в domain.Predicate.
//
// Каждый распознанный параметр добавляет одно условие. Параметры диапазона
// (minPrice/maxPrice, minArea/maxArea) дописывают только свою границу в общий
// объект диапазона поля, поэтому результат не зависит от порядка обработки.
package filters

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"real-estate-platform/services/properties-service/internal/core/domain"
)

// Request распознаваемые параметры запроса: имя -> необработанное значение
type Request map[string]string

// FromQuery берет первое значение каждого параметра строки запроса
func FromQuery(q url.Values) Request {
	req := make(Request, len(q))
	for name, values := range q {
		if len(values) > 0 {
			req[name] = values[0]
		}
	}
	return req
}

type paramKind int

const (
	kindEqualsString paramKind = iota
	kindEqualsType
	kindEqualsInt
	kindLower
	kindUpper
)

type param struct {
	name  string
	field string
	kind  paramKind
}

// params порядок таблицы не влияет на результат
var params = []param{
	{name: "city", field: domain.FieldCity, kind: kindEqualsString},
	{name: "minPrice", field: domain.FieldPrice, kind: kindLower},
	{name: "maxPrice", field: domain.FieldPrice, kind: kindUpper},
	{name: "minArea", field: domain.FieldSize, kind: kindLower},
	{name: "maxArea", field: domain.FieldSize, kind: kindUpper},
	{name: "bedrooms", field: domain.FieldBedrooms, kind: kindEqualsInt},
	{name: "bathrooms", field: domain.FieldBathrooms, kind: kindEqualsInt},
	{name: "type", field: domain.FieldType, kind: kindEqualsType},
}

var paramsByName = func() map[string]param {
	m := make(map[string]param, len(params))
	for _, p := range params {
		m[p.name] = p
	}
	return m
}()

// Parameters имена распознаваемых параметров
func Parameters() []string {
	names := make([]string, 0, len(params))
	for _, p := range params {
		names = append(names, p.name)
	}
	return names
}

// Build строит предикат. Пустые и пробельные значения считаются отсутствующими,
// нераспознанные параметры игнорируются. Ошибка разбора - *domain.InvalidParameterError.
func Build(req Request) (domain.Predicate, error) {
	pred := domain.NewPredicate()
	for _, p := range params {
		raw, ok := req[p.name]
		if !ok {
			continue
		}
		if err := apply(pred, p, raw); err != nil {
			return domain.Predicate{}, err
		}
	}
	return pred, nil
}

// Apply добавляет в предикат один параметр. Нераспознанное имя не меняет предикат.
func Apply(pred domain.Predicate, name, raw string) error {
	p, ok := paramsByName[name]
	if !ok {
		return nil
	}
	return apply(pred, p, raw)
}

func apply(pred domain.Predicate, p param, raw string) error {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}

	switch p.kind {
	case kindEqualsString:
		pred.Equals[p.field] = value

	case kindEqualsType:
		if !domain.PropertyType(value).Valid() {
			return invalid(p, raw)
		}
		pred.Equals[p.field] = value

	case kindEqualsInt:
		n, ok := parseInt(value)
		if !ok {
			return invalid(p, raw)
		}
		pred.Equals[p.field] = n

	case kindLower, kindUpper:
		f, ok := parseFloat(value)
		if !ok {
			return invalid(p, raw)
		}
		r := pred.RangeFor(p.field)
		if p.kind == kindLower {
			r.Lower = &f
		} else {
			r.Upper = &f
		}
	}
	return nil
}

func invalid(p param, raw string) error {
	return &domain.InvalidParameterError{Field: p.name, Value: raw}
}

// parseFloat принимает только конечные десятичные числа
func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// parseInt принимает целые числа, в том числе записанные как "2.0"
func parseInt(s string) (int, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, ok := parseFloat(s)
	if !ok || f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}
