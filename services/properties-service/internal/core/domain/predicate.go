package domain

// Поля предиката, общие для всех хранилищ
const (
	FieldCity      = "location.city"
	FieldPrice     = "price"
	FieldSize      = "size"
	FieldBedrooms  = "bedrooms"
	FieldBathrooms = "bathrooms"
	FieldType      = "type"
)

// Range числовой диапазон с включительными границами. Границы задаются по отдельности.
type Range struct {
	Lower *float64 `json:"lower,omitempty"`
	Upper *float64 `json:"upper,omitempty"`
}

// Unsatisfiable true, если нижняя граница больше верхней
func (r Range) Unsatisfiable() bool {
	return r.Lower != nil && r.Upper != nil && *r.Lower > *r.Upper
}

func (r Range) Contains(v float64) bool {
	if r.Lower != nil && v < *r.Lower {
		return false
	}
	if r.Upper != nil && v > *r.Upper {
		return false
	}
	return true
}

// Predicate фильтр объявлений, не зависящий от хранилища: конъюнкция всех условий.
// Значения Equals: string для city и type, int для bedrooms и bathrooms.
type Predicate struct {
	Equals map[string]any    `json:"equals,omitempty"`
	Ranges map[string]*Range `json:"ranges,omitempty"`
}

func NewPredicate() Predicate {
	return Predicate{
		Equals: make(map[string]any),
		Ranges: make(map[string]*Range),
	}
}

// IsEmpty true, если предикат пропускает все объявления
func (p Predicate) IsEmpty() bool {
	return len(p.Equals) == 0 && len(p.Ranges) == 0
}

// RangeFor возвращает диапазон поля, создавая его при первом обращении
func (p Predicate) RangeFor(field string) *Range {
	r, ok := p.Ranges[field]
	if !ok {
		r = &Range{}
		p.Ranges[field] = r
	}
	return r
}

// Matches вычисляет предикат над объявлением в памяти
func (p Predicate) Matches(prop Property) bool {
	for field, want := range p.Equals {
		switch field {
		case FieldCity:
			if prop.Location.City != want {
				return false
			}
		case FieldType:
			if string(prop.Type) != want {
				return false
			}
		case FieldBedrooms:
			if prop.Bedrooms == nil || *prop.Bedrooms != want {
				return false
			}
		case FieldBathrooms:
			if prop.Bathrooms == nil || *prop.Bathrooms != want {
				return false
			}
		default:
			return false
		}
	}
	for field, r := range p.Ranges {
		var v float64
		switch field {
		case FieldPrice:
			v = prop.Price
		case FieldSize:
			v = prop.Size
		default:
			return false
		}
		if !r.Contains(v) {
			return false
		}
	}
	return true
}
