package search

import (
	"strings"

	"github.com/campus-api/internal/domain"
)

// OutletFilter - nil поле означает неактивный фильтр
type OutletFilter struct {
	Name     *string
	Location *Point
	Landmark *string
	Time     *domain.TimeOfDay
	Rating   *float64
	Item     *string
}

// Predicates собирает предикаты активных фильтров
func (f OutletFilter) Predicates() []Predicate[*domain.FoodOutlet] {
	var ps []Predicate[*domain.FoodOutlet]

	if f.Name != nil {
		name := *f.Name
		ps = append(ps, func(o *domain.FoodOutlet) bool {
			return strings.Contains(o.Name, name)
		})
	}
	if f.Location != nil {
		center := *f.Location
		ps = append(ps, func(o *domain.FoodOutlet) bool {
			return near(o.Location, center)
		})
	}
	if f.Landmark != nil {
		landmark := *f.Landmark
		ps = append(ps, func(o *domain.FoodOutlet) bool {
			return containsPtr(o.Landmark, landmark)
		})
	}
	if f.Time != nil {
		at := *f.Time
		ps = append(ps, func(o *domain.FoodOutlet) bool {
			return o.IsOpenAt(at)
		})
	}
	if f.Rating != nil {
		threshold := *f.Rating
		ps = append(ps, func(o *domain.FoodOutlet) bool {
			return ratingAtLeast(o.Rating, threshold)
		})
	}
	if f.Item != nil {
		item := *f.Item
		ps = append(ps, func(o *domain.FoodOutlet) bool {
			for _, m := range o.Menu {
				if strings.Contains(m.Name, item) {
					return true
				}
			}
			return false
		})
	}

	return ps
}

// Outlets применяет фильтр к точкам, упорядоченным по ID
func Outlets(outlets []*domain.FoodOutlet, f OutletFilter) []*domain.FoodOutlet {
	return Apply(outlets, f.Predicates()...)
}
