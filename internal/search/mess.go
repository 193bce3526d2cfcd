package search

import (
	"github.com/campus-api/internal/domain"
)

// MessFilter - те же фильтры для столовых; время проверяется по окнам приёмов пищи.
// Имена столовых хранятся как есть, поэтому строки сравниваются без учёта регистра
type MessFilter struct {
	Name     *string
	Location *Point
	Landmark *string
	Time     *domain.TimeOfDay
	Rating   *float64
	Item     *string
}

func (f MessFilter) Predicates() []Predicate[*domain.Mess] {
	var ps []Predicate[*domain.Mess]

	if f.Name != nil {
		name := *f.Name
		ps = append(ps, func(m *domain.Mess) bool {
			return containsFold(m.Name, name)
		})
	}
	if f.Location != nil {
		center := *f.Location
		ps = append(ps, func(m *domain.Mess) bool {
			return near(m.Location, center)
		})
	}
	if f.Landmark != nil {
		landmark := *f.Landmark
		ps = append(ps, func(m *domain.Mess) bool {
			return m.Landmark != nil && containsFold(*m.Landmark, landmark)
		})
	}
	if f.Time != nil {
		at := *f.Time
		ps = append(ps, func(m *domain.Mess) bool {
			return m.Timings != nil && m.Timings.ServesAt(at)
		})
	}
	if f.Rating != nil {
		threshold := *f.Rating
		ps = append(ps, func(m *domain.Mess) bool {
			return ratingAtLeast(m.Rating, threshold)
		})
	}
	if f.Item != nil {
		item := *f.Item
		ps = append(ps, func(m *domain.Mess) bool {
			if m.Menu == nil {
				return false
			}
			for _, dish := range m.Menu.AllItems() {
				if containsFold(dish.Name, item) {
					return true
				}
			}
			return false
		})
	}

	return ps
}

// Messes применяет фильтр к столовым, упорядоченным по ID
func Messes(messes []*domain.Mess, f MessFilter) []*domain.Mess {
	return Apply(messes, f.Predicates()...)
}
