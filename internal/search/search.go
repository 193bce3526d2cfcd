// Package search фильтрует полностью загруженные коллекции конъюнкцией предикатов.
package search

import (
	"strings"

	"github.com/campus-api/internal/domain"
	"github.com/campus-api/internal/pkg/utils"
)

// MaxDistanceKm - радиус фильтра по локации
const MaxDistanceKm = 1.0

// Predicate - условие отбора; неактивный фильтр просто не добавляется
type Predicate[T any] func(T) bool

// Apply оставляет элементы, прошедшие все предикаты, сохраняя исходный порядок
func Apply[T any](items []T, predicates ...Predicate[T]) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if matchesAll(item, predicates) {
			result = append(result, item)
		}
	}
	return result
}

func matchesAll[T any](item T, predicates []Predicate[T]) bool {
	for _, p := range predicates {
		if !p(item) {
			return false
		}
	}
	return true
}

// Point - координаты центра фильтра по локации
type Point struct {
	Lat float64
	Lon float64
}

// ParsePoint разбирает строковую локацию; false при некорректных координатах
func ParsePoint(loc domain.Location) (Point, bool) {
	lat, lon, ok := utils.ParseCoordinates(loc.Latitude, loc.Longitude)
	if !ok {
		return Point{}, false
	}
	return Point{Lat: lat, Lon: lon}, true
}

// near - объект без локации или с нечитаемой локацией не проходит фильтр
func near(loc *domain.Location, center Point) bool {
	if loc == nil {
		return false
	}
	p, ok := ParsePoint(*loc)
	if !ok {
		return false
	}
	return utils.HaversineDistance(center.Lat, center.Lon, p.Lat, p.Lon) <= MaxDistanceKm
}

func containsPtr(field *string, sub string) bool {
	return field != nil && strings.Contains(*field, sub)
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func ratingAtLeast(rating *float64, threshold float64) bool {
	return rating != nil && *rating >= threshold
}
