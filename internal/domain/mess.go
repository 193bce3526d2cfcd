package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type MessMenuItem struct {
	ID          int64    `json:"id" db:"id"`
	Name        string   `json:"name" db:"name"`
	Description *string  `json:"description" db:"description"`
	Rating      *float64 `json:"rating" db:"rating"`
	Cal         *int     `json:"cal" db:"cal"`
	Image       *string  `json:"image" db:"image"`
}

// Meal - приём пищи
type Meal string

const (
	MealBreakfast Meal = "breakfast"
	MealLunch     Meal = "lunch"
	MealSnacks    Meal = "snacks"
	MealDinner    Meal = "dinner"
)

// Meals - в порядке колонок таблицы
var Meals = []Meal{MealBreakfast, MealLunch, MealSnacks, MealDinner}

// Weekday - день недели в нижнем регистре, как в маршрутах API
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseWeekday - регистр не важен
func ParseWeekday(s string) (Weekday, bool) {
	d := Weekday(strings.ToLower(strings.TrimSpace(s)))
	for _, w := range Weekdays {
		if w == d {
			return d, true
		}
	}
	return "", false
}

// WeekdayOf - перевод из time.Weekday
func WeekdayOf(d time.Weekday) Weekday {
	if d == time.Sunday {
		return Sunday
	}
	return Weekdays[int(d)-1]
}

// DayMenu - четыре необязательных списка блюд
type DayMenu struct {
	Breakfast []*MessMenuItem `json:"breakfast"`
	Lunch     []*MessMenuItem `json:"lunch"`
	Snacks    []*MessMenuItem `json:"snacks"`
	Dinner    []*MessMenuItem `json:"dinner"`
}

// Items возвращает список блюда приёма пищи
func (d *DayMenu) Items(m Meal) []*MessMenuItem {
	if d == nil {
		return nil
	}
	switch m {
	case MealBreakfast:
		return d.Breakfast
	case MealLunch:
		return d.Lunch
	case MealSnacks:
		return d.Snacks
	case MealDinner:
		return d.Dinner
	}
	return nil
}

// SetItems заменяет список приёма пищи
func (d *DayMenu) SetItems(m Meal, items []*MessMenuItem) {
	switch m {
	case MealBreakfast:
		d.Breakfast = items
	case MealLunch:
		d.Lunch = items
	case MealSnacks:
		d.Snacks = items
	case MealDinner:
		d.Dinner = items
	}
}

// IsEmpty - нет ни одного списка
func (d *DayMenu) IsEmpty() bool {
	return d == nil || (d.Breakfast == nil && d.Lunch == nil && d.Snacks == nil && d.Dinner == nil)
}

// MessMenu - меню столовой на месяц; ключ (month, year)
type MessMenu struct {
	ID        int64    `json:"id"`
	Month     int      `json:"month"`
	Year      int      `json:"year"`
	Monday    *DayMenu `json:"monday"`
	Tuesday   *DayMenu `json:"tuesday"`
	Wednesday *DayMenu `json:"wednesday"`
	Thursday  *DayMenu `json:"thursday"`
	Friday    *DayMenu `json:"friday"`
	Saturday  *DayMenu `json:"saturday"`
	Sunday    *DayMenu `json:"sunday"`
}

// Day возвращает меню на день
func (m *MessMenu) Day(d Weekday) *DayMenu {
	if m == nil {
		return nil
	}
	switch d {
	case Monday:
		return m.Monday
	case Tuesday:
		return m.Tuesday
	case Wednesday:
		return m.Wednesday
	case Thursday:
		return m.Thursday
	case Friday:
		return m.Friday
	case Saturday:
		return m.Saturday
	case Sunday:
		return m.Sunday
	}
	return nil
}

// SetDay заменяет меню на день
func (m *MessMenu) SetDay(d Weekday, menu *DayMenu) {
	switch d {
	case Monday:
		m.Monday = menu
	case Tuesday:
		m.Tuesday = menu
	case Wednesday:
		m.Wednesday = menu
	case Thursday:
		m.Thursday = menu
	case Friday:
		m.Friday = menu
	case Saturday:
		m.Saturday = menu
	case Sunday:
		m.Sunday = menu
	}
}

// AllItems - все блюда меню за неделю
func (m *MessMenu) AllItems() []*MessMenuItem {
	var items []*MessMenuItem
	for _, d := range Weekdays {
		day := m.Day(d)
		for _, meal := range Meals {
			items = append(items, day.Items(meal)...)
		}
	}
	return items
}

// MessMenuKey - меню по ID или по паре (month, year)
type MessMenuKey struct {
	ID    *int64
	Month *int
	Year  *int
}

// MealTiming - окно приёма пищи
type MealTiming struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// MessTimings - окна всех четырёх приёмов пищи
type MessTimings struct {
	Breakfast MealTiming `json:"breakfast"`
	Lunch     MealTiming `json:"lunch"`
	Snacks    MealTiming `json:"snacks"`
	Dinner    MealTiming `json:"dinner"`
}

// ServesAt - хотя бы одно окно содержит t
func (m *MessTimings) ServesAt(t TimeOfDay) bool {
	for _, w := range []MealTiming{m.Breakfast, m.Lunch, m.Snacks, m.Dinner} {
		if t.Within(w.Start, w.End) {
			return true
		}
	}
	return false
}

func (m *MessTimings) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported timings type %T", src)
	}
	return json.Unmarshal(raw, m)
}

func (m MessTimings) Value() (driver.Value, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Mess - столовая с текущим меню
type Mess struct {
	ID       int64        `json:"id"`
	Name     string       `json:"name"`
	Location *Location    `json:"location"`
	Landmark *string      `json:"landmark"`
	Timings  *MessTimings `json:"timings"`
	Rating   *float64     `json:"rating"`
	Menu     *MessMenu    `json:"menu"`
	Image    *string      `json:"image"`
}

// MessKey - столовая по ID или имени
type MessKey struct {
	ID   *int64
	Name *string
}

// MessMenuItemKey - блюдо по ID или имени
type MessMenuItemKey struct {
	ID   *int64
	Name *string
}
