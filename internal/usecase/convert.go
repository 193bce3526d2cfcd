package usecase

import (
	"strings"

	"github.com/campus-api/internal/domain"
	"github.com/campus-api/internal/pkg/errors"
	"github.com/campus-api/internal/usecase/dto"
)

// Явные функции сборки и слияния сущностей из запросов.
// Строковые поля точек питания и их меню хранятся в нижнем регистре.

func lower(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.ToLower(*s)
	return &v
}

func toLocation(req *dto.LocationRequest) *domain.Location {
	if req == nil {
		return nil
	}
	return &domain.Location{Latitude: req.Latitude, Longitude: req.Longitude}
}

func parseTime(s string) (domain.TimeOfDay, error) {
	t, err := domain.ParseTimeOfDay(s)
	if err != nil {
		return 0, errors.ErrInvalidTimeFormat
	}
	return t, nil
}

func parseOptionalTime(s *string) (*domain.TimeOfDay, error) {
	if s == nil {
		return nil, nil
	}
	t, err := parseTime(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseTimeList(list []*string) ([]*domain.TimeOfDay, error) {
	if len(list) == 0 {
		return nil, nil
	}
	times := make([]*domain.TimeOfDay, 0, len(list))
	for _, s := range list {
		t, err := parseOptionalTime(s)
		if err != nil {
			return nil, err
		}
		times = append(times, t)
	}
	return times, nil
}

func toMealTiming(req dto.MealTimingRequest) (domain.MealTiming, error) {
	start, err := parseTime(req.Start)
	if err != nil {
		return domain.MealTiming{}, err
	}
	end, err := parseTime(req.End)
	if err != nil {
		return domain.MealTiming{}, err
	}
	return domain.MealTiming{Start: start, End: end}, nil
}

func toMessTimings(req *dto.MessTimingsRequest) (*domain.MessTimings, error) {
	if req == nil {
		return nil, nil
	}

	var (
		timings domain.MessTimings
		err     error
	)
	if timings.Breakfast, err = toMealTiming(req.Breakfast); err != nil {
		return nil, err
	}
	if timings.Lunch, err = toMealTiming(req.Lunch); err != nil {
		return nil, err
	}
	if timings.Snacks, err = toMealTiming(req.Snacks); err != nil {
		return nil, err
	}
	if timings.Dinner, err = toMealTiming(req.Dinner); err != nil {
		return nil, err
	}
	return &timings, nil
}

func newFoodOutlet(req dto.CreateFoodOutletRequest) (*domain.FoodOutlet, error) {
	openTime, err := parseOptionalTime(req.OpenTime)
	if err != nil {
		return nil, err
	}
	closeTime, err := parseOptionalTime(req.CloseTime)
	if err != nil {
		return nil, err
	}

	return &domain.FoodOutlet{
		Name:      strings.ToLower(req.Name),
		Location:  toLocation(req.Location),
		Landmark:  lower(req.Landmark),
		OpenTime:  openTime,
		CloseTime: closeTime,
		Rating:    req.Rating,
		Image:     req.Image,
	}, nil
}

// mergeFoodOutlet переносит заданные поля; при ошибке outlet не меняется
func mergeFoodOutlet(outlet *domain.FoodOutlet, req dto.UpdateFoodOutletRequest) error {
	openTime, err := parseOptionalTime(req.OpenTime)
	if err != nil {
		return err
	}
	closeTime, err := parseOptionalTime(req.CloseTime)
	if err != nil {
		return err
	}

	if req.Name != nil {
		outlet.Name = *lower(req.Name)
	}
	if req.Location != nil {
		outlet.Location = toLocation(req.Location)
	}
	if req.Landmark != nil {
		outlet.Landmark = lower(req.Landmark)
	}
	if openTime != nil {
		outlet.OpenTime = openTime
	}
	if closeTime != nil {
		outlet.CloseTime = closeTime
	}
	if req.Rating != nil {
		outlet.Rating = req.Rating
	}
	if req.Image != nil {
		outlet.Image = req.Image
	}
	return nil
}

func newMenuItem(outletID int64, req dto.CreateMenuItemRequest) *domain.MenuItem {
	return &domain.MenuItem{
		Name:        strings.ToLower(req.Name),
		OutletID:    outletID,
		Price:       *req.Price,
		Description: lower(req.Description),
		Rating:      req.Rating,
		Size:        lower(req.Size),
		Cal:         req.Cal,
		Image:       req.Image,
	}
}

func mergeMenuItem(item *domain.MenuItem, req dto.UpdateMenuItemRequest) {
	if req.Name != nil {
		item.Name = *lower(req.Name)
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Description != nil {
		item.Description = lower(req.Description)
	}
	if req.Rating != nil {
		item.Rating = req.Rating
	}
	if req.Size != nil {
		item.Size = lower(req.Size)
	}
	if req.Cal != nil {
		item.Cal = req.Cal
	}
	if req.Image != nil {
		item.Image = req.Image
	}
}

func newMess(req dto.CreateMessRequest) (*domain.Mess, error) {
	timings, err := toMessTimings(req.Timings)
	if err != nil {
		return nil, err
	}
	return &domain.Mess{
		Name:     req.Name,
		Location: toLocation(req.Location),
		Landmark: req.Landmark,
		Timings:  timings,
		Rating:   req.Rating,
		Image:    req.Image,
	}, nil
}

func mergeMess(mess *domain.Mess, req dto.UpdateMessRequest) error {
	timings, err := toMessTimings(req.Timings)
	if err != nil {
		return err
	}

	if req.Name != nil {
		mess.Name = *req.Name
	}
	if req.Location != nil {
		mess.Location = toLocation(req.Location)
	}
	if req.Landmark != nil {
		mess.Landmark = req.Landmark
	}
	if timings != nil {
		mess.Timings = timings
	}
	if req.Rating != nil {
		mess.Rating = req.Rating
	}
	if req.Image != nil {
		mess.Image = req.Image
	}
	return nil
}

func newMessMenuItem(req dto.CreateMessMenuItemRequest) *domain.MessMenuItem {
	return &domain.MessMenuItem{
		Name:        req.Name,
		Description: req.Description,
		Rating:      req.Rating,
		Cal:         req.Cal,
		Image:       req.Image,
	}
}

func mergeMessMenuItem(item *domain.MessMenuItem, req dto.UpdateMessMenuItemRequest) {
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.Rating != nil {
		item.Rating = req.Rating
	}
	if req.Cal != nil {
		item.Cal = req.Cal
	}
	if req.Image != nil {
		item.Image = req.Image
	}
}

// weekDays раскладывает запрос по дням недели в порядке domain.Weekdays
func weekDays(req dto.WeekMenuRequest) map[domain.Weekday]*dto.DayMenuRequest {
	return map[domain.Weekday]*dto.DayMenuRequest{
		domain.Monday:    req.Monday,
		domain.Tuesday:   req.Tuesday,
		domain.Wednesday: req.Wednesday,
		domain.Thursday:  req.Thursday,
		domain.Friday:    req.Friday,
		domain.Saturday:  req.Saturday,
		domain.Sunday:    req.Sunday,
	}
}

func mealIDs(day *dto.DayMenuRequest, meal domain.Meal) []int64 {
	switch meal {
	case domain.MealBreakfast:
		return day.Breakfast
	case domain.MealLunch:
		return day.Lunch
	case domain.MealSnacks:
		return day.Snacks
	case domain.MealDinner:
		return day.Dinner
	}
	return nil
}

func newBusStop(req dto.CreateBusStopRequest) *domain.BusStop {
	return &domain.BusStop{
		Name:     req.Name,
		Location: toLocation(req.Location),
		Landmark: req.Landmark,
	}
}

func mergeBusStop(stop *domain.BusStop, req dto.UpdateBusStopRequest) {
	if req.Name != nil {
		stop.Name = *req.Name
	}
	if req.Location != nil {
		stop.Location = toLocation(req.Location)
	}
	if req.Landmark != nil {
		stop.Landmark = req.Landmark
	}
}
