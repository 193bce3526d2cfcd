package dto

// LocationRequest - координаты в виде десятичных строк
type LocationRequest struct {
	Latitude  string `json:"latitude" validate:"required,latitude"`
	Longitude string `json:"longitude" validate:"required,longitude"`
}

// CreateFoodOutletRequest - запрос на создание точки питания
type CreateFoodOutletRequest struct {
	Name      string           `json:"name" validate:"required"`
	Location  *LocationRequest `json:"location,omitempty"`
	Landmark  *string          `json:"landmark,omitempty"`
	OpenTime  *string          `json:"open_time,omitempty"`
	CloseTime *string          `json:"close_time,omitempty"`
	Rating    *float64         `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	Image     *string          `json:"image,omitempty"`
}

// UpdateFoodOutletRequest - частичное обновление; nil поле не меняется
type UpdateFoodOutletRequest struct {
	Name      *string          `json:"name,omitempty" validate:"omitempty,min=1"`
	Location  *LocationRequest `json:"location,omitempty"`
	Landmark  *string          `json:"landmark,omitempty"`
	OpenTime  *string          `json:"open_time,omitempty"`
	CloseTime *string          `json:"close_time,omitempty"`
	Rating    *float64         `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	Image     *string          `json:"image,omitempty"`
}

// CreateMenuItemRequest - новая позиция меню точки питания
type CreateMenuItemRequest struct {
	Name        string   `json:"name" validate:"required"`
	Price       *int     `json:"price" validate:"required,min=0"`
	Description *string  `json:"description,omitempty"`
	Rating      *float64 `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	Size        *string  `json:"size,omitempty"`
	Cal         *int     `json:"cal,omitempty" validate:"omitempty,min=0"`
	Image       *string  `json:"image,omitempty"`
}

type UpdateMenuItemRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Price       *int     `json:"price,omitempty" validate:"omitempty,min=0"`
	Description *string  `json:"description,omitempty"`
	Rating      *float64 `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	Size        *string  `json:"size,omitempty"`
	Cal         *int     `json:"cal,omitempty" validate:"omitempty,min=0"`
	Image       *string  `json:"image,omitempty"`
}

// FilterRequest - фильтры поиска; все условия объединяются через AND
type FilterRequest struct {
	Name        *string          `json:"name,omitempty"`
	Location    *LocationRequest `json:"location,omitempty"`
	Landmark    *string          `json:"landmark,omitempty"`
	CurrentTime *string          `json:"current_time,omitempty"`
	Rating      *float64         `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	FoodItem    *string          `json:"food_item,omitempty"`
}

// FilterQuery - те же фильтры в query-параметрах GET запроса
type FilterQuery struct {
	Name        string   `query:"name"`
	Latitude    string   `query:"latitude"`
	Longitude   string   `query:"longitude"`
	Landmark    string   `query:"landmark"`
	CurrentTime string   `query:"current_time"`
	Rating      *float64 `query:"rating"`
	FoodItem    string   `query:"food_item"`
}

// ToRequest - пустой параметр означает отсутствие фильтра
func (q FilterQuery) ToRequest() FilterRequest {
	req := FilterRequest{
		Name:        nonEmpty(q.Name),
		Landmark:    nonEmpty(q.Landmark),
		CurrentTime: nonEmpty(q.CurrentTime),
		Rating:      q.Rating,
		FoodItem:    nonEmpty(q.FoodItem),
	}
	if q.Latitude != "" || q.Longitude != "" {
		req.Location = &LocationRequest{Latitude: q.Latitude, Longitude: q.Longitude}
	}
	return req
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// MealTimingRequest - окно приёма пищи, HH:MM или HH:MM:SS
type MealTimingRequest struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

type MessTimingsRequest struct {
	Breakfast MealTimingRequest `json:"breakfast"`
	Lunch     MealTimingRequest `json:"lunch"`
	Snacks    MealTimingRequest `json:"snacks"`
	Dinner    MealTimingRequest `json:"dinner"`
}

// CreateMessRequest - запрос на создание столовой
type CreateMessRequest struct {
	Name     string              `json:"name" validate:"required"`
	Location *LocationRequest    `json:"location,omitempty"`
	Landmark *string             `json:"landmark,omitempty"`
	Timings  *MessTimingsRequest `json:"timings,omitempty"`
	Rating   *float64            `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	Image    *string             `json:"image,omitempty"`
}

type UpdateMessRequest struct {
	Name     *string             `json:"name,omitempty" validate:"omitempty,min=1"`
	Location *LocationRequest    `json:"location,omitempty"`
	Landmark *string             `json:"landmark,omitempty"`
	Timings  *MessTimingsRequest `json:"timings,omitempty"`
	Rating   *float64            `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	Image    *string             `json:"image,omitempty"`
}

// DayMenuRequest - ID блюд по приёмам пищи; nil список не задан
type DayMenuRequest struct {
	Breakfast []int64 `json:"breakfast"`
	Lunch     []int64 `json:"lunch"`
	Snacks    []int64 `json:"snacks"`
	Dinner    []int64 `json:"dinner"`
}

// WeekMenuRequest - меню по дням недели; nil день не задан
type WeekMenuRequest struct {
	Monday    *DayMenuRequest `json:"monday,omitempty"`
	Tuesday   *DayMenuRequest `json:"tuesday,omitempty"`
	Wednesday *DayMenuRequest `json:"wednesday,omitempty"`
	Thursday  *DayMenuRequest `json:"thursday,omitempty"`
	Friday    *DayMenuRequest `json:"friday,omitempty"`
	Saturday  *DayMenuRequest `json:"saturday,omitempty"`
	Sunday    *DayMenuRequest `json:"sunday,omitempty"`
}

// CreateMessMenuRequest - меню на месяц; пара (month, year) уникальна
type CreateMessMenuRequest struct {
	Month int `json:"month" validate:"required,min=1,max=12"`
	Year  int `json:"year" validate:"required,min=1970"`
	WeekMenuRequest
}

// UpdateMessMenuRequest - заменяются только переданные списки
type UpdateMessMenuRequest struct {
	WeekMenuRequest
}

type CreateMessMenuItemRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description *string  `json:"description,omitempty"`
	Rating      *float64 `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	Cal         *int     `json:"cal,omitempty" validate:"omitempty,min=0"`
	Image       *string  `json:"image,omitempty"`
}

type UpdateMessMenuItemRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string  `json:"description,omitempty"`
	Rating      *float64 `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	Cal         *int     `json:"cal,omitempty" validate:"omitempty,min=0"`
	Image       *string  `json:"image,omitempty"`
}

// MessMenuListQuery - необязательные фильтры списка меню
type MessMenuListQuery struct {
	Month *int `query:"month" validate:"omitempty,min=1,max=12"`
	Year  *int `query:"year" validate:"omitempty,min=1970"`
}

type BusTypeRequest struct {
	Name string `json:"name" validate:"required"`
}

type CreateBusStopRequest struct {
	Name     string           `json:"name" validate:"required"`
	Location *LocationRequest `json:"location,omitempty"`
	Landmark *string          `json:"landmark,omitempty"`
}

type UpdateBusStopRequest struct {
	Name     *string          `json:"name,omitempty" validate:"omitempty,min=1"`
	Location *LocationRequest `json:"location,omitempty"`
	Landmark *string          `json:"landmark,omitempty"`
}

type CreateBusRouteRequest struct {
	Name       string  `json:"name" validate:"required"`
	FromStopID int64   `json:"from_stop_id" validate:"required,min=1"`
	ToStopID   int64   `json:"to_stop_id" validate:"required,min=1"`
	ViaStops   []int64 `json:"via_stops"`
}

type UpdateBusRouteRequest struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,min=1"`
	FromStopID *int64  `json:"from_stop_id,omitempty" validate:"omitempty,min=1"`
	ToStopID   *int64  `json:"to_stop_id,omitempty" validate:"omitempty,min=1"`
	ViaStops   []int64 `json:"via_stops,omitempty"`
}

// CreateBusScheduleRequest - время в формате HH:MM или HH:MM:SS
type CreateBusScheduleRequest struct {
	RouteID       int64     `json:"route_id" validate:"required,min=1"`
	BusTypeID     int64     `json:"bus_type_id" validate:"required,min=1"`
	StartTime     string    `json:"start_time" validate:"required"`
	EndTime       *string   `json:"end_time,omitempty"`
	ViaStopsTimes []*string `json:"via_stops_times,omitempty"`
}

type UpdateBusScheduleRequest struct {
	RouteID       *int64    `json:"route_id,omitempty" validate:"omitempty,min=1"`
	BusTypeID     *int64    `json:"bus_type_id,omitempty" validate:"omitempty,min=1"`
	StartTime     *string   `json:"start_time,omitempty"`
	EndTime       *string   `json:"end_time,omitempty"`
	ViaStopsTimes []*string `json:"via_stops_times,omitempty"`
}
