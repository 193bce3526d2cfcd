package dto

import "github.com/campus-api/internal/domain"

// MessageResponse - ответ корневого эндпоинта
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse - состояние зависимостей сервиса
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Redis    string `json:"redis,omitempty"`
}

type FoodOutletResponse struct {
	Outlet *domain.FoodOutlet `json:"outlet"`
}

type FoodOutletsResponse struct {
	Outlets []*domain.FoodOutlet `json:"outlets"`
}

// MenuItemResponse - позиция меню после создания или обновления
type MenuItemResponse struct {
	Item *domain.MenuItem `json:"item"`
}

// FoodItemResponse - позиция меню при чтении по ID
type FoodItemResponse struct {
	FoodItem *domain.MenuItem `json:"food_item"`
}

type FoodItemsResponse struct {
	FoodItems []*domain.MenuItem `json:"food_items"`
}

type MessResponse struct {
	Mess *domain.Mess `json:"mess"`
}

type MessesResponse struct {
	Messes []*domain.Mess `json:"messes"`
}

type MessMenuResponse struct {
	Menu *domain.MessMenu `json:"menu"`
}

type MessMenusResponse struct {
	Menus []*domain.MessMenu `json:"menus"`
}

// DayMenuResponse - меню на день; null, если у столовой нет меню
type DayMenuResponse struct {
	Menu *domain.DayMenu `json:"menu"`
}

type MessMenuItemResponse struct {
	Item *domain.MessMenuItem `json:"item"`
}

type MessMenuItemsResponse struct {
	Items []*domain.MessMenuItem `json:"items"`
}

type BusTypeResponse struct {
	Type *domain.BusType `json:"type"`
}

type BusTypesResponse struct {
	BusTypes []*domain.BusType `json:"bus_types"`
}

type BusStopResponse struct {
	Stop *domain.BusStop `json:"stop"`
}

type BusStopsResponse struct {
	Stops []*domain.BusStop `json:"stops"`
}

type BusRouteResponse struct {
	Route *domain.BusRoute `json:"route"`
}

type BusRoutesResponse struct {
	Routes []*domain.BusRoute `json:"routes"`
}

type BusScheduleResponse struct {
	Schedule *domain.BusSchedule `json:"schedule"`
}

type BusSchedulesResponse struct {
	Schedules []*domain.BusSchedule `json:"schedules"`
}
