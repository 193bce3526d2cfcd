package repository

import (
	"context"

	"github.com/campus-api/internal/domain"
)

type BusTypeRepository interface {
	List(ctx context.Context) ([]*domain.BusType, error)
	GetByID(ctx context.Context, id int64) (*domain.BusType, error)
	Find(ctx context.Context, key domain.BusTypeKey) (*domain.BusType, error)
	Create(ctx context.Context, busType *domain.BusType) (*domain.BusType, error)
	Update(ctx context.Context, busType *domain.BusType) (*domain.BusType, error)

	// Delete запрещён, пока тип используется в расписании
	Delete(ctx context.Context, id int64) error
}

type BusStopRepository interface {
	List(ctx context.Context) ([]*domain.BusStop, error)
	GetByID(ctx context.Context, id int64) (*domain.BusStop, error)
	Find(ctx context.Context, key domain.BusStopKey) (*domain.BusStop, error)
	Create(ctx context.Context, stop *domain.BusStop) (*domain.BusStop, error)
	Update(ctx context.Context, stop *domain.BusStop) (*domain.BusStop, error)

	// Delete запрещён, пока остановка входит в маршрут
	Delete(ctx context.Context, id int64) error
}

type BusRouteRepository interface {
	List(ctx context.Context) ([]*domain.BusRoute, error)
	GetByID(ctx context.Context, id int64) (*domain.BusRoute, error)
	Find(ctx context.Context, key domain.BusRouteKey) (*domain.BusRoute, error)
	Create(ctx context.Context, route *domain.BusRoute) (*domain.BusRoute, error)
	Update(ctx context.Context, route *domain.BusRoute) (*domain.BusRoute, error)

	// Delete запрещён, пока маршрут используется в расписании
	Delete(ctx context.Context, id int64) error
}

type BusScheduleRepository interface {
	List(ctx context.Context) ([]*domain.BusSchedule, error)
	GetByID(ctx context.Context, id int64) (*domain.BusSchedule, error)
	Find(ctx context.Context, key domain.BusScheduleKey) (*domain.BusSchedule, error)
	Create(ctx context.Context, schedule *domain.BusSchedule) (*domain.BusSchedule, error)
	Update(ctx context.Context, schedule *domain.BusSchedule) (*domain.BusSchedule, error)
	Delete(ctx context.Context, id int64) error
}
