package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/campus-api/internal/domain/repository"
	"github.com/campus-api/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// Repositories bundles every store over one test connection
type Repositories struct {
	Outlets       repository.FoodOutletRepository
	MenuItems     repository.MenuItemRepository
	Messes        repository.MessRepository
	MessMenus     repository.MessMenuRepository
	MessMenuItems repository.MessMenuItemRepository
	BusTypes      repository.BusTypeRepository
	BusStops      repository.BusStopRepository
	BusRoutes     repository.BusRouteRepository
	BusSchedules  repository.BusScheduleRepository
}

// NewRepositoriesForTest creates all repositories with test database and logger
func NewRepositoriesForTest(db *sqlx.DB, logger *zap.Logger) *Repositories {
	pgDB := NewDBForTest(db, logger)
	return &Repositories{
		Outlets:       postgres.NewFoodOutletRepository(pgDB),
		MenuItems:     postgres.NewMenuItemRepository(pgDB),
		Messes:        postgres.NewMessRepository(pgDB),
		MessMenus:     postgres.NewMessMenuRepository(pgDB),
		MessMenuItems: postgres.NewMessMenuItemRepository(pgDB),
		BusTypes:      postgres.NewBusTypeRepository(pgDB),
		BusStops:      postgres.NewBusStopRepository(pgDB),
		BusRoutes:     postgres.NewBusRouteRepository(pgDB),
		BusSchedules:  postgres.NewBusScheduleRepository(pgDB),
	}
}
