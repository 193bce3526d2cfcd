package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/campus-api/internal/domain"
)

// ===== Food outlets =====

type MockFoodOutletRepository struct {
	mock.Mock
}

func (m *MockFoodOutletRepository) List(ctx context.Context) ([]*domain.FoodOutlet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FoodOutlet), args.Error(1)
}

func (m *MockFoodOutletRepository) GetByID(ctx context.Context, id int64) (*domain.FoodOutlet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FoodOutlet), args.Error(1)
}

func (m *MockFoodOutletRepository) Find(ctx context.Context, key domain.FoodOutletKey) (*domain.FoodOutlet, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FoodOutlet), args.Error(1)
}

func (m *MockFoodOutletRepository) Create(ctx context.Context, outlet *domain.FoodOutlet) (*domain.FoodOutlet, error) {
	args := m.Called(ctx, outlet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FoodOutlet), args.Error(1)
}

func (m *MockFoodOutletRepository) Update(ctx context.Context, outlet *domain.FoodOutlet) (*domain.FoodOutlet, error) {
	args := m.Called(ctx, outlet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FoodOutlet), args.Error(1)
}

func (m *MockFoodOutletRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMenuItemRepository struct {
	mock.Mock
}

func (m *MockMenuItemRepository) List(ctx context.Context) ([]*domain.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) GetByID(ctx context.Context, id int64) (*domain.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) Find(ctx context.Context, key domain.MenuItemKey) (*domain.MenuItem, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) Create(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) Update(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) Delete(ctx context.Context, item *domain.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

// ===== Mess =====

type MockMessRepository struct {
	mock.Mock
}

func (m *MockMessRepository) List(ctx context.Context) ([]*domain.Mess, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Mess), args.Error(1)
}

func (m *MockMessRepository) GetByID(ctx context.Context, id int64) (*domain.Mess, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mess), args.Error(1)
}

func (m *MockMessRepository) Find(ctx context.Context, key domain.MessKey) (*domain.Mess, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mess), args.Error(1)
}

func (m *MockMessRepository) Create(ctx context.Context, mess *domain.Mess) (*domain.Mess, error) {
	args := m.Called(ctx, mess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mess), args.Error(1)
}

func (m *MockMessRepository) Update(ctx context.Context, mess *domain.Mess) (*domain.Mess, error) {
	args := m.Called(ctx, mess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mess), args.Error(1)
}

func (m *MockMessRepository) SetMenu(ctx context.Context, messID, menuID int64) (*domain.Mess, error) {
	args := m.Called(ctx, messID, menuID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mess), args.Error(1)
}

func (m *MockMessRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMessMenuRepository struct {
	mock.Mock
}

func (m *MockMessMenuRepository) List(ctx context.Context, month, year *int) ([]*domain.MessMenu, error) {
	args := m.Called(ctx, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MessMenu), args.Error(1)
}

func (m *MockMessMenuRepository) GetByID(ctx context.Context, id int64) (*domain.MessMenu, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MessMenu), args.Error(1)
}

func (m *MockMessMenuRepository) Find(ctx context.Context, key domain.MessMenuKey) (*domain.MessMenu, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MessMenu), args.Error(1)
}

func (m *MockMessMenuRepository) Create(ctx context.Context, menu *domain.MessMenu) (*domain.MessMenu, error) {
	args := m.Called(ctx, menu)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MessMenu), args.Error(1)
}

func (m *MockMessMenuRepository) Update(ctx context.Context, menu *domain.MessMenu) (*domain.MessMenu, error) {
	args := m.Called(ctx, menu)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MessMenu), args.Error(1)
}

func (m *MockMessMenuRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMessMenuItemRepository struct {
	mock.Mock
}

func (m *MockMessMenuItemRepository) List(ctx context.Context) ([]*domain.MessMenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MessMenuItem), args.Error(1)
}

func (m *MockMessMenuItemRepository) GetByID(ctx context.Context, id int64) (*domain.MessMenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MessMenuItem), args.Error(1)
}

func (m *MockMessMenuItemRepository) Find(ctx context.Context, key domain.MessMenuItemKey) (*domain.MessMenuItem, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MessMenuItem), args.Error(1)
}

func (m *MockMessMenuItemRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.MessMenuItem, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MessMenuItem), args.Error(1)
}

func (m *MockMessMenuItemRepository) Create(ctx context.Context, item *domain.MessMenuItem) (*domain.MessMenuItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MessMenuItem), args.Error(1)
}

func (m *MockMessMenuItemRepository) Update(ctx context.Context, item *domain.MessMenuItem) (*domain.MessMenuItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MessMenuItem), args.Error(1)
}

func (m *MockMessMenuItemRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ===== Bus =====

type MockBusTypeRepository struct {
	mock.Mock
}

func (m *MockBusTypeRepository) List(ctx context.Context) ([]*domain.BusType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BusType), args.Error(1)
}

func (m *MockBusTypeRepository) GetByID(ctx context.Context, id int64) (*domain.BusType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusType), args.Error(1)
}

func (m *MockBusTypeRepository) Find(ctx context.Context, key domain.BusTypeKey) (*domain.BusType, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusType), args.Error(1)
}

func (m *MockBusTypeRepository) Create(ctx context.Context, busType *domain.BusType) (*domain.BusType, error) {
	args := m.Called(ctx, busType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusType), args.Error(1)
}

func (m *MockBusTypeRepository) Update(ctx context.Context, busType *domain.BusType) (*domain.BusType, error) {
	args := m.Called(ctx, busType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusType), args.Error(1)
}

func (m *MockBusTypeRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBusStopRepository struct {
	mock.Mock
}

func (m *MockBusStopRepository) List(ctx context.Context) ([]*domain.BusStop, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BusStop), args.Error(1)
}

func (m *MockBusStopRepository) GetByID(ctx context.Context, id int64) (*domain.BusStop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusStop), args.Error(1)
}

func (m *MockBusStopRepository) Find(ctx context.Context, key domain.BusStopKey) (*domain.BusStop, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusStop), args.Error(1)
}

func (m *MockBusStopRepository) Create(ctx context.Context, stop *domain.BusStop) (*domain.BusStop, error) {
	args := m.Called(ctx, stop)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusStop), args.Error(1)
}

func (m *MockBusStopRepository) Update(ctx context.Context, stop *domain.BusStop) (*domain.BusStop, error) {
	args := m.Called(ctx, stop)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusStop), args.Error(1)
}

func (m *MockBusStopRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBusRouteRepository struct {
	mock.Mock
}

func (m *MockBusRouteRepository) List(ctx context.Context) ([]*domain.BusRoute, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BusRoute), args.Error(1)
}

func (m *MockBusRouteRepository) GetByID(ctx context.Context, id int64) (*domain.BusRoute, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusRoute), args.Error(1)
}

func (m *MockBusRouteRepository) Find(ctx context.Context, key domain.BusRouteKey) (*domain.BusRoute, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusRoute), args.Error(1)
}

func (m *MockBusRouteRepository) Create(ctx context.Context, route *domain.BusRoute) (*domain.BusRoute, error) {
	args := m.Called(ctx, route)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusRoute), args.Error(1)
}

func (m *MockBusRouteRepository) Update(ctx context.Context, route *domain.BusRoute) (*domain.BusRoute, error) {
	args := m.Called(ctx, route)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusRoute), args.Error(1)
}

func (m *MockBusRouteRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBusScheduleRepository struct {
	mock.Mock
}

func (m *MockBusScheduleRepository) List(ctx context.Context) ([]*domain.BusSchedule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BusSchedule), args.Error(1)
}

func (m *MockBusScheduleRepository) GetByID(ctx context.Context, id int64) (*domain.BusSchedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusSchedule), args.Error(1)
}

func (m *MockBusScheduleRepository) Find(ctx context.Context, key domain.BusScheduleKey) (*domain.BusSchedule, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusSchedule), args.Error(1)
}

func (m *MockBusScheduleRepository) Create(ctx context.Context, schedule *domain.BusSchedule) (*domain.BusSchedule, error) {
	args := m.Called(ctx, schedule)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusSchedule), args.Error(1)
}

func (m *MockBusScheduleRepository) Update(ctx context.Context, schedule *domain.BusSchedule) (*domain.BusSchedule, error) {
	args := m.Called(ctx, schedule)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusSchedule), args.Error(1)
}

func (m *MockBusScheduleRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ===== Streams =====

type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) PublishChange(ctx context.Context, stream string, event domain.ChangeEvent) error {
	args := m.Called(ctx, stream, event)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func int64Ptr(i int64) *int64 { return &i }

func floatPtr(f float64) *float64 { return &f }
