package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/campus-api/internal/domain"
)

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
	return m.Called(ctx, id).Error(0)
}

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
	return m.Called(ctx, id).Error(0)
}

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
	return m.Called(ctx, id).Error(0)
}

// stubPinger - зависимость для /health
type stubPinger struct {
	err error
}

func (p stubPinger) Health(context.Context) error {
	return p.err
}
