package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/campus-api/internal/domain"
	"github.com/campus-api/internal/domain/repository"
	"github.com/campus-api/internal/pkg/errors"
	"github.com/campus-api/internal/search"
	"github.com/campus-api/internal/usecase/dto"
)

type FoodOutletUseCase struct {
	outletRepo repository.FoodOutletRepository
	itemRepo   repository.MenuItemRepository
	events     *EventPublisher
	logger     *zap.Logger
}

func NewFoodOutletUseCase(
	outletRepo repository.FoodOutletRepository,
	itemRepo repository.MenuItemRepository,
	events *EventPublisher,
	logger *zap.Logger,
) *FoodOutletUseCase {
	return &FoodOutletUseCase{
		outletRepo: outletRepo,
		itemRepo:   itemRepo,
		events:     events,
		logger:     logger,
	}
}

func (uc *FoodOutletUseCase) List(ctx context.Context) ([]*domain.FoodOutlet, error) {
	return uc.outletRepo.List(ctx)
}

func (uc *FoodOutletUseCase) Get(ctx context.Context, id int64) (*domain.FoodOutlet, error) {
	return uc.outletRepo.GetByID(ctx, id)
}

// Create проверяет уникальность имени перед вставкой
func (uc *FoodOutletUseCase) Create(ctx context.Context, req dto.CreateFoodOutletRequest) (*domain.FoodOutlet, error) {
	outlet, err := newFoodOutlet(req)
	if err != nil {
		return nil, err
	}

	_, err = uc.outletRepo.Find(ctx, domain.FoodOutletKey{Name: &outlet.Name})
	if err == nil {
		return nil, errors.ErrFoodOutletAlreadyExists
	}
	if !errors.IsNotFound(err) {
		return nil, err
	}

	created, err := uc.outletRepo.Create(ctx, outlet)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Food outlet created", zap.Int64("id", created.ID), zap.String("name", created.Name))
	uc.events.Publish(ctx, domain.EntityFoodOutlet, domain.ActionCreated, created.ID)
	return created, nil
}

func (uc *FoodOutletUseCase) Update(ctx context.Context, id int64, req dto.UpdateFoodOutletRequest) (*domain.FoodOutlet, error) {
	outlet, err := uc.outletRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := mergeFoodOutlet(outlet, req); err != nil {
		return nil, err
	}

	updated, err := uc.outletRepo.Update(ctx, outlet)
	if err != nil {
		return nil, err
	}

	uc.events.Publish(ctx, domain.EntityFoodOutlet, domain.ActionUpdated, updated.ID)
	return updated, nil
}

// Delete удаляет точку; её позиции меню уходят каскадом
func (uc *FoodOutletUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.outletRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("Food outlet deleted", zap.Int64("id", id))
	uc.events.Publish(ctx, domain.EntityFoodOutlet, domain.ActionDeleted, id)
	return nil
}

func (uc *FoodOutletUseCase) ListMenuItems(ctx context.Context) ([]*domain.MenuItem, error) {
	return uc.itemRepo.List(ctx)
}

func (uc *FoodOutletUseCase) GetMenuItem(ctx context.Context, id int64) (*domain.MenuItem, error) {
	return uc.itemRepo.GetByID(ctx, id)
}

// AddMenuItem - имя позиции уникально в пределах точки
func (uc *FoodOutletUseCase) AddMenuItem(ctx context.Context, outletID int64, req dto.CreateMenuItemRequest) (*domain.MenuItem, error) {
	outlet, err := uc.outletRepo.GetByID(ctx, outletID)
	if err != nil {
		return nil, err
	}

	item := newMenuItem(outletID, req)
	for _, existing := range outlet.Menu {
		if existing.Name == item.Name {
			return nil, errors.ErrMenuItemAlreadyExists
		}
	}

	created, err := uc.itemRepo.Create(ctx, item)
	if err != nil {
		return nil, err
	}

	uc.events.Publish(ctx, domain.EntityMenuItem, domain.ActionCreated, created.ID)
	return created, nil
}

func (uc *FoodOutletUseCase) UpdateMenuItem(ctx context.Context, outletID, itemID int64, req dto.UpdateMenuItemRequest) (*domain.MenuItem, error) {
	item, err := uc.outletMenuItem(ctx, outletID, itemID)
	if err != nil {
		return nil, err
	}
	mergeMenuItem(item, req)

	updated, err := uc.itemRepo.Update(ctx, item)
	if err != nil {
		return nil, err
	}

	uc.events.Publish(ctx, domain.EntityMenuItem, domain.ActionUpdated, updated.ID)
	return updated, nil
}

func (uc *FoodOutletUseCase) DeleteMenuItem(ctx context.Context, outletID, itemID int64) error {
	item, err := uc.outletMenuItem(ctx, outletID, itemID)
	if err != nil {
		return err
	}
	if err := uc.itemRepo.Delete(ctx, item); err != nil {
		return err
	}

	uc.events.Publish(ctx, domain.EntityMenuItem, domain.ActionDeleted, itemID)
	return nil
}

// outletMenuItem - позиция чужой точки считается ненайденной
func (uc *FoodOutletUseCase) outletMenuItem(ctx context.Context, outletID, itemID int64) (*domain.MenuItem, error) {
	if _, err := uc.outletRepo.GetByID(ctx, outletID); err != nil {
		return nil, err
	}

	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.OutletID != outletID {
		return nil, errors.ErrMenuItemNotFound
	}
	return item, nil
}

// Search загружает все точки и оставляет прошедшие фильтр; пустой результат не ошибка
func (uc *FoodOutletUseCase) Search(ctx context.Context, req dto.FilterRequest) ([]*domain.FoodOutlet, error) {
	filter, err := buildFilter(req)
	if err != nil {
		return nil, err
	}

	outlets, err := uc.outletRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := search.Outlets(outlets, filter)
	uc.logger.Debug("Food outlets searched",
		zap.Int("total", len(outlets)),
		zap.Int("matched", len(result)),
	)
	return result, nil
}

// buildFilter переводит запрос в фильтр; строки приводятся к нижнему регистру
func buildFilter(req dto.FilterRequest) (search.OutletFilter, error) {
	filter := search.OutletFilter{
		Name:     lower(req.Name),
		Landmark: lower(req.Landmark),
		Rating:   req.Rating,
		Item:     lower(req.FoodItem),
	}

	if req.Location != nil {
		center, ok := search.ParsePoint(*toLocation(req.Location))
		if !ok {
			return filter, errors.ErrInvalidCoordinates
		}
		filter.Location = &center
	}

	at, err := parseOptionalTime(req.CurrentTime)
	if err != nil {
		return filter, err
	}
	filter.Time = at

	return filter, nil
}
