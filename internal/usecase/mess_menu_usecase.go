package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/campus-api/internal/domain"
	"github.com/campus-api/internal/domain/repository"
	"github.com/campus-api/internal/pkg/errors"
	"github.com/campus-api/internal/usecase/dto"
)

// MessMenuUseCase - месячные меню столовых и справочник блюд
type MessMenuUseCase struct {
	menuRepo repository.MessMenuRepository
	itemRepo repository.MessMenuItemRepository
	events   *EventPublisher
	logger   *zap.Logger
}

func NewMessMenuUseCase(
	menuRepo repository.MessMenuRepository,
	itemRepo repository.MessMenuItemRepository,
	events *EventPublisher,
	logger *zap.Logger,
) *MessMenuUseCase {
	return &MessMenuUseCase{
		menuRepo: menuRepo,
		itemRepo: itemRepo,
		events:   events,
		logger:   logger,
	}
}

func (uc *MessMenuUseCase) List(ctx context.Context, query dto.MessMenuListQuery) ([]*domain.MessMenu, error) {
	return uc.menuRepo.List(ctx, query.Month, query.Year)
}

func (uc *MessMenuUseCase) Get(ctx context.Context, id int64) (*domain.MessMenu, error) {
	return uc.menuRepo.GetByID(ctx, id)
}

// Create - на пару (month, year) допускается одно меню; все блюда должны существовать
func (uc *MessMenuUseCase) Create(ctx context.Context, req dto.CreateMessMenuRequest) (*domain.MessMenu, error) {
	_, err := uc.menuRepo.Find(ctx, domain.MessMenuKey{Month: &req.Month, Year: &req.Year})
	if err == nil {
		return nil, errors.ErrMessMenuAlreadyExists
	}
	if !errors.IsNotFound(err) {
		return nil, err
	}

	menu := &domain.MessMenu{Month: req.Month, Year: req.Year}
	if err := uc.applyWeek(ctx, menu, req.WeekMenuRequest); err != nil {
		return nil, err
	}

	created, err := uc.menuRepo.Create(ctx, menu)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Mess menu created",
		zap.Int64("id", created.ID),
		zap.Int("month", created.Month),
		zap.Int("year", created.Year),
	)
	uc.events.Publish(ctx, domain.EntityMessMenu, domain.ActionCreated, created.ID)
	return created, nil
}

// Update заменяет только переданные списки, остальное меню сохраняется
func (uc *MessMenuUseCase) Update(ctx context.Context, id int64, req dto.UpdateMessMenuRequest) (*domain.MessMenu, error) {
	menu, err := uc.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.applyWeek(ctx, menu, req.WeekMenuRequest); err != nil {
		return nil, err
	}

	updated, err := uc.menuRepo.Update(ctx, menu)
	if err != nil {
		return nil, err
	}

	uc.events.Publish(ctx, domain.EntityMessMenu, domain.ActionUpdated, updated.ID)
	return updated, nil
}

// Delete - столовые с этим меню остаются без меню
func (uc *MessMenuUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.menuRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.events.Publish(ctx, domain.EntityMessMenu, domain.ActionDeleted, id)
	return nil
}

// applyWeek переносит заданные дни и приёмы пищи в menu
func (uc *MessMenuUseCase) applyWeek(ctx context.Context, menu *domain.MessMenu, week dto.WeekMenuRequest) error {
	days := weekDays(week)
	for _, weekday := range domain.Weekdays {
		req := days[weekday]
		if req == nil {
			continue
		}

		day := menu.Day(weekday)
		if day == nil {
			day = &domain.DayMenu{}
		}
		for _, meal := range domain.Meals {
			ids := mealIDs(req, meal)
			if ids == nil {
				continue
			}
			items, err := uc.resolveItems(ctx, ids)
			if err != nil {
				return err
			}
			day.SetItems(meal, items)
		}

		if day.IsEmpty() {
			day = nil
		}
		menu.SetDay(weekday, day)
	}
	return nil
}

// resolveItems - пустой список хранится как отсутствующий
func (uc *MessMenuUseCase) resolveItems(ctx context.Context, ids []int64) ([]*domain.MessMenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return uc.itemRepo.GetByIDs(ctx, ids)
}

func (uc *MessMenuUseCase) ListItems(ctx context.Context) ([]*domain.MessMenuItem, error) {
	return uc.itemRepo.List(ctx)
}

func (uc *MessMenuUseCase) GetItem(ctx context.Context, id int64) (*domain.MessMenuItem, error) {
	return uc.itemRepo.GetByID(ctx, id)
}

func (uc *MessMenuUseCase) CreateItem(ctx context.Context, req dto.CreateMessMenuItemRequest) (*domain.MessMenuItem, error) {
	item := newMessMenuItem(req)

	_, err := uc.itemRepo.Find(ctx, domain.MessMenuItemKey{Name: &item.Name})
	if err == nil {
		return nil, errors.ErrMessMenuItemAlreadyExists
	}
	if !errors.IsNotFound(err) {
		return nil, err
	}

	created, err := uc.itemRepo.Create(ctx, item)
	if err != nil {
		return nil, err
	}

	uc.events.Publish(ctx, domain.EntityMessMenuItem, domain.ActionCreated, created.ID)
	return created, nil
}

func (uc *MessMenuUseCase) UpdateItem(ctx context.Context, id int64, req dto.UpdateMessMenuItemRequest) (*domain.MessMenuItem, error) {
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	mergeMessMenuItem(item, req)

	updated, err := uc.itemRepo.Update(ctx, item)
	if err != nil {
		return nil, err
	}

	uc.events.Publish(ctx, domain.EntityMessMenuItem, domain.ActionUpdated, updated.ID)
	return updated, nil
}

// DeleteItem - блюдо пропадает из всех меню
func (uc *MessMenuUseCase) DeleteItem(ctx context.Context, id int64) error {
	if err := uc.itemRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.events.Publish(ctx, domain.EntityMessMenuItem, domain.ActionDeleted, id)
	return nil
}
