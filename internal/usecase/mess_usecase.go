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

type MessUseCase struct {
	messRepo repository.MessRepository
	menuRepo repository.MessMenuRepository
	events   *EventPublisher
	logger   *zap.Logger
}

func NewMessUseCase(
	messRepo repository.MessRepository,
	menuRepo repository.MessMenuRepository,
	events *EventPublisher,
	logger *zap.Logger,
) *MessUseCase {
	return &MessUseCase{
		messRepo: messRepo,
		menuRepo: menuRepo,
		events:   events,
		logger:   logger,
	}
}

func (uc *MessUseCase) List(ctx context.Context) ([]*domain.Mess, error) {
	return uc.messRepo.List(ctx)
}

func (uc *MessUseCase) Get(ctx context.Context, id int64) (*domain.Mess, error) {
	return uc.messRepo.GetByID(ctx, id)
}

func (uc *MessUseCase) Create(ctx context.Context, req dto.CreateMessRequest) (*domain.Mess, error) {
	mess, err := newMess(req)
	if err != nil {
		return nil, err
	}

	_, err = uc.messRepo.Find(ctx, domain.MessKey{Name: &mess.Name})
	if err == nil {
		return nil, errors.ErrMessAlreadyExists
	}
	if !errors.IsNotFound(err) {
		return nil, err
	}

	created, err := uc.messRepo.Create(ctx, mess)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Mess created", zap.Int64("id", created.ID), zap.String("name", created.Name))
	uc.events.Publish(ctx, domain.EntityMess, domain.ActionCreated, created.ID)
	return created, nil
}

func (uc *MessUseCase) Update(ctx context.Context, id int64, req dto.UpdateMessRequest) (*domain.Mess, error) {
	mess, err := uc.messRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := mergeMess(mess, req); err != nil {
		return nil, err
	}

	updated, err := uc.messRepo.Update(ctx, mess)
	if err != nil {
		return nil, err
	}

	uc.events.Publish(ctx, domain.EntityMess, domain.ActionUpdated, updated.ID)
	return updated, nil
}

// SetMenu назначает столовой текущее меню
func (uc *MessUseCase) SetMenu(ctx context.Context, messID, menuID int64) (*domain.Mess, error) {
	if _, err := uc.messRepo.GetByID(ctx, messID); err != nil {
		return nil, err
	}
	if _, err := uc.menuRepo.GetByID(ctx, menuID); err != nil {
		return nil, err
	}

	updated, err := uc.messRepo.SetMenu(ctx, messID, menuID)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Mess menu changed", zap.Int64("mess_id", messID), zap.Int64("menu_id", menuID))
	uc.events.Publish(ctx, domain.EntityMess, domain.ActionUpdated, messID)
	return updated, nil
}

func (uc *MessUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.messRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.events.Publish(ctx, domain.EntityMess, domain.ActionDeleted, id)
	return nil
}

// CurrentMenu - nil, если меню не назначено
func (uc *MessUseCase) CurrentMenu(ctx context.Context, id int64) (*domain.MessMenu, error) {
	mess, err := uc.messRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mess.Menu, nil
}

// DayMenu - меню текущего месяца на день недели; nil без меню
func (uc *MessUseCase) DayMenu(ctx context.Context, id int64, day string) (*domain.DayMenu, error) {
	weekday, ok := domain.ParseWeekday(day)
	if !ok {
		return nil, errors.ErrInvalidDay
	}

	menu, err := uc.CurrentMenu(ctx, id)
	if err != nil {
		return nil, err
	}
	return menu.Day(weekday), nil
}

// Search - время сверяется с окнами приёмов пищи, блюдо ищется в текущем меню
func (uc *MessUseCase) Search(ctx context.Context, req dto.FilterRequest) ([]*domain.Mess, error) {
	filter, err := buildFilter(req)
	if err != nil {
		return nil, err
	}

	messes, err := uc.messRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return search.Messes(messes, search.MessFilter(filter)), nil
}
