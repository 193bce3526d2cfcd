package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/campus-api/internal/domain"
	"github.com/campus-api/internal/domain/repository"
	"github.com/campus-api/internal/pkg/errors"
	"github.com/campus-api/internal/usecase/dto"
)

type BusUseCase struct {
	typeRepo     repository.BusTypeRepository
	stopRepo     repository.BusStopRepository
	routeRepo    repository.BusRouteRepository
	scheduleRepo repository.BusScheduleRepository
	events       *EventPublisher
	logger       *zap.Logger
}

func NewBusUseCase(
	typeRepo repository.BusTypeRepository,
	stopRepo repository.BusStopRepository,
	routeRepo repository.BusRouteRepository,
	scheduleRepo repository.BusScheduleRepository,
	events *EventPublisher,
	logger *zap.Logger,
) *BusUseCase {
	return &BusUseCase{
		typeRepo:     typeRepo,
		stopRepo:     stopRepo,
		routeRepo:    routeRepo,
		scheduleRepo: scheduleRepo,
		events:       events,
		logger:       logger,
	}
}

// notFoundAs подменяет NotFound более точной ошибкой
func notFoundAs(err error, replacement *errors.AppError) error {
	if errors.IsNotFound(err) {
		return replacement
	}
	return err
}

// ===== Bus types =====

func (uc *BusUseCase) ListTypes(ctx context.Context) ([]*domain.BusType, error) {
	return uc.typeRepo.List(ctx)
}

func (uc *BusUseCase) GetType(ctx context.Context, id int64) (*domain.BusType, error) {
	return uc.typeRepo.GetByID(ctx, id)
}

func (uc *BusUseCase) CreateType(ctx context.Context, req dto.BusTypeRequest) (*domain.BusType, error) {
	_, err := uc.typeRepo.Find(ctx, domain.BusTypeKey{Name: &req.Name})
	if err == nil {
		return nil, errors.ErrBusTypeAlreadyExists
	}
	if !errors.IsNotFound(err) {
		return nil, err
	}

	created, err := uc.typeRepo.Create(ctx, &domain.BusType{Name: req.Name})
	if err != nil {
		return nil, err
	}

	uc.events.Publish(ctx, domain.EntityBusType, domain.ActionCreated, created.ID)
	return created, nil
}

func (uc *BusUseCase) UpdateType(ctx context.Context, id int64, req dto.BusTypeRequest) (*domain.BusType, error) {
	busType, err := uc.typeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	busType.Name = req.Name

	updated, err := uc.typeRepo.Update(ctx, busType)
	if err != nil {
		return nil, err
	}

	uc.events.Publish(ctx, domain.EntityBusType, domain.ActionUpdated, updated.ID)
	return updated, nil
}

// DeleteType - тип из расписания удалить нельзя
func (uc *BusUseCase) DeleteType(ctx context.Context, id int64) error {
	if err := uc.typeRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.events.Publish(ctx, domain.EntityBusType, domain.ActionDeleted, id)
	return nil
}

// ===== Bus stops =====

func (uc *BusUseCase) ListStops(ctx context.Context) ([]*domain.BusStop, error) {
	return uc.stopRepo.List(ctx)
}

func (uc *BusUseCase) GetStop(ctx context.Context, id int64) (*domain.BusStop, error) {
	return uc.stopRepo.GetByID(ctx, id)
}

func (uc *BusUseCase) CreateStop(ctx context.Context, req dto.CreateBusStopRequest) (*domain.BusStop, error) {
	_, err := uc.stopRepo.Find(ctx, domain.BusStopKey{Name: &req.Name})
	if err == nil {
		return nil, errors.ErrBusStopAlreadyExists
	}
	if !errors.IsNotFound(err) {
		return nil, err
	}

	created, err := uc.stopRepo.Create(ctx, newBusStop(req))
	if err != nil {
		return nil, err
	}

	uc.events.Publish(ctx, domain.EntityBusStop, domain.ActionCreated, created.ID)
	return created, nil
}

func (uc *BusUseCase) UpdateStop(ctx context.Context, id int64, req dto.UpdateBusStopRequest) (*domain.BusStop, error) {
	stop, err := uc.stopRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	mergeBusStop(stop, req)

	updated, err := uc.stopRepo.Update(ctx, stop)
	if err != nil {
		return nil, err
	}

	uc.events.Publish(ctx, domain.EntityBusStop, domain.ActionUpdated, updated.ID)
	return updated, nil
}

// DeleteStop - остановку из маршрута удалить нельзя
func (uc *BusUseCase) DeleteStop(ctx context.Context, id int64) error {
	if err := uc.stopRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.events.Publish(ctx, domain.EntityBusStop, domain.ActionDeleted, id)
	return nil
}

// ===== Bus routes =====

func (uc *BusUseCase) ListRoutes(ctx context.Context) ([]*domain.BusRoute, error) {
	return uc.routeRepo.List(ctx)
}

func (uc *BusUseCase) GetRoute(ctx context.Context, id int64) (*domain.BusRoute, error) {
	return uc.routeRepo.GetByID(ctx, id)
}

// CreateRoute проверяет остановки в порядке FROM, TO, VIA, затем имя
func (uc *BusUseCase) CreateRoute(ctx context.Context, req dto.CreateBusRouteRequest) (*domain.BusRoute, error) {
	from, err := uc.stopRepo.GetByID(ctx, req.FromStopID)
	if err != nil {
		return nil, notFoundAs(err, errors.ErrFromBusStopNotFound)
	}
	to, err := uc.stopRepo.GetByID(ctx, req.ToStopID)
	if err != nil {
		return nil, notFoundAs(err, errors.ErrToBusStopNotFound)
	}
	via, err := uc.viaStops(ctx, req.ViaStops)
	if err != nil {
		return nil, err
	}

	_, err = uc.routeRepo.Find(ctx, domain.BusRouteKey{Name: &req.Name})
	if err == nil {
		return nil, errors.ErrBusRouteAlreadyExists
	}
	if !errors.IsNotFound(err) {
		return nil, err
	}

	created, err := uc.routeRepo.Create(ctx, &domain.BusRoute{
		Name:     req.Name,
		FromStop: from,
		ToStop:   to,
		ViaStops: via,
	})
	if err != nil {
		return nil, err
	}

	uc.events.Publish(ctx, domain.EntityBusRoute, domain.ActionCreated, created.ID)
	return created, nil
}

func (uc *BusUseCase) UpdateRoute(ctx context.Context, id int64, req dto.UpdateBusRouteRequest) (*domain.BusRoute, error) {
	route, err := uc.routeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		route.Name = *req.Name
	}
	if req.FromStopID != nil {
		if route.FromStop, err = uc.stopRepo.GetByID(ctx, *req.FromStopID); err != nil {
			return nil, notFoundAs(err, errors.ErrFromBusStopNotFound)
		}
	}
	if req.ToStopID != nil {
		if route.ToStop, err = uc.stopRepo.GetByID(ctx, *req.ToStopID); err != nil {
			return nil, notFoundAs(err, errors.ErrToBusStopNotFound)
		}
	}
	if req.ViaStops != nil {
		if route.ViaStops, err = uc.viaStops(ctx, req.ViaStops); err != nil {
			return nil, err
		}
	}

	updated, err := uc.routeRepo.Update(ctx, route)
	if err != nil {
		return nil, err
	}

	uc.events.Publish(ctx, domain.EntityBusRoute, domain.ActionUpdated, updated.ID)
	return updated, nil
}

// DeleteRoute - маршрут из расписания удалить нельзя
func (uc *BusUseCase) DeleteRoute(ctx context.Context, id int64) error {
	if err := uc.routeRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.events.Publish(ctx, domain.EntityBusRoute, domain.ActionDeleted, id)
	return nil
}

func (uc *BusUseCase) viaStops(ctx context.Context, ids []int64) ([]*domain.BusStop, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	stops := make([]*domain.BusStop, 0, len(ids))
	for _, id := range ids {
		stop, err := uc.stopRepo.GetByID(ctx, id)
		if err != nil {
			return nil, notFoundAs(err, errors.ErrViaBusStopNotFound)
		}
		stops = append(stops, stop)
	}
	return stops, nil
}

// ===== Bus schedules =====

func (uc *BusUseCase) ListSchedules(ctx context.Context) ([]*domain.BusSchedule, error) {
	return uc.scheduleRepo.List(ctx)
}

func (uc *BusUseCase) GetSchedule(ctx context.Context, id int64) (*domain.BusSchedule, error) {
	return uc.scheduleRepo.GetByID(ctx, id)
}

// CreateSchedule: маршрут, тип, формат времени, затем уникальность (start_time, route, bus_type)
func (uc *BusUseCase) CreateSchedule(ctx context.Context, req dto.CreateBusScheduleRequest) (*domain.BusSchedule, error) {
	route, err := uc.routeRepo.GetByID(ctx, req.RouteID)
	if err != nil {
		return nil, notFoundAs(err, errors.ErrBusRouteNotFound)
	}
	busType, err := uc.typeRepo.GetByID(ctx, req.BusTypeID)
	if err != nil {
		return nil, notFoundAs(err, errors.ErrBusTypeNotFound)
	}

	start, err := parseTime(req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := parseOptionalTime(req.EndTime)
	if err != nil {
		return nil, err
	}
	via, err := parseTimeList(req.ViaStopsTimes)
	if err != nil {
		return nil, err
	}

	_, err = uc.scheduleRepo.Find(ctx, domain.BusScheduleKey{
		StartTime: &start,
		RouteID:   &route.ID,
		BusTypeID: &busType.ID,
	})
	if err == nil {
		return nil, errors.ErrBusScheduleAlreadyExists
	}
	if !errors.IsNotFound(err) {
		return nil, err
	}

	created, err := uc.scheduleRepo.Create(ctx, &domain.BusSchedule{
		StartTime:    start,
		Route:        route,
		BusType:      busType,
		EndTime:      end,
		ViaStopTimes: via,
	})
	if err != nil {
		return nil, err
	}

	uc.events.Publish(ctx, domain.EntityBusSchedule, domain.ActionCreated, created.ID)
	return created, nil
}

func (uc *BusUseCase) UpdateSchedule(ctx context.Context, id int64, req dto.UpdateBusScheduleRequest) (*domain.BusSchedule, error) {
	schedule, err := uc.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.RouteID != nil {
		if schedule.Route, err = uc.routeRepo.GetByID(ctx, *req.RouteID); err != nil {
			return nil, notFoundAs(err, errors.ErrBusRouteNotFound)
		}
	}
	if req.BusTypeID != nil {
		if schedule.BusType, err = uc.typeRepo.GetByID(ctx, *req.BusTypeID); err != nil {
			return nil, notFoundAs(err, errors.ErrBusTypeNotFound)
		}
	}
	if req.StartTime != nil {
		if schedule.StartTime, err = parseTime(*req.StartTime); err != nil {
			return nil, err
		}
	}
	if req.EndTime != nil {
		if schedule.EndTime, err = parseOptionalTime(req.EndTime); err != nil {
			return nil, err
		}
	}
	if req.ViaStopsTimes != nil {
		if schedule.ViaStopTimes, err = parseTimeList(req.ViaStopsTimes); err != nil {
			return nil, err
		}
	}

	updated, err := uc.scheduleRepo.Update(ctx, schedule)
	if err != nil {
		return nil, err
	}

	uc.events.Publish(ctx, domain.EntityBusSchedule, domain.ActionUpdated, updated.ID)
	return updated, nil
}

func (uc *BusUseCase) DeleteSchedule(ctx context.Context, id int64) error {
	if err := uc.scheduleRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.events.Publish(ctx, domain.EntityBusSchedule, domain.ActionDeleted, id)
	return nil
}
