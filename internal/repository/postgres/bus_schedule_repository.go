package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/campus-api/internal/domain"
	"github.com/campus-api/internal/domain/repository"
	"github.com/campus-api/internal/pkg/errors"
)

const busScheduleColumns = `
	id, start_time::text AS start_time, route, bus_type,
	end_time::text AS end_time, via_stop_times`

type busScheduleRow struct {
	ID           int64             `db:"id"`
	StartTime    domain.TimeOfDay  `db:"start_time"`
	Route        int64             `db:"route"`
	BusType      int64             `db:"bus_type"`
	EndTime      *domain.TimeOfDay `db:"end_time"`
	ViaStopTimes viaStopTimes      `db:"via_stop_times"`
}

// viaStopTimes - TEXT[] с возможными NULL элементами
type viaStopTimes []sql.NullString

func (v *viaStopTimes) Scan(src interface{}) error {
	if src == nil {
		*v = nil
		return nil
	}
	var raw []sql.NullString
	if err := pq.Array(&raw).Scan(src); err != nil {
		return err
	}
	*v = raw
	return nil
}

func (v viaStopTimes) toDomain() ([]*domain.TimeOfDay, error) {
	if len(v) == 0 {
		return nil, nil
	}
	times := make([]*domain.TimeOfDay, 0, len(v))
	for _, s := range v {
		if !s.Valid {
			times = append(times, nil)
			continue
		}
		t, err := domain.ParseTimeOfDay(s.String)
		if err != nil {
			return nil, fmt.Errorf("stored via stop time %q: %w", s.String, err)
		}
		times = append(times, &t)
	}
	return times, nil
}

func viaStopTimesArg(times []*domain.TimeOfDay) interface{} {
	if len(times) == 0 {
		return nil
	}
	values := make([]sql.NullString, 0, len(times))
	for _, t := range times {
		if t == nil {
			values = append(values, sql.NullString{})
			continue
		}
		values = append(values, sql.NullString{String: t.String(), Valid: true})
	}
	return pq.Array(values)
}

type busScheduleRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewBusScheduleRepository(db *DB) repository.BusScheduleRepository {
	return &busScheduleRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *busScheduleRepository) List(ctx context.Context) ([]*domain.BusSchedule, error) {
	schedules, err := r.load(ctx, `SELECT `+busScheduleColumns+` FROM bus_schedules ORDER BY id`)
	if err != nil {
		r.logger.Error("Failed to list bus schedules", zap.Error(err))
		return nil, err
	}
	return schedules, nil
}

func (r *busScheduleRepository) GetByID(ctx context.Context, id int64) (*domain.BusSchedule, error) {
	return r.getOne(ctx, `SELECT `+busScheduleColumns+` FROM bus_schedules WHERE id = $1`, id)
}

func (r *busScheduleRepository) Find(ctx context.Context, key domain.BusScheduleKey) (*domain.BusSchedule, error) {
	switch {
	case key.ID != nil:
		return r.GetByID(ctx, *key.ID)
	case key.StartTime != nil && key.RouteID != nil && key.BusTypeID != nil:
		query := `SELECT ` + busScheduleColumns + ` FROM bus_schedules WHERE start_time = $1::time AND route = $2 AND bus_type = $3`
		return r.getOne(ctx, query, *key.StartTime, *key.RouteID, *key.BusTypeID)
	default:
		return nil, errors.ErrInvalidRequest
	}
}

func (r *busScheduleRepository) Create(ctx context.Context, schedule *domain.BusSchedule) (*domain.BusSchedule, error) {
	var id int64
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO bus_schedules (start_time, route, bus_type, end_time, via_stop_times)
		VALUES ($1::time, $2, $3, $4::time, $5)
		RETURNING id`,
		schedule.StartTime, schedule.Route.ID, schedule.BusType.ID, schedule.EndTime,
		viaStopTimesArg(schedule.ViaStopTimes),
	).Scan(&id)
	if isUniqueViolation(err) {
		return nil, errors.ErrBusScheduleAlreadyExists
	}
	if err != nil {
		r.logger.Error("Failed to create bus schedule", zap.Error(err))
		return nil, fmt.Errorf("create bus schedule: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *busScheduleRepository) Update(ctx context.Context, schedule *domain.BusSchedule) (*domain.BusSchedule, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE bus_schedules
		SET start_time = $2::time, route = $3, bus_type = $4, end_time = $5::time, via_stop_times = $6
		WHERE id = $1`,
		schedule.ID, schedule.StartTime, schedule.Route.ID, schedule.BusType.ID, schedule.EndTime,
		viaStopTimesArg(schedule.ViaStopTimes),
	)
	if isUniqueViolation(err) {
		return nil, errors.ErrBusScheduleAlreadyExists
	}
	if err != nil {
		r.logger.Error("Failed to update bus schedule", zap.Int64("id", schedule.ID), zap.Error(err))
		return nil, fmt.Errorf("update bus schedule: %w", err)
	}
	if found, err := rowsAffected(res); err != nil {
		return nil, fmt.Errorf("update bus schedule: %w", err)
	} else if !found {
		return nil, errors.ErrBusScheduleNotFound
	}

	return r.GetByID(ctx, schedule.ID)
}

func (r *busScheduleRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bus_schedules WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete bus schedule", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("delete bus schedule: %w", err)
	}
	if found, err := rowsAffected(res); err != nil {
		return fmt.Errorf("delete bus schedule: %w", err)
	} else if !found {
		return errors.ErrBusScheduleNotFound
	}
	return nil
}

func (r *busScheduleRepository) getOne(ctx context.Context, query string, args ...interface{}) (*domain.BusSchedule, error) {
	schedules, err := r.load(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to get bus schedule", zap.Error(err))
		return nil, err
	}
	if len(schedules) == 0 {
		return nil, errors.ErrBusScheduleNotFound
	}
	return schedules[0], nil
}

// load раскрывает маршрут (с остановками) и тип автобуса для каждой строки
func (r *busScheduleRepository) load(ctx context.Context, query string, args ...interface{}) ([]*domain.BusSchedule, error) {
	var rows []busScheduleRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query bus schedules: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	routeIDs := make([]int64, 0, len(rows))
	typeIDs := make([]int64, 0, len(rows))
	for _, row := range rows {
		routeIDs = append(routeIDs, row.Route)
		typeIDs = append(typeIDs, row.BusType)
	}

	routeList, err := loadBusRoutes(ctx, r.db,
		`SELECT `+busRouteColumns+` FROM bus_routes WHERE id = ANY($1)`, idList(uniqueIDs(routeIDs)))
	if err != nil {
		return nil, err
	}
	routes := make(map[int64]*domain.BusRoute, len(routeList))
	for _, route := range routeList {
		routes[route.ID] = route
	}

	types, err := loadBusTypes(ctx, r.db, uniqueIDs(typeIDs))
	if err != nil {
		return nil, err
	}

	schedules := make([]*domain.BusSchedule, 0, len(rows))
	for _, row := range rows {
		route, ok := routes[row.Route]
		if !ok {
			return nil, errors.ErrBusRouteNotFound
		}
		busType, ok := types[row.BusType]
		if !ok {
			return nil, errors.ErrBusTypeNotFound
		}
		via, err := row.ViaStopTimes.toDomain()
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, &domain.BusSchedule{
			ID:           row.ID,
			StartTime:    row.StartTime,
			Route:        route,
			BusType:      busType,
			EndTime:      row.EndTime,
			ViaStopTimes: via,
		})
	}
	return schedules, nil
}
