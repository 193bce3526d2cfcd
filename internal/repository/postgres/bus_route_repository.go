package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/campus-api/internal/domain"
	"github.com/campus-api/internal/domain/repository"
	"github.com/campus-api/internal/pkg/errors"
)

const busRouteColumns = `id, name, from_stop, to_stop, via_stops`

type busRouteRow struct {
	ID       int64         `db:"id"`
	Name     string        `db:"name"`
	FromStop int64         `db:"from_stop"`
	ToStop   int64         `db:"to_stop"`
	ViaStops pq.Int64Array `db:"via_stops"`
}

type busRouteRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewBusRouteRepository(db *DB) repository.BusRouteRepository {
	return &busRouteRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *busRouteRepository) List(ctx context.Context) ([]*domain.BusRoute, error) {
	routes, err := loadBusRoutes(ctx, r.db, `SELECT `+busRouteColumns+` FROM bus_routes ORDER BY id`)
	if err != nil {
		r.logger.Error("Failed to list bus routes", zap.Error(err))
		return nil, err
	}
	return routes, nil
}

func (r *busRouteRepository) GetByID(ctx context.Context, id int64) (*domain.BusRoute, error) {
	return r.getOne(ctx, `SELECT `+busRouteColumns+` FROM bus_routes WHERE id = $1`, id)
}

func (r *busRouteRepository) Find(ctx context.Context, key domain.BusRouteKey) (*domain.BusRoute, error) {
	switch {
	case key.ID != nil:
		return r.GetByID(ctx, *key.ID)
	case key.Name != nil:
		return r.getOne(ctx, `SELECT `+busRouteColumns+` FROM bus_routes WHERE name = $1`, *key.Name)
	default:
		return nil, errors.ErrInvalidRequest
	}
}

func (r *busRouteRepository) Create(ctx context.Context, route *domain.BusRoute) (*domain.BusRoute, error) {
	var id int64
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO bus_routes (name, from_stop, to_stop, via_stops)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		route.Name, route.FromStop.ID, route.ToStop.ID, idList(stopIDs(route.ViaStops)),
	).Scan(&id)
	if isUniqueViolation(err) {
		return nil, errors.ErrBusRouteAlreadyExists
	}
	if isForeignKeyViolation(err) {
		return nil, errors.ErrBusStopNotFound
	}
	if err != nil {
		r.logger.Error("Failed to create bus route", zap.String("name", route.Name), zap.Error(err))
		return nil, fmt.Errorf("create bus route: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *busRouteRepository) Update(ctx context.Context, route *domain.BusRoute) (*domain.BusRoute, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE bus_routes SET name = $2, from_stop = $3, to_stop = $4, via_stops = $5
		WHERE id = $1`,
		route.ID, route.Name, route.FromStop.ID, route.ToStop.ID, idList(stopIDs(route.ViaStops)),
	)
	if isUniqueViolation(err) {
		return nil, errors.ErrBusRouteAlreadyExists
	}
	if isForeignKeyViolation(err) {
		return nil, errors.ErrBusStopNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update bus route", zap.Int64("id", route.ID), zap.Error(err))
		return nil, fmt.Errorf("update bus route: %w", err)
	}
	if found, err := rowsAffected(res); err != nil {
		return nil, fmt.Errorf("update bus route: %w", err)
	} else if !found {
		return nil, errors.ErrBusRouteNotFound
	}

	return r.GetByID(ctx, route.ID)
}

// Delete отказывает, пока маршрут используется в расписании
func (r *busRouteRepository) Delete(ctx context.Context, id int64) error {
	return r.db.withTx(ctx, func(tx *sqlx.Tx) error {
		var inUse bool
		if err := tx.GetContext(ctx, &inUse, `SELECT EXISTS (SELECT 1 FROM bus_schedules WHERE route = $1)`, id); err != nil {
			return fmt.Errorf("check bus route usage: %w", err)
		}
		if inUse {
			return errors.ErrBusRouteInUse
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM bus_routes WHERE id = $1`, id)
		if isForeignKeyViolation(err) {
			return errors.ErrBusRouteInUse
		}
		if err != nil {
			r.logger.Error("Failed to delete bus route", zap.Int64("id", id), zap.Error(err))
			return fmt.Errorf("delete bus route: %w", err)
		}
		if found, err := rowsAffected(res); err != nil {
			return fmt.Errorf("delete bus route: %w", err)
		} else if !found {
			return errors.ErrBusRouteNotFound
		}
		return nil
	})
}

func (r *busRouteRepository) getOne(ctx context.Context, query string, args ...interface{}) (*domain.BusRoute, error) {
	routes, err := loadBusRoutes(ctx, r.db, query, args...)
	if err != nil {
		r.logger.Error("Failed to get bus route", zap.Error(err))
		return nil, err
	}
	if len(routes) == 0 {
		return nil, errors.ErrBusRouteNotFound
	}
	return routes[0], nil
}

// loadBusRoutes читает маршруты и раскрывает остановки одним запросом
func loadBusRoutes(ctx context.Context, q sqlx.QueryerContext, query string, args ...interface{}) ([]*domain.BusRoute, error) {
	var rows []busRouteRow
	if err := sqlx.SelectContext(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query bus routes: %w", err)
	}

	lists := make([][]int64, 0, len(rows))
	for _, row := range rows {
		lists = append(lists, append([]int64{row.FromStop, row.ToStop}, row.ViaStops...))
	}
	stops, err := loadBusStops(ctx, q, uniqueIDs(lists...))
	if err != nil {
		return nil, err
	}

	routes := make([]*domain.BusRoute, 0, len(rows))
	for _, row := range rows {
		from, ok := stops[row.FromStop]
		if !ok {
			return nil, errors.ErrFromBusStopNotFound
		}
		to, ok := stops[row.ToStop]
		if !ok {
			return nil, errors.ErrToBusStopNotFound
		}
		via, ok := resolveIDs(row.ViaStops, stops)
		if !ok {
			return nil, errors.ErrViaBusStopNotFound
		}
		routes = append(routes, &domain.BusRoute{
			ID:       row.ID,
			Name:     row.Name,
			FromStop: from,
			ToStop:   to,
			ViaStops: via,
		})
	}
	return routes, nil
}

func stopIDs(stops []*domain.BusStop) []int64 {
	ids := make([]int64, 0, len(stops))
	for _, s := range stops {
		ids = append(ids, s.ID)
	}
	return ids
}
