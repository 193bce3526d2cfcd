package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/campus-api/internal/domain"
	"github.com/campus-api/internal/domain/repository"
	"github.com/campus-api/internal/pkg/errors"
)

const busStopColumns = `id, name, latitude, longitude, landmark`

type busStopRow struct {
	ID        int64   `db:"id"`
	Name      string  `db:"name"`
	Latitude  *string `db:"latitude"`
	Longitude *string `db:"longitude"`
	Landmark  *string `db:"landmark"`
}

func (row busStopRow) toDomain() *domain.BusStop {
	stop := &domain.BusStop{
		ID:       row.ID,
		Name:     row.Name,
		Landmark: row.Landmark,
	}
	if row.Latitude != nil && row.Longitude != nil {
		stop.Location = &domain.Location{Latitude: *row.Latitude, Longitude: *row.Longitude}
	}
	return stop
}

func stopCoordinates(stop *domain.BusStop) (*string, *string) {
	if stop.Location == nil {
		return nil, nil
	}
	return &stop.Location.Latitude, &stop.Location.Longitude
}

type busStopRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewBusStopRepository(db *DB) repository.BusStopRepository {
	return &busStopRepository{
		db:     db,
		logger: db.logger,
	}
}

// loadBusStops возвращает остановки по ID
func loadBusStops(ctx context.Context, q sqlx.QueryerContext, ids []int64) (map[int64]*domain.BusStop, error) {
	result := make(map[int64]*domain.BusStop, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var rows []busStopRow
	query := `SELECT ` + busStopColumns + ` FROM bus_stops WHERE id = ANY($1)`
	if err := sqlx.SelectContext(ctx, q, &rows, query, idList(ids)); err != nil {
		return nil, fmt.Errorf("load bus stops: %w", err)
	}
	for _, row := range rows {
		result[row.ID] = row.toDomain()
	}
	return result, nil
}

func (r *busStopRepository) List(ctx context.Context) ([]*domain.BusStop, error) {
	var rows []busStopRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT `+busStopColumns+` FROM bus_stops ORDER BY id`); err != nil {
		r.logger.Error("Failed to list bus stops", zap.Error(err))
		return nil, fmt.Errorf("list bus stops: %w", err)
	}

	stops := make([]*domain.BusStop, 0, len(rows))
	for _, row := range rows {
		stops = append(stops, row.toDomain())
	}
	return stops, nil
}

func (r *busStopRepository) GetByID(ctx context.Context, id int64) (*domain.BusStop, error) {
	return r.getOne(ctx, `SELECT `+busStopColumns+` FROM bus_stops WHERE id = $1`, id)
}

func (r *busStopRepository) Find(ctx context.Context, key domain.BusStopKey) (*domain.BusStop, error) {
	switch {
	case key.ID != nil:
		return r.GetByID(ctx, *key.ID)
	case key.Name != nil:
		return r.getOne(ctx, `SELECT `+busStopColumns+` FROM bus_stops WHERE name = $1`, *key.Name)
	default:
		return nil, errors.ErrInvalidRequest
	}
}

func (r *busStopRepository) Create(ctx context.Context, stop *domain.BusStop) (*domain.BusStop, error) {
	lat, lon := stopCoordinates(stop)

	var row busStopRow
	err := r.db.GetContext(ctx, &row, `
		INSERT INTO bus_stops (name, latitude, longitude, landmark)
		VALUES ($1, $2, $3, $4)
		RETURNING `+busStopColumns,
		stop.Name, lat, lon, stop.Landmark,
	)
	if isUniqueViolation(err) {
		return nil, errors.ErrBusStopAlreadyExists
	}
	if err != nil {
		r.logger.Error("Failed to create bus stop", zap.String("name", stop.Name), zap.Error(err))
		return nil, fmt.Errorf("create bus stop: %w", err)
	}
	return row.toDomain(), nil
}

func (r *busStopRepository) Update(ctx context.Context, stop *domain.BusStop) (*domain.BusStop, error) {
	lat, lon := stopCoordinates(stop)

	var row busStopRow
	err := r.db.GetContext(ctx, &row, `
		UPDATE bus_stops SET name = $2, latitude = $3, longitude = $4, landmark = $5
		WHERE id = $1
		RETURNING `+busStopColumns,
		stop.ID, stop.Name, lat, lon, stop.Landmark,
	)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrBusStopNotFound
	}
	if isUniqueViolation(err) {
		return nil, errors.ErrBusStopAlreadyExists
	}
	if err != nil {
		r.logger.Error("Failed to update bus stop", zap.Int64("id", stop.ID), zap.Error(err))
		return nil, fmt.Errorf("update bus stop: %w", err)
	}
	return row.toDomain(), nil
}

// Delete отказывает, пока остановка входит в какой-либо маршрут, в том числе как промежуточная
func (r *busStopRepository) Delete(ctx context.Context, id int64) error {
	return r.db.withTx(ctx, func(tx *sqlx.Tx) error {
		var inUse bool
		err := tx.GetContext(ctx, &inUse, `
			SELECT EXISTS (
				SELECT 1 FROM bus_routes
				WHERE from_stop = $1 OR to_stop = $1 OR $1 = ANY(COALESCE(via_stops, '{}'::bigint[]))
			)`, id)
		if err != nil {
			return fmt.Errorf("check bus stop usage: %w", err)
		}
		if inUse {
			return errors.ErrBusStopInUse
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM bus_stops WHERE id = $1`, id)
		if isForeignKeyViolation(err) {
			return errors.ErrBusStopInUse
		}
		if err != nil {
			r.logger.Error("Failed to delete bus stop", zap.Int64("id", id), zap.Error(err))
			return fmt.Errorf("delete bus stop: %w", err)
		}
		if found, err := rowsAffected(res); err != nil {
			return fmt.Errorf("delete bus stop: %w", err)
		} else if !found {
			return errors.ErrBusStopNotFound
		}
		return nil
	})
}

func (r *busStopRepository) getOne(ctx context.Context, query string, args ...interface{}) (*domain.BusStop, error) {
	var row busStopRow
	err := r.db.GetContext(ctx, &row, query, args...)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrBusStopNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get bus stop", zap.Error(err))
		return nil, fmt.Errorf("get bus stop: %w", err)
	}
	return row.toDomain(), nil
}
