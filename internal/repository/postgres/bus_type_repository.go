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

type busTypeRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewBusTypeRepository(db *DB) repository.BusTypeRepository {
	return &busTypeRepository{
		db:     db,
		logger: db.logger,
	}
}

// loadBusTypes возвращает типы по ID
func loadBusTypes(ctx context.Context, q sqlx.QueryerContext, ids []int64) (map[int64]*domain.BusType, error) {
	result := make(map[int64]*domain.BusType, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var types []*domain.BusType
	if err := sqlx.SelectContext(ctx, q, &types, `SELECT id, name FROM bus_types WHERE id = ANY($1)`, idList(ids)); err != nil {
		return nil, fmt.Errorf("load bus types: %w", err)
	}
	for _, t := range types {
		result[t.ID] = t
	}
	return result, nil
}

func (r *busTypeRepository) List(ctx context.Context) ([]*domain.BusType, error) {
	var types []*domain.BusType
	if err := r.db.SelectContext(ctx, &types, `SELECT id, name FROM bus_types ORDER BY id`); err != nil {
		r.logger.Error("Failed to list bus types", zap.Error(err))
		return nil, fmt.Errorf("list bus types: %w", err)
	}
	return types, nil
}

func (r *busTypeRepository) GetByID(ctx context.Context, id int64) (*domain.BusType, error) {
	return r.getOne(ctx, `SELECT id, name FROM bus_types WHERE id = $1`, id)
}

func (r *busTypeRepository) Find(ctx context.Context, key domain.BusTypeKey) (*domain.BusType, error) {
	switch {
	case key.ID != nil:
		return r.GetByID(ctx, *key.ID)
	case key.Name != nil:
		return r.getOne(ctx, `SELECT id, name FROM bus_types WHERE name = $1`, *key.Name)
	default:
		return nil, errors.ErrInvalidRequest
	}
}

func (r *busTypeRepository) Create(ctx context.Context, busType *domain.BusType) (*domain.BusType, error) {
	var created domain.BusType
	err := r.db.GetContext(ctx, &created, `INSERT INTO bus_types (name) VALUES ($1) RETURNING id, name`, busType.Name)
	if isUniqueViolation(err) {
		return nil, errors.ErrBusTypeAlreadyExists
	}
	if err != nil {
		r.logger.Error("Failed to create bus type", zap.String("name", busType.Name), zap.Error(err))
		return nil, fmt.Errorf("create bus type: %w", err)
	}
	return &created, nil
}

func (r *busTypeRepository) Update(ctx context.Context, busType *domain.BusType) (*domain.BusType, error) {
	var updated domain.BusType
	err := r.db.GetContext(ctx, &updated,
		`UPDATE bus_types SET name = $2 WHERE id = $1 RETURNING id, name`, busType.ID, busType.Name)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrBusTypeNotFound
	}
	if isUniqueViolation(err) {
		return nil, errors.ErrBusTypeAlreadyExists
	}
	if err != nil {
		r.logger.Error("Failed to update bus type", zap.Int64("id", busType.ID), zap.Error(err))
		return nil, fmt.Errorf("update bus type: %w", err)
	}
	return &updated, nil
}

// Delete отказывает, пока тип указан хотя бы в одном расписании
func (r *busTypeRepository) Delete(ctx context.Context, id int64) error {
	return r.db.withTx(ctx, func(tx *sqlx.Tx) error {
		var inUse bool
		if err := tx.GetContext(ctx, &inUse, `SELECT EXISTS (SELECT 1 FROM bus_schedules WHERE bus_type = $1)`, id); err != nil {
			return fmt.Errorf("check bus type usage: %w", err)
		}
		if inUse {
			return errors.ErrBusTypeInUse
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM bus_types WHERE id = $1`, id)
		if isForeignKeyViolation(err) {
			return errors.ErrBusTypeInUse
		}
		if err != nil {
			r.logger.Error("Failed to delete bus type", zap.Int64("id", id), zap.Error(err))
			return fmt.Errorf("delete bus type: %w", err)
		}
		if found, err := rowsAffected(res); err != nil {
			return fmt.Errorf("delete bus type: %w", err)
		} else if !found {
			return errors.ErrBusTypeNotFound
		}
		return nil
	})
}

func (r *busTypeRepository) getOne(ctx context.Context, query string, args ...interface{}) (*domain.BusType, error) {
	var busType domain.BusType
	err := r.db.GetContext(ctx, &busType, query, args...)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrBusTypeNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get bus type", zap.Error(err))
		return nil, fmt.Errorf("get bus type: %w", err)
	}
	return &busType, nil
}
