package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/campus-api/internal/domain"
	"github.com/campus-api/internal/domain/repository"
	"github.com/campus-api/internal/pkg/errors"
)

const messMenuItemColumns = `id, name, description, rating, cal, image`

type messMenuItemRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewMessMenuItemRepository(db *DB) repository.MessMenuItemRepository {
	return &messMenuItemRepository{
		db:     db,
		logger: db.logger,
	}
}

// loadMessMenuItems возвращает блюда по ID; отсутствующих в ответе просто нет
func loadMessMenuItems(ctx context.Context, q sqlx.QueryerContext, ids []int64) (map[int64]*domain.MessMenuItem, error) {
	result := make(map[int64]*domain.MessMenuItem, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var items []*domain.MessMenuItem
	query := `SELECT ` + messMenuItemColumns + ` FROM mess_menu_items WHERE id = ANY($1)`
	if err := sqlx.SelectContext(ctx, q, &items, query, pq.Int64Array(ids)); err != nil {
		return nil, fmt.Errorf("load mess menu items: %w", err)
	}

	for _, item := range items {
		result[item.ID] = item
	}
	return result, nil
}

func (r *messMenuItemRepository) List(ctx context.Context) ([]*domain.MessMenuItem, error) {
	var items []*domain.MessMenuItem
	query := `SELECT ` + messMenuItemColumns + ` FROM mess_menu_items ORDER BY id`
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		r.logger.Error("Failed to list mess menu items", zap.Error(err))
		return nil, fmt.Errorf("list mess menu items: %w", err)
	}
	return items, nil
}

func (r *messMenuItemRepository) GetByID(ctx context.Context, id int64) (*domain.MessMenuItem, error) {
	return r.getOne(ctx, `SELECT `+messMenuItemColumns+` FROM mess_menu_items WHERE id = $1`, id)
}

func (r *messMenuItemRepository) Find(ctx context.Context, key domain.MessMenuItemKey) (*domain.MessMenuItem, error) {
	switch {
	case key.ID != nil:
		return r.GetByID(ctx, *key.ID)
	case key.Name != nil:
		return r.getOne(ctx, `SELECT `+messMenuItemColumns+` FROM mess_menu_items WHERE name = $1`, *key.Name)
	default:
		return nil, errors.ErrInvalidRequest
	}
}

func (r *messMenuItemRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.MessMenuItem, error) {
	byID, err := loadMessMenuItems(ctx, r.db, uniqueIDs(ids))
	if err != nil {
		r.logger.Error("Failed to load mess menu items", zap.Error(err))
		return nil, err
	}

	items, ok := resolveIDs(ids, byID)
	if !ok {
		return nil, errors.ErrMessMenuItemNotFound
	}
	return items, nil
}

func (r *messMenuItemRepository) Create(ctx context.Context, item *domain.MessMenuItem) (*domain.MessMenuItem, error) {
	query := `
		INSERT INTO mess_menu_items (name, description, rating, cal, image)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowxContext(ctx, query, item.Name, item.Description, item.Rating, item.Cal, item.Image).Scan(&id)
	if isUniqueViolation(err) {
		return nil, errors.ErrMessMenuItemAlreadyExists
	}
	if err != nil {
		r.logger.Error("Failed to create mess menu item", zap.String("name", item.Name), zap.Error(err))
		return nil, fmt.Errorf("create mess menu item: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *messMenuItemRepository) Update(ctx context.Context, item *domain.MessMenuItem) (*domain.MessMenuItem, error) {
	query := `
		UPDATE mess_menu_items
		SET name = $2, description = $3, rating = $4, cal = $5, image = $6
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query, item.ID, item.Name, item.Description, item.Rating, item.Cal, item.Image)
	if isUniqueViolation(err) {
		return nil, errors.ErrMessMenuItemAlreadyExists
	}
	if err != nil {
		r.logger.Error("Failed to update mess menu item", zap.Int64("id", item.ID), zap.Error(err))
		return nil, fmt.Errorf("update mess menu item: %w", err)
	}
	if found, err := rowsAffected(res); err != nil {
		return nil, fmt.Errorf("update mess menu item: %w", err)
	} else if !found {
		return nil, errors.ErrMessMenuItemNotFound
	}

	return r.GetByID(ctx, item.ID)
}

// Delete вычищает ID блюда из всех списков всех меню, затем удаляет строку
func (r *messMenuItemRepository) Delete(ctx context.Context, id int64) error {
	sets := make([]string, 0, len(mealColumns))
	for _, col := range mealColumns {
		sets = append(sets, fmt.Sprintf("%[1]s = NULLIF(array_remove(%[1]s, $1::bigint), '{}'::bigint[])", col))
	}
	strip := `UPDATE mess_menus SET ` + strings.Join(sets, ", ")

	err := r.db.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, strip, id); err != nil {
			return fmt.Errorf("strip mess menu item from menus: %w", err)
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM mess_menu_items WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete mess menu item: %w", err)
		}
		if found, err := rowsAffected(res); err != nil {
			return fmt.Errorf("delete mess menu item: %w", err)
		} else if !found {
			return errors.ErrMessMenuItemNotFound
		}
		return nil
	})
	if err != nil && !errors.IsNotFound(err) {
		r.logger.Error("Failed to delete mess menu item", zap.Int64("id", id), zap.Error(err))
	}
	return err
}

func (r *messMenuItemRepository) getOne(ctx context.Context, query string, args ...interface{}) (*domain.MessMenuItem, error) {
	var item domain.MessMenuItem
	err := r.db.GetContext(ctx, &item, query, args...)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrMessMenuItemNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get mess menu item", zap.Error(err))
		return nil, fmt.Errorf("get mess menu item: %w", err)
	}
	return &item, nil
}
