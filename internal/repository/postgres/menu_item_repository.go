package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/campus-api/internal/domain"
	"github.com/campus-api/internal/domain/repository"
	"github.com/campus-api/internal/pkg/errors"
)

const menuItemColumns = `id, name, food_outlet_id, price, description, rating, size, cal, image`

type menuItemRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewMenuItemRepository(db *DB) repository.MenuItemRepository {
	return &menuItemRepository{
		db:     db,
		logger: db.logger,
	}
}

// loadMenuItems возвращает позиции по ID; отсутствующих в ответе просто нет
func loadMenuItems(ctx context.Context, q sqlx.QueryerContext, ids []int64) (map[int64]*domain.MenuItem, error) {
	result := make(map[int64]*domain.MenuItem, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var items []*domain.MenuItem
	query := `SELECT ` + menuItemColumns + ` FROM food_outlet_menu_items WHERE id = ANY($1)`
	if err := sqlx.SelectContext(ctx, q, &items, query, pq.Int64Array(ids)); err != nil {
		return nil, fmt.Errorf("load menu items: %w", err)
	}

	for _, item := range items {
		result[item.ID] = item
	}
	return result, nil
}

func (r *menuItemRepository) List(ctx context.Context) ([]*domain.MenuItem, error) {
	var items []*domain.MenuItem
	query := `SELECT ` + menuItemColumns + ` FROM food_outlet_menu_items ORDER BY id`
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		r.logger.Error("Failed to list menu items", zap.Error(err))
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	return items, nil
}

func (r *menuItemRepository) GetByID(ctx context.Context, id int64) (*domain.MenuItem, error) {
	return r.getOne(ctx, r.db, `SELECT `+menuItemColumns+` FROM food_outlet_menu_items WHERE id = $1`, id)
}

func (r *menuItemRepository) Find(ctx context.Context, key domain.MenuItemKey) (*domain.MenuItem, error) {
	switch {
	case key.ID != nil:
		return r.GetByID(ctx, *key.ID)
	case key.Name != nil && key.OutletID != nil:
		query := `SELECT ` + menuItemColumns + ` FROM food_outlet_menu_items WHERE name = $1 AND food_outlet_id = $2`
		return r.getOne(ctx, r.db, query, *key.Name, *key.OutletID)
	default:
		return nil, errors.ErrInvalidRequest
	}
}

// Create вставляет позицию и дописывает её ID в конец меню точки
func (r *menuItemRepository) Create(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	var created *domain.MenuItem
	err := r.db.withTx(ctx, func(tx *sqlx.Tx) error {
		// блокируем точку, чтобы параллельные вставки не затёрли список меню
		var outletID int64
		err := tx.GetContext(ctx, &outletID, `SELECT id FROM food_outlets WHERE id = $1 FOR UPDATE`, item.OutletID)
		if stderrors.Is(err, sql.ErrNoRows) {
			return errors.ErrFoodOutletNotFound
		}
		if err != nil {
			return fmt.Errorf("lock food outlet: %w", err)
		}

		insert := `
			INSERT INTO food_outlet_menu_items (name, food_outlet_id, price, description, rating, size, cal, image)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id
		`
		var id int64
		err = tx.QueryRowxContext(ctx, insert,
			item.Name, item.OutletID, item.Price, item.Description,
			item.Rating, item.Size, item.Cal, item.Image,
		).Scan(&id)
		if isUniqueViolation(err) {
			return errors.ErrMenuItemAlreadyExists
		}
		if err != nil {
			return fmt.Errorf("insert menu item: %w", err)
		}

		appendQuery := `UPDATE food_outlets SET menu = array_append(COALESCE(menu, '{}'::bigint[]), $1::bigint) WHERE id = $2`
		if _, err := tx.ExecContext(ctx, appendQuery, id, item.OutletID); err != nil {
			return fmt.Errorf("append menu item to outlet: %w", err)
		}

		created, err = r.getOne(ctx, tx, `SELECT `+menuItemColumns+` FROM food_outlet_menu_items WHERE id = $1`, id)
		return err
	})
	if err != nil {
		r.logAppError("Failed to create menu item", err, zap.String("name", item.Name), zap.Int64("outlet_id", item.OutletID))
		return nil, err
	}
	return created, nil
}

func (r *menuItemRepository) Update(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	query := `
		UPDATE food_outlet_menu_items
		SET name = $2, price = $3, description = $4, rating = $5, size = $6, cal = $7, image = $8
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query,
		item.ID, item.Name, item.Price, item.Description,
		item.Rating, item.Size, item.Cal, item.Image,
	)
	if isUniqueViolation(err) {
		return nil, errors.ErrMenuItemAlreadyExists
	}
	if err != nil {
		r.logger.Error("Failed to update menu item", zap.Int64("id", item.ID), zap.Error(err))
		return nil, fmt.Errorf("update menu item: %w", err)
	}
	if found, err := rowsAffected(res); err != nil {
		return nil, fmt.Errorf("update menu item: %w", err)
	} else if !found {
		return nil, errors.ErrMenuItemNotFound
	}

	return r.GetByID(ctx, item.ID)
}

// Delete сначала убирает ID из меню точки, затем удаляет строку
func (r *menuItemRepository) Delete(ctx context.Context, item *domain.MenuItem) error {
	err := r.db.withTx(ctx, func(tx *sqlx.Tx) error {
		removeQuery := `UPDATE food_outlets SET menu = NULLIF(array_remove(menu, $1::bigint), '{}'::bigint[]) WHERE id = $2`
		if _, err := tx.ExecContext(ctx, removeQuery, item.ID, item.OutletID); err != nil {
			return fmt.Errorf("remove menu item from outlet: %w", err)
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM food_outlet_menu_items WHERE id = $1`, item.ID)
		if err != nil {
			return fmt.Errorf("delete menu item: %w", err)
		}
		if found, err := rowsAffected(res); err != nil {
			return fmt.Errorf("delete menu item: %w", err)
		} else if !found {
			return errors.ErrMenuItemNotFound
		}
		return nil
	})
	if err != nil {
		r.logAppError("Failed to delete menu item", err, zap.Int64("id", item.ID))
	}
	return err
}

func (r *menuItemRepository) getOne(ctx context.Context, q sqlx.QueryerContext, query string, args ...interface{}) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := sqlx.GetContext(ctx, q, &item, query, args...)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrMenuItemNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get menu item", zap.Error(err))
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return &item, nil
}

// logAppError - ожидаемые доменные ошибки не шумят в логе
func (r *menuItemRepository) logAppError(msg string, err error, fields ...zap.Field) {
	if _, ok := errors.As(err); ok {
		return
	}
	r.logger.Error(msg, append(fields, zap.Error(err))...)
}
