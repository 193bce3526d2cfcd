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

const foodOutletColumns = `
	id, name, location, landmark,
	open_time::text AS open_time, close_time::text AS close_time,
	rating, menu, image`

type foodOutletRow struct {
	ID        int64             `db:"id"`
	Name      string            `db:"name"`
	Location  *domain.Location  `db:"location"`
	Landmark  *string           `db:"landmark"`
	OpenTime  *domain.TimeOfDay `db:"open_time"`
	CloseTime *domain.TimeOfDay `db:"close_time"`
	Rating    *float64          `db:"rating"`
	Menu      pq.Int64Array     `db:"menu"`
	Image     *string           `db:"image"`
}

type foodOutletRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewFoodOutletRepository(db *DB) repository.FoodOutletRepository {
	return &foodOutletRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *foodOutletRepository) List(ctx context.Context) ([]*domain.FoodOutlet, error) {
	query := `SELECT ` + foodOutletColumns + ` FROM food_outlets ORDER BY id`

	var rows []foodOutletRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		r.logger.Error("Failed to list food outlets", zap.Error(err))
		return nil, fmt.Errorf("list food outlets: %w", err)
	}

	return r.hydrate(ctx, r.db, rows)
}

func (r *foodOutletRepository) GetByID(ctx context.Context, id int64) (*domain.FoodOutlet, error) {
	return r.getOne(ctx, `SELECT `+foodOutletColumns+` FROM food_outlets WHERE id = $1`, id)
}

func (r *foodOutletRepository) Find(ctx context.Context, key domain.FoodOutletKey) (*domain.FoodOutlet, error) {
	switch {
	case key.ID != nil:
		return r.GetByID(ctx, *key.ID)
	case key.Name != nil:
		return r.getOne(ctx, `SELECT `+foodOutletColumns+` FROM food_outlets WHERE name = $1`, *key.Name)
	default:
		return nil, errors.ErrInvalidRequest
	}
}

func (r *foodOutletRepository) Create(ctx context.Context, outlet *domain.FoodOutlet) (*domain.FoodOutlet, error) {
	query := `
		INSERT INTO food_outlets (name, location, landmark, open_time, close_time, rating, menu, image)
		VALUES ($1, $2, $3, $4::time, $5::time, $6, $7, $8)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		outlet.Name, outlet.Location, outlet.Landmark,
		outlet.OpenTime, outlet.CloseTime, outlet.Rating,
		idList(outlet.MenuIDs()), outlet.Image,
	).Scan(&id)
	if isUniqueViolation(err) {
		return nil, errors.ErrFoodOutletAlreadyExists
	}
	if err != nil {
		r.logger.Error("Failed to create food outlet", zap.String("name", outlet.Name), zap.Error(err))
		return nil, fmt.Errorf("create food outlet: %w", err)
	}

	return r.GetByID(ctx, id)
}

// Update не трогает список меню: его меняют только Create и Delete позиций в транзакции
func (r *foodOutletRepository) Update(ctx context.Context, outlet *domain.FoodOutlet) (*domain.FoodOutlet, error) {
	query := `
		UPDATE food_outlets
		SET name = $2, location = $3, landmark = $4, open_time = $5::time, close_time = $6::time,
			rating = $7, image = $8
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query,
		outlet.ID, outlet.Name, outlet.Location, outlet.Landmark,
		outlet.OpenTime, outlet.CloseTime, outlet.Rating, outlet.Image,
	)
	if isUniqueViolation(err) {
		return nil, errors.ErrFoodOutletAlreadyExists
	}
	if err != nil {
		r.logger.Error("Failed to update food outlet", zap.Int64("id", outlet.ID), zap.Error(err))
		return nil, fmt.Errorf("update food outlet: %w", err)
	}
	if found, err := rowsAffected(res); err != nil {
		return nil, fmt.Errorf("update food outlet: %w", err)
	} else if !found {
		return nil, errors.ErrFoodOutletNotFound
	}

	return r.GetByID(ctx, outlet.ID)
}

// Delete - позиции меню удаляются каскадом по внешнему ключу
func (r *foodOutletRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM food_outlets WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete food outlet", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("delete food outlet: %w", err)
	}
	if found, err := rowsAffected(res); err != nil {
		return fmt.Errorf("delete food outlet: %w", err)
	} else if !found {
		return errors.ErrFoodOutletNotFound
	}
	return nil
}

func (r *foodOutletRepository) getOne(ctx context.Context, query string, args ...interface{}) (*domain.FoodOutlet, error) {
	var row foodOutletRow
	err := r.db.GetContext(ctx, &row, query, args...)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrFoodOutletNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get food outlet", zap.Error(err))
		return nil, fmt.Errorf("get food outlet: %w", err)
	}

	outlets, err := r.hydrate(ctx, r.db, []foodOutletRow{row})
	if err != nil {
		return nil, err
	}
	return outlets[0], nil
}

// hydrate раскрывает списки меню одним запросом на все строки
func (r *foodOutletRepository) hydrate(ctx context.Context, q sqlx.QueryerContext, rows []foodOutletRow) ([]*domain.FoodOutlet, error) {
	lists := make([][]int64, 0, len(rows))
	for _, row := range rows {
		lists = append(lists, row.Menu)
	}

	items, err := loadMenuItems(ctx, q, uniqueIDs(lists...))
	if err != nil {
		return nil, err
	}

	outlets := make([]*domain.FoodOutlet, 0, len(rows))
	for _, row := range rows {
		menu := make([]*domain.MenuItem, 0, len(row.Menu))
		for _, id := range row.Menu {
			item, ok := items[id]
			if !ok {
				r.logger.Warn("Food outlet references a missing menu item, skipping",
					zap.Int64("outlet_id", row.ID), zap.Int64("menu_item_id", id))
				continue
			}
			menu = append(menu, item)
		}
		if len(menu) == 0 {
			menu = nil
		}
		outlets = append(outlets, &domain.FoodOutlet{
			ID:        row.ID,
			Name:      row.Name,
			Location:  row.Location,
			Landmark:  row.Landmark,
			OpenTime:  row.OpenTime,
			CloseTime: row.CloseTime,
			Rating:    row.Rating,
			Menu:      menu,
			Image:     row.Image,
		})
	}
	return outlets, nil
}
