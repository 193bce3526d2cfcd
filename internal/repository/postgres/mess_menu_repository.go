package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/campus-api/internal/domain"
	"github.com/campus-api/internal/domain/repository"
	"github.com/campus-api/internal/pkg/errors"
)

// mealColumns - колонки вида monday_breakfast в порядке дней и приёмов пищи
var mealColumns = func() []string {
	cols := make([]string, 0, len(domain.Weekdays)*len(domain.Meals))
	for _, d := range domain.Weekdays {
		for _, m := range domain.Meals {
			cols = append(cols, string(d)+"_"+string(m))
		}
	}
	return cols
}()

var messMenuColumns = "id, month, year, " + strings.Join(mealColumns, ", ")

// messMenuRow - строка mess_menus; meals идут в порядке mealColumns
type messMenuRow struct {
	ID    int64
	Month int
	Year  int
	Meals []pq.Int64Array
}

type messMenuRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewMessMenuRepository(db *DB) repository.MessMenuRepository {
	return &messMenuRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *messMenuRepository) List(ctx context.Context, month, year *int) ([]*domain.MessMenu, error) {
	query := `
		SELECT ` + messMenuColumns + `
		FROM mess_menus
		WHERE ($1::int IS NULL OR month = $1) AND ($2::int IS NULL OR year = $2)
		ORDER BY id
	`
	menus, err := loadMessMenus(ctx, r.db, query, month, year)
	if err != nil {
		r.logger.Error("Failed to list mess menus", zap.Error(err))
		return nil, err
	}
	return menus, nil
}

func (r *messMenuRepository) GetByID(ctx context.Context, id int64) (*domain.MessMenu, error) {
	return r.getOne(ctx, `SELECT `+messMenuColumns+` FROM mess_menus WHERE id = $1`, id)
}

func (r *messMenuRepository) Find(ctx context.Context, key domain.MessMenuKey) (*domain.MessMenu, error) {
	switch {
	case key.ID != nil:
		return r.GetByID(ctx, *key.ID)
	case key.Month != nil && key.Year != nil:
		return r.getOne(ctx, `SELECT `+messMenuColumns+` FROM mess_menus WHERE month = $1 AND year = $2`, *key.Month, *key.Year)
	default:
		return nil, errors.ErrInvalidRequest
	}
}

func (r *messMenuRepository) Create(ctx context.Context, menu *domain.MessMenu) (*domain.MessMenu, error) {
	placeholders := make([]string, 0, len(mealColumns))
	for i := range mealColumns {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+3))
	}
	query := fmt.Sprintf(
		`INSERT INTO mess_menus (month, year, %s) VALUES ($1, $2, %s) RETURNING id`,
		strings.Join(mealColumns, ", "), strings.Join(placeholders, ", "),
	)

	args := append([]interface{}{menu.Month, menu.Year}, mealArgs(menu)...)

	var id int64
	err := r.db.QueryRowxContext(ctx, query, args...).Scan(&id)
	if isUniqueViolation(err) {
		return nil, errors.ErrMessMenuAlreadyExists
	}
	if err != nil {
		r.logger.Error("Failed to create mess menu",
			zap.Int("month", menu.Month), zap.Int("year", menu.Year), zap.Error(err))
		return nil, fmt.Errorf("create mess menu: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *messMenuRepository) Update(ctx context.Context, menu *domain.MessMenu) (*domain.MessMenu, error) {
	sets := make([]string, 0, len(mealColumns))
	for i, col := range mealColumns {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+4))
	}
	query := `UPDATE mess_menus SET month = $2, year = $3, ` + strings.Join(sets, ", ") + ` WHERE id = $1`

	args := append([]interface{}{menu.ID, menu.Month, menu.Year}, mealArgs(menu)...)

	res, err := r.db.ExecContext(ctx, query, args...)
	if isUniqueViolation(err) {
		return nil, errors.ErrMessMenuAlreadyExists
	}
	if err != nil {
		r.logger.Error("Failed to update mess menu", zap.Int64("id", menu.ID), zap.Error(err))
		return nil, fmt.Errorf("update mess menu: %w", err)
	}
	if found, err := rowsAffected(res); err != nil {
		return nil, fmt.Errorf("update mess menu: %w", err)
	} else if !found {
		return nil, errors.ErrMessMenuNotFound
	}

	return r.GetByID(ctx, menu.ID)
}

// Delete - столовые с этим меню остаются без меню (ON DELETE SET NULL)
func (r *messMenuRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM mess_menus WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete mess menu", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("delete mess menu: %w", err)
	}
	if found, err := rowsAffected(res); err != nil {
		return fmt.Errorf("delete mess menu: %w", err)
	} else if !found {
		return errors.ErrMessMenuNotFound
	}
	return nil
}

func (r *messMenuRepository) getOne(ctx context.Context, query string, args ...interface{}) (*domain.MessMenu, error) {
	menus, err := loadMessMenus(ctx, r.db, query, args...)
	if err != nil {
		r.logger.Error("Failed to get mess menu", zap.Error(err))
		return nil, err
	}
	if len(menus) == 0 {
		return nil, errors.ErrMessMenuNotFound
	}
	return menus[0], nil
}

// mealArgs - значения колонок приёмов пищи в порядке mealColumns
func mealArgs(menu *domain.MessMenu) []interface{} {
	args := make([]interface{}, 0, len(mealColumns))
	for _, d := range domain.Weekdays {
		day := menu.Day(d)
		for _, m := range domain.Meals {
			items := day.Items(m)
			ids := make([]int64, 0, len(items))
			for _, item := range items {
				ids = append(ids, item.ID)
			}
			args = append(args, idList(ids))
		}
	}
	return args
}

// loadMessMenus читает меню и раскрывает все списки блюд одним запросом
func loadMessMenus(ctx context.Context, q sqlx.QueryerContext, query string, args ...interface{}) ([]*domain.MessMenu, error) {
	rows, err := q.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query mess menus: %w", err)
	}
	defer rows.Close()

	var menuRows []messMenuRow
	for rows.Next() {
		row := messMenuRow{Meals: make([]pq.Int64Array, len(mealColumns))}
		dest := []interface{}{&row.ID, &row.Month, &row.Year}
		for i := range row.Meals {
			dest = append(dest, &row.Meals[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan mess menu: %w", err)
		}
		menuRows = append(menuRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mess menus: %w", err)
	}

	var lists [][]int64
	for _, row := range menuRows {
		for _, meal := range row.Meals {
			lists = append(lists, meal)
		}
	}
	items, err := loadMessMenuItems(ctx, q, uniqueIDs(lists...))
	if err != nil {
		return nil, err
	}

	menus := make([]*domain.MessMenu, 0, len(menuRows))
	for _, row := range menuRows {
		menu := &domain.MessMenu{ID: row.ID, Month: row.Month, Year: row.Year}
		i := 0
		for _, d := range domain.Weekdays {
			day := &domain.DayMenu{}
			for _, m := range domain.Meals {
				resolved, ok := resolveIDs(row.Meals[i], items)
				if !ok {
					return nil, errors.ErrMessMenuItemNotFound
				}
				day.SetItems(m, resolved)
				i++
			}
			if !day.IsEmpty() {
				menu.SetDay(d, day)
			}
		}
		menus = append(menus, menu)
	}
	return menus, nil
}
