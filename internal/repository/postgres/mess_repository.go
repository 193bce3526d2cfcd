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

const messColumns = `id, name, location, landmark, timings, rating, menu_id, image`

type messRow struct {
	ID       int64               `db:"id"`
	Name     string              `db:"name"`
	Location *domain.Location    `db:"location"`
	Landmark *string             `db:"landmark"`
	Timings  *domain.MessTimings `db:"timings"`
	Rating   *float64            `db:"rating"`
	MenuID   *int64              `db:"menu_id"`
	Image    *string             `db:"image"`
}

type messRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewMessRepository(db *DB) repository.MessRepository {
	return &messRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *messRepository) List(ctx context.Context) ([]*domain.Mess, error) {
	var rows []messRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT `+messColumns+` FROM messes ORDER BY id`); err != nil {
		r.logger.Error("Failed to list messes", zap.Error(err))
		return nil, fmt.Errorf("list messes: %w", err)
	}
	return r.hydrate(ctx, r.db, rows)
}

func (r *messRepository) GetByID(ctx context.Context, id int64) (*domain.Mess, error) {
	return r.getOne(ctx, `SELECT `+messColumns+` FROM messes WHERE id = $1`, id)
}

func (r *messRepository) Find(ctx context.Context, key domain.MessKey) (*domain.Mess, error) {
	switch {
	case key.ID != nil:
		return r.GetByID(ctx, *key.ID)
	case key.Name != nil:
		return r.getOne(ctx, `SELECT `+messColumns+` FROM messes WHERE name = $1`, *key.Name)
	default:
		return nil, errors.ErrInvalidRequest
	}
}

func (r *messRepository) Create(ctx context.Context, mess *domain.Mess) (*domain.Mess, error) {
	query := `
		INSERT INTO messes (name, location, landmark, timings, rating, menu_id, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		mess.Name, mess.Location, mess.Landmark, mess.Timings, mess.Rating, menuID(mess), mess.Image,
	).Scan(&id)
	if isUniqueViolation(err) {
		return nil, errors.ErrMessAlreadyExists
	}
	if isForeignKeyViolation(err) {
		return nil, errors.ErrMessMenuNotFound
	}
	if err != nil {
		r.logger.Error("Failed to create mess", zap.String("name", mess.Name), zap.Error(err))
		return nil, fmt.Errorf("create mess: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *messRepository) Update(ctx context.Context, mess *domain.Mess) (*domain.Mess, error) {
	query := `
		UPDATE messes
		SET name = $2, location = $3, landmark = $4, timings = $5, rating = $6, menu_id = $7, image = $8
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query,
		mess.ID, mess.Name, mess.Location, mess.Landmark, mess.Timings, mess.Rating, menuID(mess), mess.Image,
	)
	if isUniqueViolation(err) {
		return nil, errors.ErrMessAlreadyExists
	}
	if isForeignKeyViolation(err) {
		return nil, errors.ErrMessMenuNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update mess", zap.Int64("id", mess.ID), zap.Error(err))
		return nil, fmt.Errorf("update mess: %w", err)
	}
	if found, err := rowsAffected(res); err != nil {
		return nil, fmt.Errorf("update mess: %w", err)
	} else if !found {
		return nil, errors.ErrMessNotFound
	}

	return r.GetByID(ctx, mess.ID)
}

func (r *messRepository) SetMenu(ctx context.Context, messID, menuID int64) (*domain.Mess, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE messes SET menu_id = $2 WHERE id = $1`, messID, menuID)
	if isForeignKeyViolation(err) {
		return nil, errors.ErrMessMenuNotFound
	}
	if err != nil {
		r.logger.Error("Failed to set mess menu",
			zap.Int64("mess_id", messID), zap.Int64("menu_id", menuID), zap.Error(err))
		return nil, fmt.Errorf("set mess menu: %w", err)
	}
	if found, err := rowsAffected(res); err != nil {
		return nil, fmt.Errorf("set mess menu: %w", err)
	} else if !found {
		return nil, errors.ErrMessNotFound
	}

	return r.GetByID(ctx, messID)
}

func (r *messRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM messes WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete mess", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("delete mess: %w", err)
	}
	if found, err := rowsAffected(res); err != nil {
		return fmt.Errorf("delete mess: %w", err)
	} else if !found {
		return errors.ErrMessNotFound
	}
	return nil
}

func (r *messRepository) getOne(ctx context.Context, query string, args ...interface{}) (*domain.Mess, error) {
	var row messRow
	err := r.db.GetContext(ctx, &row, query, args...)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrMessNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get mess", zap.Error(err))
		return nil, fmt.Errorf("get mess: %w", err)
	}

	messes, err := r.hydrate(ctx, r.db, []messRow{row})
	if err != nil {
		return nil, err
	}
	return messes[0], nil
}

// hydrate подгружает текущие меню всех столовых одним запросом
func (r *messRepository) hydrate(ctx context.Context, q sqlx.QueryerContext, rows []messRow) ([]*domain.Mess, error) {
	var menuIDs []int64
	for _, row := range rows {
		if row.MenuID != nil {
			menuIDs = append(menuIDs, *row.MenuID)
		}
	}

	menus := make(map[int64]*domain.MessMenu)
	if ids := uniqueIDs(menuIDs); len(ids) > 0 {
		loaded, err := loadMessMenus(ctx, q, `SELECT `+messMenuColumns+` FROM mess_menus WHERE id = ANY($1)`, idList(ids))
		if err != nil {
			r.logger.Error("Failed to load mess menus", zap.Error(err))
			return nil, err
		}
		for _, m := range loaded {
			menus[m.ID] = m
		}
	}

	messes := make([]*domain.Mess, 0, len(rows))
	for _, row := range rows {
		mess := &domain.Mess{
			ID:       row.ID,
			Name:     row.Name,
			Location: row.Location,
			Landmark: row.Landmark,
			Timings:  row.Timings,
			Rating:   row.Rating,
			Image:    row.Image,
		}
		if row.MenuID != nil {
			mess.Menu = menus[*row.MenuID]
		}
		messes = append(messes, mess)
	}
	return messes, nil
}

func menuID(mess *domain.Mess) *int64 {
	if mess.Menu == nil {
		return nil
	}
	return &mess.Menu.ID
}
