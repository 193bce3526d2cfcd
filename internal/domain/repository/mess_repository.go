package repository

import (
	"context"

	"github.com/campus-api/internal/domain"
)

// MessRepository определяет методы для работы со столовыми
type MessRepository interface {
	List(ctx context.Context) ([]*domain.Mess, error)
	GetByID(ctx context.Context, id int64) (*domain.Mess, error)
	Find(ctx context.Context, key domain.MessKey) (*domain.Mess, error)
	Create(ctx context.Context, mess *domain.Mess) (*domain.Mess, error)
	Update(ctx context.Context, mess *domain.Mess) (*domain.Mess, error)

	// SetMenu меняет текущее меню столовой
	SetMenu(ctx context.Context, messID, menuID int64) (*domain.Mess, error)

	Delete(ctx context.Context, id int64) error
}

// MessMenuRepository определяет методы для работы с меню столовых
type MessMenuRepository interface {
	// List возвращает меню, month и year фильтруют при наличии
	List(ctx context.Context, month, year *int) ([]*domain.MessMenu, error)
	GetByID(ctx context.Context, id int64) (*domain.MessMenu, error)
	Find(ctx context.Context, key domain.MessMenuKey) (*domain.MessMenu, error)
	Create(ctx context.Context, menu *domain.MessMenu) (*domain.MessMenu, error)
	Update(ctx context.Context, menu *domain.MessMenu) (*domain.MessMenu, error)
	Delete(ctx context.Context, id int64) error
}

// MessMenuItemRepository определяет методы для работы с блюдами столовых
type MessMenuItemRepository interface {
	List(ctx context.Context) ([]*domain.MessMenuItem, error)
	GetByID(ctx context.Context, id int64) (*domain.MessMenuItem, error)
	Find(ctx context.Context, key domain.MessMenuItemKey) (*domain.MessMenuItem, error)

	// GetByIDs возвращает блюда в порядке ids; отсутствующее блюдо - ошибка
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.MessMenuItem, error)

	Create(ctx context.Context, item *domain.MessMenuItem) (*domain.MessMenuItem, error)
	Update(ctx context.Context, item *domain.MessMenuItem) (*domain.MessMenuItem, error)

	// Delete удаляет блюдо и вычищает его ID из всех меню
	Delete(ctx context.Context, id int64) error
}
