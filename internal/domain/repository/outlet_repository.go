package repository

import (
	"context"

	"github.com/campus-api/internal/domain"
)

// FoodOutletRepository определяет методы для работы с точками питания
type FoodOutletRepository interface {
	// List возвращает все точки с раскрытым меню, по возрастанию ID
	List(ctx context.Context) ([]*domain.FoodOutlet, error)

	// GetByID получает точку по ID
	GetByID(ctx context.Context, id int64) (*domain.FoodOutlet, error)

	// Find получает точку по ID или по имени
	Find(ctx context.Context, key domain.FoodOutletKey) (*domain.FoodOutlet, error)

	// Create сохраняет точку и возвращает её перечитанной
	Create(ctx context.Context, outlet *domain.FoodOutlet) (*domain.FoodOutlet, error)

	// Update перезаписывает строку целиком, включая список меню
	Update(ctx context.Context, outlet *domain.FoodOutlet) (*domain.FoodOutlet, error)

	// Delete удаляет точку вместе с её позициями меню
	Delete(ctx context.Context, id int64) error
}

// MenuItemRepository определяет методы для работы с позициями меню
type MenuItemRepository interface {
	List(ctx context.Context) ([]*domain.MenuItem, error)
	GetByID(ctx context.Context, id int64) (*domain.MenuItem, error)
	Find(ctx context.Context, key domain.MenuItemKey) (*domain.MenuItem, error)

	// Create вставляет позицию и дописывает её ID в меню точки одной транзакцией
	Create(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)

	Update(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)

	// Delete убирает ID из меню точки, затем удаляет строку, одной транзакцией
	Delete(ctx context.Context, item *domain.MenuItem) error
}
