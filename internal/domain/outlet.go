package domain

// MenuItem - позиция меню точки питания, принадлежит ровно одной точке
type MenuItem struct {
	ID          int64    `json:"id" db:"id"`
	Name        string   `json:"name" db:"name"`
	OutletID    int64    `json:"outlet_id" db:"food_outlet_id"`
	Price       int      `json:"price" db:"price"`
	Description *string  `json:"description" db:"description"`
	Rating      *float64 `json:"rating" db:"rating"`
	Size        *string  `json:"size" db:"size"`
	Cal         *int     `json:"cal" db:"cal"`
	Image       *string  `json:"image" db:"image"`
}

// FoodOutlet - точка питания. Menu хранится списком ID и раскрывается при чтении
type FoodOutlet struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Location  *Location   `json:"location"`
	Landmark  *string     `json:"landmark"`
	OpenTime  *TimeOfDay  `json:"open_time"`
	CloseTime *TimeOfDay  `json:"close_time"`
	Rating    *float64    `json:"rating"`
	Menu      []*MenuItem `json:"menu"`
	Image     *string     `json:"image"`
}

// MenuIDs - порядок ID в хранимом списке меню
func (o *FoodOutlet) MenuIDs() []int64 {
	if len(o.Menu) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(o.Menu))
	for _, item := range o.Menu {
		ids = append(ids, item.ID)
	}
	return ids
}

// IsOpenAt - открыта ли точка в момент t; без обеих границ считается закрытой
func (o *FoodOutlet) IsOpenAt(t TimeOfDay) bool {
	if o.OpenTime == nil || o.CloseTime == nil {
		return false
	}
	return t.Within(*o.OpenTime, *o.CloseTime)
}

// FoodOutletKey - идентификация точки по ID или имени
type FoodOutletKey struct {
	ID   *int64
	Name *string
}

// MenuItemKey - позиция по ID или по паре (имя, точка)
type MenuItemKey struct {
	ID       *int64
	Name     *string
	OutletID *int64
}
