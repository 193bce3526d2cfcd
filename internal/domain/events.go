package domain

import "time"

// Stream names
const (
	StreamCampusChanges = "stream:campus:changes"
)

// Entity names in change events
const (
	EntityFoodOutlet   = "food_outlet"
	EntityMenuItem     = "food_outlet_menu_item"
	EntityMess         = "mess"
	EntityMessMenu     = "mess_menu"
	EntityMessMenuItem = "mess_menu_item"
	EntityBusType      = "bus_type"
	EntityBusStop      = "bus_stop"
	EntityBusRoute     = "bus_route"
	EntityBusSchedule  = "bus_schedule"
)

type ChangeAction string

const (
	ActionCreated ChangeAction = "created"
	ActionUpdated ChangeAction = "updated"
	ActionDeleted ChangeAction = "deleted"
)

// ChangeEvent - событие об изменении сущности, публикуется после коммита
type ChangeEvent struct {
	Entity string       `json:"entity"`
	Action ChangeAction `json:"action"`
	ID     int64        `json:"id"`
	At     time.Time    `json:"at"`
}
