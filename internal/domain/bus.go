package domain

type BusType struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type BusStop struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Location *Location `json:"location"`
	Landmark *string   `json:"landmark"`
}

// BusRoute - маршрут; остановки раскрываются при чтении
type BusRoute struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	FromStop *BusStop   `json:"from_stop"`
	ToStop   *BusStop   `json:"to_stop"`
	ViaStops []*BusStop `json:"via_stops"`
}

// BusSchedule - рейс; ключ (start_time, route, bus_type)
type BusSchedule struct {
	ID           int64        `json:"id"`
	StartTime    TimeOfDay    `json:"start_time"`
	Route        *BusRoute    `json:"route"`
	BusType      *BusType     `json:"bus_type"`
	EndTime      *TimeOfDay   `json:"end_time"`
	ViaStopTimes []*TimeOfDay `json:"via_stop_times"`
}

type BusTypeKey struct {
	ID   *int64
	Name *string
}

type BusStopKey struct {
	ID   *int64
	Name *string
}

type BusRouteKey struct {
	ID   *int64
	Name *string
}

type BusScheduleKey struct {
	ID        *int64
	StartTime *TimeOfDay
	RouteID   *int64
	BusTypeID *int64
}
