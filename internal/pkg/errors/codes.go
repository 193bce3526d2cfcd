package errors

import "net/http"

// Общие ошибки
var (
	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		KindInvalidRequest,
		"Insufficient data",
		http.StatusBadRequest,
	)

	ErrInvalidBody = New(
		"INVALID_BODY",
		KindInvalidRequest,
		"Invalid request body",
		http.StatusBadRequest,
	)

	ErrInvalidID = New(
		"INVALID_ID",
		KindInvalidRequest,
		"Invalid ID",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		KindInvalidRequest,
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidTimeFormat = New(
		"INVALID_TIME_FORMAT",
		KindInvalidFormat,
		"Invalid Time Format",
		http.StatusBadRequest,
	)

	ErrInvalidDay = New(
		"INVALID_DAY",
		KindInvalidRequest,
		"Invalid day",
		http.StatusBadRequest,
	)

	ErrMissingAPIKey = New(
		"MISSING_API_KEY",
		KindInvalidRequest,
		"Missing headers: x-api-key",
		http.StatusBadRequest,
	)

	ErrInvalidAPIKey = New(
		"INVALID_API_KEY",
		KindForbidden,
		"Could not validate API key",
		http.StatusForbidden,
	)

	ErrTooManyRequests = New(
		"TOO_MANY_REQUESTS",
		KindConflict,
		"Too many requests",
		http.StatusTooManyRequests,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		KindInternal,
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		KindInternal,
		"Internal server error",
		http.StatusInternalServerError,
	)
)

// Food outlets
var (
	ErrFoodOutletNotFound = New(
		"FOOD_OUTLET_NOT_FOUND",
		KindNotFound,
		"Food outlet not found",
		http.StatusNotFound,
	)

	ErrFoodOutletAlreadyExists = New(
		"FOOD_OUTLET_ALREADY_EXISTS",
		KindAlreadyExists,
		"Food outlet already exists",
		http.StatusBadRequest,
	)

	ErrNoFoodOutletsFound = New(
		"NO_FOOD_OUTLETS_FOUND",
		KindNotFound,
		"No food outlets found",
		http.StatusNotFound,
	)

	ErrMenuItemNotFound = New(
		"MENU_ITEM_NOT_FOUND",
		KindNotFound,
		"Menu item not found",
		http.StatusNotFound,
	)

	ErrMenuItemAlreadyExists = New(
		"MENU_ITEM_ALREADY_EXISTS",
		KindAlreadyExists,
		"Menu item already exists",
		http.StatusBadRequest,
	)
)

// Mess
var (
	ErrMessNotFound = New(
		"MESS_NOT_FOUND",
		KindNotFound,
		"Mess not found",
		http.StatusNotFound,
	)

	ErrMessAlreadyExists = New(
		"MESS_ALREADY_EXISTS",
		KindAlreadyExists,
		"Mess already exists",
		http.StatusBadRequest,
	)

	ErrNoMessesFound = New(
		"NO_MESSES_FOUND",
		KindNotFound,
		"No messes found",
		http.StatusNotFound,
	)

	ErrMessMenuNotFound = New(
		"MESS_MENU_NOT_FOUND",
		KindNotFound,
		"Mess menu not found",
		http.StatusNotFound,
	)

	ErrMessMenuAlreadyExists = New(
		"MESS_MENU_ALREADY_EXISTS",
		KindAlreadyExists,
		"Mess menu already exists",
		http.StatusBadRequest,
	)

	ErrMessMenuItemNotFound = New(
		"MESS_MENU_ITEM_NOT_FOUND",
		KindNotFound,
		"Mess menu item not found",
		http.StatusNotFound,
	)

	ErrMessMenuItemAlreadyExists = New(
		"MESS_MENU_ITEM_ALREADY_EXISTS",
		KindAlreadyExists,
		"Mess menu item already exists",
		http.StatusBadRequest,
	)
)

// Bus
var (
	ErrBusTypeNotFound = New(
		"BUS_TYPE_NOT_FOUND",
		KindNotFound,
		"Bus Type Not Found",
		http.StatusNotFound,
	)

	ErrBusTypeAlreadyExists = New(
		"BUS_TYPE_ALREADY_EXISTS",
		KindAlreadyExists,
		"Bus Type Already Exists",
		http.StatusBadRequest,
	)

	ErrBusTypeInUse = New(
		"BUS_TYPE_IN_USE",
		KindConflict,
		"Bus Type In Use",
		http.StatusConflict,
	)

	ErrBusStopNotFound = New(
		"BUS_STOP_NOT_FOUND",
		KindNotFound,
		"Bus Stop Not Found",
		http.StatusNotFound,
	)

	ErrFromBusStopNotFound = New(
		"FROM_BUS_STOP_NOT_FOUND",
		KindNotFound,
		"FROM Bus Stop Not Found",
		http.StatusNotFound,
	)

	ErrToBusStopNotFound = New(
		"TO_BUS_STOP_NOT_FOUND",
		KindNotFound,
		"TO Bus Stop Not Found",
		http.StatusNotFound,
	)

	ErrViaBusStopNotFound = New(
		"VIA_BUS_STOP_NOT_FOUND",
		KindNotFound,
		"VIA Bus Stop Not Found",
		http.StatusNotFound,
	)

	ErrBusStopAlreadyExists = New(
		"BUS_STOP_ALREADY_EXISTS",
		KindAlreadyExists,
		"Bus Stop Already Exists",
		http.StatusBadRequest,
	)

	ErrBusStopInUse = New(
		"BUS_STOP_IN_USE",
		KindConflict,
		"Bus Stop In Use",
		http.StatusConflict,
	)

	ErrBusRouteNotFound = New(
		"BUS_ROUTE_NOT_FOUND",
		KindNotFound,
		"Bus Route Not Found",
		http.StatusNotFound,
	)

	ErrBusRouteAlreadyExists = New(
		"BUS_ROUTE_ALREADY_EXISTS",
		KindAlreadyExists,
		"Bus Route Already Exists",
		http.StatusBadRequest,
	)

	ErrBusRouteInUse = New(
		"BUS_ROUTE_IN_USE",
		KindConflict,
		"Bus Route In Use",
		http.StatusConflict,
	)

	ErrBusScheduleNotFound = New(
		"BUS_SCHEDULE_NOT_FOUND",
		KindNotFound,
		"Bus Schedule Not Found",
		http.StatusNotFound,
	)

	ErrBusScheduleAlreadyExists = New(
		"BUS_SCHEDULE_ALREADY_EXISTS",
		KindAlreadyExists,
		"Bus Schedule Already Exists",
		http.StatusBadRequest,
	)
)
