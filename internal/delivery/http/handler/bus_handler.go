package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/campus-api/internal/pkg/utils"
	"github.com/campus-api/internal/usecase"
	"github.com/campus-api/internal/usecase/dto"
)

// BusHandler - типы автобусов, остановки, маршруты и расписание
type BusHandler struct {
	busUC  *usecase.BusUseCase
	logger *zap.Logger
}

func NewBusHandler(busUC *usecase.BusUseCase, logger *zap.Logger) *BusHandler {
	return &BusHandler{
		busUC:  busUC,
		logger: logger,
	}
}

// ===== Bus types =====

// ListTypes godoc
// @Summary Все типы автобусов
// @Tags Bus
// @Produce json
// @Success 200 {object} dto.BusTypesResponse
// @Router /bus_type [get]
func (h *BusHandler) ListTypes(c *fiber.Ctx) error {
	types, err := h.busUC.ListTypes(c.Context())
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendSuccess(c, dto.BusTypesResponse{BusTypes: orEmpty(types)})
}

func (h *BusHandler) GetType(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}

	busType, err := h.busUC.GetType(c.Context(), id)
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendSuccess(c, dto.BusTypeResponse{Type: busType})
}

func (h *BusHandler) CreateType(c *fiber.Ctx) error {
	var req dto.BusTypeRequest
	if err := bindBody(c, &req); err != nil {
		return utils.SendError(c, h.logger, err)
	}

	busType, err := h.busUC.CreateType(c.Context(), req)
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendCreated(c, dto.BusTypeResponse{Type: busType})
}

func (h *BusHandler) UpdateType(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}

	var req dto.BusTypeRequest
	if err := bindBody(c, &req); err != nil {
		return utils.SendError(c, h.logger, err)
	}

	busType, err := h.busUC.UpdateType(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendSuccess(c, dto.BusTypeResponse{Type: busType})
}

// DeleteType godoc
// @Summary Удаление типа автобуса
// @Description Тип, используемый в расписании, удалить нельзя (409).
// @Tags Admin Bus
// @Security ApiKeyAuth
// @Param id path int true "ID типа"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /bus_type/{id} [delete]
func (h *BusHandler) DeleteType(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}

	if err := h.busUC.DeleteType(c.Context(), id); err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendNoContent(c)
}

// ===== Bus stops =====

func (h *BusHandler) ListStops(c *fiber.Ctx) error {
	stops, err := h.busUC.ListStops(c.Context())
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendSuccess(c, dto.BusStopsResponse{Stops: orEmpty(stops)})
}

func (h *BusHandler) GetStop(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}

	stop, err := h.busUC.GetStop(c.Context(), id)
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendSuccess(c, dto.BusStopResponse{Stop: stop})
}

func (h *BusHandler) CreateStop(c *fiber.Ctx) error {
	var req dto.CreateBusStopRequest
	if err := bindBody(c, &req); err != nil {
		return utils.SendError(c, h.logger, err)
	}

	stop, err := h.busUC.CreateStop(c.Context(), req)
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendCreated(c, dto.BusStopResponse{Stop: stop})
}

func (h *BusHandler) UpdateStop(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}

	var req dto.UpdateBusStopRequest
	if err := bindBody(c, &req); err != nil {
		return utils.SendError(c, h.logger, err)
	}

	stop, err := h.busUC.UpdateStop(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendSuccess(c, dto.BusStopResponse{Stop: stop})
}

// DeleteStop - остановка из маршрута не удаляется (409)
func (h *BusHandler) DeleteStop(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}

	if err := h.busUC.DeleteStop(c.Context(), id); err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendNoContent(c)
}

// ===== Bus routes =====

func (h *BusHandler) ListRoutes(c *fiber.Ctx) error {
	routes, err := h.busUC.ListRoutes(c.Context())
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendSuccess(c, dto.BusRoutesResponse{Routes: orEmpty(routes)})
}

func (h *BusHandler) GetRoute(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}

	route, err := h.busUC.GetRoute(c.Context(), id)
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendSuccess(c, dto.BusRouteResponse{Route: route})
}

// CreateRoute godoc
// @Summary Новый маршрут
// @Tags Admin Bus
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateBusRouteRequest true "Маршрут"
// @Success 201 {object} dto.BusRouteResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /bus_route [post]
func (h *BusHandler) CreateRoute(c *fiber.Ctx) error {
	var req dto.CreateBusRouteRequest
	if err := bindBody(c, &req); err != nil {
		return utils.SendError(c, h.logger, err)
	}

	route, err := h.busUC.CreateRoute(c.Context(), req)
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendCreated(c, dto.BusRouteResponse{Route: route})
}

func (h *BusHandler) UpdateRoute(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}

	var req dto.UpdateBusRouteRequest
	if err := bindBody(c, &req); err != nil {
		return utils.SendError(c, h.logger, err)
	}

	route, err := h.busUC.UpdateRoute(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendSuccess(c, dto.BusRouteResponse{Route: route})
}

func (h *BusHandler) DeleteRoute(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}

	if err := h.busUC.DeleteRoute(c.Context(), id); err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendNoContent(c)
}

// ===== Bus schedules =====

func (h *BusHandler) ListSchedules(c *fiber.Ctx) error {
	schedules, err := h.busUC.ListSchedules(c.Context())
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendSuccess(c, dto.BusSchedulesResponse{Schedules: orEmpty(schedules)})
}

func (h *BusHandler) GetSchedule(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}

	schedule, err := h.busUC.GetSchedule(c.Context(), id)
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendSuccess(c, dto.BusScheduleResponse{Schedule: schedule})
}

// CreateSchedule godoc
// @Summary Новый рейс
// @Description Время в формате HH:MM или HH:MM:SS.
// @Tags Admin Bus
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateBusScheduleRequest true "Рейс"
// @Success 201 {object} dto.BusScheduleResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /bus_schedule [post]
func (h *BusHandler) CreateSchedule(c *fiber.Ctx) error {
	var req dto.CreateBusScheduleRequest
	if err := bindBody(c, &req); err != nil {
		return utils.SendError(c, h.logger, err)
	}

	schedule, err := h.busUC.CreateSchedule(c.Context(), req)
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendCreated(c, dto.BusScheduleResponse{Schedule: schedule})
}

func (h *BusHandler) UpdateSchedule(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}

	var req dto.UpdateBusScheduleRequest
	if err := bindBody(c, &req); err != nil {
		return utils.SendError(c, h.logger, err)
	}

	schedule, err := h.busUC.UpdateSchedule(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendSuccess(c, dto.BusScheduleResponse{Schedule: schedule})
}

func (h *BusHandler) DeleteSchedule(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}

	if err := h.busUC.DeleteSchedule(c.Context(), id); err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendNoContent(c)
}
