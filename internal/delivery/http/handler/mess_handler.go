package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/campus-api/internal/pkg/errors"
	"github.com/campus-api/internal/pkg/utils"
	"github.com/campus-api/internal/usecase"
	"github.com/campus-api/internal/usecase/dto"
)

// MessHandler - столовые и их текущее меню
type MessHandler struct {
	messUC *usecase.MessUseCase
	logger *zap.Logger
}

func NewMessHandler(messUC *usecase.MessUseCase, logger *zap.Logger) *MessHandler {
	return &MessHandler{
		messUC: messUC,
		logger: logger,
	}
}

// List godoc
// @Summary Все столовые кампуса
// @Tags Mess
// @Produce json
// @Success 200 {object} dto.MessesResponse
// @Router /mess [get]
func (h *MessHandler) List(c *fiber.Ctx) error {
	messes, err := h.messUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendSuccess(c, dto.MessesResponse{Messes: orEmpty(messes)})
}

// Get godoc
// @Summary Столовая по ID
// @Tags Mess
// @Produce json
// @Param id path int true "ID столовой"
// @Success 200 {object} dto.MessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /mess/{id} [get]
func (h *MessHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}

	mess, err := h.messUC.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendSuccess(c, dto.MessResponse{Mess: mess})
}

// CurrentMenu godoc
// @Summary Текущее меню столовой
// @Tags Mess
// @Produce json
// @Param id path int true "ID столовой"
// @Success 200 {object} dto.MessMenuResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /mess/{id}/menu [get]
func (h *MessHandler) CurrentMenu(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}

	menu, err := h.messUC.CurrentMenu(c.Context(), id)
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendSuccess(c, dto.MessMenuResponse{Menu: menu})
}

// DayMenu godoc
// @Summary Меню столовой на день недели
// @Tags Mess
// @Produce json
// @Param id path int true "ID столовой"
// @Param day path string true "День недели" Enums(monday, tuesday, wednesday, thursday, friday, saturday, sunday)
// @Success 200 {object} dto.DayMenuResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /mess/{id}/menu/{day} [get]
func (h *MessHandler) DayMenu(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}

	day, err := h.messUC.DayMenu(c.Context(), id, c.Params("day"))
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendSuccess(c, dto.DayMenuResponse{Menu: day})
}

// Search - те же фильтры, что у точек питания
func (h *MessHandler) Search(c *fiber.Ctx) error {
	var query dto.FilterQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.SendError(c, h.logger, errors.ErrInvalidRequest)
	}
	return h.search(c, query.ToRequest())
}

func (h *MessHandler) SearchBody(c *fiber.Ctx) error {
	var req dto.FilterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, h.logger, errors.ErrInvalidBody)
	}
	return h.search(c, req)
}

func (h *MessHandler) search(c *fiber.Ctx, req dto.FilterRequest) error {
	if err := validate(&req); err != nil {
		return utils.SendError(c, h.logger, err)
	}

	messes, err := h.messUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	if len(messes) == 0 {
		return utils.SendError(c, h.logger, errors.ErrNoMessesFound)
	}
	return utils.SendSuccess(c, dto.MessesResponse{Messes: messes})
}

// Create godoc
// @Summary Новая столовая
// @Tags Admin Mess
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateMessRequest true "Столовая"
// @Success 201 {object} dto.MessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /mess [post]
func (h *MessHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateMessRequest
	if err := bindBody(c, &req); err != nil {
		return utils.SendError(c, h.logger, err)
	}

	mess, err := h.messUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendCreated(c, dto.MessResponse{Mess: mess})
}

func (h *MessHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}

	var req dto.UpdateMessRequest
	if err := bindBody(c, &req); err != nil {
		return utils.SendError(c, h.logger, err)
	}

	mess, err := h.messUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendSuccess(c, dto.MessResponse{Mess: mess})
}

// SetMenu godoc
// @Summary Назначить столовой меню
// @Tags Admin Mess
// @Produce json
// @Security ApiKeyAuth
// @Param mess_id path int true "ID столовой"
// @Param menu_id path int true "ID меню"
// @Success 200 {object} dto.MessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /mess/{mess_id}/menu/{menu_id} [put]
func (h *MessHandler) SetMenu(c *fiber.Ctx) error {
	messID, err := paramID(c, "mess_id")
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	menuID, err := paramID(c, "menu_id")
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}

	mess, err := h.messUC.SetMenu(c.Context(), messID, menuID)
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendSuccess(c, dto.MessResponse{Mess: mess})
}

func (h *MessHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}

	if err := h.messUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendNoContent(c)
}
