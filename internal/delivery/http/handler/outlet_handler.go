package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/campus-api/internal/pkg/errors"
	"github.com/campus-api/internal/pkg/utils"
	"github.com/campus-api/internal/usecase"
	"github.com/campus-api/internal/usecase/dto"
)

// FoodOutletHandler - точки питания и их меню
type FoodOutletHandler struct {
	outletUC *usecase.FoodOutletUseCase
	logger   *zap.Logger
}

func NewFoodOutletHandler(outletUC *usecase.FoodOutletUseCase, logger *zap.Logger) *FoodOutletHandler {
	return &FoodOutletHandler{
		outletUC: outletUC,
		logger:   logger,
	}
}

// List godoc
// @Summary Все точки питания кампуса
// @Tags Food Outlets
// @Produce json
// @Success 200 {object} dto.FoodOutletsResponse
// @Router /food-outlet [get]
func (h *FoodOutletHandler) List(c *fiber.Ctx) error {
	outlets, err := h.outletUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendSuccess(c, dto.FoodOutletsResponse{Outlets: orEmpty(outlets)})
}

// Get godoc
// @Summary Точка питания по ID
// @Tags Food Outlets
// @Produce json
// @Param id path int true "ID точки"
// @Success 200 {object} dto.FoodOutletResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /food-outlet/{id} [get]
func (h *FoodOutletHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}

	outlet, err := h.outletUC.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendSuccess(c, dto.FoodOutletResponse{Outlet: outlet})
}

// Search godoc
// @Summary Поиск точек питания
// @Description Все переданные фильтры объединяются через AND. Локация ищется в радиусе 1 км.
// @Tags Food Outlets
// @Produce json
// @Param name query string false "Часть названия"
// @Param latitude query string false "Широта"
// @Param longitude query string false "Долгота"
// @Param landmark query string false "Ориентир"
// @Param current_time query string false "Время HH:MM"
// @Param rating query number false "Минимальный рейтинг"
// @Param food_item query string false "Часть названия блюда"
// @Success 200 {object} dto.FoodOutletsResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /search/food-outlet [get]
func (h *FoodOutletHandler) Search(c *fiber.Ctx) error {
	var query dto.FilterQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.SendError(c, h.logger, errors.ErrInvalidRequest)
	}
	return h.search(c, query.ToRequest())
}

// SearchBody godoc
// @Summary Поиск точек питания (JSON)
// @Tags Food Outlets
// @Accept json
// @Produce json
// @Param request body dto.FilterRequest true "Фильтры"
// @Success 200 {object} dto.FoodOutletsResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /search/food-outlet [post]
func (h *FoodOutletHandler) SearchBody(c *fiber.Ctx) error {
	var req dto.FilterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, h.logger, errors.ErrInvalidBody)
	}
	return h.search(c, req)
}

func (h *FoodOutletHandler) search(c *fiber.Ctx, req dto.FilterRequest) error {
	if err := validate(&req); err != nil {
		return utils.SendError(c, h.logger, err)
	}

	outlets, err := h.outletUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	if len(outlets) == 0 {
		return utils.SendError(c, h.logger, errors.ErrNoFoodOutletsFound)
	}
	return utils.SendSuccess(c, dto.FoodOutletsResponse{Outlets: outlets})
}

// Create godoc
// @Summary Новая точка питания
// @Tags Admin Food Outlets
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateFoodOutletRequest true "Точка питания"
// @Success 201 {object} dto.FoodOutletResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /food-outlet [post]
func (h *FoodOutletHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateFoodOutletRequest
	if err := bindBody(c, &req); err != nil {
		return utils.SendError(c, h.logger, err)
	}

	outlet, err := h.outletUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendCreated(c, dto.FoodOutletResponse{Outlet: outlet})
}

// Update godoc
// @Summary Обновление точки питания
// @Tags Admin Food Outlets
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID точки"
// @Param request body dto.UpdateFoodOutletRequest true "Изменяемые поля"
// @Success 200 {object} dto.FoodOutletResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /food-outlet/{id} [put]
func (h *FoodOutletHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}

	var req dto.UpdateFoodOutletRequest
	if err := bindBody(c, &req); err != nil {
		return utils.SendError(c, h.logger, err)
	}

	outlet, err := h.outletUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendSuccess(c, dto.FoodOutletResponse{Outlet: outlet})
}

// Delete godoc
// @Summary Удаление точки питания вместе с меню
// @Tags Admin Food Outlets
// @Security ApiKeyAuth
// @Param id path int true "ID точки"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /food-outlet/{id} [delete]
func (h *FoodOutletHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}

	if err := h.outletUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendNoContent(c)
}

// ListMenuItems - позиции меню всех точек
func (h *FoodOutletHandler) ListMenuItems(c *fiber.Ctx) error {
	items, err := h.outletUC.ListMenuItems(c.Context())
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendSuccess(c, dto.FoodItemsResponse{FoodItems: orEmpty(items)})
}

func (h *FoodOutletHandler) GetMenuItem(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}

	item, err := h.outletUC.GetMenuItem(c.Context(), id)
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendSuccess(c, dto.FoodItemResponse{FoodItem: item})
}

// AddMenuItem godoc
// @Summary Новая позиция меню точки
// @Tags Admin Food Outlets
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID точки"
// @Param request body dto.CreateMenuItemRequest true "Позиция меню"
// @Success 201 {object} dto.MenuItemResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /food-outlet/{id}/menu/food-item [post]
func (h *FoodOutletHandler) AddMenuItem(c *fiber.Ctx) error {
	outletID, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}

	var req dto.CreateMenuItemRequest
	if err := bindBody(c, &req); err != nil {
		return utils.SendError(c, h.logger, err)
	}

	item, err := h.outletUC.AddMenuItem(c.Context(), outletID, req)
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendCreated(c, dto.MenuItemResponse{Item: item})
}

func (h *FoodOutletHandler) UpdateMenuItem(c *fiber.Ctx) error {
	outletID, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	itemID, err := paramID(c, "item_id")
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}

	var req dto.UpdateMenuItemRequest
	if err := bindBody(c, &req); err != nil {
		return utils.SendError(c, h.logger, err)
	}

	item, err := h.outletUC.UpdateMenuItem(c.Context(), outletID, itemID, req)
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendSuccess(c, dto.MenuItemResponse{Item: item})
}

func (h *FoodOutletHandler) DeleteMenuItem(c *fiber.Ctx) error {
	outletID, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	itemID, err := paramID(c, "item_id")
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}

	if err := h.outletUC.DeleteMenuItem(c.Context(), outletID, itemID); err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendNoContent(c)
}
