package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/campus-api/internal/pkg/utils"
	"github.com/campus-api/internal/usecase"
	"github.com/campus-api/internal/usecase/dto"
)

type MessMenuHandler struct {
	menuUC *usecase.MessMenuUseCase
	logger *zap.Logger
}

func NewMessMenuHandler(menuUC *usecase.MessMenuUseCase, logger *zap.Logger) *MessMenuHandler {
	return &MessMenuHandler{
		menuUC: menuUC,
		logger: logger,
	}
}

// List godoc
// @Summary Меню столовых, с фильтром по месяцу и году
// @Tags Mess
// @Produce json
// @Param month query int false "Месяц 1..12"
// @Param year query int false "Год"
// @Success 200 {object} dto.MessMenusResponse
// @Router /mess_menu [get]
func (h *MessMenuHandler) List(c *fiber.Ctx) error {
	var query dto.MessMenuListQuery
	if err := bindQuery(c, &query); err != nil {
		return utils.SendError(c, h.logger, err)
	}

	menus, err := h.menuUC.List(c.Context(), query)
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendSuccess(c, dto.MessMenusResponse{Menus: orEmpty(menus)})
}

func (h *MessMenuHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}

	menu, err := h.menuUC.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendSuccess(c, dto.MessMenuResponse{Menu: menu})
}

// Create godoc
// @Summary Новое меню на месяц
// @Tags Admin Mess
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateMessMenuRequest true "Меню"
// @Success 201 {object} dto.MessMenuResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /mess_menu [post]
func (h *MessMenuHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateMessMenuRequest
	if err := bindBody(c, &req); err != nil {
		return utils.SendError(c, h.logger, err)
	}

	menu, err := h.menuUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendCreated(c, dto.MessMenuResponse{Menu: menu})
}

// Update godoc
// @Summary Обновление меню; заменяются только переданные списки
// @Tags Admin Mess
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID меню"
// @Param request body dto.UpdateMessMenuRequest true "Дни меню"
// @Success 200 {object} dto.MessMenuResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /mess_menu/{id} [put]
func (h *MessMenuHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}

	var req dto.UpdateMessMenuRequest
	if err := bindBody(c, &req); err != nil {
		return utils.SendError(c, h.logger, err)
	}

	menu, err := h.menuUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendSuccess(c, dto.MessMenuResponse{Menu: menu})
}

func (h *MessMenuHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}

	if err := h.menuUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendNoContent(c)
}

func (h *MessMenuHandler) ListItems(c *fiber.Ctx) error {
	items, err := h.menuUC.ListItems(c.Context())
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendSuccess(c, dto.MessMenuItemsResponse{Items: orEmpty(items)})
}

func (h *MessMenuHandler) GetItem(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}

	item, err := h.menuUC.GetItem(c.Context(), id)
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendSuccess(c, dto.MessMenuItemResponse{Item: item})
}

func (h *MessMenuHandler) CreateItem(c *fiber.Ctx) error {
	var req dto.CreateMessMenuItemRequest
	if err := bindBody(c, &req); err != nil {
		return utils.SendError(c, h.logger, err)
	}

	item, err := h.menuUC.CreateItem(c.Context(), req)
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendCreated(c, dto.MessMenuItemResponse{Item: item})
}

func (h *MessMenuHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}

	var req dto.UpdateMessMenuItemRequest
	if err := bindBody(c, &req); err != nil {
		return utils.SendError(c, h.logger, err)
	}

	item, err := h.menuUC.UpdateItem(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendSuccess(c, dto.MessMenuItemResponse{Item: item})
}

// DeleteItem - блюдо удаляется из всех меню
func (h *MessMenuHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, h.logger, err)
	}

	if err := h.menuUC.DeleteItem(c.Context(), id); err != nil {
		return utils.SendError(c, h.logger, err)
	}
	return utils.SendNoContent(c)
}
