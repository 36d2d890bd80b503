package handler

import (
	"net/http"

	"nutrisheet/internal/delivery/http/response"
	"nutrisheet/internal/usecase"

	"github.com/labstack/echo/v4"
)

// MenuHandler serves the drop-down lists.
type MenuHandler struct {
	menuUC usecase.MenuUsecase
}

// NewMenuHandler is the constructor for MenuHandler
func NewMenuHandler(menuUC usecase.MenuUsecase) *MenuHandler {
	return &MenuHandler{menuUC: menuUC}
}

// GetMenuOptions handles GET /api/menus
func (h *MenuHandler) GetMenuOptions(c echo.Context) error {
	opts, err := h.menuUC.GetMenuOptions(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, opts, "")
}
