package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "nutrisheet/internal/delivery/context"
	"nutrisheet/internal/delivery/http/response"
	"nutrisheet/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the signed-in user's goals.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// ProfileRequest is the body of a profile update. Omitted fields are kept.
type ProfileRequest struct {
	DailyKcalTarget *float64 `json:"daily_kcal_target" validate:"omitempty,gt=0"`
	StartDate       *string  `json:"start_date" validate:"omitempty,isodate"`
	InitialWeight   *float64 `json:"initial_weight" validate:"omitempty,gte=0"`
	TargetWeight    *float64 `json:"target_weight" validate:"omitempty,gte=0"`
}

// GetProfile handles GET /api/profile
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile, err := h.profileUC.GetProfile(c.Request().Context(), deliverycontext.GetUserEmail(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile, "")
}

// UpdateProfile handles PUT /api/profile
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var req ProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.profileUC.UpsertProfile(c.Request().Context(), deliverycontext.GetUserEmail(c), &usecase.ProfileInput{
		DailyKcalTarget: req.DailyKcalTarget,
		StartDate:       req.StartDate,
		InitialWeight:   req.InitialWeight,
		TargetWeight:    req.TargetWeight,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile updated successfully")
}
