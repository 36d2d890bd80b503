package handler

import (
	"log/slog"
	"net/http"

	"nutrisheet/internal/delivery/http/response"
	"nutrisheet/internal/domain/entity"
	"nutrisheet/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// JournalHandlerParams holds dependencies for JournalHandler, injected by Fx.
type JournalHandlerParams struct {
	fx.In

	JournalUC usecase.JournalUsecase
	Logger    *slog.Logger
}

// JournalHandler serves the food journal and its totals.
type JournalHandler struct {
	journalUC usecase.JournalUsecase
	logger    *slog.Logger
}

// NewJournalHandler is the constructor for JournalHandler
func NewJournalHandler(params JournalHandlerParams) *JournalHandler {
	return &JournalHandler{
		journalUC: params.JournalUC,
		logger:    params.Logger,
	}
}

// JournalEntryRequest is the body of a new journal entry.
type JournalEntryRequest struct {
	Date      string  `json:"date" validate:"omitempty,isodate"`
	Meal      string  `json:"meal"`
	Kind      string  `json:"kind" validate:"required"`
	Reference string  `json:"reference"`
	Quantity  float64 `json:"quantity" validate:"gte=0"`
	Unit      string  `json:"unit"`
	Kcal      float64 `json:"kcal" validate:"gte=0"`
	Note      string  `json:"note"`
}

// ListJournal handles GET /api/journal?start=&end=
func (h *JournalHandler) ListJournal(c echo.Context) error {
	entries, err := h.journalUC.ListJournal(c.Request().Context(), optionalQuery(c, "start"), optionalQuery(c, "end"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries, "")
}

// CreateJournalEntry handles POST /api/journal
func (h *JournalHandler) CreateJournalEntry(c echo.Context) error {
	var req JournalEntryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	entry, err := h.journalUC.AddJournalEntry(c.Request().Context(), &usecase.JournalEntryInput{
		Date:      req.Date,
		Meal:      req.Meal,
		Kind:      entity.EntryKind(req.Kind),
		Reference: req.Reference,
		Quantity:  req.Quantity,
		Unit:      req.Unit,
		Kcal:      req.Kcal,
		Note:      req.Note,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, entry, "Journal entry added")
}

// DeleteJournalEntry handles DELETE /api/journal/:id
func (h *JournalHandler) DeleteJournalEntry(c echo.Context) error {
	id, err := rowID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.journalUC.DeleteJournalEntry(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Journal entry deleted")
}

// DayTotals handles GET /api/journal/totals/:date
func (h *JournalHandler) DayTotals(c echo.Context) error {
	totals, err := h.journalUC.DayTotals(c.Request().Context(), c.Param("date"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, totals, "")
}

// WeekTotals handles GET /api/journal/week/:start
func (h *JournalHandler) WeekTotals(c echo.Context) error {
	week, err := h.journalUC.WeekTotals(c.Request().Context(), c.Param("start"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, week, "")
}

func optionalQuery(c echo.Context, name string) *string {
	v := c.QueryParam(name)
	if v == "" {
		return nil
	}

	return &v
}
