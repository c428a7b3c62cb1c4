package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	settingsUC "affiliate-hub-backend/internal/usecase/settings"
	"affiliate-hub-backend/pkg/money"
)

type SettingsHandler struct {
	uc *settingsUC.Usecase
	cv *CustomValidator
}

func NewSettingsHandler(uc *settingsUC.Usecase, cv *CustomValidator) *SettingsHandler {
	return &SettingsHandler{uc: uc, cv: cv}
}

type updateSettingsReq struct {
	FixedCommission float64 `json:"fixedCommission" validate:"gte=0"`
}

func (h *SettingsHandler) Get(c echo.Context) error {
	s, err := h.uc.Get(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	// Display string shown next to the sale form; the stored sale amount is
	// still typed in by the operator.
	return c.JSON(http.StatusOK, map[string]any{
		"id":                     s.ID,
		"fixedCommission":        s.FixedCommission,
		"fixedCommissionDisplay": money.FormatCOP(s.FixedCommission),
	})
}

func (h *SettingsHandler) Update(c echo.Context) error {
	var req updateSettingsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := h.cv.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	if err := h.uc.Update(c.Request().Context(), settingsUC.UpdateInput(req)); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
