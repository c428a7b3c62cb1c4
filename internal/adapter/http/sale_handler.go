package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	saleDomain "affiliate-hub-backend/internal/domain/sale"
	saleUC "affiliate-hub-backend/internal/usecase/sale"
	"affiliate-hub-backend/pkg/dates"
	"affiliate-hub-backend/pkg/money"
)

type SaleHandler struct {
	uc *saleUC.Usecase
	cv *CustomValidator
}

func NewSaleHandler(uc *saleUC.Usecase, cv *CustomValidator) *SaleHandler {
	return &SaleHandler{uc: uc, cv: cv}
}

type createSaleReq struct {
	AffiliateID  uint64  `json:"affiliateId" validate:"required"`
	ClientName   string  `json:"clientName" validate:"required"`
	BusinessName string  `json:"businessName"`
	ClientEmail  string  `json:"clientEmail" validate:"omitempty,email"`
	SaleAmount   float64 `json:"saleAmount" validate:"required,gt=0"`
	SaleDate     string  `json:"saleDate" validate:"required,ymd"`
	Notes        string  `json:"notes"`
}

// saleRow decorates a sale with the display strings the panel renders:
// localized status, DD/MM/YYYY date and COP-formatted amount.
type saleRow struct {
	saleDomain.Sale
	StatusDisplay     string `json:"statusDisplay"`
	SaleDateDisplay   string `json:"saleDateDisplay"`
	SaleAmountDisplay string `json:"saleAmountDisplay"`
}

func toRows(sales []saleDomain.Sale) []saleRow {
	rows := make([]saleRow, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, saleRow{
			Sale:              s,
			StatusDisplay:     s.Status.Display(),
			SaleDateDisplay:   dates.Display(s.SaleDate),
			SaleAmountDisplay: money.FormatCOP(s.SaleAmount),
		})
	}
	return rows
}

func (h *SaleHandler) Create(c echo.Context) error {
	var req createSaleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := h.cv.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	s, err := h.uc.Create(c.Request().Context(), saleUC.CreateInput(req))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, s)
}

// List returns the full filtered set; the sales view does not paginate.
func (h *SaleHandler) List(c echo.Context) error {
	status := c.QueryParam("status")
	var affiliateID uint64
	if v := c.QueryParam("affiliate_id"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid affiliate_id"})
		}
		affiliateID = n
	}

	sales, err := h.uc.List(c.Request().Context(), status, affiliateID)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, toRows(sales))
}

// ListForAffiliate serves the per-affiliate sales history modal.
func (h *SaleHandler) ListForAffiliate(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeErr(c, err)
	}
	sales, err := h.uc.ListForAffiliate(c.Request().Context(), id)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, toRows(sales))
}
