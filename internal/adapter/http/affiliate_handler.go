package http

import (
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	affiliateDomain "affiliate-hub-backend/internal/domain/affiliate"
	affiliateUC "affiliate-hub-backend/internal/usecase/affiliate"
	"affiliate-hub-backend/pkg/pagination"
)

type AffiliateHandler struct {
	uc *affiliateUC.Usecase
	cv *CustomValidator
}

func NewAffiliateHandler(uc *affiliateUC.Usecase, cv *CustomValidator) *AffiliateHandler {
	return &AffiliateHandler{uc: uc, cv: cv}
}

type createAffiliateReq struct {
	Code        string `json:"code" validate:"omitempty,refcode"`
	Name        string `json:"name" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	ReferredBy  string `json:"referredBy"`
	Notes       string `json:"notes"`
	BankAccount string `json:"bankAccount"`
}

type updateAffiliateReq struct {
	Name        string `json:"name" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Status      string `json:"status" validate:"required,oneof=pending accepted"`
	Notes       string `json:"notes"`
	BankAccount string `json:"bankAccount"`
}

type paginationMeta struct {
	Page        int               `json:"page"`
	PageSize    int               `json:"pageSize"`
	CaptionFrom int               `json:"captionFrom"`
	CaptionTo   int               `json:"captionTo"`
	Window      pagination.Window `json:"window"`
}

type listAffiliatesResp struct {
	Rows       []affiliateDomain.Affiliate `json:"rows"`
	Total      int64                       `json:"total"`
	Pagination paginationMeta              `json:"pagination"`
}

// List serves the searchable, paginated affiliate view, with the page-button
// window and caption precomputed for the presentation layer.
func (h *AffiliateHandler) List(c echo.Context) error {
	search := c.QueryParam("search")
	page := queryInt(c, "page", 1)
	pageSize := queryInt(c, "page_size", 5)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 5
	}

	rows, total, err := h.uc.List(c.Request().Context(), search, page, pageSize)
	if err != nil {
		return writeErr(c, err)
	}
	// Navigating past the last page is a no-op: serve the last page instead
	// of an empty slice with inverted caption math.
	tp := pagination.TotalPages(int(total), pageSize)
	if clamped := pagination.ClampPage(page, tp); clamped != page {
		page = clamped
		rows, total, err = h.uc.List(c.Request().Context(), search, page, pageSize)
		if err != nil {
			return writeErr(c, err)
		}
	}
	if rows == nil {
		rows = []affiliateDomain.Affiliate{}
	}

	from, to := pagination.Caption(int(total), pageSize, page)
	return c.JSON(http.StatusOK, listAffiliatesResp{
		Rows:  rows,
		Total: total,
		Pagination: paginationMeta{
			Page:        page,
			PageSize:    pageSize,
			CaptionFrom: from,
			CaptionTo:   to,
			Window:      pagination.Compute(int(total), pageSize, page),
		},
	})
}

func (h *AffiliateHandler) Create(c echo.Context) error {
	var req createAffiliateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := h.cv.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	a, err := h.uc.Create(c.Request().Context(), affiliateUC.CreateInput(req))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *AffiliateHandler) Update(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeErr(c, err)
	}
	var req updateAffiliateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := h.cv.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	if err := h.uc.Update(c.Request().Context(), id, affiliateUC.UpdateInput(req)); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AffiliateHandler) Get(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeErr(c, err)
	}
	a, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *AffiliateHandler) Delete(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeErr(c, err)
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AffiliateHandler) Stats(c echo.Context) error {
	stats, err := h.uc.GetStats(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

// Export streams the whole affiliate table as a downloadable JSON array.
func (h *AffiliateHandler) Export(c echo.Context) error {
	rows, err := h.uc.Export(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	name := "afiliados_" + time.Now().Format("2006-01-02") + ".json"
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.JSON(http.StatusOK, rows)
}

// Import replaces the affiliate table with the posted JSON array. This is a
// destructive overwrite of every existing affiliate row.
func (h *AffiliateHandler) Import(c echo.Context) error {
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	n, err := h.uc.Import(c.Request().Context(), raw)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int{"imported": n})
}
