package http

import "github.com/labstack/echo/v4"

// Register wires the operation contract onto the echo instance.
func Register(e *echo.Echo, h *Handler, ah *AffiliateHandler, sh *SaleHandler, th *SettingsHandler) {
	e.GET("/health", h.Health)

	e.GET("/affiliates", ah.List)
	e.POST("/affiliates", ah.Create)
	e.GET("/affiliates/:id", ah.Get)
	e.PUT("/affiliates/:id", ah.Update)
	e.DELETE("/affiliates/:id", ah.Delete)
	e.GET("/affiliates/stats", ah.Stats)
	e.GET("/affiliates/export", ah.Export)
	e.POST("/affiliates/import", ah.Import)
	e.GET("/affiliates/:id/sales", sh.ListForAffiliate)

	e.GET("/sales", sh.List)
	e.POST("/sales", sh.Create)

	e.GET("/settings", th.Get)
	e.PUT("/settings", th.Update)
}
