package analytics

import "github.com/labstack/echo/v4"

func (h *handler) Route(g *echo.Group) {
	g.GET("/monthly", h.Monthly)
	g.GET("/monthly/:month", h.MonthDetail)
	g.GET("/requester", h.Requester)
	g.GET("/request-type", h.RequestType)
	g.GET("/export", h.Export)
}
