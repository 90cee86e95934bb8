package request

import (
	"github.com/labstack/echo/v4"
)

func (h *handler) Route(v *echo.Group) {
	v.POST("", h.Create)
	v.GET("", h.Find)
	v.GET("/workload", h.Workload)
	v.GET("/:id", h.FindById)
	v.PUT("/:id", h.Update)
	v.PUT("/:id/complete", h.Complete)
}
