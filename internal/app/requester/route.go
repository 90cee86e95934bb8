package requester

import (
	"github.com/labstack/echo/v4"
)

func (h *handler) Route(v *echo.Group) {
	v.POST("", h.Create)
	v.GET("", h.Find)
}
