package http

import (
	"fmt"
	"net/http"

	"taskdesk/internal/app/analytics"
	"taskdesk/internal/app/request"
	"taskdesk/internal/app/requester"
	"taskdesk/internal/app/tasktype"
	"taskdesk/internal/config"
	"taskdesk/internal/factory"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func Init(e *echo.Echo, f *factory.Factory) {

	e.GET("/", func(c echo.Context) error {
		message := fmt.Sprintf("Hello there, welcome to app %s version %s.", config.Get().App.App, config.Get().App.Version)
		return c.String(http.StatusOK, message)
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	request.NewHandler(f).Route(e.Group("/request"))
	tasktype.NewHandler(f).Route(e.Group("/task-type"))
	requester.NewHandler(f).Route(e.Group("/requester"))
	analytics.NewHandler(f).Route(e.Group("/analytics"))
}
