package middleware

import (
	"time"

	"taskdesk/internal/abstraction"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func Init(e *echo.Echo) {
	e.Use(
		Context,
		RequestID,
		Logger,
		echoMiddleware.Recover(),
		echoMiddleware.CORS(),
	)
	e.Validator = NewValidator()
}

// Context upgrades every echo context to the application context before any
// handler runs, so handlers can type-assert without checking.
func Context(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cc := &abstraction.Context{Context: c}
		return next(cc)
	}
}

func RequestID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cc := c.(*abstraction.Context)
		cc.RequestID = uuid.NewString()
		cc.Response().Header().Set(echo.HeaderXRequestID, cc.RequestID)
		return next(cc)
	}
}

func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cc := c.(*abstraction.Context)
		start := time.Now()

		err := next(cc)

		entry := logrus.WithFields(logrus.Fields{
			"request_id": cc.RequestID,
			"method":     cc.Request().Method,
			"uri":        cc.Request().RequestURI,
			"status":     cc.Response().Status,
			"latency_ms": time.Since(start).Milliseconds(),
		})
		if err != nil {
			entry.Warn(err.Error())
		} else {
			entry.Info("request handled")
		}
		return err
	}
}
