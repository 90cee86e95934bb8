package abstraction

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// Context wraps the echo context so services can carry a transaction and the
// request id assigned by the middleware.
type Context struct {
	echo.Context

	RequestID string
	Trx       *TrxContext
}

type TrxContext struct {
	Db *gorm.DB
}
