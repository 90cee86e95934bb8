package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type MetaError struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`

	Err error `json:"-"`
}

func (m *MetaError) Error() string {
	return m.Message
}

func ErrorBuilder(code int, err error, message string) *MetaError {
	if err != nil {
		logrus.Error(errors.Wrap(err, message))
	}
	return &MetaError{
		Success: false,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ErrorResponse normalizes any error coming out of a service into a MetaError
// so the handler always sends the same envelope.
func ErrorResponse(err error) *MetaError {
	if metaErr, ok := err.(*MetaError); ok {
		return metaErr
	}
	return ErrorBuilder(http.StatusInternalServerError, err, "server_error")
}

func (m *MetaError) SendError(c echo.Context) error {
	return c.JSON(m.Code, m)
}
