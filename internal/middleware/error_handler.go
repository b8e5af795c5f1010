package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/seportal/uniportal/internal/dto"
)

// errorCode gives callers a stable machine-readable code next to the
// human-readable message.
func errorCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "invalid_request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// ErrorHandler renders every error as {"code": ..., "message": ...} JSON.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	_ = c.JSON(code, dto.ErrorResponse{
		Code:    errorCode(code),
		Message: msg,
	})
}
