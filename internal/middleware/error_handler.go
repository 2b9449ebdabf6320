package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"edusport/internal/apperrors"
)

// errorBody is the JSON shape of every error response. Clients branch on
// Kind; Message is for humans.
type errorBody struct {
	Kind    apperrors.Kind `json:"kind"`
	Message string         `json:"message"`
}

var kindStatus = map[apperrors.Kind]int{
	apperrors.KindNotFound:     http.StatusNotFound,
	apperrors.KindConflict:     http.StatusConflict,
	apperrors.KindValidation:   http.StatusBadRequest,
	apperrors.KindBusinessRule: http.StatusBadRequest,
	apperrors.KindUnauthorized: http.StatusUnauthorized,
	apperrors.KindForbidden:    http.StatusForbidden,
	apperrors.KindInternal:     http.StatusInternalServerError,
}

// ErrorHandler builds the central Echo error handler: apperrors carry their
// own kind, echo.HTTPErrors keep their status, anything else is a 500.
func ErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		body := errorBody{Kind: apperrors.KindInternal, Message: "Internal server error"}

		var appErr *apperrors.Error
		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &appErr):
			code = kindStatus[appErr.Kind]
			body = errorBody{Kind: appErr.Kind, Message: appErr.Message}
		case errors.As(err, &httpErr):
			code = httpErr.Code
			body.Kind = kindFromStatus(code)
			if msg, ok := httpErr.Message.(string); ok && msg != "" {
				body.Message = msg
			} else {
				body.Message = http.StatusText(code)
			}
		}

		if code >= http.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Error(err),
			)
		}

		if writeErr := c.JSON(code, body); writeErr != nil {
			log.Error("failed to write error response", zap.Error(writeErr))
		}
	}
}

func kindFromStatus(code int) apperrors.Kind {
	switch code {
	case http.StatusNotFound:
		return apperrors.KindNotFound
	case http.StatusUnauthorized:
		return apperrors.KindUnauthorized
	case http.StatusForbidden:
		return apperrors.KindForbidden
	case http.StatusBadRequest:
		return apperrors.KindValidation
	case http.StatusConflict:
		return apperrors.KindConflict
	default:
		return apperrors.KindInternal
	}
}
