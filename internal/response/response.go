// Package response writes the JSON envelope every endpoint answers with:
//
//	{"success": true, "data": ...}
//	{"success": false, "message": "..." | [{"field", "validation", "message"}]}
//
// Auth endpoints add "type": "Bearer" and "token". By default every outcome
// is sent with HTTP 200; StatusCodes switches failures to the status carried
// by the error.
package response

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"

	apperrors "dompet/internal/errors"
	"dompet/internal/logger"
)

// TokenType is the scheme clients must use with the returned token.
const TokenType = "Bearer"

const statusCodesKey = "response.statusCodes"

// Body is the success envelope.
type Body struct {
	Success bool `json:"success" example:"true"`
	Data    any  `json:"data"`
}

// TokenBody is the success envelope of the auth endpoints.
type TokenBody struct {
	Success bool   `json:"success" example:"true"`
	Type    string `json:"type" example:"Bearer"`
	Token   string `json:"token"`
	Data    any    `json:"data,omitempty"`
}

// ErrorBody is the failure envelope. Message is a string or a list of
// field errors.
type ErrorBody struct {
	Success bool `json:"success" example:"false"`
	Message any  `json:"message"`
}

// StatusCodes returns a middleware that selects how failures are reported
// for every request it wraps.
func StatusCodes(enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(statusCodesKey, enabled)
		c.Next()
	}
}

// OK writes a success envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Body{Success: true, Data: data})
}

// Token writes a success envelope carrying a bearer token. data may be nil.
func Token(c *gin.Context, token string, data any) {
	c.JSON(http.StatusOK, TokenBody{Success: true, Type: TokenType, Token: token, Data: data})
}

// Error writes a failure envelope for err and aborts the handler chain.
// Anything that is not an AppError is reported as an internal error so
// driver messages never reach clients.
func Error(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		appErr = apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if appErr.Internal != nil {
		logger.Get().Errorw("request failed",
			"code", appErr.Code,
			"internal", appErr.Internal.Error(),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		)
		sentry.CaptureException(appErr.Internal)
	}

	var message any = appErr.Message
	if appErr.Details != nil {
		message = appErr.Details
	}

	status := http.StatusOK
	if c.GetBool(statusCodesKey) {
		status = appErr.StatusCode
	}
	c.AbortWithStatusJSON(status, ErrorBody{Success: false, Message: message})
}
