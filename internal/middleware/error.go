package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	apperrors "dompet/internal/errors"
	"dompet/internal/response"
)

// Recovery turns a panic in any later handler into an internal error
// envelope. The panic value is logged and reported as the internal cause.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		response.Error(c, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("panic: %v", recovered)))
	})
}
