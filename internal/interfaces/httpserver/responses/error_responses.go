package responses

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"convert-api/internal/utils/apierrors"
)

// ErrorResponse is the uniform failure envelope. Clients always get a
// success boolean plus a stable code they can branch on.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Code      string `json:"code"`
	Remaining *int   `json:"remaining,omitempty"`
	ResetTime string `json:"resetTime,omitempty"`
}

// HandleError writes a typed error as its HTTP response. Untyped errors
// collapse to 500 INTERNAL_ERROR so no raw failure ever reaches a client.
func HandleError(c *gin.Context, err error) {
	if apiErr, ok := err.(*apierrors.Error); ok {
		c.AbortWithStatusJSON(apiErr.Status, ErrorResponse{
			Success: false,
			Error:   apiErr.Message,
			Code:    apiErr.Code,
		})
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
		Success: false,
		Error:   "internal server error",
		Code:    apierrors.CodeInternalError,
	})
}

// RateLimited builds the 429 envelope with reset information.
func RateLimited(remaining int, resetTime time.Time) ErrorResponse {
	return ErrorResponse{
		Success:   false,
		Error:     "daily conversion quota exceeded",
		Code:      apierrors.CodeRateLimitExceeded,
		Remaining: &remaining,
		ResetTime: resetTime.UTC().Format(time.RFC3339),
	}
}
