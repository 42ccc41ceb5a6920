package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace/internal/pkg/apperr"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// CustomError writes an error envelope and aborts the handler chain.
func CustomError(c *gin.Context, statusCode int, code string, message string) {
	Error(c, statusCode, code, message)
	c.Abort()
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// FromError maps a domain error to its HTTP status. Errors without a kind are
// recorded on the context for the error logger and reported as 500.
func FromError(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	if kind == "" {
		_ = c.Error(err)
		Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}
	Error(c, StatusFor(kind), string(kind), err.Error())
}

func StatusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindForbidden, apperr.KindAccessDenied, apperr.KindNotOwner:
		return http.StatusForbidden
	case apperr.KindSubscriptionRequired:
		return http.StatusPaymentRequired
	case apperr.KindValidation, apperr.KindSelfBooking, apperr.KindNotCompleted:
		return http.StatusBadRequest
	case apperr.KindQuotaExceeded, apperr.KindAlreadyActive, apperr.KindAlreadyPaid,
		apperr.KindAlreadyReviewed, apperr.KindInvalidTransition:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
