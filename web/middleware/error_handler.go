package middleware

import (
	"errors"
	"net/http"

	"github.com/askardaffa/contact-api/logger"
	"github.com/askardaffa/contact-api/web/entity"
	"github.com/askardaffa/contact-api/web/validation"

	"github.com/gin-gonic/gin"
)

// ErrorHandler is the single responder for errors raised during request
// handling. Controllers record failures with c.Error; this middleware turns
// the last one into an {"errors": ...} body. Anything unrecognized becomes
// a 500 without leaking its message.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var validationErr *validation.ValidationError
		var apiErr *entity.ApiError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, entity.ErrorResponse{Errors: validationErr.Details})
		case errors.As(err, &apiErr):
			c.JSON(apiErr.StatusCode, entity.ErrorResponse{Errors: apiErr.Message})
		default:
			logger.Error("unhandled request err:", err)
			c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Errors: "Internal Server Error"})
		}
	}
}
