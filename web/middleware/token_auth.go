// Package middleware provides gin middleware for the contact API.
package middleware

import (
	"net/http"

	"github.com/askardaffa/contact-api/database"
	"github.com/askardaffa/contact-api/database/model"
	"github.com/askardaffa/contact-api/logger"
	"github.com/askardaffa/contact-api/web/entity"
	"github.com/askardaffa/contact-api/web/service"

	"github.com/gin-gonic/gin"
)

const userKey = "LOGIN_USER"

// TokenAuth resolves the X-API-TOKEN header into a user record and attaches
// it to the request context. Requests without a matching token never reach
// the protected controllers.
func TokenAuth() gin.HandlerFunc {
	userService := service.UserService{}

	return func(c *gin.Context) {
		token := c.GetHeader("X-API-TOKEN")
		if token == "" {
			c.JSON(http.StatusUnauthorized, entity.ErrorResponse{Errors: "Unauthorized"})
			c.Abort()
			return
		}

		user, err := userService.FindByToken(token)
		if err != nil {
			if !database.IsNotFound(err) {
				logger.Warning("token lookup err:", err)
			}
			c.JSON(http.StatusUnauthorized, entity.ErrorResponse{Errors: "Unauthorized"})
			c.Abort()
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// GetUser returns the user attached by TokenAuth.
func GetUser(c *gin.Context) *model.User {
	if obj, ok := c.Get(userKey); ok {
		if user, ok := obj.(*model.User); ok {
			return user
		}
	}
	return nil
}
