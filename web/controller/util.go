package controller

import (
	"net/http"

	"github.com/askardaffa/contact-api/web/entity"

	"github.com/gin-gonic/gin"
)

// jsonData sends a successful {"data": ...} response.
func jsonData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, entity.DataResponse{Data: data})
}

// jsonSuccess sends the bare {"message":"success"} body used by deletes.
func jsonSuccess(c *gin.Context) {
	c.JSON(http.StatusOK, entity.MessageResponse{Message: "success"})
}

// jsonError hands the error to the centralized responder.
func jsonError(c *gin.Context, err error) {
	_ = c.Error(err)
}

// badRequest records a malformed-body failure.
func badRequest(c *gin.Context, err error) {
	_ = c.Error(entity.NewApiError(http.StatusBadRequest, err.Error()))
}
