package controller

import (
	"net/http"

	"github.com/askardaffa/contact-api/web/entity"
	"github.com/askardaffa/contact-api/web/middleware"
	"github.com/askardaffa/contact-api/web/service"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	contactService service.ContactService
}

func NewContactController(authed *gin.RouterGroup) *ContactController {
	ctrl := &ContactController{}

	authed.POST("/contacts", ctrl.create)
	authed.GET("/contacts", ctrl.search)
	authed.GET("/contacts/:contactId", ctrl.get)
	authed.PUT("/contacts/:contactId", ctrl.update)
	authed.DELETE("/contacts/:contactId", ctrl.delete)

	return ctrl
}

func (ctrl *ContactController) create(c *gin.Context) {
	var req entity.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user := middleware.GetUser(c)
	response, err := ctrl.contactService.Create(user, &req)
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonData(c, response)
}

func (ctrl *ContactController) get(c *gin.Context) {
	user := middleware.GetUser(c)
	response, err := ctrl.contactService.Get(user, c.Param("contactId"))
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonData(c, response)
}

func (ctrl *ContactController) update(c *gin.Context) {
	var req entity.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	// The path owns the id; whatever the body says is ignored.
	req.Id = c.Param("contactId")

	user := middleware.GetUser(c)
	response, err := ctrl.contactService.Update(user, &req)
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonData(c, response)
}

func (ctrl *ContactController) delete(c *gin.Context) {
	user := middleware.GetUser(c)
	if err := ctrl.contactService.Delete(user, c.Param("contactId")); err != nil {
		jsonError(c, err)
		return
	}
	jsonSuccess(c)
}

func (ctrl *ContactController) search(c *gin.Context) {
	var req entity.SearchContactRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	user := middleware.GetUser(c)
	page, err := ctrl.contactService.Search(user, &req)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
