package controller

import (
	"github.com/askardaffa/contact-api/web/entity"
	"github.com/askardaffa/contact-api/web/middleware"
	"github.com/askardaffa/contact-api/web/service"

	"github.com/gin-gonic/gin"
)

type AddressController struct {
	addressService service.AddressService
}

func NewAddressController(authed *gin.RouterGroup) *AddressController {
	ctrl := &AddressController{}

	authed.POST("/contacts/:contactId/addresses", ctrl.create)
	authed.GET("/contacts/:contactId/addresses", ctrl.list)
	authed.GET("/contacts/:contactId/addresses/:addressId", ctrl.get)
	authed.PUT("/contacts/:contactId/addresses/:addressId", ctrl.update)
	authed.DELETE("/contacts/:contactId/addresses/:addressId", ctrl.delete)

	return ctrl
}

func (ctrl *AddressController) create(c *gin.Context) {
	var req entity.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	req.ContactId = c.Param("contactId")

	user := middleware.GetUser(c)
	response, err := ctrl.addressService.Create(user, &req)
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonData(c, response)
}

func (ctrl *AddressController) get(c *gin.Context) {
	user := middleware.GetUser(c)
	response, err := ctrl.addressService.Get(user, c.Param("contactId"), c.Param("addressId"))
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonData(c, response)
}

func (ctrl *AddressController) update(c *gin.Context) {
	var req entity.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	req.Id = c.Param("addressId")
	req.ContactId = c.Param("contactId")

	user := middleware.GetUser(c)
	response, err := ctrl.addressService.Update(user, &req)
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonData(c, response)
}

func (ctrl *AddressController) delete(c *gin.Context) {
	user := middleware.GetUser(c)
	err := ctrl.addressService.Delete(user, c.Param("contactId"), c.Param("addressId"))
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonSuccess(c)
}

func (ctrl *AddressController) list(c *gin.Context) {
	user := middleware.GetUser(c)
	responses, err := ctrl.addressService.List(user, c.Param("contactId"))
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonData(c, responses)
}
