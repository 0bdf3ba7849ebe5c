// Package controller translates HTTP requests into service calls and service
// results into JSON responses.
package controller

import (
	"github.com/askardaffa/contact-api/web/entity"
	"github.com/askardaffa/contact-api/web/middleware"
	"github.com/askardaffa/contact-api/web/service"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService service.UserService
}

// NewUserController registers the user routes. Registration and login are
// public; everything else requires a resolved session.
func NewUserController(public *gin.RouterGroup, authed *gin.RouterGroup) *UserController {
	ctrl := &UserController{}

	public.POST("/users", ctrl.register)
	public.POST("/users/login", ctrl.login)

	authed.GET("/users/current", ctrl.get)
	authed.PATCH("/users/current", ctrl.update)
	authed.DELETE("/users/logout", ctrl.logout)

	return ctrl
}

func (ctrl *UserController) register(c *gin.Context) {
	var req entity.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	response, err := ctrl.userService.Register(&req)
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonData(c, response)
}

func (ctrl *UserController) login(c *gin.Context) {
	var req entity.LoginUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	response, err := ctrl.userService.Login(&req)
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonData(c, response)
}

func (ctrl *UserController) get(c *gin.Context) {
	user := middleware.GetUser(c)
	jsonData(c, ctrl.userService.Get(user))
}

func (ctrl *UserController) update(c *gin.Context) {
	var req entity.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user := middleware.GetUser(c)
	response, err := ctrl.userService.Update(user, &req)
	if err != nil {
		jsonError(c, err)
		return
	}
	jsonData(c, response)
}

func (ctrl *UserController) logout(c *gin.Context) {
	user := middleware.GetUser(c)
	if _, err := ctrl.userService.Logout(user); err != nil {
		jsonError(c, err)
		return
	}
	jsonSuccess(c)
}
