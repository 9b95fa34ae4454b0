package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/petstore-samples/service-petstore/internal/application"
	"github.com/petstore-samples/service-petstore/internal/domain/user"
)

// UserHandler handles HTTP requests for user and session operations.
type UserHandler struct {
	service *application.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *application.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// RegisterRoutes registers all user routes.
func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/user")
	{
		users.GET("", h.FindAll)
		users.GET("/login", h.Login)
		users.GET("/logout", h.Logout)
		users.GET("/username/:username", h.FindByUsername)
		users.GET("/:id", h.FindByID)
		users.POST("", h.Save)
		users.POST("/createWithArray", h.SaveAll)
		users.POST("/createWithList", h.SaveAll)
		users.PUT("", h.Update)
		users.PUT("/username/:username", h.UpdateByUsername)
		users.DELETE("/username/:username", h.DeleteByUsername)
		users.DELETE("/:id", h.DeleteByID)
	}
}

// FindAll handles GET /user.
func (h *UserHandler) FindAll(c *gin.Context) {
	success(c, h.service.FindAll(c.Request.Context()))
}

// FindByID handles GET /user/:id.
func (h *UserHandler) FindByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid user ID")
		return
	}
	result, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	success(c, result)
}

// Save handles POST /user.
func (h *UserHandler) Save(c *gin.Context) {
	var u user.User
	if err := c.ShouldBindJSON(&u); err != nil {
		badRequest(c, err.Error())
		return
	}
	created(c, h.service.Save(c.Request.Context(), u))
}

// SaveAll handles POST /user/createWithArray and POST /user/createWithList.
func (h *UserHandler) SaveAll(c *gin.Context) {
	var users []user.User
	if err := c.ShouldBindJSON(&users); err != nil {
		badRequest(c, err.Error())
		return
	}
	created(c, h.service.SaveAll(c.Request.Context(), users))
}

// Update handles PUT /user. The body carries the id of the user to update.
func (h *UserHandler) Update(c *gin.Context) {
	var u user.User
	if err := c.ShouldBindJSON(&u); err != nil {
		badRequest(c, err.Error())
		return
	}
	result, err := h.service.Update(c.Request.Context(), u)
	if err != nil {
		respondError(c, err)
		return
	}
	success(c, result)
}

// DeleteByID handles DELETE /user/:id.
func (h *UserHandler) DeleteByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid user ID")
		return
	}
	if err := h.service.DeleteByID(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	noContent(c)
}

// FindByUsername handles GET /user/username/:username.
func (h *UserHandler) FindByUsername(c *gin.Context) {
	result, err := h.service.FindByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	success(c, result)
}

// UpdateByUsername handles PUT /user/username/:username.
func (h *UserHandler) UpdateByUsername(c *gin.Context) {
	var u user.User
	if err := c.ShouldBindJSON(&u); err != nil {
		badRequest(c, err.Error())
		return
	}
	result, err := h.service.UpdateByUsername(c.Request.Context(), u, c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	success(c, result)
}

// DeleteByUsername handles DELETE /user/username/:username.
func (h *UserHandler) DeleteByUsername(c *gin.Context) {
	if err := h.service.DeleteByUsername(c.Request.Context(), c.Param("username")); err != nil {
		respondError(c, err)
		return
	}
	noContent(c)
}

// Login handles GET /user/login with username and password query params.
func (h *UserHandler) Login(c *gin.Context) {
	username := c.Query("username")
	password := c.Query("password")
	if username == "" || password == "" {
		badRequest(c, "username and password are required")
		return
	}
	session, err := h.service.Login(c.Request.Context(), username, password)
	if err != nil {
		respondError(c, err)
		return
	}
	success(c, session)
}

// Logout handles GET /user/logout with a username query param.
func (h *UserHandler) Logout(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		badRequest(c, "username is required")
		return
	}
	session, err := h.service.Logout(c.Request.Context(), username)
	if err != nil {
		respondError(c, err)
		return
	}
	success(c, session)
}
