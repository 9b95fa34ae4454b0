package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/petstore-samples/service-petstore/internal/application"
	"github.com/petstore-samples/service-petstore/internal/domain/pet"
)

// PetHandler handles HTTP requests for pet operations.
type PetHandler struct {
	service *application.PetService
}

// NewPetHandler creates a new PetHandler.
func NewPetHandler(service *application.PetService) *PetHandler {
	return &PetHandler{service: service}
}

// RegisterRoutes registers all pet routes.
func (h *PetHandler) RegisterRoutes(r *gin.RouterGroup) {
	pets := r.Group("/pet")
	{
		pets.GET("", h.FindAll)
		pets.GET("/findByStatus", h.FindByStatuses)
		pets.GET("/findByTags", h.FindByTags)
		pets.GET("/:id", h.FindByID)
		pets.POST("", h.Save)
		pets.PUT("", h.Update)
		pets.DELETE("/:id", h.DeleteByID)
	}
}

// FindAll handles GET /pet.
func (h *PetHandler) FindAll(c *gin.Context) {
	success(c, h.service.FindAll(c.Request.Context()))
}

// FindByID handles GET /pet/:id.
func (h *PetHandler) FindByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid pet ID")
		return
	}
	result, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	success(c, result)
}

// Save handles POST /pet.
func (h *PetHandler) Save(c *gin.Context) {
	var p pet.Pet
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err.Error())
		return
	}
	created(c, h.service.Save(c.Request.Context(), p))
}

// Update handles PUT /pet. The body carries the id of the pet to update.
func (h *PetHandler) Update(c *gin.Context) {
	var p pet.Pet
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err.Error())
		return
	}
	result, err := h.service.Update(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	success(c, result)
}

// DeleteByID handles DELETE /pet/:id.
func (h *PetHandler) DeleteByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid pet ID")
		return
	}
	if err := h.service.DeleteByID(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	noContent(c)
}

// FindByStatuses handles GET /pet/findByStatus. Statuses arrive as repeated
// or comma-separated "status" query values.
func (h *PetHandler) FindByStatuses(c *gin.Context) {
	var statuses []pet.Status
	for _, raw := range c.QueryArray("status") {
		for _, value := range strings.Split(raw, ",") {
			if value == "" {
				continue
			}
			status := pet.Status(value)
			if !status.IsValid() {
				badRequest(c, "invalid pet status: "+value)
				return
			}
			statuses = append(statuses, status)
		}
	}
	success(c, h.service.FindByStatuses(c.Request.Context(), statuses))
}

// FindByTags handles GET /pet/findByTags. Tag names arrive as repeated or
// comma-separated "tags" query values.
func (h *PetHandler) FindByTags(c *gin.Context) {
	var tagNames []string
	for _, raw := range c.QueryArray("tags") {
		for _, value := range strings.Split(raw, ",") {
			if value != "" {
				tagNames = append(tagNames, value)
			}
		}
	}
	result, err := h.service.FindByTags(c.Request.Context(), tagNames)
	if err != nil {
		respondError(c, err)
		return
	}
	success(c, result)
}
