package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/petstore-samples/service-petstore/internal/application"
	"github.com/petstore-samples/service-petstore/internal/domain/order"
)

// StoreHandler handles HTTP requests for order and inventory operations.
type StoreHandler struct {
	service *application.StoreService
}

// NewStoreHandler creates a new StoreHandler.
func NewStoreHandler(service *application.StoreService) *StoreHandler {
	return &StoreHandler{service: service}
}

// RegisterRoutes registers all store routes.
func (h *StoreHandler) RegisterRoutes(r *gin.RouterGroup) {
	store := r.Group("/store")
	{
		store.GET("/inventory", h.GetInventoryByStatus)
		store.GET("/order", h.FindAllOrders)
		store.GET("/order/:id", h.FindOrderByID)
		store.POST("/order", h.SaveOrder)
		store.PUT("/order", h.UpdateOrder)
		store.DELETE("/order/:id", h.DeleteOrderByID)
		store.DELETE("/order", h.DeleteAllOrders)
	}
}

// GetInventoryByStatus handles GET /store/inventory.
func (h *StoreHandler) GetInventoryByStatus(c *gin.Context) {
	success(c, h.service.GetInventoryByStatus(c.Request.Context()))
}

// FindAllOrders handles GET /store/order.
func (h *StoreHandler) FindAllOrders(c *gin.Context) {
	success(c, h.service.FindAllOrders(c.Request.Context()))
}

// FindOrderByID handles GET /store/order/:id.
func (h *StoreHandler) FindOrderByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid order ID")
		return
	}
	result, err := h.service.FindOrderByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	success(c, result)
}

// SaveOrder handles POST /store/order.
func (h *StoreHandler) SaveOrder(c *gin.Context) {
	var o order.Order
	if err := c.ShouldBindJSON(&o); err != nil {
		badRequest(c, err.Error())
		return
	}
	result, err := h.service.SaveOrder(c.Request.Context(), o)
	if err != nil {
		respondError(c, err)
		return
	}
	created(c, result)
}

// UpdateOrder handles PUT /store/order. The body carries the id of the order
// to update.
func (h *StoreHandler) UpdateOrder(c *gin.Context) {
	var o order.Order
	if err := c.ShouldBindJSON(&o); err != nil {
		badRequest(c, err.Error())
		return
	}
	result, err := h.service.UpdateOrder(c.Request.Context(), o)
	if err != nil {
		respondError(c, err)
		return
	}
	success(c, result)
}

// DeleteOrderByID handles DELETE /store/order/:id.
func (h *StoreHandler) DeleteOrderByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid order ID")
		return
	}
	if err := h.service.DeleteOrderByID(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	noContent(c)
}

// DeleteAllOrders handles DELETE /store/order.
func (h *StoreHandler) DeleteAllOrders(c *gin.Context) {
	h.service.DeleteAllOrders(c.Request.Context())
	noContent(c)
}
