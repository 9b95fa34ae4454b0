package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/petstore-samples/service-petstore/internal/domain"
)

// Prefixes carried on error bodies, matching the documented API surface.
const (
	resourceNotFoundPrefix = "Resource not found: "
	invalidRequestPrefix   = "Invalid request: "
)

func success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": invalidRequestPrefix + message})
}

// respondError maps the domain error taxonomy onto HTTP statuses: NotFound
// to 404, InvalidRequest to 400, anything else to 500. Messages pass through
// verbatim; they are part of the contract.
func respondError(c *gin.Context, err error) {
	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": resourceNotFoundPrefix + notFound.Error()})
		return
	}
	var invalid *domain.InvalidRequestError
	if errors.As(err, &invalid) {
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidRequestPrefix + invalid.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
