package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"awards-cms-go/internal/region"
	"awards-cms-go/internal/store"
	"awards-cms-go/pkg/model"
)

// RegionHandler handles region document HTTP requests
type RegionHandler struct {
	regionService *region.RegionService
}

// NewRegionHandler creates a new region handler
func NewRegionHandler(regionService *region.RegionService) *RegionHandler {
	return &RegionHandler{
		regionService: regionService,
	}
}

// ListRegions handles GET /api/regions and GET /api/awards
func (h *RegionHandler) ListRegions(c *gin.Context) {
	regions, err := h.regionService.List(c.Request.Context())
	if err != nil {
		log.Printf("Error listing regions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch regions"})
		return
	}

	c.JSON(http.StatusOK, model.RegionListResponse{Regions: regions})
}

// CreateRegion handles POST /api/awards
func (h *RegionHandler) CreateRegion(c *gin.Context) {
	var req model.RegionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Region required"})
		return
	}

	doc, err := h.regionService.Create(c.Request.Context(), req.Region)
	if err != nil {
		if errors.Is(err, region.ErrInvalidName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid region name"})
			return
		}
		if errors.Is(err, store.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Region already exists"})
			return
		}
		log.Printf("Error creating region %q: %v", req.Region, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create region"})
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// GetRegion handles GET /api/awards/:region
func (h *RegionHandler) GetRegion(c *gin.Context) {
	name := c.Param("region")

	doc, err := h.regionService.Get(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Region not found"})
			return
		}
		log.Printf("Error fetching region %q: %v", name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch region"})
		return
	}

	c.JSON(http.StatusOK, doc)
}

// UpdateRegion handles PUT /api/awards/:region. The body is the full
// replacement content; the region is created when it does not exist.
func (h *RegionHandler) UpdateRegion(c *gin.Context) {
	name := c.Param("region")

	var content model.RegionContent
	if err := c.ShouldBindJSON(&content); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document body"})
		return
	}

	doc, err := h.regionService.Update(c.Request.Context(), name, content)
	if err != nil {
		if errors.Is(err, region.ErrInvalidName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid region name"})
			return
		}
		var weightErr *model.WeightRangeError
		if errors.As(err, &weightErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": weightErr.Error()})
			return
		}
		log.Printf("Error updating region %q: %v", name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update region"})
		return
	}

	c.JSON(http.StatusOK, doc)
}

// DeleteRegion handles DELETE /api/awards/:region
func (h *RegionHandler) DeleteRegion(c *gin.Context) {
	name := c.Param("region")

	if err := h.regionService.Delete(c.Request.Context(), name); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Region not found"})
			return
		}
		log.Printf("Error deleting region %q: %v", name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete region"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Region deleted successfully"})
}
