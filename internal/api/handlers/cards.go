package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codyseavey/gingerdex/internal/models"
	"github.com/codyseavey/gingerdex/internal/services"
)

type CardHandler struct {
	dexService *services.DexService
}

func NewCardHandler(dexService *services.DexService) *CardHandler {
	return &CardHandler{
		dexService: dexService,
	}
}

// GetStats returns the catalog header summary
func (h *CardHandler) GetStats(c *gin.Context) {
	stats, err := h.dexService.Stats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetFilters returns the region, type and rarity dropdown options
func (h *CardHandler) GetFilters(c *gin.Context) {
	opts, err := h.dexService.FilterOptions()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, opts)
}

// ListCards returns the filtered gallery grouped by region
func (h *CardHandler) ListCards(c *gin.Context) {
	var filters models.Filters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.dexService.Gallery(filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetCard returns the detail view for one card by identity key
func (h *CardHandler) GetCard(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "card key is required"})
		return
	}

	detail, err := h.dexService.CardDetail(key)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// CompareCards compares two cards field by field
func (h *CardHandler) CompareCards(c *gin.Context) {
	a, b := c.Query("a"), c.Query("b")
	if a == "" || b == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameters 'a' and 'b' are required"})
		return
	}

	result, err := h.dexService.Compare(a, b)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
