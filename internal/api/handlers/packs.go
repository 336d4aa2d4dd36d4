package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/codyseavey/gingerdex/internal/models"
	"github.com/codyseavey/gingerdex/internal/services"
)

type PackHandler struct {
	packService *services.PackService
}

func NewPackHandler(packService *services.PackService) *PackHandler {
	return &PackHandler{
		packService: packService,
	}
}

// OpenPack draws a pack. An empty body opens an anonymous pack of the
// default size.
func (h *PackHandler) OpenPack(c *gin.Context) {
	var req models.OpenPackRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.packService.Open(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// RecentPacks lists the newest recorded pack openings
func (h *PackHandler) RecentPacks(c *gin.Context) {
	limit := 0
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	openings, err := h.packService.Recent(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"packs": openings})
}
