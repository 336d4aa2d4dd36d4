package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codyseavey/gingerdex/internal/models"
	"github.com/codyseavey/gingerdex/internal/services"
)

// CollectionHandler serves the leaderboard and per-trainer collections.
type CollectionHandler struct {
	dexService *services.DexService
}

func NewCollectionHandler(dexService *services.DexService) *CollectionHandler {
	return &CollectionHandler{
		dexService: dexService,
	}
}

func (h *CollectionHandler) GetLeaderboard(c *gin.Context) {
	lb, err := h.dexService.Leaderboard()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lb)
}

// GetTrainer returns the trainer header and their grouped collection. The
// gallery filter query parameters apply here too.
func (h *CollectionHandler) GetTrainer(c *gin.Context) {
	var filters models.Filters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.dexService.TrainerView(c.Param("username"), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *CollectionHandler) GetAchievements(c *gin.Context) {
	list, err := h.dexService.Achievements(c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
