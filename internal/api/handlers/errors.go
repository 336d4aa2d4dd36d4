package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codyseavey/gingerdex/internal/dex"
	"github.com/codyseavey/gingerdex/internal/services"
)

// respondError maps service and engine errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrSnapshotNotLoaded):
		status = http.StatusServiceUnavailable
	case errors.Is(err, dex.ErrCardNotFound), errors.Is(err, dex.ErrTrainerNotFound):
		status = http.StatusNotFound
	case errors.Is(err, dex.ErrInvalidCount):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrRateLimited):
		status = http.StatusTooManyRequests
	case errors.Is(err, dex.ErrEmptyPullPool):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
