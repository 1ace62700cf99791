package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "expensetracker/internal/errors"
)

const healthPingTimeout = 2 * time.Second

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports process and database health
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthResponse is returned while the service is healthy
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// Health returns 200 while the database answers a ping and 503 otherwise.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrUnavailable, err))
		return
	}

	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
