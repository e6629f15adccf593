package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/identity-api/pkg/response"
)

// HealthHandler answers liveness and readiness probes.
type HealthHandler struct {
	startedAt time.Time
	pool      *pgxpool.Pool
	redis     *redis.Client
}

func NewHealthHandler(pool *pgxpool.Pool, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{startedAt: time.Now(), pool: pool, redis: rdb}
}

// Live reports process liveness and uptime.
func (h *HealthHandler) Live(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"status":    "UP",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    int(time.Since(h.startedAt).Seconds()),
	}, "health", nil)
}

// Ready pings the dependencies with a short timeout.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	deps := gin.H{}
	ready := true

	if h.pool != nil {
		if err := h.pool.Ping(ctx); err != nil {
			deps["postgres"] = err.Error()
			ready = false
		} else {
			deps["postgres"] = "ok"
		}
	}
	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			deps["redis"] = err.Error()
			ready = false
		} else {
			deps["redis"] = "ok"
		}
	}

	if !ready {
		response.Error(c, http.StatusServiceUnavailable, "one or more dependencies unavailable", deps)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": "ready", "dependencies": deps}, "ready", nil)
}
