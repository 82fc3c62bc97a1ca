package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthHandler handles GET /health — liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// HealthDependenciesHandler handles GET /health/ready — readiness probe.
// In memory mode there are no external dependencies and the service is
// always ready; with the mongo driver the probe pings Mongo and Redis.
type HealthDependenciesHandler struct {
	mongo *mongo.Database
	redis *redis.Client
}

func NewHealthDependenciesHandler(db *mongo.Database, rdb *redis.Client) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{
		mongo: db,
		redis: rdb,
	}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	deps := map[string]dependencyStatus{}
	healthy := true

	if h.mongo == nil && h.redis == nil {
		deps["store"] = dependencyStatus{Status: "ok (memory)"}
	}
	if h.mongo != nil {
		st := dependencyStatus{Status: "ok"}
		if err := h.mongo.Client().Ping(ctx, nil); err != nil {
			st = dependencyStatus{Status: "down", Error: err.Error()}
			healthy = false
		}
		deps["mongo"] = st
	}
	if h.redis != nil {
		st := dependencyStatus{Status: "ok"}
		if err := h.redis.Ping(ctx).Err(); err != nil {
			st = dependencyStatus{Status: "down", Error: err.Error()}
			healthy = false
		}
		deps["redis"] = st
	}

	code := http.StatusOK
	status := "ready"
	if !healthy {
		code = http.StatusServiceUnavailable
		status = "degraded"
	}

	return c.JSON(code, map[string]any{
		"status":       status,
		"dependencies": deps,
	})
}
