package v1

import (
	"context"
	"net/http"
)

type HealthChecker interface {
	HealthCheck(ctx context.Context) bool
}

type HealthHandler struct {
	database HealthChecker
	storage  HealthChecker
}

func NewHealthHandler(database, storage HealthChecker) *HealthHandler {
	return &HealthHandler{
		database: database,
		storage:  storage,
	}
}

type GetHealthResponse struct {
	Status   string `json:"status"`
	Database bool   `json:"database"`
	Storage  bool   `json:"storage"`
}

func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := GetHealthResponse{
		Status:   "ok",
		Database: h.database.HealthCheck(r.Context()),
		Storage:  h.storage.HealthCheck(r.Context()),
	}

	status := http.StatusOK
	if !resp.Database || !resp.Storage {
		resp.Status = "degraded"
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, resp)
}
