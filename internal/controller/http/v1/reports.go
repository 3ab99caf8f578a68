package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/kurochkinivan/egrid_loader/internal/domain"
)

type ReportsRepository interface {
	LastReport(ctx context.Context) (*domain.RunReport, error)
}

type RunTrigger interface {
	Trigger() bool
}

type ReportsHandler struct {
	reportsRepository ReportsRepository
	trigger           RunTrigger
}

// NewReportsHandler accepts a nil reportsRepository when no report cache is
// configured.
func NewReportsHandler(reportsRepository ReportsRepository, trigger RunTrigger) *ReportsHandler {
	return &ReportsHandler{
		reportsRepository: reportsRepository,
		trigger:           trigger,
	}
}

type GetLastReportResponse struct {
	*domain.RunReport
	SuccessRate float64 `json:"success_rate"`
}

func (h *ReportsHandler) GetLastReport(w http.ResponseWriter, r *http.Request) {
	if h.reportsRepository == nil {
		writeError(w, http.StatusServiceUnavailable, "report cache is not configured")
		return
	}

	report, err := h.reportsRepository.LastReport(r.Context())
	if errors.Is(err, domain.ErrNoReport) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, GetLastReportResponse{RunReport: report, SuccessRate: report.SuccessRate()})
}

type PostRunResponse struct {
	Status string `json:"status"`
}

func (h *ReportsHandler) PostRun(w http.ResponseWriter, r *http.Request) {
	if !h.trigger.Trigger() {
		writeError(w, http.StatusConflict, "a run is already pending")
		return
	}

	writeJSON(w, http.StatusAccepted, PostRunResponse{Status: "scheduled"})
}
