package v1

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/kurochkinivan/egrid_loader/internal/domain"
)

type RecordsRepository interface {
	Records(ctx context.Context, table string, filter domain.RecordFilter, limit, offset uint64) ([]*domain.PlantGeneration, int, error)
	RecordCount(ctx context.Context, table string) (int64, error)
}

type RecordsHandler struct {
	recordsRepository RecordsRepository
	table             string
}

func NewRecordsHandler(recordsRepository RecordsRepository, table string) *RecordsHandler {
	return &RecordsHandler{
		recordsRepository: recordsRepository,
		table:             table,
	}
}

type GetRecordsResponse struct {
	Records    []*domain.PlantGeneration `json:"records"`
	Pagination Pagination                `json:"pagination"`
}

func (h *RecordsHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	filter, err := parseRecordFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, limit, err := parsePagination(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	records, total, err := h.recordsRepository.Records(r.Context(), h.table, filter, limit, offsetOf(page, limit))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if records == nil {
		records = []*domain.PlantGeneration{}
	}

	writeJSON(w, http.StatusOK, GetRecordsResponse{
		Records:    records,
		Pagination: newPagination(page, limit, total),
	})
}

type GetRecordCountResponse struct {
	Table string `json:"table"`
	Count int64  `json:"count"`
}

func (h *RecordsHandler) GetRecordCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.recordsRepository.RecordCount(r.Context(), h.table)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, GetRecordCountResponse{Table: h.table, Count: count})
}

func parseRecordFilter(r *http.Request) (domain.RecordFilter, error) {
	var filter domain.RecordFilter

	if s := r.URL.Query().Get("state"); s != "" {
		if len(s) != 2 {
			return filter, errors.New("invalid state, must be a two-letter abbreviation")
		}
		filter.State = s
	}

	if y := r.URL.Query().Get("year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil || year <= 0 {
			return filter, errors.New("invalid year")
		}
		filter.Year = year
	}

	return filter, nil
}
