package v1

import (
	"context"
	"net/http"

	"github.com/kurochkinivan/egrid_loader/internal/domain"
)

type FilesRepository interface {
	Files(ctx context.Context, limit, offset uint64) ([]*domain.File, error)
}

type FilesHandler struct {
	filesRepository FilesRepository
}

func NewFilesHandler(filesRepository FilesRepository) *FilesHandler {
	return &FilesHandler{
		filesRepository: filesRepository,
	}
}

type GetFilesResponse struct {
	Files []*domain.File `json:"files"`
	Page  uint64         `json:"page"`
	Limit uint64         `json:"limit"`
}

func (h *FilesHandler) GetFiles(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	files, err := h.filesRepository.Files(r.Context(), limit, offsetOf(page, limit))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if files == nil {
		files = []*domain.File{}
	}

	writeJSON(w, http.StatusOK, GetFilesResponse{Files: files, Page: page, Limit: limit})
}
