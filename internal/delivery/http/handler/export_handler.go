package handler

import (
	"bytes"
	"errors"
	"net/http"

	"homecare-scheduler/internal/domain/entity"
	"homecare-scheduler/internal/service"
	"homecare-scheduler/internal/usecase"
	"homecare-scheduler/pkg/response"

	"github.com/gorilla/mux"
)

type ExportHandler struct {
	exportUsecase usecase.ExportUsecase
}

func NewExportHandler(exportUsecase usecase.ExportUsecase) *ExportHandler {
	return &ExportHandler{
		exportUsecase: exportUsecase,
	}
}

// DownloadCSV renders the collection into memory first so a failure can
// still be reported as JSON.
func (h *ExportHandler) DownloadCSV(w http.ResponseWriter, r *http.Request) {
	collection := entity.Collection(mux.Vars(r)["collection"])

	fileName, err := service.ExportFileName(collection)
	if err != nil {
		response.NotFound(w, "Unknown collection")
		return
	}

	var buf bytes.Buffer
	if _, err := h.exportUsecase.WriteCSV(r.Context(), collection, &buf); err != nil {
		response.InternalServerError(w, "Failed to export "+string(collection))
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+fileName+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *ExportHandler) WriteFile(w http.ResponseWriter, r *http.Request) {
	collection := entity.Collection(mux.Vars(r)["collection"])

	result, err := h.exportUsecase.ExportToFile(r.Context(), collection)
	if err != nil {
		if errors.Is(err, service.ErrUnknownCollection) {
			response.NotFound(w, "Unknown collection")
			return
		}
		response.InternalServerError(w, "Failed to export "+string(collection))
		return
	}

	response.Success(w, http.StatusOK, "Exported to "+result.Path, result)
}
