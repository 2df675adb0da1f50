package adaptor

import (
	"net/http"
	"strconv"

	"railbook/internal/usecase"
	"railbook/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TrainHandler struct {
	service usecase.TrainService
	log     *zap.Logger
}

func NewTrainHandler(service usecase.TrainService, log *zap.Logger) *TrainHandler {
	return &TrainHandler{
		service: service,
		log:     log.With(zap.String("handler", "train")),
	}
}

// GetTrains handles GET /api/trains (public)
func (h *TrainHandler) GetTrains(w http.ResponseWriter, r *http.Request) {
	trains, err := h.service.GetTrains(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get trains")
		return
	}

	utils.ResponseSuccess(w, "success", trains)
}

// GetTrainByID handles GET /api/trains/{id} (public)
func (h *TrainHandler) GetTrainByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseNotFound(w, "Train not found")
		return
	}

	train, err := h.service.GetTrainByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get train")
		return
	}

	utils.ResponseSuccess(w, "success", train)
}
