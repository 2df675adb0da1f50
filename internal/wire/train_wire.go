package wire

import (
	"railbook/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTrain(r chi.Router, trainHandler *adaptor.TrainHandler) {
	// Train reference data is public
	r.Get("/api/trains", trainHandler.GetTrains)
	r.Get("/api/trains/{id}", trainHandler.GetTrainByID)
}
