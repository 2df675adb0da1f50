package response

import (
	"strconv"

	"railbook/internal/data/entity"
)

// TrainResponse mirrors what the SPA expects: string IDs and "from"/"to"
// keys instead of the column names.
type TrainResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Number       string   `json:"number"`
	From         string   `json:"from"`
	To           string   `json:"to"`
	Departure    string   `json:"departure"`
	Arrival      string   `json:"arrival"`
	Duration     string   `json:"duration"`
	Price        float64  `json:"price"`
	Availability string   `json:"availability"`
	Rating       float64  `json:"rating"`
	Type         string   `json:"type"`
	Classes      []string `json:"classes"`
	Amenities    []string `json:"amenities"`
}

func TrainToResponse(train *entity.Train) TrainResponse {
	classes := train.Classes
	if classes == nil {
		classes = []string{}
	}
	amenities := train.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return TrainResponse{
		ID:           strconv.FormatInt(train.ID, 10),
		Name:         train.Name,
		Number:       train.Number,
		From:         train.FromStation,
		To:           train.ToStation,
		Departure:    train.Departure,
		Arrival:      train.Arrival,
		Duration:     train.Duration,
		Price:        train.Price,
		Availability: string(train.Availability),
		Rating:       train.Rating,
		Type:         string(train.Type),
		Classes:      classes,
		Amenities:    amenities,
	}
}
