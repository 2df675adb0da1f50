package request

type PassengerRequest struct {
	Name   string `json:"name" validate:"required,min=2,max=255"`
	Age    int    `json:"age" validate:"required,gte=1,lte=120"`
	Gender string `json:"gender" validate:"required,oneof=male female other"`
}

// CreateTicketRequest is the booking payload. TotalAmount is what the
// client computed; the server recomputes the fare and rejects a mismatch.
// Seats are optional: when present they are checked against the class
// seat map.
type CreateTicketRequest struct {
	TrainID     int64              `json:"trainId" validate:"required,gte=1"`
	JourneyDate string             `json:"journeyDate" validate:"required,datetime=2006-01-02"`
	ClassName   string             `json:"className" validate:"required,min=2,max=5"`
	Passengers  []PassengerRequest `json:"passengers" validate:"required,min=1,dive"`
	Seats       []int              `json:"seats,omitempty"`
	Insurance   bool               `json:"insurance"`
	SpecialMeal bool               `json:"specialMeal"`
	TotalAmount float64            `json:"totalAmount" validate:"gte=0"`
}
