package entity

type TrainType string

const (
	TrainTypePremium   TrainType = "Premium"
	TrainTypeSuperfast TrainType = "Superfast"
	TrainTypeExpress   TrainType = "Express"
	TrainTypePassenger TrainType = "Passenger"
)

type TrainAvailability string

const (
	AvailabilityAvailable TrainAvailability = "Available"
	AvailabilityLimited   TrainAvailability = "Limited"
	AvailabilityFull      TrainAvailability = "Full"
)

// Train is static reference data, seeded once at startup.
type Train struct {
	ID           int64             `db:"id"`
	Name         string            `db:"name"`
	Number       string            `db:"number"`
	FromStation  string            `db:"from_station"`
	ToStation    string            `db:"to_station"`
	Departure    string            `db:"departure"` // HH:MM
	Arrival      string            `db:"arrival"`   // HH:MM
	Duration     string            `db:"duration"`
	Type         TrainType         `db:"type"`
	Price        float64           `db:"price"`
	Availability TrainAvailability `db:"availability"`
	Rating       float64           `db:"rating"`
	Classes      []string
	Amenities    []string
}
