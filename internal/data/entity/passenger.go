package entity

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Passenger rows are created with their ticket and removed with it (cascade).
type Passenger struct {
	ID       int64  `db:"id"`
	TicketID string `db:"ticket_id"`
	Name     string `db:"name"`
	Age      int    `db:"age"`
	Gender   Gender `db:"gender"`
}
