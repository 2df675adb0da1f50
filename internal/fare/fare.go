// Package fare computes booking totals and answers seat-map lookups.
// All tables here are fixed reference data. Booked seats in particular are
// NOT derived from live ticket rows; that inconsistency is inherited from
// the booking flow this replaces and is kept on purpose.
package fare

import "errors"

var ErrInvalidPassengerCount = errors.New("passenger count must be at least 1")

// Per-passenger charges, same currency unit as train base prices.
const (
	InsuranceFee = 49
	MealFee      = 150
	ServiceFee   = 25
)

// classMultipliers maps a class code to the factor applied to the train's
// base price. Unknown classes fall back to 1.
var classMultipliers = map[string]float64{
	"SL": 1,
	"3A": 1.5,
	"2A": 2.2,
	"1A": 3,
	"CC": 1.2,
	"EC": 1.8,
}

// Layout is the fixed seat grid for one class. Seat numbers run from 1 to
// Rows*SeatsPerRow, row by row.
type Layout struct {
	Rows        int
	SeatsPerRow int
	BookedSeats []int
}

var seatMaps = map[string]Layout{
	"SL": {Rows: 8, SeatsPerRow: 8, BookedSeats: []int{3, 12, 18, 24, 36, 45, 52}},
	"3A": {Rows: 7, SeatsPerRow: 6, BookedSeats: []int{5, 10, 19, 28, 32}},
	"2A": {Rows: 5, SeatsPerRow: 4, BookedSeats: []int{2, 8, 14}},
	"1A": {Rows: 3, SeatsPerRow: 2, BookedSeats: []int{3}},
	"CC": {Rows: 9, SeatsPerRow: 5, BookedSeats: []int{7, 15, 22, 31, 38}},
	"EC": {Rows: 6, SeatsPerRow: 4, BookedSeats: []int{4, 13, 20}},
}

// Options are the per-passenger booking add-ons.
type Options struct {
	Insurance   bool
	SpecialMeal bool
}

// Multiplier returns the price multiplier for a class code.
func Multiplier(classCode string) float64 {
	if m, ok := classMultipliers[classCode]; ok {
		return m
	}
	return 1
}

// KnownClass reports whether the class code has a fare table entry.
func KnownClass(classCode string) bool {
	_, ok := classMultipliers[classCode]
	return ok
}

// TotalSeats returns rows x seats-per-row for a class, 0 when unknown.
func TotalSeats(classCode string) int {
	layout, ok := seatMaps[classCode]
	if !ok {
		return 0
	}
	return layout.Rows * layout.SeatsPerRow
}

// SeatMap returns the layout for a class code.
func SeatMap(classCode string) (Layout, bool) {
	layout, ok := seatMaps[classCode]
	return layout, ok
}

// IsBooked reports whether the seat is in the class's booked set.
func IsBooked(classCode string, seatNumber int) bool {
	layout, ok := seatMaps[classCode]
	if !ok {
		return false
	}
	for _, booked := range layout.BookedSeats {
		if booked == seatNumber {
			return true
		}
	}
	return false
}

// ComputeTotal calculates the booking amount:
//
//	base x multiplier x passengers + add-ons + flat service fee per passenger
func ComputeTotal(basePrice float64, classCode string, passengerCount int, opts Options) (float64, error) {
	if passengerCount < 1 {
		return 0, ErrInvalidPassengerCount
	}

	n := float64(passengerCount)
	total := basePrice * Multiplier(classCode) * n

	if opts.Insurance {
		total += InsuranceFee * n
	}
	if opts.SpecialMeal {
		total += MealFee * n
	}
	total += ServiceFee * n

	return total, nil
}

// ValidateSelection checks a seat selection against the class layout: one
// seat per passenger, all distinct, in range and not already booked.
func ValidateSelection(classCode string, seats []int, passengerCount int) error {
	layout, ok := seatMaps[classCode]
	if !ok {
		return errors.New("unknown class " + classCode)
	}

	if len(seats) != passengerCount {
		return errors.New("selected seats must match passenger count")
	}

	seen := make(map[int]bool, len(seats))
	maxSeat := layout.Rows * layout.SeatsPerRow
	for _, seat := range seats {
		if seat < 1 || seat > maxSeat {
			return errors.New("seat number out of range")
		}
		if seen[seat] {
			return errors.New("duplicate seat selection")
		}
		seen[seat] = true
		if IsBooked(classCode, seat) {
			return errors.New("seat already booked")
		}
	}

	return nil
}
