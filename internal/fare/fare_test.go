package fare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiplier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		class string
		want  float64
	}{
		{class: "SL", want: 1},
		{class: "3A", want: 1.5},
		{class: "2A", want: 2.2},
		{class: "1A", want: 3},
		{class: "CC", want: 1.2},
		{class: "EC", want: 1.8},
		{class: "XX", want: 1}, // unknown class falls back to 1
		{class: "", want: 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.class, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Multiplier(tt.class))
		})
	}
}

func TestTotalSeats(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 64, TotalSeats("SL"))
	assert.Equal(t, 42, TotalSeats("3A"))
	assert.Equal(t, 20, TotalSeats("2A"))
	assert.Equal(t, 6, TotalSeats("1A"))
	assert.Equal(t, 45, TotalSeats("CC"))
	assert.Equal(t, 24, TotalSeats("EC"))
	assert.Equal(t, 0, TotalSeats("XX"))
}

func TestIsBooked(t *testing.T) {
	t.Parallel()

	assert.True(t, IsBooked("SL", 3))
	assert.True(t, IsBooked("SL", 52))
	assert.False(t, IsBooked("SL", 4))
	assert.True(t, IsBooked("1A", 3))
	assert.False(t, IsBooked("1A", 1))

	// unknown class has no booked seats
	assert.False(t, IsBooked("XX", 3))
}

func TestComputeTotal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		basePrice  float64
		class      string
		passengers int
		opts       Options
		want       float64
	}{
		{
			name:      "SL base fare is base times n plus service fee",
			basePrice: 1000, class: "SL", passengers: 1,
			want: 1000 + 25,
		},
		{
			name:      "3A two passengers no add-ons",
			basePrice: 1450, class: "3A", passengers: 2,
			want: 1450*1.5*2 + 25*2, // 4400
		},
		{
			name:      "1A with insurance",
			basePrice: 1000, class: "1A", passengers: 2,
			opts: Options{Insurance: true},
			want: 1000*3*2 + 49*2 + 25*2,
		},
		{
			name:      "EC with meal",
			basePrice: 500, class: "EC", passengers: 3,
			opts: Options{SpecialMeal: true},
			want: 500*1.8*3 + 150*3 + 25*3,
		},
		{
			name:      "all add-ons",
			basePrice: 850, class: "CC", passengers: 4,
			opts: Options{Insurance: true, SpecialMeal: true},
			want: 850*1.2*4 + 49*4 + 150*4 + 25*4,
		},
		{
			name:      "unknown class uses multiplier 1",
			basePrice: 100, class: "XX", passengers: 1,
			want: 100 + 25,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ComputeTotal(tt.basePrice, tt.class, tt.passengers, tt.opts)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestComputeTotal_RejectsInvalidPassengerCount(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, -1, -10} {
		_, err := ComputeTotal(1000, "SL", n, Options{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidPassengerCount)
	}
}

func TestComputeTotal_MonotonicInPassengersAndAddOns(t *testing.T) {
	t.Parallel()

	for _, class := range []string{"SL", "3A", "2A", "1A", "CC", "EC"} {
		prev := 0.0
		for n := 1; n <= 6; n++ {
			base, err := ComputeTotal(1450, class, n, Options{})
			require.NoError(t, err)
			assert.Greater(t, base, prev, "class %s n %d", class, n)
			prev = base

			withInsurance, err := ComputeTotal(1450, class, n, Options{Insurance: true})
			require.NoError(t, err)
			assert.GreaterOrEqual(t, withInsurance, base)

			withMeal, err := ComputeTotal(1450, class, n, Options{SpecialMeal: true})
			require.NoError(t, err)
			assert.GreaterOrEqual(t, withMeal, base)
		}
	}
}

func TestValidateSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		class      string
		seats      []int
		passengers int
		wantErr    string
	}{
		{name: "valid selection", class: "2A", seats: []int{1, 3}, passengers: 2},
		{name: "unknown class", class: "XX", seats: []int{1}, passengers: 1, wantErr: "unknown class"},
		{name: "count mismatch", class: "2A", seats: []int{1}, passengers: 2, wantErr: "match passenger count"},
		{name: "duplicate seat", class: "2A", seats: []int{1, 1}, passengers: 2, wantErr: "duplicate"},
		{name: "booked seat", class: "2A", seats: []int{2}, passengers: 1, wantErr: "already booked"},
		{name: "seat out of range", class: "1A", seats: []int{7}, passengers: 1, wantErr: "out of range"},
		{name: "seat zero", class: "1A", seats: []int{0}, passengers: 1, wantErr: "out of range"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateSelection(tt.class, tt.seats, tt.passengers)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestSeatMap(t *testing.T) {
	t.Parallel()

	layout, ok := SeatMap("3A")
	require.True(t, ok)
	assert.Equal(t, 7, layout.Rows)
	assert.Equal(t, 6, layout.SeatsPerRow)
	assert.Equal(t, []int{5, 10, 19, 28, 32}, layout.BookedSeats)

	_, ok = SeatMap("XX")
	assert.False(t, ok)
}

func TestKnownClass(t *testing.T) {
	t.Parallel()

	assert.True(t, KnownClass("SL"))
	assert.False(t, KnownClass("GN"))
}
