package usecase

import (
	"context"
	"sort"

	"railbook/internal/data/entity"
	"railbook/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repositories backing the service tests.

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	byID    map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: map[string]*entity.User{},
		byID:    map[uuid.UUID]*entity.User{},
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.byID[id], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) CountByRole(ctx context.Context, role entity.UserRole) (int64, error) {
	var count int64
	for _, user := range f.byID {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

type fakeTrainRepo struct {
	trains map[int64]*entity.Train
}

func newFakeTrainRepo(trains ...*entity.Train) *fakeTrainRepo {
	repo := &fakeTrainRepo{trains: map[int64]*entity.Train{}}
	for _, train := range trains {
		repo.trains[train.ID] = train
	}
	return repo
}

func (f *fakeTrainRepo) FindAll(ctx context.Context) ([]*entity.Train, error) {
	var trains []*entity.Train
	for _, train := range f.trains {
		trains = append(trains, train)
	}
	sort.Slice(trains, func(i, j int) bool { return trains[i].ID < trains[j].ID })
	return trains, nil
}

func (f *fakeTrainRepo) FindByID(ctx context.Context, id int64) (*entity.Train, error) {
	return f.trains[id], nil
}

func (f *fakeTrainRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.trains)), nil
}

type fakeTicketRepo struct {
	tickets map[string]*entity.Ticket
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: map[string]*entity.Ticket{}}
}

func (f *fakeTicketRepo) Create(ctx context.Context, ticket *entity.Ticket) error {
	copied := *ticket
	f.tickets[ticket.ID] = &copied
	return nil
}

func (f *fakeTicketRepo) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := f.tickets[id]
	return ok, nil
}

func (f *fakeTicketRepo) FindByID(ctx context.Context, id string) (*entity.Ticket, error) {
	return f.tickets[id], nil
}

func (f *fakeTicketRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Ticket, error) {
	var tickets []*entity.Ticket
	for _, ticket := range f.tickets {
		if ticket.UserID == userID {
			tickets = append(tickets, ticket)
		}
	}
	sort.Slice(tickets, func(i, j int) bool {
		return tickets[i].BookingDate.After(tickets[j].BookingDate)
	})
	return tickets, nil
}

func (f *fakeTicketRepo) UpdateStatus(ctx context.Context, id string, status entity.TicketStatus) error {
	ticket, ok := f.tickets[id]
	if !ok {
		return ErrNotFound
	}
	ticket.Status = status
	return nil
}

func (f *fakeTicketRepo) Delete(ctx context.Context, id string) error {
	delete(f.tickets, id)
	return nil
}

func (f *fakeTicketRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.tickets)), nil
}

func (f *fakeTicketRepo) CountByStatus(ctx context.Context, status entity.TicketStatus) (int64, error) {
	var count int64
	for _, ticket := range f.tickets {
		if ticket.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeTicketRepo) FindRecent(ctx context.Context, limit int) ([]*repository.RecentBooking, error) {
	var bookings []*repository.RecentBooking
	for _, ticket := range f.tickets {
		bookings = append(bookings, &repository.RecentBooking{
			ID:          ticket.ID,
			BookingDate: ticket.BookingDate,
			JourneyDate: ticket.JourneyDate,
			Status:      ticket.Status,
			TotalAmount: ticket.TotalAmount,
		})
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].BookingDate.After(bookings[j].BookingDate)
	})
	if len(bookings) > limit {
		bookings = bookings[:limit]
	}
	return bookings, nil
}

type fakePassengerRepo struct {
	byTicket map[string][]*entity.Passenger
}

func newFakePassengerRepo() *fakePassengerRepo {
	return &fakePassengerRepo{byTicket: map[string][]*entity.Passenger{}}
}

func (f *fakePassengerRepo) CreateBatch(ctx context.Context, passengers []*entity.Passenger) error {
	for _, passenger := range passengers {
		f.byTicket[passenger.TicketID] = append(f.byTicket[passenger.TicketID], passenger)
	}
	return nil
}

func (f *fakePassengerRepo) FindByTicketID(ctx context.Context, ticketID string) ([]*entity.Passenger, error) {
	return f.byTicket[ticketID], nil
}

// newTestRepository bundles the fakes in the shape the services expect.
func newTestRepository(trains ...*entity.Train) *repository.Repository {
	return &repository.Repository{
		User:      newFakeUserRepo(),
		Train:     newFakeTrainRepo(trains...),
		Ticket:    newFakeTicketRepo(),
		Passenger: newFakePassengerRepo(),
	}
}

// rajdhani mirrors the first seeded train; tests lean on its 1450 base price.
func rajdhani() *entity.Train {
	return &entity.Train{
		ID:           1,
		Name:         "Rajdhani Express",
		Number:       "12301",
		FromStation:  "New Delhi",
		ToStation:    "Mumbai Central",
		Departure:    "16:50",
		Arrival:      "08:35",
		Duration:     "15h 45m",
		Type:         entity.TrainTypeSuperfast,
		Price:        1450,
		Availability: entity.AvailabilityAvailable,
		Rating:       4.7,
		Classes:      []string{"SL", "3A", "2A", "1A"},
		Amenities:    []string{"food", "wifi", "entertainment", "charging", "bedding"},
	}
}
