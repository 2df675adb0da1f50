package response

import (
	"railbook/internal/data/repository"
)

type DashboardStats struct {
	UserCount      int64 `json:"userCount"`
	TrainCount     int64 `json:"trainCount"`
	TicketCount    int64 `json:"ticketCount"`
	CancelledCount int64 `json:"cancelledCount"`
}

type DashboardResponse struct {
	Stats          DashboardStats              `json:"stats"`
	RecentBookings []*repository.RecentBooking `json:"recentBookings"`
}
