package usecase

import (
	"context"
	"testing"

	"railbook/internal/data/entity"
	"railbook/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAdminService_GetDashboard_Empty(t *testing.T) {
	t.Parallel()

	svc := NewAdminService(newTestRepository(), zap.NewNop())

	dash, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)
	require.NotNil(t, dash)

	assert.Zero(t, dash.Stats.UserCount)
	assert.Zero(t, dash.Stats.TrainCount)
	assert.Zero(t, dash.Stats.TicketCount)
	assert.Zero(t, dash.Stats.CancelledCount)
	// empty list, never null in the JSON payload
	require.NotNil(t, dash.RecentBookings)
	assert.Empty(t, dash.RecentBookings)
}

func TestAdminService_GetDashboard_Counts(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(rajdhani())
	ctx := context.Background()

	require.NoError(t, repo.User.Create(ctx, &entity.User{
		ID: utils.GenerateUUID(), Name: "Jane", Email: "jane@x.com", Role: entity.RoleUser,
	}))
	require.NoError(t, repo.User.Create(ctx, &entity.User{
		ID: utils.GenerateUUID(), Name: "Root", Email: "admin@x.com", Role: entity.RoleAdmin,
	}))

	ticketSvc := NewTicketService(repo, zap.NewNop())
	owner := uuid.New()

	first, err := ticketSvc.CreateTicket(ctx, owner, validBookingRequest())
	require.NoError(t, err)
	_, err = ticketSvc.CreateTicket(ctx, owner, validBookingRequest())
	require.NoError(t, err)
	require.NoError(t, ticketSvc.CancelTicket(ctx, owner, first.TicketID))

	dash, err := NewAdminService(repo, zap.NewNop()).GetDashboard(ctx)
	require.NoError(t, err)

	// admins are not counted as users
	assert.Equal(t, int64(1), dash.Stats.UserCount)
	assert.Equal(t, int64(1), dash.Stats.TrainCount)
	assert.Equal(t, int64(2), dash.Stats.TicketCount)
	assert.Equal(t, int64(1), dash.Stats.CancelledCount)
	assert.Len(t, dash.RecentBookings, 2)
}
