package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
)

func TestListBookingsScopesToCaller(t *testing.T) {
	f := newFixture()
	uc := NewListBookings(f.repo)
	ctx := context.Background()
	other := f.store.AddUser(models.User{Email: "other@example.com"})

	_, err := f.book(f.member.ID, 0, "2030-02-02")
	require.NoError(t, err)
	_, err = f.book(other.ID, 0, "2030-02-01")
	require.NoError(t, err)

	mine, err := uc.Execute(ctx, ListBookingsInput{
		Actor:    Actor{UserID: f.member.ID, Role: models.RoleMember},
		MemberID: other.ID,
	})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, f.member.ID, mine[0].MemberID)

	forConsultant, err := uc.Execute(ctx, ListBookingsInput{
		Actor: Actor{UserID: f.consUser.ID, Role: models.RoleConsultant},
	})
	require.NoError(t, err)
	require.Len(t, forConsultant, 2)
	assert.Equal(t, "2030-02-01", forConsultant[0].Date)

	filtered, err := uc.Execute(ctx, ListBookingsInput{
		Actor:    Actor{UserID: 77, Role: models.RoleAdmin},
		MemberID: other.ID,
		Status:   "PendingConfirmation",
	})
	require.NoError(t, err)
	assert.Len(t, filtered, 1)

	_, err = uc.Execute(ctx, ListBookingsInput{
		Actor:  Actor{UserID: 77, Role: models.RoleAdmin},
		Status: "bogus",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestCheckAvailability(t *testing.T) {
	f := newFixture()
	uc := NewCheckAvailability(f.repo)
	ctx := context.Background()

	in := CheckAvailabilityInput{
		MemberID:     f.member.ID,
		ConsultantID: f.consultant.ID,
		SlotID:       f.slots[0].ID,
		Date:         "2030-02-01",
	}

	d, err := uc.Execute(ctx, in)
	require.NoError(t, err)
	assert.True(t, d.Allowed)

	other := f.store.AddUser(models.User{Email: "other@example.com"})
	_, err = f.book(other.ID, 0, "2030-02-01")
	require.NoError(t, err)

	d, err = uc.Execute(ctx, in)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, "slot_taken", string(d.Conflict))

	in.SlotID = 999
	d, err = uc.Execute(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "slot_not_found", string(d.Conflict))

	in.Date = "nope"
	_, err = uc.Execute(ctx, in)
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))

	assert.Len(t, f.store.Bookings(), 1)
}
