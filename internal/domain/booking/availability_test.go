package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
)

func activeBooking(id, member uint, date string) models.Booking {
	return models.Booking{
		ID:           id,
		ConsultantID: 9,
		MemberID:     member,
		SlotID:       100 + id,
		Date:         date,
		Status:       string(StatusConfirmed),
	}
}

func TestCanBook(t *testing.T) {
	req := Request{ConsultantID: 1, SlotID: 2, Date: "2030-05-10", MemberID: 7}
	consultant := &models.Consultant{ID: 1, User: models.User{ID: 3, Status: models.UserStatusActive}}
	slot := &models.Slot{ID: 2, StartTime: "09:00", EndTime: "10:00"}

	taken := models.Booking{ID: 50, ConsultantID: 1, SlotID: 2, Date: "2030-05-10", MemberID: 8, Status: string(StatusPendingConfirmation)}

	tests := []struct {
		name     string
		facts    Facts
		conflict ConflictKind
	}{
		{
			name:  "allowed",
			facts: Facts{Consultant: consultant, Slot: slot},
		},
		{
			name:     "missing consultant wins over everything",
			facts:    Facts{Slot: nil, SlotBookings: []models.Booking{taken}},
			conflict: ConsultantNotFound,
		},
		{
			name: "deactivated consultant counts as missing",
			facts: Facts{
				Consultant: &models.Consultant{ID: 1, User: models.User{ID: 3, Status: models.UserStatusInactive}},
				Slot:       slot,
			},
			conflict: ConsultantNotFound,
		},
		{
			name:     "missing slot",
			facts:    Facts{Consultant: consultant},
			conflict: SlotNotFound,
		},
		{
			name: "three active bookings is the limit",
			facts: Facts{
				Consultant: consultant,
				Slot:       slot,
				MemberBookings: []models.Booking{
					activeBooking(1, 7, "2030-05-01"),
					activeBooking(2, 7, "2030-05-02"),
					activeBooking(3, 7, "2030-05-03"),
				},
			},
			conflict: MemberOverLimit,
		},
		{
			name: "limit is checked before same day",
			facts: Facts{
				Consultant: consultant,
				Slot:       slot,
				MemberBookings: []models.Booking{
					activeBooking(1, 7, "2030-05-10"),
					activeBooking(2, 7, "2030-05-02"),
					activeBooking(3, 7, "2030-05-03"),
				},
			},
			conflict: MemberOverLimit,
		},
		{
			name: "inactive bookings do not count",
			facts: Facts{
				Consultant: consultant,
				Slot:       slot,
				MemberBookings: []models.Booking{
					activeBooking(1, 7, "2030-05-01"),
					activeBooking(2, 7, "2030-05-02"),
					{ID: 3, MemberID: 7, Date: "2030-05-10", Status: string(StatusCompleted)},
					{ID: 4, MemberID: 7, Date: "2030-05-10", Status: string(StatusCancelled)},
				},
			},
		},
		{
			name: "same day double booking",
			facts: Facts{
				Consultant:     consultant,
				Slot:           slot,
				MemberBookings: []models.Booking{activeBooking(1, 7, "2030-05-10")},
				SlotBookings:   []models.Booking{taken},
			},
			conflict: MemberDoubleBooked,
		},
		{
			name: "slot taken",
			facts: Facts{
				Consultant:   consultant,
				Slot:         slot,
				SlotBookings: []models.Booking{taken},
			},
			conflict: SlotTaken,
		},
		{
			name: "cancelled booking frees the slot",
			facts: Facts{
				Consultant: consultant,
				Slot:       slot,
				SlotBookings: []models.Booking{
					{ID: 51, ConsultantID: 1, SlotID: 2, Date: "2030-05-10", Status: string(StatusCancelled)},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := CanBook(req, tt.facts)

			if tt.conflict == "" {
				assert.True(t, d.Allowed)
				assert.NoError(t, d.Err())
				return
			}
			assert.False(t, d.Allowed)
			assert.Equal(t, tt.conflict, d.Conflict)
		})
	}
}

func TestCanMoveIgnoresTheBookingItself(t *testing.T) {
	self := models.Booking{ID: 5, ConsultantID: 1, SlotID: 2, Date: "2030-05-10", Status: string(StatusConfirmed)}
	req := Request{ConsultantID: 1, SlotID: 2, Date: "2030-05-10", MemberID: 7}

	facts := Facts{
		Consultant:      &models.Consultant{ID: 1, User: models.User{ID: 3, Status: models.UserStatusActive}},
		Slot:            &models.Slot{ID: 2},
		SlotBookings:    []models.Booking{self},
		IgnoreBookingID: 5,
	}
	assert.True(t, CanMove(req, facts).Allowed)

	facts.IgnoreBookingID = 0
	assert.Equal(t, SlotTaken, CanMove(req, facts).Conflict)

	facts.IgnoreBookingID = 5
	facts.Consultant = &models.Consultant{ID: 1, User: models.User{ID: 3, Status: models.UserStatusInactive}}
	assert.Equal(t, ConsultantNotFound, CanMove(req, facts).Conflict)
}

func TestConflictKindErrors(t *testing.T) {
	assert.True(t, httperr.IsKind(SlotNotFound.Err(), httperr.KindNotFound))
	assert.True(t, httperr.IsKind(ConsultantNotFound.Err(), httperr.KindNotFound))
	assert.True(t, httperr.IsKind(SlotTaken.Err(), httperr.KindConflict))
	assert.True(t, httperr.IsKind(MemberOverLimit.Err(), httperr.KindConflict))
	assert.True(t, httperr.IsBusiness(MemberDoubleBooked.Err(), "member_double_booked"))
}
