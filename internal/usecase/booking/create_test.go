package booking

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/counsel-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
	"github.com/BruksfildServices01/counsel-scheduler/internal/infra/memory"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
	ucConsultant "github.com/BruksfildServices01/counsel-scheduler/internal/usecase/consultant"
)

func TestCreateBooking(t *testing.T) {
	f := newFixture()

	b, err := f.book(f.member.ID, 0, "2030-02-01")
	require.NoError(t, err)

	assert.NotZero(t, b.ID)
	assert.Equal(t, string(domain.StatusPendingConfirmation), b.Status)
	assert.Equal(t, "https://meet.example.com/c1", b.MeetingLink)
	assert.Equal(t, "2030-02-01", b.Date)

	stored, ok := f.store.Booking(b.ID)
	require.True(t, ok)
	assert.Equal(t, f.member.ID, stored.MemberID)
}

func TestCreateBookingConflicts(t *testing.T) {
	f := newFixture()
	other := f.store.AddUser(models.User{Email: "other@example.com"})

	_, err := f.book(f.member.ID, 0, "2030-02-01")
	require.NoError(t, err)

	_, err = f.book(other.ID, 0, "2030-02-01")
	assert.True(t, httperr.IsBusiness(err, "slot_taken"), "got %v", err)

	_, err = f.book(f.member.ID, 1, "2030-02-01")
	assert.True(t, httperr.IsBusiness(err, "member_double_booked"), "got %v", err)

	_, err = f.book(f.member.ID, 1, "2030-02-02")
	require.NoError(t, err)
	_, err = f.book(f.member.ID, 1, "2030-02-03")
	require.NoError(t, err)

	_, err = f.book(f.member.ID, 1, "2030-02-04")
	assert.True(t, httperr.IsBusiness(err, "member_over_limit"), "got %v", err)

	assert.Len(t, f.store.Bookings(), 3)
}

func TestCreateBookingAfterCancellationFreesSlot(t *testing.T) {
	f := newFixture()
	other := f.store.AddUser(models.User{Email: "other@example.com"})

	b, err := f.book(f.member.ID, 0, "2030-02-01")
	require.NoError(t, err)

	cancelled := string(domain.StatusCancelled)
	_, err = NewUpdateBooking(f.repo, nil).Execute(context.Background(), UpdateBookingInput{
		BookingID: b.ID,
		Actor:     Actor{UserID: 1, Role: models.RoleAdmin},
		Patch:     domain.Patch{Status: &cancelled},
	})
	require.NoError(t, err)

	_, err = f.book(other.ID, 0, "2030-02-01")
	assert.NoError(t, err)
}

func TestCreateBookingRejectsDeactivatedConsultant(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.store.AddBooking(models.Booking{
		ConsultantID: f.consultant.ID,
		MemberID:     f.member.ID,
		SlotID:       f.slots[0].ID,
		Date:         "2030-01-02",
		Status:       string(domain.StatusCompleted),
	})

	res, err := ucConsultant.NewDeleteConsultant(memory.NewConsultantRepository(f.store), nil).
		Execute(ctx, 1, f.consultant.ID)
	require.NoError(t, err)
	require.Equal(t, "DeactivatedWithCascade", string(res.Outcome))

	_, err = f.book(f.member.ID, 1, "2030-02-01")
	assert.True(t, httperr.IsBusiness(err, "consultant_not_found"), "got %v", err)
	assert.Len(t, f.store.Bookings(), 1)

	d, err := NewCheckAvailability(f.repo).Execute(ctx, CheckAvailabilityInput{
		MemberID:     f.member.ID,
		ConsultantID: f.consultant.ID,
		SlotID:       f.slots[1].ID,
		Date:         "2030-02-01",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ConsultantNotFound, d.Conflict)
}

func TestCreateBookingValidation(t *testing.T) {
	f := newFixture()

	_, err := f.book(f.member.ID, 0, "01/02/2030")
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))

	_, err = f.book(f.member.ID, 0, "2029-12-31")
	assert.True(t, httperr.IsBusiness(err, "date_in_past"))

	_, err = f.create.Execute(context.Background(), CreateBookingInput{
		MemberID:     f.member.ID,
		ConsultantID: 999,
		SlotID:       f.slots[0].ID,
		Date:         "2030-02-01",
	})
	assert.True(t, httperr.IsBusiness(err, "consultant_not_found"))
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))

	_, err = f.create.Execute(context.Background(), CreateBookingInput{
		MemberID:     f.member.ID,
		ConsultantID: f.consultant.ID,
		SlotID:       999,
		Date:         "2030-02-01",
	})
	assert.True(t, httperr.IsBusiness(err, "slot_not_found"))

	_, err = f.book(999, 0, "2030-02-01")
	assert.True(t, httperr.IsBusiness(err, "member_not_found"))

	assert.Empty(t, f.store.Bookings())
}

func TestCreateBookingConcurrentSameSlot(t *testing.T) {
	for _, tc := range []struct {
		name   string
		locker domain.Locker
	}{
		{"with slot lock", nil},
		{"database checks only", noLock{}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			if tc.locker != nil {
				f.create = NewCreateBooking(f.repo, tc.locker, f.clock, nil)
			}

			members := make([]models.User, 8)
			for i := range members {
				members[i] = f.store.AddUser(models.User{Email: "m" + string(rune('a'+i)) + "@example.com"})
			}

			var (
				wg       sync.WaitGroup
				mu       sync.Mutex
				ok       int
				conflict int
			)
			for _, m := range members {
				wg.Add(1)
				go func(memberID uint) {
					defer wg.Done()
					_, err := f.book(memberID, 2, "2030-03-03")

					mu.Lock()
					defer mu.Unlock()
					switch {
					case err == nil:
						ok++
					case httperr.IsBusiness(err, "slot_taken"):
						conflict++
					default:
						t.Errorf("unexpected error: %v", err)
					}
				}(m.ID)
			}
			wg.Wait()

			assert.Equal(t, 1, ok)
			assert.Equal(t, len(members)-1, conflict)
			assert.Len(t, f.store.Bookings(), 1)
		})
	}
}
