package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/counsel-scheduler/internal/infra/lock"
	"github.com/BruksfildServices01/counsel-scheduler/internal/infra/memory"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
	"github.com/BruksfildServices01/counsel-scheduler/internal/timezone"
)

type fixture struct {
	store      *memory.Store
	repo       *memory.BookingRepository
	member     models.User
	consultant models.Consultant
	consUser   models.User
	slots      []models.Slot
	clock      *timezone.Clock
	create     *CreateBooking
}

func newFixture() *fixture {
	store := memory.NewStore()
	repo := memory.NewBookingRepository(store)

	f := &fixture{store: store, repo: repo}

	f.member = store.AddUser(models.User{Email: "member@example.com"})
	f.consUser = store.AddUser(models.User{Email: "consultant@example.com", Role: models.RoleConsultant})
	f.consultant = store.AddConsultant(models.Consultant{UserID: f.consUser.ID, MeetingLink: "https://meet.example.com/c1"})

	for _, r := range [][2]string{{"09:00", "10:00"}, {"10:00", "11:00"}, {"11:00", "12:00"}, {"14:00", "15:00"}} {
		f.slots = append(f.slots, store.AddSlot(models.Slot{StartTime: r[0], EndTime: r[1]}))
	}

	f.clock = timezone.Fixed(time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC), "UTC")
	f.create = NewCreateBooking(repo, lock.NewLocalLocker(), f.clock, nil)
	return f
}

func (f *fixture) book(memberID uint, slot int, date string) (*models.Booking, error) {
	return f.create.Execute(context.Background(), CreateBookingInput{
		MemberID:     memberID,
		ConsultantID: f.consultant.ID,
		SlotID:       f.slots[slot].ID,
		Date:         date,
	})
}

// noLock lets concurrent creates reach the database checks together.
type noLock struct{}

func (noLock) Acquire(context.Context, string) (func(), error) {
	return func() {}, nil
}
