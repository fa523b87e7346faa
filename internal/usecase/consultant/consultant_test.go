package consultant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/counsel-scheduler/internal/domain/consultant"
	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
	"github.com/BruksfildServices01/counsel-scheduler/internal/infra/memory"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
)

type seeded struct {
	store      *memory.Store
	repo       *memory.ConsultantRepository
	user       models.User
	consultant models.Consultant
	slot       models.Slot
}

func seed() *seeded {
	store := memory.NewStore()
	s := &seeded{store: store, repo: memory.NewConsultantRepository(store)}

	s.user = store.AddUser(models.User{Email: "c@example.com", Role: models.RoleConsultant})
	store.AddProfile(models.Profile{UserID: s.user.ID, FullName: "Dr. C"})
	s.consultant = store.AddConsultant(models.Consultant{UserID: s.user.ID})
	s.slot = store.AddSlot(models.Slot{StartTime: "09:00", EndTime: "10:00"})
	store.AddConsultantSlot(models.ConsultantSlot{ConsultantID: s.consultant.ID, SlotID: s.slot.ID, Weekday: 1})
	return s
}

func (s *seeded) addBooking(status string) models.Booking {
	return s.store.AddBooking(models.Booking{
		ConsultantID: s.consultant.ID,
		MemberID:     99,
		SlotID:       s.slot.ID,
		Date:         "2030-01-0" + string(rune('1'+len(s.store.Bookings()))),
		Status:       status,
	})
}

// ======================================================
// DELETE
// ======================================================

func TestDeleteConsultantWithoutHistory(t *testing.T) {
	s := seed()
	uc := NewDeleteConsultant(s.repo, nil)

	res, err := uc.Execute(context.Background(), 1, s.consultant.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CompletelyDeleted, res.Outcome)

	counts := s.store.Counts()
	assert.Zero(t, counts["users"])
	assert.Zero(t, counts["profiles"])
	assert.Zero(t, counts["consultants"])
	assert.Zero(t, counts["consultant_slots"])
	assert.Equal(t, 1, counts["slots"])

	_, err = uc.Execute(context.Background(), 1, s.consultant.ID)
	assert.True(t, httperr.IsBusiness(err, "consultant_not_found"))
}

func TestDeleteConsultantWithHistory(t *testing.T) {
	s := seed()
	uc := NewDeleteConsultant(s.repo, nil)

	pending := s.addBooking("PendingConfirmation")
	confirmed := s.addBooking("Confirmed")
	completed := s.addBooking("Completed")
	s.addBooking("Completed")

	res, err := uc.Execute(context.Background(), 1, s.consultant.ID)
	require.NoError(t, err)
	assert.Equal(t, &domain.DeletionResult{
		Outcome:        domain.DeactivatedWithCascade,
		CancelledCount: 2,
		CompletedCount: 2,
	}, res)

	for _, id := range []uint{pending.ID, confirmed.ID} {
		b, _ := s.store.Booking(id)
		assert.Equal(t, "Cancelled", b.Status)
	}
	b, _ := s.store.Booking(completed.ID)
	assert.Equal(t, "Completed", b.Status)

	u, ok := s.store.User(s.user.ID)
	require.True(t, ok)
	assert.Equal(t, models.UserStatusInactive, u.Status)

	counts := s.store.Counts()
	assert.Equal(t, 1, counts["consultants"])
	assert.Equal(t, 1, counts["profiles"])
	assert.Equal(t, 4, counts["bookings"])

	// a second run finds nothing left to cancel
	res, err = uc.Execute(context.Background(), 1, s.consultant.ID)
	require.NoError(t, err)
	assert.Zero(t, res.CancelledCount)
	assert.Equal(t, 2, res.CompletedCount)
}

// failingStatus breaks the last step of the cascade.
type failingStatus struct {
	domain.Repository
}

func (r failingStatus) WithinTx(ctx context.Context, fn func(tx domain.Repository) error) error {
	return r.Repository.WithinTx(ctx, func(tx domain.Repository) error {
		return fn(failingStatus{tx})
	})
}

func (failingStatus) SetUserStatus(context.Context, uint, string) error {
	return errors.New("connection reset")
}

// callLog records the order of consultant and booking reads.
type callLog struct {
	domain.Repository
	calls *[]string
}

func (r callLog) WithinTx(ctx context.Context, fn func(tx domain.Repository) error) error {
	return r.Repository.WithinTx(ctx, func(tx domain.Repository) error {
		return fn(callLog{tx, r.calls})
	})
}

func (r callLog) GetConsultant(ctx context.Context, id uint) (*models.Consultant, error) {
	*r.calls = append(*r.calls, "GetConsultant")
	return r.Repository.GetConsultant(ctx, id)
}

func (r callLog) LockConsultant(ctx context.Context, id uint) (*models.Consultant, error) {
	*r.calls = append(*r.calls, "LockConsultant")
	return r.Repository.LockConsultant(ctx, id)
}

func (r callLog) ListConsultantBookings(ctx context.Context, id uint) ([]models.Booking, error) {
	*r.calls = append(*r.calls, "ListConsultantBookings")
	return r.Repository.ListConsultantBookings(ctx, id)
}

func TestDeleteConsultantLocksBeforeReadingBookings(t *testing.T) {
	for _, withHistory := range []bool{false, true} {
		s := seed()
		if withHistory {
			s.addBooking("Confirmed")
		}

		var calls []string
		_, err := NewDeleteConsultant(callLog{s.repo, &calls}, nil).Execute(context.Background(), 1, s.consultant.ID)
		require.NoError(t, err)

		require.GreaterOrEqual(t, len(calls), 2)
		assert.Equal(t, []string{"LockConsultant", "ListConsultantBookings"}, calls[:2])
		assert.NotContains(t, calls, "GetConsultant")
	}
}

func TestDeleteConsultantRollsBack(t *testing.T) {
	s := seed()
	pending := s.addBooking("PendingConfirmation")

	_, err := NewDeleteConsultant(failingStatus{s.repo}, nil).Execute(context.Background(), 1, s.consultant.ID)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindOperationFailed))

	b, _ := s.store.Booking(pending.ID)
	assert.Equal(t, "PendingConfirmation", b.Status)

	u, _ := s.store.User(s.user.ID)
	assert.Equal(t, models.UserStatusActive, u.Status)
}

// ======================================================
// CREATE / SCHEDULE
// ======================================================

func TestCreateConsultant(t *testing.T) {
	s := seed()
	uc := NewCreateConsultant(s.repo, nil)
	ctx := context.Background()

	member := s.store.AddUser(models.User{Email: "m@example.com"})

	c, err := uc.Execute(ctx, CreateConsultantInput{ActorID: 1, UserID: member.ID, Speciality: "career"})
	require.NoError(t, err)
	assert.Equal(t, member.ID, c.UserID)

	u, _ := s.store.User(member.ID)
	assert.Equal(t, models.RoleConsultant, u.Role)

	_, err = uc.Execute(ctx, CreateConsultantInput{UserID: member.ID})
	assert.True(t, httperr.IsBusiness(err, "user_already_consultant"))

	_, err = uc.Execute(ctx, CreateConsultantInput{UserID: 999})
	assert.True(t, httperr.IsBusiness(err, "user_not_found"))
}

func TestCreateSlot(t *testing.T) {
	s := seed()
	uc := NewCreateSlot(s.repo)

	slot, err := uc.Execute(context.Background(), "13:00", "14:00")
	require.NoError(t, err)
	assert.NotZero(t, slot.ID)

	_, err = uc.Execute(context.Background(), "14:00", "13:00")
	assert.True(t, httperr.IsBusiness(err, "invalid_time_range"))
}

func TestAssignSlot(t *testing.T) {
	s := seed()
	uc := NewAssignSlot(s.repo)
	ctx := context.Background()

	in := AssignSlotInput{
		ActorUserID:  s.user.ID,
		ConsultantID: s.consultant.ID,
		SlotID:       s.slot.ID,
		Weekday:      3,
	}

	cs, err := uc.Execute(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 3, cs.Weekday)
	assert.Equal(t, "09:00", cs.Slot.StartTime)

	_, err = uc.Execute(ctx, in)
	assert.True(t, httperr.IsBusiness(err, "slot_already_assigned"))

	bad := in
	bad.Weekday = 7
	_, err = uc.Execute(ctx, bad)
	assert.True(t, httperr.IsBusiness(err, "invalid_weekday"))

	stranger := in
	stranger.ActorUserID = 555
	stranger.Weekday = 4
	_, err = uc.Execute(ctx, stranger)
	assert.True(t, httperr.IsBusiness(err, "not_consultant_owner"))

	stranger.ActorIsAdmin = true
	_, err = uc.Execute(ctx, stranger)
	assert.NoError(t, err)

	list, err := NewListConsultants(s.repo).Execute(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Len(t, list[0].Slots, 3)
}
