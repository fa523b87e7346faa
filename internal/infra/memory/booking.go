package memory

import (
	"context"
	"slices"

	domain "github.com/BruksfildServices01/counsel-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
)

type BookingRepository struct {
	s    *Store
	inTx bool
}

func NewBookingRepository(s *Store) *BookingRepository {
	return &BookingRepository{s: s}
}

func (r *BookingRepository) WithinTx(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.s.run(ctx, r.inTx, func() error {
		return fn(&BookingRepository{s: r.s, inTx: true})
	})
}

func (r *BookingRepository) GetConsultant(_ context.Context, id uint) (*models.Consultant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if c, ok := r.s.data.consultants[id]; ok {
		c.User = r.s.data.users[c.UserID]
		return &c, nil
	}
	return nil, nil
}

func (r *BookingRepository) GetConsultantByUser(_ context.Context, userID uint) (*models.Consultant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.data.consultants {
		if c.UserID == userID {
			return &c, nil
		}
	}
	return nil, nil
}

// LockConsultant is GetConsultant: transactions are already serialized.
func (r *BookingRepository) LockConsultant(ctx context.Context, id uint) (*models.Consultant, error) {
	return r.GetConsultant(ctx, id)
}

func (r *BookingRepository) GetSlot(_ context.Context, id uint) (*models.Slot, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if sl, ok := r.s.data.slots[id]; ok {
		return &sl, nil
	}
	return nil, nil
}

func (r *BookingRepository) LockMember(_ context.Context, id uint) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if u, ok := r.s.data.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *BookingRepository) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if b, ok := r.s.data.bookings[id]; ok {
		return &b, nil
	}
	return nil, nil
}

func (r *BookingRepository) ListMemberBookings(
	_ context.Context,
	memberID uint,
	statuses []string,
) ([]models.Booking, error) {
	return r.filter(func(b models.Booking) bool {
		return b.MemberID == memberID && statusIn(b.Status, statuses)
	}), nil
}

func (r *BookingRepository) ListSlotBookings(
	_ context.Context,
	consultantID uint,
	slotID uint,
	date string,
	statuses []string,
) ([]models.Booking, error) {
	return r.filter(func(b models.Booking) bool {
		return b.ConsultantID == consultantID &&
			b.SlotID == slotID &&
			b.Date == date &&
			statusIn(b.Status, statuses)
	}), nil
}

func (r *BookingRepository) ListBookings(
	_ context.Context,
	f domain.ListFilter,
) ([]models.Booking, error) {
	out := r.filter(func(b models.Booking) bool {
		return (f.MemberID == 0 || b.MemberID == f.MemberID) &&
			(f.ConsultantID == 0 || b.ConsultantID == f.ConsultantID) &&
			(f.Status == "" || b.Status == f.Status)
	})
	sortBy(out, func(b models.Booking) string { return b.Date })
	return out, nil
}

func (r *BookingRepository) CreateBooking(_ context.Context, b *models.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.checkActiveUnique(*b); err != nil {
		return err
	}

	b.ID = r.s.data.next("bookings")
	b.CreatedAt = r.s.now()
	b.UpdatedAt = b.CreatedAt
	r.s.data.bookings[b.ID] = *b
	return nil
}

func (r *BookingRepository) UpdateBookingColumns(
	_ context.Context,
	id uint,
	columns map[string]any,
) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.data.bookings[id]
	if !ok {
		return nil
	}

	for col, v := range columns {
		switch col {
		case "consultant_id":
			b.ConsultantID = v.(uint)
		case "slot_id":
			b.SlotID = v.(uint)
		case "date":
			b.Date = v.(string)
		case "status":
			b.Status = v.(string)
		case "notes":
			b.Notes = v.(string)
		case "meeting_link":
			b.MeetingLink = v.(string)
		}
	}

	if err := r.checkActiveUnique(b); err != nil {
		return err
	}

	b.UpdatedAt = r.s.now()
	r.s.data.bookings[id] = b
	return nil
}

func (r *BookingRepository) DeleteBooking(_ context.Context, id uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.bookings[id]; !ok {
		return false, nil
	}
	delete(r.s.data.bookings, id)
	return true, nil
}

// checkActiveUnique mirrors the partial unique index; caller holds mu.
func (r *BookingRepository) checkActiveUnique(b models.Booking) error {
	if !domain.Status(b.Status).IsActive() {
		return nil
	}
	for _, other := range r.s.data.bookings {
		if other.ID == b.ID || !domain.Status(other.Status).IsActive() {
			continue
		}
		if other.ConsultantID == b.ConsultantID && other.SlotID == b.SlotID && other.Date == b.Date {
			return uniqueViolation(domain.ActiveSlotIndex)
		}
	}
	return nil
}

func (r *BookingRepository) filter(keep func(models.Booking) bool) []models.Booking {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []models.Booking
	for _, b := range sortedValues(r.s.data.bookings) {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}

func statusIn(status string, statuses []string) bool {
	return len(statuses) == 0 || slices.Contains(statuses, status)
}

var _ domain.Repository = (*BookingRepository)(nil)
