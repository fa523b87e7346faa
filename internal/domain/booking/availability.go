package booking

import (
	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
)

// MaxActivePerMember caps PendingConfirmation+Confirmed bookings per member.
const MaxActivePerMember = 3

type ConflictKind string

const (
	SlotTaken          ConflictKind = "slot_taken"
	MemberDoubleBooked ConflictKind = "member_double_booked"
	MemberOverLimit    ConflictKind = "member_over_limit"
	SlotNotFound       ConflictKind = "slot_not_found"
	ConsultantNotFound ConflictKind = "consultant_not_found"
)

// Err turns the kind into the workflow error. Missing entities are
// NotFound, rule violations are Conflict.
func (k ConflictKind) Err() error {
	switch k {
	case SlotNotFound, ConsultantNotFound:
		return httperr.ErrNotFound(string(k))
	default:
		return httperr.ErrConflict(string(k))
	}
}

type Request struct {
	ConsultantID uint
	SlotID       uint
	Date         string
	MemberID     uint
}

// Facts is what the rules need to know about storage. Nil Consultant or
// Slot means the row does not exist. Consultant must carry its User.
type Facts struct {
	Consultant *models.Consultant
	Slot       *models.Slot

	// MemberBookings are the member's bookings, any status.
	MemberBookings []models.Booking

	// SlotBookings are bookings on the requested consultant+slot+date,
	// any status.
	SlotBookings []models.Booking

	// IgnoreBookingID excludes a booking being moved from the checks.
	IgnoreBookingID uint
}

type Decision struct {
	Allowed  bool
	Conflict ConflictKind
}

func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return d.Conflict.Err()
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(kind ConflictKind) Decision {
	return Decision{Conflict: kind}
}

func active(b models.Booking) bool {
	return Status(b.Status).IsActive()
}

func (f Facts) skip(b models.Booking) bool {
	return f.IgnoreBookingID != 0 && b.ID == f.IgnoreBookingID
}

// CanBook applies the rules in a fixed order and reports the first one
// violated: consultant, slot, member limit, member same-day, slot taken.
func CanBook(req Request, f Facts) Decision {
	if d := exists(req, f); !d.Allowed {
		return d
	}

	activeCount := 0
	sameDay := false
	for _, b := range f.MemberBookings {
		if f.skip(b) || b.MemberID != req.MemberID || !active(b) {
			continue
		}
		activeCount++
		if b.Date == req.Date {
			sameDay = true
		}
	}

	if activeCount >= MaxActivePerMember {
		return deny(MemberOverLimit)
	}
	if sameDay {
		return deny(MemberDoubleBooked)
	}
	if slotTaken(req, f) {
		return deny(SlotTaken)
	}

	return allow()
}

// CanMove re-checks existence and the slot-taken rule for an existing
// booking whose consultant, slot or date is changing.
func CanMove(req Request, f Facts) Decision {
	if d := exists(req, f); !d.Allowed {
		return d
	}
	if slotTaken(req, f) {
		return deny(SlotTaken)
	}
	return allow()
}

func exists(req Request, f Facts) Decision {
	if f.Consultant == nil || f.Consultant.ID != req.ConsultantID || !bookable(f.Consultant) {
		return deny(ConsultantNotFound)
	}
	if f.Slot == nil || f.Slot.ID != req.SlotID {
		return deny(SlotNotFound)
	}
	return allow()
}

// bookable is false once the consultant's user has been deactivated; the
// row then only survives to keep its booking history.
func bookable(c *models.Consultant) bool {
	return c.User.Status == models.UserStatusActive
}

func slotTaken(req Request, f Facts) bool {
	for _, b := range f.SlotBookings {
		if f.skip(b) || !active(b) {
			continue
		}
		if b.ConsultantID == req.ConsultantID && b.SlotID == req.SlotID && b.Date == req.Date {
			return true
		}
	}
	return false
}
