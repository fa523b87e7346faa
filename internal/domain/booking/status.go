package booking

import "github.com/BruksfildServices01/counsel-scheduler/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPendingConfirmation Status = "PendingConfirmation"
	StatusConfirmed           Status = "Confirmed"
	StatusCompleted           Status = "Completed"
	StatusCancelled           Status = "Cancelled"
)

// ActiveSlotIndex is the partial unique index enforcing one active booking
// per consultant, slot and date.
const ActiveSlotIndex = "ux_bookings_active_slot"

// ActiveStatuses hold a slot and count towards the member limit.
var ActiveStatuses = []Status{StatusPendingConfirmation, StatusConfirmed}

var transitions = map[Status][]Status{
	StatusPendingConfirmation: {StatusConfirmed, StatusCancelled},
	StatusConfirmed:           {StatusCompleted, StatusCancelled},
}

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPendingConfirmation, StatusConfirmed, StatusCompleted, StatusCancelled:
		return st, nil
	}
	return "", httperr.ErrValidation("invalid_status")
}

func (s Status) IsActive() bool {
	return s == StatusPendingConfirmation || s == StatusConfirmed
}

// ===============================
// Validations
// ===============================

// CanTransition accepts the allowed edges and same-status writes.
func CanTransition(from, to Status) error {
	if from == to {
		return nil
	}
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrValidation("invalid_transition")
}

func InitialStatus() Status {
	return StatusPendingConfirmation
}

func ActiveStatusStrings() []string {
	out := make([]string, 0, len(ActiveStatuses))
	for _, s := range ActiveStatuses {
		out = append(out, string(s))
	}
	return out
}
