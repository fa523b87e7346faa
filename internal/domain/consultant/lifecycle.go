package consultant

import (
	"github.com/BruksfildServices01/counsel-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
)

type Outcome string

const (
	CompletelyDeleted      Outcome = "CompletelyDeleted"
	DeactivatedWithCascade Outcome = "DeactivatedWithCascade"
)

type DeletionResult struct {
	Outcome        Outcome `json:"outcome"`
	CancelledCount int     `json:"cancelled_count"`
	CompletedCount int     `json:"completed_count"`
}

// Partition splits a consultant's bookings into the ones to cancel and the
// number left alone. Completed and already cancelled bookings are not
// touched.
func Partition(bookings []models.Booking) (toCancel []uint, completed int) {
	for _, b := range bookings {
		switch booking.Status(b.Status) {
		case booking.StatusCompleted:
			completed++
		case booking.StatusCancelled:
		default:
			toCancel = append(toCancel, b.ID)
		}
	}
	return toCancel, completed
}
