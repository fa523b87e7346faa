package booking

import "github.com/BruksfildServices01/counsel-scheduler/internal/models"

// Patch is a partial booking update. Nil fields are left untouched.
type Patch struct {
	ConsultantID *uint   `json:"consultant_id"`
	SlotID       *uint   `json:"slot_id"`
	Date         *string `json:"date"`
	Status       *string `json:"status"`
	Notes        *string `json:"notes"`
	MeetingLink  *string `json:"meeting_link"`
}

func (p Patch) IsEmpty() bool {
	return p.ConsultantID == nil &&
		p.SlotID == nil &&
		p.Date == nil &&
		p.Status == nil &&
		p.Notes == nil &&
		p.MeetingLink == nil
}

// Columns maps the provided fields onto column names. The result feeds a
// parameterized UPDATE; values are never spliced into SQL.
func (p Patch) Columns() map[string]any {
	cols := make(map[string]any)
	if p.ConsultantID != nil {
		cols["consultant_id"] = *p.ConsultantID
	}
	if p.SlotID != nil {
		cols["slot_id"] = *p.SlotID
	}
	if p.Date != nil {
		cols["date"] = *p.Date
	}
	if p.Status != nil {
		cols["status"] = *p.Status
	}
	if p.Notes != nil {
		cols["notes"] = *p.Notes
	}
	if p.MeetingLink != nil {
		cols["meeting_link"] = *p.MeetingLink
	}
	return cols
}

// Apply returns a copy of b with the patch merged in.
func (p Patch) Apply(b models.Booking) models.Booking {
	if p.ConsultantID != nil {
		b.ConsultantID = *p.ConsultantID
	}
	if p.SlotID != nil {
		b.SlotID = *p.SlotID
	}
	if p.Date != nil {
		b.Date = *p.Date
	}
	if p.Status != nil {
		b.Status = *p.Status
	}
	if p.Notes != nil {
		b.Notes = *p.Notes
	}
	if p.MeetingLink != nil {
		b.MeetingLink = *p.MeetingLink
	}
	return b
}

// Moves reports whether the patch changes the consultant, slot or date.
func (p Patch) Moves(current models.Booking) bool {
	return (p.ConsultantID != nil && *p.ConsultantID != current.ConsultantID) ||
		(p.SlotID != nil && *p.SlotID != current.SlotID) ||
		(p.Date != nil && *p.Date != current.Date)
}
