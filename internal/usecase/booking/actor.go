package booking

import "github.com/BruksfildServices01/counsel-scheduler/internal/models"

// Actor is the authenticated caller as seen by the workflows.
type Actor struct {
	UserID uint
	Role   string
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}
