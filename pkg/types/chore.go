package types

import "time"

// Chore statuses.
const (
	ChoreStatusActive  = "active"
	ChoreStatusPaused  = "paused"
	ChoreStatusRetired = "retired"
)

// ChoreStatuses lists the recognized chore status values.
var ChoreStatuses = []string{
	ChoreStatusActive,
	ChoreStatusPaused,
	ChoreStatusRetired,
}

// ValidChoreStatus reports whether s is a recognized chore status.
func ValidChoreStatus(s string) bool {
	for _, v := range ChoreStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Chore is a recurring or routine obligation. The recurrence flag is
// normalized to a strict two-valued representation on every write.
type Chore struct {
	ChoreID      string
	Title        string
	Description  string
	Status       string
	IsRecurring  bool
	Frequency    string // Free text, e.g. "weekly"; meaningful when recurring.
	GroupID      string
	SourceNoteID string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ChoreUpdate carries the fields of a partial chore update.
type ChoreUpdate struct {
	Title        *string
	Description  *string
	Status       *string
	IsRecurring  *bool
	Frequency    *string
	GroupID      *string
	SourceNoteID *string
}

// Empty reports whether the update supplies no fields.
func (u ChoreUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Status == nil &&
		u.IsRecurring == nil && u.Frequency == nil && u.GroupID == nil &&
		u.SourceNoteID == nil
}
