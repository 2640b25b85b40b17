package types

import "time"

// Project statuses.
const (
	ProjectStatusPlanning  = "planning"
	ProjectStatusActive    = "active"
	ProjectStatusOnHold    = "on_hold"
	ProjectStatusCompleted = "completed"
	ProjectStatusArchived  = "archived"
)

// ProjectStatuses lists the recognized project status values.
var ProjectStatuses = []string{
	ProjectStatusPlanning,
	ProjectStatusActive,
	ProjectStatusOnHold,
	ProjectStatusCompleted,
	ProjectStatusArchived,
}

// ValidProjectStatus reports whether s is a recognized project status.
func ValidProjectStatus(s string) bool {
	for _, v := range ProjectStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Project is a larger undertaking that tasks, ideas, and notes relate to.
// Types carries the assigned ProjectTypes, resolved inline on read.
type Project struct {
	ProjectID    string
	Title        string
	Description  string
	Status       string
	GroupID      string
	SourceNoteID string
	Tags         []string
	Types        []ProjectType
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProjectUpdate carries the fields of a partial project update.
type ProjectUpdate struct {
	Title        *string
	Description  *string
	Status       *string
	GroupID      *string
	SourceNoteID *string
}

// Empty reports whether the update supplies no fields.
func (u ProjectUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Status == nil &&
		u.GroupID == nil && u.SourceNoteID == nil
}
