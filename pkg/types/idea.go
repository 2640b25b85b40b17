package types

import "time"

// Idea statuses.
const (
	IdeaStatusNew       = "new"
	IdeaStatusExploring = "exploring"
	IdeaStatusAdopted   = "adopted"
	IdeaStatusDropped   = "dropped"
)

// IdeaStatuses lists the recognized idea status values.
var IdeaStatuses = []string{
	IdeaStatusNew,
	IdeaStatusExploring,
	IdeaStatusAdopted,
	IdeaStatusDropped,
}

// ValidIdeaStatus reports whether s is a recognized idea status.
func ValidIdeaStatus(s string) bool {
	for _, v := range IdeaStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Idea is a captured concept worth keeping around.
type Idea struct {
	IdeaID       string
	Title        string
	Description  string
	Status       string
	GroupID      string
	SourceNoteID string
	Tags         []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IdeaUpdate carries the fields of a partial idea update.
type IdeaUpdate struct {
	Title        *string
	Description  *string
	Status       *string
	GroupID      *string
	SourceNoteID *string
}

// Empty reports whether the update supplies no fields.
func (u IdeaUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Status == nil &&
		u.GroupID == nil && u.SourceNoteID == nil
}
