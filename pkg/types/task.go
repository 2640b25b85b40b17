package types

import "time"

// Task statuses.
const (
	TaskStatusNotStarted = "not_started"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
	TaskStatusBlocked    = "blocked"
)

// TaskStatuses lists the recognized task status values.
var TaskStatuses = []string{
	TaskStatusNotStarted,
	TaskStatusInProgress,
	TaskStatusCompleted,
	TaskStatusBlocked,
}

// ValidTaskStatus reports whether s is a recognized task status.
func ValidTaskStatus(s string) bool {
	for _, v := range TaskStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Task is a curated action item, usually promoted from a corpus note.
type Task struct {
	TaskID       string    // UUID v7, generated on creation.
	Title        string    // Required, non-blank.
	Description  string    // Free-text/markdown.
	Status       string    // One of the TaskStatus constants.
	GroupID      string    // Optional group reference; empty means none.
	SourceNoteID string    // Optional provenance reference into the corpus.
	Tags         []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TaskUpdate carries the fields of a partial task update. Each field is
// independently present-or-absent; a nil field is left untouched, a non-nil
// field overwrites unconditionally, including to the empty value.
type TaskUpdate struct {
	Title        *string
	Description  *string
	Status       *string
	GroupID      *string
	SourceNoteID *string
}

// Empty reports whether the update supplies no fields.
func (u TaskUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Status == nil &&
		u.GroupID == nil && u.SourceNoteID == nil
}
