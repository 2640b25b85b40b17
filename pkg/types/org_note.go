package types

import "time"

// OrgNote statuses.
const (
	OrgNoteStatusActive   = "active"
	OrgNoteStatusArchived = "archived"
)

// OrgNoteStatuses lists the recognized organization-note status values.
var OrgNoteStatuses = []string{
	OrgNoteStatusActive,
	OrgNoteStatusArchived,
}

// ValidOrgNoteStatus reports whether s is a recognized org-note status.
func ValidOrgNoteStatus(s string) bool {
	for _, v := range OrgNoteStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// OrgNote is a curated reference note in the organization store, distinct
// from the immutable corpus notes it may cite.
type OrgNote struct {
	OrgNoteID    string
	Title        string
	Content      string // Markdown body.
	Status       string
	GroupID      string
	SourceNoteID string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OrgNoteUpdate carries the fields of a partial org-note update.
type OrgNoteUpdate struct {
	Title        *string
	Content      *string
	Status       *string
	GroupID      *string
	SourceNoteID *string
}

// Empty reports whether the update supplies no fields.
func (u OrgNoteUpdate) Empty() bool {
	return u.Title == nil && u.Content == nil && u.Status == nil &&
		u.GroupID == nil && u.SourceNoteID == nil
}
