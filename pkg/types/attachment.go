package types

import "time"

// FileAttachment associates an uploaded file with an organization entity.
// The upload handling itself lives outside this core; only the association
// row is stored here.
type FileAttachment struct {
	AttachmentID string
	ItemType     ItemType
	ItemID       string
	Filename     string
	Path         string
	SizeBytes    int64
	CreatedAt    time.Time
}

// Validate checks the attachment fields before any write is attempted.
func (a FileAttachment) Validate() error {
	if a.ItemID == "" {
		return ErrInvalidID
	}
	if !a.ItemType.Valid() {
		return ErrInvalidItemType
	}
	if a.Filename == "" {
		return ErrValidation
	}
	return nil
}
