package types

import "time"

// ItemType is the discriminator of a polymorphic reference to an
// organization entity. The set is closed; every write validates against it
// so no dangling discriminator can reach the store.
type ItemType string

// Linkable item types.
const (
	ItemTask    ItemType = "task"
	ItemChore   ItemType = "chore"
	ItemIdea    ItemType = "idea"
	ItemProject ItemType = "project"
)

// ItemTypes lists the recognized item types.
var ItemTypes = []ItemType{ItemTask, ItemChore, ItemIdea, ItemProject}

// Valid reports whether t is a recognized item type.
func (t ItemType) Valid() bool {
	switch t {
	case ItemTask, ItemChore, ItemIdea, ItemProject:
		return true
	}
	return false
}

// NoteLink relates a corpus note to an organization entity. The logical
// target table is selected by ItemType; at most one row exists per
// (note, type, id) triple.
type NoteLink struct {
	NoteID    string
	ItemType  ItemType
	ItemID    string
	CreatedAt time.Time
}

// Validate checks the link fields before any write is attempted.
func (l NoteLink) Validate() error {
	if l.NoteID == "" || l.ItemID == "" {
		return ErrInvalidID
	}
	if !l.ItemType.Valid() {
		return ErrInvalidItemType
	}
	return nil
}
