// Polymorphic note-link maintenance. A link relates a corpus note to one
// organization entity; the discriminator is validated against the closed
// item-type enumeration before every write, and the unique index makes
// insertion idempotent.

package sqlite

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// LinkNote records a link from a corpus note to an organization entity.
// Duplicate (note, type, id) triples collapse to one row.
func (s *OrgStore) LinkNote(noteID string, itemType types.ItemType, itemID string) error {
	link := types.NoteLink{NoteID: noteID, ItemType: itemType, ItemID: itemID}
	if err := link.Validate(); err != nil {
		return err
	}

	_, err := s.db.Exec(
		"INSERT OR IGNORE INTO note_links (note_id, item_type, item_id, created_at) VALUES (?, ?, ?, ?)",
		noteID, string(itemType), itemID, formatTime(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("inserting note link: %w", err)
	}

	s.log.Debug("note linked",
		zap.String("note", noteID),
		zap.String("item_type", string(itemType)),
		zap.String("item", itemID))
	return nil
}

// UnlinkNote removes an exact (note, type, id) link. Removing a link that
// does not exist is a no-op.
func (s *OrgStore) UnlinkNote(noteID string, itemType types.ItemType, itemID string) error {
	link := types.NoteLink{NoteID: noteID, ItemType: itemType, ItemID: itemID}
	if err := link.Validate(); err != nil {
		return err
	}

	_, err := s.db.Exec(
		"DELETE FROM note_links WHERE note_id = ? AND item_type = ? AND item_id = ?",
		noteID, string(itemType), itemID,
	)
	if err != nil {
		return fmt.Errorf("deleting note link: %w", err)
	}
	return nil
}

// NoteLinks returns all links from the given note, newest first.
func (s *OrgStore) NoteLinks(noteID string) ([]types.NoteLink, error) {
	if noteID == "" {
		return nil, types.ErrInvalidID
	}
	return s.queryLinks("note_id = ?", noteID)
}

// LinksForItem returns all links pointing at the given entity.
func (s *OrgStore) LinksForItem(itemType types.ItemType, itemID string) ([]types.NoteLink, error) {
	if !itemType.Valid() {
		return nil, types.ErrInvalidItemType
	}
	if itemID == "" {
		return nil, types.ErrInvalidID
	}
	return s.queryLinks("item_type = ? AND item_id = ?", string(itemType), itemID)
}

// UnlinkAllForNote removes every link from the given note. Called by the
// transport layer alongside a corpus permanent delete, since the corpus
// store cannot reach into this one.
func (s *OrgStore) UnlinkAllForNote(noteID string) error {
	if noteID == "" {
		return types.ErrInvalidID
	}
	if _, err := s.db.Exec("DELETE FROM note_links WHERE note_id = ?", noteID); err != nil {
		return fmt.Errorf("deleting note links: %w", err)
	}
	return nil
}

func (s *OrgStore) queryLinks(where string, args ...any) ([]types.NoteLink, error) {
	rows, err := s.db.Query(
		"SELECT note_id, item_type, item_id, created_at FROM note_links WHERE "+where+" ORDER BY created_at DESC",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("fetching note links: %w", err)
	}
	defer rows.Close()

	links := []types.NoteLink{}
	for rows.Next() {
		var l types.NoteLink
		var itemType, createdAt string
		if err := rows.Scan(&l.NoteID, &itemType, &l.ItemID, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning note link: %w", err)
		}
		l.ItemType = types.ItemType(itemType)
		if l.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating note links: %w", err)
	}
	return links, nil
}
