// Organization-note repository. OrgNotes are curated reference notes, not
// to be confused with the immutable corpus notes they may cite.

package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

const orgNoteColumns = "org_note_id, title, content, status, group_id, source_note_id, created_at, updated_at"

// CreateOrgNote validates the input, assigns an identifier and defaults,
// and persists the note.
func (s *OrgStore) CreateOrgNote(n *types.OrgNote) (*types.OrgNote, error) {
	if strings.TrimSpace(n.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", types.ErrValidation)
	}
	if n.Status == "" {
		n.Status = types.OrgNoteStatusActive
	} else if !types.ValidOrgNoteStatus(n.Status) {
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidStatus, n.Status)
	}

	now := time.Now().UTC()
	n.OrgNoteID = newUUID()
	n.CreatedAt = now
	n.UpdatedAt = now

	_, err := s.db.Exec(
		"INSERT INTO org_notes ("+orgNoteColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		n.OrgNoteID, n.Title, n.Content, n.Status, n.GroupID, n.SourceNoteID,
		formatTime(n.CreatedAt), formatTime(n.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting org note: %w", err)
	}

	s.log.Debug("org note created", zap.String("id", n.OrgNoteID))
	return n, nil
}

// GetOrgNote retrieves a note by ID; a missing note returns (nil, nil).
func (s *OrgStore) GetOrgNote(id string) (*types.OrgNote, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}

	row := s.db.QueryRow("SELECT "+orgNoteColumns+" FROM org_notes WHERE org_note_id = ?", id)
	n, err := scanOrgNote(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting org note %s: %w", id, err)
	}
	return n, nil
}

// ListOrgNotes returns all notes in reverse-chronological creation order.
func (s *OrgStore) ListOrgNotes() ([]*types.OrgNote, error) {
	rows, err := s.db.Query("SELECT " + orgNoteColumns + " FROM org_notes ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("fetching org notes: %w", err)
	}
	defer rows.Close()

	notes := []*types.OrgNote{}
	for rows.Next() {
		n, err := scanOrgNote(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating org note: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating org notes: %w", err)
	}
	return notes, nil
}

// UpdateOrgNote applies the supplied fields; see UpdateTask for the partial
// update contract.
func (s *OrgStore) UpdateOrgNote(id string, u types.OrgNoteUpdate) (*types.OrgNote, error) {
	current, err := s.GetOrgNote(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, types.ErrNotFound
	}
	if u.Empty() {
		return current, nil
	}

	if u.Title != nil {
		current.Title = *u.Title
	}
	if u.Content != nil {
		current.Content = *u.Content
	}
	if u.Status != nil {
		if !types.ValidOrgNoteStatus(*u.Status) {
			return nil, fmt.Errorf("%w: %q", types.ErrInvalidStatus, *u.Status)
		}
		current.Status = *u.Status
	}
	if u.GroupID != nil {
		current.GroupID = *u.GroupID
	}
	if u.SourceNoteID != nil {
		current.SourceNoteID = *u.SourceNoteID
	}
	current.UpdatedAt = time.Now().UTC()

	_, err = s.db.Exec(
		"UPDATE org_notes SET title = ?, content = ?, status = ?, group_id = ?, source_note_id = ?, updated_at = ? WHERE org_note_id = ?",
		current.Title, current.Content, current.Status, current.GroupID,
		current.SourceNoteID, formatTime(current.UpdatedAt), id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating org note %s: %w", id, err)
	}

	s.log.Debug("org note updated", zap.String("id", id))
	return current, nil
}

// DeleteOrgNote removes the note. OrgNotes are not a linkable item type, so
// there is nothing to cascade beyond the row itself.
func (s *OrgStore) DeleteOrgNote(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}

	exists, err := s.rowExists("org_notes", "org_note_id", id)
	if err != nil {
		return err
	}
	if !exists {
		return types.ErrNotFound
	}

	if _, err := s.db.Exec("DELETE FROM org_notes WHERE org_note_id = ?", id); err != nil {
		return fmt.Errorf("deleting org note: %w", err)
	}

	s.log.Debug("org note deleted", zap.String("id", id))
	return nil
}

func scanOrgNote(scan func(...any) error) (*types.OrgNote, error) {
	var n types.OrgNote
	var createdAt, updatedAt string
	if err := scan(
		&n.OrgNoteID, &n.Title, &n.Content, &n.Status, &n.GroupID,
		&n.SourceNoteID, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	var err error
	if n.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if n.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &n, nil
}
