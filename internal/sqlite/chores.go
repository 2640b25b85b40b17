// Chore repository for the organization store.

package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

const choreColumns = "chore_id, title, description, status, is_recurring, frequency, group_id, source_note_id, created_at, updated_at"

// CreateChore validates the input, assigns an identifier and defaults, and
// persists the chore. The recurrence flag is normalized to 0/1 on write.
func (s *OrgStore) CreateChore(c *types.Chore) (*types.Chore, error) {
	if strings.TrimSpace(c.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", types.ErrValidation)
	}
	if c.Status == "" {
		c.Status = types.ChoreStatusActive
	} else if !types.ValidChoreStatus(c.Status) {
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidStatus, c.Status)
	}

	now := time.Now().UTC()
	c.ChoreID = newUUID()
	c.CreatedAt = now
	c.UpdatedAt = now

	_, err := s.db.Exec(
		"INSERT INTO chores ("+choreColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		c.ChoreID, c.Title, c.Description, c.Status, boolToInt(c.IsRecurring),
		c.Frequency, c.GroupID, c.SourceNoteID,
		formatTime(c.CreatedAt), formatTime(c.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting chore: %w", err)
	}

	s.log.Debug("chore created", zap.String("id", c.ChoreID))
	return c, nil
}

// GetChore retrieves a chore by ID; a missing chore returns (nil, nil).
func (s *OrgStore) GetChore(id string) (*types.Chore, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}

	row := s.db.QueryRow("SELECT "+choreColumns+" FROM chores WHERE chore_id = ?", id)
	c, err := scanChore(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting chore %s: %w", id, err)
	}
	return c, nil
}

// ListChores returns all chores in reverse-chronological creation order.
func (s *OrgStore) ListChores() ([]*types.Chore, error) {
	rows, err := s.db.Query("SELECT " + choreColumns + " FROM chores ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("fetching chores: %w", err)
	}
	defer rows.Close()

	chores := []*types.Chore{}
	for rows.Next() {
		c, err := scanChore(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating chore: %w", err)
		}
		chores = append(chores, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating chores: %w", err)
	}
	return chores, nil
}

// UpdateChore applies the supplied fields; see UpdateTask for the partial
// update contract.
func (s *OrgStore) UpdateChore(id string, u types.ChoreUpdate) (*types.Chore, error) {
	current, err := s.GetChore(id)
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
	if u.Description != nil {
		current.Description = *u.Description
	}
	if u.Status != nil {
		if !types.ValidChoreStatus(*u.Status) {
			return nil, fmt.Errorf("%w: %q", types.ErrInvalidStatus, *u.Status)
		}
		current.Status = *u.Status
	}
	if u.IsRecurring != nil {
		current.IsRecurring = *u.IsRecurring
	}
	if u.Frequency != nil {
		current.Frequency = *u.Frequency
	}
	if u.GroupID != nil {
		current.GroupID = *u.GroupID
	}
	if u.SourceNoteID != nil {
		current.SourceNoteID = *u.SourceNoteID
	}
	current.UpdatedAt = time.Now().UTC()

	_, err = s.db.Exec(
		"UPDATE chores SET title = ?, description = ?, status = ?, is_recurring = ?, frequency = ?, group_id = ?, source_note_id = ?, updated_at = ? WHERE chore_id = ?",
		current.Title, current.Description, current.Status,
		boolToInt(current.IsRecurring), current.Frequency, current.GroupID,
		current.SourceNoteID, formatTime(current.UpdatedAt), id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating chore %s: %w", id, err)
	}

	s.log.Debug("chore updated", zap.String("id", id))
	return current, nil
}

// DeleteChore removes the chore and cascades its note links and attachments.
func (s *OrgStore) DeleteChore(id string) error {
	return s.deleteEntity("chores", "chore_id", id, types.ItemChore, nil)
}

func scanChore(scan func(...any) error) (*types.Chore, error) {
	var c types.Chore
	var recurring int
	var createdAt, updatedAt string
	if err := scan(
		&c.ChoreID, &c.Title, &c.Description, &c.Status, &recurring,
		&c.Frequency, &c.GroupID, &c.SourceNoteID, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	c.IsRecurring = recurring != 0
	var err error
	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if c.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
