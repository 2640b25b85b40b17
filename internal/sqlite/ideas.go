// Idea repository for the organization store.

package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

const ideaColumns = "idea_id, title, description, status, group_id, source_note_id, created_at, updated_at"

// CreateIdea validates the input, assigns an identifier and defaults, and
// persists the idea with any seeded tags in one transaction.
func (s *OrgStore) CreateIdea(i *types.Idea) (*types.Idea, error) {
	if strings.TrimSpace(i.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", types.ErrValidation)
	}
	if i.Status == "" {
		i.Status = types.IdeaStatusNew
	} else if !types.ValidIdeaStatus(i.Status) {
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidStatus, i.Status)
	}

	now := time.Now().UTC()
	i.IdeaID = newUUID()
	i.CreatedAt = now
	i.UpdatedAt = now

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO ideas ("+ideaColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		i.IdeaID, i.Title, i.Description, i.Status, i.GroupID, i.SourceNoteID,
		formatTime(i.CreatedAt), formatTime(i.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting idea: %w", err)
	}

	if len(i.Tags) > 0 {
		if err := replaceTagsTx(tx, ideaTagSpec, i.IdeaID, i.Tags); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing idea: %w", err)
	}

	s.log.Debug("idea created", zap.String("id", i.IdeaID))
	return i, nil
}

// GetIdea retrieves an idea by ID; a missing idea returns (nil, nil).
func (s *OrgStore) GetIdea(id string) (*types.Idea, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}

	row := s.db.QueryRow("SELECT "+ideaColumns+" FROM ideas WHERE idea_id = ?", id)
	i, err := scanIdea(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting idea %s: %w", id, err)
	}

	i.Tags, err = s.loadTags(ideaTagSpec, id)
	if err != nil {
		return nil, err
	}
	return i, nil
}

// ListIdeas returns all ideas in reverse-chronological creation order, each
// enriched with its tag set.
func (s *OrgStore) ListIdeas() ([]*types.Idea, error) {
	rows, err := s.db.Query("SELECT " + ideaColumns + " FROM ideas ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("fetching ideas: %w", err)
	}
	defer rows.Close()

	ideas := []*types.Idea{}
	for rows.Next() {
		i, err := scanIdea(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating idea: %w", err)
		}
		ideas = append(ideas, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ideas: %w", err)
	}

	for _, i := range ideas {
		if i.Tags, err = s.loadTags(ideaTagSpec, i.IdeaID); err != nil {
			return nil, err
		}
	}
	return ideas, nil
}

// UpdateIdea applies the supplied fields; see UpdateTask for the partial
// update contract.
func (s *OrgStore) UpdateIdea(id string, u types.IdeaUpdate) (*types.Idea, error) {
	current, err := s.GetIdea(id)
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
		if !types.ValidIdeaStatus(*u.Status) {
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
		"UPDATE ideas SET title = ?, description = ?, status = ?, group_id = ?, source_note_id = ?, updated_at = ? WHERE idea_id = ?",
		current.Title, current.Description, current.Status, current.GroupID,
		current.SourceNoteID, formatTime(current.UpdatedAt), id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating idea %s: %w", id, err)
	}

	s.log.Debug("idea updated", zap.String("id", id))
	return current, nil
}

// DeleteIdea removes the idea and cascades its tag rows, note links, and
// attachments.
func (s *OrgStore) DeleteIdea(id string) error {
	return s.deleteEntity("ideas", "idea_id", id, types.ItemIdea, &ideaTagSpec)
}

func scanIdea(scan func(...any) error) (*types.Idea, error) {
	var i types.Idea
	var createdAt, updatedAt string
	if err := scan(
		&i.IdeaID, &i.Title, &i.Description, &i.Status, &i.GroupID,
		&i.SourceNoteID, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	var err error
	if i.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if i.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &i, nil
}
