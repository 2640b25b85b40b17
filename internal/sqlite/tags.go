// Tag-set maintenance shared by the tagged entity types. Tag sets are
// replaced wholesale: delete-all-then-insert inside one transaction.

package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// tagSpec names the tag table and owning entity table for one entity type.
// Closed in-package table; identifiers never come from caller input.
type tagSpec struct {
	entityTable string
	entityIDCol string
	tagTable    string
}

var (
	taskTagSpec    = tagSpec{"tasks", "task_id", "task_tags"}
	ideaTagSpec    = tagSpec{"ideas", "idea_id", "idea_tags"}
	projectTagSpec = tagSpec{"projects", "project_id", "project_tags"}
)

// SetTaskTags replaces the task's tag set. An empty tags slice yields an
// empty set, not a no-op.
func (s *OrgStore) SetTaskTags(taskID string, tags []string) error {
	return s.setTags(taskTagSpec, taskID, tags)
}

// SetIdeaTags replaces the idea's tag set.
func (s *OrgStore) SetIdeaTags(ideaID string, tags []string) error {
	return s.setTags(ideaTagSpec, ideaID, tags)
}

// SetProjectTags replaces the project's tag set.
func (s *OrgStore) SetProjectTags(projectID string, tags []string) error {
	return s.setTags(projectTagSpec, projectID, tags)
}

func (s *OrgStore) setTags(spec tagSpec, id string, tags []string) error {
	if id == "" {
		return types.ErrInvalidID
	}

	exists, err := s.rowExists(spec.entityTable, spec.entityIDCol, id)
	if err != nil {
		return err
	}
	if !exists {
		return types.ErrNotFound
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := replaceTagsTx(tx, spec, id, tags); err != nil {
		return err
	}

	return tx.Commit()
}

// replaceTagsTx deletes all tag rows for the entity and inserts the new
// set. Duplicate strings in tags collapse through the primary key.
func replaceTagsTx(tx *sql.Tx, spec tagSpec, id string, tags []string) error {
	if _, err := tx.Exec(
		"DELETE FROM "+spec.tagTable+" WHERE "+spec.entityIDCol+" = ?", id,
	); err != nil {
		return fmt.Errorf("clearing %s: %w", spec.tagTable, err)
	}
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO "+spec.tagTable+" ("+spec.entityIDCol+", tag) VALUES (?, ?)",
			id, tag,
		); err != nil {
			return fmt.Errorf("inserting tag %q: %w", tag, err)
		}
	}
	return nil
}

// loadTags reads the entity's tag set in insertion-stable order.
func (s *OrgStore) loadTags(spec tagSpec, id string) ([]string, error) {
	rows, err := s.db.Query(
		"SELECT tag FROM "+spec.tagTable+" WHERE "+spec.entityIDCol+" = ? ORDER BY tag",
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", spec.tagTable, err)
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("scanning tag: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", spec.tagTable, err)
	}
	return tags, nil
}
