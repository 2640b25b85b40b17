// Shared cascading delete for organization entities. Removing an entity
// also removes its tag rows, junction rows, note links, and attachment
// associations, all inside one transaction.

package sqlite

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// deleteEntity removes one entity row and everything that references it.
// table and idCol come from closed in-package specs. tags may be nil for
// untagged entity types; extra runs inside the same transaction for
// per-entity cascades (the project-type junction).
func (s *OrgStore) deleteEntity(table, idCol, id string, itemType types.ItemType, tags *tagSpec, extra ...func(*sql.Tx) error) error {
	if id == "" {
		return types.ErrInvalidID
	}

	exists, err := s.rowExists(table, idCol, id)
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

	if tags != nil {
		if _, err := tx.Exec(
			"DELETE FROM "+tags.tagTable+" WHERE "+tags.entityIDCol+" = ?", id,
		); err != nil {
			return fmt.Errorf("deleting %s: %w", tags.tagTable, err)
		}
	}

	for _, fn := range extra {
		if err := fn(tx); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(
		"DELETE FROM note_links WHERE item_type = ? AND item_id = ?",
		string(itemType), id,
	); err != nil {
		return fmt.Errorf("deleting note links: %w", err)
	}

	if _, err := tx.Exec(
		"DELETE FROM file_attachments WHERE item_type = ? AND item_id = ?",
		string(itemType), id,
	); err != nil {
		return fmt.Errorf("deleting attachments: %w", err)
	}

	if _, err := tx.Exec(
		"DELETE FROM "+table+" WHERE "+idCol+" = ?", id,
	); err != nil {
		return fmt.Errorf("deleting %s row: %w", table, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing deletion: %w", err)
	}

	s.log.Debug("entity deleted", zap.String("table", table), zap.String("id", id))
	return nil
}
