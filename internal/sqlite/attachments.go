package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

const attachmentColumns = "attachment_id, item_type, item_id, filename, path, size_bytes, created_at"

// AddAttachment records a file attachment against an organization entity.
// The target entity must exist.
func (s *OrgStore) AddAttachment(a types.FileAttachment) (*types.FileAttachment, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	table, idCol := itemTable(a.ItemType)
	exists, err := s.rowExists(table, idCol, a.ItemID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, types.ErrNotFound
	}

	a.AttachmentID = newUUID()
	a.CreatedAt = time.Now().UTC()

	_, err = s.db.Exec(
		"INSERT INTO file_attachments ("+attachmentColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		a.AttachmentID, string(a.ItemType), a.ItemID, a.Filename, a.Path, a.SizeBytes, formatTime(a.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting attachment: %w", err)
	}

	s.log.Debug("attachment added",
		zap.String("attachment", a.AttachmentID),
		zap.String("item_type", string(a.ItemType)),
		zap.String("item", a.ItemID))
	return &a, nil
}

// GetAttachment fetches a single attachment, or nil when absent.
func (s *OrgStore) GetAttachment(id string) (*types.FileAttachment, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	row := s.db.QueryRow("SELECT "+attachmentColumns+" FROM file_attachments WHERE attachment_id = ?", id)
	a, err := scanAttachment(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ListAttachments returns the attachments on one entity, newest first.
func (s *OrgStore) ListAttachments(itemType types.ItemType, itemID string) ([]*types.FileAttachment, error) {
	if !itemType.Valid() {
		return nil, types.ErrInvalidItemType
	}
	if itemID == "" {
		return nil, types.ErrInvalidID
	}

	rows, err := s.db.Query(
		"SELECT "+attachmentColumns+" FROM file_attachments WHERE item_type = ? AND item_id = ? ORDER BY created_at DESC",
		string(itemType), itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("fetching attachments: %w", err)
	}
	defer rows.Close()

	attachments := []*types.FileAttachment{}
	for rows.Next() {
		a, err := scanAttachment(rows.Scan)
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating attachments: %w", err)
	}
	return attachments, nil
}

// DeleteAttachment removes a single attachment row. The referenced file on
// disk is the caller's concern.
func (s *OrgStore) DeleteAttachment(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	res, err := s.db.Exec("DELETE FROM file_attachments WHERE attachment_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting attachment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting attachment: %w", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// itemTable maps a validated item type to its entity table and id column.
func itemTable(itemType types.ItemType) (table, idCol string) {
	switch itemType {
	case types.ItemTask:
		return "tasks", "task_id"
	case types.ItemChore:
		return "chores", "chore_id"
	case types.ItemIdea:
		return "ideas", "idea_id"
	default:
		return "projects", "project_id"
	}
}

func scanAttachment(scan func(...any) error) (*types.FileAttachment, error) {
	var a types.FileAttachment
	var itemType, createdAt string
	if err := scan(&a.AttachmentID, &itemType, &a.ItemID, &a.Filename, &a.Path, &a.SizeBytes, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning attachment: %w", err)
	}
	a.ItemType = types.ItemType(itemType)
	var err error
	if a.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &a, nil
}
