// Task repository for the organization store.

package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

const taskColumns = "task_id, title, description, status, group_id, source_note_id, created_at, updated_at"

// CreateTask validates the input, assigns a fresh identifier and defaults,
// and persists the task together with any seeded tags in one transaction.
// The passed struct is filled in and returned.
func (s *OrgStore) CreateTask(t *types.Task) (*types.Task, error) {
	if strings.TrimSpace(t.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", types.ErrValidation)
	}
	if t.Status == "" {
		t.Status = types.TaskStatusNotStarted
	} else if !types.ValidTaskStatus(t.Status) {
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidStatus, t.Status)
	}

	now := time.Now().UTC()
	t.TaskID = newUUID()
	t.CreatedAt = now
	t.UpdatedAt = now

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO tasks ("+taskColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		t.TaskID, t.Title, t.Description, t.Status, t.GroupID, t.SourceNoteID,
		formatTime(t.CreatedAt), formatTime(t.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting task: %w", err)
	}

	if len(t.Tags) > 0 {
		if err := replaceTagsTx(tx, taskTagSpec, t.TaskID, t.Tags); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing task: %w", err)
	}

	s.log.Debug("task created", zap.String("id", t.TaskID))
	return t, nil
}

// GetTask retrieves a task by ID. A missing task is a normal outcome:
// the result is (nil, nil), never an error.
func (s *OrgStore) GetTask(id string) (*types.Task, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}

	row := s.db.QueryRow("SELECT "+taskColumns+" FROM tasks WHERE task_id = ?", id)
	t, err := scanTask(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting task %s: %w", id, err)
	}

	t.Tags, err = s.loadTags(taskTagSpec, id)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ListTasks returns all tasks in reverse-chronological creation order, each
// enriched with its tag set.
func (s *OrgStore) ListTasks() ([]*types.Task, error) {
	rows, err := s.db.Query("SELECT " + taskColumns + " FROM tasks ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("fetching tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*types.Task{}
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}

	for _, t := range tasks {
		if t.Tags, err = s.loadTags(taskTagSpec, t.TaskID); err != nil {
			return nil, err
		}
	}
	return tasks, nil
}

// UpdateTask applies the supplied fields to the task. A nil field is left
// untouched; a non-nil field overwrites unconditionally, including to the
// empty value. An update supplying no fields returns the current task
// without touching the update timestamp.
func (s *OrgStore) UpdateTask(id string, u types.TaskUpdate) (*types.Task, error) {
	current, err := s.GetTask(id)
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
		if !types.ValidTaskStatus(*u.Status) {
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
		"UPDATE tasks SET title = ?, description = ?, status = ?, group_id = ?, source_note_id = ?, updated_at = ? WHERE task_id = ?",
		current.Title, current.Description, current.Status, current.GroupID,
		current.SourceNoteID, formatTime(current.UpdatedAt), id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating task %s: %w", id, err)
	}

	s.log.Debug("task updated", zap.String("id", id))
	return current, nil
}

// DeleteTask removes the task and cascades its tag rows, note links, and
// attachments inside one transaction. A missing id returns ErrNotFound so
// the caller gets a distinguishable signal.
func (s *OrgStore) DeleteTask(id string) error {
	return s.deleteEntity("tasks", "task_id", id, types.ItemTask, &taskTagSpec)
}

func scanTask(scan func(...any) error) (*types.Task, error) {
	var t types.Task
	var createdAt, updatedAt string
	if err := scan(
		&t.TaskID, &t.Title, &t.Description, &t.Status, &t.GroupID,
		&t.SourceNoteID, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	var err error
	if t.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if t.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
