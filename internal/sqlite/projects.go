// Project repository for the organization store, including the
// project/project-type junction.

package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

const projectColumns = "project_id, title, description, status, group_id, source_note_id, created_at, updated_at"

// CreateProject validates the input, assigns an identifier and defaults,
// and persists the project with any seeded tags in one transaction.
func (s *OrgStore) CreateProject(p *types.Project) (*types.Project, error) {
	if strings.TrimSpace(p.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", types.ErrValidation)
	}
	if p.Status == "" {
		p.Status = types.ProjectStatusPlanning
	} else if !types.ValidProjectStatus(p.Status) {
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidStatus, p.Status)
	}

	now := time.Now().UTC()
	p.ProjectID = newUUID()
	p.CreatedAt = now
	p.UpdatedAt = now

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO projects ("+projectColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		p.ProjectID, p.Title, p.Description, p.Status, p.GroupID, p.SourceNoteID,
		formatTime(p.CreatedAt), formatTime(p.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting project: %w", err)
	}

	if len(p.Tags) > 0 {
		if err := replaceTagsTx(tx, projectTagSpec, p.ProjectID, p.Tags); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing project: %w", err)
	}

	s.log.Debug("project created", zap.String("id", p.ProjectID))
	return p, nil
}

// GetProject retrieves a project by ID, enriched with its tag set and
// assigned project types. A missing project returns (nil, nil).
func (s *OrgStore) GetProject(id string) (*types.Project, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}

	row := s.db.QueryRow("SELECT "+projectColumns+" FROM projects WHERE project_id = ?", id)
	p, err := scanProject(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting project %s: %w", id, err)
	}

	if err := s.enrichProject(p); err != nil {
		return nil, err
	}
	return p, nil
}

// ListProjects returns all projects in reverse-chronological creation
// order. Each row resolves one level of related records inline: tag set and
// assigned project types. The per-row lookups are fine at expected volumes
// (hundreds of rows).
func (s *OrgStore) ListProjects() ([]*types.Project, error) {
	rows, err := s.db.Query("SELECT " + projectColumns + " FROM projects ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("fetching projects: %w", err)
	}
	defer rows.Close()

	projects := []*types.Project{}
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}

	for _, p := range projects {
		if err := s.enrichProject(p); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

// UpdateProject applies the supplied fields; see UpdateTask for the partial
// update contract.
func (s *OrgStore) UpdateProject(id string, u types.ProjectUpdate) (*types.Project, error) {
	current, err := s.GetProject(id)
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
		if !types.ValidProjectStatus(*u.Status) {
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
		"UPDATE projects SET title = ?, description = ?, status = ?, group_id = ?, source_note_id = ?, updated_at = ? WHERE project_id = ?",
		current.Title, current.Description, current.Status, current.GroupID,
		current.SourceNoteID, formatTime(current.UpdatedAt), id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating project %s: %w", id, err)
	}

	s.log.Debug("project updated", zap.String("id", id))
	return current, nil
}

// DeleteProject removes the project and cascades its tag rows, type
// junction rows, note links, and attachments.
func (s *OrgStore) DeleteProject(id string) error {
	return s.deleteEntity("projects", "project_id", id, types.ItemProject, &projectTagSpec,
		func(tx *sql.Tx) error {
			if _, err := tx.Exec("DELETE FROM project_project_types WHERE project_id = ?", id); err != nil {
				return fmt.Errorf("deleting project type assignments: %w", err)
			}
			return nil
		})
}

// SetProjectTypes replaces the project's type assignments with typeIDs,
// following the same delete-then-insert discipline as tag replacement.
// Every referenced type must exist.
func (s *OrgStore) SetProjectTypes(projectID string, typeIDs []string) error {
	if projectID == "" {
		return types.ErrInvalidID
	}

	exists, err := s.rowExists("projects", "project_id", projectID)
	if err != nil {
		return err
	}
	if !exists {
		return types.ErrNotFound
	}

	for _, typeID := range typeIDs {
		ok, err := s.rowExists("project_types", "type_id", typeID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("project type %s: %w", typeID, types.ErrNotFound)
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM project_project_types WHERE project_id = ?", projectID); err != nil {
		return fmt.Errorf("clearing project type assignments: %w", err)
	}
	for _, typeID := range typeIDs {
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO project_project_types (project_id, type_id) VALUES (?, ?)",
			projectID, typeID,
		); err != nil {
			return fmt.Errorf("assigning project type %s: %w", typeID, err)
		}
	}

	return tx.Commit()
}

// enrichProject resolves the project's tag set and assigned types.
func (s *OrgStore) enrichProject(p *types.Project) error {
	var err error
	if p.Tags, err = s.loadTags(projectTagSpec, p.ProjectID); err != nil {
		return err
	}

	rows, err := s.db.Query(
		`SELECT pt.type_id, pt.name, pt.color, pt.icon, pt.is_default, pt.created_at
		 FROM project_types pt
		 INNER JOIN project_project_types j ON j.type_id = pt.type_id
		 WHERE j.project_id = ?
		 ORDER BY pt.name`,
		p.ProjectID,
	)
	if err != nil {
		return fmt.Errorf("querying project types for %s: %w", p.ProjectID, err)
	}
	defer rows.Close()

	p.Types = []types.ProjectType{}
	for rows.Next() {
		pt, err := scanProjectType(rows.Scan)
		if err != nil {
			return fmt.Errorf("hydrating project type: %w", err)
		}
		p.Types = append(p.Types, *pt)
	}
	return rows.Err()
}

func scanProject(scan func(...any) error) (*types.Project, error) {
	var p types.Project
	var createdAt, updatedAt string
	if err := scan(
		&p.ProjectID, &p.Title, &p.Description, &p.Status, &p.GroupID,
		&p.SourceNoteID, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	var err error
	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
