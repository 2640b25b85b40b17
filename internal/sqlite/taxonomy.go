// ProjectType and Group taxonomy accessors. Both are small enumerable
// tables whose default-flagged rows are seeded on first open and protected
// from deletion.

package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

const (
	projectTypeColumns = "type_id, name, color, icon, is_default, created_at"
	groupColumns       = "group_id, name, color, icon, is_default, created_at"
)

// CreateProjectType validates and persists a new (non-default) type.
func (s *OrgStore) CreateProjectType(pt *types.ProjectType) (*types.ProjectType, error) {
	if strings.TrimSpace(pt.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", types.ErrValidation)
	}

	pt.TypeID = newUUID()
	pt.IsDefault = false
	pt.CreatedAt = time.Now().UTC()

	_, err := s.db.Exec(
		"INSERT INTO project_types ("+projectTypeColumns+") VALUES (?, ?, ?, ?, 0, ?)",
		pt.TypeID, pt.Name, pt.Color, pt.Icon, formatTime(pt.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting project type: %w", err)
	}

	s.log.Debug("project type created", zap.String("id", pt.TypeID), zap.String("name", pt.Name))
	return pt, nil
}

// GetProjectType retrieves a type by ID; missing returns (nil, nil).
func (s *OrgStore) GetProjectType(id string) (*types.ProjectType, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	row := s.db.QueryRow("SELECT "+projectTypeColumns+" FROM project_types WHERE type_id = ?", id)
	pt, err := scanProjectType(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting project type %s: %w", id, err)
	}
	return pt, nil
}

// ListProjectTypes returns all types ordered by name.
func (s *OrgStore) ListProjectTypes() ([]*types.ProjectType, error) {
	rows, err := s.db.Query("SELECT " + projectTypeColumns + " FROM project_types ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("fetching project types: %w", err)
	}
	defer rows.Close()

	list := []*types.ProjectType{}
	for rows.Next() {
		pt, err := scanProjectType(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating project type: %w", err)
		}
		list = append(list, pt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating project types: %w", err)
	}
	return list, nil
}

// UpdateProjectType applies the supplied fields. The default flag is never
// updatable.
func (s *OrgStore) UpdateProjectType(id string, u types.TaxonomyUpdate) (*types.ProjectType, error) {
	current, err := s.GetProjectType(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, types.ErrNotFound
	}
	if u.Empty() {
		return current, nil
	}

	if u.Name != nil {
		current.Name = *u.Name
	}
	if u.Color != nil {
		current.Color = *u.Color
	}
	if u.Icon != nil {
		current.Icon = *u.Icon
	}

	_, err = s.db.Exec(
		"UPDATE project_types SET name = ?, color = ?, icon = ? WHERE type_id = ?",
		current.Name, current.Color, current.Icon, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating project type %s: %w", id, err)
	}
	return current, nil
}

// DeleteProjectType removes a type and its junction rows. Default-flagged
// rows are refused with ErrDefaultProtected rather than silently ignored,
// so callers can tell the refusal apart from success.
func (s *OrgStore) DeleteProjectType(id string) error {
	pt, err := s.GetProjectType(id)
	if err != nil {
		return err
	}
	if pt == nil {
		return types.ErrNotFound
	}
	if pt.IsDefault {
		return types.ErrDefaultProtected
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM project_project_types WHERE type_id = ?", id); err != nil {
		return fmt.Errorf("deleting type assignments: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM project_types WHERE type_id = ?", id); err != nil {
		return fmt.Errorf("deleting project type: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing deletion: %w", err)
	}

	s.log.Debug("project type deleted", zap.String("id", id))
	return nil
}

// CreateGroup validates and persists a new (non-default) group.
func (s *OrgStore) CreateGroup(g *types.Group) (*types.Group, error) {
	if strings.TrimSpace(g.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", types.ErrValidation)
	}

	g.GroupID = newUUID()
	g.IsDefault = false
	g.CreatedAt = time.Now().UTC()

	_, err := s.db.Exec(
		"INSERT INTO groups ("+groupColumns+") VALUES (?, ?, ?, ?, 0, ?)",
		g.GroupID, g.Name, g.Color, g.Icon, formatTime(g.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting group: %w", err)
	}

	s.log.Debug("group created", zap.String("id", g.GroupID), zap.String("name", g.Name))
	return g, nil
}

// GetGroup retrieves a group by ID; missing returns (nil, nil).
func (s *OrgStore) GetGroup(id string) (*types.Group, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	row := s.db.QueryRow("SELECT "+groupColumns+" FROM groups WHERE group_id = ?", id)
	g, err := scanGroup(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting group %s: %w", id, err)
	}
	return g, nil
}

// ListGroups returns all groups ordered by name.
func (s *OrgStore) ListGroups() ([]*types.Group, error) {
	rows, err := s.db.Query("SELECT " + groupColumns + " FROM groups ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("fetching groups: %w", err)
	}
	defer rows.Close()

	list := []*types.Group{}
	for rows.Next() {
		g, err := scanGroup(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating group: %w", err)
		}
		list = append(list, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating groups: %w", err)
	}
	return list, nil
}

// UpdateGroup applies the supplied fields. The default flag is never
// updatable.
func (s *OrgStore) UpdateGroup(id string, u types.TaxonomyUpdate) (*types.Group, error) {
	current, err := s.GetGroup(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, types.ErrNotFound
	}
	if u.Empty() {
		return current, nil
	}

	if u.Name != nil {
		current.Name = *u.Name
	}
	if u.Color != nil {
		current.Color = *u.Color
	}
	if u.Icon != nil {
		current.Icon = *u.Icon
	}

	_, err = s.db.Exec(
		"UPDATE groups SET name = ?, color = ?, icon = ? WHERE group_id = ?",
		current.Name, current.Color, current.Icon, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating group %s: %w", id, err)
	}
	return current, nil
}

// DeleteGroup removes a group and clears the group reference on any entity
// that pointed at it, all in one transaction. Default-flagged groups are
// refused with ErrDefaultProtected.
func (s *OrgStore) DeleteGroup(id string) error {
	g, err := s.GetGroup(id)
	if err != nil {
		return err
	}
	if g == nil {
		return types.ErrNotFound
	}
	if g.IsDefault {
		return types.ErrDefaultProtected
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"tasks", "chores", "ideas", "projects", "org_notes"} {
		if _, err := tx.Exec(
			"UPDATE "+table+" SET group_id = '' WHERE group_id = ?", id,
		); err != nil {
			return fmt.Errorf("clearing group reference on %s: %w", table, err)
		}
	}
	if _, err := tx.Exec("DELETE FROM groups WHERE group_id = ?", id); err != nil {
		return fmt.Errorf("deleting group: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing deletion: %w", err)
	}

	s.log.Debug("group deleted", zap.String("id", id))
	return nil
}

func scanProjectType(scan func(...any) error) (*types.ProjectType, error) {
	var pt types.ProjectType
	var isDefault int
	var createdAt string
	if err := scan(&pt.TypeID, &pt.Name, &pt.Color, &pt.Icon, &isDefault, &createdAt); err != nil {
		return nil, err
	}
	pt.IsDefault = isDefault != 0
	var err error
	if pt.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &pt, nil
}

func scanGroup(scan func(...any) error) (*types.Group, error) {
	var g types.Group
	var isDefault int
	var createdAt string
	if err := scan(&g.GroupID, &g.Name, &g.Color, &g.Icon, &isDefault, &createdAt); err != nil {
		return nil, err
	}
	g.IsDefault = isDefault != 0
	var err error
	if g.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &g, nil
}
