// Organization-store statistics aggregator. Every call recomputes the
// snapshot from the live tables; nothing is cached or incrementally
// maintained.

package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// OrganizationStats aggregates counts across every organization table. The
// corpus store contributes the reviewed-note count; pass nil to skip it.
func (s *OrgStore) OrganizationStats(corpus *CorpusStore) (types.OrgStats, error) {
	stats := types.OrgStats{
		TaskStatus:       map[string]int{},
		ChoreStatus:      map[string]int{},
		IdeaStatus:       map[string]int{},
		ProjectStatus:    map[string]int{},
		OrgNoteStatus:    map[string]int{},
		ProjectTypeUsage: map[string]int{},
	}

	totals := []struct {
		table string
		dst   *int
	}{
		{"tasks", &stats.TotalTasks},
		{"chores", &stats.TotalChores},
		{"ideas", &stats.TotalIdeas},
		{"projects", &stats.TotalProjects},
		{"org_notes", &stats.TotalOrgNotes},
		{"file_attachments", &stats.TotalAttachments},
	}
	for _, t := range totals {
		if err := s.db.QueryRow("SELECT COUNT(*) FROM " + t.table).Scan(t.dst); err != nil {
			return types.OrgStats{}, fmt.Errorf("counting %s: %w", t.table, err)
		}
	}

	breakdowns := []struct {
		table string
		dst   map[string]int
	}{
		{"tasks", stats.TaskStatus},
		{"chores", stats.ChoreStatus},
		{"ideas", stats.IdeaStatus},
		{"projects", stats.ProjectStatus},
		{"org_notes", stats.OrgNoteStatus},
	}
	for _, b := range breakdowns {
		if err := s.countByColumn(b.table, "status", b.dst); err != nil {
			return types.OrgStats{}, err
		}
	}

	rows, err := s.db.Query(
		"SELECT pt.name, COUNT(ppt.project_id) FROM project_types pt " +
			"JOIN project_project_types ppt ON ppt.type_id = pt.type_id " +
			"GROUP BY pt.name",
	)
	if err != nil {
		return types.OrgStats{}, fmt.Errorf("aggregating project type usage: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		var count int
		if err := rows.Scan(&name, &count); err != nil {
			return types.OrgStats{}, fmt.Errorf("scanning project type usage: %w", err)
		}
		stats.ProjectTypeUsage[name] = count
	}
	if err := rows.Err(); err != nil {
		return types.OrgStats{}, fmt.Errorf("iterating project type usage: %w", err)
	}

	if corpus != nil {
		reviewed, err := corpus.ReviewedNoteCount()
		if err != nil {
			return types.OrgStats{}, err
		}
		stats.ReviewedNotes = reviewed
	}

	return stats, nil
}

// countByColumn fills dst with value -> row count for one column of one
// table. Both identifiers come from closed in-package lists.
func (s *OrgStore) countByColumn(table, column string, dst map[string]int) error {
	rows, err := s.db.Query("SELECT " + column + ", COUNT(*) FROM " + table + " GROUP BY " + column)
	if err != nil {
		return fmt.Errorf("aggregating %s by %s: %w", table, column, err)
	}
	defer rows.Close()
	for rows.Next() {
		var value sql.NullString
		var count int
		if err := rows.Scan(&value, &count); err != nil {
			return fmt.Errorf("scanning %s aggregate: %w", table, err)
		}
		if value.Valid {
			dst[value.String] = count
		}
	}
	return rows.Err()
}
