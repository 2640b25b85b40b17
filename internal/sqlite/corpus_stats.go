// Corpus statistics aggregator.

package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// timelineFormats maps a timeline grouping to its strftime bucket format.
var timelineFormats = map[string]string{
	types.TimelineDay:   "%Y-%m-%d",
	types.TimelineMonth: "%Y-%m",
	types.TimelineYear:  "%Y",
}

// CorpusStats aggregates counts across the corpus tables. The timeline is
// bucketed by group (day, month, or year; empty defaults to month) over
// notes with a parseable creation time.
func (s *CorpusStore) CorpusStats(group string) (types.CorpusStats, error) {
	if group == "" {
		group = types.TimelineMonth
	}
	if !types.ValidTimelineGroup(group) {
		return types.CorpusStats{}, fmt.Errorf("%w: unknown timeline group %q", types.ErrInvalidFilter, group)
	}

	stats := types.CorpusStats{
		StatusCounts:   map[string]int{},
		AccountCounts:  map[string]int{},
		FolderCounts:   map[string]int{},
		CategoryCounts: map[string]int{},
		TopCategories:  map[string]int{},
		Timeline:       []types.TimelineBucket{},
	}

	totals := []struct {
		table string
		dst   *int
	}{
		{"notes", &stats.TotalNotes},
		{"extracted_links", &stats.TotalLinks},
		{"extracted_images", &stats.TotalImages},
		{"extracted_tasks", &stats.TotalTasks},
		{"extracted_ideas", &stats.TotalIdeas},
		{"extracted_projects", &stats.TotalProjects},
	}
	for _, t := range totals {
		if err := s.db.QueryRow("SELECT COUNT(*) FROM " + t.table).Scan(t.dst); err != nil {
			return types.CorpusStats{}, fmt.Errorf("counting %s: %w", t.table, err)
		}
	}

	breakdowns := []struct {
		query string
		dst   map[string]int
	}{
		{"SELECT status, COUNT(*) FROM notes GROUP BY status", stats.StatusCounts},
		{"SELECT account, COUNT(*) FROM notes GROUP BY account", stats.AccountCounts},
		{"SELECT folder, COUNT(*) FROM notes GROUP BY folder", stats.FolderCounts},
		{"SELECT primary_category, COUNT(*) FROM notes GROUP BY primary_category", stats.CategoryCounts},
		{"SELECT category, COUNT(*) FROM note_categories GROUP BY category", stats.TopCategories},
	}
	for _, b := range breakdowns {
		if err := s.fillBreakdown(b.query, b.dst); err != nil {
			return types.CorpusStats{}, err
		}
	}

	ranges := []struct {
		column string
		dst    *types.DateRange
	}{
		{"created_datetime", &stats.CreatedRange},
		{"modified_datetime", &stats.ModifiedRange},
	}
	for _, r := range ranges {
		var err error
		if r.dst.Earliest, err = s.columnExtreme(r.column, "ASC"); err != nil {
			return types.CorpusStats{}, fmt.Errorf("aggregating %s range: %w", r.column, err)
		}
		if r.dst.Latest, err = s.columnExtreme(r.column, "DESC"); err != nil {
			return types.CorpusStats{}, fmt.Errorf("aggregating %s range: %w", r.column, err)
		}
	}

	// Format string comes from the closed timelineFormats map, never
	// caller input.
	rows, err := s.db.Query(
		"SELECT strftime('"+timelineFormats[group]+"', created_datetime) AS bucket, COUNT(*) "+
			"FROM notes WHERE created_datetime IS NOT NULL GROUP BY bucket ORDER BY bucket",
	)
	if err != nil {
		return types.CorpusStats{}, fmt.Errorf("aggregating timeline: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var b types.TimelineBucket
		if err := rows.Scan(&b.Bucket, &b.Count); err != nil {
			return types.CorpusStats{}, fmt.Errorf("scanning timeline bucket: %w", err)
		}
		stats.Timeline = append(stats.Timeline, b)
	}
	if err := rows.Err(); err != nil {
		return types.CorpusStats{}, fmt.Errorf("iterating timeline: %w", err)
	}

	return stats, nil
}

// columnExtreme returns the smallest or largest non-NULL value of a notes
// datetime column. A plain column select keeps the DATETIME decltype, so the
// driver decodes the value; MIN/MAX expressions would come back as text.
// The column name comes from the closed ranges list above, never callers.
func (s *CorpusStore) columnExtreme(column, direction string) (*time.Time, error) {
	var v sql.NullTime
	err := s.db.QueryRow(
		"SELECT " + column + " FROM notes WHERE " + column +
			" IS NOT NULL ORDER BY " + column + " " + direction + " LIMIT 1",
	).Scan(&v)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return nullableTime(v), nil
}

func (s *CorpusStore) fillBreakdown(query string, dst map[string]int) error {
	rows, err := s.db.Query(query)
	if err != nil {
		return fmt.Errorf("aggregating corpus breakdown: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var value sql.NullString
		var count int
		if err := rows.Scan(&value, &count); err != nil {
			return fmt.Errorf("scanning corpus breakdown: %w", err)
		}
		if value.Valid {
			dst[value.String] = count
		}
	}
	return rows.Err()
}
