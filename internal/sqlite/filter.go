// Note filter compilation. Every caller-supplied value travels as a bound
// parameter; identifiers (columns, sort keys) come only from closed
// in-package maps. List and count share one predicate builder so their
// results can never disagree.

package sqlite

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// noteSortColumns maps filter sort keys to real column names. Unknown keys
// are rejected by NoteFilter.Validate before this map is consulted.
var noteSortColumns = map[string]string{
	types.SortByCreated:  "created_datetime",
	types.SortByModified: "modified_datetime",
	types.SortByTitle:    "title",
}

// ListNotes returns the notes matching the filter, sorted and paginated.
func (s *CorpusStore) ListNotes(f types.NoteFilter) ([]*types.Note, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	where, args, err := buildNoteWhere(f)
	if err != nil {
		return nil, err
	}

	query := "SELECT " + noteColumns + " FROM notes" + where + noteOrderClause(f)
	if f.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, f.Limit, f.Offset)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching notes: %w", err)
	}
	defer rows.Close()

	notes := []*types.Note{}
	for rows.Next() {
		n, err := scanNote(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating note: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notes: %w", err)
	}
	return notes, nil
}

// CountNotes returns the number of notes matching the filter, ignoring
// pagination. Built from the same predicate as ListNotes.
func (s *CorpusStore) CountNotes(f types.NoteFilter) (int, error) {
	if err := f.Validate(); err != nil {
		return 0, err
	}

	where, args, err := buildNoteWhere(f)
	if err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM notes"+where, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting notes: %w", err)
	}
	return count, nil
}

// buildNoteWhere compiles the filter into a WHERE fragment (with leading
// " WHERE ", or "" when empty) and its bound arguments.
func buildNoteWhere(f types.NoteFilter) (string, []any, error) {
	var preds []string
	var args []any

	addIn := func(column string, values []string) {
		if len(values) == 0 {
			return
		}
		pred, inArgs := inClause(column, values)
		preds = append(preds, pred)
		args = append(args, inArgs...)
	}

	addIn("primary_category", f.Categories)
	addIn("folder", f.Folders)
	addIn("account", f.Accounts)
	addIn("status", f.Statuses)

	if f.Search != "" {
		// SQLite LIKE is case-insensitive for ASCII, which matches the
		// original search behavior. The term is a literal substring, so
		// LIKE metacharacters in it are escaped.
		preds = append(preds, `(title LIKE ? ESCAPE '\' OR plain_text LIKE ? ESCAPE '\')`)
		term := "%" + escapeLike(f.Search) + "%"
		args = append(args, term, term)
	}

	from, to, err := f.DateBounds()
	if err != nil {
		return "", nil, err
	}
	if from != nil {
		preds = append(preds, "created_datetime >= ?")
		args = append(args, formatCorpusTime(*from))
	}
	if to != nil {
		preds = append(preds, "created_datetime <= ?")
		args = append(args, formatCorpusTime(*to))
	}

	if f.HasLinks {
		preds = append(preds, "EXISTS (SELECT 1 FROM extracted_links el WHERE el.note_id = notes.note_id)")
	}
	if f.HasImages {
		preds = append(preds, "EXISTS (SELECT 1 FROM extracted_images ei WHERE ei.note_id = notes.note_id)")
	}
	if f.HasTasks {
		preds = append(preds, "EXISTS (SELECT 1 FROM extracted_tasks et WHERE et.note_id = notes.note_id)")
	}

	if len(preds) == 0 {
		return "", nil, nil
	}
	return " WHERE " + strings.Join(preds, " AND "), args, nil
}

// escapeLike escapes LIKE metacharacters so a search term matches itself
// literally under ESCAPE '\'.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)
	return r.Replace(s)
}

// inClause compiles one list predicate: equality for a single value, a
// placeholder-per-value IN clause otherwise.
func inClause(column string, values []string) (string, []any) {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	if len(values) == 1 {
		return column + " = ?", args
	}
	placeholders := strings.Repeat("?, ", len(values)-1) + "?"
	return column + " IN (" + placeholders + ")", args
}

func noteOrderClause(f types.NoteFilter) string {
	column := noteSortColumns[types.SortByCreated]
	if f.SortBy != "" {
		column = noteSortColumns[f.SortBy]
	}
	direction := "DESC"
	if f.SortOrder == types.SortAsc {
		direction = "ASC"
	}
	return " ORDER BY " + column + " " + direction
}
