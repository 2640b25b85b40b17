// Shared test fixtures for the storage layer.

package sqlite

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// setupOrg opens a fresh organization store in a temp directory with the
// default taxonomy seeded.
func setupOrg(t *testing.T) *OrgStore {
	t.Helper()
	s, err := OpenOrgStore(filepath.Join(t.TempDir(), "org.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// setupCorpus opens a fresh, empty corpus store in a temp directory.
func setupCorpus(t *testing.T) *CorpusStore {
	t.Helper()
	s, err := OpenCorpusStore(filepath.Join(t.TempDir(), "corpus.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// noteSeed is one corpus note for direct insertion, standing in for the
// import pipeline.
type noteSeed struct {
	id       string
	title    string
	plain    string
	folder   string
	account  string
	category string
	status   string
	created  string // corpus layout, e.g. "2025-03-14 09:00:00"
}

// insertNote writes a seed note straight into the corpus tables.
func insertNote(t *testing.T, s *CorpusStore, n noteSeed) {
	t.Helper()
	if n.folder == "" {
		n.folder = "Notes"
	}
	if n.account == "" {
		n.account = "iCloud"
	}
	if n.status == "" {
		n.status = types.NoteStatusPending
	}
	if n.created == "" {
		n.created = "2025-01-01 12:00:00"
	}
	_, err := s.db.Exec(
		`INSERT INTO notes (note_id, original_index, title, content, plain_text, folder,
			account, created_raw, created_datetime, modified_raw, modified_datetime,
			status, primary_category, content_length)
		 VALUES (?, 0, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		n.id, n.title, "<div>"+n.plain+"</div>", n.plain, n.folder, n.account,
		n.created, n.created, n.created, n.created, n.status, n.category, len(n.plain),
	)
	require.NoError(t, err)
}

// insertExtracted adds one row to an extracted_* side table for a note.
func insertExtracted(t *testing.T, s *CorpusStore, table, noteID string) {
	t.Helper()
	var stmt string
	switch table {
	case "extracted_links":
		stmt = "INSERT INTO extracted_links (note_id, url) VALUES (?, ?)"
	case "extracted_images":
		stmt = "INSERT INTO extracted_images (note_id, filename, relative_path) VALUES (?, ?, 'images/x.png')"
	case "extracted_tasks":
		stmt = "INSERT INTO extracted_tasks (note_id, task_text) VALUES (?, ?)"
	case "extracted_ideas":
		stmt = "INSERT INTO extracted_ideas (note_id, idea_text) VALUES (?, ?)"
	case "extracted_projects":
		stmt = "INSERT INTO extracted_projects (note_id, project_name) VALUES (?, ?)"
	default:
		t.Fatalf("unknown side table %s", table)
	}
	unique := fmt.Sprintf("%s-%d", noteID, time.Now().UnixNano())
	_, err := s.db.Exec(stmt, noteID, unique)
	require.NoError(t, err)
}

// countRows returns the row count of an organization-store table.
func countRows(t *testing.T, s *OrgStore, table, where string, args ...any) int {
	t.Helper()
	query := "SELECT COUNT(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	var n int
	require.NoError(t, s.db.QueryRow(query, args...).Scan(&n))
	return n
}
