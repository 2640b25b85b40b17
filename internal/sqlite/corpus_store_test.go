// Corpus store tests: the note status machine, permanent delete, and the
// enrichment reads.

package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

func TestGetNote(t *testing.T) {
	s := setupCorpus(t)
	insertNote(t, s, noteSeed{id: "n1", title: "Groceries", plain: "milk eggs", category: "lists"})

	got, err := s.GetNote("n1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Groceries", got.Title)
	assert.Equal(t, "milk eggs", got.PlainText)
	assert.Equal(t, types.NoteStatusPending, got.Status)
	require.NotNil(t, got.CreatedAt)
	assert.Equal(t, 2025, got.CreatedAt.Year())

	missing, err := s.GetNote("nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestNoteTimestamps(t *testing.T) {
	s := setupCorpus(t)
	insertNote(t, s, noteSeed{id: "t1", title: "dated", created: "2025-03-14 09:30:00"})

	got, err := s.GetNote("t1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.CreatedAt)
	require.NotNil(t, got.ModifiedAt)
	assert.Equal(t, time.March, got.CreatedAt.Month())
	assert.Equal(t, 14, got.CreatedAt.Day())
	assert.Equal(t, 9, got.CreatedAt.Hour())
	assert.Equal(t, 30, got.CreatedAt.Minute())

	// The importer leaves the datetime columns NULL when the export date
	// could not be parsed; the raw string survives untouched.
	_, err = s.db.Exec(
		`INSERT INTO notes (note_id, original_index, title, content, account,
			created_raw, modified_raw, status)
		 VALUES ('t2', 0, 'undated', '', 'iCloud', 'sometime last spring', '', 'pending')`)
	require.NoError(t, err)

	got, err = s.GetNote("t2")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.CreatedAt)
	assert.Nil(t, got.ModifiedAt)
	assert.Equal(t, "sometime last spring", got.CreatedRaw)
}

func TestNoteStatusMachine(t *testing.T) {
	s := setupCorpus(t)

	t.Run("review pending to analyzed", func(t *testing.T) {
		insertNote(t, s, noteSeed{id: "r1", title: "a"})
		got, err := s.ReviewNote("r1", types.NoteStatusAnalyzed)
		require.NoError(t, err)
		assert.Equal(t, types.NoteStatusAnalyzed, got.Status)
	})

	t.Run("review pending to failed", func(t *testing.T) {
		insertNote(t, s, noteSeed{id: "r2", title: "b"})
		got, err := s.ReviewNote("r2", types.NoteStatusFailed)
		require.NoError(t, err)
		assert.Equal(t, types.NoteStatusFailed, got.Status)
	})

	t.Run("review rejects non-outcome statuses", func(t *testing.T) {
		insertNote(t, s, noteSeed{id: "r3", title: "c"})
		_, err := s.ReviewNote("r3", types.NoteStatusPending)
		assert.ErrorIs(t, err, types.ErrInvalidStatus)
		_, err = s.ReviewNote("r3", "bogus")
		assert.ErrorIs(t, err, types.ErrInvalidStatus)
	})

	t.Run("review of reviewed note is an invalid transition", func(t *testing.T) {
		insertNote(t, s, noteSeed{id: "r4", title: "d", status: types.NoteStatusAnalyzed})
		_, err := s.ReviewNote("r4", types.NoteStatusFailed)
		assert.ErrorIs(t, err, types.ErrInvalidTransition)
	})

	t.Run("recover returns reviewed note to pending", func(t *testing.T) {
		insertNote(t, s, noteSeed{id: "r5", title: "e", status: types.NoteStatusFailed})
		got, err := s.RecoverNote("r5")
		require.NoError(t, err)
		assert.Equal(t, types.NoteStatusPending, got.Status)
	})

	t.Run("recover of pending note is an invalid transition", func(t *testing.T) {
		insertNote(t, s, noteSeed{id: "r6", title: "f"})
		_, err := s.RecoverNote("r6")
		assert.ErrorIs(t, err, types.ErrInvalidTransition)
	})

	t.Run("missing note", func(t *testing.T) {
		_, err := s.ReviewNote("nope", types.NoteStatusAnalyzed)
		assert.ErrorIs(t, err, types.ErrNotFound)
		_, err = s.RecoverNote("nope")
		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}

func TestDeleteNote(t *testing.T) {
	s := setupCorpus(t)

	insertNote(t, s, noteSeed{id: "d1", title: "doomed", status: types.NoteStatusAnalyzed})
	for _, table := range []string{"extracted_links", "extracted_images", "extracted_tasks", "extracted_ideas", "extracted_projects"} {
		insertExtracted(t, s, table, "d1")
	}
	_, err := s.db.Exec("INSERT INTO note_categories (note_id, category) VALUES ('d1', 'misc')")
	require.NoError(t, err)
	_, err = s.db.Exec("INSERT INTO analysis (note_id, summary) VALUES ('d1', 'short')")
	require.NoError(t, err)

	require.NoError(t, s.DeleteNote("d1"))

	got, err := s.GetNote("d1")
	require.NoError(t, err)
	assert.Nil(t, got)
	for _, table := range []string{"extracted_links", "extracted_images", "extracted_tasks",
		"extracted_ideas", "extracted_projects", "analysis", "note_categories"} {
		var n int
		require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM "+table+" WHERE note_id = 'd1'").Scan(&n))
		assert.Zero(t, n, "table %s should be empty", table)
	}
}

func TestDeleteNoteGuards(t *testing.T) {
	s := setupCorpus(t)

	insertNote(t, s, noteSeed{id: "g1", title: "still pending"})
	assert.ErrorIs(t, s.DeleteNote("g1"), types.ErrInvalidTransition)
	assert.ErrorIs(t, s.DeleteNote("nope"), types.ErrNotFound)
}

func TestNoteEnrichmentReads(t *testing.T) {
	s := setupCorpus(t)
	insertNote(t, s, noteSeed{id: "e1", title: "rich"})

	_, err := s.db.Exec("INSERT INTO note_categories (note_id, category) VALUES ('e1', 'travel'), ('e1', 'food')")
	require.NoError(t, err)
	_, err = s.db.Exec("INSERT INTO extracted_links (note_id, url, link_type) VALUES ('e1', 'https://example.com', 'web')")
	require.NoError(t, err)
	_, err = s.db.Exec(
		"INSERT INTO extracted_images (note_id, filename, relative_path, image_format, size_bytes, extraction_order) " +
			"VALUES ('e1', 'a.png', 'images/a.png', 'png', 512, 0)")
	require.NoError(t, err)

	categories, err := s.NoteCategories("e1")
	require.NoError(t, err)
	assert.Equal(t, []string{"food", "travel"}, categories)

	links, err := s.NoteLinksExtracted("e1")
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "https://example.com", links[0].URL)
	assert.Equal(t, "web", links[0].LinkType)

	images, err := s.NoteImages("e1")
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "a.png", images[0].Filename)
	assert.Equal(t, int64(512), images[0].SizeBytes)
}
