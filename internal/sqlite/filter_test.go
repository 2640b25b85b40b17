// Filter compilation tests. List and count share the predicate builder, so
// most cases assert both against the same filter.

package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// seedFilterCorpus inserts a small fixed corpus used by the filter tests.
func seedFilterCorpus(t *testing.T, s *CorpusStore) {
	t.Helper()
	insertNote(t, s, noteSeed{id: "f1", title: "Trip planning", plain: "flights and hotels",
		folder: "Travel", account: "iCloud", category: "travel", status: types.NoteStatusPending,
		created: "2025-01-10 08:00:00"})
	insertNote(t, s, noteSeed{id: "f2", title: "Recipe ideas", plain: "pasta carbonara",
		folder: "Cooking", account: "iCloud", category: "food", status: types.NoteStatusAnalyzed,
		created: "2025-02-15 09:30:00"})
	insertNote(t, s, noteSeed{id: "f3", title: "Meeting notes", plain: "quarterly review agenda",
		folder: "Work", account: "Exchange", category: "work", status: types.NoteStatusAnalyzed,
		created: "2025-03-20 14:00:00"})
	insertNote(t, s, noteSeed{id: "f4", title: "Old draft", plain: "unfinished thoughts",
		folder: "Notes", account: "iCloud", category: "misc", status: types.NoteStatusFailed,
		created: "2024-11-05 19:45:00"})
}

// assertListCount checks that ListNotes and CountNotes agree for a filter,
// with count ignoring pagination.
func assertListCount(t *testing.T, s *CorpusStore, f types.NoteFilter, wantIDs []string, wantCount int) {
	t.Helper()
	notes, err := s.ListNotes(f)
	require.NoError(t, err)
	ids := []string{}
	for _, n := range notes {
		ids = append(ids, n.NoteID)
	}
	assert.Equal(t, wantIDs, ids)

	count, err := s.CountNotes(f)
	require.NoError(t, err)
	assert.Equal(t, wantCount, count)
}

func TestListNotesFilters(t *testing.T) {
	s := setupCorpus(t)
	seedFilterCorpus(t, s)

	t.Run("no filter, default sort newest first", func(t *testing.T) {
		assertListCount(t, s, types.NoteFilter{}, []string{"f3", "f2", "f1", "f4"}, 4)
	})

	t.Run("single status compiles to equality", func(t *testing.T) {
		f := types.NoteFilter{Statuses: []string{types.NoteStatusPending}}
		assertListCount(t, s, f, []string{"f1"}, 1)
	})

	t.Run("several statuses compile to IN", func(t *testing.T) {
		f := types.NoteFilter{Statuses: []string{types.NoteStatusAnalyzed, types.NoteStatusFailed}}
		assertListCount(t, s, f, []string{"f3", "f2", "f4"}, 3)
	})

	t.Run("status filter is exact, no substring leak", func(t *testing.T) {
		// "analyzed" must not match a note whose title mentions it.
		insertNote(t, s, noteSeed{id: "f5", title: "analyzed data", status: types.NoteStatusPending,
			created: "2023-01-01 00:00:00"})
		f := types.NoteFilter{Statuses: []string{types.NoteStatusAnalyzed}}
		assertListCount(t, s, f, []string{"f3", "f2"}, 2)
		_, err := s.db.Exec("DELETE FROM notes WHERE note_id = 'f5'")
		require.NoError(t, err)
	})

	t.Run("folder and account combine with AND", func(t *testing.T) {
		f := types.NoteFilter{Folders: []string{"Travel", "Cooking"}, Accounts: []string{"iCloud"}}
		assertListCount(t, s, f, []string{"f2", "f1"}, 2)
	})

	t.Run("category", func(t *testing.T) {
		f := types.NoteFilter{Categories: []string{"work"}}
		assertListCount(t, s, f, []string{"f3"}, 1)
	})

	t.Run("search matches title or plain text, case-insensitive", func(t *testing.T) {
		assertListCount(t, s, types.NoteFilter{Search: "PASTA"}, []string{"f2"}, 1)
		assertListCount(t, s, types.NoteFilter{Search: "trip"}, []string{"f1"}, 1)
	})

	t.Run("search treats LIKE metacharacters literally", func(t *testing.T) {
		insertNote(t, s, noteSeed{id: "f6", title: "Progress", plain: "project 50% complete",
			created: "2023-01-01 00:00:00"})
		insertNote(t, s, noteSeed{id: "f7", title: "Decoy", plain: "project 50x complete",
			created: "2023-01-01 00:00:00"})
		t.Cleanup(func() {
			_, err := s.db.Exec("DELETE FROM notes WHERE note_id IN ('f6', 'f7')")
			require.NoError(t, err)
		})
		assertListCount(t, s, types.NoteFilter{Search: "50%"}, []string{"f6"}, 1)
		// A wildcard "_" would match both seeds; a literal one matches neither.
		assertListCount(t, s, types.NoteFilter{Search: "50_"}, []string{}, 0)
	})

	t.Run("date range is inclusive", func(t *testing.T) {
		f := types.NoteFilter{DateFrom: "2025-01-10", DateTo: "2025-02-15"}
		assertListCount(t, s, f, []string{"f2", "f1"}, 2)
	})

	t.Run("sort by title ascending", func(t *testing.T) {
		f := types.NoteFilter{SortBy: types.SortByTitle, SortOrder: types.SortAsc}
		assertListCount(t, s, f, []string{"f3", "f4", "f2", "f1"}, 4)
	})
}

func TestListNotesPagination(t *testing.T) {
	s := setupCorpus(t)
	seedFilterCorpus(t, s)
	insertExtracted(t, s, "extracted_images", "f1")
	insertExtracted(t, s, "extracted_images", "f3")
	insertExtracted(t, s, "extracted_images", "f4")

	f := types.NoteFilter{HasImages: true, Limit: 2}
	assertListCount(t, s, f, []string{"f3", "f1"}, 3)

	f.Offset = 2
	assertListCount(t, s, f, []string{"f4"}, 3)
	assert.Equal(t, 2, f.Page())

	t.Run("offset without limit is ignored", func(t *testing.T) {
		f := types.NoteFilter{Offset: 2}
		notes, err := s.ListNotes(f)
		require.NoError(t, err)
		assert.Len(t, notes, 4)
	})
}

func TestListNotesExistencePredicates(t *testing.T) {
	s := setupCorpus(t)
	seedFilterCorpus(t, s)
	insertExtracted(t, s, "extracted_links", "f1")
	insertExtracted(t, s, "extracted_tasks", "f2")

	assertListCount(t, s, types.NoteFilter{HasLinks: true}, []string{"f1"}, 1)
	assertListCount(t, s, types.NoteFilter{HasTasks: true}, []string{"f2"}, 1)

	// False means "no predicate", not "must not have".
	assertListCount(t, s, types.NoteFilter{}, []string{"f3", "f2", "f1", "f4"}, 4)
}

func TestListNotesInvalidFilter(t *testing.T) {
	s := setupCorpus(t)

	tests := []struct {
		name   string
		filter types.NoteFilter
	}{
		{"bad sort key", types.NoteFilter{SortBy: "size"}},
		{"bad sort order", types.NoteFilter{SortOrder: "sideways"}},
		{"bad status", types.NoteFilter{Statuses: []string{"bogus"}}},
		{"unparseable date", types.NoteFilter{DateFrom: "last tuesday"}},
		{"negative limit", types.NoteFilter{Limit: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.ListNotes(tt.filter)
			assert.ErrorIs(t, err, types.ErrInvalidFilter)
			_, err = s.CountNotes(tt.filter)
			assert.ErrorIs(t, err, types.ErrInvalidFilter)
		})
	}
}
