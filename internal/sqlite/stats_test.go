// Statistics aggregator tests for both stores.

package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

func TestOrganizationStats(t *testing.T) {
	org := setupOrg(t)
	corpus := setupCorpus(t)

	_, err := org.CreateTask(&types.Task{Title: "t1"})
	require.NoError(t, err)
	inProgress := types.TaskStatusInProgress
	t2, err := org.CreateTask(&types.Task{Title: "t2"})
	require.NoError(t, err)
	_, err = org.UpdateTask(t2.TaskID, types.TaskUpdate{Status: &inProgress})
	require.NoError(t, err)

	_, err = org.CreateIdea(&types.Idea{Title: "i1"})
	require.NoError(t, err)

	p, err := org.CreateProject(&types.Project{Title: "p1"})
	require.NoError(t, err)
	require.NoError(t, org.SetProjectTypes(p.ProjectID, []string{typeIDByName(t, org, "work")}))

	_, err = org.AddAttachment(types.FileAttachment{
		ItemType: types.ItemProject, ItemID: p.ProjectID, Filename: "plan.md", Path: "files/plan.md",
	})
	require.NoError(t, err)

	insertNote(t, corpus, noteSeed{id: "n1", status: types.NoteStatusAnalyzed, title: "a"})
	insertNote(t, corpus, noteSeed{id: "n2", status: types.NoteStatusFailed, title: "b"})
	insertNote(t, corpus, noteSeed{id: "n3", status: types.NoteStatusPending, title: "c"})

	stats, err := org.OrganizationStats(corpus)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalTasks)
	assert.Equal(t, 0, stats.TotalChores)
	assert.Equal(t, 1, stats.TotalIdeas)
	assert.Equal(t, 1, stats.TotalProjects)
	assert.Equal(t, map[string]int{
		types.TaskStatusNotStarted: 1,
		types.TaskStatusInProgress: 1,
	}, stats.TaskStatus)
	assert.Equal(t, map[string]int{types.IdeaStatusNew: 1}, stats.IdeaStatus)
	assert.Equal(t, map[string]int{"work": 1}, stats.ProjectTypeUsage)
	assert.Equal(t, 2, stats.ReviewedNotes)
	assert.Equal(t, 1, stats.TotalAttachments)
}

func TestOrganizationStatsEmpty(t *testing.T) {
	org := setupOrg(t)

	stats, err := org.OrganizationStats(nil)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalTasks)
	assert.NotNil(t, stats.TaskStatus)
	assert.Empty(t, stats.TaskStatus)
	assert.NotNil(t, stats.ProjectTypeUsage)
	assert.Zero(t, stats.ReviewedNotes)
}

func TestCorpusStats(t *testing.T) {
	s := setupCorpus(t)

	// Three pending, two analyzed, one failed.
	seeds := []noteSeed{
		{id: "c1", status: types.NoteStatusPending, folder: "Notes", account: "iCloud", category: "misc", created: "2025-01-05 10:00:00"},
		{id: "c2", status: types.NoteStatusPending, folder: "Notes", account: "iCloud", category: "misc", created: "2025-01-20 10:00:00"},
		{id: "c3", status: types.NoteStatusPending, folder: "Travel", account: "iCloud", category: "travel", created: "2025-02-01 10:00:00"},
		{id: "c4", status: types.NoteStatusAnalyzed, folder: "Work", account: "Exchange", category: "work", created: "2025-02-14 10:00:00"},
		{id: "c5", status: types.NoteStatusAnalyzed, folder: "Work", account: "Exchange", category: "work", created: "2024-12-25 10:00:00"},
		{id: "c6", status: types.NoteStatusFailed, folder: "Notes", account: "iCloud", category: "misc", created: "2025-02-28 10:00:00"},
	}
	for _, seed := range seeds {
		seed.title = seed.id
		seed.plain = seed.id
		insertNote(t, s, seed)
	}
	insertExtracted(t, s, "extracted_links", "c1")
	insertExtracted(t, s, "extracted_links", "c2")
	insertExtracted(t, s, "extracted_images", "c3")
	insertExtracted(t, s, "extracted_tasks", "c4")

	_, err := s.db.Exec(
		"INSERT INTO note_categories (note_id, category) VALUES ('c1', 'misc'), ('c1', 'food'), ('c3', 'misc')")
	require.NoError(t, err)

	stats, err := s.CorpusStats(types.TimelineMonth)
	require.NoError(t, err)

	assert.Equal(t, 6, stats.TotalNotes)
	assert.Equal(t, 2, stats.TotalLinks)
	assert.Equal(t, 1, stats.TotalImages)
	assert.Equal(t, 1, stats.TotalTasks)
	assert.Equal(t, map[string]int{
		types.NoteStatusPending:  3,
		types.NoteStatusAnalyzed: 2,
		types.NoteStatusFailed:   1,
	}, stats.StatusCounts)
	assert.Equal(t, map[string]int{"iCloud": 4, "Exchange": 2}, stats.AccountCounts)
	assert.Equal(t, map[string]int{"Notes": 3, "Travel": 1, "Work": 2}, stats.FolderCounts)
	assert.Equal(t, map[string]int{"misc": 3, "travel": 1, "work": 2}, stats.CategoryCounts)
	assert.Equal(t, map[string]int{"misc": 2, "food": 1}, stats.TopCategories)

	require.NotNil(t, stats.CreatedRange.Earliest)
	require.NotNil(t, stats.CreatedRange.Latest)
	assert.Equal(t, 2024, stats.CreatedRange.Earliest.Year())
	assert.Equal(t, time.December, stats.CreatedRange.Earliest.Month())
	assert.Equal(t, time.February, stats.CreatedRange.Latest.Month())
	assert.Equal(t, 28, stats.CreatedRange.Latest.Day())
	require.NotNil(t, stats.ModifiedRange.Earliest)
	require.NotNil(t, stats.ModifiedRange.Latest)

	assert.Equal(t, []types.TimelineBucket{
		{Bucket: "2024-12", Count: 1},
		{Bucket: "2025-01", Count: 2},
		{Bucket: "2025-02", Count: 3},
	}, stats.Timeline)
}

func TestCorpusStatsTimelineGroups(t *testing.T) {
	s := setupCorpus(t)
	insertNote(t, s, noteSeed{id: "y1", title: "a", created: "2024-06-15 08:00:00"})
	insertNote(t, s, noteSeed{id: "y2", title: "b", created: "2025-06-15 08:00:00"})

	byYear, err := s.CorpusStats(types.TimelineYear)
	require.NoError(t, err)
	assert.Equal(t, []types.TimelineBucket{{Bucket: "2024", Count: 1}, {Bucket: "2025", Count: 1}}, byYear.Timeline)

	byDay, err := s.CorpusStats(types.TimelineDay)
	require.NoError(t, err)
	require.Len(t, byDay.Timeline, 2)
	assert.Equal(t, "2024-06-15", byDay.Timeline[0].Bucket)

	// Empty group defaults to month.
	byDefault, err := s.CorpusStats("")
	require.NoError(t, err)
	assert.Equal(t, "2024-06", byDefault.Timeline[0].Bucket)

	_, err = s.CorpusStats("fortnight")
	assert.ErrorIs(t, err, types.ErrInvalidFilter)
}

func TestCorpusStatsEmpty(t *testing.T) {
	s := setupCorpus(t)

	stats, err := s.CorpusStats(types.TimelineMonth)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalNotes)
	assert.NotNil(t, stats.StatusCounts)
	assert.Empty(t, stats.StatusCounts)
	assert.Empty(t, stats.Timeline)
	assert.Nil(t, stats.CreatedRange.Earliest)
	assert.Nil(t, stats.CreatedRange.Latest)
	assert.Nil(t, stats.ModifiedRange.Earliest)
	assert.Nil(t, stats.ModifiedRange.Latest)
}
