// Chore, idea, and org-note repository tests. The task tests exercise the
// shared update and cascade machinery in depth; these cover what differs
// per entity.

package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

func TestChoreRoundTrip(t *testing.T) {
	s := setupOrg(t)

	created, err := s.CreateChore(&types.Chore{
		Title:       "Water the plants",
		IsRecurring: true,
		Frequency:   "weekly",
	})
	require.NoError(t, err)
	assert.Equal(t, types.ChoreStatusActive, created.Status)

	got, err := s.GetChore(created.ChoreID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsRecurring)
	assert.Equal(t, "weekly", got.Frequency)
}

func TestChoreRecurringFlagUpdate(t *testing.T) {
	s := setupOrg(t)

	created, err := s.CreateChore(&types.Chore{Title: "One-off cleanup"})
	require.NoError(t, err)
	assert.False(t, created.IsRecurring)

	recurring := true
	freq := "monthly"
	got, err := s.UpdateChore(created.ChoreID, types.ChoreUpdate{IsRecurring: &recurring, Frequency: &freq})
	require.NoError(t, err)
	assert.True(t, got.IsRecurring)
	assert.Equal(t, "monthly", got.Frequency)

	// The flag round-trips through the strict 0/1 column representation.
	var stored int
	require.NoError(t, s.db.QueryRow("SELECT is_recurring FROM chores WHERE chore_id = ?", created.ChoreID).Scan(&stored))
	assert.Equal(t, 1, stored)
}

func TestChoreDelete(t *testing.T) {
	s := setupOrg(t)

	created, err := s.CreateChore(&types.Chore{Title: "doomed"})
	require.NoError(t, err)
	require.NoError(t, s.LinkNote("note-1", types.ItemChore, created.ChoreID))

	require.NoError(t, s.DeleteChore(created.ChoreID))
	got, err := s.GetChore(created.ChoreID)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Zero(t, countRows(t, s, "note_links", "item_id = ?", created.ChoreID))
}

func TestIdeaRoundTripWithTags(t *testing.T) {
	s := setupOrg(t)

	created, err := s.CreateIdea(&types.Idea{
		Title: "Garden automation",
		Tags:  []string{"hardware", "home"},
	})
	require.NoError(t, err)
	assert.Equal(t, types.IdeaStatusNew, created.Status)

	got, err := s.GetIdea(created.IdeaID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{"hardware", "home"}, got.Tags)

	require.NoError(t, s.SetIdeaTags(created.IdeaID, []string{"software"}))
	got, err = s.GetIdea(created.IdeaID)
	require.NoError(t, err)
	assert.Equal(t, []string{"software"}, got.Tags)
}

func TestIdeaStatusUpdate(t *testing.T) {
	s := setupOrg(t)

	created, err := s.CreateIdea(&types.Idea{Title: "Try it"})
	require.NoError(t, err)

	status := types.IdeaStatusAdopted
	got, err := s.UpdateIdea(created.IdeaID, types.IdeaUpdate{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, types.IdeaStatusAdopted, got.Status)

	bad := "shelved"
	_, err = s.UpdateIdea(created.IdeaID, types.IdeaUpdate{Status: &bad})
	assert.ErrorIs(t, err, types.ErrInvalidStatus)
}

func TestOrgNoteRoundTrip(t *testing.T) {
	s := setupOrg(t)

	created, err := s.CreateOrgNote(&types.OrgNote{
		Title:   "Reading list",
		Content: "# Books\n- one\n- two",
	})
	require.NoError(t, err)
	assert.Equal(t, types.OrgNoteStatusActive, created.Status)

	got, err := s.GetOrgNote(created.OrgNoteID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "# Books\n- one\n- two", got.Content)

	status := types.OrgNoteStatusArchived
	updated, err := s.UpdateOrgNote(created.OrgNoteID, types.OrgNoteUpdate{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, types.OrgNoteStatusArchived, updated.Status)

	require.NoError(t, s.DeleteOrgNote(created.OrgNoteID))
	got, err = s.GetOrgNote(created.OrgNoteID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
