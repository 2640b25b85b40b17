// Project repository tests, including the project-type junction.

package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// typeIDByName resolves a seeded project type's ID.
func typeIDByName(t *testing.T, s *OrgStore, name string) string {
	t.Helper()
	all, err := s.ListProjectTypes()
	require.NoError(t, err)
	for _, pt := range all {
		if pt.Name == name {
			return pt.TypeID
		}
	}
	t.Fatalf("no project type named %s", name)
	return ""
}

func TestProjectRoundTrip(t *testing.T) {
	s := setupOrg(t)

	created, err := s.CreateProject(&types.Project{
		Title: "Garden shed",
		Tags:  []string{"diy"},
	})
	require.NoError(t, err)
	assert.Equal(t, types.ProjectStatusPlanning, created.Status)

	got, err := s.GetProject(created.ProjectID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{"diy"}, got.Tags)
	assert.NotNil(t, got.Types)
	assert.Empty(t, got.Types)
}

func TestSetProjectTypes(t *testing.T) {
	s := setupOrg(t)

	created, err := s.CreateProject(&types.Project{Title: "Side business"})
	require.NoError(t, err)

	personal := typeIDByName(t, s, "personal")
	work := typeIDByName(t, s, "work")

	require.NoError(t, s.SetProjectTypes(created.ProjectID, []string{personal, work}))
	got, err := s.GetProject(created.ProjectID)
	require.NoError(t, err)
	require.Len(t, got.Types, 2)

	// Replacement is wholesale.
	require.NoError(t, s.SetProjectTypes(created.ProjectID, []string{work}))
	got, err = s.GetProject(created.ProjectID)
	require.NoError(t, err)
	require.Len(t, got.Types, 1)
	assert.Equal(t, "work", got.Types[0].Name)

	t.Run("unknown type rejected", func(t *testing.T) {
		err := s.SetProjectTypes(created.ProjectID, []string{"no-such-type"})
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("unknown project rejected", func(t *testing.T) {
		err := s.SetProjectTypes("no-such-project", []string{work})
		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}

func TestDeleteProjectCascadesJunction(t *testing.T) {
	s := setupOrg(t)

	created, err := s.CreateProject(&types.Project{Title: "doomed", Tags: []string{"x"}})
	require.NoError(t, err)
	id := created.ProjectID

	require.NoError(t, s.SetProjectTypes(id, []string{typeIDByName(t, s, "creative")}))
	require.NoError(t, s.LinkNote("note-1", types.ItemProject, id))

	require.NoError(t, s.DeleteProject(id))

	got, err := s.GetProject(id)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Zero(t, countRows(t, s, "project_project_types", "project_id = ?", id))
	assert.Zero(t, countRows(t, s, "project_tags", "project_id = ?", id))
	assert.Zero(t, countRows(t, s, "note_links", "item_id = ?", id))

	// The type itself survives; only the association goes.
	assert.NotEmpty(t, typeIDByName(t, s, "creative"))
}
