// Taxonomy tests: seeding, default protection, and reference clearing.

package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

func TestSeededDefaults(t *testing.T) {
	s := setupOrg(t)

	ptypes, err := s.ListProjectTypes()
	require.NoError(t, err)
	names := []string{}
	for _, pt := range ptypes {
		assert.True(t, pt.IsDefault)
		names = append(names, pt.Name)
	}
	assert.ElementsMatch(t, []string{"personal", "work", "creative"}, names)

	groups, err := s.ListGroups()
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "inbox", groups[0].Name)
	assert.True(t, groups[0].IsDefault)
}

func TestSeedingIsIdempotent(t *testing.T) {
	dir := t.TempDir() + "/org.db"

	s1, err := OpenOrgStore(dir, nil)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := OpenOrgStore(dir, nil)
	require.NoError(t, err)
	t.Cleanup(func() { s2.Close() })

	ptypes, err := s2.ListProjectTypes()
	require.NoError(t, err)
	assert.Len(t, ptypes, 3)
}

func TestDefaultTaxonomyProtected(t *testing.T) {
	s := setupOrg(t)

	ptypes, err := s.ListProjectTypes()
	require.NoError(t, err)
	assert.ErrorIs(t, s.DeleteProjectType(ptypes[0].TypeID), types.ErrDefaultProtected)

	groups, err := s.ListGroups()
	require.NoError(t, err)
	assert.ErrorIs(t, s.DeleteGroup(groups[0].GroupID), types.ErrDefaultProtected)
}

func TestCustomProjectTypeLifecycle(t *testing.T) {
	s := setupOrg(t)

	created, err := s.CreateProjectType(&types.ProjectType{Name: "research", Color: "#5856d6", Icon: "book"})
	require.NoError(t, err)
	assert.False(t, created.IsDefault)

	name := "deep-research"
	updated, err := s.UpdateProjectType(created.TypeID, types.TaxonomyUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "deep-research", updated.Name)
	assert.False(t, updated.IsDefault)

	// Assign it, then delete: the junction rows go with it.
	p, err := s.CreateProject(&types.Project{Title: "Paper"})
	require.NoError(t, err)
	require.NoError(t, s.SetProjectTypes(p.ProjectID, []string{created.TypeID}))

	require.NoError(t, s.DeleteProjectType(created.TypeID))
	got, err := s.GetProjectType(created.TypeID)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Zero(t, countRows(t, s, "project_project_types", "type_id = ?", created.TypeID))

	// The project itself is untouched.
	stillThere, err := s.GetProject(p.ProjectID)
	require.NoError(t, err)
	require.NotNil(t, stillThere)
	assert.Empty(t, stillThere.Types)
}

func TestDeleteGroupClearsReferences(t *testing.T) {
	s := setupOrg(t)

	g, err := s.CreateGroup(&types.Group{Name: "errands", Color: "#ff3b30", Icon: "cart"})
	require.NoError(t, err)

	task, err := s.CreateTask(&types.Task{Title: "Buy milk", GroupID: g.GroupID})
	require.NoError(t, err)
	idea, err := s.CreateIdea(&types.Idea{Title: "Meal prep", GroupID: g.GroupID})
	require.NoError(t, err)

	require.NoError(t, s.DeleteGroup(g.GroupID))

	gotTask, err := s.GetTask(task.TaskID)
	require.NoError(t, err)
	assert.Empty(t, gotTask.GroupID)
	gotIdea, err := s.GetIdea(idea.IdeaID)
	require.NoError(t, err)
	assert.Empty(t, gotIdea.GroupID)
}

func TestTaxonomyValidation(t *testing.T) {
	s := setupOrg(t)

	_, err := s.CreateProjectType(&types.ProjectType{Name: "  "})
	assert.ErrorIs(t, err, types.ErrValidation)

	_, err = s.CreateGroup(&types.Group{Name: ""})
	assert.ErrorIs(t, err, types.ErrValidation)

	assert.ErrorIs(t, s.DeleteProjectType("no-such-id"), types.ErrNotFound)
	assert.ErrorIs(t, s.DeleteGroup("no-such-id"), types.ErrNotFound)
}
