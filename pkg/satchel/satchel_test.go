package satchel

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

func TestOpenAndClose(t *testing.T) {
	dir := t.TempDir()
	stores, err := Open(types.Config{
		CorpusPath: filepath.Join(dir, "corpus.db"),
		OrgPath:    filepath.Join(dir, "org.db"),
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, stores.Org)
	require.NotNil(t, stores.Corpus)

	// Both stores are usable through one handle.
	task, err := stores.Org.CreateTask(&types.Task{Title: "first"})
	require.NoError(t, err)
	assert.NotEmpty(t, task.TaskID)

	note, err := stores.Corpus.GetNote("absent")
	require.NoError(t, err)
	assert.Nil(t, note)

	require.NoError(t, stores.Close())
	require.NoError(t, stores.Close())
}

func TestOpenRejectsBadConfig(t *testing.T) {
	_, err := Open(types.Config{OrgPath: "org.db"}, nil)
	assert.ErrorIs(t, err, types.ErrCorpusPathEmpty)

	_, err = Open(types.Config{CorpusPath: "corpus.db"}, nil)
	assert.ErrorIs(t, err, types.ErrOrgPathEmpty)
}
