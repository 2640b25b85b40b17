package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

func TestAttachmentLifecycle(t *testing.T) {
	s := setupOrg(t)

	idea, err := s.CreateIdea(&types.Idea{Title: "Sketches"})
	require.NoError(t, err)

	created, err := s.AddAttachment(types.FileAttachment{
		ItemType:  types.ItemIdea,
		ItemID:    idea.IdeaID,
		Filename:  "sketch.png",
		Path:      "files/sketch.png",
		SizeBytes: 2048,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.AttachmentID)

	got, err := s.GetAttachment(created.AttachmentID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "sketch.png", got.Filename)
	assert.Equal(t, int64(2048), got.SizeBytes)

	list, err := s.ListAttachments(types.ItemIdea, idea.IdeaID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, s.DeleteAttachment(created.AttachmentID))
	got, err = s.GetAttachment(created.AttachmentID)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, s.DeleteAttachment(created.AttachmentID), types.ErrNotFound)
}

func TestAddAttachmentToMissingEntity(t *testing.T) {
	s := setupOrg(t)

	_, err := s.AddAttachment(types.FileAttachment{
		ItemType: types.ItemTask,
		ItemID:   "no-such-task",
		Filename: "x.txt",
		Path:     "files/x.txt",
	})
	assert.ErrorIs(t, err, types.ErrNotFound)
}
