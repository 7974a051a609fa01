package fileref

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTemp(t *testing.T) {
	m := NewManager()
	id := m.CreateTemp(Data, 7)

	ref, ok := m.Get(id)
	require.True(t, ok)
	assert.True(t, ref.Temp)
	assert.Equal(t, Data, ref.Usage)
	assert.Equal(t, int32(7), ref.Rock)
	assert.True(t, strings.HasPrefix(filepath.Base(ref.Path), "goglk-"))
	assert.True(t, strings.HasSuffix(ref.Path, ".glkdata"))

	// Two temps never share a path.
	other, _ := m.Get(m.CreateTemp(Data, 0))
	assert.NotEqual(t, ref.Path, other.Path)
}

func TestCreateNamed(t *testing.T) {
	m := NewManager()
	path := filepath.Join(t.TempDir(), "save.glkdata")
	id := m.CreateNamed(SavedGame, path, 3)

	ref, ok := m.Get(id)
	require.True(t, ok)
	assert.False(t, ref.Temp)
	assert.Equal(t, path, ref.Path)
	assert.Equal(t, SavedGame, ref.Usage)
}

func TestExistsAndDeleteFile(t *testing.T) {
	m := NewManager()
	path := filepath.Join(t.TempDir(), "data.glkdata")
	id := m.CreateNamed(Data, path, 0)

	exists, err := m.Exists(id)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	exists, err = m.Exists(id)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, m.DeleteFile(id))
	exists, _ = m.Exists(id)
	assert.False(t, exists)

	// The ref survives the file's deletion.
	_, ok := m.Get(id)
	assert.True(t, ok)
}

func TestDestroy(t *testing.T) {
	m := NewManager()
	id := m.CreateNamed(Transcript, "unused", 0)

	require.NoError(t, m.Destroy(id))
	_, ok := m.Get(id)
	assert.False(t, ok)
	assert.Zero(t, m.Len())

	assert.ErrorIs(t, m.Destroy(id), ErrUnknownFileRef)
}

func TestUnknownFileRef(t *testing.T) {
	m := NewManager()
	_, err := m.Exists(42)
	assert.ErrorIs(t, err, ErrUnknownFileRef)
	assert.ErrorIs(t, m.DeleteFile(42), ErrUnknownFileRef)
}

func TestUsageString(t *testing.T) {
	assert.Equal(t, "SavedGame", SavedGame.String())
	assert.Equal(t, "Unknown", Usage(99).String())
}
