package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hdrview/internal/adapters/fs"
	"go.trai.ch/hdrview/internal/core/domain"
)

func TestWalker_Images(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.hdr", "a.exr", "notes.txt", "c.HDR.bak"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.exr"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested.exr", "deep.exr"), nil, 0o600))

	w := fs.NewWalker()

	t.Run("directory", func(t *testing.T) {
		got, err := w.Images(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "a.exr"),
			filepath.Join(dir, "b.hdr"),
		}, got)
	})

	t.Run("single file", func(t *testing.T) {
		file := filepath.Join(dir, "notes.txt")
		got, err := w.Images(file)
		require.NoError(t, err)
		assert.Equal(t, []string{file}, got)
	})

	t.Run("missing input", func(t *testing.T) {
		_, err := w.Images(filepath.Join(dir, "missing"))
		require.ErrorContains(t, err, domain.ErrFileReadFailed.Error())
	})
}
