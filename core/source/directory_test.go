package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectory(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "meshes"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "meshes", "a.obj"), []byte("v 0 0 0"), 0o644))

	dir := NewDirectory(root)
	assert.Equal(t, root, dir.Root())

	t.Run("Load existing", func(t *testing.T) {
		data, err := dir.Load(ctx, "meshes/a.obj")
		require.NoError(t, err)
		assert.Equal(t, "v 0 0 0", string(data))
	})

	t.Run("Modified existing", func(t *testing.T) {
		stamp, err := dir.Modified(ctx, "meshes/a.obj")
		require.NoError(t, err)
		assert.Positive(t, stamp)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := dir.Load(ctx, "meshes/b.obj")
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = dir.Modified(ctx, "meshes/b.obj")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Canceled context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := dir.Load(canceled, "meshes/a.obj")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
