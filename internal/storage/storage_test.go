package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOSBasicOperations(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewOS()

	info := filepath.Join(root, "info")
	require.NoError(t, os.MkdirAll(info, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(info, "a.trashinfo"), []byte("hello world"), 0o644))

	require.True(t, store.Exists(info))
	require.True(t, store.Exists(filepath.Join(info, "a.trashinfo")))
	require.False(t, store.Exists(filepath.Join(info, "missing")))

	entries, err := store.EntriesIfDirExists(info)
	require.NoError(t, err)
	require.Equal(t, []string{"a.trashinfo"}, entries)

	content, err := store.ContentsOf(filepath.Join(info, "a.trashinfo"))
	require.NoError(t, err)
	require.Equal(t, "hello world", content)

	require.NoError(t, store.RemoveFile(filepath.Join(info, "a.trashinfo")))
	require.False(t, store.Exists(filepath.Join(info, "a.trashinfo")))
}

func TestOSEntriesIfDirExists(t *testing.T) {
	t.Parallel()

	store := NewOS()

	t.Run("missing directory yields nothing", func(t *testing.T) {
		entries, err := store.EntriesIfDirExists(filepath.Join(t.TempDir(), "nope"))
		require.NoError(t, err)
		require.Empty(t, entries)
	})

	t.Run("regular file is an error", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "plain")
		require.NoError(t, os.WriteFile(file, nil, 0o644))

		_, err := store.EntriesIfDirExists(file)
		require.Error(t, err)
	})
}

func TestOSRemove(t *testing.T) {
	t.Parallel()

	store := NewOS()

	t.Run("strict removal of a missing file fails", func(t *testing.T) {
		err := store.RemoveFile(filepath.Join(t.TempDir(), "gone"))
		require.Error(t, err)
		require.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("tolerant removal of a missing file succeeds", func(t *testing.T) {
		require.NoError(t, store.RemoveFileIfExists(filepath.Join(t.TempDir(), "gone")))
	})

	t.Run("tolerant removal deletes a directory tree", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "backup")
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "f"), []byte("x"), 0o644))

		require.NoError(t, store.RemoveFileIfExists(dir))
		require.False(t, store.Exists(dir))
	})

	t.Run("tolerant removal deletes a dangling symlink", func(t *testing.T) {
		dir := t.TempDir()
		link := filepath.Join(dir, "link")
		require.NoError(t, os.Symlink(filepath.Join(dir, "target"), link))

		require.True(t, store.Exists(link))
		require.NoError(t, store.RemoveFileIfExists(link))
		require.False(t, store.Exists(link))
	})
}

func TestMemory(t *testing.T) {
	t.Parallel()

	store := NewMemory()
	store.WriteFile("/t/info/a.trashinfo", "x")
	store.WriteFile("/t/files/a", "data")
	store.WriteFile("/t/files/dir/nested", "data")
	store.Mkdir("/t/empty")

	t.Run("lists immediate children only", func(t *testing.T) {
		entries, err := store.EntriesIfDirExists("/t")
		require.NoError(t, err)
		require.Equal(t, []string{"empty", "files", "info"}, entries)

		entries, err = store.EntriesIfDirExists("/t/files")
		require.NoError(t, err)
		require.Equal(t, []string{"a", "dir"}, entries)
	})

	t.Run("missing directory yields nothing", func(t *testing.T) {
		entries, err := store.EntriesIfDirExists("/nowhere")
		require.NoError(t, err)
		require.Empty(t, entries)
	})

	t.Run("exists covers files and directories", func(t *testing.T) {
		require.True(t, store.Exists("/t/files/a"))
		require.True(t, store.Exists("/t/files/dir"))
		require.True(t, store.Exists("/t/empty"))
		require.False(t, store.Exists("/t/files/b"))
	})

	t.Run("strict removal fails for a missing file", func(t *testing.T) {
		err := store.RemoveFile("/t/files/b")
		require.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("tolerant removal deletes a tree", func(t *testing.T) {
		require.NoError(t, store.RemoveFileIfExists("/t/files/dir"))
		require.False(t, store.Exists("/t/files/dir"))
		require.True(t, store.Exists("/t/files/a"))
	})

	t.Run("injected removal errors surface", func(t *testing.T) {
		store.RemoveErrors["/t/info/a.trashinfo"] = fs.ErrPermission
		err := store.RemoveFile("/t/info/a.trashinfo")
		require.ErrorIs(t, err, fs.ErrPermission)
		require.True(t, store.Exists("/t/info/a.trashinfo"))
	})
}
