package git_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/ruminaider/aaz-profiles/internal/git"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTestRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, git.Init(dir))
	return dir
}

func TestRun(t *testing.T) {
	dir := initTestRepo(t)
	out, err := git.Run(dir, "status", "--porcelain")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestIsRepo(t *testing.T) {
	t.Run("valid repo", func(t *testing.T) {
		dir := initTestRepo(t)
		assert.True(t, git.IsRepo(dir))
	})
	t.Run("not a repo", func(t *testing.T) {
		dir := t.TempDir()
		assert.False(t, git.IsRepo(dir))
	})
	t.Run("nonexistent dir", func(t *testing.T) {
		assert.False(t, git.IsRepo("/nonexistent/path"))
	})
}

func TestIsClean(t *testing.T) {
	dir := initTestRepo(t)
	t.Run("clean repo", func(t *testing.T) {
		clean, err := git.IsClean(dir)
		require.NoError(t, err)
		assert.True(t, clean)
	})
	t.Run("dirty repo", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "test.txt"), []byte("hello"), 0644))
		clean, err := git.IsClean(dir)
		require.NoError(t, err)
		assert.False(t, clean)
	})
}

func TestCommitPaths(t *testing.T) {
	dir := initTestRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("a: 1\n"), 0644))

	committed, err := git.CommitPaths(dir, "add a", "a.yaml")
	require.NoError(t, err)
	assert.True(t, committed)

	t.Run("nothing staged", func(t *testing.T) {
		committed, err := git.CommitPaths(dir, "again", "a.yaml")
		require.NoError(t, err)
		assert.False(t, committed)
	})

	t.Run("log", func(t *testing.T) {
		lines, err := git.Log(dir, "a.yaml", 5)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Contains(t, lines[0], "add a")
	})

	clean, err := git.IsClean(dir)
	require.NoError(t, err)
	assert.True(t, clean)
}

func TestLog_NoCommits(t *testing.T) {
	dir := initTestRepo(t)
	_, err := git.Log(dir, "", 5)
	assert.Error(t, err, "a repository without commits has no HEAD")

	cmd := exec.Command("git", "-C", dir, "commit", "--allow-empty", "-m", "empty")
	require.NoError(t, cmd.Run())
	lines, err := git.Log(dir, "missing.yaml", 5)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestRemove(t *testing.T) {
	dir := initTestRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("a: 1\n"), 0644))
	_, err := git.CommitPaths(dir, "add a", "a.yaml")
	require.NoError(t, err)

	require.NoError(t, os.Remove(filepath.Join(dir, "a.yaml")))
	require.NoError(t, git.Remove(dir, "a.yaml", "untracked.yaml"))

	staged, err := git.HasStagedChanges(dir)
	require.NoError(t, err)
	assert.True(t, staged)
}
