package feedstock

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRepo(t *testing.T, dir string, urls ...string) {
	t.Helper()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	if len(urls) == 0 {
		return
	}
	_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: git.DefaultRemoteName,
		URLs: urls,
	})
	require.NoError(t, err)
}

func TestRepoNameFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://github.com/conda-forge/numpy-feedstock.git", "numpy-feedstock"},
		{"https://github.com/conda-forge/numpy-feedstock", "numpy-feedstock"},
		{"https://github.com/conda-forge/numpy-feedstock/", "numpy-feedstock"},
		{"git@github.com:conda-forge/numpy-feedstock.git", "numpy-feedstock"},
		{"ssh://git@github.com/conda-forge/numpy-feedstock.git", "numpy-feedstock"},
		{"git@example.com:numpy-feedstock.git", "numpy-feedstock"},
		{"numpy-feedstock", "numpy-feedstock"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RepoNameFromURL(tt.url), tt.url)
	}
}

func TestFeedstockName_FromDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "scipy-feedstock")
	require.NoError(t, os.MkdirAll(dir, 0755))

	assert.Equal(t, "scipy-feedstock", FeedstockName(dir))
}

func TestFeedstockName_FromOriginRemote(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "checkout")
	require.NoError(t, os.MkdirAll(dir, 0755))
	initRepo(t, dir, "https://github.com/conda-forge/scipy-feedstock.git")

	assert.Equal(t, "scipy-feedstock", FeedstockName(dir))

	name, err := NameFromGit(dir)
	require.NoError(t, err)
	assert.Equal(t, "scipy-feedstock", name)
}

func TestFeedstockName_FromNestedDirectory(t *testing.T) {
	dir := t.TempDir()
	initRepo(t, dir, "git@github.com:conda-forge/pandas-feedstock.git")
	nested := filepath.Join(dir, "recipe")
	require.NoError(t, os.MkdirAll(nested, 0755))

	name, err := NameFromGit(nested)
	require.NoError(t, err)
	assert.Equal(t, "pandas-feedstock", name)
}

func TestFeedstockName_NoRemoteFallsBackToBase(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "checkout")
	require.NoError(t, os.MkdirAll(dir, 0755))
	initRepo(t, dir)

	_, err := NameFromGit(dir)
	require.ErrorIs(t, err, ErrNoOriginRemote)
	assert.Equal(t, "checkout", FeedstockName(dir))
}

func TestFeedstockName_NotARepository(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.MkdirAll(dir, 0755))

	assert.Equal(t, "plain", FeedstockName(dir))
}
