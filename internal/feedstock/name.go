package feedstock

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"

	"github.com/cameronsjo/pixigen/internal/pixi"
)

// ErrNoOriginRemote indicates the checkout has no usable origin remote.
var ErrNoOriginRemote = errors.New("no origin remote")

// FeedstockName returns the feedstock name for the checkout at root.
// A root directory named *-feedstock wins; otherwise the origin remote URL
// is consulted, so clones into arbitrary directories still resolve. The
// directory name is the final fallback.
func FeedstockName(root string) string {
	base := filepath.Base(root)
	if strings.HasSuffix(base, pixi.FeedstockSuffix) {
		return base
	}

	if name, err := NameFromGit(root); err == nil && name != "" {
		return name
	}

	return base
}

// NameFromGit returns the repository name of the origin remote of the git
// checkout containing dir.
func NameFromGit(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("open git repository: %w", err)
	}

	remote, err := repo.Remote(git.DefaultRemoteName)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoOriginRemote, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", ErrNoOriginRemote
	}

	return RepoNameFromURL(urls[0]), nil
}

// RepoNameFromURL extracts the repository name from an https, ssh or scp-style
// git URL: git@github.com:conda-forge/numpy-feedstock.git gives numpy-feedstock.
func RepoNameFromURL(url string) string {
	url = strings.TrimRight(url, "/")
	url = strings.TrimSuffix(url, ".git")
	if i := strings.LastIndexAny(url, "/:"); i >= 0 {
		url = url[i+1:]
	}
	return url
}
