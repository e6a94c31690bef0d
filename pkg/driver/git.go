package driver

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// GitFetcher materialises git prelude entries under a cache directory laid out
// as <cache>/git/<repository>/<pin>. Rev and tag checkouts are reused as long
// as they exist; branch checkouts are refreshed on every fetch.
type GitFetcher struct {
	cacheDir string
	logger   *slog.Logger
}

func NewGitFetcher(cacheDir string, logger *slog.Logger) *GitFetcher {
	if cacheDir == "" {
		return nil
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GitFetcher{cacheDir: cacheDir, logger: logger}
}

// gitPin is what a prelude entry is pinned to: exactly one of a revision, a tag
// or a branch.
type gitPin struct {
	kind string
	name string
}

func pinFor(entry *PreludeSpec) (gitPin, error) {
	switch {
	case strings.TrimSpace(entry.Rev) != "":
		return gitPin{kind: "rev", name: strings.TrimSpace(entry.Rev)}, nil
	case strings.TrimSpace(entry.Tag) != "":
		return gitPin{kind: "tag", name: strings.TrimSpace(entry.Tag)}, nil
	case strings.TrimSpace(entry.Branch) != "":
		return gitPin{kind: "branch", name: strings.TrimSpace(entry.Branch)}, nil
	}
	return gitPin{}, errors.New("git entries need one of rev, tag or branch")
}

func (p gitPin) dirName() string { return p.kind + "-" + cacheSegment(p.name) }
func (p gitPin) reusable() bool  { return p.kind != "branch" }

// revision is what the pin resolves through once the repository is cloned.
func (p gitPin) revision() plumbing.Revision {
	switch p.kind {
	case "tag":
		return plumbing.Revision(plumbing.NewTagReferenceName(p.name))
	case "branch":
		return plumbing.Revision(plumbing.NewBranchReferenceName(p.name))
	default:
		return plumbing.Revision(p.name)
	}
}

// Fetch returns the path of the entry's file inside a checkout together with the
// commit the checkout is at.
func (g *GitFetcher) Fetch(entry *PreludeSpec) (string, string, error) {
	if g == nil {
		return "", "", errors.New("git fetcher unavailable")
	}
	url := strings.TrimSpace(entry.Git)
	if url == "" {
		return "", "", errors.New("git URL required")
	}
	rel := filepath.ToSlash(strings.TrimSpace(entry.Path))
	if !fs.ValidPath(rel) || rel == "." {
		return "", "", fmt.Errorf("git source %s: path %q escapes the checkout", url, entry.Path)
	}
	pin, err := pinFor(entry)
	if err != nil {
		return "", "", fmt.Errorf("git source %s: %w", url, err)
	}

	checkout := filepath.Join(g.cacheDir, "git", cacheSegment(url), pin.dirName())
	commit, err := g.sync(url, pin, checkout)
	if err != nil {
		return "", "", err
	}
	file := filepath.Join(checkout, filepath.FromSlash(rel))
	if _, err := os.Stat(file); err != nil {
		return "", "", fmt.Errorf("git source %s (%s %s): %w", url, pin.kind, pin.name, err)
	}
	return file, commit, nil
}

// sync makes checkout hold the pinned commit. A fresh clone is staged next to
// the checkout and renamed into place, so an interrupted fetch never leaves a
// half-written checkout behind.
func (g *GitFetcher) sync(url string, pin gitPin, checkout string) (string, error) {
	if pin.reusable() {
		if commit, err := headCommit(checkout); err == nil {
			g.logger.Debug("git prelude cached", "url", url, pin.kind, pin.name, "commit", commit)
			return commit, nil
		}
	}

	parent := filepath.Dir(checkout)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return "", err
	}
	staging, err := os.MkdirTemp(parent, ".staging-*")
	if err != nil {
		return "", err
	}
	commit, err := g.clone(url, pin, staging)
	if err != nil {
		_ = os.RemoveAll(staging)
		return "", err
	}

	if current, err := headCommit(checkout); err == nil && current == commit {
		_ = os.RemoveAll(staging)
		return commit, nil
	}
	if err := os.RemoveAll(checkout); err != nil {
		_ = os.RemoveAll(staging)
		return "", err
	}
	if err := os.Rename(staging, checkout); err != nil {
		_ = os.RemoveAll(staging)
		return "", err
	}
	g.logger.Info("git prelude checked out", "url", url, pin.kind, pin.name, "commit", commit)
	return commit, nil
}

// clone fetches only the pinned branch or tag when possible. Remote tag and
// branch clones are also shallow since a prelude needs a single tree.
func (g *GitFetcher) clone(url string, pin gitPin, dir string) (string, error) {
	opts := &git.CloneOptions{URL: url}
	if pin.kind != "rev" {
		opts.ReferenceName = plumbing.ReferenceName(pin.revision())
		opts.SingleBranch = true
		if !isLocalSource(url) {
			opts.Depth = 1
		}
	}
	g.logger.Info("cloning prelude source", "url", url, pin.kind, pin.name, "shallow", opts.Depth > 0)
	repo, err := git.PlainClone(dir, false, opts)
	if err != nil {
		return "", fmt.Errorf("git clone %s: %w", url, err)
	}

	hash, err := repo.ResolveRevision(pin.revision())
	if err != nil && pin.kind != "rev" {
		// A single-ref clone leaves HEAD on the pinned ref even when no local
		// ref of that name was written.
		if head, headErr := repo.Head(); headErr == nil {
			h := head.Hash()
			hash, err = &h, nil
		}
	}
	if err != nil {
		return "", fmt.Errorf("git source %s: resolve %s %s: %w", url, pin.kind, pin.name, err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return "", err
	}
	// Detach at the commit so headCommit reads the same hash for every pin kind.
	if err := worktree.Checkout(&git.CheckoutOptions{Hash: *hash, Force: true}); err != nil {
		return "", fmt.Errorf("git checkout %s: %w", hash, err)
	}
	return hash.String(), nil
}

func headCommit(dir string) (string, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return "", err
	}
	head, err := repo.Head()
	if err != nil {
		return "", err
	}
	return head.Hash().String(), nil
}

func isLocalSource(url string) bool {
	return strings.HasPrefix(url, "file://") || filepath.IsAbs(url) || strings.HasPrefix(url, ".")
}

// cacheSegment turns a URL or ref name into a single directory name.
func cacheSegment(s string) string {
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-':
			return r
		}
		return '_'
	}, strings.TrimSpace(s))
	if s == "" || s == "." || s == ".." {
		return "_"
	}
	return s
}
