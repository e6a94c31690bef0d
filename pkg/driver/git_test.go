package driver

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

func initGitRepo(t *testing.T, dir string) (*git.Repository, string) {
	t.Helper()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit: %v", err)
	}
	return repo, commitAll(t, repo, dir, "init")
}

func commitAll(t *testing.T, repo *git.Repository, dir, message string) string {
	t.Helper()
	worktree, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree: %v", err)
	}
	if err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == filepath.Join(dir, ".git") {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		_, err = worktree.Add(filepath.ToSlash(rel))
		return err
	}); err != nil {
		t.Fatalf("stage files: %v", err)
	}
	hash, err := worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "fakelang",
			Email: "fakelang@example.com",
			When:  time.Now(),
		},
	})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	return hash.String()
}

func TestGitFetcherRevAndTag(t *testing.T) {
	root := t.TempDir()
	repoDir := filepath.Join(root, "repo")
	writeFile(t, filepath.Join(repoDir, "prelude.fl"), "let shared = 1;")
	repo, first := initGitRepo(t, repoDir)
	if _, err := repo.CreateTag("v1.0.0", plumbing.NewHash(first), nil); err != nil {
		t.Fatalf("CreateTag: %v", err)
	}

	writeFile(t, filepath.Join(repoDir, "prelude.fl"), "let shared = 2;")
	second := commitAll(t, repo, repoDir, "bump")

	fetcher := NewGitFetcher(filepath.Join(root, "cache"), nil)

	tagFile, commit, err := fetcher.Fetch(&PreludeSpec{Git: repoDir, Tag: "v1.0.0", Path: "prelude.fl"})
	if err != nil {
		t.Fatalf("Fetch tag: %v", err)
	}
	if commit != first {
		t.Fatalf("tag resolved to %s, want %s", commit, first)
	}
	assertFileContains(t, tagFile, "shared = 1")

	revFile, commit, err := fetcher.Fetch(&PreludeSpec{Git: repoDir, Rev: second, Path: "prelude.fl"})
	if err != nil {
		t.Fatalf("Fetch rev: %v", err)
	}
	if commit != second {
		t.Fatalf("rev resolved to %s, want %s", commit, second)
	}
	assertFileContains(t, revFile, "shared = 2")

	// Pinned checkouts are served from the cache once the source is gone.
	if err := os.RemoveAll(repoDir); err != nil {
		t.Fatalf("remove source repo: %v", err)
	}
	again, commit, err := fetcher.Fetch(&PreludeSpec{Git: repoDir, Rev: second, Path: "prelude.fl"})
	if err != nil || again != revFile || commit != second {
		t.Fatalf("cached rev Fetch = %s %s, %v; want %s", again, commit, err, revFile)
	}
	again, commit, err = fetcher.Fetch(&PreludeSpec{Git: repoDir, Tag: "v1.0.0", Path: "prelude.fl"})
	if err != nil || again != tagFile || commit != first {
		t.Fatalf("cached tag Fetch = %s %s, %v; want %s", again, commit, err, tagFile)
	}
}

func TestGitFetcherRefreshesBranch(t *testing.T) {
	root := t.TempDir()
	repoDir := filepath.Join(root, "repo")
	writeFile(t, filepath.Join(repoDir, "lib", "prelude.fl"), "let version = 1;")
	repo, first := initGitRepo(t, repoDir)
	head, err := repo.Head()
	if err != nil {
		t.Fatalf("Head: %v", err)
	}
	branch := head.Name().Short()

	fetcher := NewGitFetcher(filepath.Join(root, "cache"), nil)
	entry := &PreludeSpec{Git: repoDir, Branch: branch, Path: "lib/prelude.fl"}
	file, commit, err := fetcher.Fetch(entry)
	if err != nil {
		t.Fatalf("Fetch branch: %v", err)
	}
	if commit != first {
		t.Fatalf("branch resolved to %s, want %s", commit, first)
	}
	assertFileContains(t, file, "version = 1")

	writeFile(t, filepath.Join(repoDir, "lib", "prelude.fl"), "let version = 2;")
	second := commitAll(t, repo, repoDir, "bump")
	again, commit, err := fetcher.Fetch(entry)
	if err != nil {
		t.Fatalf("refetch branch: %v", err)
	}
	if commit != second || again != file {
		t.Fatalf("refetch = %s at %s, want %s at %s", again, commit, file, second)
	}
	assertFileContains(t, file, "version = 2")
}

func TestGitFetcherMissingFile(t *testing.T) {
	root := t.TempDir()
	repoDir := filepath.Join(root, "repo")
	writeFile(t, filepath.Join(repoDir, "prelude.fl"), "let a = 1;")
	_, rev := initGitRepo(t, repoDir)

	fetcher := NewGitFetcher(filepath.Join(root, "cache"), nil)
	_, _, err := fetcher.Fetch(&PreludeSpec{Git: repoDir, Rev: rev, Path: "nope.fl"})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected a not-exist error, got %v", err)
	}
}

func TestLoadPreludesFromGit(t *testing.T) {
	root := t.TempDir()
	repoDir := filepath.Join(root, "lib")
	writeFile(t, filepath.Join(repoDir, "src", "base.fl"), "let greeting = \"hello\";")
	_, rev := initGitRepo(t, repoDir)

	appDir := filepath.Join(root, "app")
	writeFile(t, filepath.Join(appDir, ManifestFileName), `
name: app
prelude:
  - git: `+repoDir+`
    rev: `+rev+`
    path: src/base.fl
`)
	m, err := LoadManifest(filepath.Join(appDir, ManifestFileName))
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}

	s := NewSession()
	loader := NewLoader(NewGitFetcher(filepath.Join(root, "cache"), nil), nil)
	if err := loader.LoadPreludes(s, m); err != nil {
		t.Fatalf("LoadPreludes: %v", err)
	}
	if got := mustEval(t, s, `greeting + "!"`); got.String() != "hello!" {
		t.Fatalf("greeting = %v", got)
	}
}

func TestGitFetcherRejectsEscapingPath(t *testing.T) {
	fetcher := NewGitFetcher(t.TempDir(), nil)
	for _, path := range []string{"../outside.fl", "/etc/passwd", "", "a/../../b.fl"} {
		_, _, err := fetcher.Fetch(&PreludeSpec{Git: "https://example.com/x.git", Rev: "abc", Path: path})
		if err == nil || !strings.Contains(err.Error(), "escapes the checkout") {
			t.Fatalf("path %q: expected escaping path error, got %v", path, err)
		}
	}

	m := &Manifest{
		Name:    "demo",
		Dir:     t.TempDir(),
		Prelude: []*PreludeSpec{{Git: "https://example.com/x.git", Rev: "abc", Path: "../outside.fl"}},
	}
	err := NewLoader(fetcher, nil).LoadPreludes(NewSession(), m)
	if err == nil || !strings.Contains(err.Error(), "prelude[0]") {
		t.Fatalf("expected prelude error, got %v", err)
	}
}

func TestPreludePins(t *testing.T) {
	cases := []struct {
		entry    PreludeSpec
		dir      string
		revision plumbing.Revision
		reusable bool
	}{
		{PreludeSpec{Rev: " abc123 "}, "rev-abc123", "abc123", true},
		{PreludeSpec{Tag: "v1"}, "tag-v1", "refs/tags/v1", true},
		{PreludeSpec{Branch: "feature/x"}, "branch-feature_x", "refs/heads/feature/x", false},
	}
	for _, tc := range cases {
		pin, err := pinFor(&tc.entry)
		if err != nil {
			t.Fatalf("pinFor(%#v): %v", tc.entry, err)
		}
		if pin.dirName() != tc.dir || pin.revision() != tc.revision || pin.reusable() != tc.reusable {
			t.Fatalf("pin %#v: dir %q revision %q reusable %v", pin, pin.dirName(), pin.revision(), pin.reusable())
		}
	}
	if _, err := pinFor(&PreludeSpec{}); err == nil {
		t.Fatalf("expected error without rev, tag or branch")
	}
	if got := cacheSegment("https://x/y.git"); got != "https___x_y.git" {
		t.Fatalf("cacheSegment = %q", got)
	}
	if got := cacheSegment(".."); got != "_" {
		t.Fatalf("cacheSegment(..) = %q", got)
	}
	if !isLocalSource("/srv/lib") || !isLocalSource("file:///srv/lib") || isLocalSource("https://example.com/lib.git") {
		t.Fatalf("isLocalSource misclassified a source")
	}
}

func assertFileContains(t *testing.T, path, want string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	if !strings.Contains(string(data), want) {
		t.Fatalf("%s = %q, want it to contain %q", path, data, want)
	}
}
