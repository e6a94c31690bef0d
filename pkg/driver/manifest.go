package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/54k1/fakelang/pkg/typechecker"
)

// ManifestFileName is the project file searched for by FindManifest.
const ManifestFileName = "fakelang.yml"

const defaultPrompt = "> "

var ErrManifestNotFound = errors.New(ManifestFileName + " not found")

// Manifest represents the parsed contents of fakelang.yml.
type Manifest struct {
	Path    string
	Dir     string
	Name    string
	Prompt  string
	History string
	Types   map[string]string
	Prelude []*PreludeSpec
}

// PreludeSpec names a source file evaluated before the REPL or a script. Git
// entries are fetched first and Path is resolved inside the checkout.
type PreludeSpec struct {
	Path   string
	Git    string
	Rev    string
	Tag    string
	Branch string
}

// IsGit reports whether the entry comes from a git repository.
func (p *PreludeSpec) IsGit() bool {
	return p != nil && p.Git != ""
}

// ValidationError aggregates manifest validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "manifest: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("manifest validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// LoadManifest parses fakelang.yml from disk, returning a validated manifest.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return nil, fmt.Errorf("manifest: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("manifest: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw manifestFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("manifest: %s is empty", absPath)
		}
		return nil, fmt.Errorf("manifest: parse %s: %w", absPath, err)
	}

	manifest := raw.toManifest(absPath)
	if err := manifest.validate(); err != nil {
		return nil, err
	}
	return manifest, nil
}

// FindManifest walks up from start until it finds fakelang.yml.
func FindManifest(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve start directory %q: %w", start, err)
	}
	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	origin := dir
	for {
		candidate := filepath.Join(dir, ManifestFileName)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found from %s upwards: %w", ManifestFileName, origin, ErrManifestNotFound)
		}
		dir = parent
	}
}

// AliasNames returns the declared type aliases in sorted order.
func (m *Manifest) AliasNames() []string {
	names := make([]string, 0, len(m.Types))
	for name := range m.Types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolvePath makes a manifest-relative path absolute.
func (m *Manifest) ResolvePath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(m.Dir, path)
}

func (m *Manifest) validate() error {
	var errs ValidationError
	if m.Name == "" {
		errs.Issues = append(errs.Issues, "name must be provided")
	}

	for _, alias := range m.AliasNames() {
		target := m.Types[alias]
		if _, builtin := typechecker.BuiltinType(alias); builtin {
			errs.Issues = append(errs.Issues, fmt.Sprintf("types.%s: cannot redefine a builtin type", alias))
			continue
		}
		if _, ok := typechecker.BuiltinType(target); !ok {
			errs.Issues = append(errs.Issues, fmt.Sprintf("types.%s: %q is not a builtin type", alias, target))
		}
	}

	for i, entry := range m.Prelude {
		if entry == nil {
			errs.Issues = append(errs.Issues, fmt.Sprintf("prelude[%d]: entry must not be empty", i))
			continue
		}
		for _, issue := range entry.validate() {
			errs.Issues = append(errs.Issues, fmt.Sprintf("prelude[%d]: %s", i, issue))
		}
	}

	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

func (p *PreludeSpec) validate() []string {
	var errs []string
	if p.Path == "" {
		errs = append(errs, "path must be provided")
	}
	refs := 0
	for _, ref := range []string{p.Rev, p.Tag, p.Branch} {
		if ref != "" {
			refs++
		}
	}
	switch {
	case p.Git == "" && refs > 0:
		errs = append(errs, "rev, tag and branch only apply to git entries")
	case p.Git != "" && refs != 1:
		errs = append(errs, "git entries need exactly one of rev, tag or branch")
	}
	return errs
}

type manifestFile struct {
	Name    string            `yaml:"name"`
	Prompt  string            `yaml:"prompt"`
	History string            `yaml:"history"`
	Types   map[string]string `yaml:"types"`
	Prelude []preludeYAML     `yaml:"prelude"`
}

type preludeYAML struct {
	spec *PreludeSpec
}

// UnmarshalYAML accepts either a bare path or a mapping.
func (p *preludeYAML) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			p.spec = nil
			return nil
		}
		p.spec = &PreludeSpec{Path: strings.TrimSpace(value.Value)}
		return nil
	case yaml.MappingNode:
		var raw struct {
			Path   string `yaml:"path"`
			Git    string `yaml:"git"`
			Rev    string `yaml:"rev"`
			Tag    string `yaml:"tag"`
			Branch string `yaml:"branch"`
		}
		if err := value.Decode(&raw); err != nil {
			return err
		}
		p.spec = &PreludeSpec{
			Path:   strings.TrimSpace(raw.Path),
			Git:    strings.TrimSpace(raw.Git),
			Rev:    strings.TrimSpace(raw.Rev),
			Tag:    strings.TrimSpace(raw.Tag),
			Branch: strings.TrimSpace(raw.Branch),
		}
		return nil
	case yaml.AliasNode:
		return p.UnmarshalYAML(value.Alias)
	default:
		return fmt.Errorf("manifest: prelude entries must be a path or a mapping, found %s", value.ShortTag())
	}
}

func (mf manifestFile) toManifest(path string) *Manifest {
	result := &Manifest{
		Path:    path,
		Dir:     filepath.Dir(path),
		Name:    strings.TrimSpace(mf.Name),
		Prompt:  mf.Prompt,
		History: strings.TrimSpace(mf.History),
		Types:   make(map[string]string, len(mf.Types)),
		Prelude: make([]*PreludeSpec, 0, len(mf.Prelude)),
	}
	if result.Prompt == "" {
		result.Prompt = defaultPrompt
	}
	if result.History != "" {
		result.History = result.ResolvePath(result.History)
	}
	for alias, target := range mf.Types {
		result.Types[strings.TrimSpace(alias)] = strings.TrimSpace(target)
	}
	for _, entry := range mf.Prelude {
		result.Prelude = append(result.Prelude, entry.spec)
	}
	return result
}
