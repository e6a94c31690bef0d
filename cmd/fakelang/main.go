package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/54k1/fakelang/pkg/driver"
	"github.com/54k1/fakelang/pkg/runtime"
	"github.com/54k1/fakelang/pkg/typedast"
)

const cliToolVersion = "fakelang 0.1.0-dev"

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(newCLI(os.Stdin, os.Stdout, os.Stderr).run(os.Args[1:]))
}

type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

func newCLI(stdin io.Reader, stdout, stderr io.Writer) *cli {
	return &cli{stdin: stdin, stdout: stdout, stderr: stderr}
}

func (c *cli) run(args []string) int {
	global := flag.NewFlagSet("fakelang", flag.ContinueOnError)
	global.SetOutput(c.stderr)
	global.Usage = c.printUsage
	verbose := global.Bool("v", false, "log pipeline stages at debug level")
	if err := global.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	c.logger = slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: level}))

	rest := global.Args()
	if len(rest) == 0 {
		return c.runREPL(nil)
	}
	switch rest[0] {
	case "repl":
		return c.runREPL(rest[1:])
	case "run":
		return c.runFile(rest[1:])
	case "tokens":
		return c.runTokens(rest[1:])
	case "ast":
		return c.runAST(rest[1:])
	case "version", "--version", "-V":
		fmt.Fprintln(c.stdout, cliToolVersion)
		return exitOK
	case "help":
		c.printUsage()
		return exitOK
	default:
		fmt.Fprintf(c.stderr, "unknown command %q\n", rest[0])
		c.printUsage()
		return exitUsage
	}
}

func (c *cli) runFile(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	watch := fs.Bool("watch", false, "re-run the file whenever it changes")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(c.stderr, "usage: fakelang run [-watch] FILE")
		return exitUsage
	}
	path := fs.Arg(0)
	if !*watch {
		return c.execute(path)
	}
	return c.watch(path)
}

// execute runs path in a fresh session, printing the value of each expression
// statement.
func (c *cli) execute(path string) int {
	session, loader, err := c.prepare(filepath.Dir(path))
	if err != nil {
		fmt.Fprintln(c.stderr, err)
		return exitFailure
	}
	loader.OnValue = func(v runtime.Value) { fmt.Fprintln(c.stdout, v) }
	if err := loader.RunFile(session, path); err != nil {
		fmt.Fprintln(c.stderr, err)
		return exitFailure
	}
	return exitOK
}

func (c *cli) runTokens(args []string) int {
	name, source, code := c.readSource("tokens", args)
	if code != exitOK {
		return code
	}
	tokens, err := driver.NewSession(driver.WithLogger(c.logger)).Tokens(source)
	if err != nil {
		fmt.Fprintf(c.stderr, "%s: %v\n", name, err)
		return exitFailure
	}
	for _, tok := range tokens {
		fmt.Fprintf(c.stdout, "%s\t%s\n", tok.Position, tok)
	}
	return exitOK
}

// runAST prints the typed tree of each statement. Statements are also executed
// so later lines can refer to earlier declarations.
func (c *cli) runAST(args []string) int {
	name, source, code := c.readSource("ast", args)
	if code != exitOK {
		return code
	}
	dir := "."
	if name != "-e" {
		dir = filepath.Dir(name)
	}
	session, _, err := c.prepare(dir)
	if err != nil {
		fmt.Fprintln(c.stderr, err)
		return exitFailure
	}
	for i, line := range strings.Split(source, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		typed, err := session.Check(line)
		if err == nil {
			fmt.Fprintln(c.stdout, typedast.FormatStatement(typed))
			_, err = session.Execute(typed)
		}
		if err != nil {
			fmt.Fprintf(c.stderr, "%s:%d: %v\n", name, i+1, err)
			return exitFailure
		}
	}
	return exitOK
}

// readSource handles the shared `FILE | -e SRC` arguments.
func (c *cli) readSource(command string, args []string) (string, string, int) {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	expr := fs.String("e", "", "source text to use instead of a file")
	if err := fs.Parse(args); err != nil {
		return "", "", exitUsage
	}
	switch {
	case *expr != "" && fs.NArg() == 0:
		return "-e", *expr, exitOK
	case *expr == "" && fs.NArg() == 1:
		data, err := os.ReadFile(fs.Arg(0))
		if err != nil {
			fmt.Fprintln(c.stderr, err)
			return "", "", exitFailure
		}
		return fs.Arg(0), string(data), exitOK
	default:
		fmt.Fprintf(c.stderr, "usage: fakelang %s FILE | -e SRC\n", command)
		return "", "", exitUsage
	}
}

// prepare builds a session for a project rooted at or above dir, loading the
// manifest's aliases and preludes when one exists.
func (c *cli) prepare(dir string) (*driver.Session, *driver.Loader, error) {
	manifest, err := c.loadManifest(dir)
	if err != nil {
		return nil, nil, err
	}
	return c.prepareManifest(manifest)
}

func (c *cli) prepareManifest(manifest *driver.Manifest) (*driver.Session, *driver.Loader, error) {
	session := driver.NewSession(driver.WithLogger(c.logger))
	loader := driver.NewLoader(nil, c.logger)
	if manifest == nil {
		return session, loader, nil
	}
	cacheDir, err := resolveCacheDir()
	if err != nil {
		return nil, nil, err
	}
	loader.Fetcher = driver.NewGitFetcher(cacheDir, c.logger)
	if err := loader.LoadPreludes(session, manifest); err != nil {
		return nil, nil, err
	}
	return session, loader, nil
}

// loadManifest returns nil without error when no manifest exists.
func (c *cli) loadManifest(start string) (*driver.Manifest, error) {
	path, err := driver.FindManifest(start)
	if errors.Is(err, driver.ErrManifestNotFound) {
		c.logger.Debug("no manifest", "start", start)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.logger.Info("using manifest", "path", path)
	return driver.LoadManifest(path)
}

// resolveCacheDir honours FAKELANG_HOME and defaults to ~/.fakelang.
func resolveCacheDir() (string, error) {
	if home := strings.TrimSpace(os.Getenv("FAKELANG_HOME")); home != "" {
		abs, err := filepath.Abs(home)
		if err != nil {
			return "", fmt.Errorf("resolve FAKELANG_HOME %q: %w", home, err)
		}
		return filepath.Join(abs, "cache"), nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve user home: %w", err)
	}
	return filepath.Join(userHome, ".fakelang", "cache"), nil
}

func (c *cli) printUsage() {
	fmt.Fprintln(c.stderr, "Usage:")
	fmt.Fprintln(c.stderr, "  fakelang [-v] [repl]")
	fmt.Fprintln(c.stderr, "  fakelang [-v] run [-watch] FILE")
	fmt.Fprintln(c.stderr, "  fakelang [-v] tokens FILE | -e SRC")
	fmt.Fprintln(c.stderr, "  fakelang [-v] ast FILE | -e SRC")
	fmt.Fprintln(c.stderr, "  fakelang version")
}
