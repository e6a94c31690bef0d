package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/54k1/fakelang/pkg/driver"
	"github.com/54k1/fakelang/pkg/runtime"
)

const (
	defaultPrompt = "> "
	historyLimit  = 1000
)

// lineEditor is the part of liner.State the read loop uses.
type lineEditor interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

func (c *cli) runREPL(args []string) int {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return exitUsage
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(c.stderr, err)
		return exitFailure
	}
	manifest, err := c.loadManifest(cwd)
	if err != nil {
		fmt.Fprintln(c.stderr, err)
		return exitFailure
	}
	session, _, err := c.prepareManifest(manifest)
	if err != nil {
		fmt.Fprintln(c.stderr, err)
		return exitFailure
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	prompt := defaultPrompt
	var history *driver.History
	if manifest != nil {
		prompt = manifest.Prompt
		if manifest.History != "" {
			history, err = driver.OpenHistory(manifest.History)
			if err != nil {
				c.logger.Warn("history unavailable", "error", err)
			} else {
				defer history.Close()
				c.restoreHistory(ln, history)
			}
		}
	}

	fmt.Fprintf(c.stdout, "%s (:quit to exit, :env to list bindings)\n", cliToolVersion)
	return c.repl(session, ln, prompt, history)
}

func (c *cli) restoreHistory(ln lineEditor, history *driver.History) {
	entries, err := history.Entries(historyLimit)
	if err != nil {
		c.logger.Warn("history unreadable", "error", err)
		return
	}
	for _, entry := range entries {
		ln.AppendHistory(entry)
	}
}

// repl reads one statement per line until EOF or :quit.
func (c *cli) repl(session *driver.Session, in lineEditor, prompt string, history *driver.History) int {
	for {
		line, err := in.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(c.stdout)
			return exitOK
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(c.stderr, err)
			return exitFailure
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			switch trimmed {
			case ":quit":
				return exitOK
			case ":env":
				c.printBindings(session)
			case ":types":
				fmt.Fprintln(c.stdout, strings.Join(session.TypeNames(), " "))
			default:
				fmt.Fprintf(c.stdout, "unknown command %s. Type :quit to exit.\n", trimmed)
			}
			continue
		}

		in.AppendHistory(line)
		if history != nil {
			if err := history.Append(line); err != nil {
				c.logger.Warn("history append failed", "error", err)
			}
		}

		value, err := session.Eval(line)
		if err != nil {
			fmt.Fprintln(c.stderr, err)
			continue
		}
		if _, unit := value.(runtime.UnitValue); !unit {
			fmt.Fprintln(c.stdout, value)
		}
	}
}

func (c *cli) printBindings(session *driver.Session) {
	bindings := session.Bindings()
	if len(bindings) == 0 {
		fmt.Fprintln(c.stdout, "(no bindings)")
		return
	}
	for _, b := range bindings {
		value := "<unbound>"
		if b.Value != nil {
			value = b.Value.String()
			if b.Value.Kind() == runtime.KindString {
				value = fmt.Sprintf("%q", value)
			}
		}
		fmt.Fprintf(c.stdout, "%s: %s = %s\n", b.Name, b.Type.Name(), value)
	}
}
