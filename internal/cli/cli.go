// Package cli implements the andebox command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/andebox/andebox/pkg/config"
	"github.com/andebox/andebox/pkg/ignorefile"
	"github.com/andebox/andebox/pkg/toolrun"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "andebox"

	// ansibleTest and tox are the external tools wrapped by test and tox-test.
	ansibleTest = "ansible-test"
	tox         = "tox"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	Stdin  io.Reader
	Stdout io.Writer // report data
	Stderr io.Writer // status lines

	// Runner starts external tools; tests replace it.
	Runner toolrun.Runner

	// Dir is the collection root the commands operate on.
	Dir string

	collection string
	verbose    bool
	cfg        *config.Result
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Runner: toolrun.Exec{},
		Dir:    ".",
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// config returns the loaded configuration, or the defaults before the root
// command ran (shell completion, direct calls in tests).
func (c *CLI) config() config.Config {
	if c.cfg == nil {
		return config.Default()
	}
	return c.cfg.Config
}

// =============================================================================
// Paths
// =============================================================================

// path resolves name against the collection root.
func (c *CLI) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Dir, name)
}

// sanityDir is where the ignore files are looked up.
func (c *CLI) sanityDir() string {
	if dir := c.config().Ignores.Dir; dir != "" {
		return c.path(dir)
	}
	return c.path(ignorefile.SanityDir)
}
