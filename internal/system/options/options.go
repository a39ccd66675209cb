// Released under an MIT license. See LICENSE.

// Package options parses lispy's command line and configuration file.
package options

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is reported by -v.
const Version = "lispy 0.1.0"

// Modes of operation.
const (
	Repl    = "repl"
	Run     = "run"
	RunRepl = "runrepl"
)

// Config holds the settings that can come from the configuration file.
type Config struct {
	History  string   `toml:"history"`
	LogLevel string   `toml:"log_level"`
	Prelude  []string `toml:"prelude"`
	Snapshot string   `toml:"snapshot"`
}

//nolint:gochecknoglobals
var (
	config      Config
	file        string
	interactive bool
	load        string
	logFile     string
	mode        string
	save        string
	usage       = `lispy

Usage:
  lispy [options] [repl]
  lispy [options] run FILE
  lispy [options] runrepl FILE
  lispy -h
  lispy -v

Arguments:
  FILE  Path to a lispy script.

Options:
  --config=PATH      Read settings from PATH instead of ~/.lispy.toml.
  --history=PATH     Keep REPL history in PATH instead of ~/.lispy_history.
  --load=PATH        Restore global definitions from a snapshot before starting.
  --log-file=PATH    Write log messages to PATH instead of stderr.
  --log-level=LEVEL  One of debug, info, warn, error or none.
  --save=PATH        Save global definitions to a snapshot when done.
  -h, --help         Display this help.
  -v, --version      Print lispy version.

The repl command is the default. When stdin is not a TTY the REPL reads
expressions without prompting. Command-line options override the settings
in the configuration file.
`
)

// File returns the script named on the command line.
func File() string {
	return file
}

// History returns the path of the REPL history file.
func History() string {
	return config.History
}

// Interactive returns true if stdin is a terminal.
func Interactive() bool {
	return interactive
}

// Load returns the path of the snapshot to restore, if any.
func Load() string {
	return load
}

// LogFile returns the path for log messages or "" for stderr.
func LogFile() string {
	return logFile
}

// LogLevel returns the configured log level name.
func LogLevel() string {
	return config.LogLevel
}

// Mode returns one of Repl, Run or RunRepl.
func Mode() string {
	return mode
}

// Prelude returns the scripts to run before the session starts.
func Prelude() []string {
	return config.Prelude
}

// Save returns the path to save a snapshot to, if any.
func Save() string {
	return save
}

// Parse parses the command line and reads the configuration file.
func Parse() error {
	return parse(os.Args[1:], isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()))
}

func parse(argv []string, tty bool) error {
	opts, err := docopt.ParseArgs(usage, argv, Version)
	if err != nil {
		return err
	}

	config = Config{LogLevel: "none"}

	path, _ := opts.String("--config")

	if err := read(path); err != nil {
		return err
	}

	override(&config.History, opts, "--history")
	override(&config.LogLevel, opts, "--log-level")

	if config.History == "" {
		config.History = home(".lispy_history")
	}

	load = config.Snapshot
	override(&load, opts, "--load")

	save = config.Snapshot
	override(&save, opts, "--save")

	logFile, _ = opts.String("--log-file")
	file, _ = opts.String("FILE")

	mode = Repl

	for _, m := range []string{Run, RunRepl} {
		if ok, _ := opts.Bool(m); ok {
			mode = m
		}
	}

	interactive = tty

	return nil
}

func home(name string) string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return name
	}

	return filepath.Join(dir, name)
}

func override(s *string, opts docopt.Opts, key string) {
	if v, _ := opts.String(key); v != "" {
		*s = v
	}
}

// read decodes the configuration file at path. The default file is
// optional. A file named explicitly must exist.
func read(path string) error {
	explicit := path != ""
	if !explicit {
		path = home(".lispy.toml")
	}

	_, err := toml.DecodeFile(path, &config)
	if err == nil || (!explicit && errors.Is(err, fs.ErrNotExist)) {
		return nil
	}

	return fmt.Errorf("%s: %w", path, err)
}
