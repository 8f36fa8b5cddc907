package config

import (
	"fmt"

	"github.com/imdario/mergo"
)

// Output formats accepted by Config.Format.
const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// TypeMapping associates a conventional-commit type key (e.g. "feat") with
// the human-readable heading used for its section in the report (e.g.
// "Features"). Slice order fixes section order in the rendered document.
type TypeMapping struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Config holds the configuration for a chlog run. Fields are overlaid in
// order of precedence: command-line flags, then the config file, then
// built-in defaults.
type Config struct {
	Verbose      bool          `json:"verbose,omitempty"`
	Quiet        bool          `json:"quiet,omitempty"`
	Days         int           `json:"days,omitempty"`
	Output       string        `json:"-"`
	Format       string        `json:"format,omitempty"`
	Remote       string        `json:"remote,omitempty"`
	Title        string        `json:"title,omitempty"`
	Summaries    bool          `json:"summaries,omitempty"`
	Long         bool          `json:"long,omitempty"`
	IgnoreErrors bool          `json:"ignore_errors,omitempty"`
	Beautify     bool          `json:"beautify,omitempty"`
	SinceTag     bool          `json:"since_tag,omitempty"`
	HashLength   int           `json:"hash_length,omitempty"`
	Types        []TypeMapping `json:"types,omitempty"`
	Exclude      []string      `json:"exclude,omitempty"`
	Term         TerminalIO    `json:"-"`
}

func New(overrides *Config) Config {
	return NewWithTerminalIO(overrides, nil)
}

func NewWithTerminalIO(overrides *Config, termio *TerminalIO) Config {
	cfg := GetDefault()
	if termio == nil {
		termio = &DefaultTermIO
	}
	cfg.Term = *termio

	if overrides != nil {
		if err := mergo.Merge(&cfg, overrides, mergo.WithOverride); err != nil {
			panic(err)
		}
	}
	return cfg
}

func (c Config) Validate() error {
	switch c.Format {
	case FormatMarkdown, FormatHTML:
	default:
		return fmt.Errorf("config: invalid output format %q", c.Format)
	}
	if c.Days <= 0 && !c.SinceTag {
		return fmt.Errorf("config: days must be positive, got %d", c.Days)
	}
	if c.HashLength <= 0 {
		return fmt.Errorf("config: hash length must be positive, got %d", c.HashLength)
	}
	if len(c.Types) == 0 {
		return fmt.Errorf("config: at least one type mapping is required")
	}
	for _, tm := range c.Types {
		if tm.Key == "" || tm.Label == "" {
			return fmt.Errorf("config: type mapping needs both key and label, got %q -> %q", tm.Key, tm.Label)
		}
	}
	return nil
}

func (c Config) Printf(msg string, args ...interface{}) {
	if c.Quiet {
		return
	}
	fmt.Fprintf(c.Term.Stderr, msg+"\n", args...)
}

func (c Config) Errorf(msg string, args ...interface{}) {
	fmt.Fprintf(c.Term.Stderr, msg+"\n", args...)
}

func (c Config) Debugf(msg string, args ...interface{}) {
	if !c.Verbose {
		return
	}
	c.Printf(msg, args...)
}
