package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
	"github.com/imdario/mergo"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/chlog-dev/chlog/config"
	"github.com/chlog-dev/chlog/runner"
	"github.com/chlog-dev/chlog/vcs/gitcli"
)

// Version is overridden by go build -X.
var Version = "dev"

func main() {
	os.Exit(run(os.Args))
}

func run(rawArgs []string) int {
	cfg := config.New(nil)

	var help bool
	var version bool
	var cfgFile string
	flags := pflag.NewFlagSet("chlog", pflag.ContinueOnError)
	flags.SetOutput(cfg.Term.Stderr)
	flags.BoolVarP(&help, "help", "h", false, "show help")
	flags.BoolVarP(&version, "version", "V", false, "print version and exit")
	flags.IntVarP(&cfg.Days, "days", "d", cfg.Days, "lookback window in `days`")
	flags.BoolVar(&cfg.SinceTag, "since-tag", false, "report commits since the latest release tag instead of a day window")
	flags.StringVarP(&cfg.Output, "output", "o", cfg.Output, "output `path` (extension follows the format)")
	flags.StringVarP(&cfg.Format, "format", "f", cfg.Format, "output `format` (markdown|html)")
	flags.StringVarP(&cfg.Remote, "remote", "r", cfg.Remote, "derive repository links from the `name`d remote")
	flags.StringVarP(&cfg.Title, "title", "t", cfg.Title, "document `title`")
	flags.BoolVarP(&cfg.Summaries, "summaries", "s", false, "include a summary placeholder per repository")
	flags.BoolVarP(&cfg.Long, "long", "l", false, "render long-form commit blocks")
	flags.BoolVarP(&cfg.IgnoreErrors, "ignore-errors", "i", false, "drop malformed log lines instead of aborting")
	flags.BoolVarP(&cfg.Beautify, "beautify", "b", false, "wrap HTML output in a standalone page")
	flags.IntVar(&cfg.HashLength, "hash-length", cfg.HashLength, "displayed commit hash `length`")
	flags.StringArrayVarP(&cfg.Exclude, "exclude", "x", nil, "exclude log lines matching `pattern` (repeatable)")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "print additional debugging info")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", false, "print as little as necessary")
	flags.StringVarP(&cfgFile, "config", "c", "", "specify config `file`")

	if err := flags.Parse(rawArgs[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			usage(cfg, flags)
			return ExitOK
		}
		return ExitUsage
	}

	if help {
		usage(cfg, flags)
		return ExitOK
	}
	if version {
		fmt.Fprintln(cfg.Term.Stdout, Version)
		return ExitOK
	}

	fileCfg, err := readConfigFile(cfgFile)
	if err != nil {
		cfg.Errorf("Error: %v", err)
		return ExitUsage
	}
	if fileCfg != nil {
		merged := config.New(nil)
		merged.Term = cfg.Term
		if err := mergo.Merge(&merged, fileCfg, mergo.WithOverride); err != nil {
			cfg.Errorf("Error: %v", err)
			return ExitSystem
		}
		applyChangedFlags(flags, &merged, cfg)
		cfg = merged
	}
	if err := cfg.Validate(); err != nil {
		cfg.Errorf("Error: %v", err)
		return ExitUsage
	}
	// done setting up config

	dirs := flags.Args()
	if len(dirs) == 0 {
		dirs = []string{"."}
	}

	rnr, err := runner.New(cfg, nil)
	if err != nil {
		cfg.Errorf("Error: %v", err)
		return ExitUsage
	}

	ctx := context.Background()
	bundle, err := rnr.Run(ctx, dirs)
	if err != nil {
		cfg.Errorf("Error: %v", err)
		execErr := &gitcli.ExecError{}
		if errors.As(err, &execErr) {
			return ExitGit
		}
		return ExitSystem
	}

	path, err := rnr.Write(bundle)
	if err != nil {
		cfg.Errorf("Error: %v", err)
		return ExitSystem
	}

	if isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(cfg.Term.Stdout, path)
	} else {
		fmt.Fprint(cfg.Term.Stdout, path)
	}
	return ExitOK
}

// applyChangedFlags restores flag values the user set explicitly after the
// config file has been merged over the defaults, so precedence is
// CLI > config file > defaults.
func applyChangedFlags(flags *pflag.FlagSet, dst *config.Config, src config.Config) {
	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "days":
			dst.Days = src.Days
		case "since-tag":
			dst.SinceTag = src.SinceTag
		case "output":
			dst.Output = src.Output
		case "format":
			dst.Format = src.Format
		case "remote":
			dst.Remote = src.Remote
		case "title":
			dst.Title = src.Title
		case "summaries":
			dst.Summaries = src.Summaries
		case "long":
			dst.Long = src.Long
		case "ignore-errors":
			dst.IgnoreErrors = src.IgnoreErrors
		case "beautify":
			dst.Beautify = src.Beautify
		case "hash-length":
			dst.HashLength = src.HashLength
		case "exclude":
			dst.Exclude = src.Exclude
		case "verbose":
			dst.Verbose = src.Verbose
		case "quiet":
			dst.Quiet = src.Quiet
		}
	})
}

func usage(cfg config.Config, flags *pflag.FlagSet) {
	fmt.Fprintf(cfg.Term.Stdout, `%s [flags] [repo-dir ...]

Generate a markdown or HTML changelog for one or more git repositories.

FLAGS
%s
EXAMPLES

# report the last week of commits in the current repository
$ chlog

# a 30-day report across two repositories
$ chlog -d 30 -t "Monthly Changes" ./api ./web

# commits since the latest release tag, rendered as a standalone page
$ chlog --since-tag -f html -b

# leave merge commits out of the report
$ chlog -x "Merge (branch|pull request)"
`, os.Args[0], flags.FlagUsages())
}

// readConfigFile loads the config file at p, or searches for chlog.json
// upward from the working directory when p is empty. A missing file is
// not an error.
func readConfigFile(p string) (*config.Config, error) {
	if p != "" {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		cfg := &config.Config{}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	for {
		candPath := filepath.Join(wd, "chlog.json")
		b, err := os.ReadFile(candPath)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				wd, _ = filepath.Split(filepath.Clean(wd))
				if wd == "/" {
					break
				}
				continue
			}
			return nil, err
		}

		cfg := &config.Config{}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return nil, nil
}
