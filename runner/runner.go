// Package runner manages command-line execution.
package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chlog-dev/chlog/commit"
	"github.com/chlog-dev/chlog/config"
	"github.com/chlog-dev/chlog/model"
	"github.com/chlog-dev/chlog/render"
	"github.com/chlog-dev/chlog/vcs"
	"github.com/chlog-dev/chlog/vcs/gitcli"
)

// OpenFunc returns a vcs handle bound to one repository directory.
type OpenFunc func(dir string) vcs.Interface

// Runner drives report generation: per repository, collect the log,
// filter, parse, classify and group, then render and write the bundle.
type Runner struct {
	cfg    config.Config
	open   OpenFunc
	filter *commit.Filter
}

func New(cfg config.Config, open OpenFunc) (*Runner, error) {
	if open == nil {
		open = func(dir string) vcs.Interface {
			return gitcli.New(cfg, dir)
		}
	}
	filter, err := commit.NewFilter(cfg.Exclude)
	if err != nil {
		return nil, err
	}
	return &Runner{
		cfg:    cfg,
		open:   open,
		filter: filter,
	}, nil
}

// Run builds the report bundle for the given repository directories,
// strictly in order. A log collection failure for any repository aborts
// the whole run.
func (r *Runner) Run(ctx context.Context, dirs []string) (*model.ReportBundle, error) {
	bundle := &model.ReportBundle{Title: r.cfg.Title}
	for _, dir := range dirs {
		rep, err := r.report(ctx, dir)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", dir, err)
		}
		bundle.Repos = append(bundle.Repos, rep)
	}
	return bundle, nil
}

func (r *Runner) report(ctx context.Context, dir string) (*model.RepoReport, error) {
	git := r.open(dir)

	query := vcs.LogQuery{Days: r.cfg.Days}
	if r.cfg.SinceTag {
		tags, err := git.ReadTags(ctx, "")
		if err != nil {
			return nil, err
		}
		tag, err := commit.LatestTag(tags)
		if err != nil {
			return nil, err
		}
		r.cfg.Debugf("latest release tag is %q", tag)
		query = vcs.LogQuery{Range: tag + "..HEAD"}
	}

	lines, err := git.ReadLog(ctx, query)
	if err != nil {
		return nil, err
	}
	url, err := git.RemoteURL(ctx, r.cfg.Remote)
	if err != nil {
		return nil, err
	}

	var records []*model.CommitRecord
	for _, line := range lines {
		if line == "" {
			continue
		}
		if !r.filter.Keep(line) {
			r.cfg.Debugf("excluded: %s", line)
			continue
		}
		rec, err := commit.ParseLine(line)
		if err != nil {
			if r.cfg.IgnoreErrors {
				r.cfg.Errorf("skipping malformed log line: %v", err)
				continue
			}
			return nil, err
		}
		records = append(records, rec)
	}

	labels, groups := commit.Group(r.cfg.Types, records)
	for _, dropped := range commit.Ungrouped(r.cfg.Types, records) {
		r.cfg.Debugf("dropping commit %s: no label configured for type %q",
			dropped.ShortHash(r.cfg.HashLength), dropped.Type.Title)
	}

	return &model.RepoReport{
		URL:    url,
		Name:   render.DisplayName(url),
		Labels: labels,
		Groups: groups,
	}, nil
}

// Write renders the bundle and persists it at the configured output path,
// with the extension swapped to match the output format. It returns the
// path written.
func (r *Runner) Write(bundle *model.ReportBundle) (string, error) {
	md := render.MarkdownString(bundle, render.Options{
		Long:       r.cfg.Long,
		Summaries:  r.cfg.Summaries,
		HashLength: r.cfg.HashLength,
	})

	var out []byte
	switch r.cfg.Format {
	case config.FormatMarkdown:
		out = []byte(md)
	case config.FormatHTML:
		out = render.HTML([]byte(md), bundle.Title, r.cfg.Beautify)
	default:
		return "", fmt.Errorf("runner: invalid output format %q", r.cfg.Format)
	}

	path := r.outputPath()
	if err := os.WriteFile(path, out, 0644); err != nil {
		return "", err
	}
	return path, nil
}

func (r *Runner) outputPath() string {
	base := r.cfg.Output
	if ext := filepath.Ext(base); ext != "" {
		base = base[:len(base)-len(ext)]
	}
	if r.cfg.Format == config.FormatHTML {
		return base + ".html"
	}
	return base + ".md"
}
