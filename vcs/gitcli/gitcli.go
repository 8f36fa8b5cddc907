// Package gitcli implements vcs.Interface using the git commandline tool.
package gitcli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/chlog-dev/chlog/commit"
	"github.com/chlog-dev/chlog/config"
	"github.com/chlog-dev/chlog/vcs"
)

// logFormat makes git log emit the five delimited fields the parser
// expects: author, ref decoration, subject, relative age, full hash.
const logFormat = "tformat:%an" + commit.Delimiter +
	"%d" + commit.Delimiter +
	"%s" + commit.Delimiter +
	"%cr" + commit.Delimiter +
	"%H"

// Git implements vcs.Interface using the git commandline tool.
type Git struct {
	cfg config.Config
	wd  string
}

func New(cfg config.Config, wd string) *Git {
	return &Git{
		cfg: cfg,
		wd:  wd,
	}
}

func (g *Git) ReadLog(ctx context.Context, query vcs.LogQuery) ([]string, error) {
	args := []string{"log", "--pretty=" + logFormat}
	if query.Range != "" {
		args = append(args, query.Range)
	} else {
		args = append(args, fmt.Sprintf("--since=%d days ago", query.Days))
	}
	g.cfg.Debugf("+ git %s", ArgsString(args))

	b, err := g.call(ctx, args)
	if err != nil {
		return nil, err
	}

	var lines []string
	scanner := bufio.NewScanner(bytes.NewBuffer(b))
	for scanner.Scan() {
		s := scanner.Text()
		if strings.TrimSpace(s) == "" {
			continue
		}
		lines = append(lines, s)
	}
	return lines, scanner.Err()
}

func (g *Git) RemoteURL(ctx context.Context, remote string) (string, error) {
	b, err := g.call(ctx, []string{"remote", "get-url", remote})
	if err != nil {
		return "", err
	}
	url := strings.TrimSpace(string(b))
	if url == "" {
		return "", vcs.NotFoundError{Ref: remote}
	}
	return url, nil
}

func (g *Git) ReadTags(ctx context.Context, query string) ([]string, error) {
	args := []string{"tag"}
	if query != "" {
		args = append(args, "-l", query)
	}
	b, err := g.call(ctx, args)
	if err != nil {
		return nil, err
	}
	var tags []string
	scanner := bufio.NewScanner(bytes.NewBuffer(b))
	for scanner.Scan() {
		tags = append(tags, scanner.Text())
	}
	return tags, scanner.Err()
}
