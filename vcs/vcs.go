// Package vcs abstracts version control systems. Currently just git.
package vcs

import (
	"context"
	"fmt"
)

type NotFoundError struct {
	Ref string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("vcs: ref %q not found", e.Ref)
}

// LogQuery selects the commits to read. Range wins when both are set.
type LogQuery struct {
	// Days is the lookback window in days.
	Days int
	// Range is an explicit revision range, e.g. "v1.2.3..HEAD".
	Range string
}

type Interface interface {
	// ReadLog returns raw delimited log lines, newest first. Empty
	// output lines are dropped.
	ReadLog(ctx context.Context, query LogQuery) ([]string, error)
	// RemoteURL returns the configured URL of the named remote.
	RemoteURL(ctx context.Context, remote string) (string, error)
	// ReadTags returns tag names, optionally filtered by a glob query.
	ReadTags(ctx context.Context, query string) ([]string, error)
}
