package vcs

import (
	"context"
	"strings"
)

// Mock is an in-memory Interface for tests.
type Mock struct {
	lines   []string
	tags    []string
	remotes map[string]string
	logErr  error
	queries []LogQuery
}

func NewMock() *Mock {
	return &Mock{remotes: map[string]string{}}
}

func (m *Mock) SetLines(lines ...string) *Mock {
	m.lines = lines
	return m
}

func (m *Mock) SetTags(tags ...string) *Mock {
	m.tags = tags
	return m
}

func (m *Mock) SetRemote(name, url string) *Mock {
	m.remotes[name] = url
	return m
}

func (m *Mock) SetLogError(err error) *Mock {
	m.logErr = err
	return m
}

// Queries returns the log queries seen so far.
func (m *Mock) Queries() []LogQuery { return m.queries }

func (m *Mock) ReadLog(ctx context.Context, query LogQuery) ([]string, error) {
	m.queries = append(m.queries, query)
	if m.logErr != nil {
		return nil, m.logErr
	}
	return m.lines, nil
}

func (m *Mock) RemoteURL(ctx context.Context, remote string) (string, error) {
	url, ok := m.remotes[remote]
	if !ok {
		return "", NotFoundError{Ref: remote}
	}
	return url, nil
}

func (m *Mock) ReadTags(ctx context.Context, query string) ([]string, error) {
	if query == "" {
		return m.tags, nil
	}
	var tags []string
	for _, t := range m.tags {
		if globMatches(t, query) {
			tags = append(tags, t)
		}
	}
	return tags, nil
}

func globMatches(s string, glob string) bool {
	parts := strings.Split(glob, "*")
	remaining := s
	for len(parts) > 0 {
		part := parts[0]
		parts = parts[1:]

		if !strings.HasPrefix(remaining, part) {
			return false
		}
		remaining = strings.TrimPrefix(remaining, part)
	}
	if len(glob) > 0 && glob[len(glob)-1] == '*' {
		return true
	}
	return remaining == ""
}
