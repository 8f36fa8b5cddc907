// Package model contains the data types shared across chlog's packages.
package model

// Type is the conventional-commit category derived from a commit subject.
// Title defaults to "misc" when the subject carries no recognizable prefix.
// Subtitle is the optional parenthesized scope, e.g. "api" in "feat(api): ...".
type Type struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
}

// CommitRecord is one parsed, classified unit of git history. Records are
// immutable once created by the parser.
type CommitRecord struct {
	Author   string `json:"author"`
	Branches string `json:"branches,omitempty"`
	Message  string `json:"message"`
	Age      string `json:"age"`
	Hash     string `json:"hash"`
	Type     Type   `json:"type"`
}

// ShortHash returns the commit hash truncated to n characters, for display.
func (c *CommitRecord) ShortHash(n int) string {
	if n <= 0 || len(c.Hash) < n {
		return c.Hash
	}
	return c.Hash[:n]
}

// RepoReport is one repository's grouped commits. Labels holds the group
// headings in display order; only labels with at least one commit appear.
type RepoReport struct {
	URL    string                     `json:"url"`
	Name   string                     `json:"name"`
	Labels []string                   `json:"labels,omitempty"`
	Groups map[string][]*CommitRecord `json:"groups,omitempty"`
}

// ReportBundle is the full multi-repository document model passed to
// rendering.
type ReportBundle struct {
	Title string        `json:"title"`
	Repos []*RepoReport `json:"repos,omitempty"`
}
