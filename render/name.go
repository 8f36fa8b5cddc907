// Package render turns a report bundle into markdown or HTML.
package render

import (
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// NormalizeURL converts a git remote URL to an https form, stripping any
// SSH user/host credential prefix. Handles the plain https, ssh:// and
// scp-like (git@host:path) remote syntaxes. Unrecognized forms are
// returned unchanged.
func NormalizeURL(raw string) string {
	u := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(u, "http://"), strings.HasPrefix(u, "https://"):
		rest := u[strings.Index(u, "://")+3:]
		if i := strings.Index(rest, "@"); i >= 0 {
			rest = rest[i+1:]
		}
		return u[:strings.Index(u, "://")+3] + rest
	case strings.HasPrefix(u, "ssh://"):
		rest := strings.TrimPrefix(u, "ssh://")
		if i := strings.Index(rest, "@"); i >= 0 {
			rest = rest[i+1:]
		}
		return "https://" + rest
	case strings.Contains(u, "@") && strings.Contains(u, ":"):
		rest := u[strings.Index(u, "@")+1:]
		rest = strings.Replace(rest, ":", "/", 1)
		return "https://" + rest
	}
	return u
}

// CommitURL builds the web link for a commit: the normalized remote URL
// with any trailing ".git" stripped, plus "/commit/<hash>".
func CommitURL(remoteURL, hash string) string {
	base := strings.TrimSuffix(NormalizeURL(remoteURL), ".git")
	return base + "/commit/" + hash
}

// DisplayName derives a human-readable project name from a remote URL:
// the last path segment with its extension stripped, word tokens
// title-cased.
func DisplayName(remoteURL string) string {
	u := strings.TrimSuffix(NormalizeURL(remoteURL), "/")
	seg := path.Base(u)
	seg = strings.TrimSuffix(seg, path.Ext(seg))
	seg = strings.NewReplacer("-", " ", "_", " ", ".", " ").Replace(seg)
	return titleCaser.String(seg)
}
