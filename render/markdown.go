package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/chlog-dev/chlog/model"
)

// Options control how a report bundle is rendered.
type Options struct {
	// Long selects the multi-line labeled commit form instead of the
	// compact single-line form.
	Long bool
	// Summaries inserts a summary placeholder section per repository.
	Summaries bool
	// HashLength is the display length of commit hashes in links.
	HashLength int
	// BaseLevel is the heading nesting base level. Zero means 1.
	BaseLevel int
}

// Markdown renders the bundle as a markdown document and writes it to w.
func Markdown(b *model.ReportBundle, opts Options, w io.Writer) error {
	_, err := io.WriteString(w, MarkdownString(b, opts))
	return err
}

// MarkdownString renders the bundle as a markdown document. Rendering is
// pure: the same bundle and options always produce the same document.
//
// With more than one repository, the document title becomes the top
// heading and every repository section nests one level deeper.
func MarkdownString(bundle *model.ReportBundle, opts Options) string {
	level := opts.BaseLevel
	if level < 1 {
		level = 1
	}

	var b strings.Builder
	if len(bundle.Repos) > 1 {
		heading(&b, level, bundle.Title)
		level++
	}
	for _, repo := range bundle.Repos {
		writeRepo(&b, repo, opts, level)
	}
	return b.String()
}

func writeRepo(b *strings.Builder, repo *model.RepoReport, opts Options, level int) {
	heading(b, level, "Project: "+repo.Name)
	url := NormalizeURL(repo.URL)
	fmt.Fprintf(b, "[%s](%s)\n\n", url, url)

	if opts.Summaries {
		heading(b, level+1, "Summary")
		b.WriteString("_Add a summary of this release here._\n\n")
	}

	heading(b, level+1, "Commits")
	for _, label := range repo.Labels {
		heading(b, level+2, label)
		for _, c := range repo.Groups[label] {
			if opts.Long {
				writeLongCommit(b, repo, c, opts)
			} else {
				writeCompactCommit(b, repo, c, opts)
			}
		}
		b.WriteString("\n")
	}
}

func writeCompactCommit(b *strings.Builder, repo *model.RepoReport, c *model.CommitRecord, opts Options) {
	b.WriteString("- ")
	if c.Type.Subtitle != "" {
		fmt.Fprintf(b, "**%s:** ", c.Type.Subtitle)
	}
	fmt.Fprintf(b, "%s (%s, %s) [%s](%s)\n",
		c.Message, c.Author, c.Age, c.ShortHash(opts.HashLength), CommitURL(repo.URL, c.Hash))
}

func writeLongCommit(b *strings.Builder, repo *model.RepoReport, c *model.CommitRecord, opts Options) {
	area := "General"
	if c.Type.Subtitle != "" {
		area = titleCaser.String(c.Type.Subtitle)
	}
	branches := c.Branches
	if branches == "" {
		branches = "N/a"
	}
	fmt.Fprintf(b, "- **Area:** %s\n", area)
	fmt.Fprintf(b, "- **Message:** %s\n", c.Message)
	fmt.Fprintf(b, "- **Branches Affected:** %s\n", branches)
	fmt.Fprintf(b, "- **Author:** %s\n", c.Author)
	fmt.Fprintf(b, "- **Committed:** %s\n", c.Age)
	fmt.Fprintf(b, "- **Commit SHA:** [%s](%s)\n\n",
		c.ShortHash(opts.HashLength), CommitURL(repo.URL, c.Hash))
}

// markdown only supports six heading levels; deeper nesting stays at six.
func heading(b *strings.Builder, level int, text string) {
	if level > 6 {
		level = 6
	}
	b.WriteString(strings.Repeat("#", level))
	b.WriteString(" ")
	b.WriteString(text)
	b.WriteString("\n\n")
}
