package commit

import (
	"errors"
	"strings"
	"testing"

	"github.com/chlog-dev/chlog/model"
)

const exampleLine = "Jane Doe::@:: (HEAD -> main)::@::feat(api): add health check::@::2 days ago::@::abc1234def5678900000000000000000000000ff"

func TestParseLine(t *testing.T) {
	rec, err := ParseLine(exampleLine)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Author != "Jane Doe" {
		t.Errorf("expected author %q, got %q", "Jane Doe", rec.Author)
	}
	if rec.Branches != "(HEAD -> main)" {
		t.Errorf("unexpected branches: %q", rec.Branches)
	}
	if rec.Type.Title != "feat" || rec.Type.Subtitle != "api" {
		t.Errorf("unexpected type: %+v", rec.Type)
	}
	if rec.Message != "add health check" {
		t.Errorf("unexpected message: %q", rec.Message)
	}
	if rec.Age != "2 days ago" {
		t.Errorf("unexpected age: %q", rec.Age)
	}
	if !strings.HasPrefix(rec.Hash, "abc1234") {
		t.Errorf("unexpected hash: %q", rec.Hash)
	}
}

func TestParseLineMalformed(t *testing.T) {
	tcs := []struct {
		name   string
		line   string
		fields int
	}{
		{name: "empty", line: "", fields: 1},
		{name: "plain", line: "not a log line", fields: 1},
		{name: "short", line: "a::@::b::@::c", fields: 3},
		{name: "long", line: "a::@::b::@::c::@::d::@::e::@::f", fields: 6},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseLine(tc.line)
			if err == nil {
				t.Fatal("expected malformed line error")
			}
			mle := MalformedLineError{}
			if !errors.As(err, &mle) {
				t.Fatalf("expected MalformedLineError, got %T", err)
			}
			if mle.Fields != tc.fields {
				t.Errorf("expected %d fields, got %d", tc.fields, mle.Fields)
			}
		})
	}
}

// The five raw fields survive a split/join round trip untouched.
func TestSplitLineRoundTrip(t *testing.T) {
	lines := []string{
		exampleLine,
		"Bob::@::::@::chore: tidy::@::3 weeks ago::@::0000000000000000000000000000000000000000",
		"Eve::@:: (tag: v1.0.0)::@::see http://example.com::@::5 hours ago::@::ffffffffffffffffffffffffffffffffffffffff",
	}
	for _, line := range lines {
		fields, err := SplitLine(line)
		if err != nil {
			t.Fatal(err)
		}
		if got := strings.Join(fields, Delimiter); got != line {
			t.Fatalf("round trip mismatch:\n%s\n%s", line, got)
		}
	}
}

func TestParseSubject(t *testing.T) {
	tcs := []struct {
		name    string
		subject string
		typ     model.Type
		message string
	}{
		{
			name:    "scoped",
			subject: "feat(api): add health check",
			typ:     model.Type{Title: "feat", Subtitle: "api"},
			message: "add health check",
		},
		{
			name:    "unscoped",
			subject: "fix: handle empty lines",
			typ:     model.Type{Title: "fix"},
			message: "handle empty lines",
		},
		{
			name:    "no-colon",
			subject: "initial commit",
			typ:     model.Type{Title: "misc"},
			message: "initial commit",
		},
		{
			name:    "colon-but-not-a-type",
			subject: "see http://example.com for details",
			typ:     model.Type{Title: "misc"},
			message: "see http://example.com for details",
		},
		{
			name:    "untrimmed-message",
			subject: "docs(readme):   reword intro  ",
			typ:     model.Type{Title: "docs", Subtitle: "readme"},
			message: "reword intro",
		},
		{
			name:    "empty",
			subject: "",
			typ:     model.Type{Title: "misc"},
			message: "",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			typ, msg := ParseSubject(tc.subject)
			if typ != tc.typ {
				t.Errorf("expected type %+v, got %+v", tc.typ, typ)
			}
			if msg != tc.message {
				t.Errorf("expected message %q, got %q", tc.message, msg)
			}
		})
	}
}
