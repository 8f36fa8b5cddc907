// Package commit contains code for parsing, classifying and grouping git
// log output.
package commit

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/chlog-dev/chlog/model"
)

// Delimiter joins the fields of one formatted git log line. It needs to be
// a sequence that cannot appear in author names or subject lines.
const Delimiter = "::@::"

// LogFieldCount is the number of delimited fields expected per log line:
// author, ref decoration, subject, relative age, full hash.
const LogFieldCount = 5

// DefaultType is the type title assigned to commits whose subject carries
// no conventional-commit prefix.
const DefaultType = "misc"

// subjectRE matches the part of a commit subject left of the first colon:
// a type token optionally followed by a parenthesized scope, e.g.
// "feat" or "fix(parser)".
var subjectRE = regexp.MustCompile(`^([A-Za-z0-9_-]+)(?:\(([^)]+)\))?$`)

// MalformedLineError reports a log line whose delimited field count is
// wrong. Callers treat it as fatal unless the ignore-errors option is set.
type MalformedLineError struct {
	Line   string
	Fields int
}

func (e MalformedLineError) Error() string {
	return fmt.Sprintf("commit: expected %d log fields, got %d: %q", LogFieldCount, e.Fields, e.Line)
}

// SplitLine splits a raw log line into its five delimited fields. The
// fields are returned untouched, so joining them with Delimiter
// reproduces the input line.
func SplitLine(line string) ([]string, error) {
	fields := strings.Split(line, Delimiter)
	if len(fields) != LogFieldCount {
		return nil, MalformedLineError{Line: line, Fields: len(fields)}
	}
	return fields, nil
}

// ParseLine parses one raw delimited log line into a CommitRecord with its
// derived Type.
func ParseLine(line string) (*model.CommitRecord, error) {
	fields, err := SplitLine(line)
	if err != nil {
		return nil, err
	}
	typ, msg := ParseSubject(fields[2])
	return &model.CommitRecord{
		Author:   fields[0],
		Branches: strings.TrimSpace(fields[1]),
		Message:  msg,
		Age:      fields[3],
		Hash:     fields[4],
		Type:     typ,
	}, nil
}

// ParseSubject extracts the conventional-commit type from a subject line.
// A subject of the form "type(scope): message" yields that type and the
// trimmed message. Subjects with no colon, or whose prefix does not look
// like a type token, fall through to the default type with the whole
// subject as the message. The second case keeps URLs and plain sentences
// containing colons out of bogus type buckets.
func ParseSubject(subject string) (model.Type, string) {
	parts := strings.SplitN(subject, ":", 2)
	if len(parts) == 2 {
		if m := subjectRE.FindStringSubmatch(parts[0]); m != nil {
			return model.Type{Title: m[1], Subtitle: m[2]}, strings.TrimSpace(parts[1])
		}
	}
	return model.Type{Title: DefaultType}, subject
}
