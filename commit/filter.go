package commit

import (
	"fmt"
	"regexp"
)

// Filter rejects raw log lines matching any of a set of exclusion
// patterns. With zero patterns it keeps everything.
type Filter struct {
	patterns []*regexp.Regexp
}

// NewFilter compiles the given exclusion patterns. An invalid pattern is a
// configuration error.
func NewFilter(patterns []string) (*Filter, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("commit: invalid exclusion pattern %q: %w", p, err)
		}
		compiled = append(compiled, re)
	}
	return &Filter{patterns: compiled}, nil
}

// Keep reports whether the raw line matches none of the exclusion
// patterns. The first matching pattern short-circuits rejection.
func (f *Filter) Keep(line string) bool {
	for _, re := range f.patterns {
		if re.MatchString(line) {
			return false
		}
	}
	return true
}
