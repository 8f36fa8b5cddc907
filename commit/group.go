package commit

import (
	"github.com/chlog-dev/chlog/config"
	"github.com/chlog-dev/chlog/model"
)

// Group buckets commits by type title using the configured type map,
// preserving the map's order for labels and the input (reverse
// chronological) order within each bucket. A bucket is only created on
// first match, so labels with no commits never appear. Commits whose
// title matches no configured key are dropped from the report entirely.
func Group(types []config.TypeMapping, commits []*model.CommitRecord) ([]string, map[string][]*model.CommitRecord) {
	var labels []string
	groups := make(map[string][]*model.CommitRecord)
	for _, tm := range types {
		for _, c := range commits {
			if c.Type.Title != tm.Key {
				continue
			}
			if _, ok := groups[tm.Label]; !ok {
				labels = append(labels, tm.Label)
			}
			groups[tm.Label] = append(groups[tm.Label], c)
		}
	}
	return labels, groups
}

// Ungrouped returns the commits Group would drop: those whose type title
// matches no configured key.
func Ungrouped(types []config.TypeMapping, commits []*model.CommitRecord) []*model.CommitRecord {
	keys := make(map[string]bool, len(types))
	for _, tm := range types {
		keys[tm.Key] = true
	}
	var dropped []*model.CommitRecord
	for _, c := range commits {
		if !keys[c.Type.Title] {
			dropped = append(dropped, c)
		}
	}
	return dropped
}
