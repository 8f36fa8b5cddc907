package commit

import (
	"errors"
	"strings"

	"github.com/blang/semver/v4"
)

var ErrNoTags = errors.New("commit: no release tags found")

// LatestTag returns the tag naming the highest release version among
// tags that parse as semantic versions (an optional "v" prefix is
// allowed). Prereleases and unparseable tags are skipped.
func LatestTag(tags []string) (string, error) {
	var best semver.Version
	bestTag := ""
	for _, tag := range tags {
		v, err := semver.Parse(strings.TrimPrefix(tag, "v"))
		if err != nil {
			continue
		}
		if len(v.Pre) > 0 {
			continue
		}
		if bestTag == "" || v.GT(best) {
			best = v
			bestTag = tag
		}
	}
	if bestTag == "" {
		return "", ErrNoTags
	}
	return bestTag, nil
}
