package config

func GetDefault() Config {
	return Config{
		Days:       7,
		Format:     FormatMarkdown,
		Remote:     "origin",
		Title:      "Changelog",
		Output:     "changelog.md",
		HashLength: 7,
		Types: []TypeMapping{
			{Key: "feat", Label: "Features"},
			{Key: "fix", Label: "Bug Fixes"},
			{Key: "perf", Label: "Performance"},
			{Key: "refactor", Label: "Refactors"},
			{Key: "docs", Label: "Documentation"},
			{Key: "test", Label: "Tests"},
			{Key: "chore", Label: "Chores"},
			{Key: "misc", Label: "Miscellaneous"},
		},
	}
}
