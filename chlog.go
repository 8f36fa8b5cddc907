// Package chlog reads commit history from local git repositories,
// classifies commits by their conventional-commit prefix, and renders a
// multi-repository changelog in markdown or HTML.
//
// Related packages: config, commit, render, runner, model, vcs, vcs/gitcli
package chlog

import "github.com/chlog-dev/chlog/config"

// Config holds most of the configuration variables for chlog. This struct is
// intended for command-line use, so not all of its attributes are applicable
// to every operation.
//
// See "go doc github.com/chlog-dev/chlog/config Config" for more information.
type Config = config.Config
