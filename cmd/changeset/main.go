// Package main provides the entry point for the changeset CLI tool.
package main

import (
	"github.com/osmkit/changeset/cmd/changeset/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	cmd.Execute(version, commit, date, builtBy)
}
