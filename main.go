// Package main provides the codexdb CLI application.
// codexdb builds and normalizes a PostgreSQL database of biological
// codex discovery reports.
package main

import (
	"github.com/exobio/codexdb/cmd"
)

func main() {
	cmd.Execute()
}
