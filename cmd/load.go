/*
Copyright © 2025 The codexdb authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/exobio/codexdb/internal/iodb"
	"github.com/exobio/codexdb/internal/ioload"
	"github.com/exobio/codexdb/internal/ioschema"
	"github.com/exobio/codexdb/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getLoadCmd returns the load command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getLoadCmd() *cobra.Command {
	var (
		inputFile string
		batchSize int
	)

	loadCmd := &cobra.Command{
		Use:   "load",
		Short: "Stream a codex document into the flat reports table",
		Long: `Stream a codex JSON document and load its biological records.

This command:
  1. Connects to PostgreSQL using configuration settings
  2. Creates the codex_reports table if it does not exist yet
  3. Streams the input document without holding it in memory
  4. Keeps only records whose hud_category is "Biology"
  5. Writes accepted rows in fixed-size batches

The input document is either a JSON array of objects or a stream of
concatenated objects. The load is safe to repeat: the flat table has no
uniqueness constraint and duplicate records are tolerated until
normalization.

Any failing insert aborts the whole load with the current batch rolled
back; fix the cause and re-run.

Examples:
  # Load the configured input document
  codexdb load

  # Load a specific document
  codexdb load --input /data/codex.json
  codexdb load -i /data/codex.json

  # Use a smaller batch size
  codexdb load -i /data/codex.json --batch-size 500`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runLoad(cmd, inputFile, batchSize)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	loadCmd.Flags().StringVarP(
		&inputFile, "input", "i", "",
		"path to the codex JSON document",
	)
	loadCmd.Flags().IntVarP(
		&batchSize, "batch-size", "b", 0,
		"rows per insert batch (default from config)",
	)

	return loadCmd
}

func runLoad(cmd *cobra.Command, inputFile string, batchSize int) error {
	ctx := context.Background()

	// Build options from explicitly set flags
	var loadOpts []config.Option

	if cmd.Flags().Changed("input") {
		loadOpts = append(loadOpts, config.OptLoadInputFile(inputFile))
	}

	if cmd.Flags().Changed("batch-size") {
		loadOpts = append(loadOpts, config.OptDatabaseBatchSize(batchSize))
	}

	if len(loadOpts) > 0 {
		cfg.Update(loadOpts)
	}

	if cfg.Load.InputFile == "" {
		gn.Warn(`<warn>No codex document configured</warn>
   Set <em>load.input_file</em> in config.yaml or use <em>--input</em>`)
		err := fmt.Errorf("input file not configured")
		slog.Error("input file not configured")
		return err
	}

	// Create database operator
	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	// Bring the flat table into existence before any row is written.
	manager := ioschema.NewManager(op)
	if err := manager.Create(ctx); err != nil {
		return err
	}

	loader := ioload.New(cfg, op)

	gn.Info("Starting codex load from <em>%s</em>...", cfg.Load.InputFile)
	rows, err := loader.Load(ctx)
	if err != nil {
		return err
	}

	gn.Info(`Next steps:
	 - Run '<em>codexdb load</em>' again for additional documents
	 - Run '<em>codexdb normalize</em>' to build the relational schema
`)
	slog.Info("Load finished", "rows", humanize.Comma(int64(rows)))

	return nil
}
