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
	"errors"

	"github.com/exobio/codexdb/internal/iodb"
	"github.com/exobio/codexdb/internal/ionormalize"
	"github.com/exobio/codexdb/pkg/errcode"
	"github.com/exobio/codexdb/pkg/schema"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getNormalizeCmd returns the normalize command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getNormalizeCmd() *cobra.Command {
	normalizeCmd := &cobra.Command{
		Use:   "normalize",
		Short: "Restructure the flat reports table into a relational schema",
		Long: `Normalize the flat codex_reports table.

This command:
  1. Connects to PostgreSQL using configuration settings
  2. Removes artifacts of any prior normalization
  3. Creates species, regions, systems and bodies reference tables
  4. Populates them from distinct flat-table values (duplicates skipped)
  5. Backfills species_id, system_id and body_id on the flat table
  6. Drops the superseded denormalized columns

The whole run is idempotent and safe to repeat: after a failed run,
simply run it again. Legacy columns already dropped by an earlier run
are detected and the steps depending on them are skipped.

Examples:
  # Normalize after a load
  codexdb normalize`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runNormalize(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return normalizeCmd
}

func runNormalize(cmd *cobra.Command) error {
	ctx := context.Background()

	// Create database operator
	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	// Check if database has tables
	hasTables, err := op.HasTables(ctx)
	if err != nil {
		return err
	}

	if !hasTables {
		err = &gn.Error{
			Code: errcode.DBEmptyDatabaseError,
			Msg: `<err>Database appears to be empty.</err>
   Run <em>'codexdb load'</em> first to populate the flat table.`,
			Err: errors.New("cannot normalize an empty database"),
		}
		return err
	}

	// Normalization without a flat table means load never ran.
	exists, err := op.TableExists(ctx, schema.ReportsTable)
	if err != nil {
		return err
	}
	if !exists {
		return ionormalize.NoFlatTableError()
	}

	normalizer := ionormalize.New(cfg, op)

	gn.Info("Starting normalization of <em>%s</em>...", schema.ReportsTable)
	if err := normalizer.Normalize(ctx); err != nil {
		return err
	}

	gn.Info(`Next steps:
	 - Query the relational schema (species, regions, systems, bodies)
	 - Re-run '<em>codexdb load</em>' and '<em>codexdb normalize</em>'
	   to refresh from a newer document
`)

	return nil
}
