package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"nbcli/core/database"
	"nbcli/core/journal"
	"nbcli/core/render"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var historyLimit int

// historyCmd lists recent journal entries.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently executed rename and delete actions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := Options{ConfigDir: flags.configDir, Debug: flags.debug, Headers: flags.headers}
		if opts.ConfigDir == "" {
			opts.ConfigDir = "."
		}
		cfg, logg, err := loadRuntime(opts)
		if err != nil {
			return err
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Journal.Config)
		if err != nil {
			return fmt.Errorf("failed to open journal database: %w", err)
		}
		defer database.Close(db)

		return showHistory(cmd.Context(), db, logg, cmd.OutOrStdout(), historyLimit, opts.Headers)
	},
}

func showHistory(ctx context.Context, db *gorm.DB, logg *zap.Logger, w io.Writer, limit int, headers bool) error {
	j, err := journal.Open(db, logg)
	if errors.Is(err, journal.ErrNoJournal) {
		logg.Info("No journal entries yet")
		return nil
	}
	if err != nil {
		return err
	}

	entries, err := j.Recent(ctx, limit)
	if err != nil {
		return err
	}
	return historyTable(entries).Render(w, headers)
}

func historyTable(entries []journal.Entry) *render.Table {
	t := render.NewTable(
		render.Column{Header: "TIME", Width: 22},
		render.Column{Header: "RUN", Width: 10},
		render.Column{Header: "ACTION", Width: 8},
		render.Column{Header: "TYPE", Width: 11},
		render.Column{Header: "KEY", Width: 30},
		render.Column{Header: "NEW NAME", Width: 30},
		render.Column{Header: "STATUS", Width: 8},
		render.Column{Header: "ERROR", Width: 0},
	)
	for _, e := range entries {
		run := e.RunID
		if len(run) > 8 {
			run = run[:8]
		}
		t.AddRow(e.CreatedAt.UTC().Format("2006-01-02 15:04:05Z"), run, e.Action, e.Category, e.Key, e.NewName, e.Status, e.Error)
	}
	return t
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Number of entries to show (0 for all)")
	RootCmd.AddCommand(historyCmd)
}
