package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"nbcli/core/apperr"
	"nbcli/core/input"
	"nbcli/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errUsage is returned after help was printed for an empty invocation.
var errUsage = errors.New("no arguments given")

var flags rawFlags

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "nbcli",
	Short: "A NetBox CLI tool useful for bulk actions and comparison",
	Long: `nbcli lists NetBox inventory, compares local identifier files with it
and bulk renames or deletes the records those files name.`,
	Example: `  nbcli -a list -t device -f mydevices.txt
      Show all the devices in mydevices.txt that ARE in NetBox.

  nbcli -a list -t device -f mydevices.txt -r
      Show all the devices in mydevices.txt that are NOT in NetBox.

  nbcli -q core-sw
      Search devices, prefixes, IP addresses, VLANs and tenants.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().NFlag() == 0 && len(args) == 0 {
			_ = cmd.Help()
			return errUsage
		}
		return run(cmd, flags, "")
	},
}

// actionCmd builds a subcommand that runs a fixed action.
func actionCmd(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, flags, action)
		},
	}
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search devices, prefixes, IP addresses, VLANs and tenants",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f := flags
		f.query = strings.Join(args, " ")
		return run(cmd, f, "")
	},
}

// run validates f, checks the input file and dispatches the invocation.
func run(cmd *cobra.Command, f rawFlags, action string) error {
	opts, err := f.options(action)
	if err != nil {
		return err
	}
	if opts.File != "" {
		if err := input.CheckReadable(opts.File); err != nil {
			return err
		}
	}

	app, err := newApp(opts, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer app.Close()

	return dispatch(cmd.Context(), app, opts)
}

// Execute runs the root command and exits with the status matching the error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := RootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(report(err, os.Stderr))
	}
}

// report writes err for the operator and returns the exit status.
func report(err error, w io.Writer) int {
	if errors.Is(err, errUsage) {
		return apperr.ExitFailure
	}

	code := apperr.ExitCode(err)
	if code == apperr.ExitFailure {
		// Console logger with development timestamps, independent of the loaded configuration.
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		}
	}
	fmt.Fprintln(w, apperr.Message(err))
	return code
}

func init() {
	pf := RootCmd.PersistentFlags()
	pf.StringVarP(&flags.action, "action", "a", "", "Action: list, rename, delete, export, locate (default list)")
	pf.StringVarP(&flags.category, "type", "t", "", "Type: device, ip, vlan, circuit, rack, prefix, interface, serial, asset_tag (default device)")
	pf.StringVarP(&flags.file, "file", "f", "", "Input file, one identifier per line (rename: OLD_NAME<TAB>NEW_NAME)")
	pf.BoolVarP(&flags.reverse, "reverse", "r", false, "Report identifiers NOT found in NetBox")
	pf.BoolVar(&flags.headers, "headers", false, "Print a header row above tables")
	pf.StringVarP(&flags.query, "query", "q", "", "Free-text search across record types")
	pf.BoolVar(&flags.yes, "yes", false, "Auto-confirm destructive actions (non-interactive)")
	pf.BoolVar(&flags.dryRun, "dry-run", false, "Plan rename/delete without changing NetBox")
	pf.StringVar(&flags.format, "format", "csv", "Export format: csv, json, yaml")
	pf.BoolVar(&flags.upload, "upload", false, "Upload exports to the configured bucket instead of stdout")
	pf.BoolVar(&flags.debug, "debug", false, "Enable debug logging")
	pf.StringVar(&flags.configDir, "config-dir", ".", "Directory holding .env and nbcli.yaml")

	RootCmd.AddCommand(
		actionCmd("list", "List records, or reconcile them against -f"),
		actionCmd("locate", "Show where devices are racked"),
		actionCmd("rename", "Bulk rename devices from a OLD_NAME<TAB>NEW_NAME file"),
		actionCmd("delete", "Bulk delete devices or IP addresses named in -f"),
		actionCmd("export", "Export a record type as csv, json or yaml"),
		searchCmd,
	)
}
