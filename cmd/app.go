package cmd

import (
	"fmt"
	"io"

	"nbcli/core/config"
	"nbcli/core/database"
	"nbcli/core/journal"
	"nbcli/core/logger"
	"nbcli/core/netbox"
	"nbcli/core/prompt"
	"nbcli/core/reconcile"
	"nbcli/core/storage"
	"nbcli/feature/circuits"
	"nbcli/feature/dcim"
	"nbcli/feature/export"
	"nbcli/feature/ipam"
	"nbcli/feature/search"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds the collaborators of one invocation.
type App struct {
	cfg    *config.Config
	logger *zap.Logger
	client netbox.Client
	out    io.Writer

	dcim     *dcim.Service
	ipam     *ipam.Service
	circuits *circuits.Service
	search   *search.Service
	export   *export.Service
	prompter *prompt.Prompter

	connect func(database.Config) (*gorm.DB, error)
}

// loadRuntime loads configuration and builds the logger.
func loadRuntime(opts Options) (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(opts.ConfigDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.Debug {
		cfg.Log.Level = "debug"
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logg, nil
}

// newApp bootstraps configuration, logging and the NetBox client.
func newApp(opts Options, in io.Reader, out io.Writer) (*App, error) {
	cfg, logg, err := loadRuntime(opts)
	if err != nil {
		return nil, err
	}
	logg = logger.WithInvocation(logg, opts.Action.String(), opts.Category.String())

	token, err := netbox.ResolveToken(cfg.NetBox)
	if err != nil {
		return nil, err
	}
	client, err := netbox.NewClient(cfg.NetBox, token, logg)
	if err != nil {
		return nil, fmt.Errorf("failed to create NetBox client: %w", err)
	}

	var store storage.Client
	if opts.Upload {
		if store, err = storage.NewClient(cfg.Storage); err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	logg.Debug("Bootstrapped", zap.String("netbox", cfg.NetBox.URL), zap.Bool("journal", cfg.Journal.Enabled))
	return buildApp(cfg, logg, client, store, in, out), nil
}

func buildApp(cfg *config.Config, logg *zap.Logger, client netbox.Client, store storage.Client, in io.Reader, out io.Writer) *App {
	return &App{
		cfg:      cfg,
		logger:   logg,
		client:   client,
		out:      out,
		dcim:     dcim.NewService(client, logg),
		ipam:     ipam.NewService(client, logg),
		circuits: circuits.NewService(client, logg),
		search:   search.NewService(client, logg),
		export:   export.NewService(store, cfg.Storage, logg),
		prompter: prompt.New(in, out),
		connect:  database.Connect,
	}
}

// Close flushes the logger.
func (a *App) Close() {
	_ = a.logger.Sync()
}

// recorder opens the action journal for category. Without a configured
// journal it returns a nil recorder.
func (a *App) recorder(category string) (reconcile.Recorder, func(), error) {
	if !a.cfg.Journal.Enabled {
		return nil, func() {}, nil
	}

	db, err := a.connect(a.cfg.Journal.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open journal database: %w", err)
	}
	closeDB := func() {
		if err := database.Close(db); err != nil {
			a.logger.Warn("Failed to close journal database", zap.Error(err))
		}
	}

	j, err := journal.New(db, category, a.logger)
	if err != nil {
		closeDB()
		return nil, nil, err
	}
	a.logger.Info("Journal run started", zap.String("run_id", j.RunID()))
	return j, closeDB, nil
}
