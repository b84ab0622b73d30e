package cmd

import (
	"context"
	"fmt"

	"nbcli/core/apperr"
	"nbcli/core/category"
	"nbcli/core/input"
	"nbcli/core/netbox"
	"nbcli/core/reconcile"
	"nbcli/core/render"
	"nbcli/feature/dcim"
	"nbcli/feature/ipam"
	"nbcli/feature/search"

	"go.uber.org/zap"
)

// handler runs one action on one category.
type handler func(ctx context.Context, a *App, opts Options) error

// tableFunc renders matched devices.
type tableFunc func([]netbox.Device) *render.Table

// handlers is the category x action table. Missing entries are not implemented.
var handlers = map[category.Action]map[category.Category]handler{
	category.List: {
		category.Device:    listDevices,
		category.IP:       listAddresses,
		category.Serial:    listSerials,
		category.AssetTag:  listAssetTags,
		category.VLAN:      listTable,
		category.Circuit:   listTable,
		category.Rack:      listTable,
		category.Prefix:    listTable,
		category.Interface: listTable,
	},
	category.Locate: {
		category.Device: locateDevices,
		category.Serial: locateSerials,
	},
	category.Rename: {
		category.Device: renameDevices,
	},
	category.Delete: {
		category.Device: deleteDevices,
		category.IP:     deleteAddresses,
	},
	category.Export: {},
}

func init() {
	for _, c := range category.All {
		handlers[category.Export][c] = exportTable
	}
}

// dispatch runs the handler selected by opts. A query takes precedence over -a/-t.
func dispatch(ctx context.Context, a *App, opts Options) error {
	if opts.Query != "" {
		return runSearch(ctx, a, opts)
	}
	h, ok := handlers[opts.Action][opts.Category]
	if !ok {
		return apperr.NotImplemented(opts.Action.String(), opts.Category.String())
	}
	a.logger.Debug("Dispatching", zap.String("file", opts.File), zap.Bool("reverse", opts.Reverse))
	return h(ctx, a, opts)
}

// table returns the list table of a category.
func (a *App) table(ctx context.Context, c category.Category) (*render.Table, error) {
	switch c {
	case category.Device:
		return a.dcim.ListDevices(ctx)
	case category.Serial:
		return a.dcim.ListSerials(ctx)
	case category.AssetTag:
		return a.dcim.ListAssetTags(ctx)
	case category.Rack:
		return a.dcim.ListRacks(ctx)
	case category.Interface:
		return a.dcim.ListInterfaces(ctx)
	case category.IP:
		return a.ipam.ListAddresses(ctx)
	case category.Prefix:
		return a.ipam.ListPrefixes(ctx)
	case category.VLAN:
		return a.ipam.ListVLANs(ctx)
	case category.Circuit:
		return a.circuits.ListCircuits(ctx)
	default:
		return nil, apperr.UserInput("unrecognized type: -t %s", c)
	}
}

func listTable(ctx context.Context, a *App, opts Options) error {
	if opts.File != "" {
		return apperr.NotImplemented(fmt.Sprintf("%s -f", opts.Action), opts.Category.String())
	}
	t, err := a.table(ctx, opts.Category)
	if err != nil {
		return err
	}
	return t.Render(a.out, opts.Headers)
}

func listDevices(ctx context.Context, a *App, opts Options) error {
	if opts.File == "" {
		return listTable(ctx, a, opts)
	}
	report, err := reconcile.ReconcileFile(ctx, dcim.NewNameAdapter(a.client), opts.File)
	if err != nil {
		return err
	}
	a.logReport(report)

	title := "These devices were found in NetBox:"
	if opts.Reverse {
		title = "These devices were not found in NetBox:"
	}
	return render.List(a.out, title, report.Select(opts.Reverse))
}

func listAddresses(ctx context.Context, a *App, opts Options) error {
	if opts.File == "" {
		return listTable(ctx, a, opts)
	}
	report, err := reconcile.ReconcileFile(ctx, ipam.NewAddressAdapter(a.client), opts.File)
	if err != nil {
		return err
	}
	a.logReport(report)

	if opts.Reverse {
		return render.List(a.out, "Not found in NetBox", report.Unmatched)
	}
	return ipam.MatchedTable(report).Render(a.out, opts.Headers)
}

func listSerials(ctx context.Context, a *App, opts Options) error {
	if opts.File == "" {
		return listTable(ctx, a, opts)
	}
	return listMatchedDevices(ctx, a, opts, dcim.NewSerialAdapter(a.client), dcim.SerialTable)
}

func listAssetTags(ctx context.Context, a *App, opts Options) error {
	if opts.File == "" {
		return listTable(ctx, a, opts)
	}
	return listMatchedDevices(ctx, a, opts, dcim.NewAssetTagAdapter(a.client), dcim.AssetTagTable)
}

func listMatchedDevices(ctx context.Context, a *App, opts Options, adapter *dcim.DeviceAdapter, table tableFunc) error {
	report, err := reconcile.ReconcileFile(ctx, adapter, opts.File)
	if err != nil {
		return err
	}
	a.logReport(report)

	if opts.Reverse {
		return render.List(a.out, "Not found in NetBox", report.Unmatched)
	}
	return table(dcim.MatchedDevices(report)).Render(a.out, opts.Headers)
}

func locateDevices(ctx context.Context, a *App, opts Options) error {
	var names []string
	if opts.File != "" {
		var err error
		if names, err = input.ReadIdentifiers(opts.File); err != nil {
			return err
		}
	}
	located, err := a.dcim.Locate(ctx, names)
	if err != nil {
		return err
	}
	return a.renderLocated(located, opts)
}

func locateSerials(ctx context.Context, a *App, opts Options) error {
	if opts.File == "" {
		return apperr.UserInput("-a locate -t serial requires -f with one serial per line")
	}
	serials, err := input.ReadIdentifiers(opts.File)
	if err != nil {
		return err
	}
	located, err := a.dcim.LocateSerials(ctx, serials)
	if err != nil {
		return err
	}
	return a.renderLocated(located, opts)
}

func (a *App) renderLocated(located *dcim.Located, opts Options) error {
	if err := located.Table.Render(a.out, opts.Headers); err != nil {
		return err
	}
	if len(located.NotFound) == 0 {
		return nil
	}
	return render.List(a.out, "Not found in NetBox", located.NotFound)
}

func runSearch(ctx context.Context, a *App, opts Options) error {
	sections, err := a.search.Search(ctx, opts.Query)
	if err != nil {
		return err
	}
	if len(sections) == 0 {
		a.logger.Info("No results", zap.String("query", opts.Query))
		return nil
	}
	return search.Render(a.out, sections, opts.Headers)
}

func exportTable(ctx context.Context, a *App, opts Options) error {
	t, err := a.table(ctx, opts.Category)
	if err != nil {
		return err
	}
	if !opts.Upload {
		return a.export.Write(a.out, opts.Format, t)
	}

	name, err := a.export.Upload(ctx, opts.Category.String(), opts.Format, t)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out, "Exported %d records to %s/%s\n", t.Len(), a.cfg.Storage.Bucket, name)
	return err
}

func (a *App) logReport(report *reconcile.Report) {
	a.logger.Debug("Reconciled",
		zap.String("field", string(report.Kind)),
		zap.Int("identifiers", report.Total()),
		zap.Int("matched", len(report.Matched)),
		zap.Int("unmatched", len(report.Unmatched)))
}
