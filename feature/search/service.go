package search

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"nbcli/core/apperr"
	"nbcli/core/netbox"
	"nbcli/core/render"
	"nbcli/feature/dcim"
	"nbcli/feature/ipam"

	"go.uber.org/zap"
)

// Section is the result of one category probe.
type Section struct {
	Title string
	Table *render.Table
}

// probe queries one category. A nil section means the category had no hits.
type probe struct {
	title    string
	category string
	run      func(ctx context.Context, client netbox.Client, params url.Values) (*render.Table, error)
}

var probes = []probe{
	{"DEVICE", "device", func(ctx context.Context, c netbox.Client, p url.Values) (*render.Table, error) {
		devices, err := c.ListDevices(ctx, p)
		return optional(dcim.LocateTable(devices)), err
	}},
	{"PREFIXES", "prefix", func(ctx context.Context, c netbox.Client, p url.Values) (*render.Table, error) {
		prefixes, err := c.ListPrefixes(ctx, p)
		return optional(ipam.PrefixTable(prefixes)), err
	}},
	{"IP_ADDRESSES", "ip", func(ctx context.Context, c netbox.Client, p url.Values) (*render.Table, error) {
		addresses, err := c.ListIPAddresses(ctx, p)
		return optional(ipam.IPTable(addresses)), err
	}},
	{"VLANS", "vlan", func(ctx context.Context, c netbox.Client, p url.Values) (*render.Table, error) {
		vlans, err := c.ListVLANs(ctx, p)
		return optional(ipam.VLANSearchTable(vlans)), err
	}},
	{"TENANTS", "tenant", func(ctx context.Context, c netbox.Client, p url.Values) (*render.Table, error) {
		tenants, err := c.ListTenants(ctx, p)
		return optional(TenantTable(tenants)), err
	}},
}

func optional(t *render.Table) *render.Table {
	if t.Len() == 0 {
		return nil
	}
	return t
}

// Service runs free-text queries across record categories.
type Service struct {
	client netbox.Client
	logger *zap.Logger
}

// NewService creates a new search service.
func NewService(client netbox.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, logger: logger}
}

// Search probes devices, prefixes, IP addresses, VLANs and tenants for query
// and returns one section per category with hits, in that order.
func (s *Service) Search(ctx context.Context, query string) ([]Section, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperr.UserInput("empty query")
	}

	params := netbox.Search(query)
	var sections []Section
	for _, p := range probes {
		table, err := p.run(ctx, s.client, params)
		if err != nil {
			return nil, apperr.Fetch(p.category, err)
		}
		if table == nil {
			s.logger.Debug("No search hits", zap.String("type", p.category))
			continue
		}
		sections = append(sections, Section{Title: p.title, Table: table})
	}
	return sections, nil
}

// Render writes each section title followed by its table.
func Render(w io.Writer, sections []Section, headers bool) error {
	for _, section := range sections {
		if _, err := fmt.Fprintf(w, "\n%s\n", section.Title); err != nil {
			return err
		}
		if err := section.Table.Render(w, headers); err != nil {
			return err
		}
	}
	return nil
}

// TenantTable lists tenants.
func TenantTable(tenants []netbox.Tenant) *render.Table {
	t := render.NewTable(
		render.Column{Header: "NAME", Width: 35},
		render.Column{Header: "SLUG", Width: 20},
		render.Column{Header: "DESCRIPTION", Width: 30},
	)
	for i := range tenants {
		tenant := &tenants[i]
		name := tenant.Name
		if name == "" {
			name = tenant.Display
		}
		t.AddRow(name, tenant.Slug, tenant.Description)
	}
	return t
}
