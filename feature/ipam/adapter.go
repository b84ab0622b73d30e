package ipam

import (
	"context"

	"nbcli/core/apperr"
	"nbcli/core/netbox"
	"nbcli/core/reconcile"
)

// AddressAdapter implements reconcile.Adapter for IP addresses and deletes
// them in bulk.
type AddressAdapter struct {
	client netbox.Client
}

var (
	_ reconcile.Adapter      = (*AddressAdapter)(nil)
	_ reconcile.Mutator      = (*AddressAdapter)(nil)
	_ reconcile.BatchDeleter = (*AddressAdapter)(nil)
)

// NewAddressAdapter creates an IP address adapter.
func NewAddressAdapter(client netbox.Client) *AddressAdapter {
	return &AddressAdapter{client: client}
}

// Name returns the category the adapter reconciles.
func (a *AddressAdapter) Name() string {
	return "ip"
}

// Kind returns the compared field.
func (a *AddressAdapter) Kind() reconcile.IdentifierKind {
	return reconcile.KindAddress
}

// Fetch lists every IP address.
func (a *AddressAdapter) Fetch(ctx context.Context) ([]reconcile.Record, error) {
	addresses, err := a.client.ListIPAddresses(ctx, nil)
	if err != nil {
		return nil, err
	}
	return Records(addresses), nil
}

// Select returns the address with its mask; normalization decides whether
// the mask takes part in the comparison.
func (a *AddressAdapter) Select(rec reconcile.Record) (string, bool) {
	ip, ok := rec.(*netbox.IPAddress)
	if !ok || ip == nil || ip.Address == "" {
		return "", false
	}
	return ip.Address, true
}

// Delete removes one IP address.
func (a *AddressAdapter) Delete(ctx context.Context, rec reconcile.Record) error {
	return a.DeleteBatch(ctx, []reconcile.Record{rec})
}

// DeleteBatch removes IP addresses in one bulk request.
func (a *AddressAdapter) DeleteBatch(ctx context.Context, recs []reconcile.Record) error {
	ids := make([]int, 0, len(recs))
	for _, rec := range recs {
		ids = append(ids, rec.RecordID())
	}
	return apperr.Fetch("ip", a.client.DeleteIPAddresses(ctx, ids))
}

// Rename is not supported for IP addresses.
func (a *AddressAdapter) Rename(ctx context.Context, rec reconcile.Record, newName string) error {
	return apperr.NotImplemented("rename", "ip")
}

// Records converts IP addresses to reconcile records.
func Records(addresses []netbox.IPAddress) []reconcile.Record {
	records := make([]reconcile.Record, len(addresses))
	for i := range addresses {
		records[i] = &addresses[i]
	}
	return records
}
