package dcim

import (
	"context"
	"fmt"

	"nbcli/core/apperr"
	"nbcli/core/netbox"
	"nbcli/core/reconcile"
)

// DeviceAdapter implements reconcile.Adapter for one identifying device field.
// It also implements reconcile.Mutator and reconcile.BatchDeleter.
type DeviceAdapter struct {
	client netbox.Client
	kind   reconcile.IdentifierKind
}

var (
	_ reconcile.Adapter      = (*DeviceAdapter)(nil)
	_ reconcile.Mutator      = (*DeviceAdapter)(nil)
	_ reconcile.BatchDeleter = (*DeviceAdapter)(nil)
)

// NewNameAdapter compares device names.
func NewNameAdapter(client netbox.Client) *DeviceAdapter {
	return &DeviceAdapter{client: client, kind: reconcile.KindName}
}

// NewSerialAdapter compares device serial numbers.
func NewSerialAdapter(client netbox.Client) *DeviceAdapter {
	return &DeviceAdapter{client: client, kind: reconcile.KindSerial}
}

// NewAssetTagAdapter compares device asset tags.
func NewAssetTagAdapter(client netbox.Client) *DeviceAdapter {
	return &DeviceAdapter{client: client, kind: reconcile.KindAssetTag}
}

// Name returns the category the adapter reconciles.
func (a *DeviceAdapter) Name() string {
	switch a.kind {
	case reconcile.KindSerial:
		return "serial"
	case reconcile.KindAssetTag:
		return "asset_tag"
	default:
		return "device"
	}
}

// Kind returns the compared field.
func (a *DeviceAdapter) Kind() reconcile.IdentifierKind {
	return a.kind
}

// Fetch lists every device.
func (a *DeviceAdapter) Fetch(ctx context.Context) ([]reconcile.Record, error) {
	devices, err := a.client.ListDevices(ctx, nil)
	if err != nil {
		return nil, err
	}
	return Records(devices), nil
}

// Select returns the compared field of a device.
func (a *DeviceAdapter) Select(rec reconcile.Record) (string, bool) {
	d, ok := rec.(*netbox.Device)
	if !ok || d == nil {
		return "", false
	}
	var value string
	switch a.kind {
	case reconcile.KindSerial:
		value = d.Serial
	case reconcile.KindAssetTag:
		if d.AssetTag != nil {
			value = *d.AssetTag
		}
	default:
		if d.Name != nil {
			value = *d.Name
		}
	}
	return value, value != ""
}

// Delete removes one device.
func (a *DeviceAdapter) Delete(ctx context.Context, rec reconcile.Record) error {
	return a.DeleteBatch(ctx, []reconcile.Record{rec})
}

// DeleteBatch removes devices in one bulk request.
func (a *DeviceAdapter) DeleteBatch(ctx context.Context, recs []reconcile.Record) error {
	ids := make([]int, 0, len(recs))
	for _, rec := range recs {
		ids = append(ids, rec.RecordID())
	}
	return apperr.Fetch("device", a.client.DeleteDevices(ctx, ids))
}

// Rename sets a new device name.
func (a *DeviceAdapter) Rename(ctx context.Context, rec reconcile.Record, newName string) error {
	if newName == "" {
		return fmt.Errorf("empty new name for device %d", rec.RecordID())
	}
	_, err := a.client.UpdateDevice(ctx, rec.RecordID(), map[string]any{"name": newName})
	return apperr.Fetch("device", err)
}

// Records converts devices to reconcile records.
func Records(devices []netbox.Device) []reconcile.Record {
	records := make([]reconcile.Record, len(devices))
	for i := range devices {
		records[i] = &devices[i]
	}
	return records
}

// SelectName is the field selector for device names.
func SelectName(rec reconcile.Record) (string, bool) {
	return (&DeviceAdapter{kind: reconcile.KindName}).Select(rec)
}
