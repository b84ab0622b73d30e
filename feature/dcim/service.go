package dcim

import (
	"context"

	"nbcli/core/apperr"
	"nbcli/core/netbox"
	"nbcli/core/reconcile"
	"nbcli/core/render"

	"go.uber.org/zap"
)

// Service handles device, rack and interface operations.
type Service struct {
	client netbox.Client
	logger *zap.Logger
}

// NewService creates a new dcim service.
func NewService(client netbox.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		logger: logger,
	}
}

// Located is the result of locating a list of identifiers.
type Located struct {
	// Table holds one row per device found.
	Table *render.Table
	// NotFound lists identifiers without a device, sorted.
	NotFound []string
}

// Devices fetches every device.
func (s *Service) Devices(ctx context.Context) ([]netbox.Device, error) {
	devices, err := s.client.ListDevices(ctx, nil)
	if err != nil {
		return nil, apperr.Fetch("device", err)
	}
	s.logger.Debug("Fetched devices", zap.Int("count", len(devices)))
	return devices, nil
}

// ListDevices returns the device table.
func (s *Service) ListDevices(ctx context.Context) (*render.Table, error) {
	devices, err := s.Devices(ctx)
	if err != nil {
		return nil, err
	}
	return DeviceTable(devices), nil
}

// ListSerials returns the serial number table.
func (s *Service) ListSerials(ctx context.Context) (*render.Table, error) {
	devices, err := s.Devices(ctx)
	if err != nil {
		return nil, err
	}
	return SerialTable(devices), nil
}

// ListAssetTags returns the asset tag table.
func (s *Service) ListAssetTags(ctx context.Context) (*render.Table, error) {
	devices, err := s.Devices(ctx)
	if err != nil {
		return nil, err
	}
	return AssetTagTable(devices), nil
}

// ListRacks returns the rack table.
func (s *Service) ListRacks(ctx context.Context) (*render.Table, error) {
	racks, err := s.client.ListRacks(ctx, nil)
	if err != nil {
		return nil, apperr.Fetch("rack", err)
	}
	return RackTable(racks), nil
}

// ListInterfaces returns the interface table.
func (s *Service) ListInterfaces(ctx context.Context) (*render.Table, error) {
	interfaces, err := s.client.ListInterfaces(ctx, nil)
	if err != nil {
		return nil, apperr.Fetch("interface", err)
	}
	return InterfaceTable(interfaces), nil
}

// Locate returns the physical location of devices. With no names every
// device is listed; otherwise only devices whose name is in names.
func (s *Service) Locate(ctx context.Context, names []string) (*Located, error) {
	devices, err := s.Devices(ctx)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return &Located{Table: LocateTable(devices)}, nil
	}
	matched, notFound := s.match(NewNameAdapter(s.client), devices, names)
	return &Located{Table: LocateTable(matched), NotFound: notFound}, nil
}

// LocateSerials looks devices up by serial number with a single fetch.
func (s *Service) LocateSerials(ctx context.Context, serials []string) (*Located, error) {
	devices, err := s.Devices(ctx)
	if err != nil {
		return nil, err
	}
	matched, notFound := s.match(NewSerialAdapter(s.client), devices, serials)
	return &Located{Table: SerialLocateTable(matched), NotFound: notFound}, nil
}

func (s *Service) match(adapter *DeviceAdapter, devices []netbox.Device, ids []string) ([]netbox.Device, []string) {
	report := reconcile.Reconcile(ids, Records(devices), adapter.Select, reconcile.NewNormalizer(adapter.Kind(), ids))
	s.logger.Debug("Located devices",
		zap.String("field", string(adapter.Kind())),
		zap.Int("matched", len(report.Matched)),
		zap.Int("not_found", len(report.Unmatched)))
	return MatchedDevices(report), report.Unmatched
}

// MatchedDevices returns the devices behind the matched identifiers of a report.
func MatchedDevices(report *reconcile.Report) []netbox.Device {
	var devices []netbox.Device
	for _, rec := range report.MatchedRecords() {
		if d, ok := rec.(*netbox.Device); ok {
			devices = append(devices, *d)
		}
	}
	return devices
}
