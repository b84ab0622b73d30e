package dcim

import (
	"nbcli/core/netbox"
	"nbcli/core/render"
	"nbcli/core/utils"
)

// DeviceTable lists devices with their primary IP, model, status, serial and asset tag.
func DeviceTable(devices []netbox.Device) *render.Table {
	t := render.NewTable(
		render.Column{Header: "NAME", Width: 35},
		render.Column{Header: "PRIMARY IP", Width: 20},
		render.Column{Header: "MODEL", Width: 30},
		render.Column{Header: "STATUS", Width: 15},
		render.Column{Header: "SERIAL", Width: 15},
		render.Column{Header: "ASSET TAG", Width: 15},
	)
	for i := range devices {
		d := &devices[i]
		t.AddRow(d.DisplayName(), d.PrimaryIP, d.DeviceType, d.Status, d.Serial, d.AssetTag)
	}
	return t
}

// LocateTable lists where devices physically are.
func LocateTable(devices []netbox.Device) *render.Table {
	t := render.NewTable(
		render.Column{Header: "NAME", Width: 35},
		render.Column{Header: "MODEL", Width: 20},
		render.Column{Header: "SITE", Width: 30},
		render.Column{Header: "RACK", Width: 15},
		render.Column{Header: "RACK LOCATION", Width: 15},
		render.Column{Header: "ASSET TAG", Width: 15},
		render.Column{Header: "SN", Width: 15},
	)
	for i := range devices {
		d := &devices[i]
		t.AddRow(d.DisplayName(), d.DeviceType, d.Site, d.Rack, d.Position, d.AssetTag, d.Serial)
	}
	return t
}

// SerialTable lists serial numbers and device names.
func SerialTable(devices []netbox.Device) *render.Table {
	t := render.NewTable(
		render.Column{Header: "SERIAL", Width: 30},
		render.Column{Header: "NAME", Width: 15},
	)
	for i := range devices {
		d := &devices[i]
		t.AddRow(d.Serial, d.DisplayName())
	}
	return t
}

// SerialLocateTable lists serial, name, model and site of located devices.
func SerialLocateTable(devices []netbox.Device) *render.Table {
	t := render.NewTable(
		render.Column{Header: "SERIAL", Width: 15},
		render.Column{Header: "NAME", Width: 30},
		render.Column{Header: "MODEL", Width: 15},
		render.Column{Header: "SITE", Width: 15},
	)
	for i := range devices {
		d := &devices[i]
		t.AddRow(d.Serial, d.DisplayName(), d.DeviceType, d.Site)
	}
	return t
}

// AssetTagTable lists asset tags and device names.
func AssetTagTable(devices []netbox.Device) *render.Table {
	t := render.NewTable(
		render.Column{Header: "ASSET TAG", Width: 30},
		render.Column{Header: "NAME", Width: 15},
	)
	for i := range devices {
		d := &devices[i]
		t.AddRow(d.AssetTag, d.DisplayName())
	}
	return t
}

// RackTable lists racks.
func RackTable(racks []netbox.Rack) *render.Table {
	t := render.NewTable(
		render.Column{Header: "NAME", Width: 20},
		render.Column{Header: "SITE", Width: 15},
		render.Column{Header: "ROLE", Width: 15},
	)
	for i := range racks {
		r := &racks[i]
		t.AddRow(utils.Or(r.Name, r.Display), r.Site, r.Role)
	}
	return t
}

// InterfaceTable lists interfaces with their device.
func InterfaceTable(interfaces []netbox.Interface) *render.Table {
	t := render.NewTable(
		render.Column{Header: "DEVICE", Width: 30},
		render.Column{Header: "NAME", Width: 20},
		render.Column{Header: "TYPE", Width: 20},
		render.Column{Header: "ENABLED", Width: 10},
		render.Column{Header: "DESCRIPTION", Width: 30},
	)
	for i := range interfaces {
		iface := &interfaces[i]
		t.AddRow(iface.Device, utils.Or(iface.Name, iface.Display), iface.Type, iface.Enabled, iface.Description)
	}
	return t
}
