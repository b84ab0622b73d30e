package ipam

import (
	"nbcli/core/netbox"
	"nbcli/core/reconcile"
	"nbcli/core/render"
	"nbcli/core/utils"
)

// IPTable lists IP addresses with their interface and device.
func IPTable(addresses []netbox.IPAddress) *render.Table {
	t := render.NewTable(
		render.Column{Header: "IP_ADDRESS", Width: 20},
		render.Column{Header: "INTERFACE", Width: 25},
		render.Column{Header: "DEVICE", Width: 30},
		render.Column{Header: "STATUS", Width: 15},
		render.Column{Header: "VRF", Width: 15},
		render.Column{Header: "DESCRIPTION", Width: 15},
	)
	for i := range addresses {
		ip := &addresses[i]
		t.AddRow(ip.Address, ip.AssignedObject, utils.Or(ip.AssignedObject.Owner(), "N/A"), ip.Status, ip.VRF, ip.Description)
	}
	return t
}

// MatchedTable lists the device and interface of every matched address of a
// report, showing the identifier as it was compared.
func MatchedTable(report *reconcile.Report) *render.Table {
	t := render.NewTable(
		render.Column{Header: "DEVICE", Width: 30},
		render.Column{Header: "IP", Width: 15},
		render.Column{Header: "INTERFACE", Width: 15},
	)
	for _, key := range report.Matched {
		for _, rec := range report.Records[key] {
			ip, ok := rec.(*netbox.IPAddress)
			if !ok {
				continue
			}
			t.AddRow(utils.Or(ip.AssignedObject.Owner(), "no device"), key, ip.AssignedObject)
		}
	}
	return t
}

// PrefixTable lists prefixes.
func PrefixTable(prefixes []netbox.Prefix) *render.Table {
	t := render.NewTable(
		render.Column{Header: "PREFIX", Width: 30},
		render.Column{Header: "STATUS", Width: 15},
		render.Column{Header: "SITE", Width: 15},
		render.Column{Header: "VLAN", Width: 30},
		render.Column{Header: "ROLE", Width: 20},
		render.Column{Header: "DESCRIPTION", Width: 15},
	)
	for i := range prefixes {
		p := &prefixes[i]
		t.AddRow(p.Prefix, p.Status, p.Site, p.VLAN, p.Role, p.Description)
	}
	return t
}

// VLANTable lists one row per prefix bound to a VLAN. VLANs are looked up in
// vlans by ID; prefixes without a VLAN, or whose VLAN is not in vlans, are skipped.
func VLANTable(prefixes []netbox.Prefix, vlans []netbox.VLAN) *render.Table {
	byID := make(map[int]*netbox.VLAN, len(vlans))
	for i := range vlans {
		byID[vlans[i].ID] = &vlans[i]
	}

	t := render.NewTable(
		render.Column{Header: "VLAN", Width: 40},
		render.Column{Header: "SITE", Width: 10},
		render.Column{Header: "PREFIX", Width: 30},
		render.Column{Header: "STATUS", Width: 15},
		render.Column{Header: "DESCRIPTION", Width: 15},
	)
	for i := range prefixes {
		p := &prefixes[i]
		if p.VLAN == nil {
			continue
		}
		v, ok := byID[p.VLAN.ID]
		if !ok {
			continue
		}
		t.AddRow(vlanName(v), v.Site, p.Prefix, v.Status, v.Description)
	}
	return t
}

// VLANSearchTable lists VLANs found by a free-text query.
func VLANSearchTable(vlans []netbox.VLAN) *render.Table {
	t := render.NewTable(
		render.Column{Header: "VLAN", Width: 40},
		render.Column{Header: "SITE", Width: 10},
		render.Column{Header: "GROUP", Width: 30},
		render.Column{Header: "STATUS", Width: 15},
		render.Column{Header: "DESCRIPTION", Width: 15},
	)
	for i := range vlans {
		v := &vlans[i]
		t.AddRow(vlanName(v), v.Site, v.Group, v.Status, v.Description)
	}
	return t
}

func vlanName(v *netbox.VLAN) string {
	if v.Display != "" {
		return v.Display
	}
	return v.Name
}
