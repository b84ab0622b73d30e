package category

import (
	"strings"

	"nbcli/core/apperr"
)

// Category is a kind of inventory record.
type Category string

const (
	Device    Category = "device"
	IP        Category = "ip"
	VLAN      Category = "vlan"
	Circuit   Category = "circuit"
	Rack      Category = "rack"
	Prefix    Category = "prefix"
	Interface Category = "interface"
	Serial    Category = "serial"
	AssetTag  Category = "asset_tag"
)

// All lists every category in help order.
var All = []Category{Device, IP, VLAN, Circuit, Rack, Prefix, Interface, Serial, AssetTag}

var aliases = map[string]Category{
	"asset":      AssetTag,
	"asset-tag":  AssetTag,
	"ip-address": IP,
	"ip_address": IP,
}

// IsValid checks if the category is known.
func (c Category) IsValid() bool {
	switch c {
	case Device, IP, VLAN, Circuit, Rack, Prefix, Interface, Serial, AssetTag:
		return true
	default:
		return false
	}
}

func (c Category) String() string {
	return string(c)
}

// Parse resolves a -t value to a Category.
func Parse(raw string) (Category, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if alias, ok := aliases[v]; ok {
		return alias, nil
	}
	c := Category(v)
	if !c.IsValid() {
		return "", apperr.UserInput("unrecognized type: -t %s", raw)
	}
	return c, nil
}

// Action is an operation requested on a category.
type Action string

const (
	List   Action = "list"
	Rename Action = "rename"
	Delete Action = "delete"
	Export Action = "export"
	Locate Action = "locate"
)

// IsValid checks if the action is known.
func (a Action) IsValid() bool {
	switch a {
	case List, Rename, Delete, Export, Locate:
		return true
	default:
		return false
	}
}

func (a Action) String() string {
	return string(a)
}

// ParseAction resolves a -a value to an Action.
func ParseAction(raw string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(raw)))
	if !a.IsValid() {
		return "", apperr.UserInput("unrecognized action: -a %s", raw)
	}
	return a, nil
}
