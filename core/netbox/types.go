package netbox

// Page is one page of a NetBox list response.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// NestedRef is the brief representation NetBox uses for related objects
// (site, rack, role, provider, ...).
type NestedRef struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Slug    string `json:"slug,omitempty"`
	Display string `json:"display"`
}

func (r *NestedRef) String() string {
	if r == nil {
		return ""
	}
	if r.Name != "" {
		return r.Name
	}
	return r.Display
}

// Choice is a NetBox choice field such as status.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func (c *Choice) String() string {
	if c == nil {
		return ""
	}
	if c.Label != "" {
		return c.Label
	}
	return c.Value
}

// NestedIP is the brief representation of an IP address (primary_ip).
type NestedIP struct {
	ID      int    `json:"id"`
	Address string `json:"address"`
	Display string `json:"display"`
}

func (n *NestedIP) String() string {
	if n == nil {
		return ""
	}
	return n.Address
}

// DeviceType is the nested device type of a device.
type DeviceType struct {
	ID           int        `json:"id"`
	Model        string     `json:"model"`
	Display      string     `json:"display"`
	Manufacturer *NestedRef `json:"manufacturer"`
}

func (d *DeviceType) String() string {
	if d == nil {
		return ""
	}
	if d.Model != "" {
		return d.Model
	}
	return d.Display
}

// Device is a dcim device.
type Device struct {
	ID         int         `json:"id"`
	Name       *string     `json:"name"`
	Display    string      `json:"display"`
	DeviceType *DeviceType `json:"device_type"`
	Site       *NestedRef  `json:"site"`
	Rack       *NestedRef  `json:"rack"`
	Position   *float64    `json:"position"`
	Serial     string      `json:"serial"`
	AssetTag   *string     `json:"asset_tag"`
	Status     *Choice     `json:"status"`
	PrimaryIP  *NestedIP   `json:"primary_ip"`
}

// RecordID returns the NetBox object ID.
func (d *Device) RecordID() int { return d.ID }

// DisplayName returns the device name, or the NetBox display string for
// unnamed devices.
func (d *Device) DisplayName() string {
	if d.Name != nil && *d.Name != "" {
		return *d.Name
	}
	return d.Display
}

// AssignedObject is the interface an IP address is assigned to.
type AssignedObject struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	Display        string     `json:"display"`
	Device         *NestedRef `json:"device"`
	VirtualMachine *NestedRef `json:"virtual_machine"`
}

func (a *AssignedObject) String() string {
	if a == nil {
		return ""
	}
	if a.Name != "" {
		return a.Name
	}
	return a.Display
}

// Owner returns the device or virtual machine owning the interface, if any.
func (a *AssignedObject) Owner() *NestedRef {
	if a == nil {
		return nil
	}
	if a.Device != nil {
		return a.Device
	}
	return a.VirtualMachine
}

// IPAddress is an ipam IP address.
type IPAddress struct {
	ID                 int             `json:"id"`
	Address            string          `json:"address"`
	Display            string          `json:"display"`
	VRF                *NestedRef      `json:"vrf"`
	Status             *Choice         `json:"status"`
	DNSName            string          `json:"dns_name"`
	Description        string          `json:"description"`
	AssignedObjectType *string         `json:"assigned_object_type"`
	AssignedObject     *AssignedObject `json:"assigned_object"`
}

// RecordID returns the NetBox object ID.
func (ip *IPAddress) RecordID() int { return ip.ID }

// DisplayName returns the address with its mask.
func (ip *IPAddress) DisplayName() string { return ip.Address }

// Prefix is an ipam prefix.
type Prefix struct {
	ID          int        `json:"id"`
	Prefix      string     `json:"prefix"`
	Status      *Choice    `json:"status"`
	Site        *NestedRef `json:"site"`
	VLAN        *NestedRef `json:"vlan"`
	Role        *NestedRef `json:"role"`
	Description string     `json:"description"`
}

// VLAN is an ipam VLAN.
type VLAN struct {
	ID          int        `json:"id"`
	VID         int        `json:"vid"`
	Name        string     `json:"name"`
	Display     string     `json:"display"`
	Site        *NestedRef `json:"site"`
	Group       *NestedRef `json:"group"`
	Status      *Choice    `json:"status"`
	Description string     `json:"description"`
}

// CircuitTermination is one end (A or Z) of a circuit.
type CircuitTermination struct {
	ID       int        `json:"id"`
	Display  string     `json:"display"`
	TermSide string     `json:"term_side"`
	Site     *NestedRef `json:"site"`
}

func (t *CircuitTermination) String() string {
	if t == nil {
		return ""
	}
	if t.Site != nil {
		return t.Site.String()
	}
	return t.Display
}

// Circuit is a circuits circuit.
type Circuit struct {
	ID           int                 `json:"id"`
	CID          string              `json:"cid"`
	Type         *NestedRef          `json:"type"`
	Provider     *NestedRef          `json:"provider"`
	Status       *Choice             `json:"status"`
	Description  string              `json:"description"`
	TerminationA *CircuitTermination `json:"termination_a"`
	TerminationZ *CircuitTermination `json:"termination_z"`
}

// Rack is a dcim rack.
type Rack struct {
	ID      int        `json:"id"`
	Name    string     `json:"name"`
	Display string     `json:"display"`
	Site    *NestedRef `json:"site"`
	Role    *NestedRef `json:"role"`
	Status  *Choice    `json:"status"`
}

// Interface is a dcim interface.
type Interface struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Display     string     `json:"display"`
	Device      *NestedRef `json:"device"`
	Type        *Choice    `json:"type"`
	Enabled     bool       `json:"enabled"`
	Description string     `json:"description"`
}

// Tenant is a tenancy tenant.
type Tenant struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Display     string `json:"display"`
	Description string `json:"description"`
}
