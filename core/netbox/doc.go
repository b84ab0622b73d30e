// Package netbox is a small client for the NetBox REST API.
//
// It covers the record categories nbcli works with (devices, IP addresses,
// prefixes, VLANs, circuits, racks, interfaces and tenants), device renames
// and bulk deletes. It is not a general purpose binding: record types carry only
// the fields the tool reads.
//
// # Client Interface
//
// The Client interface abstracts the HTTP implementation so that features can be
// tested against the testify mock in core/netbox/mocks.
//
// # Behaviour
//
//   - List calls follow the "next" links until the collection is exhausted.
//   - Every request carries "Authorization: <scheme> <token>"; the token is resolved
//     once at startup with ResolveToken.
//   - Non-2xx responses become *APIError.
//   - Requests can be rate limited (Config.RateLimit, requests per second).
//
// # Usage
//
//	token, err := netbox.ResolveToken(cfg.NetBox)
//	client, err := netbox.NewClient(cfg.NetBox, token, log)
//	devices, err := client.ListDevices(ctx, nil)
//	hits, err := client.ListPrefixes(ctx, netbox.Search("10.1."))
package netbox
