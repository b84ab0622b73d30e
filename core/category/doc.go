// Package category holds the record types and actions understood by nbcli.
//
// The CLI accepts the values as free text (-t device, -a list); Parse and
// ParseAction validate them and resolve the aliases kept for compatibility
// with older scripts (asset, ip-address).
package category
