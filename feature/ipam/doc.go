// Package ipam implements IP address, prefix and VLAN operations.
//
// AddressAdapter reconciles IP address lists (see reconcile.NewNormalizer for
// the mask rule) and bulk deletes addresses. Service builds the ip, prefix
// and vlan list tables; the vlan table joins prefixes against a single VLAN
// fetch instead of one request per prefix.
package ipam
