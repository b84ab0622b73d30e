// Package search runs a free-text query across devices, prefixes, IP
// addresses, VLANs and tenants.
//
// Every category is an independent probe with an optional result: a category
// without hits is left out of the output, it is not an error. A failed
// request still aborts the search with a FetchError.
package search
