package reconcile

import (
	"net/netip"
	"strings"
)

// NewNormalizer returns the normalizer for kind. For addresses the mask
// handling is decided once from the identifier list, see PreserveMask.
func NewNormalizer(kind IdentifierKind, identifiers []string) Normalizer {
	if kind != KindAddress {
		return strings.TrimSpace
	}

	keepMask := PreserveMask(identifiers)
	return func(raw string) string {
		s := strings.TrimSpace(raw)
		if !keepMask {
			s = stripMask(s)
		}
		return canonicalAddress(s)
	}
}

// PreserveMask reports whether address masks take part in the comparison.
// Masks are kept for the whole list when its first non-blank identifier has one.
func PreserveMask(identifiers []string) bool {
	for _, id := range identifiers {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		return strings.Contains(id, "/")
	}
	return false
}

func stripMask(s string) string {
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		return s[:i]
	}
	return s
}

// canonicalAddress renders parseable addresses and prefixes in canonical form.
// Anything else is returned unchanged.
func canonicalAddress(s string) string {
	if strings.Contains(s, "/") {
		if p, err := netip.ParsePrefix(s); err == nil {
			return p.String()
		}
		return s
	}
	if a, err := netip.ParseAddr(s); err == nil {
		return a.String()
	}
	return s
}
