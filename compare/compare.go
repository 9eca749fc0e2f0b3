// Package compare provides equality helpers for maps built on go-cmp.
package compare

import "github.com/google/go-cmp/cmp"

// MapsEqual reports whether a and b hold the same keys with equal values. Key
// order never matters. Values are compared with cmp.Equal, so pointers are
// followed and opts can customize value equality. A nil map equals an empty one.
func MapsEqual[K comparable, V any](a, b map[K]V, opts ...cmp.Option) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !cmp.Equal(av, bv, opts...) {
			return false
		}
	}
	return true
}

// MapsDiff returns a human-readable report of the differences between want and
// got, or an empty string when MapsEqual would return true.
func MapsDiff[K comparable, V any](want, got map[K]V, opts ...cmp.Option) string {
	if MapsEqual(want, got, opts...) {
		return ""
	}
	return cmp.Diff(want, got, opts...)
}
