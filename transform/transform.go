// Package transform defines pluggable bidirectional converters between
// raw tree values and typed domain values, plus the built-in converters
// for timestamps, URLs and stringified numbers.
package transform

// Transform converts a raw value pulled out of the tree into a domain
// value and a domain value back into its raw form. Implementations must
// be stateless and side-effect-free so one instance can be shared
// across conversions. Either direction may produce no value, reported
// through the second return.
type Transform[Raw, Domain any] interface {
	Decode(raw Raw) (Domain, bool)
	Encode(val Domain) (Raw, bool)
}
