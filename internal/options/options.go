// Package options implements the functional options taken by the
// constructors of this module, such as schema.NewTableSchema and
// ytree.NewTextWriter.
package options

// Option adjusts a single setting of T.
type Option[T any] func(*T)

// Apply returns defaults with opts applied in order, so a later option
// overrides an earlier one. nil options are skipped.
func Apply[T any](defaults T, opts ...Option[T]) T {
	for _, opt := range opts {
		if opt != nil {
			opt(&defaults)
		}
	}

	return defaults
}
