package schema

import (
	"slices"
	"strings"

	"github.com/tarantool/go-ytclient/internal/options"
)

type tableOptions struct {
	strict     bool
	uniqueKeys bool
}

func defaultTableOptions() tableOptions {
	return tableOptions{
		strict:     true,
		uniqueKeys: false,
	}
}

// WithStrict controls whether rows may carry columns absent from the schema.
// Schemas are strict by default.
func WithStrict(strict bool) options.Option[tableOptions] {
	return func(opts *tableOptions) {
		opts.strict = strict
	}
}

// WithUniqueKeys declares that key columns identify rows uniquely.
func WithUniqueKeys(unique bool) options.Option[tableOptions] {
	return func(opts *tableOptions) {
		opts.uniqueKeys = unique
	}
}

// TableSchema is an ordered list of columns plus table-wide flags.
// No validation happens here: whether the schema can be transmitted is
// decided by whoever projects it onto the wire.
type TableSchema struct {
	columns    []ColumnSchema
	strict     bool
	uniqueKeys bool
}

// NewTableSchema creates a schema from the columns in their declared order.
func NewTableSchema(columns []ColumnSchema, opts ...options.Option[tableOptions]) TableSchema {
	applied := options.Apply(defaultTableOptions(), opts...)

	return TableSchema{
		columns:    slices.Clone(columns),
		strict:     applied.strict,
		uniqueKeys: applied.uniqueKeys,
	}
}

// Columns returns a copy of the columns in declared order.
func (s TableSchema) Columns() []ColumnSchema {
	return slices.Clone(s.columns)
}

// Len returns the number of columns.
func (s TableSchema) Len() int {
	return len(s.columns)
}

// Strict reports whether the schema is strict.
func (s TableSchema) Strict() bool {
	return s.strict
}

// UniqueKeys reports whether key columns are unique.
func (s TableSchema) UniqueKeys() bool {
	return s.uniqueKeys
}

// Equal reports whether both schemas have equal columns in the same order
// and equal flags.
func (s TableSchema) Equal(other TableSchema) bool {
	return s.strict == other.strict &&
		s.uniqueKeys == other.uniqueKeys &&
		slices.EqualFunc(s.columns, other.columns, ColumnSchema.Equal)
}

func (s TableSchema) String() string {
	parts := make([]string, 0, len(s.columns))
	for _, column := range s.columns {
		parts = append(parts, column.String())
	}

	return "[" + strings.Join(parts, "; ") + "]"
}
