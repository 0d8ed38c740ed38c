package schema

import (
	"fmt"

	"github.com/tarantool/go-option"
)

// ColumnSchema describes a single column of a table.
// Values are immutable: the With* methods return modified copies.
type ColumnSchema struct {
	name      string
	typ       ValueType
	sortOrder option.Generic[SortOrder]
	aggregate option.Generic[string]
}

// NewColumnSchema creates a non-key column without an aggregate function.
func NewColumnSchema(name string, typ ValueType) ColumnSchema {
	return ColumnSchema{
		name:      name,
		typ:       typ,
		sortOrder: option.None[SortOrder](),
		aggregate: option.None[string](),
	}
}

// WithSortOrder makes the column a key column with the given ordering.
func (c ColumnSchema) WithSortOrder(order SortOrder) ColumnSchema {
	c.sortOrder = option.Some(order)
	return c
}

// WithAggregate sets the name of the aggregate function of the column.
func (c ColumnSchema) WithAggregate(function string) ColumnSchema {
	c.aggregate = option.Some(function)
	return c
}

// Name returns the column name.
func (c ColumnSchema) Name() string {
	return c.name
}

// Type returns the column value type.
func (c ColumnSchema) Type() ValueType {
	return c.typ
}

// SortOrder returns the ordering of a key column, none for data columns.
func (c ColumnSchema) SortOrder() option.Generic[SortOrder] {
	return c.sortOrder
}

// Aggregate returns the aggregate function name, if any.
func (c ColumnSchema) Aggregate() option.Generic[string] {
	return c.aggregate
}

// IsKey reports whether the column is a key column.
func (c ColumnSchema) IsKey() bool {
	return c.sortOrder.IsSome()
}

// Equal reports whether both columns have the same attributes.
func (c ColumnSchema) Equal(other ColumnSchema) bool {
	return c.name == other.name &&
		c.typ == other.typ &&
		optionEqual(c.sortOrder, other.sortOrder) &&
		optionEqual(c.aggregate, other.aggregate)
}

func (c ColumnSchema) String() string {
	out := fmt.Sprintf("%s:%s", c.name, c.typ)

	if order, ok := c.sortOrder.Get(); ok {
		out += " " + order.String()
	}

	if function, ok := c.aggregate.Get(); ok {
		out += " aggregate=" + function
	}

	return out
}

func optionEqual[T comparable](a, b option.Generic[T]) bool {
	aValue, aOk := a.Get()
	bValue, bOk := b.Get()

	return aOk == bOk && aValue == bValue
}
