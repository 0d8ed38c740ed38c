package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type columnDocument struct {
	Name      string     `yaml:"name"`
	Type      ValueType  `yaml:"type"`
	SortOrder *SortOrder `yaml:"sort_order,omitempty"`
	Aggregate *string    `yaml:"aggregate,omitempty"`
}

type tableDocument struct {
	Columns    []columnDocument `yaml:"columns"`
	Strict     *bool            `yaml:"strict,omitempty"`
	UniqueKeys *bool            `yaml:"unique_keys,omitempty"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
//
//	columns:
//	  - {name: key, type: int64, sort_order: ascending}
//	  - {name: value, type: string}
//	unique_keys: true
func (s *TableSchema) UnmarshalYAML(node *yaml.Node) error {
	var doc tableDocument

	err := node.Decode(&doc)
	if err != nil {
		return fmt.Errorf("failed to decode table schema: %w", err)
	}

	columns := make([]ColumnSchema, 0, len(doc.Columns))
	for _, columnDoc := range doc.Columns {
		column := NewColumnSchema(columnDoc.Name, columnDoc.Type)

		if columnDoc.SortOrder != nil {
			column = column.WithSortOrder(*columnDoc.SortOrder)
		}

		if columnDoc.Aggregate != nil {
			column = column.WithAggregate(*columnDoc.Aggregate)
		}

		columns = append(columns, column)
	}

	opts := defaultTableOptions()
	if doc.Strict != nil {
		opts.strict = *doc.Strict
	}

	if doc.UniqueKeys != nil {
		opts.uniqueKeys = *doc.UniqueKeys
	}

	*s = TableSchema{
		columns:    columns,
		strict:     opts.strict,
		uniqueKeys: opts.uniqueKeys,
	}

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s TableSchema) MarshalYAML() (any, error) {
	doc := tableDocument{
		Columns:    make([]columnDocument, 0, len(s.columns)),
		Strict:     &s.strict,
		UniqueKeys: &s.uniqueKeys,
	}

	for _, column := range s.columns {
		columnDoc := columnDocument{
			Name:      column.name,
			Type:      column.typ,
			SortOrder: nil,
			Aggregate: nil,
		}

		if order, ok := column.sortOrder.Get(); ok {
			columnDoc.SortOrder = &order
		}

		if function, ok := column.aggregate.Get(); ok {
			columnDoc.Aggregate = &function
		}

		doc.Columns = append(doc.Columns, columnDoc)
	}

	return doc, nil
}
