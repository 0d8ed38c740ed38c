package request

import (
	"fmt"

	"github.com/tarantool/go-option"
	"gopkg.in/yaml.v3"

	"github.com/tarantool/go-ytclient/guid"
	"github.com/tarantool/go-ytclient/internal/optional"
	"github.com/tarantool/go-ytclient/schema"
)

type mutatingDocument struct {
	MutationID *guid.GUID `yaml:"mutation_id,omitempty"`
	Retry      *bool      `yaml:"retry,omitempty"`
}

type tabletRangeDocument struct {
	FirstTabletIndex *int32 `yaml:"first_tablet_index,omitempty"`
	LastTabletIndex  *int32 `yaml:"last_tablet_index,omitempty"`
}

type tableDocument struct {
	Path               string               `yaml:"path"`
	MutatingOptions    *mutatingDocument    `yaml:"mutating_options,omitempty"`
	TabletRangeOptions *tabletRangeDocument `yaml:"tablet_range_options,omitempty"`
}

type reshardDocument struct {
	tableDocument `yaml:",inline"`

	Schema      *schema.TableSchema `yaml:"schema,omitempty"`
	TabletCount *int32              `yaml:"tablet_count,omitempty"`
}

type mountDocument struct {
	tableDocument `yaml:",inline"`

	CellID *guid.GUID `yaml:"cell_id,omitempty"`
	Freeze *bool      `yaml:"freeze,omitempty"`
}

type unmountDocument struct {
	tableDocument `yaml:",inline"`

	Force *bool `yaml:"force,omitempty"`
}

func (d tableDocument) build() (tableReq, error) {
	base, err := newTableReq(d.Path)
	if err != nil {
		return tableReq{}, err
	}

	if d.MutatingOptions != nil {
		base.mutatingOptions = option.Some(MutatingOptions{
			mutationID: optional.FromPointer(d.MutatingOptions.MutationID),
			retry:      optional.FromPointer(d.MutatingOptions.Retry),
		})
	}

	if d.TabletRangeOptions != nil {
		base.tabletRangeOptions = option.Some(TabletRangeOptions{
			firstTabletIndex: optional.FromPointer(d.TabletRangeOptions.FirstTabletIndex),
			lastTabletIndex:  optional.FromPointer(d.TabletRangeOptions.LastTabletIndex),
		})
	}

	return base, nil
}

func (r *tableReq) document() tableDocument {
	doc := tableDocument{
		Path:               r.path,
		MutatingOptions:    nil,
		TabletRangeOptions: nil,
	}

	if opts, ok := r.mutatingOptions.Get(); ok {
		doc.MutatingOptions = &mutatingDocument{
			MutationID: optional.ToPointer(opts.mutationID),
			Retry:      optional.ToPointer(opts.retry),
		}
	}

	if opts, ok := r.tabletRangeOptions.Get(); ok {
		doc.TabletRangeOptions = &tabletRangeDocument{
			FirstTabletIndex: optional.ToPointer(opts.firstTabletIndex),
			LastTabletIndex:  optional.ToPointer(opts.lastTabletIndex),
		}
	}

	return doc
}

// UnmarshalYAML implements yaml.Unmarshaler. Keys missing from the document
// stay unset.
//
//	path: //home/table
//	schema:
//	  columns:
//	    - {name: key, type: int64, sort_order: ascending}
//	tablet_count: 4
func (r *ReshardTable) UnmarshalYAML(node *yaml.Node) error {
	var doc reshardDocument

	err := node.Decode(&doc)
	if err != nil {
		return fmt.Errorf("failed to decode reshard table request: %w", err)
	}

	base, err := doc.build()
	if err != nil {
		return fmt.Errorf("failed to decode reshard table request: %w", err)
	}

	*r = ReshardTable{
		tableReq:    base,
		schema:      optional.FromPointer(doc.Schema),
		tabletCount: optional.FromPointer(doc.TabletCount),
	}

	return nil
}

// MarshalYAML implements yaml.Marshaler. Unset fields are omitted.
func (r *ReshardTable) MarshalYAML() (any, error) {
	return reshardDocument{
		tableDocument: r.document(),
		Schema:        optional.ToPointer(r.schema),
		TabletCount:   optional.ToPointer(r.tabletCount),
	}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Keys missing from the document
// stay unset.
func (r *MountTable) UnmarshalYAML(node *yaml.Node) error {
	var doc mountDocument

	err := node.Decode(&doc)
	if err != nil {
		return fmt.Errorf("failed to decode mount table request: %w", err)
	}

	base, err := doc.build()
	if err != nil {
		return fmt.Errorf("failed to decode mount table request: %w", err)
	}

	*r = MountTable{
		tableReq: base,
		cellID:   optional.FromPointer(doc.CellID),
		freeze:   optional.FromPointer(doc.Freeze),
	}

	return nil
}

// MarshalYAML implements yaml.Marshaler. Unset fields are omitted.
func (r *MountTable) MarshalYAML() (any, error) {
	return mountDocument{
		tableDocument: r.document(),
		CellID:        optional.ToPointer(r.cellID),
		Freeze:        optional.ToPointer(r.freeze),
	}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Keys missing from the document
// stay unset.
func (r *UnmountTable) UnmarshalYAML(node *yaml.Node) error {
	var doc unmountDocument

	err := node.Decode(&doc)
	if err != nil {
		return fmt.Errorf("failed to decode unmount table request: %w", err)
	}

	base, err := doc.build()
	if err != nil {
		return fmt.Errorf("failed to decode unmount table request: %w", err)
	}

	*r = UnmountTable{
		tableReq: base,
		force:    optional.FromPointer(doc.Force),
	}

	return nil
}

// MarshalYAML implements yaml.Marshaler. Unset fields are omitted.
func (r *UnmountTable) MarshalYAML() (any, error) {
	return unmountDocument{
		tableDocument: r.document(),
		Force:         optional.ToPointer(r.force),
	}, nil
}
