package proxy

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tarantool/go-ytclient/guid"
	"github.com/tarantool/go-ytclient/internal/optional"
)

type transactionDocument struct {
	Type          TransactionType `yaml:"type"`
	Timeout       *time.Duration  `yaml:"timeout,omitempty"`
	ID            *guid.GUID      `yaml:"id,omitempty"`
	ParentID      *guid.GUID      `yaml:"parent_id,omitempty"`
	AutoAbort     *bool           `yaml:"auto_abort,omitempty"`
	Ping          *bool           `yaml:"ping,omitempty"`
	PingAncestors *bool           `yaml:"ping_ancestors,omitempty"`
	Sticky        *bool           `yaml:"sticky,omitempty"`
}

// UnmarshalYAML implements yaml.Unmarshaler. Keys missing from the document
// stay unset; keys present with a zero value are set.
//
//	type: tablet
//	timeout: 30s
//	ping: false
func (o *TransactionOptions) UnmarshalYAML(node *yaml.Node) error {
	var doc transactionDocument

	err := node.Decode(&doc)
	if err != nil {
		return fmt.Errorf("failed to decode transaction options: %w", err)
	}

	opts, err := NewTransactionOptions(doc.Type)
	if err != nil {
		return fmt.Errorf("failed to decode transaction options: %w", err)
	}

	opts.timeout = optional.FromPointer(doc.Timeout)
	opts.id = optional.FromPointer(doc.ID)
	opts.parentID = optional.FromPointer(doc.ParentID)
	opts.autoAbort = optional.FromPointer(doc.AutoAbort)
	opts.ping = optional.FromPointer(doc.Ping)
	opts.pingAncestors = optional.FromPointer(doc.PingAncestors)
	opts.sticky = optional.FromPointer(doc.Sticky)

	*o = *opts

	return nil
}

// MarshalYAML implements yaml.Marshaler. Unset options are omitted.
func (o *TransactionOptions) MarshalYAML() (any, error) {
	return transactionDocument{
		Type:          o.typ,
		Timeout:       optional.ToPointer(o.timeout),
		ID:            optional.ToPointer(o.id),
		ParentID:      optional.ToPointer(o.parentID),
		AutoAbort:     optional.ToPointer(o.autoAbort),
		Ping:          optional.ToPointer(o.ping),
		PingAncestors: optional.ToPointer(o.pingAncestors),
		Sticky:        optional.ToPointer(o.sticky),
	}, nil
}
