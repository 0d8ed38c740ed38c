package main

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"

	"github.com/tarantool/go-ytclient/schema"
	"github.com/tarantool/go-ytclient/wire"
	"github.com/tarantool/go-ytclient/ytree"
)

type valueFlags struct {
	id        uint16
	typ       string
	aggregate bool
	timestamp uint64
	versioned bool
	spaces    bool
	msgpack   bool
}

func (a *app) newValueCommand() *cobra.Command {
	flags := valueFlags{
		id:        0,
		typ:       "",
		aggregate: false,
		timestamp: 0,
		versioned: false,
		spaces:    false,
		msgpack:   false,
	}

	cmd := &cobra.Command{
		Use:   "value [PAYLOAD]",
		Short: "Render a typed value as YSON text",
		Long: "Render a typed value as YSON text. Passing --timestamp, even 0, makes the value versioned.\n" +
			"The payload is parsed according to --type and must be omitted for null values.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.versioned = cmd.Flags().Changed("timestamp")

			return a.runValue(cmd, flags, args)
		},
	}

	cmd.Flags().Uint16Var(&flags.id, "id", 0, "column index")
	cmd.Flags().StringVar(&flags.typ, "type", "", "value type: null, int64, uint64, double, boolean, string, any, composite")
	cmd.Flags().BoolVar(&flags.aggregate, "aggregate", false, "mark the value as aggregating")
	cmd.Flags().Uint64Var(&flags.timestamp, "timestamp", 0, "version timestamp")
	cmd.Flags().BoolVar(&flags.spaces, "spaces", false, "separate YSON items with spaces")
	cmd.Flags().BoolVar(&flags.msgpack, "msgpack", false, "print the msgpack encoding in hex instead of YSON")

	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func (a *app) runValue(cmd *cobra.Command, flags valueFlags, args []string) error {
	typ, err := schema.ParseValueType(flags.typ)
	if err != nil {
		return err //nolint:wrapcheck
	}

	var raw *string
	if len(args) == 1 {
		raw = &args[0]
	}

	payload, err := parsePayload(typ, raw)
	if err != nil {
		return err
	}

	base, err := wire.NewUnversionedValue(flags.id, typ, flags.aggregate, payload)
	if err != nil {
		return err //nolint:wrapcheck
	}

	var value interface {
		ytree.TreeWriter
		msgpack.CustomEncoder
		fmt.Stringer
	} = base

	if flags.versioned {
		value = wire.NewVersionedValueFrom(base, wire.Timestamp(flags.timestamp))
	}

	a.log.Debug("built value", zap.Stringer("value", value))

	if flags.msgpack {
		data, err := msgpack.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to encode value: %w", err)
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(data))

		return err //nolint:wrapcheck
	}

	var out string

	if flags.spaces {
		out, err = ytree.Render(value, ytree.WithSpaces())
	} else {
		out, err = ytree.Render(value)
	}

	if err != nil {
		return fmt.Errorf("failed to render value: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

	return err //nolint:wrapcheck
}

// parsePayload converts the command line payload into the Go type expected
// by wire.NewUnversionedValue. A nil raw means no payload was given.
func parsePayload(typ schema.ValueType, raw *string) (any, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil
	}

	var (
		payload any
		err     error
	)

	switch typ {
	case schema.ValueTypeInt64:
		payload, err = strconv.ParseInt(*raw, 10, 64)
	case schema.ValueTypeUint64:
		payload, err = strconv.ParseUint(*raw, 10, 64)
	case schema.ValueTypeDouble:
		payload, err = strconv.ParseFloat(*raw, 64)
	case schema.ValueTypeBoolean:
		payload, err = strconv.ParseBool(*raw)
	default:
		payload = *raw
	}

	if err != nil {
		return nil, fmt.Errorf("failed to parse %s payload: %w", typ, err)
	}

	return payload, nil
}
