package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gogo/protobuf/proto"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tarantool/go-ytclient/marshaller"
)

const (
	formatText = "text"
	formatHex  = "hex"
)

var errUnknownFormat = errors.New("unknown output format")

type app struct {
	verbose bool
	format  string
	log     *zap.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{
		verbose: false,
		format:  formatText,
		log:     zap.NewNop(),
	}

	root := &cobra.Command{
		Use:           "ytwire",
		Short:         "Render YT RPC proxy requests and values",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setupLogger()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.log.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log decoding steps to stderr")
	root.PersistentFlags().StringVar(&a.format, "format", formatText,
		"output format of request messages: text or hex")

	root.AddCommand(
		a.newStartTransactionCommand(),
		a.newReshardTableCommand(),
		a.newMountTableCommand(),
		a.newUnmountTableCommand(),
		a.newValueCommand(),
	)

	return root
}

func (a *app) setupLogger() error {
	if !a.verbose {
		return nil
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	a.log = logger

	return nil
}

// readInput reads the document at path, "-" meaning stdin.
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path) //nolint:gosec
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return data, nil
}

// loadDocument decodes the YAML document at path into T.
func loadDocument[T any](a *app, cmd *cobra.Command, path string) (T, error) {
	data, err := readInput(cmd, path)
	if err != nil {
		var zero T
		return zero, err
	}

	a.log.Debug("decoding document", zap.String("path", path), zap.Int("size", len(data)))

	out, err := marshaller.NewTypedYamlMarshaller[T]().Unmarshal(data)
	if err != nil {
		return out, err //nolint:wrapcheck
	}

	return out, nil
}

// printMessage writes msg in the selected format.
func (a *app) printMessage(cmd *cobra.Command, msg proto.Message) error {
	switch a.format {
	case formatText:
		err := proto.MarshalText(cmd.OutOrStdout(), msg)
		if err != nil {
			return fmt.Errorf("failed to print message: %w", err)
		}
	case formatHex:
		data, err := proto.Marshal(msg)
		if err != nil {
			return fmt.Errorf("failed to marshal message: %w", err)
		}

		a.log.Debug("marshalled message", zap.String("type", proto.MessageName(msg)), zap.Int("size", len(data)))

		_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(data))
		if err != nil {
			return fmt.Errorf("failed to print message: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, a.format)
	}

	return nil
}
