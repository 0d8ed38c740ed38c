package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tarantool/go-ytclient/proxy"
	"github.com/tarantool/go-ytclient/proxy/request"
)

func (a *app) newStartTransactionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start-transaction FILE",
		Short: "Render a StartTransaction request from transaction options",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadDocument[*proxy.TransactionOptions](a, cmd, args[0])
			if err != nil {
				return err
			}

			a.log.Debug("loaded transaction options", zap.Stringer("type", opts.Type()))

			msg, err := opts.WriteProto(nil)
			if err != nil {
				return err //nolint:wrapcheck
			}

			return a.printMessage(cmd, msg)
		},
	}
}

func (a *app) newReshardTableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reshard-table FILE",
		Short: "Render a ReshardTable request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := loadDocument[*request.ReshardTable](a, cmd, args[0])
			if err != nil {
				return err
			}

			a.log.Debug("loaded reshard request",
				zap.String("path", req.Path()),
				zap.Bool("schema", req.Schema().IsSome()),
				zap.Bool("tablet_count", req.TabletCount().IsSome()))

			msg, err := req.WriteProto(nil)
			if err != nil {
				return err //nolint:wrapcheck
			}

			return a.printMessage(cmd, msg)
		},
	}
}

func (a *app) newMountTableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mount-table FILE",
		Short: "Render a MountTable request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := loadDocument[*request.MountTable](a, cmd, args[0])
			if err != nil {
				return err
			}

			a.log.Debug("loaded mount request", zap.String("path", req.Path()))

			msg, err := req.WriteProto(nil)
			if err != nil {
				return err //nolint:wrapcheck
			}

			return a.printMessage(cmd, msg)
		},
	}
}

func (a *app) newUnmountTableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unmount-table FILE",
		Short: "Render an UnmountTable request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := loadDocument[*request.UnmountTable](a, cmd, args[0])
			if err != nil {
				return err
			}

			a.log.Debug("loaded unmount request", zap.String("path", req.Path()))

			msg, err := req.WriteProto(nil)
			if err != nil {
				return err //nolint:wrapcheck
			}

			return a.printMessage(cmd, msg)
		},
	}
}
