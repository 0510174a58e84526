package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"worldcup-dash/worldcup"

	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		host string
		port int
	)
	defaults := DefaultConfig().Server

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("host") {
				a.cfg.Server.Host = host
			}
			if cmd.Flags().Changed("port") {
				a.cfg.Server.Port = port
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			return a.runServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&host, "host", defaults.Host, "Interface to bind")
	cmd.Flags().IntVarP(&port, "port", "p", defaults.Port, "Port to listen on")
	return cmd
}

func (a *app) runServe(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := a.cfg.Server.Addr()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}

	h := newDashboard(worldcup.Default(), a.logger)
	return serve(ctx, ln, newRouter(h, a.logger), a.cfg.Server, a.logger)
}
