package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wanipop/internal/bootstrap"
	"github.com/at-ishikawa/wanipop/internal/server"
)

func newServeCommand() *cobra.Command {
	var addr string
	var allowedOrigins []string
	command := &cobra.Command{
		Use:   "serve",
		Short: "Serve the settings and reviews to the desktop UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadSettings()
			if err != nil {
				return err
			}
			service, closeService := newReviewService(store)
			defer closeService()

			metrics := server.NewMetrics()
			handler := server.NewReviewHandler(store, service, metrics)
			srv := server.NewHTTPServer(addr, server.NewMux(handler, metrics), allowedOrigins)

			app := bootstrap.New()
			app.AddShutdownHook("server", srv.Shutdown)
			return app.Run(cmd.Context(), func(ctx context.Context) error {
				slog.Default().Info("starting server", "addr", srv.Addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("srv.ListenAndServe > %w", err)
				}
				return nil
			})
		},
	}
	command.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "address to listen on")
	command.Flags().StringSliceVar(&allowedOrigins, "allowed-origin", []string{server.DefaultAllowedOrigin}, "origins allowed to call the server")
	return command
}
