package cmd

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ZacxDev/go-docs-site/config"
	"github.com/ZacxDev/go-docs-site/handlers"
	"github.com/ZacxDev/go-docs-site/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the navigation model, reloading on config changes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		watch, _ := cmd.Flags().GetBool("watch")
		logger := logging.WithComponent("serve")

		holder, err := config.NewHolder(configPath)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if watch {
			if err := holder.Watch(ctx); err != nil {
				return err
			}
		}

		server := &http.Server{
			Addr:              ":" + port,
			Handler:           handlers.SetupRouter(holder),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(shutdownCtx)
		}()

		logger.Info().Str("event", "serve.start").Str("addr", server.Addr).Bool("watch", watch).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "serve")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "9010", "Port to run the server on")
	serveCmd.Flags().BoolP("watch", "w", true, "Reload when the configuration file changes")
}
