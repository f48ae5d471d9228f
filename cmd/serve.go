package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"balebridge/internal/adapters/file"
	"balebridge/internal/adapters/handler"
	"balebridge/internal/core/domain"
	"balebridge/internal/core/service"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	shutdownTimeout   = 10 * time.Second
	unregisterTimeout = 5 * time.Second
)

var register bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Receive webhook updates and store them as records",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		size, err := domain.ParsePhotoSize(cfg.Trigger.ImageSize)
		if err != nil {
			return err
		}

		c, err := newClients(cfg)
		if err != nil {
			return err
		}

		sink, err := file.NewDirSink(cfg.Trigger.OutputDir)
		if err != nil {
			return err
		}

		trigger := service.NewTrigger(c.resolver, sink,
			service.NewChatAuthorizer(cfg.Trigger.AllowedChatIDs), size)
		webhook := handler.NewWebhook(trigger, cfg.Trigger.SecretToken, cfg.Trigger.Timeout)

		registrar := service.NewRegistrar(c.bot, cfg.Trigger.SecretToken)
		if register && cfg.Trigger.PublicURL != "" {
			exists, err := registrar.CheckExists(ctx, cfg.Trigger.PublicURL)
			if err != nil {
				return err
			}
			if !exists {
				if _, err := registrar.Create(ctx, cfg.Trigger.PublicURL); err != nil {
					return err
				}
			}
		}

		srv := &http.Server{
			Addr:              cfg.Trigger.Listen,
			Handler:           webhook.Router(cfg.Trigger.Path),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info().Str("listen", srv.Addr).Str("path", cfg.Trigger.Path).Msg("webhook listening")
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
		case <-ctx.Done():
		}

		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("server shutdown incomplete")
		}
		webhook.Wait()

		if register && cfg.Trigger.PublicURL != "" {
			unregister(registrar)
		}

		return nil
	},
}

// unregister removes the webhook on a fresh deadline, independent of the
// shutdown context.
func unregister(registrar *service.Registrar) bool {
	ctx, cancel := context.WithTimeout(context.Background(), unregisterTimeout)
	defer cancel()

	if !registrar.Delete(ctx) {
		log.Warn().Msg("webhook may still be registered")
		return false
	}

	log.Info().Msg("webhook removed")

	return true
}

func init() {
	serveCmd.Flags().BoolVar(&register, "register", false, "register trigger.public_url on start and remove it on shutdown")
	rootCmd.AddCommand(serveCmd)
}
