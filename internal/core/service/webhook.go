package service

import (
	"context"
	"fmt"

	"balebridge/internal/core/port"

	"github.com/go-telegram/bot"
	"github.com/rs/zerolog/log"
)

// Registrar manages the bot's webhook registration.
type Registrar struct {
	manager     port.WebhookManager
	secretToken string
}

func NewRegistrar(manager port.WebhookManager, secretToken string) *Registrar {
	return &Registrar{manager: manager, secretToken: secretToken}
}

// CheckExists reports whether the bot currently delivers updates to url.
func (r *Registrar) CheckExists(ctx context.Context, url string) (bool, error) {
	info, err := r.manager.GetWebhookInfo(ctx)
	if err != nil {
		err = fmt.Errorf("failed to get webhook info: %w", err)
		log.Error().Err(err).Send()
		return false, err
	}

	return info != nil && info.URL == url, nil
}

func (r *Registrar) Create(ctx context.Context, url string) (bool, error) {
	ok, err := r.manager.SetWebhook(ctx, &bot.SetWebhookParams{
		URL:         url,
		SecretToken: r.secretToken,
	})
	if err != nil {
		err = fmt.Errorf("failed to set webhook: %w", err)
		log.Error().Err(err).Str("url", url).Send()
		return false, err
	}

	log.Info().Str("url", url).Bool("ok", ok).Msg("webhook registered")

	return ok, nil
}

// Delete removes the registration. Failures are logged and reported as false.
func (r *Registrar) Delete(ctx context.Context) bool {
	ok, err := r.manager.DeleteWebhook(ctx, &bot.DeleteWebhookParams{})
	if err != nil {
		log.Warn().Err(err).Msg("failed to delete webhook")
		return false
	}

	return ok
}

// Info returns the registered webhook URL and the number of pending updates.
func (r *Registrar) Info(ctx context.Context) (string, int, error) {
	info, err := r.manager.GetWebhookInfo(ctx)
	if err != nil {
		return "", 0, fmt.Errorf("failed to get webhook info: %w", err)
	}
	if info == nil {
		return "", 0, nil
	}

	return info.URL, info.PendingUpdateCount, nil
}
