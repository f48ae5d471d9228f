package bale

import (
	"context"
	"net/http"
	"strings"
	"time"

	"balebridge/internal/core/domain"
	"balebridge/internal/core/port"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

const DefaultAPIURL = "https://tapi.bale.ai"

var (
	_ port.BotAPI         = (*bot.Bot)(nil)
	_ port.WebhookManager = (*bot.Bot)(nil)
)

// NewBot builds the shared client used for every typed call. It never talks
// to the server during construction.
func NewBot(creds domain.Credentials, apiURL string, timeout time.Duration) (*bot.Bot, error) {
	if creds.Token == "" {
		return nil, domain.ErrMissingToken
	}

	opts := []bot.Option{
		bot.WithServerURL(baseURL(apiURL)),
		bot.WithSkipGetMe(),
		bot.WithDefaultHandler(noOpHandler),
	}
	if timeout > 0 {
		opts = append(opts, bot.WithHTTPClient(timeout, &http.Client{Timeout: timeout}))
	}

	b, err := bot.New(creds.Token, opts...)
	if err != nil {
		log.Error().Err(err).Msg("failed initializing bale bot client")
		return nil, err
	}

	return b, nil
}

func baseURL(apiURL string) string {
	if apiURL == "" {
		return DefaultAPIURL
	}

	return strings.TrimRight(apiURL, "/")
}

func noOpHandler(_ context.Context, _ *bot.Bot, _ *models.Update) {}
