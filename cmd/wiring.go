package cmd

import (
	"fmt"

	"balebridge/internal/adapters/bale"
	"balebridge/internal/config"
	"balebridge/internal/core/domain"
	"balebridge/internal/core/service"

	"github.com/go-telegram/bot"
)

type clients struct {
	bot      *bot.Bot
	raw      *bale.RawClient
	resolver *service.Resolver
}

func newClients(c *config.Config) (*clients, error) {
	creds := domain.Credentials{Token: c.Bale.Token}

	b, err := bale.NewBot(creds, c.Bale.APIURL, c.Bale.Timeout)
	if err != nil {
		return nil, fmt.Errorf("failed initializing bot client: %w", err)
	}

	raw, err := bale.NewRawClient(creds, c.Bale.APIURL, c.Bale.Timeout)
	if err != nil {
		return nil, fmt.Errorf("failed initializing raw client: %w", err)
	}

	return &clients{
		bot:      b,
		raw:      raw,
		resolver: service.NewResolver(b, raw),
	}, nil
}
