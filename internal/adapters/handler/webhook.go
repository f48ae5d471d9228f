package handler

import (
	"context"
	"crypto/subtle"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

const (
	secretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"
	maxBodyBytes      = 10 << 20
	defaultTimeout    = 30 * time.Second
)

type EventHandler interface {
	Handle(ctx context.Context, body []byte) error
}

// Webhook receives bot API updates. Every accepted request is answered
// before it is processed; processing runs in the background with its own
// timeout.
type Webhook struct {
	events      EventHandler
	secretToken string
	timeout     time.Duration
	wg          sync.WaitGroup
}

func NewWebhook(events EventHandler, secretToken string, timeout time.Duration) *Webhook {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Webhook{events: events, secretToken: secretToken, timeout: timeout}
}

func (w *Webhook) Router(path string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Post(path, w.Handle)
	r.Get("/healthz", func(rw http.ResponseWriter, _ *http.Request) {
		rw.WriteHeader(http.StatusOK)
	})

	return r
}

func (w *Webhook) Handle(rw http.ResponseWriter, r *http.Request) {
	if w.secretToken != "" &&
		subtle.ConstantTimeCompare([]byte(r.Header.Get(secretTokenHeader)), []byte(w.secretToken)) != 1 {
		log.Warn().Str("remote", r.RemoteAddr).Msg("webhook call with invalid secret token")
		rw.WriteHeader(http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		log.Error().Err(err).Msg("failed to read webhook body")
		rw.WriteHeader(http.StatusBadRequest)
		return
	}

	rw.WriteHeader(http.StatusOK)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
		defer cancel()

		if err := w.events.Handle(ctx, body); err != nil {
			log.Err(err).Msg("failed to process webhook event")
		}
	}()
}

// Wait blocks until every event accepted so far has been processed.
func (w *Webhook) Wait() {
	w.wg.Wait()
}
