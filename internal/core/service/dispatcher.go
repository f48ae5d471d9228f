package service

import (
	"context"
	"errors"
	"fmt"

	"balebridge/internal/core/domain"
	"balebridge/internal/core/port"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// handler performs the remote call of one item. A nil record with a nil
// error means the item contributes no output.
type handler func(ctx context.Context, c *call) (*domain.OutboundRecord, error)

// call is the per-item view handed to a handler. It is built fresh for
// every item.
type call struct {
	index  int
	item   domain.Item
	params domain.Params
	log    zerolog.Logger
}

type Dispatcher struct {
	bot      port.BotAPI
	raw      port.RawCaller
	resolver port.MediaResolver
	strict   bool
	handlers map[domain.Action]handler
}

type Option func(*Dispatcher)

// WithStrictOperations makes unknown (resource, operation) pairs fail the
// execution instead of producing no output.
func WithStrictOperations(strict bool) Option {
	return func(d *Dispatcher) {
		d.strict = strict
	}
}

func NewDispatcher(bot port.BotAPI, raw port.RawCaller, resolver port.MediaResolver, opts ...Option) (*Dispatcher, error) {
	d := &Dispatcher{
		bot:      bot,
		raw:      raw,
		resolver: resolver,
	}
	for _, opt := range opts {
		opt(d)
	}

	d.handlers = d.handlerTable()
	for _, action := range domain.Actions() {
		if _, ok := d.handlers[action]; !ok {
			return nil, fmt.Errorf("no handler registered for %s", action)
		}
	}

	log.Debug().Int("handlers", len(d.handlers)).Bool("strict", d.strict).Msg("dispatcher ready")

	return d, nil
}

// Execute runs the batch's operation once per item, in item order, one call
// at a time. All items share the batch's resource and operation. Item
// failures do not stop the batch; they are returned together as a
// *domain.BatchError next to the records of the items that succeeded.
func (d *Dispatcher) Execute(ctx context.Context, batch *domain.Batch) ([]domain.OutboundRecord, error) {
	action := domain.Action{Resource: batch.Resource, Operation: batch.Operation}
	l := log.With().Stringer("action", action).Int("items", len(batch.Items)).Logger()

	h, ok := d.handlers[action]
	if !ok {
		err := &domain.UnsupportedOperationError{Action: action}
		if d.strict {
			l.Error().Err(err).Msg("rejecting batch")
			return nil, err
		}
		l.Warn().Err(err).Msg("no handler, batch produces no output")
		return []domain.OutboundRecord{}, nil
	}

	l.Info().Msg("executing batch")

	records := make([]domain.OutboundRecord, 0, len(batch.Items))
	var failures []*domain.ItemError

	for i := range batch.Items {
		if err := ctx.Err(); err != nil {
			l.Warn().Err(err).Int("item", i).Msg("execution cancelled")
			if len(failures) > 0 {
				return records, errors.Join(err, &domain.BatchError{Failures: failures})
			}
			return records, err
		}

		c := &call{
			index:  i,
			item:   batch.Items[i],
			params: batch.ItemParams(i),
			log:    l.With().Int("item", i).Logger(),
		}

		record, err := h(ctx, c)
		if err != nil {
			c.log.Error().Err(err).Msg("item failed")
			failures = append(failures, &domain.ItemError{Index: i, Err: err})
			continue
		}
		if record == nil {
			continue
		}

		records = append(records, *record)
	}

	l.Info().Int("records", len(records)).Int("failures", len(failures)).Msg("batch done")

	if len(failures) > 0 {
		return records, &domain.BatchError{Failures: failures}
	}

	return records, nil
}
