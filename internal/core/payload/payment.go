package payload

import (
	"errors"
	"fmt"
	"math"

	"balebridge/internal/core/domain"

	"github.com/go-telegram/bot"
	"github.com/spf13/cast"
)

// LabeledPrice is one invoice line. Amount is in the smallest currency unit.
type LabeledPrice struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

// InvoiceRequest is the body of sendInvoice, posted as plain JSON.
type InvoiceRequest struct {
	ChatID           string              `json:"chat_id"`
	Title            string              `json:"title"`
	Description      string              `json:"description"`
	Payload          string              `json:"payload"`
	ProviderToken    string              `json:"provider_token"`
	Currency         string              `json:"currency,omitempty"`
	Prices           []LabeledPrice      `json:"prices"`
	PhotoURL         string              `json:"photo_url,omitempty"`
	ReplyToMessageID int                 `json:"reply_to_message_id,omitempty"`
	ReplyMarkup      *domain.ReplyMarkup `json:"reply_markup,omitempty"`
}

type invoiceInput struct {
	ChatID           string `param:"chatId"`
	Title            string `param:"title"`
	Description      string `param:"description"`
	Payload          string `param:"payload"`
	ProviderToken    string `param:"providerToken"`
	Currency         string `param:"currency"`
	PhotoURL         string `param:"photoUrl"`
	ReplyToMessageID int    `param:"replyToMessageId"`
}

var (
	errNoPrices         = errors.New("at least one price is required")
	errFractionalAmount = errors.New("amount must be an integer in the smallest currency unit")
)

func SendInvoice(p domain.Params) (*InvoiceRequest, error) {
	var in invoiceInput
	if err := p.Decode(&in, "chatId", "title", "description", "payload", "providerToken", "prices"); err != nil {
		return nil, err
	}

	prices, err := invoicePrices(p["prices"])
	if err != nil {
		return nil, err
	}

	return &InvoiceRequest{
		ChatID:           in.ChatID,
		Title:            in.Title,
		Description:      in.Description,
		Payload:          in.Payload,
		ProviderToken:    in.ProviderToken,
		Currency:         in.Currency,
		Prices:           prices,
		PhotoURL:         in.PhotoURL,
		ReplyToMessageID: in.ReplyToMessageID,
		ReplyMarkup:      domain.BuildMarkup(p),
	}, nil
}

// invoicePrices accepts a plain list of {label, amount} or the collection
// form {"price": [...]}. Order is kept as given.
func invoicePrices(raw any) ([]LabeledPrice, error) {
	if collection, err := cast.ToStringMapE(raw); err == nil {
		raw = collection["price"]
	}

	list, err := cast.ToSliceE(raw)
	if err != nil {
		return nil, &domain.ValidationError{Param: "prices", Err: err}
	}
	if len(list) == 0 {
		return nil, &domain.ValidationError{Param: "prices", Err: errNoPrices}
	}

	prices := make([]LabeledPrice, 0, len(list))
	for i, entry := range list {
		m, err := cast.ToStringMapE(entry)
		if err != nil {
			return nil, &domain.ValidationError{Param: fmt.Sprintf("prices[%d]", i), Err: err}
		}

		amount, err := cast.ToFloat64E(m["amount"])
		if err != nil {
			return nil, &domain.ValidationError{Param: fmt.Sprintf("prices[%d].amount", i), Err: err}
		}
		if amount != math.Trunc(amount) {
			return nil, &domain.ValidationError{Param: fmt.Sprintf("prices[%d].amount", i), Err: errFractionalAmount}
		}

		prices = append(prices, LabeledPrice{
			Label:  cast.ToString(m["label"]),
			Amount: int64(amount),
		})
	}

	return prices, nil
}

type preCheckoutInput struct {
	QueryID      string `param:"preCheckoutQueryId"`
	OK           bool   `param:"ok"`
	ErrorMessage string `param:"errorMessage"`
}

func AnswerPreCheckoutQuery(p domain.Params) (*bot.AnswerPreCheckoutQueryParams, error) {
	in := preCheckoutInput{OK: true}
	if err := p.Decode(&in, "preCheckoutQueryId"); err != nil {
		return nil, err
	}
	if !in.OK && in.ErrorMessage == "" {
		return nil, &domain.ValidationError{Param: "errorMessage", Err: errEmpty}
	}

	return &bot.AnswerPreCheckoutQueryParams{
		PreCheckoutQueryID: in.QueryID,
		OK:                 in.OK,
		ErrorMessage:       in.ErrorMessage,
	}, nil
}

// TransactionRequest is the body of Bale's inquireTransaction.
type TransactionRequest struct {
	TransactionID string `json:"transaction_id"`
}

func InquireTransaction(p domain.Params) (*TransactionRequest, error) {
	id, err := p.String("transactionId")
	if err != nil {
		return nil, err
	}

	return &TransactionRequest{TransactionID: id}, nil
}
