package payload

import (
	"encoding/json"
	"errors"

	"balebridge/internal/core/domain"

	"github.com/go-telegram/bot"
	"github.com/spf13/cast"
)

type callbackAnswerFields struct {
	Text      string `param:"text"`
	ShowAlert bool   `param:"show_alert"`
	URL       string `param:"url"`
	CacheTime int    `param:"cache_time"`
}

func AnswerCallbackQuery(p domain.Params) (*bot.AnswerCallbackQueryParams, error) {
	queryID, err := p.String("queryId")
	if err != nil {
		return nil, err
	}

	extra, err := additionalFields(p)
	if err != nil {
		return nil, err
	}
	var fields callbackAnswerFields
	if err := extra.Decode(&fields); err != nil {
		return nil, err
	}

	return &bot.AnswerCallbackQueryParams{
		CallbackQueryID: queryID,
		Text:            fields.Text,
		ShowAlert:       fields.ShowAlert,
		URL:             fields.URL,
		CacheTime:       fields.CacheTime,
	}, nil
}

type inlineAnswerFields struct {
	CacheTime  int    `param:"cache_time"`
	IsPersonal bool   `param:"is_personal"`
	NextOffset string `param:"next_offset"`
}

// InlineQueryAnswer is the body of answerInlineQuery. Results are forwarded
// exactly as supplied by the caller.
type InlineQueryAnswer struct {
	InlineQueryID string          `json:"inline_query_id"`
	Results       json.RawMessage `json:"results"`
	CacheTime     int             `json:"cache_time,omitempty"`
	IsPersonal    bool            `json:"is_personal,omitempty"`
	NextOffset    string          `json:"next_offset,omitempty"`
}

var errResultsNotArray = errors.New("the results parameter is not a valid JSON array")

func AnswerInlineQuery(p domain.Params) (*InlineQueryAnswer, error) {
	queryID, err := p.String("queryId")
	if err != nil {
		return nil, err
	}

	results, err := inlineResults(p)
	if err != nil {
		return nil, err
	}

	extra, err := additionalFields(p)
	if err != nil {
		return nil, err
	}
	var fields inlineAnswerFields
	if err := extra.Decode(&fields); err != nil {
		return nil, err
	}

	return &InlineQueryAnswer{
		InlineQueryID: queryID,
		Results:       results,
		CacheTime:     fields.CacheTime,
		IsPersonal:    fields.IsPersonal,
		NextOffset:    fields.NextOffset,
	}, nil
}

// inlineResults accepts either a JSON string or an already decoded list.
func inlineResults(p domain.Params) (json.RawMessage, error) {
	if !p.Has("results") {
		return nil, &domain.ValidationError{Param: "results", Err: errResultsNotArray}
	}

	var raw []byte
	if s, ok := p["results"].(string); ok {
		raw = []byte(s)
	} else {
		encoded, err := json.Marshal(p["results"])
		if err != nil {
			return nil, &domain.ValidationError{Param: "results", Err: err}
		}
		raw = encoded
	}

	var results []any
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, &domain.ValidationError{Param: "results", Err: errors.Join(errResultsNotArray, err)}
	}
	for _, r := range results {
		if _, err := cast.ToStringMapE(r); err != nil {
			return nil, &domain.ValidationError{Param: "results", Err: errResultsNotArray}
		}
	}

	return json.RawMessage(raw), nil
}
