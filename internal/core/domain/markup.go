package domain

import (
	"encoding/json"
	"maps"

	"github.com/spf13/cast"
)

type MarkupKind string

const (
	MarkupNone           MarkupKind = "none"
	MarkupForceReply     MarkupKind = "forceReply"
	MarkupRemoveKeyboard MarkupKind = "replyKeyboardRemove"
	MarkupInlineKeyboard MarkupKind = "inlineKeyboard"
	MarkupReplyKeyboard  MarkupKind = "replyKeyboard"
)

// Button is a single keyboard button in wire format.
type Button map[string]any

// ReplyMarkup is the keyboard attached to an outgoing message. Options holds
// the verbatim object for force-reply and keyboard removal, and extra
// top-level flags for reply keyboards.
type ReplyMarkup struct {
	Kind    MarkupKind
	Options map[string]any
	Rows    [][]Button
}

// Wire renders the markup object expected by the bot API.
func (m *ReplyMarkup) Wire() map[string]any {
	if m == nil {
		return nil
	}

	out := make(map[string]any, len(m.Options)+1)
	maps.Copy(out, m.Options)

	switch m.Kind {
	case MarkupInlineKeyboard:
		out["inline_keyboard"] = m.grid()
	case MarkupReplyKeyboard:
		out["keyboard"] = m.grid()
	}

	return out
}

func (m *ReplyMarkup) grid() [][]Button {
	if m.Rows == nil {
		return [][]Button{}
	}

	return m.Rows
}

func (m *ReplyMarkup) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Wire())
}

var replyKeyboardOptionKeys = []string{
	"resize_keyboard",
	"one_time_keyboard",
	"selective",
	"is_persistent",
	"input_field_placeholder",
}

// BuildMarkup reads the replyMarkup selection of an item and turns the
// matching keyboard description into a ReplyMarkup. It returns nil when no
// markup is requested. Malformed keyboard descriptions produce an empty grid.
func BuildMarkup(p Params) *ReplyMarkup {
	kind := MarkupKind(p.StringOr("replyMarkup", string(MarkupNone)))

	switch kind {
	case MarkupForceReply, MarkupRemoveKeyboard:
		options, err := p.Map(string(kind))
		if err != nil {
			options = map[string]any{}
		}
		return &ReplyMarkup{Kind: kind, Options: options}
	case MarkupInlineKeyboard, MarkupReplyKeyboard:
		keyboard, err := p.Map(string(kind))
		if err != nil {
			keyboard = map[string]any{}
		}
		markup := &ReplyMarkup{Kind: kind, Rows: buildRows(keyboard)}
		if kind == MarkupReplyKeyboard {
			markup.Options = replyKeyboardOptions(p)
		}
		return markup
	default:
		return nil
	}
}

func replyKeyboardOptions(p Params) map[string]any {
	raw, err := p.Map("replyKeyboardOptions")
	if err != nil {
		return nil
	}

	var options map[string]any
	for _, key := range replyKeyboardOptionKeys {
		if v, ok := raw[key]; ok {
			if options == nil {
				options = make(map[string]any)
			}
			options[key] = v
		}
	}

	return options
}

func buildRows(keyboard map[string]any) [][]Button {
	rows := [][]Button{}

	rawRows, err := cast.ToSliceE(keyboard["rows"])
	if err != nil {
		return rows
	}

	for _, rawRow := range rawRows {
		row, err := cast.ToStringMapE(rawRow)
		if err != nil {
			continue
		}
		inner, err := cast.ToStringMapE(row["row"])
		if err != nil {
			continue
		}
		if inner["buttons"] == nil {
			continue
		}
		buttons, err := cast.ToSliceE(inner["buttons"])
		if err != nil || len(buttons) == 0 {
			continue
		}

		out := make([]Button, 0, len(buttons))
		for _, rawButton := range buttons {
			button, err := cast.ToStringMapE(rawButton)
			if err != nil {
				continue
			}
			out = append(out, buildButton(button))
		}
		if len(out) == 0 {
			continue
		}
		rows = append(rows, out)
	}

	return rows
}

func buildButton(button map[string]any) Button {
	out := Button{}
	if extra, err := cast.ToStringMapE(button["additionalFields"]); err == nil {
		maps.Copy(out, extra)
	}
	out["text"] = cast.ToString(button["text"])

	return out
}
