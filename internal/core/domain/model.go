package domain

import "maps"

// Credentials holds what is needed to address the bot API.
type Credentials struct {
	Token string
}

// BinaryData is a file attached to an item or produced by a record.
type BinaryData struct {
	Data     []byte `json:"data"`
	FileName string `json:"fileName,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
}

// Item is one unit of input handed over by the workflow engine.
type Item struct {
	JSON       map[string]any        `json:"json,omitempty"`
	Binary     map[string]BinaryData `json:"binary,omitempty"`
	Parameters map[string]any        `json:"parameters,omitempty"`
}

// Batch is a single execution request. Resource and Operation apply to every
// item in the batch; only parameters vary per item.
type Batch struct {
	Resource   Resource       `json:"resource"`
	Operation  Operation      `json:"operation"`
	Parameters map[string]any `json:"parameters,omitempty"`
	Items      []Item         `json:"items"`
}

// ItemParams returns a fresh parameter bag for item i: batch parameters
// overlaid with the item's own parameters.
func (b *Batch) ItemParams(i int) Params {
	p := make(Params, len(b.Parameters))
	maps.Copy(p, b.Parameters)
	if i >= 0 && i < len(b.Items) {
		maps.Copy(p, b.Items[i].Parameters)
	}

	return p
}

// OutboundRecord is the normalized output produced for one input item.
type OutboundRecord struct {
	JSON      map[string]any        `json:"json"`
	Binary    map[string]BinaryData `json:"binary"`
	ItemIndex int                   `json:"item_index"`
}

// NewRecord builds a record with an empty binary map.
func NewRecord(index int, json map[string]any) OutboundRecord {
	if json == nil {
		json = map[string]any{}
	}

	return OutboundRecord{
		JSON:      json,
		Binary:    map[string]BinaryData{},
		ItemIndex: index,
	}
}
