package payload

import (
	"testing"

	"balebridge/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerCallbackQuery(t *testing.T) {
	params, err := AnswerCallbackQuery(domain.Params{
		"queryId":          "q",
		"additionalFields": map[string]any{"text": "saved", "show_alert": true, "cache_time": "5"},
	})
	require.NoError(t, err)

	assert.Equal(t, "q", params.CallbackQueryID)
	assert.Equal(t, "saved", params.Text)
	assert.True(t, params.ShowAlert)
	assert.Equal(t, 5, params.CacheTime)
}

func TestAnswerInlineQuery(t *testing.T) {
	tests := []struct {
		name    string
		results any
		want    string
		wantErr bool
	}{
		{
			name:    "json string",
			results: `[{"type":"article","id":"1","title":"t"}]`,
			want:    `[{"type":"article","id":"1","title":"t"}]`,
		},
		{
			name:    "decoded list",
			results: []any{map[string]any{"type": "article", "id": "2"}},
			want:    `[{"id":"2","type":"article"}]`,
		},
		{
			name:    "not json",
			results: "[{",
			wantErr: true,
		},
		{
			name:    "object instead of array",
			results: `{"type":"article"}`,
			wantErr: true,
		},
		{
			name:    "absent",
			results: nil,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := domain.Params{"queryId": "iq", "additionalFields": map[string]any{"cache_time": 10}}
			if tc.results != nil {
				p["results"] = tc.results
			}

			answer, err := AnswerInlineQuery(p)
			if tc.wantErr {
				var verr *domain.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "results", verr.Param)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, tc.want, string(answer.Results))
			assert.Equal(t, 10, answer.CacheTime)
		})
	}
}
