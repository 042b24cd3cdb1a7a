package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDetails_PerType(t *testing.T) {
	cases := []struct {
		name    string
		entry   HistoryEntry
		wantErr bool
	}{
		{
			name: "prediction ok",
			entry: HistoryEntry{
				Type:    HistoryTypePrediction,
				Details: json.RawMessage(`{"coin":"BTC","current_price":50000,"predicted_price":50500}`),
			},
		},
		{
			name: "calculation ok",
			entry: HistoryEntry{
				Type:    HistoryTypeCalculation,
				Details: json.RawMessage(`{"coin":"ETH","amount":10000,"days":7,"investment":10000}`),
			},
		},
		{
			name: "compare ok",
			entry: HistoryEntry{
				Type:    HistoryTypeCompare,
				Details: json.RawMessage(`{"coin1":"BTC","coin2":"ETH"}`),
			},
		},
		{
			name: "unknown type",
			entry: HistoryEntry{
				Type:    "portfolio",
				Details: json.RawMessage(`{}`),
			},
			wantErr: true,
		},
		{
			name: "compare missing coin",
			entry: HistoryEntry{
				Type:    HistoryTypeCompare,
				Details: json.RawMessage(`{"coin1":"BTC"}`),
			},
			wantErr: true,
		},
		{
			name: "prediction malformed payload",
			entry: HistoryEntry{
				Type:    HistoryTypePrediction,
				Details: json.RawMessage(`"not an object"`),
			},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.entry.ValidateDetails()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
