package ocr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docledger/docledger/internal/ocr"
)

func TestValidateResultPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{"minimal", `{"text":"Total: $42.00","confidence":0.93}`, false},
		{"full", `{"text":"abc","confidence":1.0,"pages":2,"warnings":["low dpi"]}`, false},
		{"missing text", `{"confidence":0.5}`, true},
		{"missing confidence", `{"text":"abc"}`, true},
		{"confidence out of range", `{"text":"abc","confidence":1.5}`, true},
		{"extra field", `{"text":"abc","confidence":0.5,"engine":"x"}`, true},
		{"not json", `Total: $42.00`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ocr.ValidateResultPayload([]byte(tt.payload))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
