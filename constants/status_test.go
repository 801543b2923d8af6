package constants_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docledger/docledger/constants"
)

func TestCanonicalizeStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want constants.Status
	}{
		{"PENDING", constants.StatusNew},
		{"PROCESSING", constants.StatusNew},
		{"DRAFT", constants.StatusNew},
		{"NEW", constants.StatusNew},
		{"APPROVED", constants.StatusApproved},
		{"REJECTED", constants.StatusRejected},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := constants.CanonicalizeStatus(tt.raw)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanonicalizeStatus_Unknown(t *testing.T) {
	// lookup is exact: no case folding, no whitespace trimming
	for _, raw := range []string{"garbage", "", "APPROVED_V2", "pending", " NEW "} {
		_, err := constants.CanonicalizeStatus(raw)
		assert.Error(t, err)

		var unknown *constants.UnknownStatusError
		assert.True(t, errors.As(err, &unknown))
		assert.Equal(t, raw, unknown.Raw)
	}
}
