package entity_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docledger/docledger/constants"
	"github.com/docledger/docledger/internal/common"
	"github.com/docledger/docledger/internal/entity"
)

var billDate = time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)

func newBill(t *testing.T) entity.Bill {
	t.Helper()
	b, err := entity.NewBill(uuid.New(), uuid.New(), uuid.New(), 100.00, billDate, "electricity", billDate)
	require.NoError(t, err)
	return b
}

func TestNewBill(t *testing.T) {
	b := newBill(t)
	assert.Equal(t, constants.LedgerStateCreated, b.State)
	assert.False(t, b.CreatedFromInbox())
	assert.Nil(t, b.InboxItemID)
}

func TestNewBillFromInbox(t *testing.T) {
	inboxID := uuid.New()
	b, err := entity.NewBillFromInbox(uuid.New(), uuid.New(), uuid.New(), inboxID, 59.99, billDate, "internet", billDate)
	require.NoError(t, err)

	assert.Equal(t, constants.LedgerStateCreated, b.State)
	assert.True(t, b.CreatedFromInbox())
	require.NotNil(t, b.InboxItemID)
	assert.Equal(t, inboxID, *b.InboxItemID)
}

func TestNewBill_RejectsBadAmount(t *testing.T) {
	_, err := entity.NewBill(uuid.New(), uuid.New(), uuid.New(), 0, billDate, "", billDate)
	assert.Error(t, err)

	_, err = entity.NewBill(uuid.New(), uuid.New(), uuid.New(), -5, billDate, "", billDate)
	assert.Error(t, err)
}

func TestBill_Remove(t *testing.T) {
	b := newBill(t)

	removed, err := b.Remove()
	require.NoError(t, err)
	assert.Equal(t, constants.LedgerStateRemoved, removed.State)
	assert.False(t, removed.IsActive())
	assert.False(t, removed.CanRemove())

	_, err = removed.Remove()
	var illegal *common.IllegalStateError
	require.True(t, errors.As(err, &illegal))
	assert.Equal(t, "Cannot remove bill from state REMOVED", illegal.Message)
}

func TestBill_UpdateAmount(t *testing.T) {
	b := newBill(t)

	tests := []struct {
		name    string
		amount  float64
		wantErr string
	}{
		{"negative", -1.50, "amount cannot be negative"},
		{"zero", 0, "amount must be greater than zero"},
		{"positive", 245.10, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated, err := b.UpdateAmount(tt.amount)
			if tt.wantErr != "" {
				var illegal *common.IllegalArgumentError
				require.True(t, errors.As(err, &illegal))
				assert.Equal(t, tt.wantErr, illegal.Message)
				assert.Equal(t, b, updated)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.amount, updated.Amount)

			// frame property: nothing else changed
			updated.Amount = b.Amount
			assert.True(t, b.Equals(updated))
		})
	}
}

func TestBill_UpdateServiceProvider(t *testing.T) {
	b := newBill(t)

	_, err := b.UpdateServiceProvider(uuid.Nil)
	var illegal *common.IllegalArgumentError
	require.True(t, errors.As(err, &illegal))

	next := uuid.New()
	updated, err := b.UpdateServiceProvider(next)
	require.NoError(t, err)
	assert.Equal(t, next, updated.ServiceProviderID)
}

func TestBill_Equals(t *testing.T) {
	b := newBill(t)
	same := b
	assert.True(t, b.Equals(same))

	other, err := b.UpdateAmount(b.Amount + 1)
	require.NoError(t, err)
	assert.False(t, b.Equals(other))
}
