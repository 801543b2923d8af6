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

func newReceipt(t *testing.T) entity.Receipt {
	t.Helper()
	date := time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC)
	r, err := entity.NewReceipt(uuid.New(), uuid.New(), uuid.New(), 42.00, date, "groceries", date)
	require.NoError(t, err)
	return r
}

func TestReceipt_Lifecycle(t *testing.T) {
	r := newReceipt(t)
	assert.True(t, r.IsActive())
	assert.True(t, r.CanRemove())

	removed, err := r.Remove()
	require.NoError(t, err)
	assert.Equal(t, constants.LedgerStateRemoved, removed.State)

	_, err = removed.Remove()
	var illegal *common.IllegalStateError
	require.True(t, errors.As(err, &illegal))
	assert.Equal(t, "Cannot remove receipt from state REMOVED", illegal.Message)
}

func TestReceipt_UpdateAmount(t *testing.T) {
	r := newReceipt(t)

	_, err := r.UpdateAmount(-0.01)
	var illegal *common.IllegalArgumentError
	require.True(t, errors.As(err, &illegal))
	assert.Equal(t, "amount cannot be negative", illegal.Message)

	_, err = r.UpdateAmount(0)
	require.True(t, errors.As(err, &illegal))
	assert.Equal(t, "amount must be greater than zero", illegal.Message)

	updated, err := r.UpdateAmount(99.95)
	require.NoError(t, err)
	assert.Equal(t, 99.95, updated.Amount)
}

func TestReceipt_Provenance(t *testing.T) {
	date := time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC)
	inboxID := uuid.New()
	r, err := entity.NewReceiptFromInbox(uuid.New(), uuid.New(), uuid.New(), inboxID, 12.30, date, "parking", date)
	require.NoError(t, err)

	assert.True(t, r.CreatedFromInbox())
	require.NotNil(t, r.InboxItemID)
	assert.Equal(t, inboxID, *r.InboxItemID)

	manual := newReceipt(t)
	assert.False(t, manual.CreatedFromInbox())
}

func TestReceipt_Equals(t *testing.T) {
	r := newReceipt(t)
	assert.True(t, r.Equals(r))

	pt := uuid.New()
	withPayment := r
	withPayment.PaymentTypeID = &pt
	assert.False(t, r.Equals(withPayment))
}
