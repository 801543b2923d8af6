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

func newItem() entity.InboxItem {
	return entity.NewInboxItem(uuid.New(), uuid.New(), uuid.New(), "uploads/ab/cd/scan.png", time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
}

func TestNewInboxItem(t *testing.T) {
	item := newItem()

	assert.Equal(t, constants.InboxStateCreated, item.State)
	assert.Nil(t, item.OCRResults)
	assert.Nil(t, item.FailureReason)
	assert.Nil(t, item.LinkedEntityID)

	status, err := item.CanonicalStatus()
	require.NoError(t, err)
	assert.Equal(t, constants.StatusNew, status)
}

func TestInboxItem_ProcessOCR(t *testing.T) {
	item := newItem()

	processed, err := item.ProcessOCR("Total: $42.00")
	require.NoError(t, err)

	assert.Equal(t, constants.InboxStateProcessed, processed.State)
	require.NotNil(t, processed.OCRResults)
	assert.Equal(t, "Total: $42.00", *processed.OCRResults)
	assert.Nil(t, processed.FailureReason)

	// the original value is untouched
	assert.Equal(t, constants.InboxStateCreated, item.State)
	assert.Nil(t, item.OCRResults)
}

func TestInboxItem_ProcessOCR_IllegalStates(t *testing.T) {
	processed, err := newItem().ProcessOCR("text")
	require.NoError(t, err)

	for name, item := range map[string]entity.InboxItem{
		"processed": processed,
		"failed":    mustFail(t, newItem()),
		"approved":  mustApprove(t, processed),
	} {
		t.Run(name, func(t *testing.T) {
			before := item
			got, err := item.ProcessOCR("again")

			var illegal *common.IllegalStateError
			require.True(t, errors.As(err, &illegal))
			assert.Contains(t, illegal.Message, "Cannot process OCR from state")
			assert.Equal(t, before, got)
		})
	}
}

func TestInboxItem_FailOCR(t *testing.T) {
	failed := mustFail(t, newItem())

	assert.Equal(t, constants.InboxStateFailed, failed.State)
	require.NotNil(t, failed.FailureReason)
	assert.Equal(t, "ocr timeout", *failed.FailureReason)
	assert.Nil(t, failed.OCRResults)
}

func TestInboxItem_FailOCR_IllegalFromProcessed(t *testing.T) {
	processed, err := newItem().ProcessOCR("text")
	require.NoError(t, err)

	_, err = processed.FailOCR("late failure")
	var illegal *common.IllegalStateError
	require.True(t, errors.As(err, &illegal))
}

func TestInboxItem_RetryOCR(t *testing.T) {
	failed := mustFail(t, newItem())

	retried, err := failed.RetryOCR()
	require.NoError(t, err)

	assert.Equal(t, constants.InboxStateCreated, retried.State)
	assert.Nil(t, retried.OCRResults)
	assert.Nil(t, retried.FailureReason)

	// the reset is repeatable: fail and retry again
	again, err := mustFail(t, retried).RetryOCR()
	require.NoError(t, err)
	assert.Equal(t, constants.InboxStateCreated, again.State)
}

func TestInboxItem_RetryOCR_IllegalStates(t *testing.T) {
	processed, err := newItem().ProcessOCR("text")
	require.NoError(t, err)

	for name, item := range map[string]entity.InboxItem{
		"created":   newItem(),
		"processed": processed,
		"approved":  mustApprove(t, processed),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := item.RetryOCR()
			var illegal *common.IllegalStateError
			require.True(t, errors.As(err, &illegal))
			assert.Contains(t, illegal.Message, "Cannot retry OCR from state")
		})
	}
}

func TestInboxItem_Approve(t *testing.T) {
	processed, err := newItem().ProcessOCR("Total: $42.00")
	require.NoError(t, err)

	billID := uuid.New()
	approved, err := processed.Approve(billID, constants.LinkedEntityBill)
	require.NoError(t, err)

	assert.Equal(t, constants.InboxStateApproved, approved.State)
	require.NotNil(t, approved.LinkedEntityID)
	assert.Equal(t, billID, *approved.LinkedEntityID)
	require.NotNil(t, approved.LinkedEntityTyp)
	assert.Equal(t, constants.LinkedEntityBill, *approved.LinkedEntityTyp)

	status, err := approved.CanonicalStatus()
	require.NoError(t, err)
	assert.Equal(t, constants.StatusApproved, status)

	// second approval fails
	_, err = approved.Approve(uuid.New(), constants.LinkedEntityBill)
	var illegal *common.IllegalStateError
	require.True(t, errors.As(err, &illegal))
	assert.Equal(t, "Cannot approve from state APPROVED", illegal.Message)
}

func TestInboxItem_Approve_IllegalStates(t *testing.T) {
	for name, item := range map[string]entity.InboxItem{
		"created": newItem(),
		"failed":  mustFail(t, newItem()),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := item.Approve(uuid.New(), constants.LinkedEntityReceipt)
			var illegal *common.IllegalStateError
			require.True(t, errors.As(err, &illegal))
		})
	}
}

func TestInboxItem_Predicates(t *testing.T) {
	created := newItem()
	processed, err := created.ProcessOCR("text")
	require.NoError(t, err)
	failed := mustFail(t, newItem())
	approved := mustApprove(t, processed)

	assert.False(t, created.CanApprove())
	assert.True(t, processed.CanApprove())
	assert.False(t, failed.CanApprove())
	assert.False(t, approved.CanApprove())

	assert.False(t, created.CanRetry())
	assert.False(t, processed.CanRetry())
	assert.True(t, failed.CanRetry())
	assert.False(t, approved.CanRetry())
}

func TestInboxItem_Reject(t *testing.T) {
	processed, err := newItem().ProcessOCR("text")
	require.NoError(t, err)

	at := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)
	rejected, err := processed.Reject("not a bill", at)
	require.NoError(t, err)

	// rejection is metadata: the machine state is untouched
	assert.Equal(t, constants.InboxStateProcessed, rejected.State)
	assert.True(t, rejected.IsRejected())
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "not a bill", *rejected.RejectionReason)

	status, err := rejected.CanonicalStatus()
	require.NoError(t, err)
	assert.Equal(t, constants.StatusRejected, status)
}

func TestInboxItem_Reject_Approved(t *testing.T) {
	processed, err := newItem().ProcessOCR("text")
	require.NoError(t, err)
	approved := mustApprove(t, processed)

	_, err = approved.Reject("too late", time.Now())
	var illegal *common.IllegalStateError
	require.True(t, errors.As(err, &illegal))
}

func TestInboxItem_LegacyStatusConsolidation(t *testing.T) {
	item := newItem()
	item.Status = "PROCESSING" // legacy stored value

	status, err := item.CanonicalStatus()
	require.NoError(t, err)
	assert.Equal(t, constants.StatusNew, status)

	item.Status = "garbage"
	_, err = item.CanonicalStatus()
	var unknown *constants.UnknownStatusError
	require.True(t, errors.As(err, &unknown))
}

func mustFail(t *testing.T, item entity.InboxItem) entity.InboxItem {
	t.Helper()
	failed, err := item.FailOCR("ocr timeout")
	require.NoError(t, err)
	return failed
}

func mustApprove(t *testing.T, processed entity.InboxItem) entity.InboxItem {
	t.Helper()
	approved, err := processed.Approve(uuid.New(), constants.LinkedEntityBill)
	require.NoError(t, err)
	return approved
}
