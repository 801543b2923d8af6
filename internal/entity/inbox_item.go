package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/docledger/docledger/constants"
	"github.com/docledger/docledger/internal/common"
)

// InboxItem stages an uploaded document through OCR until the user converts
// it into a ledger record or rejects it.
//
// The state machine is CREATED -> PROCESSED | FAILED, FAILED -> CREATED
// (retry), PROCESSED -> APPROVED (terminal). Rejection is not a machine
// state: it is recorded as metadata and surfaced through the canonical
// status view.
//
// All transitions are value methods returning a modified copy. Precondition
// checks happen before any field changes, so a failed call never leaves a
// partially updated item behind.
type InboxItem struct {
	ID              uuid.UUID                   `json:"id"`
	FileID          uuid.UUID                   `json:"file_id"`
	UserID          uuid.UUID                   `json:"user_id"`
	UploadedImage   string                      `json:"uploaded_image"`
	UploadDate      time.Time                   `json:"upload_date"`
	State           constants.InboxState        `json:"state"`
	Status          string                      `json:"status"` // raw stored status, consolidated at read time
	OCRResults      *string                     `json:"ocr_results,omitempty"`
	FailureReason   *string                     `json:"failure_reason,omitempty"`
	LinkedEntityID  *uuid.UUID                  `json:"linked_entity_id,omitempty"`
	LinkedEntityTyp *constants.LinkedEntityType `json:"linked_entity_type,omitempty"`
	RejectionReason *string                     `json:"rejection_reason,omitempty"`
	RejectedAt      *time.Time                  `json:"rejected_at,omitempty"`
}

// NewInboxItem stages a fresh upload in CREATED state.
func NewInboxItem(id, fileID, userID uuid.UUID, uploadedImage string, uploadedAt time.Time) InboxItem {
	return InboxItem{
		ID:            id,
		FileID:        fileID,
		UserID:        userID,
		UploadedImage: uploadedImage,
		UploadDate:    uploadedAt,
		State:         constants.InboxStateCreated,
		Status:        string(constants.StatusNew),
	}
}

// ProcessOCR stages the OCR output. Legal only from CREATED.
func (i InboxItem) ProcessOCR(results string) (InboxItem, error) {
	if i.State != constants.InboxStateCreated {
		return i, common.NewIllegalStateError("Cannot process OCR from state %s", i.State)
	}
	i.OCRResults = &results
	i.FailureReason = nil
	i.State = constants.InboxStateProcessed
	return i, nil
}

// FailOCR records an OCR failure. Legal only from CREATED.
func (i InboxItem) FailOCR(reason string) (InboxItem, error) {
	if i.State != constants.InboxStateCreated {
		return i, common.NewIllegalStateError("Cannot fail OCR from state %s", i.State)
	}
	i.FailureReason = &reason
	i.State = constants.InboxStateFailed
	return i, nil
}

// RetryOCR resets a failed item so OCR can run again. Legal only from FAILED.
func (i InboxItem) RetryOCR() (InboxItem, error) {
	if i.State != constants.InboxStateFailed {
		return i, common.NewIllegalStateError("Cannot retry OCR from state %s", i.State)
	}
	i.FailureReason = nil
	i.OCRResults = nil
	i.State = constants.InboxStateCreated
	return i, nil
}

// Approve links the item to the ledger record it produced. Legal only from
// PROCESSED; a second approval fails.
func (i InboxItem) Approve(linkedID uuid.UUID, linkedType constants.LinkedEntityType) (InboxItem, error) {
	if i.State != constants.InboxStateProcessed {
		return i, common.NewIllegalStateError("Cannot approve from state %s", i.State)
	}
	i.LinkedEntityID = &linkedID
	i.LinkedEntityTyp = &linkedType
	i.State = constants.InboxStateApproved
	i.Status = string(constants.StatusApproved)
	return i, nil
}

// Reject marks the item rejected. This is status metadata, not a machine
// transition; the internal state keeps whatever stage OCR reached. An
// already-approved item cannot be rejected.
func (i InboxItem) Reject(reason string, at time.Time) (InboxItem, error) {
	if i.State == constants.InboxStateApproved {
		return i, common.NewIllegalStateError("Cannot reject from state %s", i.State)
	}
	i.RejectionReason = &reason
	i.RejectedAt = &at
	i.Status = string(constants.StatusRejected)
	return i, nil
}

// CanApprove reports whether Approve would succeed.
func (i InboxItem) CanApprove() bool {
	return i.State == constants.InboxStateProcessed
}

// CanRetry reports whether RetryOCR would succeed.
func (i InboxItem) CanRetry() bool {
	return i.State == constants.InboxStateFailed
}

// IsRejected reports whether the item carries rejection metadata.
func (i InboxItem) IsRejected() bool {
	return i.RejectedAt != nil
}

// CanonicalStatus consolidates the raw stored status into the three-value
// set presented to users.
func (i InboxItem) CanonicalStatus() (constants.Status, error) {
	return constants.CanonicalizeStatus(i.Status)
}
