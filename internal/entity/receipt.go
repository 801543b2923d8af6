package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/docledger/docledger/constants"
	"github.com/docledger/docledger/internal/common"
)

// Receipt is a durable payment record. Same lifecycle as Bill; it
// additionally records how the payment was made.
type Receipt struct {
	ID                uuid.UUID             `json:"id"`
	UserID            uuid.UUID             `json:"user_id"`
	ServiceProviderID uuid.UUID             `json:"service_provider_id"`
	PaymentTypeID     *uuid.UUID            `json:"payment_type_id,omitempty"`
	Date              time.Time             `json:"date"`
	Amount            float64               `json:"amount"`
	Description       string                `json:"description"`
	InboxItemID       *uuid.UUID            `json:"inbox_item_id,omitempty"`
	State             constants.LedgerState `json:"state"`
	CreatedDate       time.Time             `json:"created_date"`
}

// NewReceiptFromInbox constructs a receipt carrying a provenance link back
// to the inbox item it was approved from.
func NewReceiptFromInbox(id, userID, providerID, inboxItemID uuid.UUID, amount float64, date time.Time, description string, createdAt time.Time) (Receipt, error) {
	r, err := NewReceipt(id, userID, providerID, amount, date, description, createdAt)
	if err != nil {
		return Receipt{}, err
	}
	r.InboxItemID = &inboxItemID
	return r, nil
}

// NewReceipt constructs a manually entered receipt (no provenance link).
func NewReceipt(id, userID, providerID uuid.UUID, amount float64, date time.Time, description string, createdAt time.Time) (Receipt, error) {
	if err := validateAmount(amount); err != nil {
		return Receipt{}, err
	}
	if err := validateProviderID(providerID); err != nil {
		return Receipt{}, err
	}
	return Receipt{
		ID:                id,
		UserID:            userID,
		ServiceProviderID: providerID,
		Date:              date,
		Amount:            amount,
		Description:       description,
		State:             constants.LedgerStateCreated,
		CreatedDate:       createdAt,
	}, nil
}

// Remove is a one-way transition to REMOVED.
func (r Receipt) Remove() (Receipt, error) {
	if r.State != constants.LedgerStateCreated {
		return r, common.NewIllegalStateError("Cannot remove receipt from state %s", r.State)
	}
	r.State = constants.LedgerStateRemoved
	return r, nil
}

// CanRemove reports whether Remove would succeed.
func (r Receipt) CanRemove() bool {
	return r.State == constants.LedgerStateCreated
}

// IsActive is true iff the receipt has not been removed.
func (r Receipt) IsActive() bool {
	return r.State == constants.LedgerStateCreated
}

// UpdateAmount replaces the amount. Zero and negative amounts are rejected
// with distinct messages for user feedback.
func (r Receipt) UpdateAmount(amount float64) (Receipt, error) {
	if err := validateAmount(amount); err != nil {
		return r, err
	}
	r.Amount = amount
	return r, nil
}

// UpdateServiceProvider re-points the receipt at another provider.
func (r Receipt) UpdateServiceProvider(providerID uuid.UUID) (Receipt, error) {
	if err := validateProviderID(providerID); err != nil {
		return r, err
	}
	r.ServiceProviderID = providerID
	return r, nil
}

// CreatedFromInbox reports whether the receipt carries a provenance link.
func (r Receipt) CreatedFromInbox() bool {
	return r.InboxItemID != nil
}

// Equals compares all fields.
func (r Receipt) Equals(other Receipt) bool {
	if !equalUUIDPtr(r.InboxItemID, other.InboxItemID) {
		return false
	}
	if !equalUUIDPtr(r.PaymentTypeID, other.PaymentTypeID) {
		return false
	}
	return r.ID == other.ID &&
		r.UserID == other.UserID &&
		r.ServiceProviderID == other.ServiceProviderID &&
		r.Date.Equal(other.Date) &&
		r.Amount == other.Amount &&
		r.Description == other.Description &&
		r.State == other.State &&
		r.CreatedDate.Equal(other.CreatedDate)
}
