package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/docledger/docledger/constants"
	"github.com/docledger/docledger/internal/common"
)

// Bill is a durable financial obligation. A non-nil InboxItemID means it was
// produced by approving an inbox item; nil means it was entered manually.
type Bill struct {
	ID                uuid.UUID             `json:"id"`
	UserID            uuid.UUID             `json:"user_id"`
	ServiceProviderID uuid.UUID             `json:"service_provider_id"`
	Date              time.Time             `json:"date"`
	Amount            float64               `json:"amount"`
	Description       string                `json:"description"`
	InboxItemID       *uuid.UUID            `json:"inbox_item_id,omitempty"`
	State             constants.LedgerState `json:"state"`
	CreatedDate       time.Time             `json:"created_date"`
}

// NewBillFromInbox constructs a bill carrying a provenance link back to the
// inbox item it was approved from.
func NewBillFromInbox(id, userID, providerID, inboxItemID uuid.UUID, amount float64, date time.Time, description string, createdAt time.Time) (Bill, error) {
	b, err := NewBill(id, userID, providerID, amount, date, description, createdAt)
	if err != nil {
		return Bill{}, err
	}
	b.InboxItemID = &inboxItemID
	return b, nil
}

// NewBill constructs a manually entered bill (no provenance link).
func NewBill(id, userID, providerID uuid.UUID, amount float64, date time.Time, description string, createdAt time.Time) (Bill, error) {
	if err := validateAmount(amount); err != nil {
		return Bill{}, err
	}
	if err := validateProviderID(providerID); err != nil {
		return Bill{}, err
	}
	return Bill{
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
func (b Bill) Remove() (Bill, error) {
	if b.State != constants.LedgerStateCreated {
		return b, common.NewIllegalStateError("Cannot remove bill from state %s", b.State)
	}
	b.State = constants.LedgerStateRemoved
	return b, nil
}

// CanRemove reports whether Remove would succeed.
func (b Bill) CanRemove() bool {
	return b.State == constants.LedgerStateCreated
}

// IsActive is true iff the bill has not been removed.
func (b Bill) IsActive() bool {
	return b.State == constants.LedgerStateCreated
}

// UpdateAmount replaces the amount. Zero and negative amounts are rejected
// with distinct messages for user feedback.
func (b Bill) UpdateAmount(amount float64) (Bill, error) {
	if err := validateAmount(amount); err != nil {
		return b, err
	}
	b.Amount = amount
	return b, nil
}

// UpdateServiceProvider re-points the bill at another provider.
func (b Bill) UpdateServiceProvider(providerID uuid.UUID) (Bill, error) {
	if err := validateProviderID(providerID); err != nil {
		return b, err
	}
	b.ServiceProviderID = providerID
	return b, nil
}

// CreatedFromInbox reports whether the bill carries a provenance link.
func (b Bill) CreatedFromInbox() bool {
	return b.InboxItemID != nil
}

// Equals compares all fields. The approval workflow uses it to detect no-op
// updates.
func (b Bill) Equals(other Bill) bool {
	if !equalUUIDPtr(b.InboxItemID, other.InboxItemID) {
		return false
	}
	return b.ID == other.ID &&
		b.UserID == other.UserID &&
		b.ServiceProviderID == other.ServiceProviderID &&
		b.Date.Equal(other.Date) &&
		b.Amount == other.Amount &&
		b.Description == other.Description &&
		b.State == other.State &&
		b.CreatedDate.Equal(other.CreatedDate)
}

func validateAmount(amount float64) error {
	if amount < 0 {
		return common.NewIllegalArgumentError("amount cannot be negative")
	}
	if amount == 0 {
		return common.NewIllegalArgumentError("amount must be greater than zero")
	}
	return nil
}

func validateProviderID(id uuid.UUID) error {
	if id == uuid.Nil {
		return common.NewIllegalArgumentError("service provider id must not be blank")
	}
	return nil
}

func equalUUIDPtr(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
