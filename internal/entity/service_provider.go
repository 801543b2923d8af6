package entity

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/docledger/docledger/constants"
	"github.com/docledger/docledger/internal/common"
)

// ServiceProvider is a catalog entry referenced by ledger records. The OCR
// hint comment is fed to the extraction pipeline to improve matching.
type ServiceProvider struct {
	ID            uuid.UUID               `json:"id"`
	Name          string                  `json:"name"`
	Avatar        *string                 `json:"avatar,omitempty"`
	Comment       string                  `json:"comment"`
	CommentForOCR string                  `json:"comment_for_ocr"`
	Regular       constants.Recurrence    `json:"regular"`
	CustomFields  json.RawMessage         `json:"custom_fields,omitempty"`
	State         constants.ProviderState `json:"state"`
	CreatedDate   time.Time               `json:"created_date"`
	ModifiedDate  time.Time               `json:"modified_date"`
}

// NewServiceProvider creates an active provider. The name must never be
// blank.
func NewServiceProvider(id uuid.UUID, name string, createdAt time.Time) (ServiceProvider, error) {
	if err := validateProviderName(name); err != nil {
		return ServiceProvider{}, err
	}
	return ServiceProvider{
		ID:           id,
		Name:         name,
		Regular:      constants.RecurrenceNotRegular,
		State:        constants.ProviderStateActive,
		CreatedDate:  createdAt,
		ModifiedDate: createdAt,
	}, nil
}

// Hide removes the provider from active listings. Hiding an already-hidden
// provider is an error.
func (p ServiceProvider) Hide(at time.Time) (ServiceProvider, error) {
	if p.State == constants.ProviderStateHidden {
		return p, common.NewIllegalStateError("Cannot hide service provider from state %s", p.State)
	}
	p.State = constants.ProviderStateHidden
	p.ModifiedDate = at
	return p, nil
}

// Show makes a hidden provider active again. Showing an already-active
// provider is an error.
func (p ServiceProvider) Show(at time.Time) (ServiceProvider, error) {
	if p.State == constants.ProviderStateActive {
		return p, common.NewIllegalStateError("Cannot show service provider from state %s", p.State)
	}
	p.State = constants.ProviderStateActive
	p.ModifiedDate = at
	return p, nil
}

// UpdateName renames the provider and bumps the modification timestamp.
func (p ServiceProvider) UpdateName(name string, at time.Time) (ServiceProvider, error) {
	if err := validateProviderName(name); err != nil {
		return p, err
	}
	p.Name = name
	p.ModifiedDate = at
	return p, nil
}

// UpdateCustomFields replaces the opaque key/value blob and bumps the
// modification timestamp.
func (p ServiceProvider) UpdateCustomFields(fields json.RawMessage, at time.Time) ServiceProvider {
	p.CustomFields = fields
	p.ModifiedDate = at
	return p
}

// IsActive reports whether the provider may be referenced by new ledger
// records.
func (p ServiceProvider) IsActive() bool {
	return p.State == constants.ProviderStateActive
}

func validateProviderName(name string) error {
	if strings.TrimSpace(name) == "" {
		return common.NewIllegalArgumentError("service provider name must not be blank")
	}
	return nil
}
