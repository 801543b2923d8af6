package entity_test

import (
	"encoding/json"
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

var providerCreated = time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)

func newProvider(t *testing.T) entity.ServiceProvider {
	t.Helper()
	p, err := entity.NewServiceProvider(uuid.New(), "Acme", providerCreated)
	require.NoError(t, err)
	return p
}

func TestNewServiceProvider(t *testing.T) {
	p := newProvider(t)
	assert.Equal(t, constants.ProviderStateActive, p.State)
	assert.True(t, p.IsActive())
	assert.Equal(t, constants.RecurrenceNotRegular, p.Regular)
	assert.Equal(t, providerCreated, p.CreatedDate)
	assert.Equal(t, providerCreated, p.ModifiedDate)
}

func TestNewServiceProvider_BlankName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t"} {
		_, err := entity.NewServiceProvider(uuid.New(), name, providerCreated)
		var illegal *common.IllegalArgumentError
		require.True(t, errors.As(err, &illegal), "name %q", name)
	}
}

func TestServiceProvider_HideShow(t *testing.T) {
	p := newProvider(t)
	at := providerCreated.Add(24 * time.Hour)

	hidden, err := p.Hide(at)
	require.NoError(t, err)
	assert.Equal(t, constants.ProviderStateHidden, hidden.State)
	assert.False(t, hidden.IsActive())
	assert.Equal(t, at, hidden.ModifiedDate)

	// hiding twice is an error
	_, err = hidden.Hide(at)
	var illegal *common.IllegalStateError
	require.True(t, errors.As(err, &illegal))

	shown, err := hidden.Show(at.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, constants.ProviderStateActive, shown.State)

	// showing twice is an error
	_, err = shown.Show(at)
	require.True(t, errors.As(err, &illegal))
}

func TestServiceProvider_UpdateName(t *testing.T) {
	p := newProvider(t)
	at := providerCreated.Add(time.Hour)

	renamed, err := p.UpdateName("Acme Utilities", at)
	require.NoError(t, err)
	assert.Equal(t, "Acme Utilities", renamed.Name)
	assert.Equal(t, at, renamed.ModifiedDate)

	_, err = p.UpdateName("  ", at)
	var illegal *common.IllegalArgumentError
	require.True(t, errors.As(err, &illegal))
}

func TestServiceProvider_UpdateCustomFields(t *testing.T) {
	p := newProvider(t)
	at := providerCreated.Add(time.Hour)

	fields := json.RawMessage(`{"account_number":"12-345"}`)
	updated := p.UpdateCustomFields(fields, at)
	assert.JSONEq(t, `{"account_number":"12-345"}`, string(updated.CustomFields))
	assert.Equal(t, at, updated.ModifiedDate)
}
