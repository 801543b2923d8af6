package providers_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docledger/docledger/constants"
	"github.com/docledger/docledger/internal/common"
	"github.com/docledger/docledger/internal/entity"
	"github.com/docledger/docledger/internal/providers"
)

type fakeProviderRepo struct {
	m map[uuid.UUID]entity.ServiceProvider
}

func newFakeProviderRepo() *fakeProviderRepo {
	return &fakeProviderRepo{m: make(map[uuid.UUID]entity.ServiceProvider)}
}

func (r *fakeProviderRepo) GetByID(_ context.Context, id uuid.UUID) (entity.ServiceProvider, error) {
	p, ok := r.m[id]
	if !ok {
		return entity.ServiceProvider{}, &common.NotFoundError{Kind: "service provider", ID: id.String()}
	}
	return p, nil
}

func (r *fakeProviderRepo) Create(_ context.Context, p entity.ServiceProvider) (entity.ServiceProvider, error) {
	r.m[p.ID] = p
	return p, nil
}

func (r *fakeProviderRepo) Save(_ context.Context, p entity.ServiceProvider) (entity.ServiceProvider, error) {
	r.m[p.ID] = p
	return p, nil
}

func (r *fakeProviderRepo) List(_ context.Context, includeHidden bool) ([]entity.ServiceProvider, error) {
	var out []entity.ServiceProvider
	for _, p := range r.m {
		if includeHidden || p.IsActive() {
			out = append(out, p)
		}
	}
	return out, nil
}


func newService(repo *fakeProviderRepo) *providers.Service {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	return providers.NewService(repo, nil, providers.WithClock(func() time.Time { return now }))
}

func TestCreateAndLifecycle(t *testing.T) {
	repo := newFakeProviderRepo()
	svc := newService(repo)
	ctx := context.Background()

	p, err := svc.Create(ctx, "Acme")
	require.NoError(t, err)
	assert.Equal(t, constants.ProviderStateActive, p.State)

	hidden, err := svc.Hide(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.ProviderStateHidden, hidden.State)

	_, err = svc.Hide(ctx, p.ID)
	var ise *common.IllegalStateError
	require.ErrorAs(t, err, &ise)

	shown, err := svc.Show(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.ProviderStateActive, shown.State)
}

func TestCreate_BlankName(t *testing.T) {
	svc := newService(newFakeProviderRepo())

	_, err := svc.Create(context.Background(), "   ")
	var iae *common.IllegalArgumentError
	assert.ErrorAs(t, err, &iae)
}

func TestList_ExcludesHiddenByDefault(t *testing.T) {
	repo := newFakeProviderRepo()
	svc := newService(repo)
	ctx := context.Background()

	a, err := svc.Create(ctx, "Active Co")
	require.NoError(t, err)
	h, err := svc.Create(ctx, "Hidden Co")
	require.NoError(t, err)
	_, err = svc.Hide(ctx, h.ID)
	require.NoError(t, err)

	visible, err := svc.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, a.ID, visible[0].ID)

	all, err := svc.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRenameAndCustomFields(t *testing.T) {
	repo := newFakeProviderRepo()
	svc := newService(repo)
	ctx := context.Background()

	p, err := svc.Create(ctx, "Acme")
	require.NoError(t, err)

	renamed, err := svc.Rename(ctx, p.ID, "Acme Utilities")
	require.NoError(t, err)
	assert.Equal(t, "Acme Utilities", renamed.Name)

	_, err = svc.Rename(ctx, p.ID, "")
	var iae *common.IllegalArgumentError
	assert.ErrorAs(t, err, &iae)

	fields := json.RawMessage(`{"account_number":"12-345"}`)
	updated, err := svc.SetCustomFields(ctx, p.ID, fields)
	require.NoError(t, err)
	assert.JSONEq(t, string(fields), string(updated.CustomFields))
}

func TestGet_NotFound(t *testing.T) {
	svc := newService(newFakeProviderRepo())

	_, err := svc.Get(context.Background(), uuid.New())
	var nfe *common.NotFoundError
	assert.ErrorAs(t, err, &nfe)
}
