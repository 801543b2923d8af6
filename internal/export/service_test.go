package export_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/docledger/docledger/internal/common"
	"github.com/docledger/docledger/internal/entity"
	"github.com/docledger/docledger/internal/export"
)

type stubBillRepo struct {
	bills []entity.Bill
}

func (r *stubBillRepo) GetByID(_ context.Context, id uuid.UUID) (entity.Bill, error) {
	return entity.Bill{}, &common.NotFoundError{Kind: "bill", ID: id.String()}
}
func (r *stubBillRepo) Create(_ context.Context, b entity.Bill) (entity.Bill, error) { return b, nil }
func (r *stubBillRepo) Save(_ context.Context, b entity.Bill) (entity.Bill, error)   { return b, nil }
func (r *stubBillRepo) Delete(context.Context, uuid.UUID) error                      { return nil }
func (r *stubBillRepo) ListByUser(_ context.Context, _ uuid.UUID, _, _ *time.Time) ([]entity.Bill, error) {
	return r.bills, nil
}

type stubReceiptRepo struct {
	receipts []entity.Receipt
}

func (r *stubReceiptRepo) GetByID(_ context.Context, id uuid.UUID) (entity.Receipt, error) {
	return entity.Receipt{}, &common.NotFoundError{Kind: "receipt", ID: id.String()}
}
func (r *stubReceiptRepo) Create(_ context.Context, rec entity.Receipt) (entity.Receipt, error) {
	return rec, nil
}
func (r *stubReceiptRepo) Save(_ context.Context, rec entity.Receipt) (entity.Receipt, error) {
	return rec, nil
}
func (r *stubReceiptRepo) Delete(context.Context, uuid.UUID) error { return nil }
func (r *stubReceiptRepo) ListByUser(_ context.Context, _ uuid.UUID, _, _ *time.Time) ([]entity.Receipt, error) {
	return r.receipts, nil
}

type stubProviderRepo struct {
	providers []entity.ServiceProvider
}

func (r *stubProviderRepo) GetByID(_ context.Context, id uuid.UUID) (entity.ServiceProvider, error) {
	for _, p := range r.providers {
		if p.ID == id {
			return p, nil
		}
	}
	return entity.ServiceProvider{}, &common.NotFoundError{Kind: "service provider", ID: id.String()}
}
func (r *stubProviderRepo) Create(_ context.Context, p entity.ServiceProvider) (entity.ServiceProvider, error) {
	return p, nil
}
func (r *stubProviderRepo) Save(_ context.Context, p entity.ServiceProvider) (entity.ServiceProvider, error) {
	return p, nil
}
func (r *stubProviderRepo) List(_ context.Context, _ bool) ([]entity.ServiceProvider, error) {
	return r.providers, nil
}

func TestExportLedgerXLSX(t *testing.T) {
	now := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	userID := uuid.New()

	provider, err := entity.NewServiceProvider(uuid.New(), "Acme Utilities", now)
	require.NoError(t, err)

	bill, err := entity.NewBill(uuid.New(), userID, provider.ID, 120.50, now, "electricity", now)
	require.NoError(t, err)
	receipt, err := entity.NewReceipt(uuid.New(), userID, provider.ID, 9.99, now, "coffee", now)
	require.NoError(t, err)

	svc := export.NewService(
		&stubBillRepo{bills: []entity.Bill{bill}},
		&stubReceiptRepo{receipts: []entity.Receipt{receipt}},
		&stubProviderRepo{providers: []entity.ServiceProvider{provider}},
		nil,
	)

	data, err := svc.ExportLedgerXLSX(context.Background(), userID, nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	billRows, err := f.GetRows("Bills")
	require.NoError(t, err)
	require.Len(t, billRows, 2)
	assert.Equal(t, "Date", billRows[0][0])
	assert.Equal(t, "2024-05-20", billRows[1][0])
	assert.Equal(t, "Acme Utilities", billRows[1][1])
	assert.Equal(t, "electricity", billRows[1][3])

	receiptRows, err := f.GetRows("Receipts")
	require.NoError(t, err)
	require.Len(t, receiptRows, 2)
	assert.Equal(t, "Acme Utilities", receiptRows[1][1])
	assert.Equal(t, "coffee", receiptRows[1][3])
}

func TestExportLedgerXLSX_Empty(t *testing.T) {
	svc := export.NewService(&stubBillRepo{}, &stubReceiptRepo{}, &stubProviderRepo{}, nil)

	data, err := svc.ExportLedgerXLSX(context.Background(), uuid.New(), nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Bills")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
