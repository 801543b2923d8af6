package workflow_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docledger/docledger/constants"
	"github.com/docledger/docledger/internal/async"
	"github.com/docledger/docledger/internal/common"
	"github.com/docledger/docledger/internal/entity"
	"github.com/docledger/docledger/internal/workflow"
)

type fakeInboxRepo struct {
	items   map[uuid.UUID]entity.InboxItem
	saveErr error
}

func newFakeInboxRepo() *fakeInboxRepo {
	return &fakeInboxRepo{items: make(map[uuid.UUID]entity.InboxItem)}
}

func (r *fakeInboxRepo) GetByID(_ context.Context, id uuid.UUID) (entity.InboxItem, error) {
	item, ok := r.items[id]
	if !ok {
		return entity.InboxItem{}, &common.NotFoundError{Kind: "inbox item", ID: id.String()}
	}
	return item, nil
}

func (r *fakeInboxRepo) Create(_ context.Context, item entity.InboxItem) (entity.InboxItem, error) {
	r.items[item.ID] = item
	return item, nil
}

func (r *fakeInboxRepo) Save(_ context.Context, item entity.InboxItem) (entity.InboxItem, error) {
	if r.saveErr != nil {
		return entity.InboxItem{}, r.saveErr
	}
	r.items[item.ID] = item
	return item, nil
}

func (r *fakeInboxRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]entity.InboxItem, error) {
	var out []entity.InboxItem
	for _, it := range r.items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

type fakeBillRepo struct {
	bills   map[uuid.UUID]entity.Bill
	deletes int
}

func newFakeBillRepo() *fakeBillRepo {
	return &fakeBillRepo{bills: make(map[uuid.UUID]entity.Bill)}
}

func (r *fakeBillRepo) GetByID(_ context.Context, id uuid.UUID) (entity.Bill, error) {
	b, ok := r.bills[id]
	if !ok {
		return entity.Bill{}, &common.NotFoundError{Kind: "bill", ID: id.String()}
	}
	return b, nil
}

func (r *fakeBillRepo) Create(_ context.Context, b entity.Bill) (entity.Bill, error) {
	r.bills[b.ID] = b
	return b, nil
}

func (r *fakeBillRepo) Save(_ context.Context, b entity.Bill) (entity.Bill, error) {
	r.bills[b.ID] = b
	return b, nil
}

func (r *fakeBillRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.bills, id)
	r.deletes++
	return nil
}

func (r *fakeBillRepo) ListByUser(_ context.Context, userID uuid.UUID, _, _ *time.Time) ([]entity.Bill, error) {
	var out []entity.Bill
	for _, b := range r.bills {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeReceiptRepo struct {
	receipts map[uuid.UUID]entity.Receipt
	deletes  int
}

func newFakeReceiptRepo() *fakeReceiptRepo {
	return &fakeReceiptRepo{receipts: make(map[uuid.UUID]entity.Receipt)}
}

func (r *fakeReceiptRepo) GetByID(_ context.Context, id uuid.UUID) (entity.Receipt, error) {
	rec, ok := r.receipts[id]
	if !ok {
		return entity.Receipt{}, &common.NotFoundError{Kind: "receipt", ID: id.String()}
	}
	return rec, nil
}

func (r *fakeReceiptRepo) Create(_ context.Context, rec entity.Receipt) (entity.Receipt, error) {
	r.receipts[rec.ID] = rec
	return rec, nil
}

func (r *fakeReceiptRepo) Save(_ context.Context, rec entity.Receipt) (entity.Receipt, error) {
	r.receipts[rec.ID] = rec
	return rec, nil
}

func (r *fakeReceiptRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.receipts, id)
	r.deletes++
	return nil
}

func (r *fakeReceiptRepo) ListByUser(_ context.Context, userID uuid.UUID, _, _ *time.Time) ([]entity.Receipt, error) {
	var out []entity.Receipt
	for _, rec := range r.receipts {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeProviderRepo struct {
	providers map[uuid.UUID]entity.ServiceProvider
}

func newFakeProviderRepo() *fakeProviderRepo {
	return &fakeProviderRepo{providers: make(map[uuid.UUID]entity.ServiceProvider)}
}

func (r *fakeProviderRepo) GetByID(_ context.Context, id uuid.UUID) (entity.ServiceProvider, error) {
	p, ok := r.providers[id]
	if !ok {
		return entity.ServiceProvider{}, &common.NotFoundError{Kind: "service provider", ID: id.String()}
	}
	return p, nil
}

func (r *fakeProviderRepo) Create(_ context.Context, p entity.ServiceProvider) (entity.ServiceProvider, error) {
	r.providers[p.ID] = p
	return p, nil
}

func (r *fakeProviderRepo) Save(_ context.Context, p entity.ServiceProvider) (entity.ServiceProvider, error) {
	r.providers[p.ID] = p
	return p, nil
}

func (r *fakeProviderRepo) List(_ context.Context, includeHidden bool) ([]entity.ServiceProvider, error) {
	var out []entity.ServiceProvider
	for _, p := range r.providers {
		if includeHidden || p.IsActive() {
			out = append(out, p)
		}
	}
	return out, nil
}


type recordingQueue struct {
	jobs []async.Job
}

func (q *recordingQueue) Enqueue(_ context.Context, job async.Job) error {
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *recordingQueue) Shutdown(context.Context) {}

type fixture struct {
	inbox     *fakeInboxRepo
	bills     *fakeBillRepo
	receipts  *fakeReceiptRepo
	providers *fakeProviderRepo
	queue     *recordingQueue
	wf        *workflow.Workflow
	now       time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		inbox:     newFakeInboxRepo(),
		bills:     newFakeBillRepo(),
		receipts:  newFakeReceiptRepo(),
		providers: newFakeProviderRepo(),
		queue:     &recordingQueue{},
		now:       time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	f.wf = workflow.New(f.inbox, f.bills, f.receipts, f.providers, nil,
		workflow.WithClock(func() time.Time { return f.now }),
		workflow.WithQueue(f.queue),
	)
	return f
}

func (f *fixture) addProcessedItem(t *testing.T) entity.InboxItem {
	t.Helper()
	item := entity.NewInboxItem(uuid.New(), uuid.New(), uuid.New(), "/blobs/a.png", f.now)
	processed, err := item.ProcessOCR("Total: $42.00")
	require.NoError(t, err)
	f.inbox.items[processed.ID] = processed
	return processed
}

func (f *fixture) addProvider(t *testing.T) entity.ServiceProvider {
	t.Helper()
	p, err := entity.NewServiceProvider(uuid.New(), "Acme Utilities", f.now)
	require.NoError(t, err)
	f.providers.providers[p.ID] = p
	return p
}

func (f *fixture) addHiddenProvider(t *testing.T) entity.ServiceProvider {
	t.Helper()
	p := f.addProvider(t)
	hidden, err := p.Hide(f.now)
	require.NoError(t, err)
	f.providers.providers[p.ID] = hidden
	return hidden
}

func TestApproveAsBill(t *testing.T) {
	f := newFixture(t)
	item := f.addProcessedItem(t)
	provider := f.addProvider(t)

	saved, bill, err := f.wf.ApproveAsBill(context.Background(), item.ID, provider.ID, 42.0, f.now, "power bill")
	require.NoError(t, err)

	assert.Equal(t, constants.InboxStateApproved, saved.State)
	require.NotNil(t, saved.LinkedEntityID)
	assert.Equal(t, bill.ID, *saved.LinkedEntityID)
	require.NotNil(t, saved.LinkedEntityTyp)
	assert.Equal(t, constants.LinkedEntityBill, *saved.LinkedEntityTyp)

	assert.Equal(t, item.UserID, bill.UserID)
	require.NotNil(t, bill.InboxItemID)
	assert.Equal(t, item.ID, *bill.InboxItemID)
	assert.Contains(t, f.bills.bills, bill.ID)

	// second approval must fail, item is terminal
	_, _, err = f.wf.ApproveAsBill(context.Background(), item.ID, provider.ID, 42.0, f.now, "again")
	var ise *common.IllegalStateError
	assert.ErrorAs(t, err, &ise)
}

func TestApproveAsReceipt(t *testing.T) {
	f := newFixture(t)
	item := f.addProcessedItem(t)
	provider := f.addProvider(t)

	saved, receipt, err := f.wf.ApproveAsReceipt(context.Background(), item.ID, provider.ID, 9.99, f.now, "coffee")
	require.NoError(t, err)

	assert.Equal(t, constants.InboxStateApproved, saved.State)
	require.NotNil(t, saved.LinkedEntityTyp)
	assert.Equal(t, constants.LinkedEntityReceipt, *saved.LinkedEntityTyp)
	assert.Contains(t, f.receipts.receipts, receipt.ID)
}

func TestApprove_NotProcessed(t *testing.T) {
	f := newFixture(t)
	provider := f.addProvider(t)
	item := entity.NewInboxItem(uuid.New(), uuid.New(), uuid.New(), "/blobs/a.png", f.now)
	f.inbox.items[item.ID] = item

	_, _, err := f.wf.ApproveAsBill(context.Background(), item.ID, provider.ID, 10, f.now, "")
	var ise *common.IllegalStateError
	require.ErrorAs(t, err, &ise)
	assert.EqualError(t, err, "Cannot approve from state CREATED")
	assert.Empty(t, f.bills.bills)
}

func TestApprove_HiddenProviderRejected(t *testing.T) {
	f := newFixture(t)
	item := f.addProcessedItem(t)
	hidden := f.addHiddenProvider(t)

	_, _, err := f.wf.ApproveAsBill(context.Background(), item.ID, hidden.ID, 10, f.now, "")
	var iae *common.IllegalArgumentError
	require.ErrorAs(t, err, &iae)
	assert.Contains(t, err.Error(), "hidden")

	// item untouched
	assert.Equal(t, constants.InboxStateProcessed, f.inbox.items[item.ID].State)
	assert.Empty(t, f.bills.bills)
}

func TestApprove_UnknownProvider(t *testing.T) {
	f := newFixture(t)
	item := f.addProcessedItem(t)

	_, _, err := f.wf.ApproveAsBill(context.Background(), item.ID, uuid.New(), 10, f.now, "")
	var nfe *common.NotFoundError
	assert.ErrorAs(t, err, &nfe)
}

func TestApprove_InvalidAmount(t *testing.T) {
	f := newFixture(t)
	item := f.addProcessedItem(t)
	provider := f.addProvider(t)

	_, _, err := f.wf.ApproveAsBill(context.Background(), item.ID, provider.ID, 0, f.now, "")
	var iae *common.IllegalArgumentError
	require.ErrorAs(t, err, &iae)
	assert.Empty(t, f.bills.bills)
	assert.Equal(t, constants.InboxStateProcessed, f.inbox.items[item.ID].State)
}

func TestApprove_RollbackOnPartialFailure(t *testing.T) {
	f := newFixture(t)
	item := f.addProcessedItem(t)
	provider := f.addProvider(t)
	f.inbox.saveErr = errors.New("connection reset")

	_, _, err := f.wf.ApproveAsBill(context.Background(), item.ID, provider.ID, 42, f.now, "")
	require.Error(t, err)

	// the created bill must have been deleted again
	assert.Empty(t, f.bills.bills)
	assert.Equal(t, 1, f.bills.deletes)
	assert.Equal(t, constants.InboxStateProcessed, f.inbox.items[item.ID].State)
}

func TestApprove_RejectedItemRefused(t *testing.T) {
	f := newFixture(t)
	item := f.addProcessedItem(t)
	provider := f.addProvider(t)

	_, err := f.wf.Reject(context.Background(), item.ID, "blurry scan")
	require.NoError(t, err)

	_, _, err = f.wf.ApproveAsBill(context.Background(), item.ID, provider.ID, 42, f.now, "")
	var ise *common.IllegalStateError
	require.ErrorAs(t, err, &ise)
	assert.EqualError(t, err, "Cannot approve a rejected item")
}

func TestReject(t *testing.T) {
	f := newFixture(t)
	item := f.addProcessedItem(t)

	saved, err := f.wf.Reject(context.Background(), item.ID, "not a bill")
	require.NoError(t, err)

	assert.True(t, saved.IsRejected())
	require.NotNil(t, saved.RejectionReason)
	assert.Equal(t, "not a bill", *saved.RejectionReason)
	assert.Equal(t, constants.InboxStateProcessed, saved.State)

	canonical, err := saved.CanonicalStatus()
	require.NoError(t, err)
	assert.Equal(t, constants.StatusRejected, canonical)
}

func TestReject_ApprovedItemRefused(t *testing.T) {
	f := newFixture(t)
	item := f.addProcessedItem(t)
	provider := f.addProvider(t)

	_, _, err := f.wf.ApproveAsBill(context.Background(), item.ID, provider.ID, 42, f.now, "")
	require.NoError(t, err)

	_, err = f.wf.Reject(context.Background(), item.ID, "too late")
	var ise *common.IllegalStateError
	assert.ErrorAs(t, err, &ise)
}

func TestRetryOCR(t *testing.T) {
	f := newFixture(t)
	item := entity.NewInboxItem(uuid.New(), uuid.New(), uuid.New(), "/blobs/a.png", f.now)
	failed, err := item.FailOCR("engine timeout")
	require.NoError(t, err)
	f.inbox.items[failed.ID] = failed

	saved, err := f.wf.RetryOCR(context.Background(), failed.ID)
	require.NoError(t, err)

	assert.Equal(t, constants.InboxStateCreated, saved.State)
	assert.Nil(t, saved.FailureReason)
	assert.Nil(t, saved.OCRResults)

	require.Len(t, f.queue.jobs, 1)
	assert.Equal(t, saved.ID, f.queue.jobs[0].InboxItemID)
	assert.True(t, f.queue.jobs[0].Retry)
}

func TestRetryOCR_RejectedItemRefused(t *testing.T) {
	f := newFixture(t)
	item := entity.NewInboxItem(uuid.New(), uuid.New(), uuid.New(), "/blobs/a.png", f.now)
	failed, err := item.FailOCR("engine timeout")
	require.NoError(t, err)
	rejected, err := failed.Reject("unreadable scan", f.now)
	require.NoError(t, err)
	f.inbox.items[rejected.ID] = rejected

	// rejection is final, so there is nothing another OCR pass could unlock
	_, err = f.wf.RetryOCR(context.Background(), rejected.ID)
	var ise *common.IllegalStateError
	require.ErrorAs(t, err, &ise)
	assert.Empty(t, f.queue.jobs)
	assert.Equal(t, constants.InboxStateFailed, f.inbox.items[rejected.ID].State)
}

func TestRetryOCR_OnlyFromFailed(t *testing.T) {
	f := newFixture(t)
	item := f.addProcessedItem(t)

	_, err := f.wf.RetryOCR(context.Background(), item.ID)
	var ise *common.IllegalStateError
	require.ErrorAs(t, err, &ise)
	assert.Empty(t, f.queue.jobs)
}

func TestApplyOCRResult(t *testing.T) {
	f := newFixture(t)
	item := entity.NewInboxItem(uuid.New(), uuid.New(), uuid.New(), "/blobs/a.png", f.now)
	f.inbox.items[item.ID] = item

	saved, err := f.wf.ApplyOCRResult(context.Background(), item.ID, "Total: $42.00")
	require.NoError(t, err)
	assert.Equal(t, constants.InboxStateProcessed, saved.State)
	require.NotNil(t, saved.OCRResults)
	assert.Equal(t, "Total: $42.00", *saved.OCRResults)

	_, err = f.wf.ApplyOCRResult(context.Background(), item.ID, "again")
	assert.EqualError(t, err, "Cannot process OCR from state PROCESSED")
}

func TestMarkOCRFailed(t *testing.T) {
	f := newFixture(t)
	item := entity.NewInboxItem(uuid.New(), uuid.New(), uuid.New(), "/blobs/a.png", f.now)
	f.inbox.items[item.ID] = item

	saved, err := f.wf.MarkOCRFailed(context.Background(), item.ID, "unreadable")
	require.NoError(t, err)
	assert.Equal(t, constants.InboxStateFailed, saved.State)
	require.NotNil(t, saved.FailureReason)
	assert.Equal(t, "unreadable", *saved.FailureReason)
}

func TestListInboxByStatus(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()

	fresh := entity.NewInboxItem(uuid.New(), uuid.New(), userID, "/blobs/a.png", f.now)
	f.inbox.items[fresh.ID] = fresh

	legacy := entity.NewInboxItem(uuid.New(), uuid.New(), userID, "/blobs/b.png", f.now)
	legacy.Status = "PROCESSING"
	f.inbox.items[legacy.ID] = legacy

	rejected := entity.NewInboxItem(uuid.New(), uuid.New(), userID, "/blobs/c.png", f.now)
	rejected.Status = "REJECTED"
	f.inbox.items[rejected.ID] = rejected

	fresh2, err := f.wf.ListInboxByStatus(context.Background(), userID, constants.StatusNew)
	require.NoError(t, err)
	assert.Len(t, fresh2, 2, "NEW view folds legacy PROCESSING in")

	rej, err := f.wf.ListInboxByStatus(context.Background(), userID, constants.StatusRejected)
	require.NoError(t, err)
	require.Len(t, rej, 1)
	assert.Equal(t, rejected.ID, rej[0].ID)
}

func TestListInboxByStatus_UnknownStatusSurfaces(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()

	bad := entity.NewInboxItem(uuid.New(), uuid.New(), userID, "/blobs/a.png", f.now)
	bad.Status = "garbage"
	f.inbox.items[bad.ID] = bad

	_, err := f.wf.ListInboxByStatus(context.Background(), userID, constants.StatusNew)
	var use *constants.UnknownStatusError
	require.ErrorAs(t, err, &use)
	assert.Equal(t, "garbage", use.Raw)
}

func TestRemoveBill(t *testing.T) {
	f := newFixture(t)
	bill, err := entity.NewBill(uuid.New(), uuid.New(), uuid.New(), 100, f.now, "rent", f.now)
	require.NoError(t, err)
	f.bills.bills[bill.ID] = bill

	removed, err := f.wf.RemoveBill(context.Background(), bill.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.LedgerStateRemoved, removed.State)

	_, err = f.wf.RemoveBill(context.Background(), bill.ID)
	assert.EqualError(t, err, "Cannot remove bill from state REMOVED")
}

func TestRemoveReceipt(t *testing.T) {
	f := newFixture(t)
	receipt, err := entity.NewReceipt(uuid.New(), uuid.New(), uuid.New(), 5, f.now, "lunch", f.now)
	require.NoError(t, err)
	f.receipts.receipts[receipt.ID] = receipt

	removed, err := f.wf.RemoveReceipt(context.Background(), receipt.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.LedgerStateRemoved, removed.State)

	_, err = f.wf.RemoveReceipt(context.Background(), receipt.ID)
	assert.EqualError(t, err, "Cannot remove receipt from state REMOVED")
}
