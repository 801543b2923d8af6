package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/docledger/docledger/constants"
	"github.com/docledger/docledger/internal/async"
	"github.com/docledger/docledger/internal/common"
	"github.com/docledger/docledger/internal/entity"
	"github.com/docledger/docledger/internal/repository"
)

// Workflow drives inbox items through review: applying OCR results,
// converting processed items into ledger records, rejecting, and retrying.
//
// Approval writes two records (the new ledger entity plus the approved inbox
// item). The store gives no cross-entity transaction here, so the workflow
// compensates: if the inbox update fails after the ledger record was
// created, the ledger record is deleted again. An inbox item never ends up
// pointing at a record that does not exist.
type Workflow struct {
	inbox     repository.InboxItemRepository
	bills     repository.BillRepository
	receipts  repository.ReceiptRepository
	providers repository.ServiceProviderRepository
	queue     async.Queue
	logger    *slog.Logger
	now       func() time.Time
}

type Option func(*Workflow)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(w *Workflow) {
		if now != nil {
			w.now = now
		}
	}
}

// WithQueue attaches the async OCR queue so retried items are re-processed
// automatically. Without it, RetryOCR only resets the item.
func WithQueue(q async.Queue) Option {
	return func(w *Workflow) { w.queue = q }
}

func New(
	inbox repository.InboxItemRepository,
	bills repository.BillRepository,
	receipts repository.ReceiptRepository,
	providers repository.ServiceProviderRepository,
	logger *slog.Logger,
	opts ...Option,
) *Workflow {
	if logger == nil {
		logger = slog.Default()
	}
	w := &Workflow{
		inbox:     inbox,
		bills:     bills,
		receipts:  receipts,
		providers: providers,
		logger:    logger,
		now:       time.Now,
	}
	for _, o := range opts {
		o(w)
	}
	return w
}

// ApproveAsBill converts a processed inbox item into a bill.
func (w *Workflow) ApproveAsBill(ctx context.Context, itemID, providerID uuid.UUID, amount float64, date time.Time, description string) (entity.InboxItem, entity.Bill, error) {
	item, err := w.loadApprovable(ctx, itemID)
	if err != nil {
		return entity.InboxItem{}, entity.Bill{}, err
	}
	if err := w.requireActiveProvider(ctx, providerID); err != nil {
		return entity.InboxItem{}, entity.Bill{}, err
	}

	bill, err := entity.NewBillFromInbox(uuid.New(), item.UserID, providerID, item.ID, amount, date, description, w.now())
	if err != nil {
		return entity.InboxItem{}, entity.Bill{}, err
	}
	approved, err := item.Approve(bill.ID, constants.LinkedEntityBill)
	if err != nil {
		return entity.InboxItem{}, entity.Bill{}, err
	}

	created, err := w.bills.Create(ctx, bill)
	if err != nil {
		return entity.InboxItem{}, entity.Bill{}, fmt.Errorf("create bill: %w", err)
	}
	saved, err := w.inbox.Save(ctx, approved)
	if err != nil {
		if derr := w.bills.Delete(ctx, created.ID); derr != nil {
			w.logger.Error("workflow.approve.rollback_failed", "bill_id", created.ID, "error", derr)
		}
		return entity.InboxItem{}, entity.Bill{}, fmt.Errorf("approve inbox item: %w", err)
	}

	w.logger.Info("workflow.approved_as_bill", "item_id", item.ID, "bill_id", created.ID, "user_id", item.UserID)
	return saved, created, nil
}

// ApproveAsReceipt converts a processed inbox item into a receipt.
func (w *Workflow) ApproveAsReceipt(ctx context.Context, itemID, providerID uuid.UUID, amount float64, date time.Time, description string) (entity.InboxItem, entity.Receipt, error) {
	item, err := w.loadApprovable(ctx, itemID)
	if err != nil {
		return entity.InboxItem{}, entity.Receipt{}, err
	}
	if err := w.requireActiveProvider(ctx, providerID); err != nil {
		return entity.InboxItem{}, entity.Receipt{}, err
	}

	receipt, err := entity.NewReceiptFromInbox(uuid.New(), item.UserID, providerID, item.ID, amount, date, description, w.now())
	if err != nil {
		return entity.InboxItem{}, entity.Receipt{}, err
	}
	approved, err := item.Approve(receipt.ID, constants.LinkedEntityReceipt)
	if err != nil {
		return entity.InboxItem{}, entity.Receipt{}, err
	}

	created, err := w.receipts.Create(ctx, receipt)
	if err != nil {
		return entity.InboxItem{}, entity.Receipt{}, fmt.Errorf("create receipt: %w", err)
	}
	saved, err := w.inbox.Save(ctx, approved)
	if err != nil {
		if derr := w.receipts.Delete(ctx, created.ID); derr != nil {
			w.logger.Error("workflow.approve.rollback_failed", "receipt_id", created.ID, "error", derr)
		}
		return entity.InboxItem{}, entity.Receipt{}, fmt.Errorf("approve inbox item: %w", err)
	}

	w.logger.Info("workflow.approved_as_receipt", "item_id", item.ID, "receipt_id", created.ID, "user_id", item.UserID)
	return saved, created, nil
}

// Reject records a rejection on the item. The item keeps its machine state;
// rejection shows up through the canonical status view.
func (w *Workflow) Reject(ctx context.Context, itemID uuid.UUID, reason string) (entity.InboxItem, error) {
	item, err := w.inbox.GetByID(ctx, itemID)
	if err != nil {
		return entity.InboxItem{}, err
	}
	rejected, err := item.Reject(reason, w.now())
	if err != nil {
		return entity.InboxItem{}, err
	}
	saved, err := w.inbox.Save(ctx, rejected)
	if err != nil {
		return entity.InboxItem{}, err
	}
	w.logger.Info("workflow.rejected", "item_id", item.ID, "reason", reason)
	return saved, nil
}

// RetryOCR resets a failed item and, when a queue is attached, schedules it
// for another OCR pass.
func (w *Workflow) RetryOCR(ctx context.Context, itemID uuid.UUID) (entity.InboxItem, error) {
	item, err := w.inbox.GetByID(ctx, itemID)
	if err != nil {
		return entity.InboxItem{}, err
	}
	// a rejected item can never be approved again, so another OCR pass is
	// pointless
	if item.IsRejected() {
		return entity.InboxItem{}, common.NewIllegalStateError("Cannot retry OCR on a rejected item")
	}
	reset, err := item.RetryOCR()
	if err != nil {
		return entity.InboxItem{}, err
	}
	saved, err := w.inbox.Save(ctx, reset)
	if err != nil {
		return entity.InboxItem{}, err
	}
	if w.queue != nil {
		if err := w.queue.Enqueue(ctx, async.Job{InboxItemID: saved.ID, Retry: true, SubmittedAt: w.now()}); err != nil {
			w.logger.Error("workflow.retry.enqueue_failed", "item_id", saved.ID, "error", err)
		}
	}
	w.logger.Info("workflow.retry_ocr", "item_id", saved.ID)
	return saved, nil
}

// ApplyOCRResult records externally obtained OCR text on a CREATED item.
// The async pipeline normally does this; the API exposes it for callers
// that run extraction themselves.
func (w *Workflow) ApplyOCRResult(ctx context.Context, itemID uuid.UUID, text string) (entity.InboxItem, error) {
	item, err := w.inbox.GetByID(ctx, itemID)
	if err != nil {
		return entity.InboxItem{}, err
	}
	processed, err := item.ProcessOCR(text)
	if err != nil {
		return entity.InboxItem{}, err
	}
	return w.inbox.Save(ctx, processed)
}

// MarkOCRFailed records an external extraction failure on a CREATED item.
func (w *Workflow) MarkOCRFailed(ctx context.Context, itemID uuid.UUID, reason string) (entity.InboxItem, error) {
	item, err := w.inbox.GetByID(ctx, itemID)
	if err != nil {
		return entity.InboxItem{}, err
	}
	failed, err := item.FailOCR(reason)
	if err != nil {
		return entity.InboxItem{}, err
	}
	return w.inbox.Save(ctx, failed)
}

// ListInboxByStatus returns a user's inbox items whose canonical status
// matches. Rows carrying a status outside the known legacy set fail the
// whole listing; bad data is reported, not hidden.
func (w *Workflow) ListInboxByStatus(ctx context.Context, userID uuid.UUID, status constants.Status) ([]entity.InboxItem, error) {
	items, err := w.inbox.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]entity.InboxItem, 0, len(items))
	for _, item := range items {
		canonical, err := item.CanonicalStatus()
		if err != nil {
			w.logger.Error("workflow.list.unknown_status", "item_id", item.ID, "raw_status", item.Status, "error", err)
			return nil, err
		}
		if canonical == status {
			out = append(out, item)
		}
	}
	return out, nil
}

// RemoveBill soft-removes a bill from the ledger.
func (w *Workflow) RemoveBill(ctx context.Context, billID uuid.UUID) (entity.Bill, error) {
	bill, err := w.bills.GetByID(ctx, billID)
	if err != nil {
		return entity.Bill{}, err
	}
	removed, err := bill.Remove()
	if err != nil {
		return entity.Bill{}, err
	}
	saved, err := w.bills.Save(ctx, removed)
	if err != nil {
		return entity.Bill{}, err
	}
	w.logger.Info("workflow.removed_bill", "bill_id", billID)
	return saved, nil
}

// RemoveReceipt soft-removes a receipt from the ledger.
func (w *Workflow) RemoveReceipt(ctx context.Context, receiptID uuid.UUID) (entity.Receipt, error) {
	receipt, err := w.receipts.GetByID(ctx, receiptID)
	if err != nil {
		return entity.Receipt{}, err
	}
	removed, err := receipt.Remove()
	if err != nil {
		return entity.Receipt{}, err
	}
	saved, err := w.receipts.Save(ctx, removed)
	if err != nil {
		return entity.Receipt{}, err
	}
	w.logger.Info("workflow.removed_receipt", "receipt_id", receiptID)
	return saved, nil
}

func (w *Workflow) loadApprovable(ctx context.Context, itemID uuid.UUID) (entity.InboxItem, error) {
	item, err := w.inbox.GetByID(ctx, itemID)
	if err != nil {
		return entity.InboxItem{}, err
	}
	if item.IsRejected() {
		return entity.InboxItem{}, common.NewIllegalStateError("Cannot approve a rejected item")
	}
	if !item.CanApprove() {
		return entity.InboxItem{}, common.NewIllegalStateError("Cannot approve from state %s", item.State)
	}
	return item, nil
}

func (w *Workflow) requireActiveProvider(ctx context.Context, providerID uuid.UUID) error {
	provider, err := w.providers.GetByID(ctx, providerID)
	if err != nil {
		return err
	}
	if !provider.IsActive() {
		return common.NewIllegalArgumentError("service provider %q is hidden and cannot be used for approval", provider.Name)
	}
	return nil
}
