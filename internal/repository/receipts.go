package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/docledger/docledger/gen/ent"
	entreceipt "github.com/docledger/docledger/gen/ent/receipt"
	"github.com/docledger/docledger/internal/common"
	"github.com/docledger/docledger/internal/entity"
)

// ReceiptRepository persists receipts. Delete exists only for the approval
// workflow's compensating rollback.
type ReceiptRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (entity.Receipt, error)
	Create(ctx context.Context, rec entity.Receipt) (entity.Receipt, error)
	Save(ctx context.Context, rec entity.Receipt) (entity.Receipt, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]entity.Receipt, error)
}

type receiptRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewReceiptRepository(entc *ent.Client, logger *slog.Logger) ReceiptRepository {
	return &receiptRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *receiptRepo) GetByID(ctx context.Context, id uuid.UUID) (entity.Receipt, error) {
	row, err := r.ent.Receipt.Get(ctx, id)
	if ent.IsNotFound(err) {
		return entity.Receipt{}, &common.NotFoundError{Kind: "receipt", ID: id.String()}
	}
	if err != nil {
		return entity.Receipt{}, err
	}
	return toReceipt(row), nil
}

func (r *receiptRepo) Create(ctx context.Context, rec entity.Receipt) (entity.Receipt, error) {
	create := r.ent.Receipt.Create().
		SetID(rec.ID).
		SetUserID(rec.UserID).
		SetServiceProviderID(rec.ServiceProviderID).
		SetDate(rec.Date).
		SetAmount(rec.Amount).
		SetDescription(rec.Description).
		SetState(string(rec.State)).
		SetCreatedDate(rec.CreatedDate)
	if rec.PaymentTypeID != nil {
		create.SetPaymentTypeID(*rec.PaymentTypeID)
	}
	if rec.InboxItemID != nil {
		create.SetInboxItemID(*rec.InboxItemID)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create receipt", "user_id", rec.UserID, "service_provider_id", rec.ServiceProviderID, "error", err)
		return entity.Receipt{}, err
	}
	return toReceipt(row), nil
}

func (r *receiptRepo) Save(ctx context.Context, rec entity.Receipt) (entity.Receipt, error) {
	up := r.ent.Receipt.UpdateOneID(rec.ID).
		SetServiceProviderID(rec.ServiceProviderID).
		SetDate(rec.Date).
		SetAmount(rec.Amount).
		SetDescription(rec.Description).
		SetState(string(rec.State))
	if rec.PaymentTypeID != nil {
		up.SetPaymentTypeID(*rec.PaymentTypeID)
	} else {
		up.ClearPaymentTypeID()
	}
	row, err := up.Save(ctx)
	if ent.IsNotFound(err) {
		return entity.Receipt{}, &common.NotFoundError{Kind: "receipt", ID: rec.ID.String()}
	}
	if err != nil {
		r.logger.Error("failed to save receipt", "receipt_id", rec.ID, "error", err)
		return entity.Receipt{}, err
	}
	return toReceipt(row), nil
}

func (r *receiptRepo) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.ent.Receipt.DeleteOneID(id).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		r.logger.Error("failed to delete receipt", "receipt_id", id, "error", err)
		return err
	}
	return nil
}

func (r *receiptRepo) ListByUser(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]entity.Receipt, error) {
	q := r.ent.Receipt.Query().Where(entreceipt.UserID(userID))
	if from != nil {
		q = q.Where(entreceipt.DateGTE(*from))
	}
	if to != nil {
		q = q.Where(entreceipt.DateLTE(*to))
	}
	rows, err := q.Order(entreceipt.ByDate()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list receipts", "user_id", userID, "error", err)
		return nil, err
	}
	out := make([]entity.Receipt, 0, len(rows))
	for _, row := range rows {
		out = append(out, toReceipt(row))
	}
	return out, nil
}
