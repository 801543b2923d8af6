package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/docledger/docledger/gen/ent"
	entbill "github.com/docledger/docledger/gen/ent/bill"
	"github.com/docledger/docledger/internal/common"
	"github.com/docledger/docledger/internal/entity"
)

// BillRepository persists bills. Delete exists only for the approval
// workflow's compensating rollback; user-facing removal is the REMOVED
// state transition via Save.
type BillRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (entity.Bill, error)
	Create(ctx context.Context, b entity.Bill) (entity.Bill, error)
	Save(ctx context.Context, b entity.Bill) (entity.Bill, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]entity.Bill, error)
}

type billRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewBillRepository(entc *ent.Client, logger *slog.Logger) BillRepository {
	return &billRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *billRepo) GetByID(ctx context.Context, id uuid.UUID) (entity.Bill, error) {
	row, err := r.ent.Bill.Get(ctx, id)
	if ent.IsNotFound(err) {
		return entity.Bill{}, &common.NotFoundError{Kind: "bill", ID: id.String()}
	}
	if err != nil {
		return entity.Bill{}, err
	}
	return toBill(row), nil
}

func (r *billRepo) Create(ctx context.Context, b entity.Bill) (entity.Bill, error) {
	create := r.ent.Bill.Create().
		SetID(b.ID).
		SetUserID(b.UserID).
		SetServiceProviderID(b.ServiceProviderID).
		SetDate(b.Date).
		SetAmount(b.Amount).
		SetDescription(b.Description).
		SetState(string(b.State)).
		SetCreatedDate(b.CreatedDate)
	if b.InboxItemID != nil {
		create.SetInboxItemID(*b.InboxItemID)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create bill", "user_id", b.UserID, "service_provider_id", b.ServiceProviderID, "error", err)
		return entity.Bill{}, err
	}
	return toBill(row), nil
}

func (r *billRepo) Save(ctx context.Context, b entity.Bill) (entity.Bill, error) {
	row, err := r.ent.Bill.UpdateOneID(b.ID).
		SetServiceProviderID(b.ServiceProviderID).
		SetDate(b.Date).
		SetAmount(b.Amount).
		SetDescription(b.Description).
		SetState(string(b.State)).
		Save(ctx)
	if ent.IsNotFound(err) {
		return entity.Bill{}, &common.NotFoundError{Kind: "bill", ID: b.ID.String()}
	}
	if err != nil {
		r.logger.Error("failed to save bill", "bill_id", b.ID, "error", err)
		return entity.Bill{}, err
	}
	return toBill(row), nil
}

func (r *billRepo) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.ent.Bill.DeleteOneID(id).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		r.logger.Error("failed to delete bill", "bill_id", id, "error", err)
		return err
	}
	return nil
}

func (r *billRepo) ListByUser(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]entity.Bill, error) {
	q := r.ent.Bill.Query().Where(entbill.UserID(userID))
	if from != nil {
		q = q.Where(entbill.DateGTE(*from))
	}
	if to != nil {
		q = q.Where(entbill.DateLTE(*to))
	}
	rows, err := q.Order(entbill.ByDate()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list bills", "user_id", userID, "error", err)
		return nil, err
	}
	out := make([]entity.Bill, 0, len(rows))
	for _, row := range rows {
		out = append(out, toBill(row))
	}
	return out, nil
}
