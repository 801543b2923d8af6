package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docledger/docledger/gen/ent"
	entinbox "github.com/docledger/docledger/gen/ent/inboxitem"
	"github.com/docledger/docledger/internal/common"
	"github.com/docledger/docledger/internal/entity"
)

// InboxItemRepository persists inbox staging items. Items are never
// physically deleted; Save writes the full transition result back.
type InboxItemRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (entity.InboxItem, error)
	Create(ctx context.Context, item entity.InboxItem) (entity.InboxItem, error)
	Save(ctx context.Context, item entity.InboxItem) (entity.InboxItem, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.InboxItem, error)
}

type inboxItemRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewInboxItemRepository(entc *ent.Client, logger *slog.Logger) InboxItemRepository {
	return &inboxItemRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *inboxItemRepo) GetByID(ctx context.Context, id uuid.UUID) (entity.InboxItem, error) {
	row, err := r.ent.InboxItem.Get(ctx, id)
	if ent.IsNotFound(err) {
		return entity.InboxItem{}, &common.NotFoundError{Kind: "inbox item", ID: id.String()}
	}
	if err != nil {
		return entity.InboxItem{}, err
	}
	return toInboxItem(row), nil
}

func (r *inboxItemRepo) Create(ctx context.Context, item entity.InboxItem) (entity.InboxItem, error) {
	row, err := r.ent.InboxItem.Create().
		SetID(item.ID).
		SetFileID(item.FileID).
		SetUserID(item.UserID).
		SetUploadedImage(item.UploadedImage).
		SetUploadDate(item.UploadDate).
		SetState(string(item.State)).
		SetStatus(item.Status).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create inbox item", "user_id", item.UserID, "file_id", item.FileID, "error", err)
		return entity.InboxItem{}, err
	}
	return toInboxItem(row), nil
}

func (r *inboxItemRepo) Save(ctx context.Context, item entity.InboxItem) (entity.InboxItem, error) {
	up := r.ent.InboxItem.UpdateOneID(item.ID).
		SetState(string(item.State)).
		SetStatus(item.Status)

	if item.OCRResults != nil {
		up.SetOcrResults(*item.OCRResults)
	} else {
		up.ClearOcrResults()
	}
	if item.FailureReason != nil {
		up.SetFailureReason(*item.FailureReason)
	} else {
		up.ClearFailureReason()
	}
	if item.LinkedEntityID != nil {
		up.SetLinkedEntityID(*item.LinkedEntityID)
	} else {
		up.ClearLinkedEntityID()
	}
	if item.LinkedEntityTyp != nil {
		up.SetLinkedEntityType(string(*item.LinkedEntityTyp))
	} else {
		up.ClearLinkedEntityType()
	}
	if item.RejectionReason != nil {
		up.SetRejectionReason(*item.RejectionReason)
	} else {
		up.ClearRejectionReason()
	}
	if item.RejectedAt != nil {
		up.SetRejectedAt(*item.RejectedAt)
	} else {
		up.ClearRejectedAt()
	}

	row, err := up.Save(ctx)
	if ent.IsNotFound(err) {
		return entity.InboxItem{}, &common.NotFoundError{Kind: "inbox item", ID: item.ID.String()}
	}
	if err != nil {
		r.logger.Error("failed to save inbox item", "inbox_item_id", item.ID, "state", item.State, "error", err)
		return entity.InboxItem{}, err
	}
	return toInboxItem(row), nil
}

func (r *inboxItemRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.InboxItem, error) {
	rows, err := r.ent.InboxItem.Query().
		Where(entinbox.UserID(userID)).
		Order(entinbox.ByUploadDate()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list inbox items", "user_id", userID, "error", err)
		return nil, err
	}
	out := make([]entity.InboxItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, toInboxItem(row))
	}
	return out, nil
}
