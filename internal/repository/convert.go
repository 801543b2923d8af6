package repository

import (
	"github.com/docledger/docledger/constants"
	"github.com/docledger/docledger/gen/ent"
	"github.com/docledger/docledger/internal/entity"
)

func toIncomingFile(e *ent.IncomingFile) entity.IncomingFile {
	return entity.IncomingFile{
		ID:         e.ID,
		UserID:     e.UserID,
		Filename:   e.Filename,
		FilePath:   e.FilePath,
		FileExt:    e.FileExt,
		FileSize:   e.FileSize,
		Checksum:   e.Checksum,
		Status:     e.Status,
		UploadDate: e.UploadDate,
	}
}

func toInboxItem(e *ent.InboxItem) entity.InboxItem {
	item := entity.InboxItem{
		ID:              e.ID,
		FileID:          e.FileID,
		UserID:          e.UserID,
		UploadedImage:   e.UploadedImage,
		UploadDate:      e.UploadDate,
		State:           constants.InboxState(e.State),
		Status:          e.Status,
		OCRResults:      e.OcrResults,
		FailureReason:   e.FailureReason,
		LinkedEntityID:  e.LinkedEntityID,
		RejectionReason: e.RejectionReason,
		RejectedAt:      e.RejectedAt,
	}
	if e.LinkedEntityType != nil {
		typ := constants.LinkedEntityType(*e.LinkedEntityType)
		item.LinkedEntityTyp = &typ
	}
	return item
}

func toBill(e *ent.Bill) entity.Bill {
	return entity.Bill{
		ID:                e.ID,
		UserID:            e.UserID,
		ServiceProviderID: e.ServiceProviderID,
		Date:              e.Date,
		Amount:            e.Amount,
		Description:       e.Description,
		InboxItemID:       e.InboxItemID,
		State:             constants.LedgerState(e.State),
		CreatedDate:       e.CreatedDate,
	}
}

func toReceipt(e *ent.Receipt) entity.Receipt {
	return entity.Receipt{
		ID:                e.ID,
		UserID:            e.UserID,
		ServiceProviderID: e.ServiceProviderID,
		PaymentTypeID:     e.PaymentTypeID,
		Date:              e.Date,
		Amount:            e.Amount,
		Description:       e.Description,
		InboxItemID:       e.InboxItemID,
		State:             constants.LedgerState(e.State),
		CreatedDate:       e.CreatedDate,
	}
}

func toServiceProvider(e *ent.ServiceProvider) entity.ServiceProvider {
	return entity.ServiceProvider{
		ID:            e.ID,
		Name:          e.Name,
		Avatar:        e.Avatar,
		Comment:       e.Comment,
		CommentForOCR: e.CommentForOcr,
		Regular:       constants.Recurrence(e.Regular),
		CustomFields:  e.CustomFields,
		State:         constants.ProviderState(e.State),
		CreatedDate:   e.CreatedDate,
		ModifiedDate:  e.ModifiedDate,
	}
}
