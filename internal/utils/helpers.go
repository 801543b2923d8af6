package utils

import (
	"fmt"
	"log/slog"
	"time"

	docledgerpb "github.com/docledger/docledger/gen/proto/docledger/v1"
	"github.com/docledger/docledger/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToPBInboxItem(i entity.InboxItem) *docledgerpb.InboxItem {
	pb := &docledgerpb.InboxItem{
		Id:              i.ID.String(),
		FileId:          i.FileID.String(),
		UserId:          i.UserID.String(),
		UploadedImage:   i.UploadedImage,
		UploadDate:      i.UploadDate.UTC().Format(time.RFC3339),
		State:           string(i.State),
		RawStatus:       i.Status,
		OcrResults:      strOrEmpty(i.OCRResults),
		FailureReason:   strOrEmpty(i.FailureReason),
		RejectionReason: strOrEmpty(i.RejectionReason),
	}
	if canonical, err := i.CanonicalStatus(); err == nil {
		pb.Status = string(canonical)
	} else {
		slog.Warn("unmapped inbox item status", "item_id", i.ID, "raw_status", i.Status)
	}
	if i.LinkedEntityID != nil {
		pb.LinkedEntityId = i.LinkedEntityID.String()
	}
	if i.LinkedEntityTyp != nil {
		pb.LinkedEntityType = string(*i.LinkedEntityTyp)
	}
	if i.RejectedAt != nil {
		pb.RejectedAt = i.RejectedAt.UTC().Format(time.RFC3339)
	}
	return pb
}

func ToPBIncomingFile(f entity.IncomingFile) *docledgerpb.IncomingFile {
	return &docledgerpb.IncomingFile{
		Id:         f.ID.String(),
		UserId:     f.UserID.String(),
		Filename:   f.Filename,
		FilePath:   f.FilePath,
		FileExt:    f.FileExt,
		FileSize:   int64(f.FileSize),
		Checksum:   f.Checksum,
		Status:     f.Status,
		UploadDate: f.UploadDate.UTC().Format(time.RFC3339),
	}
}

func ToPBBill(b entity.Bill) *docledgerpb.Bill {
	pb := &docledgerpb.Bill{
		Id:                b.ID.String(),
		UserId:            b.UserID.String(),
		ServiceProviderId: b.ServiceProviderID.String(),
		Date:              b.Date.Format("2006-01-02"),
		Amount:            fmt.Sprintf("%.2f", b.Amount),
		Description:       b.Description,
		State:             string(b.State),
		CreatedDate:       b.CreatedDate.UTC().Format(time.RFC3339),
	}
	if b.InboxItemID != nil {
		pb.InboxItemId = b.InboxItemID.String()
	}
	return pb
}

func ToPBReceipt(r entity.Receipt) *docledgerpb.Receipt {
	pb := &docledgerpb.Receipt{
		Id:                r.ID.String(),
		UserId:            r.UserID.String(),
		ServiceProviderId: r.ServiceProviderID.String(),
		Date:              r.Date.Format("2006-01-02"),
		Amount:            fmt.Sprintf("%.2f", r.Amount),
		Description:       r.Description,
		State:             string(r.State),
		CreatedDate:       r.CreatedDate.UTC().Format(time.RFC3339),
	}
	if r.InboxItemID != nil {
		pb.InboxItemId = r.InboxItemID.String()
	}
	if r.PaymentTypeID != nil {
		pb.PaymentTypeId = r.PaymentTypeID.String()
	}
	return pb
}

func ToPBServiceProvider(p entity.ServiceProvider) *docledgerpb.ServiceProvider {
	pb := &docledgerpb.ServiceProvider{
		Id:            p.ID.String(),
		Name:          p.Name,
		Comment:       p.Comment,
		CommentForOcr: p.CommentForOCR,
		Regular:       string(p.Regular),
		State:         string(p.State),
		CreatedDate:   p.CreatedDate.UTC().Format(time.RFC3339),
		ModifiedDate:  p.ModifiedDate.UTC().Format(time.RFC3339),
	}
	if p.Avatar != nil {
		pb.Avatar = *p.Avatar
	}
	if len(p.CustomFields) > 0 {
		pb.CustomFields = string(p.CustomFields)
	}
	return pb
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
