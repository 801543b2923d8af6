package processor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docledger/docledger/constants"
	"github.com/docledger/docledger/internal/common"
	"github.com/docledger/docledger/internal/entity"
	"github.com/docledger/docledger/internal/extract"
	"github.com/docledger/docledger/internal/repository"
)

// LowConfidenceThreshold flags OCR output that likely needs a manual look
// before approval.
const LowConfidenceThreshold = 0.6

type OCRStage struct {
	InboxRepo     repository.InboxItemRepository
	TextExtractor extract.TextExtractor
	Logger        *slog.Logger
}

func NewOCRStage(inbox repository.InboxItemRepository, tx extract.TextExtractor, logger *slog.Logger) *OCRStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &OCRStage{InboxRepo: inbox, TextExtractor: tx, Logger: logger}
}

// Run extracts text for a staged inbox item and records the outcome.
// A successful pass moves the item to PROCESSED; an extraction error moves
// it to FAILED with the reason attached. Either way the result is persisted
// before returning.
func (p *OCRStage) Run(ctx context.Context, itemID uuid.UUID) (entity.InboxItem, extract.TextExtractionResult, error) {
	item, err := p.InboxRepo.GetByID(ctx, itemID)
	if err != nil {
		return entity.InboxItem{}, extract.TextExtractionResult{}, fmt.Errorf("get inbox item: %w", err)
	}

	// Guard before touching the extractor so an item that already ran (or
	// was approved) is never re-OCRed.
	if item.State != constants.InboxStateCreated {
		return item, extract.TextExtractionResult{}, common.NewIllegalStateError("Cannot process OCR from state %s", item.State)
	}

	res, err := p.TextExtractor.Extract(ctx, item.UploadedImage)
	if err != nil {
		failed, ferr := item.FailOCR(err.Error())
		if ferr != nil {
			return item, res, ferr
		}
		saved, serr := p.InboxRepo.Save(ctx, failed)
		if serr != nil {
			return item, res, fmt.Errorf("persist failed item: %w", serr)
		}
		p.Logger.Warn("pipeline.ocr.failed", "item_id", itemID, "reason", err.Error())
		return saved, res, err
	}

	if res.Confidence > 0 && res.Confidence < LowConfidenceThreshold {
		p.Logger.Warn("pipeline.ocr.low_confidence", "item_id", itemID, "confidence", res.Confidence)
	}

	processed, err := item.ProcessOCR(res.Text)
	if err != nil {
		return item, res, err
	}
	saved, err := p.InboxRepo.Save(ctx, processed)
	if err != nil {
		return item, res, fmt.Errorf("persist processed item: %w", err)
	}
	return saved, res, nil
}
