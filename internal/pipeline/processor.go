package processor

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Processor drives a staged inbox item through OCR. It is the unit of work
// the async queue dispatches.
type Processor struct {
	Logger *slog.Logger
	OCR    *OCRStage
}

func NewProcessor(logger *slog.Logger, ocr *OCRStage) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, OCR: ocr}
}

// ProcessItem runs the OCR stage for one inbox item.
func (p *Processor) ProcessItem(ctx context.Context, itemID uuid.UUID) error {
	item, res, err := p.OCR.Run(ctx, itemID)
	if err != nil {
		p.Logger.Error("processor.ocr.failed", "item_id", itemID, "err", err)
		return err
	}
	p.Logger.Info("processor.ocr.ok",
		"item_id", itemID,
		"state", item.State,
		"method", res.Method,
		"pages", res.Pages,
		"confidence", res.Confidence,
	)
	return nil
}
