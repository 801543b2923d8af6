package extract

import (
	"context"
	"time"

	"github.com/docledger/docledger/internal/ocr"
)

type OCRAdapter struct {
	c     *ocr.Client
	clock func() time.Time
}

func NewOCRAdapter(c *ocr.Client) *OCRAdapter {
	return &OCRAdapter{c: c, clock: time.Now}
}

func (a *OCRAdapter) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	start := a.clock()
	r, err := a.c.Extract(ctx, path)
	return TextExtractionResult{
		Text:       r.Text,
		Confidence: r.Confidence,
		Pages:      r.Pages,
		Method:     "remote-ocr",
		Duration:   a.clock().Sub(start),
		Warnings:   r.Warnings,
	}, err
}
