package extract

import (
	"context"
	"time"
)

// TextExtractor turns a stored document into OCR text. The engine behind it
// is an external collaborator; the pipeline only sees this contract.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text       string
	Confidence float32
	Pages      int
	Method     string
	Duration   time.Duration
	Warnings   []string
}
