package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job asks the pipeline to run OCR on one staged inbox item.
type Job struct {
	InboxItemID uuid.UUID
	Retry       bool // set when the user re-queued a FAILED item
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
