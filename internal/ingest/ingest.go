package ingest

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/docledger/docledger/internal/entity"
)

// UploadResult is the outcome of registering one upload: the immutable file
// record plus the inbox item staged for OCR.
type UploadResult struct {
	File entity.IncomingFile
	Item entity.InboxItem
}

// IngestionResult is the per-file outcome of a filesystem ingest.
type IngestionResult struct {
	SourcePath   string
	FileID       string
	InboxItemID  string
	Deduplicated bool
	HashHex      string
	FileExt      string
	UploadedAt   time.Time
	Err          string
}

// DirStats summarizes a directory ingest.
type DirStats struct {
	Scanned      uint32
	Matched      uint32
	Succeeded    uint32
	Deduplicated uint32
	Failed       uint32
}

// Registrar registers raw upload bytes. The server upload path and the
// filesystem ingestor both go through it.
type Registrar interface {
	RegisterUpload(ctx context.Context, userID uuid.UUID, filename string, content io.Reader) (UploadResult, error)
}

// Ingestor is the filesystem-facing behavior the service depends on.
type Ingestor interface {
	// IngestPath ingests a single path.
	IngestPath(ctx context.Context, userID uuid.UUID, path string) (IngestionResult, error)
	// IngestDirectory ingests all matching files under root.
	IngestDirectory(ctx context.Context, userID uuid.UUID, root string, skipHidden bool) ([]IngestionResult, DirStats, error)
}
