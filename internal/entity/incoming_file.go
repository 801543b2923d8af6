package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/docledger/docledger/constants"
)

// IncomingFile is the immutable record of a raw upload. It is created once
// on upload and never mutated; approval and rejection act on the owning
// inbox item, which supersedes the file.
type IncomingFile struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Filename   string    `json:"filename"`
	FilePath   string    `json:"file_path"`
	FileExt    string    `json:"file_ext"`
	FileSize   int       `json:"file_size"`
	Checksum   string    `json:"checksum"` // hex-encoded content hash, unique per user
	Status     string    `json:"status"`   // raw stored status, consolidated at read time
	UploadDate time.Time `json:"upload_date"`
}

// NewIncomingFile builds the upload record in canonical NEW status.
func NewIncomingFile(id, userID uuid.UUID, filename, filePath, ext string, size int, checksum string, uploadedAt time.Time) IncomingFile {
	return IncomingFile{
		ID:         id,
		UserID:     userID,
		Filename:   filename,
		FilePath:   filePath,
		FileExt:    ext,
		FileSize:   size,
		Checksum:   checksum,
		Status:     string(constants.StatusNew),
		UploadDate: uploadedAt,
	}
}

// CanonicalStatus consolidates the raw stored status. Legacy rows may carry
// PENDING/PROCESSING/DRAFT; unknown values surface as errors.
func (f IncomingFile) CanonicalStatus() (constants.Status, error) {
	return constants.CanonicalizeStatus(f.Status)
}
