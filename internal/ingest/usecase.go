package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/docledger/docledger/constants"
	"github.com/docledger/docledger/internal/common"
	"github.com/docledger/docledger/internal/entity"
	"github.com/docledger/docledger/internal/repository"
)

// Usecase registers uploads: checksum, duplicate check, storage write, then
// the IncomingFile record and its InboxItem in CREATED state. A duplicate
// leaves no partial state behind.
type Usecase struct {
	files  repository.IncomingFileRepository
	inbox  repository.InboxItemRepository
	store  FileStore
	logger *slog.Logger
}

func NewUsecase(files repository.IncomingFileRepository, inbox repository.InboxItemRepository, store FileStore, logger *slog.Logger) *Usecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &Usecase{files: files, inbox: inbox, store: store, logger: logger}
}

// RegisterUpload implements Registrar.
func (u *Usecase) RegisterUpload(ctx context.Context, userID uuid.UUID, filename string, content io.Reader) (UploadResult, error) {
	ext := constants.NormalizeExt(filepath.Ext(filename))
	if ext == "" || !constants.IsAllowedExt(ext) {
		return UploadResult{}, common.NewIllegalArgumentError("unsupported or missing extension: %q", ext)
	}

	data, err := io.ReadAll(content)
	if err != nil {
		return UploadResult{}, fmt.Errorf("read upload: %w", err)
	}

	sum := sha256.Sum256(data)
	checksum := hex.EncodeToString(sum[:])

	existing, found, err := u.files.GetByUserAndChecksum(ctx, userID, checksum)
	if err != nil {
		return UploadResult{}, fmt.Errorf("checksum lookup: %w", err)
	}
	if found {
		u.logger.Info("duplicate upload rejected", "user_id", userID, "checksum", checksum, "existing_file_id", existing.ID)
		return UploadResult{}, &common.DuplicateFileError{
			UserID:   userID.String(),
			Checksum: checksum,
			FileID:   existing.ID.String(),
		}
	}

	path, err := u.store.Save(userID, checksum, ext, data)
	if err != nil {
		return UploadResult{}, fmt.Errorf("store upload: %w", err)
	}

	now := time.Now().UTC()
	file, err := u.files.Create(ctx, entity.NewIncomingFile(uuid.New(), userID, filepath.Base(filename), path, ext, len(data), checksum, now))
	if err != nil {
		if repository.IsUniqueViolation(err) {
			// a concurrent identical upload won the unique index race; its
			// record points at the same blob, so leave the blob in place
			return UploadResult{}, &common.DuplicateFileError{
				UserID:   userID.String(),
				Checksum: checksum,
			}
		}
		if rmErr := u.store.Remove(path); rmErr != nil {
			u.logger.Warn("failed to remove stored upload after insert failure", "path", path, "error", rmErr)
		}
		return UploadResult{}, err
	}

	item, err := u.inbox.Create(ctx, entity.NewInboxItem(uuid.New(), file.ID, userID, path, now))
	if err != nil {
		u.logger.Error("failed to stage inbox item, rolling back upload", "file_id", file.ID, "error", err)
		if rmErr := u.store.Remove(path); rmErr != nil {
			u.logger.Warn("failed to remove stored upload during rollback", "path", path, "error", rmErr)
		}
		if delErr := u.files.Delete(ctx, file.ID); delErr != nil {
			u.logger.Error("failed to roll back incoming file record", "file_id", file.ID, "error", delErr)
		}
		return UploadResult{}, err
	}

	u.logger.Info("upload registered", "user_id", userID, "file_id", file.ID, "inbox_item_id", item.ID, "checksum", checksum)
	return UploadResult{File: file, Item: item}, nil
}
