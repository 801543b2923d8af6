package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docledger/docledger/gen/ent"
	entfile "github.com/docledger/docledger/gen/ent/incomingfile"
	"github.com/docledger/docledger/internal/common"
	"github.com/docledger/docledger/internal/entity"
)

// IncomingFileRepository persists upload records. The (user_id, checksum)
// unique index backs duplicate detection; Create surfaces constraint
// violations so concurrent identical uploads cannot both win.
type IncomingFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (entity.IncomingFile, error)
	GetByUserAndChecksum(ctx context.Context, userID uuid.UUID, checksum string) (entity.IncomingFile, bool, error)
	Create(ctx context.Context, file entity.IncomingFile) (entity.IncomingFile, error)
	// Delete exists only for ingest rollback when staging fails mid-way.
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.IncomingFile, error)
}

type incomingFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewIncomingFileRepository(entc *ent.Client, logger *slog.Logger) IncomingFileRepository {
	return &incomingFileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *incomingFileRepo) GetByID(ctx context.Context, id uuid.UUID) (entity.IncomingFile, error) {
	row, err := r.ent.IncomingFile.Get(ctx, id)
	if ent.IsNotFound(err) {
		return entity.IncomingFile{}, &common.NotFoundError{Kind: "incoming file", ID: id.String()}
	}
	if err != nil {
		return entity.IncomingFile{}, err
	}
	return toIncomingFile(row), nil
}

func (r *incomingFileRepo) GetByUserAndChecksum(ctx context.Context, userID uuid.UUID, checksum string) (entity.IncomingFile, bool, error) {
	row, err := r.ent.IncomingFile.Query().
		Where(
			entfile.UserID(userID),
			entfile.Checksum(checksum),
		).Only(ctx)
	if ent.IsNotFound(err) {
		return entity.IncomingFile{}, false, nil
	}
	if err != nil {
		r.logger.Error("failed to get incoming file by user and checksum", "user_id", userID, "error", err)
		return entity.IncomingFile{}, false, err
	}
	return toIncomingFile(row), true, nil
}

func (r *incomingFileRepo) Create(ctx context.Context, file entity.IncomingFile) (entity.IncomingFile, error) {
	row, err := r.ent.IncomingFile.Create().
		SetID(file.ID).
		SetUserID(file.UserID).
		SetFilename(file.Filename).
		SetFilePath(file.FilePath).
		SetFileExt(file.FileExt).
		SetFileSize(file.FileSize).
		SetChecksum(file.Checksum).
		SetStatus(file.Status).
		SetUploadDate(file.UploadDate).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create incoming file", "user_id", file.UserID, "filename", file.Filename, "error", err)
		return entity.IncomingFile{}, err
	}
	return toIncomingFile(row), nil
}

func (r *incomingFileRepo) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.ent.IncomingFile.DeleteOneID(id).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		r.logger.Error("failed to delete incoming file", "file_id", id, "error", err)
		return err
	}
	return nil
}

func (r *incomingFileRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.IncomingFile, error) {
	rows, err := r.ent.IncomingFile.Query().
		Where(entfile.UserID(userID)).
		Order(entfile.ByUploadDate()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list incoming files", "user_id", userID, "error", err)
		return nil, err
	}
	out := make([]entity.IncomingFile, 0, len(rows))
	for _, row := range rows {
		out = append(out, toIncomingFile(row))
	}
	return out, nil
}

// IsUniqueViolation reports whether err is the checksum uniqueness
// constraint firing on a concurrent duplicate insert.
func IsUniqueViolation(err error) bool {
	return ent.IsConstraintError(err)
}
