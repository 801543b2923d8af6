package ingest_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docledger/docledger/constants"
	"github.com/docledger/docledger/internal/common"
	"github.com/docledger/docledger/internal/entity"
	"github.com/docledger/docledger/internal/ingest"
)

type fakeFileRepo struct {
	files map[uuid.UUID]entity.IncomingFile
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{files: map[uuid.UUID]entity.IncomingFile{}}
}

func (r *fakeFileRepo) GetByID(_ context.Context, id uuid.UUID) (entity.IncomingFile, error) {
	f, ok := r.files[id]
	if !ok {
		return entity.IncomingFile{}, &common.NotFoundError{Kind: "incoming file", ID: id.String()}
	}
	return f, nil
}

func (r *fakeFileRepo) GetByUserAndChecksum(_ context.Context, userID uuid.UUID, checksum string) (entity.IncomingFile, bool, error) {
	for _, f := range r.files {
		if f.UserID == userID && f.Checksum == checksum {
			return f, true, nil
		}
	}
	return entity.IncomingFile{}, false, nil
}

func (r *fakeFileRepo) Create(_ context.Context, f entity.IncomingFile) (entity.IncomingFile, error) {
	r.files[f.ID] = f
	return f, nil
}

func (r *fakeFileRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.files, id)
	return nil
}

func (r *fakeFileRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]entity.IncomingFile, error) {
	var out []entity.IncomingFile
	for _, f := range r.files {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

type fakeInboxRepo struct {
	items     map[uuid.UUID]entity.InboxItem
	createErr error
}

func newFakeInboxRepo() *fakeInboxRepo {
	return &fakeInboxRepo{items: map[uuid.UUID]entity.InboxItem{}}
}

func (r *fakeInboxRepo) GetByID(_ context.Context, id uuid.UUID) (entity.InboxItem, error) {
	it, ok := r.items[id]
	if !ok {
		return entity.InboxItem{}, &common.NotFoundError{Kind: "inbox item", ID: id.String()}
	}
	return it, nil
}

func (r *fakeInboxRepo) Create(_ context.Context, it entity.InboxItem) (entity.InboxItem, error) {
	if r.createErr != nil {
		return entity.InboxItem{}, r.createErr
	}
	r.items[it.ID] = it
	return it, nil
}

func (r *fakeInboxRepo) Save(_ context.Context, it entity.InboxItem) (entity.InboxItem, error) {
	if _, ok := r.items[it.ID]; !ok {
		return entity.InboxItem{}, &common.NotFoundError{Kind: "inbox item", ID: it.ID.String()}
	}
	r.items[it.ID] = it
	return it, nil
}

func (r *fakeInboxRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]entity.InboxItem, error) {
	var out []entity.InboxItem
	for _, it := range r.items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func newUsecase(t *testing.T) (*ingest.Usecase, *fakeFileRepo, *fakeInboxRepo, *ingest.DiskStore) {
	t.Helper()
	files := newFakeFileRepo()
	inbox := newFakeInboxRepo()
	store := ingest.NewDiskStore(t.TempDir())
	return ingest.NewUsecase(files, inbox, store, nil), files, inbox, store
}

func TestRegisterUpload(t *testing.T) {
	u, files, inbox, _ := newUsecase(t)
	userID := uuid.New()

	res, err := u.RegisterUpload(context.Background(), userID, "march-bill.pdf", bytes.NewReader([]byte("%PDF-1.4 fake")))
	require.NoError(t, err)

	assert.Equal(t, "march-bill.pdf", res.File.Filename)
	assert.Equal(t, "pdf", res.File.FileExt)
	assert.Len(t, res.File.Checksum, 64)
	assert.Equal(t, string(constants.StatusNew), res.File.Status)
	assert.Equal(t, constants.InboxStateCreated, res.Item.State)
	assert.Equal(t, res.File.ID, res.Item.FileID)

	// the blob landed on disk where the record points
	_, err = os.Stat(res.File.FilePath)
	require.NoError(t, err)

	assert.Len(t, files.files, 1)
	assert.Len(t, inbox.items, 1)
}

func TestRegisterUpload_Duplicate(t *testing.T) {
	u, files, inbox, _ := newUsecase(t)
	userID := uuid.New()
	content := []byte("same bytes")

	first, err := u.RegisterUpload(context.Background(), userID, "a.png", bytes.NewReader(content))
	require.NoError(t, err)

	// same content, same user: rejected even under a different filename
	_, err = u.RegisterUpload(context.Background(), userID, "b.png", bytes.NewReader(content))
	var dup *common.DuplicateFileError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, first.File.ID.String(), dup.FileID)
	assert.Equal(t, first.File.Checksum, dup.Checksum)

	// no partial state left behind
	assert.Len(t, files.files, 1)
	assert.Len(t, inbox.items, 1)

	// same content for a different user is fine
	_, err = u.RegisterUpload(context.Background(), uuid.New(), "c.png", bytes.NewReader(content))
	require.NoError(t, err)
}

func TestRegisterUpload_UnsupportedExtension(t *testing.T) {
	u, _, _, _ := newUsecase(t)

	for _, name := range []string{"notes.txt", "archive", "run.exe"} {
		_, err := u.RegisterUpload(context.Background(), uuid.New(), name, bytes.NewReader([]byte("x")))
		var illegal *common.IllegalArgumentError
		require.True(t, errors.As(err, &illegal), "file %q", name)
	}
}

func TestRegisterUpload_RollbackOnStagingFailure(t *testing.T) {
	files := newFakeFileRepo()
	inbox := newFakeInboxRepo()
	inbox.createErr = errors.New("db down")
	store := ingest.NewDiskStore(t.TempDir())
	u := ingest.NewUsecase(files, inbox, store, nil)

	_, err := u.RegisterUpload(context.Background(), uuid.New(), "bill.jpg", bytes.NewReader([]byte("img")))
	require.Error(t, err)

	// the incoming file record was rolled back too
	assert.Empty(t, files.files)
}

func TestRegisterUpload_RollbackKeepsOtherUsersBlob(t *testing.T) {
	files := newFakeFileRepo()
	inbox := newFakeInboxRepo()
	store := ingest.NewDiskStore(t.TempDir())
	u := ingest.NewUsecase(files, inbox, store, nil)

	content := []byte("identical bytes")
	first, err := u.RegisterUpload(context.Background(), uuid.New(), "a.pdf", bytes.NewReader(content))
	require.NoError(t, err)

	// a second user uploads the same bytes but staging fails and rolls back
	inbox.createErr = errors.New("db down")
	_, err = u.RegisterUpload(context.Background(), uuid.New(), "b.pdf", bytes.NewReader(content))
	require.Error(t, err)

	// the first user's blob is untouched by the rollback
	_, err = os.Stat(first.File.FilePath)
	require.NoError(t, err)
	assert.Len(t, files.files, 1)
}

func TestFSIngestor_IngestDirectory(t *testing.T) {
	u, _, _, _ := newUsecase(t)
	fi := ingest.NewFSIngestor(u, nil)
	userID := uuid.New()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "one.pdf"), []byte("pdf one"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "two.jpg"), []byte("jpg two"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "dupe.pdf"), []byte("pdf one"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "skip.txt"), []byte("text"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".hidden.png"), []byte("png"), 0o644))

	results, stats, err := fi.IngestDirectory(context.Background(), userID, root, true)
	require.NoError(t, err)

	assert.Equal(t, uint32(3), stats.Matched)
	assert.Equal(t, uint32(3), stats.Succeeded)
	assert.Equal(t, uint32(1), stats.Deduplicated)
	assert.Equal(t, uint32(0), stats.Failed)
	assert.Len(t, results, 3)
}

func TestDiskStore_SaveRemove(t *testing.T) {
	store := ingest.NewDiskStore(t.TempDir())
	userID := uuid.New()

	path, err := store.Save(userID, "abcdef0123", "pdf", []byte("content"))
	require.NoError(t, err)
	assert.Contains(t, path, filepath.Join(userID.String(), "ab", "abcdef0123.pdf"))

	require.NoError(t, store.Remove(path))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// removing twice is not an error
	require.NoError(t, store.Remove(path))
}
