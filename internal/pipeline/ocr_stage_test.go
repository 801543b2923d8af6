package processor_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docledger/docledger/constants"
	"github.com/docledger/docledger/internal/common"
	"github.com/docledger/docledger/internal/entity"
	"github.com/docledger/docledger/internal/extract"
	processor "github.com/docledger/docledger/internal/pipeline"
)

type fakeInboxRepo struct {
	items map[uuid.UUID]entity.InboxItem
	saves int
}

func newFakeInboxRepo() *fakeInboxRepo {
	return &fakeInboxRepo{items: make(map[uuid.UUID]entity.InboxItem)}
}

func (r *fakeInboxRepo) GetByID(_ context.Context, id uuid.UUID) (entity.InboxItem, error) {
	item, ok := r.items[id]
	if !ok {
		return entity.InboxItem{}, &common.NotFoundError{Kind: "inbox item", ID: id.String()}
	}
	return item, nil
}

func (r *fakeInboxRepo) Create(_ context.Context, item entity.InboxItem) (entity.InboxItem, error) {
	r.items[item.ID] = item
	return item, nil
}

func (r *fakeInboxRepo) Save(_ context.Context, item entity.InboxItem) (entity.InboxItem, error) {
	r.items[item.ID] = item
	r.saves++
	return item, nil
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

type stubExtractor struct {
	res   extract.TextExtractionResult
	err   error
	calls int
}

func (s *stubExtractor) Extract(_ context.Context, _ string) (extract.TextExtractionResult, error) {
	s.calls++
	return s.res, s.err
}

func stagedItem(repo *fakeInboxRepo) entity.InboxItem {
	item := entity.NewInboxItem(uuid.New(), uuid.New(), uuid.New(), "/blobs/ab/abc.png", time.Now())
	repo.items[item.ID] = item
	return item
}

func TestOCRStage_Run_Success(t *testing.T) {
	repo := newFakeInboxRepo()
	item := stagedItem(repo)
	ext := &stubExtractor{res: extract.TextExtractionResult{Text: "Invoice 42", Confidence: 0.93}}

	stage := processor.NewOCRStage(repo, ext, nil)
	saved, res, err := stage.Run(context.Background(), item.ID)
	require.NoError(t, err)

	assert.Equal(t, constants.InboxStateProcessed, saved.State)
	require.NotNil(t, saved.OCRResults)
	assert.Equal(t, "Invoice 42", *saved.OCRResults)
	assert.Nil(t, saved.FailureReason)
	assert.Equal(t, "Invoice 42", res.Text)

	stored := repo.items[item.ID]
	assert.Equal(t, constants.InboxStateProcessed, stored.State)
}

func TestOCRStage_Run_ExtractionFailure(t *testing.T) {
	repo := newFakeInboxRepo()
	item := stagedItem(repo)
	ext := &stubExtractor{err: errors.New("engine timeout")}

	stage := processor.NewOCRStage(repo, ext, nil)
	saved, _, err := stage.Run(context.Background(), item.ID)
	require.Error(t, err)

	assert.Equal(t, constants.InboxStateFailed, saved.State)
	require.NotNil(t, saved.FailureReason)
	assert.Equal(t, "engine timeout", *saved.FailureReason)

	stored := repo.items[item.ID]
	assert.Equal(t, constants.InboxStateFailed, stored.State)
}

func TestOCRStage_Run_WrongStateNeverExtracts(t *testing.T) {
	repo := newFakeInboxRepo()
	item := stagedItem(repo)
	processed, err := item.ProcessOCR("done")
	require.NoError(t, err)
	repo.items[item.ID] = processed
	repo.saves = 0

	ext := &stubExtractor{res: extract.TextExtractionResult{Text: "again"}}
	stage := processor.NewOCRStage(repo, ext, nil)

	_, _, err = stage.Run(context.Background(), item.ID)
	var ise *common.IllegalStateError
	require.ErrorAs(t, err, &ise)
	assert.EqualError(t, err, "Cannot process OCR from state PROCESSED")
	assert.Zero(t, ext.calls)
	assert.Zero(t, repo.saves)
}

func TestOCRStage_Run_UnknownItem(t *testing.T) {
	repo := newFakeInboxRepo()
	stage := processor.NewOCRStage(repo, &stubExtractor{}, nil)

	_, _, err := stage.Run(context.Background(), uuid.New())
	var nfe *common.NotFoundError
	assert.ErrorAs(t, err, &nfe)
}

func TestProcessor_ProcessItem(t *testing.T) {
	repo := newFakeInboxRepo()
	item := stagedItem(repo)
	ext := &stubExtractor{res: extract.TextExtractionResult{Text: "ok", Confidence: 0.8}}

	p := processor.NewProcessor(nil, processor.NewOCRStage(repo, ext, nil))
	require.NoError(t, p.ProcessItem(context.Background(), item.ID))
	assert.Equal(t, constants.InboxStateProcessed, repo.items[item.ID].State)

	err := p.ProcessItem(context.Background(), item.ID)
	assert.Error(t, err)
}
