package async_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docledger/docledger/constants"
	"github.com/docledger/docledger/internal/async"
	"github.com/docledger/docledger/internal/common"
	"github.com/docledger/docledger/internal/entity"
	"github.com/docledger/docledger/internal/extract"
	processor "github.com/docledger/docledger/internal/pipeline"
)

type memInboxRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]entity.InboxItem
}

func (r *memInboxRepo) GetByID(_ context.Context, id uuid.UUID) (entity.InboxItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return entity.InboxItem{}, &common.NotFoundError{Kind: "inbox item", ID: id.String()}
	}
	return item, nil
}

func (r *memInboxRepo) Create(_ context.Context, item entity.InboxItem) (entity.InboxItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ID] = item
	return item, nil
}

func (r *memInboxRepo) Save(_ context.Context, item entity.InboxItem) (entity.InboxItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ID] = item
	return item, nil
}

func (r *memInboxRepo) ListByUser(_ context.Context, _ uuid.UUID) ([]entity.InboxItem, error) {
	return nil, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type okExtractor struct{}

func (okExtractor) Extract(_ context.Context, _ string) (extract.TextExtractionResult, error) {
	return extract.TextExtractionResult{Text: "text", Confidence: 0.9}, nil
}

func TestProcessorQueue_DrainsOnShutdown(t *testing.T) {
	repo := &memInboxRepo{items: make(map[uuid.UUID]entity.InboxItem)}
	var ids []uuid.UUID
	for i := 0; i < 8; i++ {
		item := entity.NewInboxItem(uuid.New(), uuid.New(), uuid.New(), "/blobs/x", time.Now())
		repo.items[item.ID] = item
		ids = append(ids, item.ID)
	}

	proc := processor.NewProcessor(nil, processor.NewOCRStage(repo, okExtractor{}, nil))
	q := async.NewProcessorQueue(proc, testLogger(), async.WithWorkers(2), async.WithQueueSize(16))

	for _, id := range ids {
		require.NoError(t, q.Enqueue(context.Background(), async.Job{InboxItemID: id, SubmittedAt: time.Now()}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	repo.mu.Lock()
	defer repo.mu.Unlock()
	for _, id := range ids {
		assert.Equal(t, constants.InboxStateProcessed, repo.items[id].State, "item %s not processed", id)
	}
}

func TestProcessorQueue_EnqueueAfterShutdownIsIgnored(t *testing.T) {
	repo := &memInboxRepo{items: make(map[uuid.UUID]entity.InboxItem)}
	proc := processor.NewProcessor(nil, processor.NewOCRStage(repo, okExtractor{}, nil))
	q := async.NewProcessorQueue(proc, testLogger(), async.WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)
	q.Shutdown(ctx) // idempotent

	assert.NoError(t, q.Enqueue(context.Background(), async.Job{InboxItemID: uuid.New()}))
}
