package server

import (
	"bytes"
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/docledger/docledger/constants"
	v1 "github.com/docledger/docledger/gen/proto/docledger/v1"
	"github.com/docledger/docledger/internal/async"
	"github.com/docledger/docledger/internal/common"
	"github.com/docledger/docledger/internal/ingest"
	"github.com/docledger/docledger/internal/utils"
	"github.com/docledger/docledger/internal/workflow"
)

// InboxService exposes upload and inbox review operations.
type InboxService struct {
	v1.UnimplementedInboxServiceServer
	registrar ingest.Registrar
	ingestor  ingest.Ingestor
	wf        *workflow.Workflow
	queue     async.Queue
	logger    *slog.Logger
}

func NewInboxService(reg ingest.Registrar, ing ingest.Ingestor, wf *workflow.Workflow, queue async.Queue, logger *slog.Logger) *InboxService {
	return &InboxService{
		registrar: reg,
		ingestor:  ing,
		wf:        wf,
		queue:     queue,
		logger:    logger,
	}
}

func (s *InboxService) UploadFile(ctx context.Context, req *v1.UploadFileRequest) (*v1.UploadFileResponse, error) {
	userID, err := parseUUIDField(req.GetUserId(), "user_id")
	if err != nil {
		return nil, err
	}
	filename := strings.TrimSpace(req.GetFilename())
	if filename == "" {
		s.logger.Error("upload request missing filename", "user_id", userID)
		return nil, status.Error(codes.InvalidArgument, "filename is required")
	}
	if len(req.GetContent()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "content is required")
	}

	s.logger.Info("starting upload", "user_id", userID, "filename", filename, "size", len(req.GetContent()))
	result, err := s.registrar.RegisterUpload(ctx, userID, filename, bytes.NewReader(req.GetContent()))
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	s.logger.Info("upload registered", "user_id", userID, "file_id", result.File.ID, "item_id", result.Item.ID)

	if s.queue != nil {
		if err := s.queue.Enqueue(ctx, async.Job{InboxItemID: result.Item.ID, SubmittedAt: time.Now()}); err != nil {
			s.logger.Error("enqueue after upload failed", "item_id", result.Item.ID, "error", err)
		}
	}

	return &v1.UploadFileResponse{
		File: utils.ToPBIncomingFile(result.File),
		Item: utils.ToPBInboxItem(result.Item),
	}, nil
}

func (s *InboxService) IngestDirectory(ctx context.Context, req *v1.IngestDirectoryRequest) (*v1.IngestDirectoryResponse, error) {
	userID, err := parseUUIDField(req.GetUserId(), "user_id")
	if err != nil {
		return nil, err
	}
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		s.logger.Error("ingest directory request missing root_path", "user_id", userID)
		return nil, status.Error(codes.InvalidArgument, "root_path is required")
	}

	skipHidden := true
	if req.SkipHidden != nil {
		skipHidden = req.GetSkipHidden()
	}

	s.logger.Info("starting directory ingest", "user_id", userID, "root", root, "skip_hidden", skipHidden)
	results, stats, err := s.ingestor.IngestDirectory(ctx, userID, root, skipHidden)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest directory: %v", err)
	}
	s.logger.Info("directory ingest completed", "user_id", userID,
		"scanned", stats.Scanned, "matched", stats.Matched, "succeeded", stats.Succeeded,
		"deduplicated", stats.Deduplicated, "failed", stats.Failed)

	out := &v1.IngestDirectoryResponse{
		Scanned:      stats.Scanned,
		Matched:      stats.Matched,
		Succeeded:    stats.Succeeded,
		Deduplicated: stats.Deduplicated,
		Failed:       stats.Failed,
		Results:      make([]*v1.IngestResult, 0, len(results)),
	}
	for _, r := range results {
		out.Results = append(out.Results, &v1.IngestResult{
			SourcePath:   r.SourcePath,
			FileId:       r.FileID,
			InboxItemId:  r.InboxItemID,
			Deduplicated: r.Deduplicated,
			ChecksumHex:  r.HashHex,
			FileExt:      r.FileExt,
			UploadedAt:   r.UploadedAt.UTC().Format(time.RFC3339),
			Error:        r.Err,
		})

		if r.Err == "" && !r.Deduplicated && r.InboxItemID != "" && s.queue != nil {
			if itemID, perr := uuid.Parse(r.InboxItemID); perr == nil {
				if err := s.queue.Enqueue(ctx, async.Job{InboxItemID: itemID, SubmittedAt: time.Now()}); err != nil {
					s.logger.Error("enqueue after ingest failed", "item_id", itemID, "error", err)
				}
			}
		}
	}
	return out, nil
}

func (s *InboxService) ListInbox(ctx context.Context, req *v1.ListInboxRequest) (*v1.ListInboxResponse, error) {
	userID, err := parseUUIDField(req.GetUserId(), "user_id")
	if err != nil {
		return nil, err
	}
	canonical, cerr := constants.CanonicalizeStatus(req.GetStatus())
	if cerr != nil {
		s.logger.Error("invalid status for inbox listing", "status", req.GetStatus(), "error", cerr)
		return nil, status.Errorf(codes.InvalidArgument, "status must be one of %v", constants.AllStatuses())
	}

	items, err := s.wf.ListInboxByStatus(ctx, userID, canonical)
	if err != nil {
		return nil, common.ToStatusError(err)
	}

	out := make([]*v1.InboxItem, 0, len(items))
	for _, item := range items {
		out = append(out, utils.ToPBInboxItem(item))
	}
	return &v1.ListInboxResponse{Items: out}, nil
}

func (s *InboxService) ProcessOcrResult(ctx context.Context, req *v1.ProcessOcrResultRequest) (*v1.InboxItemResponse, error) {
	itemID, err := parseUUIDField(req.GetItemId(), "item_id")
	if err != nil {
		return nil, err
	}

	if req.GetFailureReason() != "" {
		item, err := s.wf.MarkOCRFailed(ctx, itemID, req.GetFailureReason())
		if err != nil {
			return nil, common.ToStatusError(err)
		}
		return &v1.InboxItemResponse{Item: utils.ToPBInboxItem(item)}, nil
	}

	if strings.TrimSpace(req.GetOcrResults()) == "" {
		return nil, status.Error(codes.InvalidArgument, "ocr_results or failure_reason is required")
	}
	item, err := s.wf.ApplyOCRResult(ctx, itemID, req.GetOcrResults())
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &v1.InboxItemResponse{Item: utils.ToPBInboxItem(item)}, nil
}

func (s *InboxService) RetryOcr(ctx context.Context, req *v1.RetryOcrRequest) (*v1.InboxItemResponse, error) {
	itemID, err := parseUUIDField(req.GetItemId(), "item_id")
	if err != nil {
		return nil, err
	}
	item, err := s.wf.RetryOCR(ctx, itemID)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &v1.InboxItemResponse{Item: utils.ToPBInboxItem(item)}, nil
}

func (s *InboxService) Reject(ctx context.Context, req *v1.RejectRequest) (*v1.InboxItemResponse, error) {
	itemID, err := parseUUIDField(req.GetItemId(), "item_id")
	if err != nil {
		return nil, err
	}
	reason := strings.TrimSpace(req.GetReason())
	if reason == "" {
		return nil, status.Error(codes.InvalidArgument, "reason is required")
	}
	item, err := s.wf.Reject(ctx, itemID, reason)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &v1.InboxItemResponse{Item: utils.ToPBInboxItem(item)}, nil
}

func parseUUIDField(raw, field string) (uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s must be a UUID", field)
	}
	return id, nil
}
