package server

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/docledger/docledger/gen/proto/docledger/v1"
	"github.com/docledger/docledger/internal/common"
	"github.com/docledger/docledger/internal/export"
	"github.com/docledger/docledger/internal/repository"
	"github.com/docledger/docledger/internal/utils"
	"github.com/docledger/docledger/internal/workflow"
)

// LedgerService exposes approval into the ledger plus ledger queries.
type LedgerService struct {
	v1.UnimplementedLedgerServiceServer
	wf       *workflow.Workflow
	bills    repository.BillRepository
	receipts repository.ReceiptRepository
	exporter *export.Service
	logger   *slog.Logger
}

func NewLedgerService(wf *workflow.Workflow, bills repository.BillRepository, receipts repository.ReceiptRepository, exporter *export.Service, logger *slog.Logger) *LedgerService {
	return &LedgerService{
		wf:       wf,
		bills:    bills,
		receipts: receipts,
		exporter: exporter,
		logger:   logger,
	}
}

func (s *LedgerService) ApproveAsBill(ctx context.Context, req *v1.ApproveRequest) (*v1.ApproveAsBillResponse, error) {
	itemID, providerID, amount, date, err := s.parseApproval(req)
	if err != nil {
		return nil, err
	}

	item, bill, err := s.wf.ApproveAsBill(ctx, itemID, providerID, amount, date, req.GetDescription())
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &v1.ApproveAsBillResponse{
		Item: utils.ToPBInboxItem(item),
		Bill: utils.ToPBBill(bill),
	}, nil
}

func (s *LedgerService) ApproveAsReceipt(ctx context.Context, req *v1.ApproveRequest) (*v1.ApproveAsReceiptResponse, error) {
	itemID, providerID, amount, date, err := s.parseApproval(req)
	if err != nil {
		return nil, err
	}

	item, receipt, err := s.wf.ApproveAsReceipt(ctx, itemID, providerID, amount, date, req.GetDescription())
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &v1.ApproveAsReceiptResponse{
		Item:    utils.ToPBInboxItem(item),
		Receipt: utils.ToPBReceipt(receipt),
	}, nil
}

func (s *LedgerService) RemoveBill(ctx context.Context, req *v1.RemoveLedgerEntityRequest) (*v1.RemoveBillResponse, error) {
	billID, err := parseUUIDField(req.GetId(), "id")
	if err != nil {
		return nil, err
	}
	bill, err := s.wf.RemoveBill(ctx, billID)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &v1.RemoveBillResponse{Bill: utils.ToPBBill(bill)}, nil
}

func (s *LedgerService) RemoveReceipt(ctx context.Context, req *v1.RemoveLedgerEntityRequest) (*v1.RemoveReceiptResponse, error) {
	receiptID, err := parseUUIDField(req.GetId(), "id")
	if err != nil {
		return nil, err
	}
	receipt, err := s.wf.RemoveReceipt(ctx, receiptID)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &v1.RemoveReceiptResponse{Receipt: utils.ToPBReceipt(receipt)}, nil
}

func (s *LedgerService) ListBills(ctx context.Context, req *v1.ListLedgerRequest) (*v1.ListBillsResponse, error) {
	userID, from, to, err := s.parseListing(req)
	if err != nil {
		return nil, err
	}
	bills, err := s.bills.ListByUser(ctx, userID, from, to)
	if err != nil {
		s.logger.Error("failed to list bills", "user_id", userID, "error", err)
		return nil, status.Errorf(codes.Internal, "list bills: %v", err)
	}
	out := make([]*v1.Bill, 0, len(bills))
	for _, b := range bills {
		out = append(out, utils.ToPBBill(b))
	}
	return &v1.ListBillsResponse{Bills: out}, nil
}

func (s *LedgerService) ListReceipts(ctx context.Context, req *v1.ListLedgerRequest) (*v1.ListReceiptsResponse, error) {
	userID, from, to, err := s.parseListing(req)
	if err != nil {
		return nil, err
	}
	receipts, err := s.receipts.ListByUser(ctx, userID, from, to)
	if err != nil {
		s.logger.Error("failed to list receipts", "user_id", userID, "error", err)
		return nil, status.Errorf(codes.Internal, "list receipts: %v", err)
	}
	out := make([]*v1.Receipt, 0, len(receipts))
	for _, r := range receipts {
		out = append(out, utils.ToPBReceipt(r))
	}
	return &v1.ListReceiptsResponse{Receipts: out}, nil
}

func (s *LedgerService) ExportLedger(ctx context.Context, req *v1.ListLedgerRequest) (*v1.ExportLedgerResponse, error) {
	userID, from, to, err := s.parseListing(req)
	if err != nil {
		return nil, err
	}
	data, err := s.exporter.ExportLedgerXLSX(ctx, userID, from, to)
	if err != nil {
		s.logger.Error("ledger export failed", "user_id", userID, "error", err)
		return nil, status.Errorf(codes.Internal, "export ledger: %v", err)
	}
	return &v1.ExportLedgerResponse{
		Filename: "ledger-" + time.Now().UTC().Format("20060102") + ".xlsx",
		Content:  data,
	}, nil
}

func (s *LedgerService) parseApproval(req *v1.ApproveRequest) (itemID, providerID uuid.UUID, amount float64, date time.Time, err error) {
	id, err := parseUUIDField(req.GetItemId(), "item_id")
	if err != nil {
		return itemID, providerID, 0, date, err
	}
	pid, err := parseUUIDField(req.GetServiceProviderId(), "service_provider_id")
	if err != nil {
		return itemID, providerID, 0, date, err
	}

	d := strings.TrimSpace(req.GetDate())
	if d == "" {
		return itemID, providerID, 0, date, status.Error(codes.InvalidArgument, "date is required")
	}
	parsed, perr := utils.ParseYMD(d)
	if perr != nil {
		return itemID, providerID, 0, date, status.Errorf(codes.InvalidArgument, "date invalid (YYYY-MM-DD): %v", perr)
	}

	return id, pid, req.GetAmount(), parsed, nil
}

func (s *LedgerService) parseListing(req *v1.ListLedgerRequest) (userID uuid.UUID, from, to *time.Time, err error) {
	id, err := parseUUIDField(req.GetUserId(), "user_id")
	if err != nil {
		return userID, nil, nil, err
	}
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		f, perr := utils.ParseYMD(fd)
		if perr != nil {
			return userID, nil, nil, status.Errorf(codes.InvalidArgument, "from_date invalid (YYYY-MM-DD): %v", perr)
		}
		from = &f
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, perr := utils.ParseYMD(td)
		if perr != nil {
			return userID, nil, nil, status.Errorf(codes.InvalidArgument, "to_date invalid (YYYY-MM-DD): %v", perr)
		}
		to = &t
	}
	return id, from, to, nil
}
