package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/docledger/docledger/internal/entity"
	"github.com/docledger/docledger/internal/repository"
)

// Service produces XLSX workbooks from the ledger. Bills and receipts land
// on separate sheets so accounting tools can ingest them independently.
type Service struct {
	bills     repository.BillRepository
	receipts  repository.ReceiptRepository
	providers repository.ServiceProviderRepository
	logger    *slog.Logger
}

func NewService(bills repository.BillRepository, receipts repository.ReceiptRepository, providers repository.ServiceProviderRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{bills: bills, receipts: receipts, providers: providers, logger: logger}
}

// ExportLedgerXLSX returns an XLSX workbook for the user's ledger in a date
// window. If only from is given the window runs to today; if only to is
// given it runs from the beginning; with neither, everything is exported.
func (s *Service) ExportLedgerXLSX(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	fromDate, toDate := normalizeWindow(from, to)

	bills, err := s.bills.ListByUser(ctx, userID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query bills: %w", err)
	}
	receipts, err := s.receipts.ListByUser(ctx, userID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query receipts: %w", err)
	}

	names, err := s.providerNames(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()

	if err := s.writeBillsSheet(f, bills, names); err != nil {
		return nil, err
	}
	if err := s.writeReceiptsSheet(f, receipts, names); err != nil {
		return nil, err
	}

	// Drop the default sheet excelize creates.
	if idx, _ := f.GetSheetIndex("Sheet1"); idx != -1 {
		_ = f.DeleteSheet("Sheet1")
	}
	if idx, _ := f.GetSheetIndex("Bills"); idx != -1 {
		f.SetActiveSheet(idx)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"user_id", userID.String(),
		"bills", len(bills),
		"receipts", len(receipts),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func (s *Service) writeBillsSheet(f *excelize.File, bills []entity.Bill, names map[uuid.UUID]string) error {
	const sheet = "Bills"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"Date", "Service Provider", "Amount", "Description", "State", "From Inbox"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, b := range bills {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, b.Date.Format("2006-01-02"))
		write(2, providerName(names, b.ServiceProviderID))
		write(3, b.Amount)
		write(4, truncate(b.Description, 140))
		write(5, string(b.State))
		write(6, b.CreatedFromInbox())
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 14)
	_ = f.SetColWidth(sheet, "B", "B", 28)
	_ = f.SetColWidth(sheet, "C", "C", 14)
	_ = f.SetColWidth(sheet, "D", "D", 48)
	return nil
}

func (s *Service) writeReceiptsSheet(f *excelize.File, receipts []entity.Receipt, names map[uuid.UUID]string) error {
	const sheet = "Receipts"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"Date", "Service Provider", "Amount", "Description", "State", "From Inbox"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range receipts {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, r.Date.Format("2006-01-02"))
		write(2, providerName(names, r.ServiceProviderID))
		write(3, r.Amount)
		write(4, truncate(r.Description, 140))
		write(5, string(r.State))
		write(6, r.CreatedFromInbox())
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 14)
	_ = f.SetColWidth(sheet, "B", "B", 28)
	_ = f.SetColWidth(sheet, "C", "C", 14)
	_ = f.SetColWidth(sheet, "D", "D", 48)
	return nil
}

func (s *Service) providerNames(ctx context.Context) (map[uuid.UUID]string, error) {
	all, err := s.providers.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("query providers: %w", err)
	}
	names := make(map[uuid.UUID]string, len(all))
	for _, p := range all {
		names[p.ID] = p.Name
	}
	return names, nil
}

func providerName(names map[uuid.UUID]string, id uuid.UUID) string {
	if name, ok := names[id]; ok {
		return name
	}
	return id.String()
}

func normalizeWindow(from, to *time.Time) (*time.Time, *time.Time) {
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	return fromDate, toDate
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
