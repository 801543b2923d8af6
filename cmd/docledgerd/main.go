package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/docledger/docledger/gen/proto/docledger/v1"
	"github.com/docledger/docledger/internal/async"
	"github.com/docledger/docledger/internal/common"
	"github.com/docledger/docledger/internal/export"
	"github.com/docledger/docledger/internal/extract"
	"github.com/docledger/docledger/internal/ingest"
	"github.com/docledger/docledger/internal/ocr"
	processor "github.com/docledger/docledger/internal/pipeline"
	"github.com/docledger/docledger/internal/providers"
	"github.com/docledger/docledger/internal/repository"
	"github.com/docledger/docledger/internal/server"
	"github.com/docledger/docledger/internal/workflow"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	// Repositories
	filesRepo := repository.NewIncomingFileRepository(entc, logger)
	inboxRepo := repository.NewInboxItemRepository(entc, logger)
	billsRepo := repository.NewBillRepository(entc, logger)
	receiptsRepo := repository.NewReceiptRepository(entc, logger)
	providersRepo := repository.NewServiceProviderRepository(entc, logger)

	// Upload + filesystem ingest
	store := ingest.NewDiskStore(cfg.Ingest.StorageDir)
	uploads := ingest.NewUsecase(filesRepo, inboxRepo, store, logger)
	fsIngestor := ingest.NewFSIngestor(uploads, logger)

	// OCR pipeline + worker queue
	ocrClient := ocr.NewClient(ocr.Config{
		Endpoint: cfg.OCR.Endpoint,
		APIKey:   cfg.OCR.APIKey,
		Timeout:  cfg.OCR.Timeout,
	}, logger)
	stage := processor.NewOCRStage(inboxRepo, extract.NewOCRAdapter(ocrClient), logger)
	proc := processor.NewProcessor(logger, stage)
	queue := async.NewProcessorQueue(proc, logger,
		async.WithWorkers(cfg.Ingest.Workers),
		async.WithQueueSize(cfg.Ingest.QueueSize),
		async.WithProcessTimeout(cfg.Ingest.ProcessTimeout),
	)

	// Domain services
	wf := workflow.New(inboxRepo, billsRepo, receiptsRepo, providersRepo, logger, workflow.WithQueue(queue))
	catalog := providers.NewService(providersRepo, logger)
	exporter := export.NewService(billsRepo, receiptsRepo, providersRepo, logger)

	// gRPC server
	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(server.LoggingInterceptor(logger)))

	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	v1.RegisterInboxServiceServer(grpcServer, server.NewInboxService(uploads, fsIngestor, wf, queue, logger))
	v1.RegisterLedgerServiceServer(grpcServer, server.NewLedgerService(wf, billsRepo, receiptsRepo, exporter, logger))
	v1.RegisterProviderServiceServer(grpcServer, server.NewProviderService(catalog, logger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	grpcServer.GracefulStop()
	queue.Shutdown(shutdownCtx)
	logger.Info("stopped")
}
