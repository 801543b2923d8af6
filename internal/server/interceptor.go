package server

import (
	"context"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/docledger/docledger/internal/common"
)

// LoggingInterceptor tags every call with a request id and logs outcome and
// latency.
func LoggingInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		reqID := uuid.New().String()
		ctx = common.WithRequestID(ctx, reqID)
		start := time.Now()

		resp, err := handler(ctx, req)

		attrs := []any{
			"req_id", reqID,
			"method", info.FullMethod,
			"elapsed_ms", time.Since(start).Milliseconds(),
		}
		if err != nil {
			attrs = append(attrs, "code", status.Code(err).String(), "error", err)
			logger.Error("grpc.call", attrs...)
			return resp, err
		}
		logger.Info("grpc.call", attrs...)
		return resp, nil
	}
}
