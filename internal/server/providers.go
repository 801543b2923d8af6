package server

import (
	"context"
	"encoding/json"
	"strings"

	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/docledger/docledger/gen/proto/docledger/v1"
	"github.com/docledger/docledger/internal/common"
	"github.com/docledger/docledger/internal/providers"
	"github.com/docledger/docledger/internal/utils"
)

// ProviderService exposes the service provider catalog.
type ProviderService struct {
	v1.UnimplementedProviderServiceServer
	catalog *providers.Service
	logger  *slog.Logger
}

func NewProviderService(catalog *providers.Service, logger *slog.Logger) *ProviderService {
	return &ProviderService{catalog: catalog, logger: logger}
}

func (s *ProviderService) CreateProvider(ctx context.Context, req *v1.CreateProviderRequest) (*v1.ProviderResponse, error) {
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}
	p, err := s.catalog.Create(ctx, name)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &v1.ProviderResponse{Provider: utils.ToPBServiceProvider(p)}, nil
}

func (s *ProviderService) ListProviders(ctx context.Context, req *v1.ListProvidersRequest) (*v1.ListProvidersResponse, error) {
	ps, err := s.catalog.List(ctx, req.GetIncludeHidden())
	if err != nil {
		s.logger.Error("failed to list providers", "error", err)
		return nil, status.Errorf(codes.Internal, "list providers: %v", err)
	}
	out := make([]*v1.ServiceProvider, 0, len(ps))
	for _, p := range ps {
		out = append(out, utils.ToPBServiceProvider(p))
	}
	return &v1.ListProvidersResponse{Providers: out}, nil
}

func (s *ProviderService) RenameProvider(ctx context.Context, req *v1.RenameProviderRequest) (*v1.ProviderResponse, error) {
	id, err := parseUUIDField(req.GetId(), "id")
	if err != nil {
		return nil, err
	}
	p, err := s.catalog.Rename(ctx, id, req.GetName())
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &v1.ProviderResponse{Provider: utils.ToPBServiceProvider(p)}, nil
}

func (s *ProviderService) HideProvider(ctx context.Context, req *v1.ProviderIdRequest) (*v1.ProviderResponse, error) {
	id, err := parseUUIDField(req.GetId(), "id")
	if err != nil {
		return nil, err
	}
	p, err := s.catalog.Hide(ctx, id)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &v1.ProviderResponse{Provider: utils.ToPBServiceProvider(p)}, nil
}

func (s *ProviderService) ShowProvider(ctx context.Context, req *v1.ProviderIdRequest) (*v1.ProviderResponse, error) {
	id, err := parseUUIDField(req.GetId(), "id")
	if err != nil {
		return nil, err
	}
	p, err := s.catalog.Show(ctx, id)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &v1.ProviderResponse{Provider: utils.ToPBServiceProvider(p)}, nil
}

func (s *ProviderService) SetCustomFields(ctx context.Context, req *v1.SetCustomFieldsRequest) (*v1.ProviderResponse, error) {
	id, err := parseUUIDField(req.GetId(), "id")
	if err != nil {
		return nil, err
	}
	fields := req.GetCustomFields()
	if fields != "" && !json.Valid([]byte(fields)) {
		return nil, status.Error(codes.InvalidArgument, "custom_fields must be valid JSON")
	}
	p, err := s.catalog.SetCustomFields(ctx, id, json.RawMessage(fields))
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &v1.ProviderResponse{Provider: utils.ToPBServiceProvider(p)}, nil
}
