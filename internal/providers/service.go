package providers

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/docledger/docledger/internal/entity"
	"github.com/docledger/docledger/internal/repository"
)

// Service manages the service provider catalog. Providers are never
// deleted; hiding one keeps historical bills and receipts resolvable while
// removing it from the approval picker.
type Service struct {
	repo   repository.ServiceProviderRepository
	logger *slog.Logger
	now    func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(repo repository.ServiceProviderRepository, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{repo: repo, logger: logger, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Service) Create(ctx context.Context, name string) (entity.ServiceProvider, error) {
	p, err := entity.NewServiceProvider(uuid.New(), name, s.now())
	if err != nil {
		return entity.ServiceProvider{}, err
	}
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return entity.ServiceProvider{}, err
	}
	s.logger.Info("providers.created", "provider_id", created.ID, "name", created.Name)
	return created, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (entity.ServiceProvider, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, includeHidden bool) ([]entity.ServiceProvider, error) {
	return s.repo.List(ctx, includeHidden)
}

func (s *Service) Rename(ctx context.Context, id uuid.UUID, name string) (entity.ServiceProvider, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return entity.ServiceProvider{}, err
	}
	renamed, err := p.UpdateName(name, s.now())
	if err != nil {
		return entity.ServiceProvider{}, err
	}
	return s.repo.Save(ctx, renamed)
}

func (s *Service) Hide(ctx context.Context, id uuid.UUID) (entity.ServiceProvider, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return entity.ServiceProvider{}, err
	}
	hidden, err := p.Hide(s.now())
	if err != nil {
		return entity.ServiceProvider{}, err
	}
	saved, err := s.repo.Save(ctx, hidden)
	if err != nil {
		return entity.ServiceProvider{}, err
	}
	s.logger.Info("providers.hidden", "provider_id", id)
	return saved, nil
}

func (s *Service) Show(ctx context.Context, id uuid.UUID) (entity.ServiceProvider, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return entity.ServiceProvider{}, err
	}
	shown, err := p.Show(s.now())
	if err != nil {
		return entity.ServiceProvider{}, err
	}
	saved, err := s.repo.Save(ctx, shown)
	if err != nil {
		return entity.ServiceProvider{}, err
	}
	s.logger.Info("providers.shown", "provider_id", id)
	return saved, nil
}

// SetCustomFields replaces the provider's free-form metadata blob.
func (s *Service) SetCustomFields(ctx context.Context, id uuid.UUID, fields json.RawMessage) (entity.ServiceProvider, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return entity.ServiceProvider{}, err
	}
	return s.repo.Save(ctx, p.UpdateCustomFields(fields, s.now()))
}
