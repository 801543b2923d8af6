package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docledger/docledger/constants"
	"github.com/docledger/docledger/gen/ent"
	entprovider "github.com/docledger/docledger/gen/ent/serviceprovider"
	"github.com/docledger/docledger/internal/common"
	"github.com/docledger/docledger/internal/entity"
)

// ServiceProviderRepository is the catalog lookup the workflow depends on.
type ServiceProviderRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (entity.ServiceProvider, error)
	Create(ctx context.Context, p entity.ServiceProvider) (entity.ServiceProvider, error)
	Save(ctx context.Context, p entity.ServiceProvider) (entity.ServiceProvider, error)
	List(ctx context.Context, includeHidden bool) ([]entity.ServiceProvider, error)
}

type serviceProviderRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewServiceProviderRepository(entc *ent.Client, logger *slog.Logger) ServiceProviderRepository {
	return &serviceProviderRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *serviceProviderRepo) GetByID(ctx context.Context, id uuid.UUID) (entity.ServiceProvider, error) {
	row, err := r.ent.ServiceProvider.Get(ctx, id)
	if ent.IsNotFound(err) {
		return entity.ServiceProvider{}, &common.NotFoundError{Kind: "service provider", ID: id.String()}
	}
	if err != nil {
		return entity.ServiceProvider{}, err
	}
	return toServiceProvider(row), nil
}

func (r *serviceProviderRepo) Create(ctx context.Context, p entity.ServiceProvider) (entity.ServiceProvider, error) {
	create := r.ent.ServiceProvider.Create().
		SetID(p.ID).
		SetName(p.Name).
		SetComment(p.Comment).
		SetCommentForOcr(p.CommentForOCR).
		SetRegular(string(p.Regular)).
		SetState(string(p.State)).
		SetCreatedDate(p.CreatedDate).
		SetModifiedDate(p.ModifiedDate)
	if p.Avatar != nil {
		create.SetAvatar(*p.Avatar)
	}
	if p.CustomFields != nil {
		create.SetCustomFields(p.CustomFields)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create service provider", "name", p.Name, "error", err)
		return entity.ServiceProvider{}, err
	}
	return toServiceProvider(row), nil
}

func (r *serviceProviderRepo) Save(ctx context.Context, p entity.ServiceProvider) (entity.ServiceProvider, error) {
	up := r.ent.ServiceProvider.UpdateOneID(p.ID).
		SetName(p.Name).
		SetComment(p.Comment).
		SetCommentForOcr(p.CommentForOCR).
		SetRegular(string(p.Regular)).
		SetState(string(p.State)).
		SetModifiedDate(p.ModifiedDate)
	if p.Avatar != nil {
		up.SetAvatar(*p.Avatar)
	} else {
		up.ClearAvatar()
	}
	if p.CustomFields != nil {
		up.SetCustomFields(p.CustomFields)
	} else {
		up.ClearCustomFields()
	}
	row, err := up.Save(ctx)
	if ent.IsNotFound(err) {
		return entity.ServiceProvider{}, &common.NotFoundError{Kind: "service provider", ID: p.ID.String()}
	}
	if err != nil {
		r.logger.Error("failed to save service provider", "service_provider_id", p.ID, "error", err)
		return entity.ServiceProvider{}, err
	}
	return toServiceProvider(row), nil
}

func (r *serviceProviderRepo) List(ctx context.Context, includeHidden bool) ([]entity.ServiceProvider, error) {
	q := r.ent.ServiceProvider.Query()
	if !includeHidden {
		q = q.Where(entprovider.State(string(constants.ProviderStateActive)))
	}
	rows, err := q.Order(entprovider.ByName()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list service providers", "error", err)
		return nil, err
	}
	out := make([]entity.ServiceProvider, 0, len(rows))
	for _, row := range rows {
		out = append(out, toServiceProvider(row))
	}
	return out, nil
}
