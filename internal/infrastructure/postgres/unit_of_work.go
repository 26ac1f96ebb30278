package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/hareware-api/internal/application/ports"
	"github.com/jhoicas/hareware-api/internal/domain"
	"github.com/jhoicas/hareware-api/internal/domain/repository"
	"github.com/jhoicas/hareware-api/pkg/config"
)

var _ ports.UnitOfWork = (*UnitOfWork)(nil)

// UnitOfWork implementa ports.UnitOfWork: una transacción por bloque, repositorios atados a ella.
type UnitOfWork struct {
	provider *Provider
}

// NewUnitOfWork construye la unidad de trabajo sobre el proveedor de pools.
func NewUnitOfWork(provider *Provider) *UnitOfWork {
	return &UnitOfWork{provider: provider}
}

// ControlPlane ejecuta fn contra la base compartida.
func (u *UnitOfWork) ControlPlane(ctx context.Context, fn func(repository.ControlPlane) error) error {
	return u.provider.Run(ctx, config.ControlPlaneSelector, func(tx pgx.Tx) error {
		return fn(ControlPlaneRepos(tx))
	})
}

// Tenant ejecuta fn contra la base aislada del CNPJ indicado.
func (u *UnitOfWork) Tenant(ctx context.Context, taxID string, fn func(repository.Tenant) error) error {
	if taxID == config.ControlPlaneSelector {
		return &domain.UnknownTenantError{Selector: taxID}
	}
	return u.provider.Run(ctx, taxID, func(tx pgx.Tx) error {
		return fn(TenantRepos(tx))
	})
}

// ControlPlaneRepos arma los repositorios del plano de control sobre q.
func ControlPlaneRepos(q Querier) repository.ControlPlane {
	return repository.ControlPlane{
		Companies:   NewCompanyRepository(q),
		Users:       NewUserRepository(q),
		Contracts:   NewContractRepository(q),
		Credentials: NewCredentialRepository(q),
	}
}

// TenantRepos arma los repositorios de una base de tenant sobre q.
func TenantRepos(q Querier) repository.Tenant {
	return repository.Tenant{
		Products:         NewProductRepository(q),
		Campaigns:        NewCampaignRepository(q),
		CampaignProducts: NewCampaignProductRepository(q),
		Schedules:        NewCampaignScheduleRepository(q),
	}
}
