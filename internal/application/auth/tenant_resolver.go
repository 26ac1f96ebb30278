package auth

import (
	"context"

	"github.com/jhoicas/hareware-api/internal/application/ports"
	"github.com/jhoicas/hareware-api/internal/domain"
	"github.com/jhoicas/hareware-api/internal/domain/repository"
)

// TenantResolver obtiene el CNPJ de la empresa del usuario; es el único selector de base de tenant.
type TenantResolver struct {
	uow ports.UnitOfWork
}

// NewTenantResolver construye el resolver.
func NewTenantResolver(uow ports.UnitOfWork) *TenantResolver {
	return &TenantResolver{uow: uow}
}

// Resolve devuelve el CNPJ (solo dígitos) de la empresa dueña del usuario.
func (r *TenantResolver) Resolve(ctx context.Context, username string) (string, error) {
	var taxID string
	err := r.uow.ControlPlane(ctx, func(cp repository.ControlPlane) error {
		user, err := cp.Users.GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrUserNotFound
		}
		company, err := cp.Companies.GetByID(ctx, user.CompanyID)
		if err != nil {
			return err
		}
		if company == nil {
			return domain.ErrCompanyNotFound
		}
		taxID = company.CNPJ
		return nil
	})
	return taxID, err
}
