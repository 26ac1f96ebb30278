package ports

import (
	"context"

	"github.com/jhoicas/hareware-api/internal/domain/repository"
)

// UnitOfWork abre una transacción sobre la base seleccionada y entrega repositorios atados a ella.
// Si fn devuelve error (o entra en pánico) se hace rollback y el error se propaga; si no, commit.
// Los repositorios no deben usarse fuera de fn.
type UnitOfWork interface {
	// ControlPlane opera sobre la base central (empresas, usuarios, contratos, credenciales).
	ControlPlane(ctx context.Context, fn func(repository.ControlPlane) error) error
	// Tenant opera sobre la base aislada del CNPJ dado. Un CNPJ sin base configurada
	// devuelve un error que cumple errors.Is(err, domain.ErrUnknownTenant).
	Tenant(ctx context.Context, taxID string, fn func(repository.Tenant) error) error
}
