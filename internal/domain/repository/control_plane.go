package repository

import (
	"context"
	"time"

	"github.com/jhoicas/hareware-api/internal/domain/entity"
)

// Convención de todos los puertos: una lectura sin fila devuelve (nil, nil);
// Delete devuelve false si el registro no existía.

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id int64) (*entity.Company, error)
	GetByCNPJ(ctx context.Context, cnpj string) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	List(ctx context.Context, limit, offset int) ([]*entity.Company, error)
	DeleteByCNPJ(ctx context.Context, cnpj string) (bool, error)
}

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	ListByCompany(ctx context.Context, companyID int64) ([]*entity.User, error)
	CountByCompany(ctx context.Context, companyID int64) (int, error)
	TouchLastAccess(ctx context.Context, id int64, at time.Time) error
	DeleteByUsername(ctx context.Context, username string) (bool, error)
}

// ContractRepository define el puerto de persistencia para Contract (DIP).
type ContractRepository interface {
	Create(ctx context.Context, contract *entity.Contract) error
	GetByID(ctx context.Context, id int64) (*entity.Contract, error)
	Update(ctx context.Context, contract *entity.Contract) error
	List(ctx context.Context) ([]*entity.Contract, error)
	ListByCompany(ctx context.Context, companyID int64) ([]*entity.Contract, error)
	// DeactivateExpired marca como inactivos los contratos cuyo término es anterior a today.
	DeactivateExpired(ctx context.Context, today time.Time) (int64, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// CredentialRepository define el puerto de persistencia para Credential (DIP).
type CredentialRepository interface {
	Create(ctx context.Context, credential *entity.Credential) error
	GetByID(ctx context.Context, id int64) (*entity.Credential, error)
	GetByIdentifier(ctx context.Context, identifier string) (*entity.Credential, error)
	Update(ctx context.Context, credential *entity.Credential) error
	List(ctx context.Context) ([]*entity.Credential, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ControlPlane agrupa los repositorios de la base compartida, atados a una misma unidad de trabajo.
type ControlPlane struct {
	Companies   CompanyRepository
	Users       UserRepository
	Contracts   ContractRepository
	Credentials CredentialRepository
}
