package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/hareware-api/internal/application/dto"
	"github.com/jhoicas/hareware-api/internal/application/ports"
	"github.com/jhoicas/hareware-api/internal/domain"
	"github.com/jhoicas/hareware-api/internal/domain/entity"
	"github.com/jhoicas/hareware-api/internal/domain/repository"
	"github.com/jhoicas/hareware-api/pkg/cnpj"
)

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	uow     ports.UnitOfWork
	sandbox map[string]struct{}
	Clock   Clock
}

// NewCompanyUseCase construye el caso de uso. sandbox lista CNPJ aceptados sin dígito verificador.
func NewCompanyUseCase(uow ports.UnitOfWork, sandbox []string) *CompanyUseCase {
	set := make(map[string]struct{}, len(sandbox))
	for _, s := range sandbox {
		set[cnpj.Normalize(s)] = struct{}{}
	}
	return &CompanyUseCase{uow: uow, sandbox: set}
}

// NormalizeCNPJ valida el CNPJ y lo devuelve solo con dígitos.
func (uc *CompanyUseCase) NormalizeCNPJ(raw string) (string, error) {
	digits := cnpj.Normalize(raw)
	if _, ok := uc.sandbox[digits]; ok {
		if err := cnpj.ValidateFormat(digits); err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrInvalidCNPJ, err)
		}
		return digits, nil
	}
	if err := cnpj.Validate(digits); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidCNPJ, err)
	}
	return digits, nil
}

// lookupKey normaliza un CNPJ de ruta; solo exige 14 dígitos.
func lookupKey(raw string) (string, error) {
	digits := cnpj.Normalize(raw)
	if len(digits) != 14 {
		return "", fmt.Errorf("%w: se esperaban 14 dígitos", domain.ErrInvalidCNPJ)
	}
	return digits, nil
}

// Create registra una empresa activa. Devuelve domain.ErrDuplicate si el CNPJ ya existe.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	digits, err := uc.NormalizeCNPJ(in.CNPJ)
	if err != nil {
		return nil, err
	}
	company := &entity.Company{
		TradeName:    in.TradeName,
		LegalName:    in.LegalName,
		CNPJ:         digits,
		Address:      in.Address,
		Phone:        in.Phone,
		Email:        in.Email,
		RegisteredAt: uc.Clock.today(),
		Active:       true,
	}
	err = uc.uow.ControlPlane(ctx, func(cp repository.ControlPlane) error {
		existing, err := cp.Companies.GetByCNPJ(ctx, digits)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: CNPJ %s ya registrado", domain.ErrDuplicate, digits)
		}
		return cp.Companies.Create(ctx, company)
	})
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByCNPJ obtiene una empresa; (nil, nil) si no existe.
func (uc *CompanyUseCase) GetByCNPJ(ctx context.Context, raw string) (*dto.CompanyResponse, error) {
	digits, err := lookupKey(raw)
	if err != nil {
		return nil, err
	}
	var company *entity.Company
	err = uc.uow.ControlPlane(ctx, func(cp repository.ControlPlane) error {
		company, err = cp.Companies.GetByCNPJ(ctx, digits)
		return err
	})
	if err != nil || company == nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Update aplica solo los campos enviados; un patch vacío no escribe. (nil, nil) si no existe.
func (uc *CompanyUseCase) Update(ctx context.Context, raw string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	digits, err := lookupKey(raw)
	if err != nil {
		return nil, err
	}
	var company *entity.Company
	err = uc.uow.ControlPlane(ctx, func(cp repository.ControlPlane) error {
		company, err = cp.Companies.GetByCNPJ(ctx, digits)
		if err != nil || company == nil || in.IsEmpty() {
			return err
		}
		if in.TradeName != nil {
			company.TradeName = *in.TradeName
		}
		if in.LegalName != nil {
			company.LegalName = *in.LegalName
		}
		if in.Address != nil {
			company.Address = *in.Address
		}
		if in.Phone != nil {
			company.Phone = *in.Phone
		}
		if in.Email != nil {
			company.Email = *in.Email
		}
		if in.Status != nil {
			company.Active = *in.Status
		}
		return cp.Companies.Update(ctx, company)
	})
	if err != nil || company == nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Delete elimina la empresa. false si no existía; ErrConflict si aún tiene usuarios o contratos.
func (uc *CompanyUseCase) Delete(ctx context.Context, raw string) (bool, error) {
	digits, err := lookupKey(raw)
	if err != nil {
		return false, err
	}
	var deleted bool
	err = uc.uow.ControlPlane(ctx, func(cp repository.ControlPlane) error {
		deleted, err = cp.Companies.DeleteByCNPJ(ctx, digits)
		return err
	})
	return deleted, err
}

// List lista empresas con paginación.
func (uc *CompanyUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.CompanyListResponse, error) {
	page.DefaultPage()
	var list []*entity.Company
	err := uc.uow.ControlPlane(ctx, func(cp repository.ControlPlane) error {
		var err error
		list, err = cp.Companies.List(ctx, page.Limit, page.Offset)
		return err
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:           c.ID,
		TradeName:    c.TradeName,
		LegalName:    c.LegalName,
		CNPJ:         c.CNPJ,
		Address:      c.Address,
		Phone:        c.Phone,
		Email:        c.Email,
		RegisteredAt: dto.NewDate(c.RegisteredAt),
		Status:       c.Active,
	}
}
