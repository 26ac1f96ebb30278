package usecase

import (
	"context"

	"github.com/jhoicas/hareware-api/internal/application/dto"
	"github.com/jhoicas/hareware-api/internal/application/ports"
	"github.com/jhoicas/hareware-api/internal/domain"
	"github.com/jhoicas/hareware-api/internal/domain/entity"
	"github.com/jhoicas/hareware-api/internal/domain/repository"
)

// ContractUseCase gestiona contratos de las empresas.
type ContractUseCase struct {
	uow   ports.UnitOfWork
	pdf   ports.ContractPDFGenerator
	Clock Clock
}

// NewContractUseCase construye el caso de uso. pdf puede ser nil (exportación deshabilitada).
func NewContractUseCase(uow ports.UnitOfWork, pdf ports.ContractPDFGenerator) *ContractUseCase {
	return &ContractUseCase{uow: uow, pdf: pdf}
}

func validPlan(plan int) error {
	if _, ok := entity.PlanSeatLimit(plan); !ok {
		return invalid("plano %d desconocido", plan)
	}
	return nil
}

// Create registra un contrato activo y sin pagar: inicio hoy, término hoy + vigencia.
func (uc *ContractUseCase) Create(ctx context.Context, in dto.CreateContractRequest) (*dto.ContractResponse, error) {
	if err := validPlan(in.Plan); err != nil {
		return nil, err
	}
	if in.TermDays <= 0 {
		return nil, invalid("tempo_vigencia debe ser positivo")
	}
	start, end := entity.ContractWindow(uc.Clock.today(), in.TermDays)
	contract := &entity.Contract{
		CompanyID: in.CompanyID,
		Plan:      in.Plan,
		TermDays:  in.TermDays,
		StartDate: start,
		EndDate:   end,
		Paid:      false,
		Active:    true,
	}
	err := uc.uow.ControlPlane(ctx, func(cp repository.ControlPlane) error {
		company, err := cp.Companies.GetByID(ctx, in.CompanyID)
		if err != nil {
			return err
		}
		if company == nil {
			return domain.ErrCompanyNotFound
		}
		return cp.Contracts.Create(ctx, contract)
	})
	if err != nil {
		return nil, err
	}
	return toContractResponse(contract), nil
}

// Get obtiene un contrato; (nil, nil) si no existe.
func (uc *ContractUseCase) Get(ctx context.Context, id int64) (*dto.ContractResponse, error) {
	var contract *entity.Contract
	err := uc.uow.ControlPlane(ctx, func(cp repository.ControlPlane) error {
		var err error
		contract, err = cp.Contracts.GetByID(ctx, id)
		return err
	})
	if err != nil || contract == nil {
		return nil, err
	}
	return toContractResponse(contract), nil
}

// Update aplica solo los campos enviados. Una nueva vigencia reinicia la ventana desde hoy;
// pago=true registra hoy como fecha del último pago. (nil, nil) si no existe.
func (uc *ContractUseCase) Update(ctx context.Context, id int64, in dto.UpdateContractRequest) (*dto.ContractResponse, error) {
	if in.Plan != nil {
		if err := validPlan(*in.Plan); err != nil {
			return nil, err
		}
	}
	if in.TermDays != nil && *in.TermDays <= 0 {
		return nil, invalid("tempo_vigencia debe ser positivo")
	}
	today := uc.Clock.today()

	var contract *entity.Contract
	err := uc.uow.ControlPlane(ctx, func(cp repository.ControlPlane) error {
		var err error
		contract, err = cp.Contracts.GetByID(ctx, id)
		if err != nil || contract == nil || in.IsEmpty() {
			return err
		}
		if in.Plan != nil {
			contract.Plan = *in.Plan
		}
		if in.TermDays != nil {
			contract.TermDays = *in.TermDays
			contract.StartDate, contract.EndDate = entity.ContractWindow(today, *in.TermDays)
		}
		if in.Paid != nil {
			contract.Paid = *in.Paid
			if *in.Paid {
				paidOn := today
				contract.LastPaymentDate = &paidOn
			}
		}
		if in.Status != nil {
			contract.Active = *in.Status
		}
		return cp.Contracts.Update(ctx, contract)
	})
	if err != nil || contract == nil {
		return nil, err
	}
	return toContractResponse(contract), nil
}

// Delete elimina un contrato; false si no existía.
func (uc *ContractUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	err := uc.uow.ControlPlane(ctx, func(cp repository.ControlPlane) error {
		var err error
		deleted, err = cp.Contracts.Delete(ctx, id)
		return err
	})
	return deleted, err
}

// List lista todos los contratos.
func (uc *ContractUseCase) List(ctx context.Context) ([]dto.ContractResponse, error) {
	var list []*entity.Contract
	err := uc.uow.ControlPlane(ctx, func(cp repository.ControlPlane) error {
		var err error
		list, err = cp.Contracts.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toContractResponses(list), nil
}

// ListByCompany lista los contratos de una empresa. ErrCompanyNotFound si no existe.
func (uc *ContractUseCase) ListByCompany(ctx context.Context, companyID int64) ([]dto.ContractResponse, error) {
	var list []*entity.Contract
	err := uc.uow.ControlPlane(ctx, func(cp repository.ControlPlane) error {
		company, err := cp.Companies.GetByID(ctx, companyID)
		if err != nil {
			return err
		}
		if company == nil {
			return domain.ErrCompanyNotFound
		}
		list, err = cp.Contracts.ListByCompany(ctx, companyID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toContractResponses(list), nil
}

// ExportPDF genera el PDF del contrato con los datos de su empresa.
func (uc *ContractUseCase) ExportPDF(ctx context.Context, id int64) ([]byte, error) {
	if uc.pdf == nil {
		return nil, &domain.UpstreamError{Service: "pdf", Message: "exportación de PDF no configurada"}
	}
	var (
		contract *entity.Contract
		company  *entity.Company
	)
	err := uc.uow.ControlPlane(ctx, func(cp repository.ControlPlane) error {
		var err error
		contract, err = cp.Contracts.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if contract == nil {
			return notFound("contrato", id)
		}
		company, err = cp.Companies.GetByID(ctx, contract.CompanyID)
		if err != nil {
			return err
		}
		if company == nil {
			return domain.ErrCompanyNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateContractPDF(contract, company)
}

// DeactivateExpired desactiva los contratos cuyo término ya pasó. Devuelve cuántos cambió.
func (uc *ContractUseCase) DeactivateExpired(ctx context.Context) (int64, error) {
	var n int64
	err := uc.uow.ControlPlane(ctx, func(cp repository.ControlPlane) error {
		var err error
		n, err = cp.Contracts.DeactivateExpired(ctx, uc.Clock.today())
		return err
	})
	return n, err
}

func toContractResponses(list []*entity.Contract) []dto.ContractResponse {
	out := make([]dto.ContractResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toContractResponse(c))
	}
	return out
}

func toContractResponse(c *entity.Contract) *dto.ContractResponse {
	return &dto.ContractResponse{
		ID:              c.ID,
		CompanyID:       c.CompanyID,
		Plan:            c.Plan,
		TermDays:        c.TermDays,
		StartDate:       dto.NewDate(c.StartDate),
		EndDate:         dto.NewDate(c.EndDate),
		LastPaymentDate: dto.NewDatePtr(c.LastPaymentDate),
		Paid:            c.Paid,
		Status:          c.Active,
	}
}
