package ports

import (
	"github.com/jhoicas/hareware-api/internal/domain/entity"
)

// ContractPDFGenerator genera el PDF de un contrato con los datos de la empresa.
type ContractPDFGenerator interface {
	GenerateContractPDF(contract *entity.Contract, company *entity.Company) ([]byte, error)
}
