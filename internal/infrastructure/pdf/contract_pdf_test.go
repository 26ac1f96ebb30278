package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/jhoicas/hareware-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateContractPDF(t *testing.T) {
	start := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	paid := start
	contract := &entity.Contract{
		ID: 42, CompanyID: 1, Plan: 3, TermDays: 30,
		StartDate: start, EndDate: start.AddDate(0, 0, 30),
		LastPaymentDate: &paid, Paid: true, Active: true,
	}
	company := &entity.Company{
		ID: 1, TradeName: "Mercado Bom", LegalName: "Mercado Bom Ltda",
		CNPJ: "12345678000195", Email: "contato@mercadobom.com.br",
	}
	g := &MarotoContractPDF{Now: func() time.Time { return start }}

	doc, err := g.GenerateContractPDF(contract, company)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestGenerateContractPDF_RequiresCompany(t *testing.T) {
	_, err := NewMarotoContractPDF().GenerateContractPDF(&entity.Contract{ID: 1}, nil)
	assert.Error(t, err)
}

func TestYesNo(t *testing.T) {
	assert.Equal(t, "Pago", yesNo(true, "Pago", "Pendente"))
	assert.Equal(t, "Pendente", yesNo(false, "Pago", "Pendente"))
}
