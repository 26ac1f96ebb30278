package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hareware-api/internal/application/dto"
	"github.com/jhoicas/hareware-api/internal/application/usecase"
	"github.com/jhoicas/hareware-api/internal/domain"
	"github.com/jhoicas/hareware-api/internal/infrastructure/memory"
)

func TestContract_CreateCalculaVentana(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	c, err := e.companies.Create(ctx, dto.CreateCompanyRequest{CNPJ: sandboxCNPJ, TradeName: "Hare"})
	require.NoError(t, err)

	k, err := e.contracts.Create(ctx, dto.CreateContractRequest{CompanyID: c.ID, Plan: 2, TermDays: 30})
	require.NoError(t, err)
	assert.Equal(t, "2026-06-15", k.StartDate.String())
	assert.Equal(t, "2026-07-15", k.EndDate.String())
	assert.False(t, k.Paid)
	assert.True(t, k.Status)
	assert.Nil(t, k.LastPaymentDate)
}

func TestContract_Validaciones(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.contracts.Create(ctx, dto.CreateContractRequest{CompanyID: 1, Plan: 99, TermDays: 30})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = e.contracts.Create(ctx, dto.CreateContractRequest{CompanyID: 1, Plan: 1, TermDays: 30})
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
}

func TestContract_UpdatePagoYVigencia(t *testing.T) {
	e := newEnv(t)
	c := e.companyWithPlan(t, 1)
	ctx := context.Background()
	list, err := e.contracts.ListByCompany(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	id := list[0].ID

	k, err := e.contracts.Update(ctx, id, dto.UpdateContractRequest{Paid: ptr(true)})
	require.NoError(t, err)
	require.NotNil(t, k.LastPaymentDate)
	assert.Equal(t, "2026-06-15", k.LastPaymentDate.String())
	assert.Equal(t, "2026-07-15", k.EndDate.String())

	k, err = e.contracts.Update(ctx, id, dto.UpdateContractRequest{TermDays: ptr(365)})
	require.NoError(t, err)
	assert.Equal(t, 365, k.TermDays)
	assert.Equal(t, "2027-06-15", k.EndDate.String())
	assert.True(t, k.Paid)

	missing, err := e.contracts.Update(ctx, 999, dto.UpdateContractRequest{Paid: ptr(true)})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestContract_ExportPDF(t *testing.T) {
	e := newEnv(t)
	c := e.companyWithPlan(t, 1)
	ctx := context.Background()
	list, _ := e.contracts.ListByCompany(ctx, c.ID)

	pdf, err := e.contracts.ExportPDF(ctx, list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-"+sandboxCNPJ, string(pdf))

	_, err = e.contracts.ExportPDF(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContract_ExportPDFSinGenerador(t *testing.T) {
	uc := usecase.NewContractUseCase(memory.NewStore(), nil)

	_, err := uc.ExportPDF(context.Background(), 1)
	var upErr *domain.UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, "pdf", upErr.Service)
}

func TestContract_DeactivateExpired(t *testing.T) {
	e := newEnv(t)
	c := e.companyWithPlan(t, 1)
	ctx := context.Background()

	n, err := e.contracts.DeactivateExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	e.contracts.Clock = func() time.Time { return fixedNow.AddDate(0, 0, 31) }
	n, err = e.contracts.DeactivateExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	list, _ := e.contracts.ListByCompany(ctx, c.ID)
	assert.False(t, list[0].Status)

	_, err = e.users.Create(ctx, newUser(c.ID, "ana"))
	assert.ErrorIs(t, err, domain.ErrNoActiveContract)
}
