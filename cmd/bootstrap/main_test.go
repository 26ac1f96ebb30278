package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hareware-api/internal/application/dto"
	"github.com/jhoicas/hareware-api/internal/application/usecase"
	"github.com/jhoicas/hareware-api/internal/infrastructure/memory"
	"github.com/jhoicas/hareware-api/pkg/logger"
)

func testFlags() adminFlags {
	return adminFlags{
		company: dto.CreateCompanyRequest{
			CNPJ: "11.222.333/0001-81", TradeName: "HareWare", LegalName: "HareWare Tecnologia Ltda",
			Address: "Av. Central 100", Phone: "1130000000",
		},
		plan: 5, termDays: 365,
		name: "Administrador", username: "admin", email: "admin@hareware.com",
	}
}

func TestSeedAdmin_IsIdempotent(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	require.NoError(t, seedAdmin(ctx, store, nil, testFlags(), "segredo-1", logger.Nop()))
	require.NoError(t, seedAdmin(ctx, store, nil, testFlags(), "segredo-1", logger.Nop()))

	company, err := usecase.NewCompanyUseCase(store, nil).GetByCNPJ(ctx, "11222333000181")
	require.NoError(t, err)
	require.NotNil(t, company)
	assert.Equal(t, "admin@hareware.com", company.Email)

	contracts, err := usecase.NewContractUseCase(store, nil).ListByCompany(ctx, company.ID)
	require.NoError(t, err)
	assert.Len(t, contracts, 1)

	admin, err := usecase.NewUserUseCase(store).GetByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, 3, admin.AccessLevel)
	assert.Equal(t, company.ID, admin.CompanyID)
}

func TestSeedAdmin_InvalidCNPJ(t *testing.T) {
	f := testFlags()
	f.company.CNPJ = "11.222.333/0001-00"
	err := seedAdmin(context.Background(), memory.NewStore(), nil, f, "segredo-1", logger.Nop())
	assert.Error(t, err)
}
