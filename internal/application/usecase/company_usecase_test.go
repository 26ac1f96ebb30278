package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hareware-api/internal/application/dto"
	"github.com/jhoicas/hareware-api/internal/domain"
)

func TestCompany_CreateNormalizaCNPJ(t *testing.T) {
	e := newEnv(t)
	c := e.companyWithPlan(t, 1)

	assert.Equal(t, sandboxCNPJ, c.CNPJ)
	assert.True(t, c.Status)
	assert.Equal(t, "2026-06-15", c.RegisteredAt.String())
}

func TestCompany_CNPJInvalido(t *testing.T) {
	e := newEnv(t)
	_, err := e.companies.Create(context.Background(), dto.CreateCompanyRequest{CNPJ: "11.111.111/0001-00"})
	assert.ErrorIs(t, err, domain.ErrInvalidCNPJ)

	// CNPJ real con dígitos correctos no necesita sandbox.
	_, err = e.companies.Create(context.Background(), dto.CreateCompanyRequest{CNPJ: "11.222.333/0001-81", TradeName: "X"})
	assert.NoError(t, err)
}

func TestCompany_Duplicado(t *testing.T) {
	e := newEnv(t)
	e.companyWithPlan(t, 1)
	_, err := e.companies.Create(context.Background(), dto.CreateCompanyRequest{CNPJ: sandboxCNPJ})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCompany_UpdateParcialYVacio(t *testing.T) {
	e := newEnv(t)
	e.companyWithPlan(t, 1)
	ctx := context.Background()

	before, err := e.companies.GetByCNPJ(ctx, sandboxCNPJ)
	require.NoError(t, err)

	commits, _ := e.store.Stats()
	same, err := e.companies.Update(ctx, sandboxCNPJ, dto.UpdateCompanyRequest{})
	require.NoError(t, err)
	assert.Equal(t, before, same)

	updated, err := e.companies.Update(ctx, "12.345.678/0001-90", dto.UpdateCompanyRequest{Phone: ptr("1130000000")})
	require.NoError(t, err)
	assert.Equal(t, "1130000000", updated.Phone)
	assert.Equal(t, before.TradeName, updated.TradeName)
	assert.Equal(t, before.Email, updated.Email)

	after, _ := e.store.Stats()
	assert.Equal(t, commits+2, after)

	missing, err := e.companies.Update(ctx, "99999999000199", dto.UpdateCompanyRequest{Phone: ptr("1")})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCompany_DeleteConContratoEsConflicto(t *testing.T) {
	e := newEnv(t)
	e.companyWithPlan(t, 1)
	ctx := context.Background()

	_, err := e.companies.Delete(ctx, sandboxCNPJ)
	assert.ErrorIs(t, err, domain.ErrConflict)

	ok, err := e.companies.Delete(ctx, "99999999000199")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCompany_DeleteYLookup(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, err := e.companies.Create(ctx, dto.CreateCompanyRequest{CNPJ: sandboxCNPJ, TradeName: "Hare"})
	require.NoError(t, err)

	ok, err := e.companies.Delete(ctx, sandboxCNPJ)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := e.companies.GetByCNPJ(ctx, sandboxCNPJ)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCompany_ListPaginado(t *testing.T) {
	e := newEnv(t)
	e.companyWithPlan(t, 1)
	list, err := e.companies.List(context.Background(), dto.PageRequest{Limit: 500})
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
	assert.Equal(t, 100, list.Page.Limit)
}
