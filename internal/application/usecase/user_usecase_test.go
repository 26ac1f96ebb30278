package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hareware-api/internal/application/dto"
	"github.com/jhoicas/hareware-api/internal/domain"
)

func TestUser_LimiteDelPlan(t *testing.T) {
	e := newEnv(t)
	c := e.companyWithPlan(t, 2) // 3 usuarios
	ctx := context.Background()

	for _, u := range []string{"ana", "bia", "caio"} {
		_, err := e.users.Create(ctx, newUser(c.ID, u))
		require.NoError(t, err, u)
	}
	_, err := e.users.Create(ctx, newUser(c.ID, "duda"))
	assert.ErrorIs(t, err, domain.ErrSeatLimitReached)

	list, err := e.users.ListByCompany(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestUser_SinContratoVigente(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	c, err := e.companies.Create(ctx, dto.CreateCompanyRequest{CNPJ: sandboxCNPJ, TradeName: "Hare"})
	require.NoError(t, err)

	_, err = e.users.Create(ctx, newUser(c.ID, "ana"))
	assert.ErrorIs(t, err, domain.ErrNoActiveContract)
}

func TestUser_EmpresaInexistenteYUsernameRepetido(t *testing.T) {
	e := newEnv(t)
	c := e.companyWithPlan(t, 3)
	ctx := context.Background()

	_, err := e.users.Create(ctx, newUser(999, "ana"))
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)

	_, err = e.users.Create(ctx, newUser(c.ID, "ana"))
	require.NoError(t, err)
	_, err = e.users.Create(ctx, newUser(c.ID, "ana"))
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestUser_UpdateRenombraYRehashea(t *testing.T) {
	e := newEnv(t)
	c := e.companyWithPlan(t, 3)
	ctx := context.Background()
	_, err := e.users.Create(ctx, newUser(c.ID, "ana"))
	require.NoError(t, err)
	_, err = e.users.Create(ctx, newUser(c.ID, "bia"))
	require.NoError(t, err)

	_, err = e.users.Update(ctx, "ana", dto.UpdateUserRequest{Username: ptr("bia")})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	updated, err := e.users.Update(ctx, "ana", dto.UpdateUserRequest{Username: ptr("ana.silva"), Password: ptr("nova-senha")})
	require.NoError(t, err)
	assert.Equal(t, "ana.silva", updated.Username)
	assert.Equal(t, "ana@hare.com", updated.Email)

	old, err := e.users.GetByUsername(ctx, "ana")
	require.NoError(t, err)
	assert.Nil(t, old)
}

func TestUser_UpdateVacioEsNoop(t *testing.T) {
	e := newEnv(t)
	c := e.companyWithPlan(t, 1)
	ctx := context.Background()
	created, err := e.users.Create(ctx, newUser(c.ID, "ana"))
	require.NoError(t, err)

	same, err := e.users.Update(ctx, "ana", dto.UpdateUserRequest{})
	require.NoError(t, err)
	assert.Equal(t, created, same)
}

func TestUser_NivelDeAccesoFueraDeRango(t *testing.T) {
	e := newEnv(t)
	c := e.companyWithPlan(t, 1)
	in := newUser(c.ID, "ana")
	in.AccessLevel = 9
	_, err := e.users.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUser_Delete(t *testing.T) {
	e := newEnv(t)
	c := e.companyWithPlan(t, 1)
	ctx := context.Background()
	_, err := e.users.Create(ctx, newUser(c.ID, "ana"))
	require.NoError(t, err)

	ok, err := e.users.Delete(ctx, "ana")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = e.users.Delete(ctx, "ana")
	require.NoError(t, err)
	assert.False(t, ok)
}
