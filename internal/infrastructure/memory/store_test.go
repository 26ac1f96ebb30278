package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hareware-api/internal/domain"
	"github.com/jhoicas/hareware-api/internal/domain/entity"
	"github.com/jhoicas/hareware-api/internal/domain/repository"
	"github.com/jhoicas/hareware-api/internal/infrastructure/memory"
)

const taxID = "12345678000190"

func TestControlPlane_RollbackDescartaCambios(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.ControlPlane(ctx, func(cp repository.ControlPlane) error {
		require.NoError(t, cp.Companies.Create(ctx, &entity.Company{CNPJ: taxID, Active: true}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_ = s.ControlPlane(ctx, func(cp repository.ControlPlane) error {
		c, err := cp.Companies.GetByCNPJ(ctx, taxID)
		require.NoError(t, err)
		assert.Nil(t, c)
		return nil
	})
	commits, rollbacks := s.Stats()
	assert.Equal(t, 1, commits)
	assert.Equal(t, 1, rollbacks)
}

func TestControlPlane_PanicHaceRollbackYRelanza(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()

	assert.PanicsWithValue(t, "fallo", func() {
		_ = s.ControlPlane(ctx, func(cp repository.ControlPlane) error {
			_ = cp.Companies.Create(ctx, &entity.Company{CNPJ: taxID})
			panic("fallo")
		})
	})

	_, rollbacks := s.Stats()
	assert.Equal(t, 1, rollbacks)
	_ = s.ControlPlane(ctx, func(cp repository.ControlPlane) error {
		list, _ := cp.Companies.List(ctx, 10, 0)
		assert.Empty(t, list)
		return nil
	})
}

func TestTenant_Desconocido(t *testing.T) {
	s := memory.NewStore()
	err := s.Tenant(context.Background(), "999", func(repository.Tenant) error { return nil })
	assert.ErrorIs(t, err, domain.ErrUnknownTenant)
}

func TestTenant_CascadaCampanha(t *testing.T) {
	s := memory.NewStore(taxID)
	ctx := context.Background()

	err := s.Tenant(ctx, taxID, func(tn repository.Tenant) error {
		p := &entity.Product{Name: "Café", Code: "CAF-1", UnitMeasure: entity.UnitKg}
		require.NoError(t, tn.Products.Create(ctx, p))
		c := &entity.Campaign{Name: "Verão", StartDate: time.Now(), EndDate: time.Now()}
		require.NoError(t, tn.Campaigns.Create(ctx, c))
		cp := &entity.CampaignProduct{CampaignID: c.ID, ProductID: p.ID, DisplayFrequency: 2}
		require.NoError(t, tn.CampaignProducts.Create(ctx, cp))

		_, err := tn.Products.Delete(ctx, p.ID)
		assert.ErrorIs(t, err, domain.ErrConflict)

		ok, err := tn.Campaigns.Delete(ctx, c.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		left, err := tn.CampaignProducts.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, left)

		ok, err = tn.Products.Delete(ctx, p.ID)
		require.NoError(t, err)
		assert.True(t, ok)
		return nil
	})
	require.NoError(t, err)
}

func TestTenant_CampanhaConAgendamientoNoSeBorra(t *testing.T) {
	s := memory.NewStore(taxID)
	ctx := context.Background()

	err := s.Tenant(ctx, taxID, func(tn repository.Tenant) error {
		p := &entity.Product{Code: "X"}
		require.NoError(t, tn.Products.Create(ctx, p))
		c := &entity.Campaign{Name: "C"}
		require.NoError(t, tn.Campaigns.Create(ctx, c))
		cp := &entity.CampaignProduct{CampaignID: c.ID, ProductID: p.ID}
		require.NoError(t, tn.CampaignProducts.Create(ctx, cp))
		require.NoError(t, tn.Schedules.Create(ctx, &entity.CampaignSchedule{CampaignProductID: cp.ID, Time: "10:00:00"}))

		_, err := tn.Campaigns.Delete(ctx, c.ID)
		assert.ErrorIs(t, err, domain.ErrConflict)
		return nil
	})
	require.NoError(t, err)
}

func TestUnicos(t *testing.T) {
	s := memory.NewStore(taxID)
	ctx := context.Background()

	_ = s.ControlPlane(ctx, func(cp repository.ControlPlane) error {
		c := &entity.Company{CNPJ: taxID}
		require.NoError(t, cp.Companies.Create(ctx, c))
		assert.ErrorIs(t, cp.Companies.Create(ctx, &entity.Company{CNPJ: taxID}), domain.ErrDuplicate)

		require.NoError(t, cp.Users.Create(ctx, &entity.User{Username: "ana", CompanyID: c.ID}))
		assert.ErrorIs(t, cp.Users.Create(ctx, &entity.User{Username: "ana", CompanyID: c.ID}), domain.ErrDuplicate)
		assert.ErrorIs(t, cp.Users.Create(ctx, &entity.User{Username: "bia", CompanyID: 999}), domain.ErrConflict)
		return nil
	})

	_ = s.Tenant(ctx, taxID, func(tn repository.Tenant) error {
		require.NoError(t, tn.Products.Create(ctx, &entity.Product{Code: "A"}))
		assert.ErrorIs(t, tn.Products.Create(ctx, &entity.Product{Code: "A"}), domain.ErrDuplicate)
		return nil
	})
}

func TestDeactivateExpired(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	today := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)

	_ = s.ControlPlane(ctx, func(cp repository.ControlPlane) error {
		c := &entity.Company{CNPJ: taxID}
		require.NoError(t, cp.Companies.Create(ctx, c))
		require.NoError(t, cp.Contracts.Create(ctx, &entity.Contract{CompanyID: c.ID, EndDate: today.AddDate(0, 0, -1), Active: true}))
		require.NoError(t, cp.Contracts.Create(ctx, &entity.Contract{CompanyID: c.ID, EndDate: today, Active: true}))

		n, err := cp.Contracts.DeactivateExpired(ctx, today)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		return nil
	})
}
