package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/hareware-api/internal/application/dto"
	"github.com/jhoicas/hareware-api/internal/application/ports"
	"github.com/jhoicas/hareware-api/internal/domain/entity"
	"github.com/jhoicas/hareware-api/internal/domain/repository"
)

// CampaignUseCase CRUD de campañas del tenant.
type CampaignUseCase struct {
	uow ports.UnitOfWork
}

// NewCampaignUseCase construye el caso de uso.
func NewCampaignUseCase(uow ports.UnitOfWork) *CampaignUseCase {
	return &CampaignUseCase{uow: uow}
}

func validWindow(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return invalid("inicio_campanha y fim_campanha son obligatorios")
	}
	if end.Before(start) {
		return invalid("fim_campanha anterior a inicio_campanha")
	}
	return nil
}

// Create crea una campaña; exige fim >= inicio.
func (uc *CampaignUseCase) Create(ctx context.Context, taxID string, in dto.CreateCampaignRequest) (*dto.CampaignResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, invalid("nome vacío")
	}
	if err := validWindow(in.StartDate.Time, in.EndDate.Time); err != nil {
		return nil, err
	}
	campaign := &entity.Campaign{Name: in.Name, StartDate: in.StartDate.Time, EndDate: in.EndDate.Time}
	err := uc.uow.Tenant(ctx, taxID, func(t repository.Tenant) error {
		return t.Campaigns.Create(ctx, campaign)
	})
	if err != nil {
		return nil, err
	}
	return toCampaignResponse(campaign), nil
}

// Get obtiene una campaña; (nil, nil) si no existe.
func (uc *CampaignUseCase) Get(ctx context.Context, taxID string, id int64) (*dto.CampaignResponse, error) {
	var campaign *entity.Campaign
	err := uc.uow.Tenant(ctx, taxID, func(t repository.Tenant) error {
		var err error
		campaign, err = t.Campaigns.GetByID(ctx, id)
		return err
	})
	if err != nil || campaign == nil {
		return nil, err
	}
	return toCampaignResponse(campaign), nil
}

// Update aplica solo los campos enviados y revalida la ventana; (nil, nil) si no existe.
func (uc *CampaignUseCase) Update(ctx context.Context, taxID string, id int64, in dto.UpdateCampaignRequest) (*dto.CampaignResponse, error) {
	var campaign *entity.Campaign
	err := uc.uow.Tenant(ctx, taxID, func(t repository.Tenant) error {
		var err error
		campaign, err = t.Campaigns.GetByID(ctx, id)
		if err != nil || campaign == nil || in.IsEmpty() {
			return err
		}
		if in.Name != nil {
			campaign.Name = *in.Name
		}
		if in.StartDate != nil {
			campaign.StartDate = in.StartDate.Time
		}
		if in.EndDate != nil {
			campaign.EndDate = in.EndDate.Time
		}
		if err := validWindow(campaign.StartDate, campaign.EndDate); err != nil {
			return err
		}
		return t.Campaigns.Update(ctx, campaign)
	})
	if err != nil || campaign == nil {
		return nil, err
	}
	return toCampaignResponse(campaign), nil
}

// Delete elimina la campaña y sus asociaciones; false si no existía.
func (uc *CampaignUseCase) Delete(ctx context.Context, taxID string, id int64) (bool, error) {
	var deleted bool
	err := uc.uow.Tenant(ctx, taxID, func(t repository.Tenant) error {
		var err error
		deleted, err = t.Campaigns.Delete(ctx, id)
		return err
	})
	return deleted, err
}

// List lista todas las campañas.
func (uc *CampaignUseCase) List(ctx context.Context, taxID string) ([]dto.CampaignResponse, error) {
	var list []*entity.Campaign
	err := uc.uow.Tenant(ctx, taxID, func(t repository.Tenant) error {
		var err error
		list, err = t.Campaigns.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.CampaignResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCampaignResponse(c))
	}
	return out, nil
}

func toCampaignResponse(c *entity.Campaign) *dto.CampaignResponse {
	return &dto.CampaignResponse{
		ID:        c.ID,
		Name:      c.Name,
		StartDate: dto.NewDate(c.StartDate),
		EndDate:   dto.NewDate(c.EndDate),
	}
}
