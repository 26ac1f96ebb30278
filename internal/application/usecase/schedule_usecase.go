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

// ScheduleUseCase agendamientos de exhibición de campaña-producto.
type ScheduleUseCase struct {
	uow ports.UnitOfWork
}

// NewScheduleUseCase construye el caso de uso.
func NewScheduleUseCase(uow ports.UnitOfWork) *ScheduleUseCase {
	return &ScheduleUseCase{uow: uow}
}

// ParseClock acepta HH:MM o HH:MM:SS y devuelve HH:MM:SS.
func ParseClock(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("15:04:05"), nil
		}
	}
	return "", invalid("hora %q inválida, se espera HH:MM o HH:MM:SS", raw)
}

// Create agenda una exhibición para una asociación existente.
func (uc *ScheduleUseCase) Create(ctx context.Context, taxID string, in dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	if in.Date.IsZero() {
		return nil, invalid("data obligatoria")
	}
	clock, err := ParseClock(in.Time)
	if err != nil {
		return nil, err
	}
	schedule := &entity.CampaignSchedule{
		CampaignProductID: in.CampaignProductID,
		Date:              in.Date.Time,
		Time:              clock,
	}
	err = uc.uow.Tenant(ctx, taxID, func(t repository.Tenant) error {
		cp, err := t.CampaignProducts.GetByID(ctx, in.CampaignProductID)
		if err != nil {
			return err
		}
		if cp == nil {
			return notFound("campanha_produto", in.CampaignProductID)
		}
		return t.Schedules.Create(ctx, schedule)
	})
	if err != nil {
		return nil, err
	}
	return toScheduleResponse(schedule), nil
}

// Delete elimina un agendamiento; false si no existía.
func (uc *ScheduleUseCase) Delete(ctx context.Context, taxID string, id int64) (bool, error) {
	var deleted bool
	err := uc.uow.Tenant(ctx, taxID, func(t repository.Tenant) error {
		var err error
		deleted, err = t.Schedules.Delete(ctx, id)
		return err
	})
	return deleted, err
}

// List lista todos los agendamientos.
func (uc *ScheduleUseCase) List(ctx context.Context, taxID string) ([]dto.ScheduleResponse, error) {
	return uc.list(ctx, taxID, func(t repository.Tenant) ([]*entity.CampaignSchedule, error) {
		return t.Schedules.List(ctx)
	})
}

// ListByCampaignProduct lista los agendamientos de una asociación.
func (uc *ScheduleUseCase) ListByCampaignProduct(ctx context.Context, taxID string, campaignProductID int64) ([]dto.ScheduleResponse, error) {
	return uc.list(ctx, taxID, func(t repository.Tenant) ([]*entity.CampaignSchedule, error) {
		return t.Schedules.ListByCampaignProduct(ctx, campaignProductID)
	})
}

func (uc *ScheduleUseCase) list(ctx context.Context, taxID string, query func(repository.Tenant) ([]*entity.CampaignSchedule, error)) ([]dto.ScheduleResponse, error) {
	var list []*entity.CampaignSchedule
	err := uc.uow.Tenant(ctx, taxID, func(t repository.Tenant) error {
		var err error
		list, err = query(t)
		return err
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.ScheduleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toScheduleResponse(s))
	}
	return out, nil
}

func toScheduleResponse(s *entity.CampaignSchedule) *dto.ScheduleResponse {
	return &dto.ScheduleResponse{
		ID:                s.ID,
		CampaignProductID: s.CampaignProductID,
		Date:              dto.NewDate(s.Date),
		Time:              s.Time,
	}
}
