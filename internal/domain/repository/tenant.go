package repository

import (
	"context"

	"github.com/jhoicas/hareware-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	// Search busca por nombre o código (sin distinguir mayúsculas).
	Search(ctx context.Context, term string, limit int) ([]*entity.Product, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// CampaignRepository define el puerto de persistencia para Campaign (DIP).
type CampaignRepository interface {
	Create(ctx context.Context, campaign *entity.Campaign) error
	GetByID(ctx context.Context, id int64) (*entity.Campaign, error)
	Update(ctx context.Context, campaign *entity.Campaign) error
	List(ctx context.Context) ([]*entity.Campaign, error)
	// Delete elimina la campaña y, en cascada, sus asociaciones campaña-producto.
	Delete(ctx context.Context, id int64) (bool, error)
}

// CampaignProductRepository define el puerto de persistencia para CampaignProduct (DIP).
type CampaignProductRepository interface {
	Create(ctx context.Context, cp *entity.CampaignProduct) error
	GetByID(ctx context.Context, id int64) (*entity.CampaignProduct, error)
	Update(ctx context.Context, cp *entity.CampaignProduct) error
	List(ctx context.Context) ([]*entity.CampaignProduct, error)
	ListByCampaign(ctx context.Context, campaignID int64) ([]*entity.CampaignProduct, error)
	ListByProduct(ctx context.Context, productID int64) ([]*entity.CampaignProduct, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// CampaignScheduleRepository define el puerto de persistencia para CampaignSchedule (DIP).
type CampaignScheduleRepository interface {
	Create(ctx context.Context, schedule *entity.CampaignSchedule) error
	GetByID(ctx context.Context, id int64) (*entity.CampaignSchedule, error)
	List(ctx context.Context) ([]*entity.CampaignSchedule, error)
	ListByCampaignProduct(ctx context.Context, campaignProductID int64) ([]*entity.CampaignSchedule, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Tenant agrupa los repositorios de la base aislada de una empresa.
type Tenant struct {
	Products         ProductRepository
	Campaigns        CampaignRepository
	CampaignProducts CampaignProductRepository
	Schedules        CampaignScheduleRepository
}
