package usecase

import (
	"context"

	"github.com/jhoicas/hareware-api/internal/application/dto"
	"github.com/jhoicas/hareware-api/internal/application/ports"
	"github.com/jhoicas/hareware-api/internal/domain/entity"
	"github.com/jhoicas/hareware-api/internal/domain/repository"
)

// CampaignProductUseCase asociaciones campaña-producto del tenant.
type CampaignProductUseCase struct {
	uow ports.UnitOfWork
}

// NewCampaignProductUseCase construye el caso de uso.
func NewCampaignProductUseCase(uow ports.UnitOfWork) *CampaignProductUseCase {
	return &CampaignProductUseCase{uow: uow}
}

func checkRefs(ctx context.Context, t repository.Tenant, campaignID, productID int64) error {
	campaign, err := t.Campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return err
	}
	if campaign == nil {
		return notFound("campanha", campaignID)
	}
	product, err := t.Products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return notFound("produto", productID)
	}
	return nil
}

// Create asocia un producto existente a una campaña existente.
func (uc *CampaignProductUseCase) Create(ctx context.Context, taxID string, in dto.CreateCampaignProductRequest) (*dto.CampaignProductResponse, error) {
	if in.PromoPrice.IsNegative() {
		return nil, invalid("valor_promocional negativo")
	}
	if in.DisplayFrequency <= 0 {
		return nil, invalid("frequencia_exibicao debe ser positiva")
	}
	cp := &entity.CampaignProduct{
		CampaignID:       in.CampaignID,
		ProductID:        in.ProductID,
		PromoPrice:       in.PromoPrice.Round(2),
		DisplayFrequency: in.DisplayFrequency,
	}
	err := uc.uow.Tenant(ctx, taxID, func(t repository.Tenant) error {
		if err := checkRefs(ctx, t, cp.CampaignID, cp.ProductID); err != nil {
			return err
		}
		return t.CampaignProducts.Create(ctx, cp)
	})
	if err != nil {
		return nil, err
	}
	return toCampaignProductResponse(cp), nil
}

// Update aplica solo los campos enviados; (nil, nil) si no existe.
func (uc *CampaignProductUseCase) Update(ctx context.Context, taxID string, id int64, in dto.UpdateCampaignProductRequest) (*dto.CampaignProductResponse, error) {
	if in.PromoPrice != nil && in.PromoPrice.IsNegative() {
		return nil, invalid("valor_promocional negativo")
	}
	if in.DisplayFrequency != nil && *in.DisplayFrequency <= 0 {
		return nil, invalid("frequencia_exibicao debe ser positiva")
	}
	var cp *entity.CampaignProduct
	err := uc.uow.Tenant(ctx, taxID, func(t repository.Tenant) error {
		var err error
		cp, err = t.CampaignProducts.GetByID(ctx, id)
		if err != nil || cp == nil || in.IsEmpty() {
			return err
		}
		if in.CampaignID != nil {
			cp.CampaignID = *in.CampaignID
		}
		if in.ProductID != nil {
			cp.ProductID = *in.ProductID
		}
		if in.PromoPrice != nil {
			cp.PromoPrice = in.PromoPrice.Round(2)
		}
		if in.DisplayFrequency != nil {
			cp.DisplayFrequency = *in.DisplayFrequency
		}
		if in.CampaignID != nil || in.ProductID != nil {
			if err := checkRefs(ctx, t, cp.CampaignID, cp.ProductID); err != nil {
				return err
			}
		}
		return t.CampaignProducts.Update(ctx, cp)
	})
	if err != nil || cp == nil {
		return nil, err
	}
	return toCampaignProductResponse(cp), nil
}

// Delete elimina la asociación; false si no existía, ErrConflict si tiene agendamientos.
func (uc *CampaignProductUseCase) Delete(ctx context.Context, taxID string, id int64) (bool, error) {
	var deleted bool
	err := uc.uow.Tenant(ctx, taxID, func(t repository.Tenant) error {
		var err error
		deleted, err = t.CampaignProducts.Delete(ctx, id)
		return err
	})
	return deleted, err
}

// List lista todas las asociaciones.
func (uc *CampaignProductUseCase) List(ctx context.Context, taxID string) ([]dto.CampaignProductResponse, error) {
	return uc.list(ctx, taxID, func(t repository.Tenant) ([]*entity.CampaignProduct, error) {
		return t.CampaignProducts.List(ctx)
	})
}

// ListByCampaign lista los productos de una campaña.
func (uc *CampaignProductUseCase) ListByCampaign(ctx context.Context, taxID string, campaignID int64) ([]dto.CampaignProductResponse, error) {
	return uc.list(ctx, taxID, func(t repository.Tenant) ([]*entity.CampaignProduct, error) {
		return t.CampaignProducts.ListByCampaign(ctx, campaignID)
	})
}

// ListByProduct lista las campañas de un producto.
func (uc *CampaignProductUseCase) ListByProduct(ctx context.Context, taxID string, productID int64) ([]dto.CampaignProductResponse, error) {
	return uc.list(ctx, taxID, func(t repository.Tenant) ([]*entity.CampaignProduct, error) {
		return t.CampaignProducts.ListByProduct(ctx, productID)
	})
}

func (uc *CampaignProductUseCase) list(ctx context.Context, taxID string, query func(repository.Tenant) ([]*entity.CampaignProduct, error)) ([]dto.CampaignProductResponse, error) {
	var list []*entity.CampaignProduct
	err := uc.uow.Tenant(ctx, taxID, func(t repository.Tenant) error {
		var err error
		list, err = query(t)
		return err
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.CampaignProductResponse, 0, len(list))
	for _, cp := range list {
		out = append(out, *toCampaignProductResponse(cp))
	}
	return out, nil
}

func toCampaignProductResponse(cp *entity.CampaignProduct) *dto.CampaignProductResponse {
	return &dto.CampaignProductResponse{
		ID:               cp.ID,
		CampaignID:       cp.CampaignID,
		ProductID:        cp.ProductID,
		PromoPrice:       cp.PromoPrice,
		DisplayFrequency: cp.DisplayFrequency,
	}
}
