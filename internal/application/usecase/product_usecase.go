package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/hareware-api/internal/application/dto"
	"github.com/jhoicas/hareware-api/internal/application/ports"
	"github.com/jhoicas/hareware-api/internal/domain"
	"github.com/jhoicas/hareware-api/internal/domain/entity"
	"github.com/jhoicas/hareware-api/internal/domain/repository"
)

const maxSearchResults = 50

// ProductUseCase CRUD de productos en la base del tenant (CNPJ).
type ProductUseCase struct {
	uow     ports.UnitOfWork
	storage ports.ObjectStorage
}

// NewProductUseCase construye el caso de uso. storage puede ser nil (subida de imágenes deshabilitada).
func NewProductUseCase(uow ports.UnitOfWork, storage ports.ObjectStorage) *ProductUseCase {
	return &ProductUseCase{uow: uow, storage: storage}
}

func parseUnit(raw string) (entity.UnitMeasure, error) {
	u, ok := entity.ParseUnitMeasure(raw)
	if !ok {
		return "", invalid("unidade_medida %q no admitida", raw)
	}
	return u, nil
}

// Create crea un producto. ErrDuplicate si el código ya existe.
func (uc *ProductUseCase) Create(ctx context.Context, taxID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	unit, err := parseUnit(in.UnitMeasure)
	if err != nil {
		return nil, err
	}
	if in.Price.IsNegative() {
		return nil, invalid("preco_venda negativo")
	}
	if in.Stock < 0 {
		return nil, invalid("qtd_estoque negativa")
	}
	product := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Code:        strings.TrimSpace(in.Code),
		UnitMeasure: unit,
		Price:       in.Price.Round(2),
		Stock:       in.Stock,
		Link:        in.Link,
	}
	err = uc.uow.Tenant(ctx, taxID, func(t repository.Tenant) error {
		return t.Products.Create(ctx, product)
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto; (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, taxID string, id int64) (*dto.ProductResponse, error) {
	var product *entity.Product
	err := uc.uow.Tenant(ctx, taxID, func(t repository.Tenant) error {
		var err error
		product, err = t.Products.GetByID(ctx, id)
		return err
	})
	if err != nil || product == nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update aplica solo los campos enviados; (nil, nil) si no existe.
func (uc *ProductUseCase) Update(ctx context.Context, taxID string, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var unit entity.UnitMeasure
	if in.UnitMeasure != nil {
		var err error
		if unit, err = parseUnit(*in.UnitMeasure); err != nil {
			return nil, err
		}
	}
	if in.Price != nil && in.Price.IsNegative() {
		return nil, invalid("preco_venda negativo")
	}
	if in.Stock != nil && *in.Stock < 0 {
		return nil, invalid("qtd_estoque negativa")
	}

	var product *entity.Product
	err := uc.uow.Tenant(ctx, taxID, func(t repository.Tenant) error {
		var err error
		product, err = t.Products.GetByID(ctx, id)
		if err != nil || product == nil || in.IsEmpty() {
			return err
		}
		if in.Name != nil {
			product.Name = *in.Name
		}
		if in.Description != nil {
			product.Description = *in.Description
		}
		if in.Code != nil {
			product.Code = strings.TrimSpace(*in.Code)
		}
		if in.UnitMeasure != nil {
			product.UnitMeasure = unit
		}
		if in.Price != nil {
			product.Price = in.Price.Round(2)
		}
		if in.Stock != nil {
			product.Stock = *in.Stock
		}
		if in.Link != nil {
			product.Link = *in.Link
		}
		return t.Products.Update(ctx, product)
	})
	if err != nil || product == nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto; false si no existía, ErrConflict si participa de una campaña.
func (uc *ProductUseCase) Delete(ctx context.Context, taxID string, id int64) (bool, error) {
	var deleted bool
	err := uc.uow.Tenant(ctx, taxID, func(t repository.Tenant) error {
		var err error
		deleted, err = t.Products.Delete(ctx, id)
		return err
	})
	return deleted, err
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, taxID string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	var list []*entity.Product
	err := uc.uow.Tenant(ctx, taxID, func(t repository.Tenant) error {
		var err error
		list, err = t.Products.List(ctx, page.Limit, page.Offset)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &dto.ProductListResponse{
		Items: toProductResponses(list),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Search busca por nombre o código.
func (uc *ProductUseCase) Search(ctx context.Context, taxID, term string) ([]dto.ProductResponse, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, invalid("termo de búsqueda vacío")
	}
	var list []*entity.Product
	err := uc.uow.Tenant(ctx, taxID, func(t repository.Tenant) error {
		var err error
		list, err = t.Products.Search(ctx, term, maxSearchResults)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// UploadImage sube la imagen a {cnpj}/produtos/{uuid}.{ext} y guarda la URL pública en el producto.
// Si no se puede guardar el producto, el objeto subido se elimina.
func (uc *ProductUseCase) UploadImage(ctx context.Context, taxID string, id int64, in dto.ProductImageRequest) (*dto.ProductResponse, error) {
	if uc.storage == nil {
		return nil, &domain.UpstreamError{Service: "storage", Message: "almacenamiento no configurado"}
	}
	contentType := in.ContentType
	if contentType == "" {
		contentType = "image/jpeg"
	}
	found, err := uc.GetByID(ctx, taxID, id)
	if err != nil || found == nil {
		return nil, err
	}

	path := fmt.Sprintf("%s/produtos/%s%s", taxID, uuid.NewString(), imageExt(contentType))
	obj, err := uc.storage.UploadBase64(ctx, path, in.ImageBase64, contentType, false)
	if err != nil {
		return nil, err
	}

	var product *entity.Product
	err = uc.uow.Tenant(ctx, taxID, func(t repository.Tenant) error {
		var err error
		product, err = t.Products.GetByID(ctx, id)
		if err != nil || product == nil {
			return err
		}
		product.Link = obj.PublicURL
		return t.Products.Update(ctx, product)
	})
	if err != nil || product == nil {
		_ = uc.storage.Delete(ctx, obj.Path)
		return nil, err
	}
	return toProductResponse(product), nil
}

func imageExt(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Code:        p.Code,
		UnitMeasure: string(p.UnitMeasure),
		Price:       p.Price,
		Stock:       p.Stock,
		Link:        p.Link,
	}
}
