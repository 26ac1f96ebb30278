package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hareware-api/internal/application/dto"
	"github.com/jhoicas/hareware-api/internal/application/usecase"
	"github.com/jhoicas/hareware-api/internal/domain"
	"github.com/jhoicas/hareware-api/internal/infrastructure/memory"
)

func newProductUC(storage *fakeStorage) (*usecase.ProductUseCase, *memory.Store) {
	store := memory.NewStore(sandboxCNPJ)
	if storage == nil {
		return usecase.NewProductUseCase(store, nil), store
	}
	return usecase.NewProductUseCase(store, storage), store
}

func cafe() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name: "Café torrado", Code: "CAF-500", UnitMeasure: "KG",
		Price: decimal.RequireFromString("29.905"), Stock: 10,
	}
}

func TestProduct_CreateNormalizaUnidadYPrecio(t *testing.T) {
	uc, _ := newProductUC(nil)
	p, err := uc.Create(context.Background(), sandboxCNPJ, cafe())
	require.NoError(t, err)
	assert.Equal(t, "kg", p.UnitMeasure)
	assert.Equal(t, "29.91", p.Price.StringFixed(2))

	in := cafe()
	in.Code = "DZ-1"
	in.UnitMeasure = "duzia"
	p, err = uc.Create(context.Background(), sandboxCNPJ, in)
	require.NoError(t, err)
	assert.Equal(t, "dúzia", p.UnitMeasure)
}

func TestProduct_Validaciones(t *testing.T) {
	uc, _ := newProductUC(nil)
	ctx := context.Background()

	in := cafe()
	in.UnitMeasure = "barril"
	_, err := uc.Create(ctx, sandboxCNPJ, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = cafe()
	in.Price = decimal.NewFromInt(-1)
	_, err = uc.Create(ctx, sandboxCNPJ, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, sandboxCNPJ, cafe())
	require.NoError(t, err)
	_, err = uc.Create(ctx, sandboxCNPJ, cafe())
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(ctx, "00000000000000", cafe())
	assert.ErrorIs(t, err, domain.ErrUnknownTenant)
}

func TestProduct_UpdateParcial(t *testing.T) {
	uc, _ := newProductUC(nil)
	ctx := context.Background()
	p, err := uc.Create(ctx, sandboxCNPJ, cafe())
	require.NoError(t, err)

	same, err := uc.Update(ctx, sandboxCNPJ, p.ID, dto.UpdateProductRequest{})
	require.NoError(t, err)
	assert.Equal(t, p, same)

	updated, err := uc.Update(ctx, sandboxCNPJ, p.ID, dto.UpdateProductRequest{Stock: ptr(3)})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Stock)
	assert.Equal(t, p.Name, updated.Name)
	assert.Equal(t, p.Code, updated.Code)
	assert.True(t, p.Price.Equal(updated.Price))

	missing, err := uc.Update(ctx, sandboxCNPJ, 999, dto.UpdateProductRequest{Stock: ptr(1)})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProduct_DeleteYBusqueda(t *testing.T) {
	uc, _ := newProductUC(nil)
	ctx := context.Background()
	p, err := uc.Create(ctx, sandboxCNPJ, cafe())
	require.NoError(t, err)

	found, err := uc.Search(ctx, sandboxCNPJ, "torr")
	require.NoError(t, err)
	assert.Len(t, found, 1)
	found, err = uc.Search(ctx, sandboxCNPJ, "caf-5")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	ok, err := uc.Delete(ctx, sandboxCNPJ, p.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := uc.GetByID(ctx, sandboxCNPJ, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	ok, err = uc.Delete(ctx, sandboxCNPJ, p.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProduct_UploadImage(t *testing.T) {
	storage := &fakeStorage{}
	uc, _ := newProductUC(storage)
	ctx := context.Background()
	p, err := uc.Create(ctx, sandboxCNPJ, cafe())
	require.NoError(t, err)

	updated, err := uc.UploadImage(ctx, sandboxCNPJ, p.ID, dto.ProductImageRequest{ImageBase64: "data:image/png;base64,AAAA", ContentType: "image/png"})
	require.NoError(t, err)
	require.Len(t, storage.uploaded, 1)
	assert.True(t, strings.HasPrefix(storage.uploaded[0], sandboxCNPJ+"/produtos/"))
	assert.True(t, strings.HasSuffix(storage.uploaded[0], ".png"))
	assert.Equal(t, "https://cdn.test/"+storage.uploaded[0], updated.Link)

	missing, err := uc.UploadImage(ctx, sandboxCNPJ, 999, dto.ProductImageRequest{ImageBase64: "AAAA"})
	require.NoError(t, err)
	assert.Nil(t, missing)
	assert.Len(t, storage.uploaded, 1)
}

func TestProduct_UploadImageFallaStorage(t *testing.T) {
	upstream := &domain.UpstreamError{Service: "storage", StatusCode: 500, Message: "down"}
	uc, _ := newProductUC(&fakeStorage{failWith: upstream})
	ctx := context.Background()
	p, err := uc.Create(ctx, sandboxCNPJ, cafe())
	require.NoError(t, err)

	_, err = uc.UploadImage(ctx, sandboxCNPJ, p.ID, dto.ProductImageRequest{ImageBase64: "AAAA"})
	assert.True(t, errors.Is(err, domain.ErrUpstream))
}

func TestProduct_UploadImageSinStorage(t *testing.T) {
	uc, _ := newProductUC(nil)
	_, err := uc.UploadImage(context.Background(), sandboxCNPJ, 1, dto.ProductImageRequest{ImageBase64: "AAAA"})
	assert.ErrorIs(t, err, domain.ErrUpstream)
}
