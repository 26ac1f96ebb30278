package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/hareware-api/internal/domain"
	"github.com/jhoicas/hareware-api/internal/domain/entity"
	"github.com/jhoicas/hareware-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre la base del tenant.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, nome, COALESCE(descricao, ''), codigo_produto, unidade_medida, preco_venda, qtd_estoque, COALESCE(link, '')`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		p    entity.Product
		unit string
	)
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Code, &unit, &p.Price, &p.Stock, &p.Link)
	if err != nil {
		return nil, err
	}
	p.UnitMeasure = entity.UnitMeasure(unit)
	return &p, nil
}

// Create persiste un producto. El código debe ser único en la base del tenant.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO produto (nome, descricao, codigo_produto, unidade_medida, preco_venda, qtd_estoque, link)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.Name, p.Description, p.Code, string(p.UnitMeasure), p.Price, p.Stock, p.Link,
	).Scan(&p.ID)
	return wrapErr("insert produto", err)
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM produto WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrapErr("get produto", err)
	}
	return p, nil
}

// Update actualiza todos los campos editables del producto.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE produto
		SET nome = $2, descricao = $3, codigo_produto = $4, unidade_medida = $5,
		    preco_venda = $6, qtd_estoque = $7, link = $8
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.Code, string(p.UnitMeasure), p.Price, p.Stock, p.Link,
	)
	if err != nil {
		return wrapErr("update produto", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve una página de productos ordenada por ID.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM produto ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, wrapErr("list produtos", err)
	}
	return collect(rows, scanProduct)
}

// Search busca por nombre o código sin distinguir mayúsculas.
func (r *ProductRepo) Search(ctx context.Context, term string, limit int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM produto
		WHERE nome ILIKE $1 OR codigo_produto ILIKE $1
		ORDER BY nome, id
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, likePattern(term), limit)
	if err != nil {
		return nil, wrapErr("search produtos", err)
	}
	return collect(rows, scanProduct)
}

// Delete elimina el producto. Falla con ErrConflict si participa en alguna campaña.
func (r *ProductRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM produto WHERE id = $1`, id)
	if err != nil {
		return false, wrapErr("delete produto", err)
	}
	return tag.RowsAffected() > 0, nil
}
