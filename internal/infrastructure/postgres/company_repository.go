package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/hareware-api/internal/domain"
	"github.com/jhoicas/hareware-api/internal/domain/entity"
	"github.com/jhoicas/hareware-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, nome_fantasia, razao_social, cnpj, endereco, telefone, email, data_cadastro, status`

func scanCompany(row pgx.Row) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(&c.ID, &c.TradeName, &c.LegalName, &c.CNPJ, &c.Address, &c.Phone, &c.Email, &c.RegisteredAt, &c.Active)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste una nueva empresa y asigna su ID.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	query := `
		INSERT INTO empresa (nome_fantasia, razao_social, cnpj, endereco, telefone, email, data_cadastro, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		c.TradeName, c.LegalName, c.CNPJ, c.Address, c.Phone, c.Email, c.RegisteredAt, c.Active,
	).Scan(&c.ID)
	return wrapErr("insert empresa", err)
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id int64) (*entity.Company, error) {
	c, err := scanCompany(r.q.QueryRow(ctx, `SELECT `+companyColumns+` FROM empresa WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrapErr("get empresa", err)
	}
	return c, nil
}

// GetByCNPJ obtiene una empresa por CNPJ (solo dígitos).
func (r *CompanyRepo) GetByCNPJ(ctx context.Context, cnpj string) (*entity.Company, error) {
	c, err := scanCompany(r.q.QueryRow(ctx, `SELECT `+companyColumns+` FROM empresa WHERE cnpj = $1`, cnpj))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrapErr("get empresa por cnpj", err)
	}
	return c, nil
}

// Update actualiza los datos de la empresa.
func (r *CompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	query := `
		UPDATE empresa
		SET nome_fantasia = $2, razao_social = $3, cnpj = $4, endereco = $5,
		    telefone = $6, email = $7, status = $8
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		c.ID, c.TradeName, c.LegalName, c.CNPJ, c.Address, c.Phone, c.Email, c.Active,
	)
	if err != nil {
		return wrapErr("update empresa", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve una página de empresas ordenada por ID.
func (r *CompanyRepo) List(ctx context.Context, limit, offset int) ([]*entity.Company, error) {
	rows, err := r.q.Query(ctx, `SELECT `+companyColumns+` FROM empresa ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, wrapErr("list empresas", err)
	}
	return collect(rows, scanCompany)
}

// DeleteByCNPJ elimina la empresa. Falla con ErrConflict si aún tiene usuarios o contratos.
func (r *CompanyRepo) DeleteByCNPJ(ctx context.Context, cnpj string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM empresa WHERE cnpj = $1`, cnpj)
	if err != nil {
		return false, wrapErr("delete empresa", err)
	}
	return tag.RowsAffected() > 0, nil
}
