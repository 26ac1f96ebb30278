package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/hareware-api/internal/domain"
	"github.com/jhoicas/hareware-api/internal/domain/entity"
	"github.com/jhoicas/hareware-api/internal/domain/repository"
)

var _ repository.ContractRepository = (*ContractRepo)(nil)

// ContractRepo implementación del puerto ContractRepository sobre PostgreSQL.
type ContractRepo struct {
	q Querier
}

// NewContractRepository construye el adaptador de persistencia para contratos.
func NewContractRepository(q Querier) *ContractRepo {
	return &ContractRepo{q: q}
}

const contractColumns = `id, empresa_id, plano, tempo_vigencia, inicio_contrato, termino_contrato, data_ultimo_pagamento, pago, status`

func scanContract(row pgx.Row) (*entity.Contract, error) {
	var c entity.Contract
	err := row.Scan(&c.ID, &c.CompanyID, &c.Plan, &c.TermDays, &c.StartDate, &c.EndDate,
		&c.LastPaymentDate, &c.Paid, &c.Active)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un contrato. La empresa debe existir.
func (r *ContractRepo) Create(ctx context.Context, c *entity.Contract) error {
	query := `
		INSERT INTO contrato (empresa_id, plano, tempo_vigencia, inicio_contrato, termino_contrato, data_ultimo_pagamento, pago, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		c.CompanyID, c.Plan, c.TermDays, c.StartDate, c.EndDate, c.LastPaymentDate, c.Paid, c.Active,
	).Scan(&c.ID)
	return wrapErr("insert contrato", err)
}

// GetByID obtiene un contrato por ID.
func (r *ContractRepo) GetByID(ctx context.Context, id int64) (*entity.Contract, error) {
	c, err := scanContract(r.q.QueryRow(ctx, `SELECT `+contractColumns+` FROM contrato WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrapErr("get contrato", err)
	}
	return c, nil
}

// Update actualiza plan, vigencia y estado de pago.
func (r *ContractRepo) Update(ctx context.Context, c *entity.Contract) error {
	query := `
		UPDATE contrato
		SET plano = $2, tempo_vigencia = $3, inicio_contrato = $4, termino_contrato = $5,
		    data_ultimo_pagamento = $6, pago = $7, status = $8
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		c.ID, c.Plan, c.TermDays, c.StartDate, c.EndDate, c.LastPaymentDate, c.Paid, c.Active,
	)
	if err != nil {
		return wrapErr("update contrato", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todos los contratos.
func (r *ContractRepo) List(ctx context.Context) ([]*entity.Contract, error) {
	rows, err := r.q.Query(ctx, `SELECT `+contractColumns+` FROM contrato ORDER BY id`)
	if err != nil {
		return nil, wrapErr("list contratos", err)
	}
	return collect(rows, scanContract)
}

// ListByCompany devuelve los contratos de una empresa.
func (r *ContractRepo) ListByCompany(ctx context.Context, companyID int64) ([]*entity.Contract, error) {
	rows, err := r.q.Query(ctx, `SELECT `+contractColumns+` FROM contrato WHERE empresa_id = $1 ORDER BY id`, companyID)
	if err != nil {
		return nil, wrapErr("list contratos por empresa", err)
	}
	return collect(rows, scanContract)
}

// DeactivateExpired desactiva los contratos activos cuyo término es anterior a today.
func (r *ContractRepo) DeactivateExpired(ctx context.Context, today time.Time) (int64, error) {
	tag, err := r.q.Exec(ctx,
		`UPDATE contrato SET status = FALSE WHERE status AND termino_contrato < $1`, entity.DateOnly(today))
	if err != nil {
		return 0, wrapErr("desactivar contratos vencidos", err)
	}
	return tag.RowsAffected(), nil
}

// Delete elimina el contrato.
func (r *ContractRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM contrato WHERE id = $1`, id)
	if err != nil {
		return false, wrapErr("delete contrato", err)
	}
	return tag.RowsAffected() > 0, nil
}
