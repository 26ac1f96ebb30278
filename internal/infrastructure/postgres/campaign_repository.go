package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/hareware-api/internal/domain"
	"github.com/jhoicas/hareware-api/internal/domain/entity"
	"github.com/jhoicas/hareware-api/internal/domain/repository"
)

var (
	_ repository.CampaignRepository         = (*CampaignRepo)(nil)
	_ repository.CampaignProductRepository  = (*CampaignProductRepo)(nil)
	_ repository.CampaignScheduleRepository = (*CampaignScheduleRepo)(nil)
)

// CampaignRepo implementación del puerto CampaignRepository sobre la base del tenant.
type CampaignRepo struct {
	q Querier
}

// NewCampaignRepository construye el adaptador de persistencia para campañas.
func NewCampaignRepository(q Querier) *CampaignRepo {
	return &CampaignRepo{q: q}
}

const campaignColumns = `id, nome, inicio_campanha, fim_campanha`

func scanCampaign(row pgx.Row) (*entity.Campaign, error) {
	var c entity.Campaign
	if err := row.Scan(&c.ID, &c.Name, &c.StartDate, &c.EndDate); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepo) Create(ctx context.Context, c *entity.Campaign) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO campanha (nome, inicio_campanha, fim_campanha) VALUES ($1, $2, $3) RETURNING id`,
		c.Name, c.StartDate, c.EndDate,
	).Scan(&c.ID)
	return wrapErr("insert campanha", err)
}

func (r *CampaignRepo) GetByID(ctx context.Context, id int64) (*entity.Campaign, error) {
	c, err := scanCampaign(r.q.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campanha WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrapErr("get campanha", err)
	}
	return c, nil
}

func (r *CampaignRepo) Update(ctx context.Context, c *entity.Campaign) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE campanha SET nome = $2, inicio_campanha = $3, fim_campanha = $4 WHERE id = $1`,
		c.ID, c.Name, c.StartDate, c.EndDate,
	)
	if err != nil {
		return wrapErr("update campanha", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CampaignRepo) List(ctx context.Context) ([]*entity.Campaign, error) {
	rows, err := r.q.Query(ctx, `SELECT `+campaignColumns+` FROM campanha ORDER BY id`)
	if err != nil {
		return nil, wrapErr("list campanhas", err)
	}
	return collect(rows, scanCampaign)
}

// Delete elimina la campaña; campanha_produto cae en cascada (ON DELETE CASCADE).
// Si alguna asociación tiene agendamientos la FK lo impide y se devuelve ErrConflict.
func (r *CampaignRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM campanha WHERE id = $1`, id)
	if err != nil {
		return false, wrapErr("delete campanha", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CampaignProductRepo implementación del puerto CampaignProductRepository.
type CampaignProductRepo struct {
	q Querier
}

// NewCampaignProductRepository construye el adaptador para asociaciones campaña-producto.
func NewCampaignProductRepository(q Querier) *CampaignProductRepo {
	return &CampaignProductRepo{q: q}
}

const campaignProductColumns = `id, campanha_id, produto_id, valor_promocional, frequencia_exibicao`

func scanCampaignProduct(row pgx.Row) (*entity.CampaignProduct, error) {
	var cp entity.CampaignProduct
	if err := row.Scan(&cp.ID, &cp.CampaignID, &cp.ProductID, &cp.PromoPrice, &cp.DisplayFrequency); err != nil {
		return nil, err
	}
	return &cp, nil
}

func (r *CampaignProductRepo) Create(ctx context.Context, cp *entity.CampaignProduct) error {
	query := `
		INSERT INTO campanha_produto (campanha_id, produto_id, valor_promocional, frequencia_exibicao)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, cp.CampaignID, cp.ProductID, cp.PromoPrice, cp.DisplayFrequency).Scan(&cp.ID)
	return wrapErr("insert campanha_produto", err)
}

func (r *CampaignProductRepo) GetByID(ctx context.Context, id int64) (*entity.CampaignProduct, error) {
	cp, err := scanCampaignProduct(r.q.QueryRow(ctx, `SELECT `+campaignProductColumns+` FROM campanha_produto WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrapErr("get campanha_produto", err)
	}
	return cp, nil
}

func (r *CampaignProductRepo) Update(ctx context.Context, cp *entity.CampaignProduct) error {
	query := `
		UPDATE campanha_produto
		SET campanha_id = $2, produto_id = $3, valor_promocional = $4, frequencia_exibicao = $5
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, cp.ID, cp.CampaignID, cp.ProductID, cp.PromoPrice, cp.DisplayFrequency)
	if err != nil {
		return wrapErr("update campanha_produto", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CampaignProductRepo) List(ctx context.Context) ([]*entity.CampaignProduct, error) {
	return r.list(ctx, `SELECT `+campaignProductColumns+` FROM campanha_produto ORDER BY id`)
}

func (r *CampaignProductRepo) ListByCampaign(ctx context.Context, campaignID int64) ([]*entity.CampaignProduct, error) {
	return r.list(ctx, `SELECT `+campaignProductColumns+` FROM campanha_produto WHERE campanha_id = $1 ORDER BY id`, campaignID)
}

func (r *CampaignProductRepo) ListByProduct(ctx context.Context, productID int64) ([]*entity.CampaignProduct, error) {
	return r.list(ctx, `SELECT `+campaignProductColumns+` FROM campanha_produto WHERE produto_id = $1 ORDER BY id`, productID)
}

func (r *CampaignProductRepo) list(ctx context.Context, query string, args ...any) ([]*entity.CampaignProduct, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("list campanha_produto", err)
	}
	return collect(rows, scanCampaignProduct)
}

// Delete falla con ErrConflict si la asociación tiene agendamientos.
func (r *CampaignProductRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM campanha_produto WHERE id = $1`, id)
	if err != nil {
		return false, wrapErr("delete campanha_produto", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CampaignScheduleRepo implementación del puerto CampaignScheduleRepository.
type CampaignScheduleRepo struct {
	q Querier
}

// NewCampaignScheduleRepository construye el adaptador para agendamientos.
func NewCampaignScheduleRepository(q Querier) *CampaignScheduleRepo {
	return &CampaignScheduleRepo{q: q}
}

// hora se lee como texto para conservar HH:MM:SS.
const scheduleColumns = `id, campanha_produto_id, data, to_char(hora, 'HH24:MI:SS')`

func scanSchedule(row pgx.Row) (*entity.CampaignSchedule, error) {
	var s entity.CampaignSchedule
	if err := row.Scan(&s.ID, &s.CampaignProductID, &s.Date, &s.Time); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *CampaignScheduleRepo) Create(ctx context.Context, s *entity.CampaignSchedule) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO agendamento_campanha_produto (campanha_produto_id, data, hora) VALUES ($1, $2, $3::time) RETURNING id`,
		s.CampaignProductID, s.Date, s.Time,
	).Scan(&s.ID)
	return wrapErr("insert agendamento", err)
}

func (r *CampaignScheduleRepo) GetByID(ctx context.Context, id int64) (*entity.CampaignSchedule, error) {
	s, err := scanSchedule(r.q.QueryRow(ctx, `SELECT `+scheduleColumns+` FROM agendamento_campanha_produto WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrapErr("get agendamento", err)
	}
	return s, nil
}

func (r *CampaignScheduleRepo) List(ctx context.Context) ([]*entity.CampaignSchedule, error) {
	rows, err := r.q.Query(ctx, `SELECT `+scheduleColumns+` FROM agendamento_campanha_produto ORDER BY data, hora, id`)
	if err != nil {
		return nil, wrapErr("list agendamentos", err)
	}
	return collect(rows, scanSchedule)
}

func (r *CampaignScheduleRepo) ListByCampaignProduct(ctx context.Context, campaignProductID int64) ([]*entity.CampaignSchedule, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+scheduleColumns+` FROM agendamento_campanha_produto WHERE campanha_produto_id = $1 ORDER BY data, hora, id`,
		campaignProductID)
	if err != nil {
		return nil, wrapErr("list agendamentos", err)
	}
	return collect(rows, scanSchedule)
}

func (r *CampaignScheduleRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM agendamento_campanha_produto WHERE id = $1`, id)
	if err != nil {
		return false, wrapErr("delete agendamento", err)
	}
	return tag.RowsAffected() > 0, nil
}
