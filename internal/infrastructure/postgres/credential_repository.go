package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/hareware-api/internal/domain"
	"github.com/jhoicas/hareware-api/internal/domain/entity"
	"github.com/jhoicas/hareware-api/internal/domain/repository"
)

var _ repository.CredentialRepository = (*CredentialRepo)(nil)

// CredentialRepo implementación del puerto CredentialRepository sobre PostgreSQL.
type CredentialRepo struct {
	q Querier
}

// NewCredentialRepository construye el adaptador de persistencia para credenciales de APIs externas.
func NewCredentialRepository(q Querier) *CredentialRepo {
	return &CredentialRepo{q: q}
}

const credentialColumns = `id, identificador_textual, url_api, token_api, instancia, assistant_id`

func scanCredential(row pgx.Row) (*entity.Credential, error) {
	var c entity.Credential
	if err := row.Scan(&c.ID, &c.Identifier, &c.APIURL, &c.APIToken, &c.Instance, &c.AssistantID); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CredentialRepo) Create(ctx context.Context, c *entity.Credential) error {
	query := `
		INSERT INTO credencial (identificador_textual, url_api, token_api, instancia, assistant_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, c.Identifier, c.APIURL, c.APIToken, c.Instance, c.AssistantID).Scan(&c.ID)
	return wrapErr("insert credencial", err)
}

func (r *CredentialRepo) GetByID(ctx context.Context, id int64) (*entity.Credential, error) {
	return r.findOne(ctx, `SELECT `+credentialColumns+` FROM credencial WHERE id = $1`, id)
}

func (r *CredentialRepo) GetByIdentifier(ctx context.Context, identifier string) (*entity.Credential, error) {
	return r.findOne(ctx, `SELECT `+credentialColumns+` FROM credencial WHERE identificador_textual = $1`, identifier)
}

func (r *CredentialRepo) findOne(ctx context.Context, query string, arg any) (*entity.Credential, error) {
	c, err := scanCredential(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrapErr("get credencial", err)
	}
	return c, nil
}

func (r *CredentialRepo) Update(ctx context.Context, c *entity.Credential) error {
	query := `
		UPDATE credencial
		SET identificador_textual = $2, url_api = $3, token_api = $4, instancia = $5, assistant_id = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, c.ID, c.Identifier, c.APIURL, c.APIToken, c.Instance, c.AssistantID)
	if err != nil {
		return wrapErr("update credencial", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CredentialRepo) List(ctx context.Context) ([]*entity.Credential, error) {
	rows, err := r.q.Query(ctx, `SELECT `+credentialColumns+` FROM credencial ORDER BY id`)
	if err != nil {
		return nil, wrapErr("list credenciales", err)
	}
	return collect(rows, scanCredential)
}

func (r *CredentialRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM credencial WHERE id = $1`, id)
	if err != nil {
		return false, wrapErr("delete credencial", err)
	}
	return tag.RowsAffected() > 0, nil
}
