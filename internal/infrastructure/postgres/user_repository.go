package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/hareware-api/internal/domain"
	"github.com/jhoicas/hareware-api/internal/domain/entity"
	"github.com/jhoicas/hareware-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, nome, usuario, email, telefone, senha, nivel_acesso, ultimo_acesso, data_cadastro, status, id_empresa`

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &u.PasswordHash,
		&u.AccessLevel, &u.LastAccess, &u.RegisteredAt, &u.Active, &u.CompanyID)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste un nuevo usuario. La empresa debe existir.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO usuario (nome, usuario, email, telefone, senha, nivel_acesso, ultimo_acesso, data_cadastro, status, id_empresa)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		u.Name, u.Username, u.Email, u.Phone, u.PasswordHash, u.AccessLevel,
		u.LastAccess, u.RegisteredAt, u.Active, u.CompanyID,
	).Scan(&u.ID)
	return wrapErr("insert usuario", err)
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM usuario WHERE id = $1`, id)
}

// GetByUsername obtiene un usuario por nombre de usuario.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM usuario WHERE usuario = $1`, username)
}

func (r *UserRepo) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrapErr("get usuario", err)
	}
	return u, nil
}

// Update actualiza los datos del usuario, incluido el hash de contraseña.
func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	query := `
		UPDATE usuario
		SET nome = $2, usuario = $3, email = $4, telefone = $5, senha = $6,
		    nivel_acesso = $7, status = $8, id_empresa = $9
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		u.ID, u.Name, u.Username, u.Email, u.Phone, u.PasswordHash, u.AccessLevel, u.Active, u.CompanyID,
	)
	if err != nil {
		return wrapErr("update usuario", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCompany lista los usuarios de una empresa.
func (r *UserRepo) ListByCompany(ctx context.Context, companyID int64) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx, `SELECT `+userColumns+` FROM usuario WHERE id_empresa = $1 ORDER BY id`, companyID)
	if err != nil {
		return nil, wrapErr("list usuarios", err)
	}
	return collect(rows, scanUser)
}

// CountByCompany cuenta los usuarios de la empresa (activos o no).
func (r *UserRepo) CountByCompany(ctx context.Context, companyID int64) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM usuario WHERE id_empresa = $1`, companyID).Scan(&n); err != nil {
		return 0, wrapErr("count usuarios", err)
	}
	return n, nil
}

// TouchLastAccess registra el último acceso.
func (r *UserRepo) TouchLastAccess(ctx context.Context, id int64, at time.Time) error {
	tag, err := r.q.Exec(ctx, `UPDATE usuario SET ultimo_acesso = $2 WHERE id = $1`, id, at)
	if err != nil {
		return wrapErr("touch usuario", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByUsername elimina el usuario.
func (r *UserRepo) DeleteByUsername(ctx context.Context, username string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM usuario WHERE usuario = $1`, username)
	if err != nil {
		return false, wrapErr("delete usuario", err)
	}
	return tag.RowsAffected() > 0, nil
}
