package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/hareware-api/internal/domain"
	"github.com/jhoicas/hareware-api/internal/domain/entity"
	"github.com/jhoicas/hareware-api/internal/domain/repository"
)

type controlData struct {
	seq         int64
	companies   map[int64]entity.Company
	users       map[int64]entity.User
	contracts   map[int64]entity.Contract
	credentials map[int64]entity.Credential
}

func newControlData() *controlData {
	return &controlData{
		companies:   map[int64]entity.Company{},
		users:       map[int64]entity.User{},
		contracts:   map[int64]entity.Contract{},
		credentials: map[int64]entity.Credential{},
	}
}

func (d *controlData) clone() *controlData {
	c := newControlData()
	c.seq = d.seq
	for k, v := range d.companies {
		c.companies[k] = v
	}
	for k, v := range d.users {
		v.LastAccess = cloneTime(v.LastAccess)
		c.users[k] = v
	}
	for k, v := range d.contracts {
		v.LastPaymentDate = cloneTime(v.LastPaymentDate)
		c.contracts[k] = v
	}
	for k, v := range d.credentials {
		c.credentials[k] = v
	}
	return c
}

func (d *controlData) next() int64 {
	d.seq++
	return d.seq
}

func (d *controlData) repos() repository.ControlPlane {
	return repository.ControlPlane{
		Companies:   companyRepo{d},
		Users:       userRepo{d},
		Contracts:   contractRepo{d},
		Credentials: credentialRepo{d},
	}
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func sortedIDs[T any](m map[int64]T) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// ── empresas ────────────────────────────────────────────────────────────────

type companyRepo struct{ d *controlData }

func (r companyRepo) Create(_ context.Context, c *entity.Company) error {
	for _, other := range r.d.companies {
		if other.CNPJ == c.CNPJ {
			return domain.ErrDuplicate
		}
	}
	c.ID = r.d.next()
	r.d.companies[c.ID] = *c
	return nil
}

func (r companyRepo) GetByID(_ context.Context, id int64) (*entity.Company, error) {
	c, ok := r.d.companies[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r companyRepo) GetByCNPJ(_ context.Context, cnpj string) (*entity.Company, error) {
	for _, c := range r.d.companies {
		if c.CNPJ == cnpj {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (r companyRepo) Update(_ context.Context, c *entity.Company) error {
	if _, ok := r.d.companies[c.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, other := range r.d.companies {
		if id != c.ID && other.CNPJ == c.CNPJ {
			return domain.ErrDuplicate
		}
	}
	r.d.companies[c.ID] = *c
	return nil
}

func (r companyRepo) List(_ context.Context, limit, offset int) ([]*entity.Company, error) {
	out := make([]*entity.Company, 0, len(r.d.companies))
	for _, id := range sortedIDs(r.d.companies) {
		c := r.d.companies[id]
		out = append(out, &c)
	}
	return page(out, limit, offset), nil
}

func (r companyRepo) DeleteByCNPJ(_ context.Context, cnpj string) (bool, error) {
	for id, c := range r.d.companies {
		if c.CNPJ != cnpj {
			continue
		}
		for _, u := range r.d.users {
			if u.CompanyID == id {
				return false, domain.ErrConflict
			}
		}
		for _, k := range r.d.contracts {
			if k.CompanyID == id {
				return false, domain.ErrConflict
			}
		}
		delete(r.d.companies, id)
		return true, nil
	}
	return false, nil
}

// ── usuarios ────────────────────────────────────────────────────────────────

type userRepo struct{ d *controlData }

func (r userRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := r.d.companies[u.CompanyID]; !ok {
		return domain.ErrConflict
	}
	for _, other := range r.d.users {
		if other.Username == u.Username {
			return domain.ErrDuplicate
		}
	}
	u.ID = r.d.next()
	stored := *u
	stored.LastAccess = cloneTime(u.LastAccess)
	r.d.users[u.ID] = stored
	return nil
}

func (r userRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := r.d.users[id]
	if !ok {
		return nil, nil
	}
	u.LastAccess = cloneTime(u.LastAccess)
	return &u, nil
}

func (r userRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.d.users {
		if u.Username == username {
			u.LastAccess = cloneTime(u.LastAccess)
			return &u, nil
		}
	}
	return nil, nil
}

func (r userRepo) Update(_ context.Context, u *entity.User) error {
	if _, ok := r.d.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.d.companies[u.CompanyID]; !ok {
		return domain.ErrConflict
	}
	for id, other := range r.d.users {
		if id != u.ID && other.Username == u.Username {
			return domain.ErrDuplicate
		}
	}
	stored := *u
	stored.LastAccess = cloneTime(u.LastAccess)
	r.d.users[u.ID] = stored
	return nil
}

func (r userRepo) ListByCompany(_ context.Context, companyID int64) ([]*entity.User, error) {
	out := []*entity.User{}
	for _, id := range sortedIDs(r.d.users) {
		u := r.d.users[id]
		if u.CompanyID == companyID {
			u.LastAccess = cloneTime(u.LastAccess)
			out = append(out, &u)
		}
	}
	return out, nil
}

func (r userRepo) CountByCompany(_ context.Context, companyID int64) (int, error) {
	n := 0
	for _, u := range r.d.users {
		if u.CompanyID == companyID {
			n++
		}
	}
	return n, nil
}

func (r userRepo) TouchLastAccess(_ context.Context, id int64, at time.Time) error {
	u, ok := r.d.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.LastAccess = &at
	r.d.users[id] = u
	return nil
}

func (r userRepo) DeleteByUsername(_ context.Context, username string) (bool, error) {
	for id, u := range r.d.users {
		if u.Username == username {
			delete(r.d.users, id)
			return true, nil
		}
	}
	return false, nil
}

// ── contratos ───────────────────────────────────────────────────────────────

type contractRepo struct{ d *controlData }

func (r contractRepo) Create(_ context.Context, c *entity.Contract) error {
	if _, ok := r.d.companies[c.CompanyID]; !ok {
		return domain.ErrConflict
	}
	c.ID = r.d.next()
	stored := *c
	stored.LastPaymentDate = cloneTime(c.LastPaymentDate)
	r.d.contracts[c.ID] = stored
	return nil
}

func (r contractRepo) GetByID(_ context.Context, id int64) (*entity.Contract, error) {
	c, ok := r.d.contracts[id]
	if !ok {
		return nil, nil
	}
	c.LastPaymentDate = cloneTime(c.LastPaymentDate)
	return &c, nil
}

func (r contractRepo) Update(_ context.Context, c *entity.Contract) error {
	if _, ok := r.d.contracts[c.ID]; !ok {
		return domain.ErrNotFound
	}
	stored := *c
	stored.LastPaymentDate = cloneTime(c.LastPaymentDate)
	r.d.contracts[c.ID] = stored
	return nil
}

func (r contractRepo) List(ctx context.Context) ([]*entity.Contract, error) {
	return r.filter(func(entity.Contract) bool { return true }), nil
}

func (r contractRepo) ListByCompany(_ context.Context, companyID int64) ([]*entity.Contract, error) {
	return r.filter(func(c entity.Contract) bool { return c.CompanyID == companyID }), nil
}

func (r contractRepo) filter(keep func(entity.Contract) bool) []*entity.Contract {
	out := []*entity.Contract{}
	for _, id := range sortedIDs(r.d.contracts) {
		c := r.d.contracts[id]
		if keep(c) {
			c.LastPaymentDate = cloneTime(c.LastPaymentDate)
			out = append(out, &c)
		}
	}
	return out
}

func (r contractRepo) DeactivateExpired(_ context.Context, today time.Time) (int64, error) {
	day := entity.DateOnly(today)
	var n int64
	for id, c := range r.d.contracts {
		if c.Active && c.EndDate.Before(day) {
			c.Active = false
			r.d.contracts[id] = c
			n++
		}
	}
	return n, nil
}

func (r contractRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.d.contracts[id]; !ok {
		return false, nil
	}
	delete(r.d.contracts, id)
	return true, nil
}

// ── credenciales ────────────────────────────────────────────────────────────

type credentialRepo struct{ d *controlData }

func (r credentialRepo) Create(_ context.Context, c *entity.Credential) error {
	for _, other := range r.d.credentials {
		if other.Identifier == c.Identifier {
			return domain.ErrDuplicate
		}
	}
	c.ID = r.d.next()
	r.d.credentials[c.ID] = *c
	return nil
}

func (r credentialRepo) GetByID(_ context.Context, id int64) (*entity.Credential, error) {
	c, ok := r.d.credentials[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r credentialRepo) GetByIdentifier(_ context.Context, identifier string) (*entity.Credential, error) {
	for _, c := range r.d.credentials {
		if c.Identifier == identifier {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (r credentialRepo) Update(_ context.Context, c *entity.Credential) error {
	if _, ok := r.d.credentials[c.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, other := range r.d.credentials {
		if id != c.ID && other.Identifier == c.Identifier {
			return domain.ErrDuplicate
		}
	}
	r.d.credentials[c.ID] = *c
	return nil
}

func (r credentialRepo) List(_ context.Context) ([]*entity.Credential, error) {
	out := make([]*entity.Credential, 0, len(r.d.credentials))
	for _, id := range sortedIDs(r.d.credentials) {
		c := r.d.credentials[id]
		out = append(out, &c)
	}
	return out, nil
}

func (r credentialRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.d.credentials[id]; !ok {
		return false, nil
	}
	delete(r.d.credentials, id)
	return true, nil
}
