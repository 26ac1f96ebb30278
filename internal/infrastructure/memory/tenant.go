package memory

import (
	"context"
	"strings"

	"github.com/jhoicas/hareware-api/internal/domain"
	"github.com/jhoicas/hareware-api/internal/domain/entity"
	"github.com/jhoicas/hareware-api/internal/domain/repository"
)

type tenantData struct {
	seq              int64
	products         map[int64]entity.Product
	campaigns        map[int64]entity.Campaign
	campaignProducts map[int64]entity.CampaignProduct
	schedules        map[int64]entity.CampaignSchedule
}

func newTenantData() *tenantData {
	return &tenantData{
		products:         map[int64]entity.Product{},
		campaigns:        map[int64]entity.Campaign{},
		campaignProducts: map[int64]entity.CampaignProduct{},
		schedules:        map[int64]entity.CampaignSchedule{},
	}
}

func (d *tenantData) clone() *tenantData {
	c := newTenantData()
	c.seq = d.seq
	for k, v := range d.products {
		c.products[k] = v
	}
	for k, v := range d.campaigns {
		c.campaigns[k] = v
	}
	for k, v := range d.campaignProducts {
		c.campaignProducts[k] = v
	}
	for k, v := range d.schedules {
		c.schedules[k] = v
	}
	return c
}

func (d *tenantData) next() int64 {
	d.seq++
	return d.seq
}

func (d *tenantData) repos() repository.Tenant {
	return repository.Tenant{
		Products:         productRepo{d},
		Campaigns:        campaignRepo{d},
		CampaignProducts: campaignProductRepo{d},
		Schedules:        scheduleRepo{d},
	}
}

// ── productos ───────────────────────────────────────────────────────────────

type productRepo struct{ d *tenantData }

func (r productRepo) codeTaken(code string, except int64) bool {
	for id, p := range r.d.products {
		if id != except && p.Code == code {
			return true
		}
	}
	return false
}

func (r productRepo) Create(_ context.Context, p *entity.Product) error {
	if r.codeTaken(p.Code, 0) {
		return domain.ErrDuplicate
	}
	p.ID = r.d.next()
	r.d.products[p.ID] = *p
	return nil
}

func (r productRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := r.d.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r productRepo) Update(_ context.Context, p *entity.Product) error {
	if _, ok := r.d.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	if r.codeTaken(p.Code, p.ID) {
		return domain.ErrDuplicate
	}
	r.d.products[p.ID] = *p
	return nil
}

func (r productRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	return page(r.filter(func(entity.Product) bool { return true }), limit, offset), nil
}

func (r productRepo) Search(_ context.Context, term string, limit int) ([]*entity.Product, error) {
	needle := strings.ToLower(strings.TrimSpace(term))
	out := r.filter(func(p entity.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Code), needle)
	})
	return page(out, limit, 0), nil
}

func (r productRepo) filter(keep func(entity.Product) bool) []*entity.Product {
	out := []*entity.Product{}
	for _, id := range sortedIDs(r.d.products) {
		p := r.d.products[id]
		if keep(p) {
			out = append(out, &p)
		}
	}
	return out
}

func (r productRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.d.products[id]; !ok {
		return false, nil
	}
	for _, cp := range r.d.campaignProducts {
		if cp.ProductID == id {
			return false, domain.ErrConflict
		}
	}
	delete(r.d.products, id)
	return true, nil
}

// ── campañas ────────────────────────────────────────────────────────────────

type campaignRepo struct{ d *tenantData }

func (r campaignRepo) Create(_ context.Context, c *entity.Campaign) error {
	c.ID = r.d.next()
	r.d.campaigns[c.ID] = *c
	return nil
}

func (r campaignRepo) GetByID(_ context.Context, id int64) (*entity.Campaign, error) {
	c, ok := r.d.campaigns[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r campaignRepo) Update(_ context.Context, c *entity.Campaign) error {
	if _, ok := r.d.campaigns[c.ID]; !ok {
		return domain.ErrNotFound
	}
	r.d.campaigns[c.ID] = *c
	return nil
}

func (r campaignRepo) List(_ context.Context) ([]*entity.Campaign, error) {
	out := make([]*entity.Campaign, 0, len(r.d.campaigns))
	for _, id := range sortedIDs(r.d.campaigns) {
		c := r.d.campaigns[id]
		out = append(out, &c)
	}
	return out, nil
}

// Delete borra en cascada las asociaciones; falla si alguna tiene agendamientos.
func (r campaignRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.d.campaigns[id]; !ok {
		return false, nil
	}
	var cascade []int64
	for cpID, cp := range r.d.campaignProducts {
		if cp.CampaignID != id {
			continue
		}
		for _, s := range r.d.schedules {
			if s.CampaignProductID == cpID {
				return false, domain.ErrConflict
			}
		}
		cascade = append(cascade, cpID)
	}
	for _, cpID := range cascade {
		delete(r.d.campaignProducts, cpID)
	}
	delete(r.d.campaigns, id)
	return true, nil
}

// ── campaña-producto ────────────────────────────────────────────────────────

type campaignProductRepo struct{ d *tenantData }

func (r campaignProductRepo) checkRefs(cp *entity.CampaignProduct) error {
	if _, ok := r.d.campaigns[cp.CampaignID]; !ok {
		return domain.ErrConflict
	}
	if _, ok := r.d.products[cp.ProductID]; !ok {
		return domain.ErrConflict
	}
	return nil
}

func (r campaignProductRepo) Create(_ context.Context, cp *entity.CampaignProduct) error {
	if err := r.checkRefs(cp); err != nil {
		return err
	}
	cp.ID = r.d.next()
	r.d.campaignProducts[cp.ID] = *cp
	return nil
}

func (r campaignProductRepo) GetByID(_ context.Context, id int64) (*entity.CampaignProduct, error) {
	cp, ok := r.d.campaignProducts[id]
	if !ok {
		return nil, nil
	}
	return &cp, nil
}

func (r campaignProductRepo) Update(_ context.Context, cp *entity.CampaignProduct) error {
	if _, ok := r.d.campaignProducts[cp.ID]; !ok {
		return domain.ErrNotFound
	}
	if err := r.checkRefs(cp); err != nil {
		return err
	}
	r.d.campaignProducts[cp.ID] = *cp
	return nil
}

func (r campaignProductRepo) List(_ context.Context) ([]*entity.CampaignProduct, error) {
	return r.filter(func(entity.CampaignProduct) bool { return true }), nil
}

func (r campaignProductRepo) ListByCampaign(_ context.Context, campaignID int64) ([]*entity.CampaignProduct, error) {
	return r.filter(func(cp entity.CampaignProduct) bool { return cp.CampaignID == campaignID }), nil
}

func (r campaignProductRepo) ListByProduct(_ context.Context, productID int64) ([]*entity.CampaignProduct, error) {
	return r.filter(func(cp entity.CampaignProduct) bool { return cp.ProductID == productID }), nil
}

func (r campaignProductRepo) filter(keep func(entity.CampaignProduct) bool) []*entity.CampaignProduct {
	out := []*entity.CampaignProduct{}
	for _, id := range sortedIDs(r.d.campaignProducts) {
		cp := r.d.campaignProducts[id]
		if keep(cp) {
			out = append(out, &cp)
		}
	}
	return out
}

func (r campaignProductRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.d.campaignProducts[id]; !ok {
		return false, nil
	}
	for _, s := range r.d.schedules {
		if s.CampaignProductID == id {
			return false, domain.ErrConflict
		}
	}
	delete(r.d.campaignProducts, id)
	return true, nil
}

// ── agendamientos ───────────────────────────────────────────────────────────

type scheduleRepo struct{ d *tenantData }

func (r scheduleRepo) Create(_ context.Context, s *entity.CampaignSchedule) error {
	if _, ok := r.d.campaignProducts[s.CampaignProductID]; !ok {
		return domain.ErrConflict
	}
	s.ID = r.d.next()
	r.d.schedules[s.ID] = *s
	return nil
}

func (r scheduleRepo) GetByID(_ context.Context, id int64) (*entity.CampaignSchedule, error) {
	s, ok := r.d.schedules[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r scheduleRepo) List(_ context.Context) ([]*entity.CampaignSchedule, error) {
	return r.filter(func(entity.CampaignSchedule) bool { return true }), nil
}

func (r scheduleRepo) ListByCampaignProduct(_ context.Context, campaignProductID int64) ([]*entity.CampaignSchedule, error) {
	return r.filter(func(s entity.CampaignSchedule) bool { return s.CampaignProductID == campaignProductID }), nil
}

func (r scheduleRepo) filter(keep func(entity.CampaignSchedule) bool) []*entity.CampaignSchedule {
	out := []*entity.CampaignSchedule{}
	for _, id := range sortedIDs(r.d.schedules) {
		s := r.d.schedules[id]
		if keep(s) {
			out = append(out, &s)
		}
	}
	return out
}

func (r scheduleRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.d.schedules[id]; !ok {
		return false, nil
	}
	delete(r.d.schedules, id)
	return true, nil
}
