// Package memory implementa los repositorios y la unidad de trabajo en memoria.
// Respeta las mismas restricciones que el esquema SQL (únicos, claves foráneas y
// la cascada campaña → campaña-producto) y se usa en tests y en desarrollo local.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/hareware-api/internal/domain"
	"github.com/jhoicas/hareware-api/internal/domain/repository"
)

// Store guarda una base central y una base por CNPJ registrado.
type Store struct {
	mu      sync.Mutex
	control *controlData
	tenants map[string]*tenantData

	commits   int
	rollbacks int
}

// NewStore crea el store con las bases de tenant indicadas (CNPJ solo dígitos).
func NewStore(taxIDs ...string) *Store {
	s := &Store{control: newControlData(), tenants: make(map[string]*tenantData)}
	for _, id := range taxIDs {
		s.tenants[id] = newTenantData()
	}
	return s
}

// AddTenant registra una base vacía para el CNPJ si no existe.
func (s *Store) AddTenant(taxID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tenants[taxID]; !ok {
		s.tenants[taxID] = newTenantData()
	}
}

// Stats devuelve cuántas unidades de trabajo terminaron en commit y en rollback.
func (s *Store) Stats() (commits, rollbacks int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits, s.rollbacks
}

// ControlPlane ejecuta fn sobre una copia de la base central; la copia se publica solo si fn termina sin error.
func (s *Store) ControlPlane(ctx context.Context, fn func(repository.ControlPlane) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.control.clone()
	committed := false
	defer func() {
		if !committed {
			s.rollbacks++
		}
	}()

	if err := fn(work.repos()); err != nil {
		return err
	}
	s.control = work
	s.commits++
	committed = true
	return nil
}

// Tenant ejecuta fn sobre una copia de la base del CNPJ.
func (s *Store) Tenant(ctx context.Context, taxID string, fn func(repository.Tenant) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.tenants[taxID]
	if !ok {
		return &domain.UnknownTenantError{Selector: taxID}
	}
	work := current.clone()
	committed := false
	defer func() {
		if !committed {
			s.rollbacks++
		}
	}()

	if err := fn(work.repos()); err != nil {
		return err
	}
	s.tenants[taxID] = work
	s.commits++
	committed = true
	return nil
}
