package postgres

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/hareware-api/internal/domain"
	"github.com/jhoicas/hareware-api/pkg/config"
	"github.com/jhoicas/hareware-api/pkg/logger"
)

// txBeginner es la parte de *pgxpool.Pool que usa el Provider.
type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

type openFunc func(ctx context.Context, dsn string) (txBeginner, error)

// Provider mantiene un pool por selector de la tabla estática de bases.
// Los pools se abren en el primer uso y se comparten entre peticiones.
type Provider struct {
	table config.TenantTable
	open  openFunc
	log   *logger.Logger

	mu    sync.Mutex
	pools map[string]txBeginner
}

// NewProvider construye el proveedor de sesiones sobre la tabla de bases.
func NewProvider(table config.TenantTable, opts PoolOptions, log *logger.Logger) *Provider {
	return newProvider(table, func(ctx context.Context, dsn string) (txBeginner, error) {
		return NewPool(ctx, dsn, opts)
	}, log)
}

func newProvider(table config.TenantTable, open openFunc, log *logger.Logger) *Provider {
	if log == nil {
		log = logger.Nop()
	}
	return &Provider{
		table: table,
		open:  open,
		log:   log.Component("db"),
		pools: make(map[string]txBeginner),
	}
}

func (p *Provider) pool(ctx context.Context, selector string) (txBeginner, error) {
	dsn, ok := p.table.Lookup(selector)
	if !ok {
		return nil, &domain.UnknownTenantError{Selector: selector}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if pool, ok := p.pools[selector]; ok {
		return pool, nil
	}
	pool, err := p.open(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("conectar base %s: %w", selector, err)
	}
	p.pools[selector] = pool
	p.log.Info().Str("selector", selector).Msg("pool abierto")
	return pool, nil
}

// Run abre una transacción en la base del selector, ejecuta fn y confirma.
// Si fn devuelve error o entra en pánico se revierte y la conexión vuelve al pool.
func (p *Provider) Run(ctx context.Context, selector string, fn func(pgx.Tx) error) error {
	pool, err := p.pool(ctx, selector)
	if err != nil {
		return err
	}
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			p.log.Error().Err(rbErr).Str("selector", selector).Msg("rollback fallido")
			return
		}
		p.log.Debug().Str("selector", selector).Msg("transacción revertida")
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	committed = true
	return nil
}

// Ping comprueba la base del plano de control.
func (p *Provider) Ping(ctx context.Context) error {
	pool, err := p.pool(ctx, config.ControlPlaneSelector)
	if err != nil {
		return err
	}
	return pool.Ping(ctx)
}

// Selectors devuelve los selectores configurados.
func (p *Provider) Selectors() []string {
	return p.table.Selectors()
}

// Close cierra todos los pools abiertos.
func (p *Provider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for selector, pool := range p.pools {
		pool.Close()
		delete(p.pools, selector)
	}
}
