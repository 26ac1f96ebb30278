package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/hareware-api/pkg/config"
)

//go:embed migrations/control_plane.sql
var controlPlaneSchema string

//go:embed migrations/tenant.sql
var tenantSchema string

// SchemaFor devuelve el DDL que corresponde al selector.
func SchemaFor(selector string) string {
	if selector == config.ControlPlaneSelector {
		return controlPlaneSchema
	}
	return tenantSchema
}

// ApplySchema crea (si no existen) las tablas de todas las bases configuradas.
// Sin argumentos pgx usa el protocolo simple, así que el archivo entero va en un Exec.
func ApplySchema(ctx context.Context, p *Provider) error {
	for _, selector := range p.Selectors() {
		ddl := SchemaFor(selector)
		err := p.Run(ctx, selector, func(tx pgx.Tx) error {
			_, err := tx.Exec(ctx, ddl)
			return err
		})
		if err != nil {
			return fmt.Errorf("aplicar esquema en %s: %w", selector, err)
		}
		p.log.Info().Str("selector", selector).Msg("esquema aplicado")
	}
	return nil
}
