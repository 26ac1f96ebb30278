// bootstrap prepara una instalación nueva: aplica el esquema y crea la empresa
// de plataforma con su contrato y el primer administrador.
//
// Uso:
//
//	go run ./cmd/bootstrap esquema
//	go run ./cmd/bootstrap admin --cnpj 11.222.333/0001-81 --username admin
//
// La contraseña del administrador se lee de BOOTSTRAP_ADMIN_PASSWORD.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/hareware-api/internal/application/dto"
	"github.com/jhoicas/hareware-api/internal/application/ports"
	"github.com/jhoicas/hareware-api/internal/application/usecase"
	"github.com/jhoicas/hareware-api/internal/domain/entity"
	"github.com/jhoicas/hareware-api/internal/infrastructure/postgres"
	"github.com/jhoicas/hareware-api/pkg/config"
	"github.com/jhoicas/hareware-api/pkg/logger"
)

type adminFlags struct {
	company  dto.CreateCompanyRequest
	plan     int
	termDays int
	name     string
	username string
	email    string
	phone    string
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bootstrap",
		Short:         "Prepara las bases de HareWare",
		SilenceUsage:  true,
	}
	root.AddCommand(schemaCmd(), adminCmd())
	return root
}

// setup carga configuración y abre el provider de conexiones.
func setup() (*config.Config, *logger.Logger, *postgres.Provider, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	provider := postgres.NewProvider(cfg.Tenants, postgres.PoolOptions{MaxConns: 2}, log.Component("postgres"))
	return cfg, log, provider, nil
}

func schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "esquema",
		Short: "Crea las tablas de la base central y de cada tenant configurado",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, log, provider, err := setup()
			if err != nil {
				return err
			}
			defer provider.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()
			if err := postgres.ApplySchema(ctx, provider); err != nil {
				return err
			}
			log.Info().Strs("selectores", provider.Selectors()).Msg("esquema aplicado")
			return nil
		},
	}
}

func adminCmd() *cobra.Command {
	var f adminFlags
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Crea la empresa de plataforma, su contrato y el usuario administrador (idempotente)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			password := os.Getenv("BOOTSTRAP_ADMIN_PASSWORD")
			if len(password) < 6 {
				return fmt.Errorf("BOOTSTRAP_ADMIN_PASSWORD debe tener al menos 6 caracteres")
			}
			cfg, log, provider, err := setup()
			if err != nil {
				return err
			}
			defer provider.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()
			return seedAdmin(ctx, postgres.NewUnitOfWork(provider), cfg.CNPJ.Sandbox, f, password, log)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.company.CNPJ, "cnpj", "", "CNPJ de la empresa de plataforma")
	fl.StringVar(&f.company.TradeName, "nome-fantasia", "HareWare", "nombre fantasía")
	fl.StringVar(&f.company.LegalName, "razao-social", "HareWare Tecnologia Ltda", "razón social")
	fl.StringVar(&f.company.Address, "endereco", "", "dirección")
	fl.StringVar(&f.company.Phone, "telefone", "", "teléfono")
	fl.StringVar(&f.company.Email, "email-empresa", "", "email de la empresa")
	fl.IntVar(&f.plan, "plano", 5, "plan del contrato de plataforma")
	fl.IntVar(&f.termDays, "vigencia", 3650, "vigencia del contrato en días")
	fl.StringVar(&f.name, "nome", "Administrador", "nombre del administrador")
	fl.StringVar(&f.username, "username", "admin", "usuario del administrador")
	fl.StringVar(&f.email, "email", "", "email del administrador")
	_ = cmd.MarkFlagRequired("cnpj")
	_ = cmd.MarkFlagRequired("endereco")
	_ = cmd.MarkFlagRequired("telefone")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func seedAdmin(ctx context.Context, uow ports.UnitOfWork, sandbox []string, f adminFlags, password string, log *logger.Logger) error {
	companies := usecase.NewCompanyUseCase(uow, sandbox)
	contracts := usecase.NewContractUseCase(uow, nil)
	users := usecase.NewUserUseCase(uow)

	if f.company.Email == "" {
		f.company.Email = f.email
	}
	company, err := companies.GetByCNPJ(ctx, f.company.CNPJ)
	if err != nil {
		return err
	}
	if company == nil {
		if company, err = companies.Create(ctx, f.company); err != nil {
			return fmt.Errorf("crear empresa: %w", err)
		}
		log.Info().Int64("id", company.ID).Str("cnpj", company.CNPJ).Msg("empresa de plataforma creada")
	}

	list, err := contracts.ListByCompany(ctx, company.ID)
	if err != nil {
		return err
	}
	hasActive := false
	for _, c := range list {
		hasActive = hasActive || c.Status
	}
	if !hasActive {
		c, err := contracts.Create(ctx, dto.CreateContractRequest{CompanyID: company.ID, Plan: f.plan, TermDays: f.termDays})
		if err != nil {
			return fmt.Errorf("crear contrato: %w", err)
		}
		log.Info().Int64("id", c.ID).Int("plano", c.Plan).Msg("contrato de plataforma creado")
	}

	existing, err := users.GetByUsername(ctx, f.username)
	if err != nil {
		return err
	}
	if existing != nil {
		log.Info().Str("username", f.username).Msg("el administrador ya existe, nada que hacer")
		return nil
	}
	admin, err := users.Create(ctx, dto.CreateUserRequest{
		Name:        f.name,
		Username:    f.username,
		Email:       f.email,
		Phone:       f.company.Phone,
		Password:    password,
		AccessLevel: entity.AccessLevelAdmin,
		CompanyID:   company.ID,
	})
	if err != nil {
		return fmt.Errorf("crear administrador: %w", err)
	}
	log.Info().Int64("id", admin.ID).Str("username", admin.Username).Msg("administrador creado")
	return nil
}
