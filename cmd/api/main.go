package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	_ "github.com/jhoicas/hareware-api/docs"
	"github.com/jhoicas/hareware-api/internal/application/auth"
	"github.com/jhoicas/hareware-api/internal/application/ports"
	"github.com/jhoicas/hareware-api/internal/application/usecase"
	infraai "github.com/jhoicas/hareware-api/internal/infrastructure/ai"
	infrapdf "github.com/jhoicas/hareware-api/internal/infrastructure/pdf"
	"github.com/jhoicas/hareware-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/hareware-api/internal/infrastructure/redis"
	"github.com/jhoicas/hareware-api/internal/infrastructure/storage"
	"github.com/jhoicas/hareware-api/internal/infrastructure/whatsapp"
	httpRouter "github.com/jhoicas/hareware-api/internal/interfaces/http"
	"github.com/jhoicas/hareware-api/internal/jobs"
	"github.com/jhoicas/hareware-api/pkg/config"
	"github.com/jhoicas/hareware-api/pkg/logger"
)

// @title                       HareWare API
// @version                     1.0
// @description                 Backend multi-tenant de HareWare: empresas, usuarios, contratos, productos y campañas.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Strs("tenants", cfg.Tenants.Selectors()).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()
	provider := postgres.NewProvider(cfg.Tenants, postgres.PoolOptions{MaxConns: int32(cfg.DB.MaxConns)}, log.Component("postgres"))
	defer provider.Close()

	if err := provider.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	if cfg.App.MigrateOnStart {
		if err := postgres.ApplySchema(ctx, provider); err != nil {
			log.Fatal().Err(err).Msg("aplicar esquema")
		}
		log.Info().Msg("esquema aplicado")
	}
	uow := postgres.NewUnitOfWork(provider)

	// Adaptadores opcionales: sin configuración las operaciones responden 502.
	var gateway ports.WhatsAppGateway
	if cfg.Join.ClientToken != "" {
		gateway = whatsapp.NewJoinClient(cfg.Join.BaseURL, cfg.Join.ClientToken, cfg.Join.Timeout)
	} else {
		log.Warn().Msg("JOIN_TOKEN_CLIENTE vacío: WhatsApp deshabilitado")
	}
	var objectStorage ports.ObjectStorage
	if cfg.Storage.Enabled() {
		objectStorage = storage.NewSupabaseStorage(cfg.Storage.URL, cfg.Storage.Key, cfg.Storage.Bucket)
	} else {
		log.Warn().Msg("SUPABASE_URL/SUPABASE_KEY vacíos: subida de imágenes deshabilitada")
	}
	var loginLimiter ports.LoginRateLimiter
	if cfg.Redis.Enabled() {
		rdb, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		loginLimiter = infraredis.NewLoginLimiter(rdb, cfg.RateLimit.LoginLimit, cfg.RateLimit.LoginWindow)
	}

	authUC := auth.NewAuthUseCase(uow, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	contractUC := usecase.NewContractUseCase(uow, infrapdf.NewMarotoContractPDF())
	assistant := infraai.NewOpenAIAssistant(cfg.OpenAI.BaseURL, cfg.OpenAI.Timeout, cfg.OpenAI.PollInterval)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := httpRouter.NewMetrics(reg, reg)

	expirationJob := jobs.NewContractExpirationJob(contractUC, cfg.Jobs.ContractExpirationCron, log.Component("jobs"), reg)
	if err := expirationJob.Start(); err != nil {
		log.Fatal().Err(err).Msg("programar expiración de contratos")
	}
	defer expirationJob.Stop()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 90, // el asistente espera la ejecución completa
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.NewErrorHandler(log.Component("http")),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestObserver(log.Component("http"), metrics))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "HareWare API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		pingCtx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := provider.Ping(pingCtx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", metrics.Handler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:            authUC,
		Resolver:          auth.NewTenantResolver(uow),
		LoginLimiter:      loginLimiter,
		CompanyUC:         usecase.NewCompanyUseCase(uow, cfg.CNPJ.Sandbox),
		UserUC:            usecase.NewUserUseCase(uow),
		ContractUC:        contractUC,
		CredentialUC:      usecase.NewCredentialUseCase(uow),
		ProductUC:         usecase.NewProductUseCase(uow, objectStorage),
		CampaignUC:        usecase.NewCampaignUseCase(uow),
		CampaignProductUC: usecase.NewCampaignProductUseCase(uow),
		ScheduleUC:        usecase.NewScheduleUseCase(uow),
		WhatsAppUC:        usecase.NewWhatsAppUseCase(gateway, cfg.Join.WebhookURL),
		AssistantUC:       usecase.NewAssistantUseCase(uow, assistant, cfg.OpenAI.CredentialID),
		AdminLevel:        cfg.Access.AdminLevel,
		Log:               log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
