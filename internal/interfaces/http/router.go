package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hareware-api/internal/application/auth"
	"github.com/jhoicas/hareware-api/internal/application/ports"
	"github.com/jhoicas/hareware-api/internal/application/usecase"
	"github.com/jhoicas/hareware-api/pkg/logger"
)

// DefaultAdminLevel nivel mínimo para administrar empresas, contratos, usuarios y credenciales.
const DefaultAdminLevel = 3

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC            *auth.AuthUseCase
	Resolver          *auth.TenantResolver
	LoginLimiter      ports.LoginRateLimiter // nil: sin límite
	CompanyUC         *usecase.CompanyUseCase
	UserUC            *usecase.UserUseCase
	ContractUC        *usecase.ContractUseCase
	CredentialUC      *usecase.CredentialUseCase
	ProductUC         *usecase.ProductUseCase
	CampaignUC        *usecase.CampaignUseCase
	CampaignProductUC *usecase.CampaignProductUseCase
	ScheduleUC        *usecase.ScheduleUseCase
	WhatsAppUC        *usecase.WhatsAppUseCase
	AssistantUC       *usecase.AssistantUseCase
	AdminLevel        int
	Log               *logger.Logger
}

// update registra PUT y PATCH; ambos aplican solo los campos enviados.
func update(r fiber.Router, path string, h fiber.Handler) {
	r.Put(path, h)
	r.Patch(path, h)
}

// Router registra las rutas de la API. /health, /metrics y /docs se montan en main.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	adminLevel := deps.AdminLevel
	if adminLevel <= 0 {
		adminLevel = DefaultAdminLevel
	}

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.LoginLimiter, log.Component("auth"))
	app.Post("/token", authHandler.Login)

	authn := AuthMiddleware(deps.AuthUC)
	admin := RequireAccessLevel(adminLevel)
	tenant := RequireTenant(deps.Resolver)

	// Base central: solo administradores
	companies := app.Group("/empresa", authn, admin)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/cadastrar-empresa", companyHandler.Create)
	update(companies, "/atualizar-empresa/:cnpj", companyHandler.Update)
	update(companies, "/editar-empresa/:cnpj", companyHandler.Update)
	companies.Delete("/deletar-empresa/:cnpj", companyHandler.Delete)
	companies.Get("/pesquisar-empresa/:cnpj", companyHandler.Get)
	companies.Get("/listar", companyHandler.List)

	userHandler := NewUserHandler(deps.UserUC)
	app.Get("/usuario/me", authn, userHandler.Me)
	users := app.Group("/usuario", authn, admin)
	users.Post("/cadastrar-usuario", userHandler.Create)
	update(users, "/atualizar-usuario/:username", userHandler.Update)
	update(users, "/editar_usuario/:username", userHandler.Update)
	users.Delete("/deletar-usuario/:username", userHandler.Delete)
	users.Delete("/excluir_usuario/:username", userHandler.Delete)
	users.Get("/pesquisar-usuario/:username", userHandler.Get)
	app.Get("/usuarios/listar_usuarios_empresa/:id", authn, admin, userHandler.ListByCompany)

	contracts := app.Group("/contrato", authn, admin)
	contractHandler := NewContractHandler(deps.ContractUC)
	contracts.Post("/cadastrar-contrato", contractHandler.Create)
	update(contracts, "/atualizar-contrato/:id", contractHandler.Update)
	update(contracts, "/editar-contrato/:id", contractHandler.Update)
	contracts.Delete("/deletar-contrato/:id", contractHandler.Delete)
	contracts.Get("/pesquisar-contrato/:id", contractHandler.Get)
	contracts.Get("/pesquisar-contratos-empresa/:id", contractHandler.ListByCompany)
	contracts.Get("/visualizar-contratos", contractHandler.List)
	contracts.Get("/exportar-pdf/:id", contractHandler.ExportPDF)

	credentials := app.Group("/credencial", authn, admin)
	credentialHandler := NewCredentialHandler(deps.CredentialUC)
	credentials.Post("/cadastrar-credencial", credentialHandler.Create)
	update(credentials, "/atualizar-credencial/:id", credentialHandler.Update)
	credentials.Delete("/deletar-credencial/:id", credentialHandler.Delete)
	credentials.Get("/pesquisar-credencial/:identificador", credentialHandler.Get)
	credentials.Get("/listar", credentialHandler.List)

	// Base del tenant: cualquier usuario autenticado, sobre la base de su empresa
	products := app.Group("/produto", authn, tenant)
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/cadastrar-produto", productHandler.Create)
	update(products, "/atualizar-produto/:id", productHandler.Update)
	products.Delete("/deletar-produto/:id", productHandler.Delete)
	products.Get("/buscar-produto/:id", productHandler.GetByID)
	products.Get("/listar-produtos", productHandler.List)
	products.Get("/pesquisar-produtos", productHandler.Search)
	products.Post("/enviar-imagem/:id", productHandler.UploadImage)

	campaigns := app.Group("/campanha", authn, tenant)
	campaignHandler := NewCampaignHandler(deps.CampaignUC)
	campaigns.Post("/cadastrar-campanha", campaignHandler.Create)
	update(campaigns, "/atualizar-campanha/:id", campaignHandler.Update)
	campaigns.Delete("/deletar-campanha/:id", campaignHandler.Delete)
	campaigns.Get("/pesquisar-campanha/:id", campaignHandler.Get)
	campaigns.Get("/visualizar-campanhas", campaignHandler.List)

	cpHandler := NewCampaignProductHandler(deps.CampaignProductUC)
	for _, prefix := range []string{"/campanha-produto", "/campanha_produto"} {
		cp := app.Group(prefix, authn, tenant)
		cp.Post("/incluir-produto-campanha", cpHandler.Create)
		update(cp, "/atualizar-produto-campanha/:id", cpHandler.Update)
		cp.Delete("/deletar-produto-campanha/:id", cpHandler.Delete)
		cp.Get("/visualizar-campanhas-produtos", cpHandler.List)
		cp.Get("/visualizar-produtos-campanha/:id", cpHandler.ListByCampaign)
		cp.Get("/visualizar-campanhas-produto/:id", cpHandler.ListByProduct)
		cp.Get("/visualizar_campanhas_produtos", cpHandler.List)
		cp.Get("/visualizar_produtos_campanha/:id", cpHandler.ListByCampaign)
		cp.Get("/visualizar_campanhas_produto/:id", cpHandler.ListByProduct)
	}

	schedules := app.Group("/agendamento", authn, tenant)
	scheduleHandler := NewScheduleHandler(deps.ScheduleUC)
	schedules.Post("/cadastrar-agendamento", scheduleHandler.Create)
	schedules.Delete("/deletar-agendamento/:id", scheduleHandler.Delete)
	schedules.Get("/visualizar-agendamentos", scheduleHandler.List)
	schedules.Get("/visualizar-agendamentos-produto-campanha/:id", scheduleHandler.ListByCampaignProduct)

	wpp := app.Group("/join_wpp", authn, tenant)
	wppHandler := NewWhatsAppHandler(deps.WhatsAppUC)
	wpp.Post("/criar-instancia", wppHandler.CreateInstance)
	wpp.Post("/configurar-webhook", wppHandler.ConfigureWebhook)
	wpp.Get("/verificar-status-instancia", wppHandler.Status)
	wpp.Delete("/deslogar-instancia", wppHandler.Logout)
	wpp.Post("/enviar-texto", wppHandler.SendText)
	wpp.Post("/enviar-imagem", wppHandler.SendImage)

	assistantHandler := NewAssistantHandler(deps.AssistantUC)
	app.Post("/assistente/perguntar", authn, assistantHandler.Ask)
}
