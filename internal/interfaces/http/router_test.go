package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/hareware-api/internal/application/auth"
	"github.com/jhoicas/hareware-api/internal/application/dto"
	"github.com/jhoicas/hareware-api/internal/application/ports"
	"github.com/jhoicas/hareware-api/internal/application/usecase"
	"github.com/jhoicas/hareware-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/hareware-api/internal/interfaces/http"
	"github.com/jhoicas/hareware-api/pkg/logger"
)

const (
	tenantCNPJ    = "12345678000190"
	platformCNPJ  = "11.222.333/0001-81"
	adminPassword = "admin-123"
)

type testServer struct {
	app   *fiber.App
	store *memory.Store
}

// newTestServer arma la API completa sobre el store en memoria con un administrador de plataforma sembrado.
func newTestServer(t *testing.T, limiter ports.LoginRateLimiter) *testServer {
	t.Helper()
	store := memory.NewStore(tenantCNPJ)
	companies := usecase.NewCompanyUseCase(store, []string{tenantCNPJ})
	users := usecase.NewUserUseCase(store).WithHashCost(bcrypt.MinCost)
	contracts := usecase.NewContractUseCase(store, nil)

	ctx := context.Background()
	platform, err := companies.Create(ctx, dto.CreateCompanyRequest{
		TradeName: "HareWare", LegalName: "HareWare Tecnologia", CNPJ: platformCNPJ,
		Address: "Av. Central 100", Phone: "1130000000", Email: "ops@hareware.com",
	})
	require.NoError(t, err)
	_, err = contracts.Create(ctx, dto.CreateContractRequest{CompanyID: platform.ID, Plan: 5, TermDays: 365})
	require.NoError(t, err)
	_, err = users.Create(ctx, dto.CreateUserRequest{
		Name: "Admin", Username: "admin", Email: "admin@hareware.com", Phone: "1130000000",
		Password: adminPassword, AccessLevel: 3, CompanyID: platform.ID,
	})
	require.NoError(t, err)

	authUC := auth.NewAuthUseCase(store, auth.JWTConfig{Secret: "test-secret", ExpMinutes: 30, Issuer: "hareware-test"})
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.NewErrorHandler(logger.Nop())})
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:            authUC,
		Resolver:          auth.NewTenantResolver(store),
		LoginLimiter:      limiter,
		CompanyUC:         companies,
		UserUC:            users,
		ContractUC:        contracts,
		CredentialUC:      usecase.NewCredentialUseCase(store),
		ProductUC:         usecase.NewProductUseCase(store, nil),
		CampaignUC:        usecase.NewCampaignUseCase(store),
		CampaignProductUC: usecase.NewCampaignProductUseCase(store),
		ScheduleUC:        usecase.NewScheduleUseCase(store),
		WhatsAppUC:        usecase.NewWhatsAppUseCase(nil, ""),
		AssistantUC:       usecase.NewAssistantUseCase(store, nil, "openaiHW"),
		AdminLevel:        3,
	})
	return &testServer{app: app, store: store}
}

func (s *testServer) call(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

// formLogin usa el formulario OAuth2 de /token.
func (s *testServer) formLogin(t *testing.T, username, password string) (int, dto.TokenResponse) {
	t.Helper()
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var tok dto.TokenResponse
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&tok))
	}
	return resp.StatusCode, tok
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return out
}

func TestEndToEnd_CompanyUserProduct(t *testing.T) {
	s := newTestServer(t, nil)

	status, adminTok := s.formLogin(t, "admin", adminPassword)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "bearer", adminTok.TokenType)

	status, raw := s.call(t, http.MethodPost, "/empresa/cadastrar-empresa", adminTok.AccessToken, dto.CreateCompanyRequest{
		TradeName: "Mercado Bom", LegalName: "Mercado Bom Ltda", CNPJ: "12.345.678/0001-90",
		Address: "Rua das Flores 10", Phone: "1133334444", Email: "contato@mercadobom.com",
	})
	require.Equal(t, http.StatusCreated, status, string(raw))
	company := decode[dto.CompanyResponse](t, raw)
	assert.Equal(t, tenantCNPJ, company.CNPJ)
	assert.True(t, company.Status)

	status, raw = s.call(t, http.MethodPost, "/contrato/cadastrar-contrato", adminTok.AccessToken,
		dto.CreateContractRequest{CompanyID: company.ID, Plan: 1, TermDays: 30})
	require.Equal(t, http.StatusCreated, status, string(raw))

	newUser := dto.CreateUserRequest{
		Name: "Carla", Username: "carla", Email: "carla@mercadobom.com", Phone: "11988887777",
		Password: "segredo-1", AccessLevel: 1, CompanyID: company.ID,
	}
	status, raw = s.call(t, http.MethodPost, "/usuario/cadastrar-usuario", adminTok.AccessToken, newUser)
	require.Equal(t, http.StatusCreated, status, string(raw))

	// plano 1 admite un solo usuario
	newUser.Username = "diego"
	status, raw = s.call(t, http.MethodPost, "/usuario/cadastrar-usuario", adminTok.AccessToken, newUser)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "SEAT_LIMIT_REACHED", decode[dto.ErrorResponse](t, raw).Code)

	status, raw = s.call(t, http.MethodPost, "/token", "", dto.LoginRequest{Username: "carla", Password: "segredo-1"})
	require.Equal(t, http.StatusOK, status, string(raw))
	userTok := decode[dto.TokenResponse](t, raw).AccessToken

	status, raw = s.call(t, http.MethodPost, "/produto/cadastrar-produto", userTok, map[string]any{
		"nome": "Café 500g", "codigo_produto": "CAF-500", "unidade_medida": "kg",
		"preco_venda": "18.90", "qtd_estoque": 40,
	})
	require.Equal(t, http.StatusCreated, status, string(raw))
	created := decode[dto.ProductResponse](t, raw)

	status, raw = s.call(t, http.MethodGet, "/produto/listar-produtos", userTok, nil)
	require.Equal(t, http.StatusOK, status, string(raw))
	list := decode[dto.ProductListResponse](t, raw)
	require.Len(t, list.Items, 1)
	assert.Equal(t, created.ID, list.Items[0].ID)
	assert.Equal(t, "Café 500g", list.Items[0].Name)
	assert.Equal(t, "18.9", list.Items[0].Price.String())
}

func TestRouter_AccessRules(t *testing.T) {
	s := newTestServer(t, nil)
	_, adminTok := s.formLogin(t, "admin", adminPassword)

	status, _ := s.call(t, http.MethodGet, "/empresa/listar", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, raw := s.call(t, http.MethodGet, "/empresa/listar", adminTok.AccessToken, nil)
	require.Equal(t, http.StatusOK, status, string(raw))
	assert.Len(t, decode[dto.CompanyListResponse](t, raw).Items, 1)

	status, raw = s.call(t, http.MethodGet, "/usuario/me", adminTok.AccessToken, nil)
	require.Equal(t, http.StatusOK, status, string(raw))
	assert.Equal(t, "admin", decode[dto.UserResponse](t, raw).Username)

	// la empresa de plataforma no tiene base de tenant configurada
	status, raw = s.call(t, http.MethodGet, "/produto/listar-produtos", adminTok.AccessToken, nil)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "TENANT_NOT_CONFIGURED", decode[dto.ErrorResponse](t, raw).Code)
}

func TestRouter_NotFoundAndValidation(t *testing.T) {
	s := newTestServer(t, nil)
	_, tok := s.formLogin(t, "admin", adminPassword)

	status, raw := s.call(t, http.MethodGet, "/empresa/pesquisar-empresa/99.999.999-0001-99", tok.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, status, string(raw))

	status, raw = s.call(t, http.MethodDelete, "/contrato/deletar-contrato/999", tok.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, status, string(raw))

	status, raw = s.call(t, http.MethodGet, "/contrato/pesquisar-contrato/abc", tok.AccessToken, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_ID", decode[dto.ErrorResponse](t, raw).Code)

	status, raw = s.call(t, http.MethodPost, "/empresa/cadastrar-empresa", tok.AccessToken, map[string]any{
		"nome_fantasia": "X", "razao_social": "X", "cnpj": "12.345.678/0001-90", "telefone": "1", "email": "x@x.com",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	body := decode[dto.ErrorResponse](t, raw)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Contains(t, body.Message, "endereco")

	status, raw = s.call(t, http.MethodPost, "/empresa/cadastrar-empresa", tok.AccessToken, dto.CreateCompanyRequest{
		TradeName: "X", LegalName: "X", CNPJ: "11.111.111/1111-11", Address: "R", Phone: "1", Email: "x@x.com",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_CNPJ", decode[dto.ErrorResponse](t, raw).Code)
}

func TestRouter_UpdateAcceptsPutAndPatch(t *testing.T) {
	s := newTestServer(t, nil)
	_, tok := s.formLogin(t, "admin", adminPassword)

	name := "HareWare SaaS"
	status, raw := s.call(t, http.MethodPatch, "/empresa/atualizar-empresa/11222333000181", tok.AccessToken,
		dto.UpdateCompanyRequest{TradeName: &name})
	require.Equal(t, http.StatusOK, status, string(raw))
	assert.Equal(t, name, decode[dto.CompanyResponse](t, raw).TradeName)

	phone := "1140004000"
	status, raw = s.call(t, http.MethodPut, "/empresa/editar-empresa/11222333000181", tok.AccessToken,
		dto.UpdateCompanyRequest{Phone: &phone})
	require.Equal(t, http.StatusOK, status, string(raw))
	updated := decode[dto.CompanyResponse](t, raw)
	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, name, updated.TradeName)
}

func TestLogin_Failures(t *testing.T) {
	s := newTestServer(t, nil)

	status, _ := s.formLogin(t, "admin", "errada")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = s.formLogin(t, "ninguem", "errada")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, raw := s.call(t, http.MethodPost, "/token", "", map[string]string{"username": "admin"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, raw).Code)
}

type denyAfter struct {
	limit int
	seen  map[string]int
}

func (d *denyAfter) Allow(_ context.Context, key string) (bool, error) {
	d.seen[key]++
	return d.seen[key] <= d.limit, nil
}

func TestLogin_RateLimited(t *testing.T) {
	limiter := &denyAfter{limit: 2, seen: map[string]int{}}
	s := newTestServer(t, limiter)

	for i := 0; i < 2; i++ {
		status, _ := s.formLogin(t, "admin", "errada")
		assert.Equal(t, http.StatusUnauthorized, status)
	}
	status, _ := s.formLogin(t, "admin", adminPassword)
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Len(t, limiter.seen, 1)
}

// tenantUserToken registra la empresa del tenant con un usuario operador y devuelve su token.
func (s *testServer) tenantUserToken(t *testing.T) string {
	t.Helper()
	_, adminTok := s.formLogin(t, "admin", adminPassword)
	status, raw := s.call(t, http.MethodPost, "/empresa/cadastrar-empresa", adminTok.AccessToken, dto.CreateCompanyRequest{
		TradeName: "Mercado Bom", LegalName: "Mercado Bom Ltda", CNPJ: tenantCNPJ,
		Address: "Rua das Flores 10", Phone: "1133334444", Email: "contato@mercadobom.com",
	})
	require.Equal(t, http.StatusCreated, status, string(raw))
	company := decode[dto.CompanyResponse](t, raw)

	status, raw = s.call(t, http.MethodPost, "/contrato/cadastrar-contrato", adminTok.AccessToken,
		dto.CreateContractRequest{CompanyID: company.ID, Plan: 1, TermDays: 30})
	require.Equal(t, http.StatusCreated, status, string(raw))

	status, raw = s.call(t, http.MethodPost, "/usuario/cadastrar-usuario", adminTok.AccessToken, dto.CreateUserRequest{
		Name: "Carla", Username: "carla", Email: "carla@mercadobom.com", Phone: "11988887777",
		Password: "segredo-1", AccessLevel: 1, CompanyID: company.ID,
	})
	require.Equal(t, http.StatusCreated, status, string(raw))

	status, tok := s.formLogin(t, "carla", "segredo-1")
	require.Equal(t, http.StatusOK, status)
	return tok.AccessToken
}

func TestRouter_CampaignProductUnderscoreRoutes(t *testing.T) {
	s := newTestServer(t, nil)
	tok := s.tenantUserToken(t)

	for _, path := range []string{
		"/campanha_produto/visualizar_campanhas_produtos",
		"/campanha_produto/visualizar_produtos_campanha/1",
		"/campanha_produto/visualizar_campanhas_produto/1",
		"/campanha-produto/visualizar-campanhas-produtos",
	} {
		status, raw := s.call(t, http.MethodGet, path, tok, nil)
		require.Equal(t, http.StatusOK, status, "%s: %s", path, raw)
		assert.Empty(t, decode[[]dto.CampaignProductResponse](t, raw), path)
	}
}
