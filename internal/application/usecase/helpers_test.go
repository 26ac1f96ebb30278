package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/hareware-api/internal/application/dto"
	"github.com/jhoicas/hareware-api/internal/application/ports"
	"github.com/jhoicas/hareware-api/internal/application/usecase"
	"github.com/jhoicas/hareware-api/internal/domain/entity"
	"github.com/jhoicas/hareware-api/internal/infrastructure/memory"
)

const sandboxCNPJ = "12345678000190"

var fixedNow = time.Date(2026, 6, 15, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// env agrupa store y casos de uso con reloj fijo.
type env struct {
	store     *memory.Store
	companies *usecase.CompanyUseCase
	users     *usecase.UserUseCase
	contracts *usecase.ContractUseCase
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := memory.NewStore(sandboxCNPJ)
	e := &env{
		store:     store,
		companies: usecase.NewCompanyUseCase(store, []string{"12.345.678/0001-90"}),
		users:     usecase.NewUserUseCase(store).WithHashCost(bcrypt.MinCost),
		contracts: usecase.NewContractUseCase(store, &fakePDF{}),
	}
	e.companies.Clock = fixedClock
	e.users.Clock = fixedClock
	e.contracts.Clock = fixedClock
	return e
}

// companyWithPlan registra la empresa sandbox y un contrato vigente del plan dado.
func (e *env) companyWithPlan(t *testing.T, plan int) *dto.CompanyResponse {
	t.Helper()
	ctx := context.Background()
	c, err := e.companies.Create(ctx, dto.CreateCompanyRequest{
		TradeName: "Hare", LegalName: "Hare Ltda", CNPJ: "12.345.678/0001-90",
		Address: "Rua 1", Phone: "1199999999", Email: "contato@hare.com",
	})
	require.NoError(t, err)
	_, err = e.contracts.Create(ctx, dto.CreateContractRequest{CompanyID: c.ID, Plan: plan, TermDays: 30})
	require.NoError(t, err)
	return c
}

func newUser(companyID int64, username string) dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Name: "Nome " + username, Username: username, Email: username + "@hare.com",
		Phone: "11988887777", Password: "segredo1", AccessLevel: entity.AccessLevelOperator,
		CompanyID: companyID,
	}
}

func ptr[T any](v T) *T { return &v }

// ── fakes de puertos ────────────────────────────────────────────────────────

type fakePDF struct{ calls int }

func (f *fakePDF) GenerateContractPDF(c *entity.Contract, co *entity.Company) ([]byte, error) {
	f.calls++
	return []byte("%PDF-" + co.CNPJ), nil
}

type fakeStorage struct {
	uploaded []string
	deleted  []string
	failWith error
}

func (f *fakeStorage) UploadBase64(_ context.Context, path, _ string, _ string, _ bool) (*ports.StoredObject, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.uploaded = append(f.uploaded, path)
	return &ports.StoredObject{Path: path, PublicURL: f.PublicURL(path)}, nil
}

func (f *fakeStorage) Delete(_ context.Context, paths ...string) error {
	f.deleted = append(f.deleted, paths...)
	return nil
}

func (f *fakeStorage) PublicURL(path string) string {
	return "https://cdn.test/" + path
}

type fakeGateway struct {
	lastInstance string
	lastText     ports.TextMessage
	lastImage    ports.ImageMessage
	lastWebhook  string
	err          error
}

func (g *fakeGateway) reply(instance string) (json.RawMessage, error) {
	g.lastInstance = instance
	if g.err != nil {
		return nil, g.err
	}
	return json.RawMessage(`{"ok":true}`), nil
}

func (g *fakeGateway) CreateInstance(_ context.Context, instance string) (json.RawMessage, error) {
	return g.reply(instance)
}

func (g *fakeGateway) ConfigureWebhook(_ context.Context, instance, url string) (json.RawMessage, error) {
	g.lastWebhook = url
	return g.reply(instance)
}

func (g *fakeGateway) InstanceStatus(_ context.Context, instance string) (json.RawMessage, error) {
	return g.reply(instance)
}

func (g *fakeGateway) Logout(_ context.Context, instance string) (json.RawMessage, error) {
	return g.reply(instance)
}

func (g *fakeGateway) SendText(_ context.Context, instance string, msg ports.TextMessage) (json.RawMessage, error) {
	g.lastText = msg
	return g.reply(instance)
}

func (g *fakeGateway) SendImage(_ context.Context, instance string, msg ports.ImageMessage) (json.RawMessage, error) {
	g.lastImage = msg
	return g.reply(instance)
}

type fakeAssistant struct {
	got ports.AssistantCredential
}

func (a *fakeAssistant) Ask(_ context.Context, cred ports.AssistantCredential, question string) (*ports.AssistantReply, error) {
	a.got = cred
	if question == "" {
		return nil, errors.New("vacía")
	}
	thread := cred.ThreadID
	if thread == "" {
		thread = "thread_nuevo"
	}
	return &ports.AssistantReply{Answer: "eco: " + question, ThreadID: thread, Status: "completed"}, nil
}
