package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hareware-api/internal/application/dto"
	"github.com/jhoicas/hareware-api/internal/application/usecase"
	"github.com/jhoicas/hareware-api/internal/domain"
	"github.com/jhoicas/hareware-api/internal/domain/entity"
	"github.com/jhoicas/hareware-api/internal/domain/repository"
	"github.com/jhoicas/hareware-api/internal/infrastructure/memory"
)

func TestWhatsApp_InstanciaEsElCNPJ(t *testing.T) {
	gw := &fakeGateway{}
	uc := usecase.NewWhatsAppUseCase(gw, "https://hook.test/join")
	ctx := context.Background()

	res, err := uc.CreateInstance(ctx, sandboxCNPJ)
	require.NoError(t, err)
	assert.Equal(t, sandboxCNPJ, res.Instance)
	assert.Equal(t, sandboxCNPJ, gw.lastInstance)
	assert.JSONEq(t, `{"ok":true}`, string(res.Result))

	_, err = uc.ConfigureWebhook(ctx, sandboxCNPJ, "")
	require.NoError(t, err)
	assert.Equal(t, "https://hook.test/join", gw.lastWebhook)

	_, err = uc.SendText(ctx, sandboxCNPJ, dto.SendTextRequest{Number: "5511999999999", Message: "Olá", DelayMs: 1500})
	require.NoError(t, err)
	assert.Equal(t, "composing", gw.lastText.Presence)
	assert.Equal(t, 1500*time.Millisecond, gw.lastText.Delay)

	_, err = uc.SendImage(ctx, sandboxCNPJ, dto.SendImageRequest{Number: "5511999999999", MediaBase64: "AAAA", FileName: "a.jpg", Presence: "paused"})
	require.NoError(t, err)
	assert.Equal(t, "paused", gw.lastImage.Presence)
	assert.Equal(t, "a.jpg", gw.lastImage.FileName)
}

func TestWhatsApp_ErroresDelGateway(t *testing.T) {
	gw := &fakeGateway{err: &domain.UpstreamError{Service: "whatsapp", StatusCode: 401, Message: "token"}}
	uc := usecase.NewWhatsAppUseCase(gw, "")

	_, err := uc.Status(context.Background(), sandboxCNPJ)
	assert.ErrorIs(t, err, domain.ErrUpstream)

	_, err = usecase.NewWhatsAppUseCase(&fakeGateway{}, "").ConfigureWebhook(context.Background(), sandboxCNPJ, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = usecase.NewWhatsAppUseCase(nil, "").Logout(context.Background(), sandboxCNPJ)
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestAssistant_UsaCredencial(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, store.ControlPlane(ctx, func(cp repository.ControlPlane) error {
		return cp.Credentials.Create(ctx, &entity.Credential{
			Identifier: "openaiHW", APIToken: "sk-test", AssistantID: "asst_1", Instance: "thread_hw",
		})
	}))
	ai := &fakeAssistant{}
	uc := usecase.NewAssistantUseCase(store, ai, "openaiHW")

	res, err := uc.Ask(ctx, "qual o horário?", "")
	require.NoError(t, err)
	assert.Equal(t, "eco: qual o horário?", res.Answer)
	assert.Equal(t, "thread_hw", res.ThreadID)
	assert.Equal(t, "sk-test", ai.got.APIKey)
	assert.Equal(t, "asst_1", ai.got.AssistantID)

	res, err = uc.Ask(ctx, "oi", "thread_cliente")
	require.NoError(t, err)
	assert.Equal(t, "thread_cliente", res.ThreadID)
}

func TestAssistant_SinCredencial(t *testing.T) {
	uc := usecase.NewAssistantUseCase(memory.NewStore(), &fakeAssistant{}, "openaiHW")
	_, err := uc.Ask(context.Background(), "oi", "")
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestCredential_CRUDEnmascaraToken(t *testing.T) {
	uc := usecase.NewCredentialUseCase(memory.NewStore())
	ctx := context.Background()

	c, err := uc.Create(ctx, dto.CreateCredentialRequest{Identifier: "openaiHW", APIToken: "sk-abcdef123456"})
	require.NoError(t, err)
	assert.Equal(t, "****3456", c.APIToken)

	_, err = uc.Create(ctx, dto.CreateCredentialRequest{Identifier: "openaiHW"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	updated, err := uc.Update(ctx, c.ID, dto.UpdateCredentialRequest{AssistantID: ptr("asst_9")})
	require.NoError(t, err)
	assert.Equal(t, "asst_9", updated.AssistantID)
	assert.Equal(t, "****3456", updated.APIToken)

	got, err := uc.GetByIdentifier(ctx, "openaiHW")
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)

	ok, err := uc.Delete(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
