package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/hareware-api/internal/application/dto"
	"github.com/jhoicas/hareware-api/internal/application/ports"
	"github.com/jhoicas/hareware-api/internal/domain"
	"github.com/jhoicas/hareware-api/internal/domain/entity"
	"github.com/jhoicas/hareware-api/internal/domain/repository"
)

// AssistantUseCase envía preguntas al asistente usando la credencial guardada en la base central.
type AssistantUseCase struct {
	uow          ports.UnitOfWork
	assistant    ports.Assistant
	credentialID string
}

// NewAssistantUseCase construye el caso de uso. credentialID es el identificador textual de la credencial.
func NewAssistantUseCase(uow ports.UnitOfWork, assistant ports.Assistant, credentialID string) *AssistantUseCase {
	return &AssistantUseCase{uow: uow, assistant: assistant, credentialID: credentialID}
}

// Ask pregunta al asistente. threadID vacío usa el hilo de la credencial o crea uno nuevo.
func (uc *AssistantUseCase) Ask(ctx context.Context, question, threadID string) (*dto.AskResponse, error) {
	if uc.assistant == nil {
		return nil, &domain.UpstreamError{Service: "assistente", Message: "asistente no configurado"}
	}
	var cred *entity.Credential
	err := uc.uow.ControlPlane(ctx, func(cp repository.ControlPlane) error {
		var err error
		cred, err = cp.Credentials.GetByIdentifier(ctx, uc.credentialID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if cred == nil || cred.APIToken == "" || cred.AssistantID == "" {
		return nil, &domain.UpstreamError{
			Service: "assistente",
			Message: fmt.Sprintf("credencial %q ausente o incompleta", uc.credentialID),
		}
	}
	if threadID == "" {
		threadID = cred.Instance
	}
	reply, err := uc.assistant.Ask(ctx, ports.AssistantCredential{
		APIURL:      cred.APIURL,
		APIKey:      cred.APIToken,
		AssistantID: cred.AssistantID,
		ThreadID:    threadID,
	}, question)
	if err != nil {
		return nil, err
	}
	return &dto.AskResponse{Answer: reply.Answer, ThreadID: reply.ThreadID, Status: reply.Status}, nil
}
