package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/hareware-api/internal/application/dto"
	"github.com/jhoicas/hareware-api/internal/application/ports"
	"github.com/jhoicas/hareware-api/internal/domain/entity"
	"github.com/jhoicas/hareware-api/internal/domain/repository"
)

// CredentialUseCase CRUD de credenciales de APIs externas.
type CredentialUseCase struct {
	uow ports.UnitOfWork
}

// NewCredentialUseCase construye el caso de uso.
func NewCredentialUseCase(uow ports.UnitOfWork) *CredentialUseCase {
	return &CredentialUseCase{uow: uow}
}

// Create registra una credencial; ErrDuplicate si el identificador ya existe.
func (uc *CredentialUseCase) Create(ctx context.Context, in dto.CreateCredentialRequest) (*dto.CredentialResponse, error) {
	cred := &entity.Credential{
		Identifier:  strings.TrimSpace(in.Identifier),
		APIURL:      in.APIURL,
		APIToken:    in.APIToken,
		Instance:    in.Instance,
		AssistantID: in.AssistantID,
	}
	if cred.Identifier == "" {
		return nil, invalid("identificador_textual vacío")
	}
	err := uc.uow.ControlPlane(ctx, func(cp repository.ControlPlane) error {
		return cp.Credentials.Create(ctx, cred)
	})
	if err != nil {
		return nil, err
	}
	return toCredentialResponse(cred), nil
}

// GetByIdentifier obtiene una credencial; (nil, nil) si no existe.
func (uc *CredentialUseCase) GetByIdentifier(ctx context.Context, identifier string) (*dto.CredentialResponse, error) {
	var cred *entity.Credential
	err := uc.uow.ControlPlane(ctx, func(cp repository.ControlPlane) error {
		var err error
		cred, err = cp.Credentials.GetByIdentifier(ctx, identifier)
		return err
	})
	if err != nil || cred == nil {
		return nil, err
	}
	return toCredentialResponse(cred), nil
}

// Update aplica solo los campos enviados; (nil, nil) si no existe.
func (uc *CredentialUseCase) Update(ctx context.Context, id int64, in dto.UpdateCredentialRequest) (*dto.CredentialResponse, error) {
	var cred *entity.Credential
	err := uc.uow.ControlPlane(ctx, func(cp repository.ControlPlane) error {
		var err error
		cred, err = cp.Credentials.GetByID(ctx, id)
		if err != nil || cred == nil || in.IsEmpty() {
			return err
		}
		if in.Identifier != nil {
			cred.Identifier = strings.TrimSpace(*in.Identifier)
		}
		if in.APIURL != nil {
			cred.APIURL = *in.APIURL
		}
		if in.APIToken != nil {
			cred.APIToken = *in.APIToken
		}
		if in.Instance != nil {
			cred.Instance = *in.Instance
		}
		if in.AssistantID != nil {
			cred.AssistantID = *in.AssistantID
		}
		return cp.Credentials.Update(ctx, cred)
	})
	if err != nil || cred == nil {
		return nil, err
	}
	return toCredentialResponse(cred), nil
}

// Delete elimina una credencial; false si no existía.
func (uc *CredentialUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	err := uc.uow.ControlPlane(ctx, func(cp repository.ControlPlane) error {
		var err error
		deleted, err = cp.Credentials.Delete(ctx, id)
		return err
	})
	return deleted, err
}

// List lista todas las credenciales.
func (uc *CredentialUseCase) List(ctx context.Context) ([]dto.CredentialResponse, error) {
	var list []*entity.Credential
	err := uc.uow.ControlPlane(ctx, func(cp repository.ControlPlane) error {
		var err error
		list, err = cp.Credentials.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.CredentialResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCredentialResponse(c))
	}
	return out, nil
}

// maskSecret deja visibles solo los últimos 4 caracteres.
func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return "****"
	}
	return "****" + s[len(s)-4:]
}

func toCredentialResponse(c *entity.Credential) *dto.CredentialResponse {
	return &dto.CredentialResponse{
		ID:          c.ID,
		Identifier:  c.Identifier,
		APIURL:      c.APIURL,
		APIToken:    maskSecret(c.APIToken),
		Instance:    c.Instance,
		AssistantID: c.AssistantID,
	}
}
