package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/hareware-api/internal/application/dto"
	"github.com/jhoicas/hareware-api/internal/application/ports"
	"github.com/jhoicas/hareware-api/internal/domain"
	"github.com/jhoicas/hareware-api/internal/domain/entity"
	"github.com/jhoicas/hareware-api/internal/domain/repository"
)

// UserUseCase alta, edición y baja de usuarios de la base central.
type UserUseCase struct {
	uow      ports.UnitOfWork
	hashCost int
	Clock    Clock
}

// NewUserUseCase construye el caso de uso con bcrypt.DefaultCost.
func NewUserUseCase(uow ports.UnitOfWork) *UserUseCase {
	return &UserUseCase{uow: uow, hashCost: bcrypt.DefaultCost}
}

// WithHashCost cambia el costo de bcrypt (tests usan bcrypt.MinCost).
func (uc *UserUseCase) WithHashCost(cost int) *UserUseCase {
	uc.hashCost = cost
	return uc
}

// Create crea un usuario activo. Reglas: username único, empresa existente,
// contrato vigente y cupo del plan disponible.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.AccessLevel < entity.AccessLevelOperator || in.AccessLevel > entity.AccessLevelAdmin {
		return nil, invalid("nivel_acesso debe estar entre %d y %d", entity.AccessLevelOperator, entity.AccessLevelAdmin)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash de contraseña: %w", err)
	}
	today := uc.Clock.today()
	user := &entity.User{
		Name:         in.Name,
		Username:     in.Username,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: string(hash),
		AccessLevel:  in.AccessLevel,
		RegisteredAt: today,
		Active:       true,
		CompanyID:    in.CompanyID,
	}
	err = uc.uow.ControlPlane(ctx, func(cp repository.ControlPlane) error {
		existing, err := cp.Users.GetByUsername(ctx, in.Username)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrUsernameTaken
		}
		company, err := cp.Companies.GetByID(ctx, in.CompanyID)
		if err != nil {
			return err
		}
		if company == nil {
			return domain.ErrCompanyNotFound
		}
		if err := checkSeat(ctx, cp, company.ID, today); err != nil {
			return err
		}
		return cp.Users.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// checkSeat verifica que la empresa tenga contrato vigente y cupo en su plan.
// Con varios contratos vigentes vale el más reciente.
func checkSeat(ctx context.Context, cp repository.ControlPlane, companyID int64, today time.Time) error {
	contracts, err := cp.Contracts.ListByCompany(ctx, companyID)
	if err != nil {
		return err
	}
	var current *entity.Contract
	for _, c := range contracts {
		if c.CoversDate(today) && (current == nil || c.ID > current.ID) {
			current = c
		}
	}
	if current == nil {
		return domain.ErrNoActiveContract
	}
	limit, ok := entity.PlanSeatLimit(current.Plan)
	if !ok {
		return invalid("plano %d desconocido", current.Plan)
	}
	used, err := cp.Users.CountByCompany(ctx, companyID)
	if err != nil {
		return err
	}
	if used >= limit {
		return fmt.Errorf("%w (%d de %d)", domain.ErrSeatLimitReached, used, limit)
	}
	return nil
}

// GetByUsername obtiene un usuario; (nil, nil) si no existe.
func (uc *UserUseCase) GetByUsername(ctx context.Context, username string) (*dto.UserResponse, error) {
	var user *entity.User
	err := uc.uow.ControlPlane(ctx, func(cp repository.ControlPlane) error {
		var err error
		user, err = cp.Users.GetByUsername(ctx, username)
		return err
	})
	if err != nil || user == nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Update aplica solo los campos enviados. Cambiar el username exige que el nuevo esté libre;
// la contraseña se vuelve a hashear. (nil, nil) si el usuario no existe.
func (uc *UserUseCase) Update(ctx context.Context, username string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if in.AccessLevel != nil && (*in.AccessLevel < entity.AccessLevelOperator || *in.AccessLevel > entity.AccessLevelAdmin) {
		return nil, invalid("nivel_acesso debe estar entre %d y %d", entity.AccessLevelOperator, entity.AccessLevelAdmin)
	}
	var newHash string
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), uc.hashCost)
		if err != nil {
			return nil, fmt.Errorf("hash de contraseña: %w", err)
		}
		newHash = string(hash)
	}

	var user *entity.User
	err := uc.uow.ControlPlane(ctx, func(cp repository.ControlPlane) error {
		var err error
		user, err = cp.Users.GetByUsername(ctx, username)
		if err != nil || user == nil || in.IsEmpty() {
			return err
		}
		if in.Username != nil && *in.Username != user.Username {
			taken, err := cp.Users.GetByUsername(ctx, *in.Username)
			if err != nil {
				return err
			}
			if taken != nil {
				return domain.ErrUsernameTaken
			}
			user.Username = *in.Username
		}
		if in.Name != nil {
			user.Name = *in.Name
		}
		if in.Email != nil {
			user.Email = *in.Email
		}
		if in.Phone != nil {
			user.Phone = *in.Phone
		}
		if newHash != "" {
			user.PasswordHash = newHash
		}
		if in.AccessLevel != nil {
			user.AccessLevel = *in.AccessLevel
		}
		if in.Status != nil {
			user.Active = *in.Status
		}
		return cp.Users.Update(ctx, user)
	})
	if err != nil || user == nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete elimina el usuario; false si no existía.
func (uc *UserUseCase) Delete(ctx context.Context, username string) (bool, error) {
	var deleted bool
	err := uc.uow.ControlPlane(ctx, func(cp repository.ControlPlane) error {
		var err error
		deleted, err = cp.Users.DeleteByUsername(ctx, username)
		return err
	})
	return deleted, err
}

// ListByCompany lista los usuarios de una empresa. ErrCompanyNotFound si la empresa no existe.
func (uc *UserUseCase) ListByCompany(ctx context.Context, companyID int64) ([]dto.UserResponse, error) {
	var users []*entity.User
	err := uc.uow.ControlPlane(ctx, func(cp repository.ControlPlane) error {
		company, err := cp.Companies.GetByID(ctx, companyID)
		if err != nil {
			return err
		}
		if company == nil {
			return domain.ErrCompanyNotFound
		}
		users, err = cp.Users.ListByCompany(ctx, companyID)
		return err
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Username:     u.Username,
		Email:        u.Email,
		Phone:        u.Phone,
		AccessLevel:  u.AccessLevel,
		LastAccess:   dto.NewDatePtr(u.LastAccess),
		RegisteredAt: dto.NewDate(u.RegisteredAt),
		Status:       u.Active,
		CompanyID:    u.CompanyID,
	}
}
