package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/hareware-api/internal/application/dto"
	"github.com/jhoicas/hareware-api/internal/application/ports"
	"github.com/jhoicas/hareware-api/internal/domain"
	"github.com/jhoicas/hareware-api/internal/domain/entity"
	"github.com/jhoicas/hareware-api/internal/domain/repository"
	"github.com/jhoicas/hareware-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Identity usuario autenticado. El hash nunca se serializa.
type Identity struct {
	UserID       int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	AccessLevel  int    `json:"nivel_acesso"`
	CompanyID    int64  `json:"id_empresa"`
	Active       bool   `json:"status"`
}

func identityOf(u *entity.User) *Identity {
	return &Identity{
		UserID:       u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		AccessLevel:  u.AccessLevel,
		CompanyID:    u.CompanyID,
		Active:       u.Active,
	}
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// compareDummy iguala el costo de un login con usuario inexistente.
func compareDummy(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("hareware-sin-usuario"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

// AuthUseCase casos de uso de autenticación: verificación de credenciales, login y verificación de token.
type AuthUseCase struct {
	uow    ports.UnitOfWork
	jwtCfg JWTConfig
	now    func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(uow ports.UnitOfWork, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{uow: uow, jwtCfg: jwtCfg, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *AuthUseCase) WithClock(now func() time.Time) *AuthUseCase {
	uc.now = now
	return uc
}

// Authenticate valida usuario y contraseña contra la base central.
// Cualquier fallo devuelve ErrInvalidCredentials, sin revelar la causa.
func (uc *AuthUseCase) Authenticate(ctx context.Context, username, password string) (*Identity, error) {
	var id *Identity
	err := uc.uow.ControlPlane(ctx, func(cp repository.ControlPlane) error {
		var err error
		id, err = verify(ctx, cp, username, password)
		return err
	})
	if err != nil {
		return nil, err
	}
	return id, nil
}

func verify(ctx context.Context, cp repository.ControlPlane, username, password string) (*Identity, error) {
	user, err := cp.Users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		compareDummy(password)
		return nil, domain.ErrInvalidCredentials
	}
	passwordOK := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil

	company, err := cp.Companies.GetByID(ctx, user.CompanyID)
	if err != nil {
		return nil, err
	}
	if !passwordOK || !user.Active || company == nil || !company.Active {
		return nil, domain.ErrInvalidCredentials
	}
	return identityOf(user), nil
}

// Login verifica credenciales, registra el último acceso y emite el token.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.TokenResponse, error) {
	now := uc.now()
	var id *Identity
	err := uc.uow.ControlPlane(ctx, func(cp repository.ControlPlane) error {
		var err error
		id, err = verify(ctx, cp, in.Username, in.Password)
		if err != nil {
			return err
		}
		return cp.Users.TouchLastAccess(ctx, id.UserID, now)
	})
	if err != nil {
		return nil, err
	}
	token, err := jwt.GenerateAt(uc.jwtCfg.Secret, id.Username, uc.jwtCfg.Issuer, id.AccessLevel, uc.jwtCfg.ExpMinutes, now)
	if err != nil {
		return nil, fmt.Errorf("auth: emitir token: %w", err)
	}
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   uc.jwtCfg.ExpMinutes * 60,
	}, nil
}

// VerifyToken valida firma y expiración y vuelve a cargar el usuario vivo.
// Token inválido, usuario inexistente o inactivo → ErrUnauthorized.
func (uc *AuthUseCase) VerifyToken(ctx context.Context, token string) (*Identity, error) {
	claims, err := jwt.ParseAt(uc.jwtCfg.Secret, token, uc.now())
	if err != nil {
		if errors.Is(err, jwt.ErrInvalidToken) {
			return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
		}
		return nil, err
	}
	var id *Identity
	err = uc.uow.ControlPlane(ctx, func(cp repository.ControlPlane) error {
		user, err := cp.Users.GetByUsername(ctx, claims.Subject)
		if err != nil {
			return err
		}
		if user == nil || !user.Active {
			return domain.ErrUnauthorized
		}
		id = identityOf(user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return id, nil
}
