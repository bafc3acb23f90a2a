// Package auth contiene los casos de uso de autenticación: registro y login.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/tallerpro-api/internal/application/dto"
	"github.com/tu-usuario/tallerpro-api/internal/domain"
	"github.com/tu-usuario/tallerpro-api/internal/domain/entity"
	"github.com/tu-usuario/tallerpro-api/internal/domain/repository"
	"github.com/tu-usuario/tallerpro-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	activityLog repository.ActivityLogRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, activityLog repository.ActivityLogRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, activityLog: activityLog, jwtCfg: jwtCfg}
}

// RegisterUser crea una cuenta: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado. Las cuentas
// nuevas nacen pending hasta aprobar un plan; el nivel inicial es starter.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, _ := uc.userRepo.GetByEmail(ctx, in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	user := &entity.User{
		ID:            uuid.New().String(),
		Email:         in.Email,
		PasswordHash:  string(hash),
		Name:          name,
		Role:          role,
		Status:        entity.StatusPending,
		PlanID:        entity.PlanStarter,
		WalletBalance: decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT, registra el login en la bitácora
// y retorna token + usuario. El registro en bitácora es best-effort: un fallo
// ahí no bloquea el login.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, shopIDFor(user), user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	_ = uc.activityLog.Log(ctx, &entity.ActivityLog{
		ID:         uuid.New().String(),
		UserID:     user.ID,
		ActionType: entity.ActionUserLogin,
		Status:     "ok",
		Timestamp:  time.Now(),
	})

	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// shopIDFor resuelve el tenant del token: la propia cuenta para USER.
// TEAM_MEMBER hereda el taller cuando la membresía esté modelada.
func shopIDFor(u *entity.User) string {
	return u.ID
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		PlanID:    u.PlanID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
