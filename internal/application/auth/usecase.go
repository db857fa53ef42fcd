package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/rrcaps-api/internal/application/dto"
	"github.com/jhoicas/rrcaps-api/internal/domain"
	"github.com/jhoicas/rrcaps-api/internal/domain/entity"
	"github.com/jhoicas/rrcaps-api/internal/domain/repository"
	"github.com/jhoicas/rrcaps-api/pkg/jwt"
)

// MinPasswordLen longitud mínima de contraseña en registro y cambio.
const MinPasswordLen = 6

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// AuthUseCase casos de uso de autenticación: registro, login, verificación
// de sesión y cambio de contraseña. Los tokens son stateless (sin sesión en
// servidor); no hay revocación antes de la expiración.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un administrador: valida entrada, hashea la contraseña con
// bcrypt, persiste y devuelve token + usuario.
// Devuelve ErrDuplicate si el email ya está registrado.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := validateRegister(in); err != nil {
		return nil, err
	}
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	token, err := uc.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: *toUserResponse(user)}, nil
}

// Login verifica email/password contra el hash almacenado, actualiza el último
// login y devuelve token + usuario.
// Email desconocido y contraseña incorrecta devuelven el MISMO error
// (ErrUnauthorized) para no revelar cuál de los dos falló.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.NewValidationError("credentials", "email y contraseña son requeridos")
	}
	user, err := uc.userRepo.GetActiveByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	// bcrypt compara en tiempo constante respecto del hash.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	now := time.Now()
	if err := uc.userRepo.UpdateLastLogin(ctx, user.ID.Hex(), now); err != nil {
		return nil, err
	}
	user.LastLogin = &now
	token, err := uc.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: *toUserResponse(user)}, nil
}

// Verify re-resuelve al usuario del token contra la DB para confirmar que la
// cuenta sigue existiendo y activa (tokens emitidos antes de una desactivación).
func (uc *AuthUseCase) Verify(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrUnauthorized
	}
	return toUserResponse(user), nil
}

// ChangePassword rota la contraseña del admin autenticado.
// Devuelve ErrWrongPassword si la contraseña actual no coincide.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID string, in dto.ChangePasswordRequest) error {
	if in.CurrentPassword == "" || in.NewPassword == "" {
		return domain.NewValidationError("password", "contraseña actual y nueva contraseña son requeridas")
	}
	if len(in.NewPassword) < MinPasswordLen {
		return domain.NewValidationError("newPassword", "la nueva contraseña debe tener al menos 6 caracteres")
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrWrongPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePassword(ctx, user.ID.Hex(), string(hash))
}

func (uc *AuthUseCase) issueToken(user *entity.User) (string, error) {
	return jwt.Generate(
		uc.jwtCfg.Secret,
		user.ID.Hex(),
		user.Email,
		string(user.Role),
		user.Name,
		uc.jwtCfg.Issuer,
		uc.jwtCfg.ExpHours,
	)
}

func validateRegister(in dto.RegisterRequest) error {
	fields := map[string]string{}
	if in.Name == "" {
		fields["name"] = "el nombre es requerido"
	}
	if in.Email == "" {
		fields["email"] = "el email es requerido"
	}
	if in.Password == "" {
		fields["password"] = "la contraseña es requerida"
	} else if len(in.Password) < MinPasswordLen {
		fields["password"] = "la contraseña debe tener al menos 6 caracteres"
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID.Hex(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		LastLogin: u.LastLogin,
	}
}
