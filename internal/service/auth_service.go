package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"brandhub/api/internal/config"
	"brandhub/api/internal/ids"
	"brandhub/api/internal/models"
	"brandhub/api/internal/repository"
	"brandhub/api/internal/security"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountLocked      = errors.New("account locked")
	ErrMissingToken       = errors.New("missing token")
	ErrForbidden          = errors.New("forbidden")
	ErrEmailTaken         = errors.New("email already in use")
	ErrUsernameTaken      = errors.New("username already in use")
	ErrWrongPassword      = errors.New("current password is wrong")
	ErrSelfDeactivate     = errors.New("cannot deactivate own account")
)

// AdminStore is the account persistence surface the auth service needs.
// *repository.AdminRepository satisfies it.
type AdminStore interface {
	Create(ctx context.Context, admin models.Admin) error
	FindActiveByEmail(ctx context.Context, email string) (models.Admin, error)
	GetByID(ctx context.Context, id string) (models.Admin, error)
	List(ctx context.Context) ([]models.Admin, error)
	RecordLoginFailure(ctx context.Context, id string, attempts int, lockUntil *time.Time) error
	RecordLoginSuccess(ctx context.Context, id string, lastLogin time.Time) error
	UpdatePassword(ctx context.Context, id string, passwordHash []byte) error
	SetActive(ctx context.Context, id string, active bool) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// Capability is an authorization level required for a management operation.
type Capability int

const (
	// CapabilityModerate covers catalog management: moderator or admin.
	CapabilityModerate Capability = iota
	// CapabilityManageAdmins covers account management: admin only.
	CapabilityManageAdmins
)

var capabilityRoles = map[Capability][]models.AdminRole{
	CapabilityModerate:     {models.AdminRoleAdmin, models.AdminRoleModerator},
	CapabilityManageAdmins: {models.AdminRoleAdmin},
}

// Authorize is a pure role gate on top of an authenticated account.
func Authorize(admin models.Admin, capability Capability) error {
	for _, role := range capabilityRoles[capability] {
		if admin.Role == role {
			return nil
		}
	}
	return ErrForbidden
}

type AuthService struct {
	admins AdminStore
	cfg    *config.AppConfig
	log    zerolog.Logger
}

func NewAuthService(admins AdminStore, cfg *config.AppConfig, log zerolog.Logger) *AuthService {
	return &AuthService{
		admins: admins,
		cfg:    cfg,
		log:    log,
	}
}

type LoginResult struct {
	Token string
	Admin models.Admin
}

// Login checks credentials against the lockout state machine and mints a
// session token on success. A missing account and a wrong password both yield
// ErrInvalidCredentials so emails cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, email string, password string) (LoginResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	admin, err := s.admins.FindActiveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	now := time.Now()
	if admin.IsLocked(now) {
		return LoginResult{}, ErrAccountLocked
	}

	ok, err := security.VerifyPassword(password, admin.PasswordHash)
	if err != nil || !ok {
		admin.RegisterLoginFailure(now)
		if err := s.admins.RecordLoginFailure(ctx, admin.ID, admin.LoginAttempts, admin.LockUntil); err != nil {
			s.log.Error().Err(err).Str("admin_id", admin.ID).Msg("record login failure")
		}
		return LoginResult{}, ErrInvalidCredentials
	}

	admin.RegisterLoginSuccess(now)
	if err := s.admins.RecordLoginSuccess(ctx, admin.ID, now); err != nil {
		return LoginResult{}, err
	}

	token, err := security.GenerateSessionToken(
		s.cfg.Security.JWTSecret,
		admin.ID,
		admin.Email,
		string(admin.Role),
		s.cfg.Security.JWTTTL,
	)
	if err != nil {
		return LoginResult{}, err
	}

	admin.PasswordHash = nil
	return LoginResult{Token: token, Admin: admin}, nil
}

// Authenticate is the sole gate for protected operations: verify the token,
// then re-fetch the account and require it to still be active. A deactivated
// or deleted account is treated exactly like an invalid token.
func (s *AuthService) Authenticate(ctx context.Context, token string) (models.Admin, error) {
	if token == "" {
		return models.Admin{}, ErrMissingToken
	}

	claims, err := security.ParseSessionToken(token, s.cfg.Security.JWTSecret)
	if err != nil {
		return models.Admin{}, err
	}

	admin, err := s.admins.GetByID(ctx, claims.AdminID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return models.Admin{}, security.ErrTokenInvalid
		}
		return models.Admin{}, err
	}
	if !admin.IsActive {
		return models.Admin{}, security.ErrTokenInvalid
	}

	admin.PasswordHash = nil
	return admin, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, adminID string, currentPassword string, newPassword string) error {
	admin, err := s.admins.GetByID(ctx, adminID)
	if err != nil {
		return err
	}

	ok, err := security.VerifyPassword(currentPassword, admin.PasswordHash)
	if err != nil || !ok {
		return ErrWrongPassword
	}

	hash, err := security.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.admins.UpdatePassword(ctx, admin.ID, hash)
}

type CreateAdminInput struct {
	Username string
	Email    string
	Password string
	Role     models.AdminRole
}

func (s *AuthService) CreateAdmin(ctx context.Context, input CreateAdminInput) (models.Admin, error) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Username = strings.TrimSpace(input.Username)
	if input.Role == "" {
		input.Role = models.AdminRoleModerator
	}

	if taken, err := s.admins.ExistsByEmail(ctx, input.Email); err != nil {
		return models.Admin{}, err
	} else if taken {
		return models.Admin{}, ErrEmailTaken
	}
	if taken, err := s.admins.ExistsByUsername(ctx, input.Username); err != nil {
		return models.Admin{}, err
	} else if taken {
		return models.Admin{}, ErrUsernameTaken
	}

	hash, err := security.HashPassword(input.Password)
	if err != nil {
		return models.Admin{}, err
	}

	admin := models.Admin{
		ID:           ids.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		IsActive:     true,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		return models.Admin{}, err
	}

	admin.PasswordHash = nil
	return admin, nil
}

func (s *AuthService) ListAdmins(ctx context.Context) ([]models.Admin, error) {
	admins, err := s.admins.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range admins {
		admins[i].PasswordHash = nil
	}
	return admins, nil
}

// ToggleAdminStatus flips another account's active flag. Deactivating the
// acting account is refused so an admin cannot lock themselves out.
func (s *AuthService) ToggleAdminStatus(ctx context.Context, actorID string, targetID string) (models.Admin, error) {
	if actorID == targetID {
		return models.Admin{}, ErrSelfDeactivate
	}

	admin, err := s.admins.GetByID(ctx, targetID)
	if err != nil {
		return models.Admin{}, err
	}

	admin.IsActive = !admin.IsActive
	if err := s.admins.SetActive(ctx, admin.ID, admin.IsActive); err != nil {
		return models.Admin{}, err
	}

	admin.PasswordHash = nil
	return admin, nil
}
