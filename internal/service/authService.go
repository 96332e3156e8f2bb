package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	repository "github.com/ainthinai/booking-api/internal/database/postgres"
	"github.com/ainthinai/booking-api/internal/entity"
	"github.com/ainthinai/booking-api/pkg/auth"
)

type AdminCredentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
}

// GoogleTokenVerifier abstracts the Google ID token check so tests can
// stub the network-backed verifier.
type GoogleTokenVerifier interface {
	Verify(tokenStr string) (*auth.GoogleClaims, error)
}

type authService struct {
	userRepo  repository.UserRepository
	adminRepo repository.AdminRepository
	tokens    *auth.TokenManager
	google    GoogleTokenVerifier
}

func NewAuthService(
	userRepo repository.UserRepository,
	adminRepo repository.AdminRepository,
	tokens *auth.TokenManager,
	google GoogleTokenVerifier,
) AuthService {
	return &authService{
		userRepo:  userRepo,
		adminRepo: adminRepo,
		tokens:    tokens,
		google:    google,
	}
}

// GoogleLogin verifies the Google ID token and logs the user in, creating
// the account on first login. The issued token carries the stored role, so
// promoted accounts keep their privileges across logins.
func (s *authService) GoogleLogin(ctx context.Context, idToken string) (*LoginResult, error) {
	claims, err := s.google.Verify(idToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrUnauthorized, err)
	}

	user, err := s.userRepo.GetByEmail(ctx, claims.Email)
	if errors.Is(err, entity.ErrUserNotFound) {
		user = &entity.User{
			GoogleID:   claims.GoogleID(),
			Name:       claims.Name,
			Email:      claims.Email,
			ProfilePic: claims.Picture,
			Role:       entity.RoleUser,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	token, err := s.tokens.Sign(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, Role: user.Role}, nil
}

func (s *authService) RegisterAdmin(ctx context.Context, req *AdminCredentialsRequest) (*entity.Admin, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", entity.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &entity.Admin{
		Email:        req.Email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

// LoginAdmin checks the password against the stored bcrypt hash. Unknown
// email and wrong password both come back as ErrUnauthorized so callers
// cannot probe which admins exist.
func (s *authService) LoginAdmin(ctx context.Context, req *AdminCredentialsRequest) (*LoginResult, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, req.Email)
	if errors.Is(err, entity.ErrAdminNotFound) {
		return nil, entity.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, entity.ErrUnauthorized
	}

	token, err := s.tokens.Sign(admin.ID, entity.RoleAdmin)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, Role: entity.RoleAdmin}, nil
}

func (s *authService) GetAdminProfile(ctx context.Context, adminID int64) (*entity.Admin, error) {
	return s.adminRepo.GetByID(ctx, adminID)
}
