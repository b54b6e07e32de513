package services

import (
	"strings"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/email"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetUser(userID string) (*dto.UserResponse, error)
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	tokens        *auth.TokenService
	emailProvider email.Provider
	adminEmail    string
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokens *auth.TokenService,
	emailProvider email.Provider,
	adminEmail string,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		tokens:        tokens,
		emailProvider: emailProvider,
		adminEmail:    strings.ToLower(strings.TrimSpace(adminEmail)),
	}
}

// Register creates a user with the requested role. The configured admin
// email is force-assigned the admin role no matter what was asked for;
// everyone else must pick candidate or employer.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.UserResponse, error) {
	emailAddr := strings.ToLower(strings.TrimSpace(req.Email))

	role := models.UserRole(req.Role)
	if s.adminEmail != "" && emailAddr == s.adminEmail {
		role = models.UserRoleAdmin
	} else if role != models.UserRoleCandidate && role != models.UserRoleEmployer {
		return nil, apperrors.ErrInvalidUserRole
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        emailAddr,
		PasswordHash: hashedPassword,
		Role:         role,
		Name:         strings.TrimSpace(req.Name),
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyRegistered
		}
		return nil, apperrors.InternalError(err)
	}

	// best-effort, a broken SMTP relay must not fail registration
	if err := s.emailProvider.SendWelcome(user.Email, user.Name, user.Role); err != nil {
		logger.Warn("Failed to send welcome email", "email", user.Email, "error", err.Error())
	}

	return dto.NewUserResponse(user), nil
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	}, nil
}

func (s *AuthServiceImpl) GetUser(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}
