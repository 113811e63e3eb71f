package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"studentboard/internal/auth"
	apperrors "studentboard/internal/errors"
	"studentboard/internal/model"
	"studentboard/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration and login for both roles.
type AuthService interface {
	RegisterAdmin(ctx context.Context, username, password, departmentToken string) (*model.User, error)
	RegisterStudent(ctx context.Context, name, regNo, major, contact string) (*model.Student, error)
	LoginAdmin(ctx context.Context, username, password string) (*LoginResult, error)
	LoginStudent(ctx context.Context, name, regNo string) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, refreshToken string) error
}

// LoginResult carries issued tokens and the public view of the principal.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	User         interface{}
}

type authService struct {
	userRepo        repository.UserRepository
	studentRepo     repository.StudentRepository
	jwtService      *auth.JWTService
	tokenStore      auth.TokenStoreInterface
	departmentToken string
}

// NewAuthService creates a new authentication service. departmentToken is
// the shared departmental secret required for admin registration.
func NewAuthService(
	userRepo repository.UserRepository,
	studentRepo repository.StudentRepository,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
	departmentToken string,
) AuthService {
	return &authService{
		userRepo:        userRepo,
		studentRepo:     studentRepo,
		jwtService:      jwtService,
		tokenStore:      tokenStore,
		departmentToken: departmentToken,
	}
}

// RegisterAdmin creates an admin credential. The departmental token is
// checked before anything touches the store, so a wrong token leaves no
// record behind.
func (s *authService) RegisterAdmin(ctx context.Context, username, password, departmentToken string) (*model.User, error) {
	if departmentToken != s.departmentToken {
		return nil, apperrors.ErrInvalidDepartmentToken
	}

	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, fmt.Errorf("%w: username %q", apperrors.ErrConflict, username)
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hashed),
		Role:         model.RoleAdmin,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// RegisterStudent creates a student record. The registration number is the
// unique identity.
func (s *authService) RegisterStudent(ctx context.Context, name, regNo, major, contact string) (*model.Student, error) {
	existing, err := s.studentRepo.FindByRegNo(ctx, regNo)
	if err == nil && existing != nil {
		return nil, fmt.Errorf("%w: registration number %q", apperrors.ErrConflict, regNo)
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check student existence: %w", err)
	}

	student := &model.Student{
		Name:    name,
		RegNo:   regNo,
		Major:   major,
		Contact: contact,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, fmt.Errorf("create student: %w", err)
	}
	return student, nil
}

// LoginAdmin authenticates an admin and issues access and refresh tokens.
func (s *authService) LoginAdmin(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return s.issueTokens(ctx, user.Username, model.RoleAdmin, user)
}

// LoginStudent authenticates a student by name and registration number.
func (s *authService) LoginStudent(ctx context.Context, name, regNo string) (*LoginResult, error) {
	student, err := s.studentRepo.FindByRegNo(ctx, regNo)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !strings.EqualFold(student.Name, name) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return s.issueTokens(ctx, student.RegNo, model.RoleStudent, student)
}

func (s *authService) issueTokens(ctx context.Context, identity, role string, user interface{}) (*LoginResult, error) {
	accessToken, err := s.jwtService.GenerateAccessToken(identity, role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(identity, role)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, identity, role, auth.RefreshTokenExpiry); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Refresh validates a refresh token and returns a new access token.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return "", apperrors.ErrInvalidRefreshToken
	}

	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return "", apperrors.ErrInvalidRefreshToken
	}

	identity, role, err := s.tokenStore.GetRefreshToken(ctx, tokenID)
	if err != nil {
		return "", apperrors.ErrInvalidRefreshToken
	}
	if identity != claims.Subject || role != claims.Role {
		return "", apperrors.ErrInvalidRefreshToken
	}

	accessToken, err := s.jwtService.GenerateAccessToken(identity, role)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return accessToken, nil
}

// Logout invalidates a refresh token.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return apperrors.ErrInvalidRefreshToken
	}
	return s.tokenStore.DeleteRefreshToken(ctx, tokenID)
}
