package service

import (
	"errors"
	"fmt"
	"time"

	"shift-planner-backend/internal/database/models"
	apperrors "shift-planner-backend/internal/errors"
	"shift-planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles staff account management
type UserService struct {
	userRepo  repository.UserRepositoryInterface
	roleRepo  repository.RoleRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepositoryInterface, roleRepo repository.RoleRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{userRepo: userRepo, roleRepo: roleRepo, validator: validator}
}

// CreateUserRequest represents the request to create a user
type CreateUserRequest struct {
	Username    string   `json:"username" validate:"required,min=3,max=50"`
	Password    string   `json:"password" validate:"required,min=8"`
	FirstName   string   `json:"first_name" validate:"required,max=100"`
	LastName    string   `json:"last_name" validate:"required,max=100"`
	DateOfBirth string   `json:"date_of_birth,omitempty"`
	Staff       bool     `json:"staff"`
	RoleCodes   []string `json:"roles,omitempty"`
}

// UpdateUserRequest represents a partial user update; nil fields are unchanged
type UpdateUserRequest struct {
	FirstName *string   `json:"first_name,omitempty"`
	LastName  *string   `json:"last_name,omitempty"`
	Password  *string   `json:"password,omitempty" validate:"omitempty,min=8"`
	Staff     *bool     `json:"staff,omitempty"`
	RoleCodes *[]string `json:"roles,omitempty"`
}

// CreateUser creates a new user with a bcrypt password hash
func (s *UserService) CreateUser(req *CreateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.userRepo.GetByUsername(req.Username); err == nil {
		return nil, apperrors.NewConflictError("username already taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	roles, err := s.resolveRoles(req.RoleCodes)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Staff:        req.Staff,
		Roles:        roles,
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse(dateLayout, req.DateOfBirth)
		if err != nil {
			return nil, apperrors.ErrInvalidDateFormat
		}
		user.DateOfBirth = &dob
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return user, nil
}

// ListUsers retrieves users with pagination
func (s *UserService) ListUsers(limit, offset int) ([]models.User, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.userRepo.GetAll(limit, offset)
}

// ListByRole retrieves the users holding a role code
func (s *UserService) ListByRole(code string) ([]models.User, error) {
	return s.userRepo.GetByRoleCode(code)
}

// UpdateUser applies a partial update
func (s *UserService) UpdateUser(id uuid.UUID, req *UpdateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Staff != nil {
		user.Staff = *req.Staff
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	if req.RoleCodes != nil {
		roles, err := s.resolveRoles(*req.RoleCodes)
		if err != nil {
			return nil, err
		}
		if err := s.userRepo.ReplaceRoles(user, roles); err != nil {
			return nil, fmt.Errorf("replace roles: %w", err)
		}
		user.Roles = roles
	}
	return user, nil
}

// DeleteUser deletes a user
func (s *UserService) DeleteUser(id uuid.UUID) error {
	if _, err := s.GetUser(id); err != nil {
		return err
	}
	return s.userRepo.Delete(id)
}

func (s *UserService) resolveRoles(codes []string) ([]models.Role, error) {
	roles := make([]models.Role, 0, len(codes))
	for _, code := range codes {
		role, err := s.roleRepo.GetByCode(code)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NewValidationError("roles", fmt.Sprintf("unknown role code %q", code))
			}
			return nil, fmt.Errorf("load role: %w", err)
		}
		roles = append(roles, *role)
	}
	return roles, nil
}
