package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Marshmallowc/hrms-backend/internal/domain/auth"
	"github.com/Marshmallowc/hrms-backend/internal/domain/employee"
	"github.com/Marshmallowc/hrms-backend/internal/domain/user"
	"github.com/Marshmallowc/hrms-backend/internal/pkg/database"
	"github.com/Marshmallowc/hrms-backend/internal/pkg/jwt"
	"github.com/Marshmallowc/hrms-backend/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db           *database.DB
	userRepo     user.UserRepository
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
	now          func() time.Time
}

func NewAuthService(
	db *database.DB,
	userRepo user.UserRepository,
	employeeRepo employee.EmployeeRepository,
	jwtService jwt.Service,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		db:           db,
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
		now:          time.Now,
	}
}

// Register implements auth.AuthService. The user and its employee record are
// inserted in one transaction so a duplicate registration leaves no rows
// behind.
func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.RegisterResponse{}, err
	}

	exists, err := s.userRepo.ExistsByEmailOrUsername(ctx, req.Email, req.Username)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return auth.RegisterResponse{}, user.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := user.RoleEmployee
	if req.Role != "" {
		role = user.Role(req.Role)
	}

	fullName := req.FullName
	if fullName == "" {
		fullName = req.Username
	}
	department := req.Department
	if department == "" {
		department = "General"
	}
	position := req.Position
	if position == "" {
		position = "Employee"
	}

	var created user.User
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		created, err = s.userRepo.Create(txCtx, user.User{
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: string(hash),
			Role:         role,
		})
		if err != nil {
			return err
		}

		_, err = s.employeeRepo.Create(txCtx, employee.Employee{
			UserID:     &created.ID,
			FullName:   fullName,
			Department: department,
			Position:   position,
			HireDate:   s.now().UTC().Truncate(24 * time.Hour),
			Status:     employee.StatusActive,
		})
		return err
	})
	if err != nil {
		return auth.RegisterResponse{}, err
	}

	return auth.RegisterResponse{
		Message: "User registered successfully",
		UserID:  created.ID,
	}, nil
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	fullName, err := s.fullNameFor(ctx, u)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	token, _, err := s.jwtService.GenerateAccessToken(u.ID, u.Username, u.Email, u.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User: auth.UserInfo{
			ID:       u.ID,
			Username: u.Username,
			Email:    u.Email,
			Role:     string(u.Role),
			FullName: fullName,
		},
	}, nil
}

// Me implements auth.AuthService.
func (s *AuthServiceImpl) Me(ctx context.Context, principal auth.Principal) (auth.MeResponse, error) {
	u, err := s.userRepo.GetByID(ctx, principal.UserID)
	if err != nil {
		return auth.MeResponse{}, err
	}

	fullName, err := s.fullNameFor(ctx, u)
	if err != nil {
		return auth.MeResponse{}, err
	}

	return auth.MeResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		FullName:  fullName,
	}, nil
}

// fullNameFor resolves the display name, falling back to the username for
// accounts without an employee record.
func (s *AuthServiceImpl) fullNameFor(ctx context.Context, u user.User) (string, error) {
	emp, err := s.employeeRepo.GetByUserID(ctx, u.ID)
	if err != nil {
		if errors.Is(err, employee.ErrNoEmployeeRecord) {
			return u.Username, nil
		}
		return "", fmt.Errorf("failed to resolve employee record: %w", err)
	}
	return emp.FullName, nil
}
