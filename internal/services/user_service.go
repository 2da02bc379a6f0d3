package services

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"courtside/internal/models/db_models"
	"courtside/internal/models/request_models"
	"courtside/internal/models/response_models"
	"courtside/internal/repositories"
	"courtside/pkg/utils"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

type UserServiceInterface interface {
	Register(ctx context.Context, req request_models.SignUpRequest) (*response_models.AuthResponse, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AuthResponse, error)
	LoginWithGoogle(ctx context.Context, code string) (*response_models.AuthResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*response_models.UserResponse, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req request_models.UpdateUserRequest) (*response_models.UserResponse, error)
}

type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserServiceInterface {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) Register(ctx context.Context, req request_models.SignUpRequest) (*response_models.AuthResponse, error) {
	if !usernamePattern.MatchString(req.Username) {
		return nil, utils.ErrInvalidUsername
	}

	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	existing, err = s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrUsernameAlreadyTaken
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Requesting club ownership takes precedence over a selected role.
	role := db_models.RoleStudent
	if req.IsClubOwner {
		role = db_models.RoleClubOwner
	} else if req.Role != "" {
		role = req.Role
	}

	user := &db_models.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hashedPassword,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         role,
		IsActive:     true,
		IsClubOwner:  req.IsClubOwner,
	}

	if err := s.userRepo.Insert(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return s.issueToken(user, "/create-club")
}

func (s *UserService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return s.issueToken(user, "/dashboard")
}

func (s *UserService) LoginWithGoogle(ctx context.Context, code string) (*response_models.AuthResponse, error) {
	info, err := utils.ExchangeGoogleCode(ctx, code)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, info.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if user == nil {
		// First Google sign-in creates a local account with a random,
		// never-shared password.
		password, err := utils.GenerateSecureToken(16)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		hashed, err := utils.HashPassword(password)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}

		username := strings.SplitN(info.Email, "@", 2)[0]

		user = &db_models.User{
			Email:        info.Email,
			Username:     username,
			PasswordHash: hashed,
			FirstName:    info.GivenName,
			LastName:     info.FamilyName,
			Role:         db_models.RoleStudent,
			IsActive:     true,
		}
		if err := s.userRepo.Insert(ctx, user); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	return s.issueToken(user, "")
}

func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*response_models.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	resp := response_models.NewUserResponse(user)
	return &resp, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, req request_models.UpdateUserRequest) (*response_models.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.IsClubOwner != nil {
		user.IsClubOwner = *req.IsClubOwner
	}
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		user.PasswordHash = hashed
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.NewUserResponse(user)
	return &resp, nil
}

func (s *UserService) issueToken(user *db_models.User, ownerRedirect string) (*response_models.AuthResponse, error) {
	token, err := utils.CreateToken(user.ID, user.Role)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := &response_models.AuthResponse{
		User:        response_models.NewUserResponse(user),
		AccessToken: token,
		TokenType:   "bearer",
	}
	if user.IsClubOwner {
		resp.Redirect = ownerRedirect
	}
	return resp, nil
}
