package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"classico-be/internal/apperr"
	"classico-be/internal/backend"
	"classico-be/internal/config"
	"classico-be/internal/dto"
	"classico-be/internal/entity"
)

const bcryptCost = 12

type IAuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	selector *backend.Selector
	cfg      config.JWTConfig
	validate *validator.Validate
}

func NewAuthService(selector *backend.Selector, cfg config.JWTConfig) IAuthService {
	return &authService{
		selector: selector,
		cfg:      cfg,
		validate: validator.New(),
	}
}

func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error) {
	// 1. Validate before touching storage: bad email or short password
	// must never reach the backend.
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	// 2. Lazy backend selection; an auth-only flow decides Relational.
	facade, err := s.selector.Ensure(ctx, nil)
	if err != nil {
		return nil, err
	}

	// 3. Pre-check for a friendlier error; the unique constraint in
	// CreateUser stays the authoritative guard.
	existing, err := facade.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user, err := facade.CreateUser(ctx, req.Email, req.Username, string(hash))
	if err != nil {
		return nil, err
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.SignupResponse{
		User:  dto.UserDTO{Id: user.Id, Email: user.Email, Username: user.Username},
		Token: token,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	facade, err := s.selector.Ensure(ctx, nil)
	if err != nil {
		return nil, err
	}

	user, err := facade.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperr.ErrInvalidCredentials
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{Token: token}, nil
}

func (s *authService) signToken(user *entity.User) (string, error) {
	expiresIn, err := time.ParseDuration(s.cfg.ExpiresIn)
	if err != nil {
		expiresIn = 168 * time.Hour
	}

	claims := jwt.MapClaims{
		"sub":   user.Id,
		"email": user.Email,
		"exp":   time.Now().Add(expiresIn).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
}
