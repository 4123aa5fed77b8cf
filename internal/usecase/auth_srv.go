package usecase

import (
	"context"
	"time"

	"wardrobe-rental/internal/data/entity"
	"wardrobe-rental/internal/data/repository"
	"wardrobe-rental/internal/dto/request"
	"wardrobe-rental/internal/dto/response"
	"wardrobe-rental/pkg/apperrors"
	"wardrobe-rental/pkg/database"
	"wardrobe-rental/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest, userAgent, ipAddress string) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	repo        *repository.Repository
	expiryHours int
	log         *zap.Logger
}

func NewAuthService(repo *repository.Repository, expiryHours int, log *zap.Logger) AuthService {
	return &authService{
		repo:        repo,
		expiryHours: expiryHours,
		log:         log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, apperrors.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.Internal("check email", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("email %s is already registered", req.Email)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.Internal("hash password", err)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         entity.RoleStaff,
		IsActive:     true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperrors.Conflict("email %s is already registered", req.Email)
		}
		s.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", req.Email),
		)
		return nil, apperrors.Internal("create user", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
	)

	return &response.AuthResponse{
		UserID: user.ID.String(),
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest, userAgent, ipAddress string) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperrors.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.Internal("find user", err)
	}
	// Same message for a missing account and a wrong password
	if user == nil || !user.IsActive {
		return nil, apperrors.Unauthorized("invalid email or password")
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Login rejected",
			zap.String("email", req.Email),
			zap.String("ip", ipAddress),
		)
		return nil, apperrors.Unauthorized("invalid email or password")
	}

	now := time.Now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
		},
		UserID:    user.ID,
		Token:     utils.GenerateSessionToken(),
		ExpiresAt: now.Add(time.Duration(s.expiryHours) * time.Hour),
	}
	if userAgent != "" {
		session.UserAgent = &userAgent
	}
	if ipAddress != "" {
		session.IPAddress = &ipAddress
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		s.log.Error("Failed to create session",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return nil, apperrors.Internal("create session", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
	)

	return &response.AuthResponse{
		UserID:    user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Token:     session.Token.String(),
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return apperrors.Unauthorized("missing session token")
	}

	if err := s.repo.Session.Revoke(ctx, token); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err))
		return apperrors.Internal("revoke session", err)
	}

	return nil
}
