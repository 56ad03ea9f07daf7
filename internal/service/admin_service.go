// FILE: internal/service/admin_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"storefront-be/internal/dto"
	"storefront-be/internal/pkg/logger"
	"storefront-be/internal/pkg/serverutils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type IAdminService interface {
	Login(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error)
	GetLogs(ctx context.Context, query dto.GetLogsQuery) ([]logger.LogEntry, error)
	GetLogById(ctx context.Context, id string) (*logger.LogEntry, error)
}

type adminService struct {
	passwordHash []byte
	jwtSecret    []byte
	tokenTTL     time.Duration
	logger       logger.ILogger
}

// NewAdminService accepts either a plain password or a bcrypt hash ($2a$/$2b$).
func NewAdminService(password, jwtSecret string, tokenTTL time.Duration, logger logger.ILogger) (IAdminService, error) {
	hash := []byte(password)
	if !strings.HasPrefix(password, "$2") {
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
	}

	return &adminService{
		passwordHash: hash,
		jwtSecret:    []byte(jwtSecret),
		tokenTTL:     tokenTTL,
		logger:       logger,
	}, nil
}

func (s *adminService) Login(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error) {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password)); err != nil {
		s.logger.Warn("ADMIN", "Admin login rejected", nil)
		return nil, serverutils.NewUnauthorizedError("Access Denied")
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": serverutils.RoleAdmin,
		"exp":  expiresAt.Unix(),
		"iat":  time.Now().Unix(),
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, serverutils.NewInternalError("Failed to issue token", err)
	}

	s.logger.Info("ADMIN", "Admin logged in", nil)
	return &dto.AdminLoginResponse{
		AccessToken: signed,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *adminService) GetLogs(ctx context.Context, query dto.GetLogsQuery) ([]logger.LogEntry, error) {
	limit := query.Limit
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	offset := query.Offset
	if offset < 0 {
		offset = 0
	}
	return s.logger.GetLogs(strings.ToUpper(query.Level), limit, offset)
}

func (s *adminService) GetLogById(ctx context.Context, id string) (*logger.LogEntry, error) {
	entry, err := s.logger.GetLogById(id)
	if errors.Is(err, logger.ErrLogNotFound) {
		return nil, serverutils.NewNotFoundError("Log not found")
	}
	return entry, err
}
