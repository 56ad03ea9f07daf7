package service

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"storefront-be/internal/dto"
	"storefront-be/internal/pkg/logger"
	"storefront-be/internal/pkg/serverutils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func TestAdminService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("correct password issues an admin token", func(t *testing.T) {
		svc, err := NewAdminService("admin123", testSecret, time.Hour, logger.NewNopLogger())
		require.NoError(t, err)

		res, err := svc.Login(ctx, &dto.AdminLoginRequest{Password: "admin123"})
		require.NoError(t, err)

		token, err := jwt.Parse(res.AccessToken, func(*jwt.Token) (interface{}, error) {
			return []byte(testSecret), nil
		})
		require.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, serverutils.RoleAdmin, claims["role"])
		assert.WithinDuration(t, time.Now().Add(time.Hour), res.ExpiresAt, time.Minute)
	})

	t.Run("wrong password is denied", func(t *testing.T) {
		svc, err := NewAdminService("admin123", testSecret, time.Hour, logger.NewNopLogger())
		require.NoError(t, err)

		_, err = svc.Login(ctx, &dto.AdminLoginRequest{Password: "nope"})

		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, appErrorCode(t, err))
		assert.Equal(t, "Access Denied", err.Error())
	})

	t.Run("accepts a pre-hashed password", func(t *testing.T) {
		hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
		require.NoError(t, err)
		svc, err := NewAdminService(string(hash), testSecret, time.Hour, logger.NewNopLogger())
		require.NoError(t, err)

		_, err = svc.Login(ctx, &dto.AdminLoginRequest{Password: "s3cret"})

		assert.NoError(t, err)
	})
}

func TestAdminService_Logs(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "app.log")
	log := logger.NewIsolatedLogger(path)
	log.Info("CATALOG", "Catalog loaded", map[string]interface{}{"products": 6})
	log.Error("CATALOG", "API Error, loading fallback catalog", map[string]interface{}{"error": "refused"})
	require.NoError(t, log.Sync())

	svc, err := NewAdminService("admin123", testSecret, time.Hour, log)
	require.NoError(t, err)

	all, err := svc.GetLogs(ctx, dto.GetLogsQuery{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "API Error, loading fallback catalog", all[0].Message)

	errorsOnly, err := svc.GetLogs(ctx, dto.GetLogsQuery{Level: "error"})
	require.NoError(t, err)
	require.Len(t, errorsOnly, 1)

	entry, err := svc.GetLogById(ctx, errorsOnly[0].Id)
	require.NoError(t, err)
	assert.Equal(t, "CATALOG", entry.Module)

	_, err = svc.GetLogById(ctx, "missing")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrorCode(t, err))
}
