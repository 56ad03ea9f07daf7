package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront-be/internal/pkg/logger"
	"storefront-be/internal/pkg/serverutils"
	"storefront-be/internal/repository/memory"
	"storefront-be/internal/service"
	internalWS "storefront-be/internal/websocket"
	"storefront-be/pkg/catalog"
	"storefront-be/pkg/chat"
	"storefront-be/pkg/intent"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStreamApp() (*fiber.App, service.IChatbotService) {
	log := logger.NewNopLogger()
	svc := service.NewChatbotService(
		memory.NewChatSessionRepository(time.Hour),
		catalog.NewStore(),
		intent.NewEngine(),
		chat.ImmediateScheduler{},
		0,
		log,
	)
	h := NewChatStreamHandler(svc, internalWS.NewHub(svc, log), log)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	h.RegisterRoutes(app.Group("/api"))
	return app, svc
}

func TestChatStreamHandler_Handshake(t *testing.T) {
	app, svc := newStreamApp()
	session, err := svc.CreateSession(context.Background())
	require.NoError(t, err)

	tests := []struct {
		name     string
		path     string
		expected int
	}{
		{"malformed id", "/api/chat/v1/sessions/nope/ws", http.StatusBadRequest},
		{"unknown session", "/api/chat/v1/sessions/" + uuid.NewString() + "/ws", http.StatusNotFound},
		{"plain http on a live session", "/api/chat/v1/sessions/" + session.Id.String() + "/ws", http.StatusUpgradeRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.NoError(t, err)
			defer resp.Body.Close()
			_, _ = io.ReadAll(resp.Body)

			assert.Equal(t, tt.expected, resp.StatusCode)
		})
	}
}
