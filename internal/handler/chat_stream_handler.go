package handler

import (
	"context"

	"storefront-be/internal/dto"
	"storefront-be/internal/pkg/logger"
	"storefront-be/internal/pkg/serverutils"
	"storefront-be/internal/service"
	internalWS "storefront-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type ChatStreamHandler struct {
	service service.IChatbotService
	hub     *internalWS.Hub
	logger  logger.ILogger
}

func NewChatStreamHandler(service service.IChatbotService, hub *internalWS.Hub, log logger.ILogger) *ChatStreamHandler {
	return &ChatStreamHandler{
		service: service,
		hub:     hub,
		logger:  log,
	}
}

// ServeWs streams a chat session. The transcript so far is sent first as a
// "history" frame, then every append as a "message" frame. Text frames from
// the visitor are submitted as utterances.
func (h *ChatStreamHandler) ServeWs(c *fiber.Ctx) error {
	sessionId, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return serverutils.NewBadRequestError("Invalid chat session id")
	}

	// 404 before the upgrade
	history, err := h.service.GetChatHistory(c.UserContext(), sessionId)
	if err != nil {
		return err
	}

	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("CHAT_WS", "Starting WebSocket session", map[string]interface{}{"chat_session_id": sessionId})

		client := internalWS.NewClient(h.hub, conn, sessionId, func(text string) error {
			_, err := h.service.SendChat(context.Background(), sessionId, &dto.SendChatRequest{Chat: text})
			return err
		})
		client.Enqueue(internalWS.Frame{Type: "history", Data: history.Messages})
		client.Serve()

		h.logger.Info("CHAT_WS", "WebSocket session ended", map[string]interface{}{"chat_session_id": sessionId})
	})(c)
}

func (h *ChatStreamHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/chat/v1/sessions/:id/ws", h.ServeWs)
}
