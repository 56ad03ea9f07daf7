package websocket

import (
	"context"
	"sync"

	"storefront-be/internal/pkg/logger"
	"storefront-be/pkg/chat"

	"github.com/google/uuid"
)

// SessionSubscriber is satisfied by service.IChatbotService.
type SessionSubscriber interface {
	Subscribe(ctx context.Context, sessionId uuid.UUID, listener chat.Listener) (func(), error)
}

// Hub fans chat session appends out to every socket watching that session.
// It holds one session subscription per watched session, taken when the
// first client arrives and released when the last one leaves.
type Hub struct {
	clients       map[uuid.UUID]map[*Client]struct{}
	subscriptions map[uuid.UUID]func()

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	sessions SessionSubscriber
	logger   logger.ILogger
}

func NewHub(sessions SessionSubscriber, log logger.ILogger) *Hub {
	return &Hub{
		clients:       make(map[uuid.UUID]map[*Client]struct{}),
		subscriptions: make(map[uuid.UUID]func()),
		register:      make(chan *Client),
		unregister:    make(chan *Client),
		sessions:      sessions,
		logger:        log,
	}
}

// Run blocks until ctx is cancelled, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.add(ctx, client)
		case client := <-h.unregister:
			h.remove(client)
		case <-ctx.Done():
			h.closeAll()
			return
		}
	}
}

func (h *Hub) add(ctx context.Context, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.clients[client.sessionId]
	if !ok {
		sessionId := client.sessionId
		unsubscribe, err := h.sessions.Subscribe(ctx, sessionId, func(m chat.Message) {
			h.Deliver(sessionId, m)
		})
		if err != nil {
			h.logger.Warn("CHAT_WS", "Cannot watch chat session", map[string]interface{}{
				"chat_session_id": sessionId,
				"error":           err.Error(),
			})
			client.close()
			return
		}
		h.subscriptions[sessionId] = unsubscribe
		set = make(map[*Client]struct{})
		h.clients[sessionId] = set
	}
	set[client] = struct{}{}

	h.logger.Info("CHAT_WS", "Client registered", map[string]interface{}{
		"chat_session_id": client.sessionId,
		"clients":         len(set),
	})
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.clients[client.sessionId]
	if !ok {
		return
	}
	if _, ok := set[client]; !ok {
		return
	}
	delete(set, client)
	client.close()

	if len(set) == 0 {
		delete(h.clients, client.sessionId)
		if unsubscribe, ok := h.subscriptions[client.sessionId]; ok {
			unsubscribe()
			delete(h.subscriptions, client.sessionId)
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sessionId, set := range h.clients {
		for client := range set {
			client.close()
		}
		if unsubscribe, ok := h.subscriptions[sessionId]; ok {
			unsubscribe()
		}
	}
	h.clients = make(map[uuid.UUID]map[*Client]struct{})
	h.subscriptions = make(map[uuid.UUID]func())
}

// Deliver writes msg to every client watching the session. Slow clients
// miss the frame rather than block the chat session.
func (h *Hub) Deliver(sessionId uuid.UUID, msg chat.Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients[sessionId] {
		if !client.Enqueue(Frame{Type: "message", Data: msg}) {
			h.logger.Warn("CHAT_WS", "Client send buffer full, dropping message", map[string]interface{}{
				"chat_session_id": sessionId,
			})
		}
	}
}

// ClientCount reports how many sockets watch the session.
func (h *Hub) ClientCount(sessionId uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[sessionId])
}
