// FILE: internal/service/chatbot_service.go
package service

import (
	"context"
	"strings"
	"time"

	"storefront-be/internal/dto"
	"storefront-be/internal/pkg/logger"
	"storefront-be/internal/pkg/serverutils"
	"storefront-be/pkg/catalog"
	"storefront-be/pkg/chat"
	"storefront-be/pkg/intent"

	"github.com/google/uuid"
)

type IChatbotService interface {
	CreateSession(ctx context.Context) (*dto.CreateChatSessionResponse, error)
	SendChat(ctx context.Context, sessionId uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	GetChatHistory(ctx context.Context, sessionId uuid.UUID) (*dto.GetChatHistoryResponse, error)
	Subscribe(ctx context.Context, sessionId uuid.UUID, listener chat.Listener) (func(), error)
}

// ChatSessionStore is satisfied by memory.ChatSessionRepository.
type ChatSessionStore interface {
	Save(session *chat.Session)
	Get(sessionId uuid.UUID) (*chat.Session, bool)
}

type chatbotService struct {
	sessions   ChatSessionStore
	store      *catalog.Store
	engine     *intent.Engine
	scheduler  chat.Scheduler
	replyDelay time.Duration
	logger     logger.ILogger
}

func NewChatbotService(
	sessions ChatSessionStore,
	store *catalog.Store,
	engine *intent.Engine,
	scheduler chat.Scheduler,
	replyDelay time.Duration,
	logger logger.ILogger,
) IChatbotService {
	return &chatbotService{
		sessions:   sessions,
		store:      store,
		engine:     engine,
		scheduler:  scheduler,
		replyDelay: replyDelay,
		logger:     logger,
	}
}

func (s *chatbotService) CreateSession(ctx context.Context) (*dto.CreateChatSessionResponse, error) {
	session := chat.NewSession()
	s.sessions.Save(session)

	return &dto.CreateChatSessionResponse{
		Id:        session.Id,
		CreatedAt: session.CreatedAt,
	}, nil
}

// SendChat appends the visitor's message right away and schedules the bot
// reply after the display delay. The reply is computed now, against the
// catalog snapshot current at submission. Replies are not queued behind each
// other, so two quick messages may be answered out of order.
func (s *chatbotService) SendChat(ctx context.Context, sessionId uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	if strings.TrimSpace(req.Chat) == "" {
		return nil, serverutils.NewBadRequestError("Message cannot be empty")
	}

	session, err := s.getSession(sessionId)
	if err != nil {
		return nil, err
	}

	sent := session.Append(req.Chat, chat.SenderUser)
	result := s.engine.Resolve(req.Chat, s.store.Products())

	s.logger.Info("CHATBOT", "Utterance resolved", map[string]interface{}{
		"chat_session_id": sessionId,
		"intent":          result.Rule,
	})

	s.scheduler.After(s.replyDelay, func() {
		session.Append(result.Reply, chat.SenderBot)
	})

	return &dto.SendChatResponse{
		ChatSessionId: sessionId,
		Sent:          toChatMessageResponse(sent),
		Intent:        string(result.Rule),
		ReplyDelayMs:  s.replyDelay.Milliseconds(),
	}, nil
}

func (s *chatbotService) GetChatHistory(ctx context.Context, sessionId uuid.UUID) (*dto.GetChatHistoryResponse, error) {
	session, err := s.getSession(sessionId)
	if err != nil {
		return nil, err
	}

	messages := session.Messages()
	res := make([]dto.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		res = append(res, toChatMessageResponse(m))
	}

	return &dto.GetChatHistoryResponse{
		ChatSessionId: sessionId,
		Messages:      res,
	}, nil
}

func (s *chatbotService) Subscribe(ctx context.Context, sessionId uuid.UUID, listener chat.Listener) (func(), error) {
	session, err := s.getSession(sessionId)
	if err != nil {
		return nil, err
	}
	return session.Subscribe(listener), nil
}

func (s *chatbotService) getSession(sessionId uuid.UUID) (*chat.Session, error) {
	session, ok := s.sessions.Get(sessionId)
	if !ok {
		return nil, serverutils.NewNotFoundError("Chat session not found")
	}
	return session, nil
}

func toChatMessageResponse(m chat.Message) dto.ChatMessageResponse {
	return dto.ChatMessageResponse{
		Id:        m.Id,
		Text:      m.Text,
		Sender:    string(m.Sender),
		CreatedAt: m.CreatedAt,
	}
}
