package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateChatSessionResponse struct {
	Id        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

type SendChatRequest struct {
	Chat string `json:"chat" validate:"required,max=1000"`
}

type ChatMessageResponse struct {
	Id        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	CreatedAt time.Time `json:"created_at"`
}

type SendChatResponse struct {
	ChatSessionId uuid.UUID           `json:"chat_session_id"`
	Sent          ChatMessageResponse `json:"sent"`
	Intent        string              `json:"intent"`
	ReplyDelayMs  int64               `json:"reply_delay_ms"`
}

type GetChatHistoryResponse struct {
	ChatSessionId uuid.UUID             `json:"chat_session_id"`
	Messages      []ChatMessageResponse `json:"messages"`
}
