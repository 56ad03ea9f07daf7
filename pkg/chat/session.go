package chat

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one transcript entry. Messages are never edited or removed.
type Message struct {
	Id        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	CreatedAt time.Time `json:"created_at"`
}

// Listener receives every message appended to a session.
type Listener func(Message)

// Session is an append-only chat transcript. Order of Messages is append order.
type Session struct {
	Id        uuid.UUID
	CreatedAt time.Time

	mu        sync.RWMutex
	messages  []Message
	listeners map[int]Listener
	nextId    int
}

func NewSession() *Session {
	return &Session{
		Id:        uuid.New(),
		CreatedAt: time.Now(),
		messages:  make([]Message, 0),
		listeners: make(map[int]Listener),
	}
}

// Append adds a message at the end of the transcript and notifies listeners.
func (s *Session) Append(text string, sender Sender) Message {
	msg := Message{
		Id:        uuid.New(),
		Text:      text,
		Sender:    sender,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.messages = append(s.messages, msg)
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	// Listeners run outside the lock so they may read the session.
	for _, l := range listeners {
		l(msg)
	}
	return msg
}

// Messages returns a copy of the transcript.
func (s *Session) Messages() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of messages in the transcript.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

// Subscribe registers l for future appends. The returned func removes it.
func (s *Session) Subscribe(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextId
	s.nextId++
	s.listeners[id] = l
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}
