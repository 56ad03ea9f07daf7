package memory

import (
	"time"

	"storefront-be/pkg/chat"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// ChatSessionRepository keeps chat transcripts in memory only; nothing
// survives a restart.
type ChatSessionRepository struct {
	cache *cache.Cache
}

// NewChatSessionRepository expires idle sessions after ttl and purges
// expired entries every ttl/6.
func NewChatSessionRepository(ttl time.Duration) *ChatSessionRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	c := cache.New(ttl, ttl/6)
	return &ChatSessionRepository{
		cache: c,
	}
}

func (r *ChatSessionRepository) Save(session *chat.Session) {
	r.cache.Set(session.Id.String(), session, cache.DefaultExpiration)
}

// Get returns the session and refreshes its expiration.
func (r *ChatSessionRepository) Get(sessionId uuid.UUID) (*chat.Session, bool) {
	if x, found := r.cache.Get(sessionId.String()); found {
		session := x.(*chat.Session)
		r.cache.Set(sessionId.String(), session, cache.DefaultExpiration)
		return session, true
	}
	return nil, false
}

func (r *ChatSessionRepository) Delete(sessionId uuid.UUID) {
	r.cache.Delete(sessionId.String())
}

func (r *ChatSessionRepository) Count() int {
	return r.cache.ItemCount()
}
