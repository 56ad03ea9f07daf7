package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"storefront-be/internal/pkg/logger"
	"storefront-be/pkg/chat"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessions struct {
	sessions     map[uuid.UUID]*chat.Session
	unsubscribed int
}

func (f *fakeSessions) Subscribe(ctx context.Context, sessionId uuid.UUID, listener chat.Listener) (func(), error) {
	s, ok := f.sessions[sessionId]
	if !ok {
		return nil, errors.New("chat session not found")
	}
	unsubscribe := s.Subscribe(listener)
	return func() {
		f.unsubscribed++
		unsubscribe()
	}, nil
}

func newHubFixture() (*Hub, *fakeSessions, *chat.Session) {
	session := chat.NewSession()
	sessions := &fakeSessions{sessions: map[uuid.UUID]*chat.Session{session.Id: session}}
	return NewHub(sessions, logger.NewNopLogger()), sessions, session
}

func readFrame(t *testing.T, c *Client) Frame {
	t.Helper()
	select {
	case data := <-c.send:
		var f Frame
		require.NoError(t, json.Unmarshal(data, &f))
		return f
	case <-time.After(time.Second):
		t.Fatal("no frame delivered")
		return Frame{}
	}
}

func TestHub_DeliversAppendsToEveryWatcher(t *testing.T) {
	hub, _, session := newHubFixture()
	a := NewClient(hub, nil, session.Id, nil)
	b := NewClient(hub, nil, session.Id, nil)
	hub.add(context.Background(), a)
	hub.add(context.Background(), b)

	session.Append("hello", chat.SenderUser)

	assert.Equal(t, 2, hub.ClientCount(session.Id))
	for _, c := range []*Client{a, b} {
		f := readFrame(t, c)
		assert.Equal(t, "message", f.Type)
		data := f.Data.(map[string]interface{})
		assert.Equal(t, "hello", data["text"])
		assert.Equal(t, "user", data["sender"])
	}
}

func TestHub_ReleasesSubscriptionWithLastClient(t *testing.T) {
	hub, sessions, session := newHubFixture()
	a := NewClient(hub, nil, session.Id, nil)
	b := NewClient(hub, nil, session.Id, nil)
	hub.add(context.Background(), a)
	hub.add(context.Background(), b)

	hub.remove(a)
	assert.Equal(t, 0, sessions.unsubscribed)
	assert.False(t, a.Enqueue(Frame{Type: "message"}))

	hub.remove(b)
	assert.Equal(t, 1, sessions.unsubscribed)
	assert.Equal(t, 0, hub.ClientCount(session.Id))

	// Removing twice is harmless.
	hub.remove(b)
	assert.Equal(t, 1, sessions.unsubscribed)
}

func TestHub_UnknownSessionClosesClient(t *testing.T) {
	hub, _, _ := newHubFixture()
	c := NewClient(hub, nil, uuid.New(), nil)

	hub.add(context.Background(), c)

	assert.Equal(t, 0, hub.ClientCount(c.sessionId))
	_, open := <-c.send
	assert.False(t, open)
}

func TestHub_SlowClientDropsFrames(t *testing.T) {
	hub, _, session := newHubFixture()
	c := NewClient(hub, nil, session.Id, nil)
	hub.add(context.Background(), c)

	for i := 0; i < sendBuffer+5; i++ {
		session.Append("spam", chat.SenderUser)
	}

	assert.Len(t, c.send, sendBuffer)
}

func TestHub_RunClosesClientsOnShutdown(t *testing.T) {
	hub, sessions, session := newHubFixture()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(done)
	}()

	c := NewClient(hub, nil, session.Id, nil)
	hub.register <- c
	require.Eventually(t, func() bool { return hub.ClientCount(session.Id) == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	<-done

	_, open := <-c.send
	assert.False(t, open)
	assert.Equal(t, 1, sessions.unsubscribed)
}
