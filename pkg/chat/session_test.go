package chat

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionAppendOrder(t *testing.T) {
	s := NewSession()
	s.Append("hi", SenderUser)
	s.Append("Greetings.", SenderBot)
	s.Append("purity", SenderUser)

	msgs := s.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "hi", msgs[0].Text)
	assert.Equal(t, SenderUser, msgs[0].Sender)
	assert.Equal(t, SenderBot, msgs[1].Sender)
	assert.Equal(t, "purity", msgs[2].Text)
	assert.Equal(t, 3, s.Len())
}

func TestSessionMessagesIsACopy(t *testing.T) {
	s := NewSession()
	s.Append("hello", SenderUser)

	msgs := s.Messages()
	msgs[0].Text = "edited"
	assert.Equal(t, "hello", s.Messages()[0].Text)
}

func TestSessionSubscribe(t *testing.T) {
	s := NewSession()

	var got []string
	unsubscribe := s.Subscribe(func(m Message) {
		got = append(got, m.Text)
	})

	s.Append("one", SenderUser)
	s.Append("two", SenderBot)
	unsubscribe()
	s.Append("three", SenderUser)

	assert.Equal(t, []string{"one", "two"}, got)
}

func TestSessionConcurrentAppend(t *testing.T) {
	s := NewSession()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Append("x", SenderUser)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
}

func TestManualScheduler(t *testing.T) {
	m := &ManualScheduler{}
	var order []int
	m.After(500*time.Millisecond, func() { order = append(order, 1) })
	m.After(500*time.Millisecond, func() { order = append(order, 2) })

	assert.Equal(t, 2, m.Pending())
	assert.Equal(t, []time.Duration{500 * time.Millisecond, 500 * time.Millisecond}, m.Delays())

	m.RunAt(1)
	m.Flush()
	assert.Equal(t, []int{2, 1}, order)
	assert.Equal(t, 0, m.Pending())
}

func TestImmediateScheduler(t *testing.T) {
	ran := false
	ImmediateScheduler{}.After(time.Hour, func() { ran = true })
	assert.True(t, ran)
}

func TestTimerScheduler(t *testing.T) {
	done := make(chan struct{})
	TimerScheduler{}.After(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduled callback did not run")
	}
}
