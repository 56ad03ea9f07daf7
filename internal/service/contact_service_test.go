package service

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"storefront-be/internal/dto"
	"storefront-be/internal/pkg/logger"
	"storefront-be/internal/pkg/mailer"
	"storefront-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmailService struct {
	mu   sync.Mutex
	sent []mailer.ContactEmail
	to   []string
	err  error
}

func (s *fakeEmailService) SendContactMessage(toEmail string, msg mailer.ContactEmail) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.to = append(s.to, toEmail)
	s.sent = append(s.sent, msg)
	return s.err
}

func (s *fakeEmailService) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

var contactReq = &dto.ContactRequest{
	Name:    " Ada ",
	Email:   "ada@example.com",
	Message: "Do you ship overseas?",
}

func TestContactService_Submit(t *testing.T) {
	t.Run("stores, queues and publishes", func(t *testing.T) {
		factory := newFakeFactory()
		queue := &recordingQueue{}
		pub := &recordingEventPublisher{}
		log := logger.NewNopLogger()
		svc := NewContactService(factory, queue, NewDomainEventPublisher(pub, log), log)

		res, err := svc.Submit(context.Background(), contactReq, map[string]interface{}{"ip": "127.0.0.1"})
		require.NoError(t, err)

		stored := factory.uow.contacts.messages[res.Id]
		require.NotNil(t, stored)
		assert.Equal(t, "Ada", stored.Name)
		assert.Equal(t, "127.0.0.1", stored.Metadata["ip"])
		assert.Equal(t, []any{dto.PublishContactMessage{ContactId: res.Id}}, queue.payloads)
		assert.Equal(t, []string{events.TypeContactReceived}, pub.types())
	})

	t.Run("storage failure surfaces as internal error", func(t *testing.T) {
		factory := newFakeFactory()
		factory.uow.contacts.createErr = errStorage
		queue := &recordingQueue{}
		log := logger.NewNopLogger()
		svc := NewContactService(factory, queue, NewDomainEventPublisher(nil, log), log)

		_, err := svc.Submit(context.Background(), contactReq, nil)

		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, appErrorCode(t, err))
		assert.Contains(t, err.Error(), "Failed to send message. Please try again.")
		assert.Empty(t, queue.payloads)
	})

	t.Run("queue failure is not surfaced", func(t *testing.T) {
		factory := newFakeFactory()
		queue := &recordingQueue{err: errors.New("closed")}
		log := logger.NewNopLogger()
		svc := NewContactService(factory, queue, NewDomainEventPublisher(nil, log), log)

		_, err := svc.Submit(context.Background(), contactReq, nil)

		assert.NoError(t, err)
	})
}

func TestConsumerService_ForwardsContactMessages(t *testing.T) {
	const topic = "CONTACT_FORWARD"

	setup := func(t *testing.T, email *fakeEmailService) (*fakeFactory, IContactService) {
		t.Helper()
		ctx, cancel := context.WithCancel(context.Background())
		t.Cleanup(cancel)

		pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
		t.Cleanup(func() { _ = pubSub.Close() })

		factory := newFakeFactory()
		log := logger.NewNopLogger()
		consumer := NewConsumerService(pubSub, topic, factory, email, "support@example.com", log)
		require.NoError(t, consumer.Consume(ctx))

		contacts := NewContactService(factory, NewPublisherService(topic, pubSub), NewDomainEventPublisher(nil, log), log)
		return factory, contacts
	}

	t.Run("mails the support inbox and marks forwarded", func(t *testing.T) {
		email := &fakeEmailService{}
		factory, contacts := setup(t, email)

		res, err := contacts.Submit(context.Background(), contactReq, nil)
		require.NoError(t, err)

		require.Eventually(t, func() bool {
			return factory.uow.contacts.isForwarded(res.Id)
		}, time.Second, 10*time.Millisecond)

		assert.Equal(t, []string{"support@example.com"}, email.to)
		assert.Equal(t, "Do you ship overseas?", email.sent[0].Message)
	})

	t.Run("mail failure leaves the message unforwarded", func(t *testing.T) {
		email := &fakeEmailService{err: errors.New("smtp timeout")}
		factory, contacts := setup(t, email)

		res, err := contacts.Submit(context.Background(), contactReq, nil)
		require.NoError(t, err)

		require.Eventually(t, func() bool { return email.count() == 1 }, time.Second, 10*time.Millisecond)
		assert.False(t, factory.uow.contacts.isForwarded(res.Id))
	})
}
