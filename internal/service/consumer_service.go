// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"time"

	"storefront-be/internal/dto"
	"storefront-be/internal/pkg/logger"
	"storefront-be/internal/pkg/mailer"
	"storefront-be/internal/repository/specification"
	"storefront-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService forwards stored contact messages to the support inbox.
type consumerService struct {
	subscriber   message.Subscriber
	topicName    string
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	supportInbox string
	logger       logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	supportInbox string,
	logger logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber:   subscriber,
		topicName:    topicName,
		uowFactory:   uowFactory,
		emailService: emailService,
		supportInbox: supportInbox,
		logger:       logger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

// Every outcome is acked: forwarding is fire-and-forget with no automatic
// retry. Unforwarded rows keep forwarded_at NULL.
func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	var payload dto.PublishContactMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("CONTACT", "Failed to unmarshal contact message", map[string]interface{}{"error": err.Error()})
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	contact, err := uow.ContactMessageRepository().FindOne(ctx, specification.ByID{ID: payload.ContactId})
	if err != nil {
		cs.logger.Error("CONTACT", "Failed to load contact message", map[string]interface{}{
			"error":      err.Error(),
			"contact_id": payload.ContactId,
		})
		return
	}
	if contact == nil {
		cs.logger.Warn("CONTACT", "Contact message not found", map[string]interface{}{"contact_id": payload.ContactId})
		return
	}

	err = cs.emailService.SendContactMessage(cs.supportInbox, mailer.ContactEmail{
		Name:    contact.Name,
		Email:   contact.Email,
		Message: contact.Message,
	})
	if err != nil {
		cs.logger.Error("CONTACT", "Failed to forward contact message", map[string]interface{}{
			"error":      err.Error(),
			"contact_id": contact.Id,
		})
		return
	}

	if err := uow.ContactMessageRepository().MarkForwarded(ctx, contact.Id, time.Now()); err != nil {
		cs.logger.Warn("CONTACT", "Failed to mark contact message forwarded", map[string]interface{}{
			"error":      err.Error(),
			"contact_id": contact.Id,
		})
		return
	}

	cs.logger.Info("CONTACT", "Contact message forwarded", map[string]interface{}{"contact_id": contact.Id})
}
