package service

import (
	"context"
	"strings"

	"storefront-be/internal/dto"
	"storefront-be/internal/entity"
	"storefront-be/internal/pkg/logger"
	"storefront-be/internal/pkg/serverutils"
	"storefront-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IContactService interface {
	Submit(ctx context.Context, req *dto.ContactRequest, metadata map[string]interface{}) (*dto.ContactResponse, error)
}

type contactService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	events           IDomainEventPublisher
	logger           logger.ILogger
}

func NewContactService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	events IDomainEventPublisher,
	logger logger.ILogger,
) IContactService {
	return &contactService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		events:           events,
		logger:           logger,
	}
}

// Submit stores the message and queues it for forwarding. Only the store can
// fail the request; forwarding happens in the background.
func (s *contactService) Submit(ctx context.Context, req *dto.ContactRequest, metadata map[string]interface{}) (*dto.ContactResponse, error) {
	contact := &entity.ContactMessage{
		Id:       uuid.New(),
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Message:  req.Message,
		Metadata: metadata,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ContactMessageRepository().Create(ctx, contact); err != nil {
		s.logger.Error("CONTACT", "Error sending contact message", map[string]interface{}{"error": err.Error()})
		return nil, serverutils.NewInternalError("Failed to send message. Please try again.", err)
	}

	if err := s.publisherService.SendMessage(ctx, dto.PublishContactMessage{ContactId: contact.Id}); err != nil {
		s.logger.Warn("CONTACT", "Failed to queue contact message for forwarding", map[string]interface{}{
			"error":      err.Error(),
			"contact_id": contact.Id,
		})
	}
	s.events.PublishContactReceived(ctx, contact)

	return &dto.ContactResponse{Id: contact.Id}, nil
}
