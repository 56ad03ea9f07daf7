package service

import (
	"context"

	"storefront-be/internal/entity"
	"storefront-be/internal/pkg/logger"
	"storefront-be/pkg/catalog"
	"storefront-be/pkg/events"
)

// EventPublisher is satisfied by *nats.Publisher.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// IDomainEventPublisher emits storefront events. Publishing is best effort:
// failures are logged and never reach the caller.
type IDomainEventPublisher interface {
	PublishProductAdded(ctx context.Context, product *entity.Product)
	PublishCatalogReloaded(ctx context.Context, snapshot *catalog.Snapshot)
	PublishContactReceived(ctx context.Context, message *entity.ContactMessage)
}

type domainEventPublisher struct {
	publisher EventPublisher
	logger    logger.ILogger
}

// NewDomainEventPublisher accepts a nil publisher (NATS unavailable); every
// publish is then a no-op.
func NewDomainEventPublisher(publisher EventPublisher, logger logger.ILogger) IDomainEventPublisher {
	return &domainEventPublisher{
		publisher: publisher,
		logger:    logger,
	}
}

func (p *domainEventPublisher) PublishProductAdded(ctx context.Context, product *entity.Product) {
	p.publish(ctx, events.NewProductAdded(product.Id.String(), product.Name, product.Category, product.Price))
}

func (p *domainEventPublisher) PublishCatalogReloaded(ctx context.Context, snapshot *catalog.Snapshot) {
	p.publish(ctx, events.NewCatalogReloaded(snapshot.Len(), snapshot.Fallback))
}

func (p *domainEventPublisher) PublishContactReceived(ctx context.Context, message *entity.ContactMessage) {
	p.publish(ctx, events.NewContactReceived(message.Id.String(), message.Email))
}

func (p *domainEventPublisher) publish(ctx context.Context, evt events.Event) {
	if p.publisher == nil {
		return
	}
	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("EVENTS", "Failed to publish "+evt.EventType()+" event", map[string]interface{}{"error": err.Error()})
	}
}
