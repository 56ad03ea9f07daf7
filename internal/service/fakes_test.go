package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"storefront-be/internal/entity"
	"storefront-be/internal/repository/contract"
	"storefront-be/internal/repository/specification"
	"storefront-be/internal/repository/unitofwork"
	"storefront-be/pkg/events"

	"github.com/google/uuid"
)

var errStorage = errors.New("connection refused")

type fakeProductRepository struct {
	mu        sync.Mutex
	products  []*entity.Product
	findErr   error
	createErr error
	findCalls int
}

func (r *fakeProductRepository) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	cp := *product
	cp.CreatedAt = time.Now()
	r.products = append(r.products, &cp)
	return nil
}

func (r *fakeProductRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.products) == 0 {
		return nil, nil
	}
	return r.products[0], nil
}

func (r *fakeProductRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.findCalls++
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := make([]*entity.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *fakeProductRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.products)), nil
}

type fakeContactRepository struct {
	mu        sync.Mutex
	messages  map[uuid.UUID]*entity.ContactMessage
	createErr error
	forwarded map[uuid.UUID]time.Time
}

func newFakeContactRepository() *fakeContactRepository {
	return &fakeContactRepository{
		messages:  make(map[uuid.UUID]*entity.ContactMessage),
		forwarded: make(map[uuid.UUID]time.Time),
	}
}

func (r *fakeContactRepository) Create(ctx context.Context, message *entity.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	cp := *message
	r.messages[message.Id] = &cp
	return nil
}

func (r *fakeContactRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, spec := range specs {
		if byId, ok := spec.(specification.ByID); ok {
			return r.messages[byId.ID], nil
		}
	}
	return nil, nil
}

func (r *fakeContactRepository) MarkForwarded(ctx context.Context, id uuid.UUID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.forwarded[id] = at
	return nil
}

func (r *fakeContactRepository) isForwarded(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.forwarded[id]
	return ok
}

type fakeUnitOfWork struct {
	products *fakeProductRepository
	contacts *fakeContactRepository
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) ProductRepository() contract.ProductRepository {
	return u.products
}

func (u *fakeUnitOfWork) ContactMessageRepository() contract.ContactMessageRepository {
	return u.contacts
}

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{uow: &fakeUnitOfWork{
		products: &fakeProductRepository{},
		contacts: newFakeContactRepository(),
	}}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type recordingEventPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingEventPublisher) Publish(ctx context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingEventPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventType())
	}
	return out
}

type recordingBroadcaster struct {
	mu        sync.Mutex
	announced int
	err       error
}

func (b *recordingBroadcaster) Announce(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.announced++
	return b.err
}

func (b *recordingBroadcaster) Listen(ctx context.Context, onChange func(ctx context.Context)) {}

type recordingQueue struct {
	mu       sync.Mutex
	payloads []any
	err      error
}

func (q *recordingQueue) SendMessage(ctx context.Context, payload any) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.payloads = append(q.payloads, payload)
	return q.err
}
