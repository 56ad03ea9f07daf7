// FILE: internal/service/catalog_service.go
package service

import (
	"context"
	"strings"
	"sync"

	"storefront-be/internal/dto"
	"storefront-be/internal/entity"
	"storefront-be/internal/mapper"
	"storefront-be/internal/pkg/logger"
	"storefront-be/internal/pkg/serverutils"
	"storefront-be/internal/repository/specification"
	"storefront-be/internal/repository/unitofwork"
	"storefront-be/pkg/catalog"

	"github.com/google/uuid"
)

type ICatalogService interface {
	Reload(ctx context.Context) *catalog.Snapshot
	List(ctx context.Context, query dto.ListProductsQuery) (*dto.ListProductsResponse, error)
	Categories(ctx context.Context) []string
	Add(ctx context.Context, req *dto.CreateProductRequest) (*dto.CreateProductResponse, error)
}

type catalogService struct {
	uowFactory  unitofwork.RepositoryFactory
	store       *catalog.Store
	events      IDomainEventPublisher
	broadcaster ICatalogBroadcaster
	logger      logger.ILogger
	mapper      *mapper.ProductMapper

	// One outstanding load at a time
	reloadMu sync.Mutex
}

func NewCatalogService(
	uowFactory unitofwork.RepositoryFactory,
	store *catalog.Store,
	events IDomainEventPublisher,
	broadcaster ICatalogBroadcaster,
	logger logger.ILogger,
) ICatalogService {
	return &catalogService{
		uowFactory:  uowFactory,
		store:       store,
		events:      events,
		broadcaster: broadcaster,
		logger:      logger,
		mapper:      mapper.NewProductMapper(),
	}
}

// Reload replaces the store from the repository. A failed or empty load
// installs the built-in catalog instead; Reload itself never fails.
func (s *catalogService) Reload(ctx context.Context) *catalog.Snapshot {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.ProductRepository().FindAll(ctx, specification.CatalogOrder{})
	if err != nil {
		s.logger.Error("CATALOG", "API Error, loading fallback catalog", map[string]interface{}{"error": err.Error()})
		return s.install(ctx, catalog.FallbackProducts(), true)
	}

	products := s.mapper.ToCatalog(rows)
	if len(products) == 0 {
		s.logger.Warn("CATALOG", "Catalog source is empty, loading fallback catalog", nil)
		return s.install(ctx, catalog.FallbackProducts(), true)
	}

	return s.install(ctx, products, false)
}

func (s *catalogService) install(ctx context.Context, products []catalog.Product, fallback bool) *catalog.Snapshot {
	snap := s.store.Replace(products, fallback)
	s.logger.Info("CATALOG", "Catalog loaded", map[string]interface{}{
		"products": snap.Len(),
		"fallback": fallback,
	})
	s.events.PublishCatalogReloaded(ctx, snap)
	return snap
}

// List applies at most one filter. Search and category are independent views
// of the full catalog, so a request naming both is rejected.
func (s *catalogService) List(ctx context.Context, query dto.ListProductsQuery) (*dto.ListProductsResponse, error) {
	if query.Search != nil && query.Category != nil {
		return nil, serverutils.NewBadRequestError("Use either search or category, filters are not combined")
	}

	var filter catalog.Filter
	switch {
	case query.Search != nil:
		filter = catalog.SearchFilter(*query.Search)
	case query.Category != nil:
		filter = catalog.CategoryFilter(*query.Category)
	}

	snap := s.store.Snapshot()
	visible := filter.Apply(snap.Products)

	return &dto.ListProductsResponse{
		Products: dto.ToProductResponses(visible),
		Total:    len(visible),
		Filter:   string(filter.Kind),
		Fallback: snap.Fallback,
	}, nil
}

func (s *catalogService) Categories(ctx context.Context) []string {
	return catalog.Categories(s.store.Products())
}

// Add persists the product, then reloads the whole catalog from the
// repository rather than appending locally.
func (s *catalogService) Add(ctx context.Context, req *dto.CreateProductRequest) (*dto.CreateProductResponse, error) {
	product := &entity.Product{
		Id:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		Category:    strings.TrimSpace(req.Category),
		Purity:      req.Purity,
		Price:       req.Price,
		Description: req.Description,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ProductRepository().Create(ctx, product); err != nil {
		s.logger.Error("CATALOG", "Error adding product", map[string]interface{}{
			"error": err.Error(),
			"name":  product.Name,
		})
		return nil, serverutils.NewInternalError("Failed to add product. Please try again.", err)
	}

	s.logger.Info("CATALOG", "Product added", map[string]interface{}{
		"product_id": product.Id,
		"name":       product.Name,
		"category":   product.Category,
	})

	snap := s.Reload(ctx)
	s.events.PublishProductAdded(ctx, product)
	if err := s.broadcaster.Announce(ctx); err != nil {
		s.logger.Warn("CATALOG", "Failed to announce catalog change", map[string]interface{}{"error": err.Error()})
	}

	added := s.mapper.ToCatalog([]*entity.Product{product})[0]
	return &dto.CreateProductResponse{
		Id:      product.Id.String(),
		Product: dto.ToProductResponse(added),
		Total:   snap.Len(),
	}, nil
}
