package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"Smart-Grocery-Agent/domain"
	"Smart-Grocery-Agent/entities"

	"github.com/rs/zerolog"
)

// Classifier asks the classification service about a product it has not
// seen. Callers apply domain.DefaultClassification on error.
type Classifier interface {
	Classify(ctx context.Context, req domain.ClassifyRequest) (domain.Classification, error)
}

type (
	CatalogService interface {
		Index() *Index
		GetCatalog(ctx context.Context) []domain.CategoryResponse
		GetProduct(ctx context.Context, name string) (domain.ProductResponse, error)
		AddProduct(ctx context.Context, req domain.AddProductRequest) (domain.AddProductResponse, error)
		EnsureProduct(ctx context.Context, name string) (entities.Product, error)
		UpdateProduct(ctx context.Context, name string, req domain.UpdateProductRequest) (domain.ProductResponse, error)
		DeleteProduct(ctx context.Context, name string) error
	}

	catalogService struct {
		mu         sync.Mutex
		repository CatalogRepository
		classifier Classifier
		log        zerolog.Logger

		doc   entities.CatalogDocument
		index atomic.Pointer[Index]
	}
)

func NewCatalogService(ctx context.Context, repository CatalogRepository, classifier Classifier, log zerolog.Logger) (CatalogService, error) {
	doc, err := repository.Load(ctx)
	if err != nil {
		return nil, err
	}

	s := &catalogService{
		repository: repository,
		classifier: classifier,
		log:        log.With().Str("component", "catalog").Logger(),
		doc:        doc,
	}
	s.index.Store(NewIndex(doc))

	s.log.Info().Int("products", s.Index().Len()).Int("categories", len(doc)).Msg("catalog loaded")
	return s, nil
}

func (s *catalogService) Index() *Index {
	return s.index.Load()
}

func (s *catalogService) GetCatalog(_ context.Context) []domain.CategoryResponse {
	idx := s.Index()

	response := make([]domain.CategoryResponse, 0, len(idx.Categories()))
	for _, category := range idx.Categories() {
		products := idx.ProductsIn(category)
		items := make([]domain.ProductResponse, 0, len(products))
		for _, p := range products {
			items = append(items, toProductResponse(p))
		}
		response = append(response, domain.CategoryResponse{Name: category, Products: items})
	}
	return response
}

func (s *catalogService) GetProduct(_ context.Context, name string) (domain.ProductResponse, error) {
	p, ok := s.Index().Lookup(name)
	if !ok {
		return domain.ProductResponse{}, domain.ErrProductNotFound
	}
	return toProductResponse(p), nil
}

func (s *catalogService) AddProduct(ctx context.Context, req domain.AddProductRequest) (domain.AddProductResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := strings.TrimSpace(req.Name)
	if _, exists := s.Index().Lookup(name); exists {
		return domain.AddProductResponse{}, domain.ErrProductExists
	}

	cls, classified := s.classify(ctx, name, domain.CallSiteCatalog)

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = cls.InputCategory
	}

	result, err := MergeClassified(s.doc, entities.Product{
		Name:         name,
		Category:     category,
		Price:        req.Price,
		DaysToExpire: req.DaysToExpire,
	}, cls)
	if err != nil {
		return domain.AddProductResponse{}, err
	}

	if err := s.commit(ctx, result.Document); err != nil {
		return domain.AddProductResponse{}, err
	}

	response := domain.AddProductResponse{
		Product:    toProductResponse(result.Product),
		Classified: classified,
	}
	if result.CreatedAlternative != nil {
		alt := toProductResponse(*result.CreatedAlternative)
		response.CreatedAlternative = &alt
	}

	s.log.Info().
		Str("product", result.Product.Name).
		Str("category", result.Product.Category).
		Bool("healthy", result.Product.Healthy).
		Bool("classified", classified).
		Bool("created_alternative", result.CreatedAlternative != nil).
		Msg("product added")

	return response, nil
}

// EnsureProduct resolves name, classifying and inserting it with the chat
// defaults when the catalog does not know it yet.
func (s *catalogService) EnsureProduct(ctx context.Context, name string) (entities.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if p, ok := s.Index().Lookup(name); ok {
		return p, nil
	}

	cls, classified := s.classify(ctx, name, domain.CallSiteChat)

	product := entities.Product{
		Name:         name,
		Category:     cls.InputCategory,
		Price:        cls.InputPrice,
		DaysToExpire: cls.InputDaysToExpire,
	}
	if product.Category == "" {
		product.Category = domain.CategoryPantryStaples
	}
	if product.Price < 0 {
		product.Price = domain.ChatDefaultPrice
	}
	if product.DaysToExpire < 1 {
		product.DaysToExpire = domain.ChatDefaultDaysToExpire
	}

	result, err := MergeClassified(s.doc, product, cls)
	if err != nil {
		return entities.Product{}, err
	}
	if err := s.commit(ctx, result.Document); err != nil {
		return entities.Product{}, err
	}

	s.log.Info().
		Str("product", result.Product.Name).
		Str("category", result.Product.Category).
		Bool("classified", classified).
		Msg("product added from chat")

	return result.Product, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, name string, req domain.UpdateProductRequest) (domain.ProductResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.Index()
	current, ok := idx.Lookup(name)
	if !ok {
		return domain.ProductResponse{}, domain.ErrProductNotFound
	}

	updated := current
	if c := strings.TrimSpace(req.Category); c != "" {
		updated.Category = c
	}
	if req.Price != nil {
		updated.Price = *req.Price
	}
	if req.DaysToExpire != nil {
		updated.DaysToExpire = *req.DaysToExpire
	}
	if req.Healthy != nil {
		updated.Healthy = *req.Healthy
	}
	if req.Alternative != nil {
		alt := strings.TrimSpace(*req.Alternative)
		switch {
		case alt == "":
			updated.Alternative = nil
		case alt == name:
			return domain.ProductResponse{}, domain.ErrSelfAlternative
		default:
			if _, ok := idx.Lookup(alt); !ok {
				return domain.ProductResponse{}, fmt.Errorf("%w: %s", domain.ErrAlternativeNotFound, alt)
			}
			updated.Alternative = &alt
		}
	}
	if updated.Healthy {
		updated.Alternative = nil
	}
	if updated.Price < 0 || updated.DaysToExpire < 1 {
		return domain.ProductResponse{}, domain.ErrInvalidProduct
	}

	doc := s.doc.Clone()
	remove(doc, current)
	insert(doc, updated)

	if err := s.commit(ctx, doc); err != nil {
		return domain.ProductResponse{}, err
	}

	return toProductResponse(updated), nil
}

// DeleteProduct removes name and clears every alternative that pointed at it.
func (s *catalogService) DeleteProduct(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.Index().Lookup(name)
	if !ok {
		return domain.ErrProductNotFound
	}

	doc := s.doc.Clone()
	remove(doc, current)
	for _, items := range doc {
		for other, record := range items {
			if record.Alternative != nil && *record.Alternative == name {
				record.Alternative = nil
				items[other] = record
			}
		}
	}

	return s.commit(ctx, doc)
}

func (s *catalogService) classify(ctx context.Context, name, callSite string) (domain.Classification, bool) {
	if s.classifier == nil {
		return domain.DefaultClassification(callSite), false
	}

	idx := s.Index()
	cls, err := s.classifier.Classify(ctx, domain.ClassifyRequest{
		Name:          name,
		KnownProducts: idx.Names(),
		Categories:    idx.Categories(),
	})
	if err != nil {
		s.log.Warn().Err(err).Str("product", name).Str("call_site", callSite).Msg("classification failed, using defaults")
		return domain.DefaultClassification(callSite), false
	}
	return cls, true
}

// commit persists doc and only then publishes the rebuilt index.
func (s *catalogService) commit(ctx context.Context, doc entities.CatalogDocument) error {
	if err := s.repository.Save(ctx, doc); err != nil {
		return err
	}
	s.doc = doc
	s.index.Store(NewIndex(doc))
	return nil
}

func toProductResponse(p entities.Product) domain.ProductResponse {
	return domain.ProductResponse{
		Name:         p.Name,
		Category:     p.Category,
		Price:        p.Price,
		DaysToExpire: p.DaysToExpire,
		Healthy:      p.Healthy,
		Alternative:  p.Alternative,
	}
}
