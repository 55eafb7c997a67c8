package cart

import (
	"context"

	"Smart-Grocery-Agent/domain"
	"Smart-Grocery-Agent/entities"
	"Smart-Grocery-Agent/pkg/pantry"
	"Smart-Grocery-Agent/pkg/session"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type (
	CartService interface {
		GetCart(ctx context.Context) domain.CartResponse
		AddToCart(ctx context.Context, req domain.AddToCartRequest) (domain.AddToCartResponse, error)
		ResolveSuggestion(ctx context.Context, req domain.ResolveSuggestionRequest) (domain.AddToCartResponse, error)
		RemoveLine(ctx context.Context, id string) error
		Clear(ctx context.Context)
		Checkout(ctx context.Context) (domain.CheckoutResponse, error)
	}

	cartService struct {
		state   *session.State
		history pantry.HistoryRepository
		catalog func() pantry.ProductLookup
		log     zerolog.Logger
	}
)

func NewCartService(state *session.State, history pantry.HistoryRepository, catalog func() pantry.ProductLookup, log zerolog.Logger) CartService {
	return &cartService{
		state:   state,
		history: history,
		catalog: catalog,
		log:     log.With().Str("component", "cart").Logger(),
	}
}

func (s *cartService) GetCart(_ context.Context) domain.CartResponse {
	s.state.Lock()
	defer s.state.Unlock()

	lines := make([]domain.CartLine, len(s.state.Cart))
	copy(lines, s.state.Cart)

	return domain.CartResponse{
		Lines:   lines,
		Total:   total(lines),
		Pending: s.state.Pending,
	}
}

func (s *cartService) AddToCart(_ context.Context, req domain.AddToCartRequest) (domain.AddToCartResponse, error) {
	s.state.Lock()
	defer s.state.Unlock()

	catalog := s.catalog()
	decision, err := RequestAdd(catalog, s.currentStock(), req.Item)
	if err != nil {
		return domain.AddToCartResponse{}, err
	}

	return s.apply(catalog, decision), nil
}

func (s *cartService) ResolveSuggestion(_ context.Context, req domain.ResolveSuggestionRequest) (domain.AddToCartResponse, error) {
	s.state.Lock()
	defer s.state.Unlock()

	catalog := s.catalog()
	decision, err := Resolve(catalog, s.currentStock(), s.state.Pending, req.Action)
	if err != nil {
		return domain.AddToCartResponse{}, err
	}

	return s.apply(catalog, decision), nil
}

func (s *cartService) RemoveLine(_ context.Context, id string) error {
	s.state.Lock()
	defer s.state.Unlock()

	for i, line := range s.state.Cart {
		if line.ID == id {
			s.state.Cart = append(s.state.Cart[:i:i], s.state.Cart[i+1:]...)
			return nil
		}
	}
	return domain.ErrCartLineNotFound
}

func (s *cartService) Clear(_ context.Context) {
	s.state.Lock()
	defer s.state.Unlock()

	s.state.ClearCart()
}

// Checkout moves every cart line into the pantry, persists the history and
// empties the cart. Lines whose product was deleted meanwhile are skipped.
func (s *cartService) Checkout(ctx context.Context) (domain.CheckoutResponse, error) {
	s.state.Lock()
	defer s.state.Unlock()

	if len(s.state.Cart) == 0 {
		return domain.CheckoutResponse{}, domain.ErrEmptyCart
	}

	ref := s.state.ReferenceDate()
	catalog := s.catalog()
	added, skipped := pantry.Checkout(s.state.Cart, catalog, ref)

	next := make([]entities.PantryEntry, 0, len(s.state.Pantry)+len(added))
	next = append(next, s.state.Pantry...)
	next = append(next, added...)

	if err := s.history.Save(ctx, next); err != nil {
		return domain.CheckoutResponse{}, err
	}

	response := domain.CheckoutResponse{
		Total:        committedTotal(s.state.Cart, catalog),
		AddedEntries: len(added),
		SkippedItems: skipped,
	}
	s.state.Pantry = next
	s.state.ClearCart()

	s.log.Info().
		Int("added", response.AddedEntries).
		Strs("skipped", skipped).
		Float64("total", response.Total).
		Msg("checkout complete")

	return response, nil
}

// currentStock refreshes pantry statuses so duplicate checks never count
// entries that expired since the last evaluation. Caller holds the lock.
func (s *cartService) currentStock() []entities.PantryEntry {
	updated, _ := pantry.EvaluateStatuses(s.state.Pantry, s.state.ReferenceDate())
	s.state.Pantry = updated
	return updated
}

// apply stores the decision in the session. Caller holds the lock.
func (s *cartService) apply(catalog pantry.ProductLookup, decision Decision) domain.AddToCartResponse {
	if !decision.Committed() {
		s.state.Pending = decision.Pending
		if decision.Pending != nil {
			s.log.Debug().Str("kind", decision.Pending.Kind).Msg("suggestion pending")
		}
		return domain.AddToCartResponse{Pending: decision.Pending}
	}

	product, _ := catalog.Lookup(decision.Commit)
	line := domain.CartLine{
		ID:       uuid.NewString(),
		Item:     decision.Commit,
		Category: product.Category,
		Price:    product.Price,
		Status:   domain.CartLinePending,
	}
	s.state.Cart = append(s.state.Cart, line)
	s.state.Pending = nil

	s.log.Info().Str("item", line.Item).Float64("price", line.Price).Msg("added to cart")
	return domain.AddToCartResponse{Added: &line}
}

// committedTotal sums the lines whose product still exists, the same lines
// pantry.Checkout turns into entries.
func committedTotal(lines []domain.CartLine, catalog pantry.ProductLookup) float64 {
	sum := 0.0
	for _, line := range lines {
		if _, ok := catalog.Lookup(line.Item); ok {
			sum += line.Price
		}
	}
	return sum
}

func total(lines []domain.CartLine) float64 {
	sum := 0.0
	for _, line := range lines {
		sum += line.Price
	}
	return sum
}
