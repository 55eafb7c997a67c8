package chat

import (
	"context"
	"fmt"

	"Smart-Grocery-Agent/domain"
	"Smart-Grocery-Agent/pkg/cart"
	"Smart-Grocery-Agent/pkg/catalog"
	"Smart-Grocery-Agent/pkg/session"

	"github.com/rs/zerolog"
)

const fallbackReply = `Sorry, I couldn't understand that. Try something like "add milk".`

type IntentParser interface {
	ParseIntent(ctx context.Context, message string, knownProducts []string) (domain.ChatIntent, error)
}

type (
	ChatService interface {
		Send(ctx context.Context, req domain.ChatRequest) (domain.ChatResponse, error)
		Transcript(ctx context.Context) []domain.ChatMessage
		Reset(ctx context.Context)
	}

	chatService struct {
		state   *session.State
		parser  IntentParser
		catalog catalog.CatalogService
		cart    cart.CartService
		log     zerolog.Logger
	}
)

func NewChatService(state *session.State, parser IntentParser, catalogService catalog.CatalogService, cartService cart.CartService, log zerolog.Logger) ChatService {
	return &chatService{
		state:   state,
		parser:  parser,
		catalog: catalogService,
		cart:    cartService,
		log:     log.With().Str("component", "chat").Logger(),
	}
}

// Send records the user turn, acts on the parsed intent and records the
// assistant turn. The assistant turn is recorded even when an error is
// returned.
func (s *chatService) Send(ctx context.Context, req domain.ChatRequest) (domain.ChatResponse, error) {
	s.record(domain.ChatRoleUser, req.Message)

	response, err := s.handle(ctx, req.Message)

	s.record(domain.ChatRoleAssistant, response.Reply)
	return response, err
}

func (s *chatService) handle(ctx context.Context, message string) (domain.ChatResponse, error) {
	intent, err := s.parser.ParseIntent(ctx, message, s.catalog.Index().Names())
	if err != nil {
		s.log.Warn().Err(err).Msg("intent parsing failed")
		return domain.ChatResponse{Reply: fallbackReply}, nil
	}

	if intent.Intent != domain.IntentAdd {
		reply := intent.Reply
		if reply == "" {
			reply = "I can help you add groceries to your cart."
		}
		return domain.ChatResponse{Reply: reply}, nil
	}

	product, err := s.catalog.EnsureProduct(ctx, intent.Item)
	if err != nil {
		return domain.ChatResponse{Reply: fmt.Sprintf("Sorry, I couldn't add %s right now.", intent.Item)}, err
	}

	added, err := s.cart.AddToCart(ctx, domain.AddToCartRequest{Item: product.Name})
	if err != nil {
		return domain.ChatResponse{Reply: fmt.Sprintf("Sorry, I couldn't add %s right now.", product.Name)}, err
	}

	return domain.ChatResponse{
		Reply:   describe(added),
		Added:   added.Added,
		Pending: added.Pending,
	}, nil
}

func describe(res domain.AddToCartResponse) string {
	switch {
	case res.Added != nil:
		return fmt.Sprintf("Added %s to your cart.", res.Added.Item)
	case res.Pending != nil && res.Pending.Kind == domain.SuggestionHealth:
		return fmt.Sprintf("%s isn't the healthiest choice. How about %s instead?", res.Pending.Original, res.Pending.Alternative)
	case res.Pending != nil && res.Pending.Kind == domain.SuggestionDuplicate:
		return fmt.Sprintf("You already have %d %s at home. Add anyway?", res.Pending.Count, res.Pending.Item)
	default:
		return fallbackReply
	}
}

func (s *chatService) record(role, content string) {
	s.state.Lock()
	defer s.state.Unlock()

	s.state.Transcript = append(s.state.Transcript, domain.ChatMessage{
		Role:    role,
		Content: content,
		SentAt:  s.state.Now(),
	})
}

func (s *chatService) Transcript(_ context.Context) []domain.ChatMessage {
	s.state.Lock()
	defer s.state.Unlock()

	out := make([]domain.ChatMessage, len(s.state.Transcript))
	copy(out, s.state.Transcript)
	return out
}

func (s *chatService) Reset(_ context.Context) {
	s.state.Lock()
	defer s.state.Unlock()

	s.state.Transcript = nil
}
