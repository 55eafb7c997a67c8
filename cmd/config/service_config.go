package config

import (
	"context"
	"fmt"

	"Smart-Grocery-Agent/internal/utils"
	"Smart-Grocery-Agent/internal/utils/mailing"
	"Smart-Grocery-Agent/internal/utils/storage"
	"Smart-Grocery-Agent/pkg/cart"
	"Smart-Grocery-Agent/pkg/catalog"
	"Smart-Grocery-Agent/pkg/chat"
	"Smart-Grocery-Agent/pkg/classifier"
	"Smart-Grocery-Agent/pkg/notify"
	"Smart-Grocery-Agent/pkg/pantry"
	"Smart-Grocery-Agent/pkg/session"

	"github.com/rs/zerolog"
)

// Services is the wired application shared by the HTTP server and the CLI.
type Services struct {
	State   *session.State
	Catalog catalog.CatalogService
	Pantry  pantry.PantryService
	Cart    cart.CartService
	Chat    chat.ChatService
	Notify  notify.NotifyService
}

// NewServices loads both documents from the configured storage and wires
// every service around a single session.
func NewServices(ctx context.Context, log zerolog.Logger) (*Services, error) {
	cfg := utils.AppConfig()

	blob, err := storage.NewBlobFromConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	// Repository
	catalogRepository := catalog.NewCatalogRepository(blob, cfg.CatalogFile)
	historyRepository := pantry.NewHistoryRepository(blob, cfg.HistoryFile)

	// utils
	gemini := classifier.NewGeminiClient(classifier.LoadGeminiConfig())
	mailer := mailing.NewMailer(mailing.LoadMailConfig())

	// Service
	catalogService, err := catalog.NewCatalogService(ctx, catalogRepository, classifier.NewProductClassifier(gemini), log)
	if err != nil {
		return nil, err
	}

	entries, err := historyRepository.Load(ctx)
	if err != nil {
		return nil, err
	}
	log.Info().Int("entries", len(entries)).Msg("pantry history loaded")

	state := session.NewState(entries)
	lookup := func() pantry.ProductLookup { return catalogService.Index() }

	pantryService := pantry.NewPantryService(state, historyRepository, lookup, log)
	cartService := cart.NewCartService(state, historyRepository, lookup, log)
	chatService := chat.NewChatService(state, classifier.NewIntentParser(gemini), catalogService, cartService, log)
	notifyService := notify.NewNotifyService(pantryService, mailer, cfg.NotifyEmail, log)

	return &Services{
		State:   state,
		Catalog: catalogService,
		Pantry:  pantryService,
		Cart:    cartService,
		Chat:    chatService,
		Notify:  notifyService,
	}, nil
}
