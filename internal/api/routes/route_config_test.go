package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Smart-Grocery-Agent/domain"
	"Smart-Grocery-Agent/entities"
	"Smart-Grocery-Agent/internal/api/handlers"
	"Smart-Grocery-Agent/internal/middleware"
	"Smart-Grocery-Agent/internal/utils"
	"Smart-Grocery-Agent/internal/utils/logger"
	"Smart-Grocery-Agent/internal/utils/storage"
	"Smart-Grocery-Agent/pkg/cart"
	"Smart-Grocery-Agent/pkg/catalog"
	"Smart-Grocery-Agent/pkg/chat"
	"Smart-Grocery-Agent/pkg/notify"
	"Smart-Grocery-Agent/pkg/pantry"
	"Smart-Grocery-Agent/pkg/session"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopMailer struct{}

func (nopMailer) SendMail(string, string, string) error { return nil }

type addIntent struct{ item string }

func (a addIntent) ParseIntent(context.Context, string, []string) (domain.ChatIntent, error) {
	return domain.ChatIntent{Intent: domain.IntentAdd, Item: a.item}, nil
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestApp(t *testing.T) (*fiber.App, storage.Blob) {
	t.Helper()
	ctx := context.Background()
	log := logger.NewWithWriter("test", io.Discard)
	blob := storage.NewFileBlob(t.TempDir())

	water := "Water"
	catalogRepository := catalog.NewCatalogRepository(blob, "products.json")
	require.NoError(t, catalogRepository.Save(ctx, entities.CatalogDocument{
		domain.CategoryBeverages: {
			"Soda":  {Price: 250, DaysToExpire: 90, Alternative: &water},
			"Water": {Price: 100, DaysToExpire: 365, Healthy: true},
		},
		domain.CategoryDairyChill: {
			"Milk": {Price: 400, DaysToExpire: 7, Healthy: true},
		},
	}))
	historyRepository := pantry.NewHistoryRepository(blob, "pantry_history.json")

	catalogService, err := catalog.NewCatalogService(ctx, catalogRepository, nil, log)
	require.NoError(t, err)

	now := time.Date(2024, 5, 20, 9, 0, 0, 0, time.Local)
	state := session.NewStateWithClock(nil, func() time.Time { return now })
	lookup := func() pantry.ProductLookup { return catalogService.Index() }
	pantryService := pantry.NewPantryService(state, historyRepository, lookup, log)
	cartService := cart.NewCartService(state, historyRepository, lookup, log)
	chatService := chat.NewChatService(state, addIntent{item: "Milk"}, catalogService, cartService, log)
	notifyService := notify.NewNotifyService(pantryService, nopMailer{}, "", log)

	utils.InitValidator()
	app := fiber.New()
	cfg := Config{
		App:            app,
		CatalogHandler: handlers.NewCatalogHandler(catalogService, utils.Validate),
		CartHandler:    handlers.NewCartHandler(cartService, utils.Validate),
		PantryHandler:  handlers.NewPantryHandler(pantryService, notifyService, utils.Validate),
		ChatHandler:    handlers.NewChatHandler(chatService, utils.Validate),
		Middleware:     middleware.NewMiddleware(log),
	}
	cfg.Setup()

	return app, blob
}

func call(t *testing.T, app *fiber.App, method, path string, body any) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestRoutes_Ping(t *testing.T) {
	app, _ := newTestApp(t)

	status, env := call(t, app, http.MethodGet, "/api/ping", nil)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, domain.MessageSuccessPing, env.Message)
}

func TestRoutes_HealthSuggestionThenCheckout(t *testing.T) {
	app, blob := newTestApp(t)

	status, env := call(t, app, http.MethodPost, "/api/v1/cart", domain.AddToCartRequest{Item: "Soda"})
	require.Equal(t, http.StatusAccepted, status)
	var pending domain.AddToCartResponse
	require.NoError(t, json.Unmarshal(env.Data, &pending))
	require.NotNil(t, pending.Pending)
	assert.Equal(t, "Water", pending.Pending.Alternative)

	status, _ = call(t, app, http.MethodPost, "/api/v1/cart/suggestion", domain.ResolveSuggestionRequest{Action: domain.ActionAccept})
	require.Equal(t, http.StatusCreated, status)

	status, env = call(t, app, http.MethodPost, "/api/v1/cart/checkout", nil)
	require.Equal(t, http.StatusOK, status)
	var checkout domain.CheckoutResponse
	require.NoError(t, json.Unmarshal(env.Data, &checkout))
	assert.Equal(t, 1, checkout.AddedEntries)

	status, env = call(t, app, http.MethodGet, "/api/v1/pantry", nil)
	require.Equal(t, http.StatusOK, status)
	var pantryRes domain.PantryResponse
	require.NoError(t, json.Unmarshal(env.Data, &pantryRes))
	require.Len(t, pantryRes.Entries, 1)
	assert.Equal(t, "Water", pantryRes.Entries[0].Item)

	saved, err := blob.Read(context.Background(), "pantry_history.json")
	require.NoError(t, err)
	assert.Contains(t, string(saved), `"item": "Water"`)
}

func TestRoutes_ErrorStatuses(t *testing.T) {
	app, _ := newTestApp(t)

	status, env := call(t, app, http.MethodPost, "/api/v1/cart", domain.AddToCartRequest{Item: "Caviar"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, env.Status)
	assert.Equal(t, domain.MessageFailedAddToCart, env.Message)

	status, _ = call(t, app, http.MethodPost, "/api/v1/cart", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = call(t, app, http.MethodPost, "/api/v1/cart/checkout", nil)
	assert.Equal(t, http.StatusConflict, status)

	status, _ = call(t, app, http.MethodPost, "/api/v1/cart/suggestion", domain.ResolveSuggestionRequest{Action: "shrug"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = call(t, app, http.MethodDelete, "/api/v1/pantry/abc", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = call(t, app, http.MethodDelete, "/api/v1/pantry/3", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = call(t, app, http.MethodPost, "/api/v1/notifications/email", nil)
	assert.Equal(t, http.StatusServiceUnavailable, status)
}

func TestRoutes_CatalogByEscapedName(t *testing.T) {
	app, _ := newTestApp(t)

	status, env := call(t, app, http.MethodPost, "/api/v1/catalog", domain.AddProductRequest{Name: "Fruit Salad", Category: domain.CategoryProduce, Price: 600, DaysToExpire: 3})
	require.Equal(t, http.StatusCreated, status, env.Error)

	status, env = call(t, app, http.MethodGet, "/api/v1/catalog/Fruit%20Salad", nil)
	require.Equal(t, http.StatusOK, status)
	var product domain.ProductResponse
	require.NoError(t, json.Unmarshal(env.Data, &product))
	assert.Equal(t, domain.CategoryProduce, product.Category)

	status, _ = call(t, app, http.MethodPost, "/api/v1/catalog", domain.AddProductRequest{Name: "Milk", Price: 1, DaysToExpire: 1})
	assert.Equal(t, http.StatusConflict, status)

	status, _ = call(t, app, http.MethodDelete, "/api/v1/catalog/Fruit%20Salad", nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = call(t, app, http.MethodGet, "/api/v1/catalog/Fruit%20Salad", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRoutes_SimulationAndNotifications(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := call(t, app, http.MethodPost, "/api/v1/chat", domain.ChatRequest{Message: "add milk"})
	require.Equal(t, http.StatusOK, status)
	status, _ = call(t, app, http.MethodPost, "/api/v1/cart/checkout", nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = call(t, app, http.MethodPut, "/api/v1/simulation", domain.SimulationRequest{DaysOffset: 400})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = call(t, app, http.MethodPut, "/api/v1/simulation", domain.SimulationRequest{DaysOffset: 8})
	require.Equal(t, http.StatusOK, status)

	status, env := call(t, app, http.MethodGet, "/api/v1/notifications", nil)
	require.Equal(t, http.StatusOK, status)
	var notes domain.NotificationsResponse
	require.NoError(t, json.Unmarshal(env.Data, &notes))
	assert.Equal(t, []string{"Milk has expired!"}, notes.ExpiryAlerts)
	assert.Len(t, notes.RestockSuggestions, 1)

	status, env = call(t, app, http.MethodGet, "/api/v1/chat", nil)
	require.Equal(t, http.StatusOK, status)
	var transcript []domain.ChatMessage
	require.NoError(t, json.Unmarshal(env.Data, &transcript))
	assert.Len(t, transcript, 2)
}
