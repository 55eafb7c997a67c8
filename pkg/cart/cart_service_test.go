package cart

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"Smart-Grocery-Agent/domain"
	"Smart-Grocery-Agent/entities"
	"Smart-Grocery-Agent/internal/utils/logger"
	"Smart-Grocery-Agent/pkg/pantry"
	"Smart-Grocery-Agent/pkg/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refDate = time.Date(2024, 5, 20, 9, 0, 0, 0, time.Local)

type memoryHistory struct {
	saved   []entities.PantryEntry
	saveErr error
}

func (m *memoryHistory) Load(context.Context) ([]entities.PantryEntry, error) {
	return m.saved, nil
}

func (m *memoryHistory) Save(_ context.Context, entries []entities.PantryEntry) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = entries
	return nil
}

func newTestCartService(pantryEntries []entities.PantryEntry, catalog lookupMap) (CartService, *session.State, *memoryHistory) {
	state := session.NewStateWithClock(pantryEntries, func() time.Time { return refDate })
	history := &memoryHistory{}
	svc := NewCartService(state, history, func() pantry.ProductLookup { return catalog }, logger.NewWithWriter("test", io.Discard))
	return svc, state, history
}

func TestCartService_HealthSuggestionLeavesCartUntouched(t *testing.T) {
	svc, state, _ := newTestCartService(nil, testCatalog())
	ctx := context.Background()

	res, err := svc.AddToCart(ctx, domain.AddToCartRequest{Item: "Soda"})
	require.NoError(t, err)

	assert.Nil(t, res.Added)
	require.NotNil(t, res.Pending)
	assert.Equal(t, "Water", res.Pending.Alternative)
	assert.Empty(t, state.Cart)

	res, err = svc.ResolveSuggestion(ctx, domain.ResolveSuggestionRequest{Action: domain.ActionAccept})
	require.NoError(t, err)

	require.NotNil(t, res.Added)
	assert.Equal(t, "Water", res.Added.Item)
	assert.Equal(t, domain.CartLinePending, res.Added.Status)
	assert.NotEmpty(t, res.Added.ID)
	assert.Nil(t, state.Pending)

	cart := svc.GetCart(ctx)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 100.0, cart.Total)
}

func TestCartService_DuplicateCheckUsesCurrentStatuses(t *testing.T) {
	// stored as Good but expired at the reference date
	stale := entities.PantryEntry{Item: "Milk", BuyDate: refDate.AddDate(0, 0, -10), ExpiryDate: refDate.AddDate(0, 0, -3), Status: domain.StatusGood}
	svc, state, _ := newTestCartService([]entities.PantryEntry{stale}, testCatalog())

	res, err := svc.AddToCart(context.Background(), domain.AddToCartRequest{Item: "Milk"})

	require.NoError(t, err)
	require.NotNil(t, res.Added)
	assert.Equal(t, domain.StatusExpired, state.Pantry[0].Status)
}

func TestCartService_DuplicateThenCancel(t *testing.T) {
	fresh := entities.PantryEntry{Item: "Milk", BuyDate: refDate, ExpiryDate: refDate.AddDate(0, 0, 7)}
	svc, state, _ := newTestCartService([]entities.PantryEntry{fresh}, testCatalog())
	ctx := context.Background()

	res, err := svc.AddToCart(ctx, domain.AddToCartRequest{Item: "Milk"})
	require.NoError(t, err)
	assert.Equal(t, domain.NewDuplicateSuggestion("Milk", 1), res.Pending)
	assert.Empty(t, state.Cart)

	_, err = svc.ResolveSuggestion(ctx, domain.ResolveSuggestionRequest{Action: domain.ActionCancel})
	require.NoError(t, err)
	assert.Empty(t, state.Cart)
	assert.Nil(t, state.Pending)

	_, err = svc.ResolveSuggestion(ctx, domain.ResolveSuggestionRequest{Action: domain.ActionCancel})
	assert.ErrorIs(t, err, domain.ErrNoPendingSuggestion)
}

func TestCartService_UnknownProductKeepsPending(t *testing.T) {
	svc, state, _ := newTestCartService(nil, testCatalog())
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, domain.AddToCartRequest{Item: "Soda"})
	require.NoError(t, err)

	_, err = svc.AddToCart(ctx, domain.AddToCartRequest{Item: "Caviar"})

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Equal(t, domain.NewHealthSuggestion("Soda", "Water"), state.Pending)
	assert.Empty(t, state.Cart)
}

func TestCartService_RemoveLineAndClear(t *testing.T) {
	svc, state, _ := newTestCartService(nil, testCatalog())
	ctx := context.Background()

	first, err := svc.AddToCart(ctx, domain.AddToCartRequest{Item: "Milk"})
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, domain.AddToCartRequest{Item: "Water"})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveLine(ctx, first.Added.ID))
	require.Len(t, state.Cart, 1)
	assert.Equal(t, "Water", state.Cart[0].Item)
	assert.ErrorIs(t, svc.RemoveLine(ctx, first.Added.ID), domain.ErrCartLineNotFound)

	svc.Clear(ctx)
	assert.Empty(t, svc.GetCart(ctx).Lines)
}

func TestCartService_Checkout(t *testing.T) {
	catalog := testCatalog()
	svc, state, history := newTestCartService(nil, catalog)
	ctx := context.Background()

	_, err := svc.Checkout(ctx)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)

	_, err = svc.AddToCart(ctx, domain.AddToCartRequest{Item: "Milk"})
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, domain.AddToCartRequest{Item: "Water"})
	require.NoError(t, err)
	delete(catalog, "Water")

	res, err := svc.Checkout(ctx)
	require.NoError(t, err)

	assert.Equal(t, 400.0, res.Total)
	assert.Equal(t, 1, res.AddedEntries)
	assert.Equal(t, []string{"Water"}, res.SkippedItems)
	assert.Empty(t, state.Cart)

	require.Len(t, state.Pantry, 1)
	milk := state.Pantry[0]
	assert.Equal(t, refDate, milk.BuyDate)
	assert.Equal(t, refDate.AddDate(0, 0, 7), milk.ExpiryDate)
	assert.Equal(t, domain.StatusGood, milk.Status)
	assert.Equal(t, state.Pantry, history.saved)
}

func TestCartService_CheckoutSaveFailureKeepsCart(t *testing.T) {
	svc, state, history := newTestCartService(nil, testCatalog())
	ctx := context.Background()
	_, err := svc.AddToCart(ctx, domain.AddToCartRequest{Item: "Milk"})
	require.NoError(t, err)
	history.saveErr = errors.New("disk full")

	_, err = svc.Checkout(ctx)

	assert.Error(t, err)
	assert.Len(t, state.Cart, 1)
	assert.Empty(t, state.Pantry)
}

func TestCartService_ProductDeletedWhilePending(t *testing.T) {
	catalog := testCatalog()
	svc, state, _ := newTestCartService(nil, catalog)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, domain.AddToCartRequest{Item: "Soda"})
	require.NoError(t, err)
	delete(catalog, "Soda")

	_, err = svc.ResolveSuggestion(ctx, domain.ResolveSuggestionRequest{Action: domain.ActionKeep})

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Empty(t, state.Cart)
}
