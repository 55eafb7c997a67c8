package pantry

import (
	"context"
	"time"

	"Smart-Grocery-Agent/domain"
	"Smart-Grocery-Agent/entities"
	"Smart-Grocery-Agent/pkg/session"

	"github.com/rs/zerolog"
)

type (
	PantryService interface {
		GetPantry(ctx context.Context) domain.PantryResponse
		DeleteEntry(ctx context.Context, index int) error
		GetNotifications(ctx context.Context) domain.NotificationsResponse
		GetDashboardStats(ctx context.Context) domain.DashboardStatsResponse
		GetSimulation(ctx context.Context) domain.SimulationResponse
		SetSimulation(ctx context.Context, req domain.SimulationRequest) domain.SimulationResponse
	}

	pantryService struct {
		state      *session.State
		repository HistoryRepository
		catalog    func() ProductLookup // current catalog snapshot
		log        zerolog.Logger
	}
)

func NewPantryService(state *session.State, repository HistoryRepository, catalog func() ProductLookup, log zerolog.Logger) PantryService {
	return &pantryService{
		state:      state,
		repository: repository,
		catalog:    catalog,
		log:        log.With().Str("component", "pantry").Logger(),
	}
}

// refresh recomputes statuses at a single reference date. Caller holds the
// state lock.
func (s *pantryService) refresh() (time.Time, []string) {
	ref := s.state.ReferenceDate()
	updated, alerts := EvaluateStatuses(s.state.Pantry, ref)
	s.state.Pantry = updated
	return ref, alerts
}

func (s *pantryService) GetPantry(_ context.Context) domain.PantryResponse {
	s.state.Lock()
	defer s.state.Unlock()

	ref, _ := s.refresh()

	entries := make([]domain.PantryEntryResponse, 0, len(s.state.Pantry))
	for i, entry := range s.state.Pantry {
		entries = append(entries, domain.PantryEntryResponse{
			Index:      i,
			Item:       entry.Item,
			BuyDate:    entry.BuyDate,
			ExpiryDate: entry.ExpiryDate,
			DaysLeft:   DaysBetween(ref, entry.ExpiryDate),
			Status:     entry.Status,
		})
	}

	return domain.PantryResponse{ReferenceDate: ref, Entries: entries}
}

func (s *pantryService) DeleteEntry(ctx context.Context, index int) error {
	s.state.Lock()
	defer s.state.Unlock()

	if index < 0 || index >= len(s.state.Pantry) {
		return domain.ErrPantryEntryNotFound
	}

	removed := s.state.Pantry[index]
	remaining := make([]entities.PantryEntry, 0, len(s.state.Pantry)-1)
	remaining = append(remaining, s.state.Pantry[:index]...)
	remaining = append(remaining, s.state.Pantry[index+1:]...)

	if err := s.repository.Save(ctx, remaining); err != nil {
		return err
	}
	s.state.Pantry = remaining

	s.log.Info().Str("item", removed.Item).Int("index", index).Msg("pantry entry removed")
	return nil
}

func (s *pantryService) GetNotifications(_ context.Context) domain.NotificationsResponse {
	s.state.Lock()
	defer s.state.Unlock()

	ref, alerts := s.refresh()
	suggestions := PredictRestockNeeds(s.state.Pantry, s.catalog(), ref)

	return domain.NotificationsResponse{
		ReferenceDate:      ref,
		ExpiryAlerts:       alerts,
		RestockSuggestions: suggestions,
		Total:              len(alerts) + len(suggestions),
	}
}

func (s *pantryService) GetDashboardStats(_ context.Context) domain.DashboardStatsResponse {
	s.state.Lock()
	defer s.state.Unlock()

	s.refresh()
	return Summarize(s.state.Pantry, s.catalog())
}

func (s *pantryService) GetSimulation(_ context.Context) domain.SimulationResponse {
	s.state.Lock()
	defer s.state.Unlock()

	return domain.SimulationResponse{
		DaysOffset:    s.state.DaysOffset(),
		ReferenceDate: s.state.ReferenceDate(),
	}
}

func (s *pantryService) SetSimulation(_ context.Context, req domain.SimulationRequest) domain.SimulationResponse {
	s.state.Lock()
	defer s.state.Unlock()

	s.state.SetDaysOffset(req.DaysOffset)
	ref := s.state.ReferenceDate()

	s.log.Info().Int("days_offset", req.DaysOffset).Str("reference_date", ref.Format(entities.DateLayout)).Msg("simulation date changed")
	return domain.SimulationResponse{DaysOffset: req.DaysOffset, ReferenceDate: ref}
}
