package pantry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"Smart-Grocery-Agent/entities"
	"Smart-Grocery-Agent/internal/utils/storage"
)

type (
	HistoryRepository interface {
		Load(ctx context.Context) ([]entities.PantryEntry, error)
		Save(ctx context.Context, entries []entities.PantryEntry) error
	}

	historyRepository struct {
		blob storage.Blob
		key  string
		now  func() time.Time
	}
)

func NewHistoryRepository(blob storage.Blob, key string) HistoryRepository {
	return NewHistoryRepositoryWithClock(blob, key, time.Now)
}

// NewHistoryRepositoryWithClock uses now to resolve offset-encoded entries.
func NewHistoryRepositoryWithClock(blob storage.Blob, key string, now func() time.Time) HistoryRepository {
	return &historyRepository{blob: blob, key: key, now: now}
}

func (r *historyRepository) Load(ctx context.Context) ([]entities.PantryEntry, error) {
	data, err := r.blob.Read(ctx, r.key)
	if errors.Is(err, storage.ErrNotExist) {
		return []entities.PantryEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	var records []entities.PantryRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}

	today := r.now()
	entries := make([]entities.PantryEntry, 0, len(records))
	for i, record := range records {
		entry, err := decodeRecord(record, today)
		if err != nil {
			return nil, fmt.Errorf("history entry %d (%s): %w", i, record.Item, err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func decodeRecord(record entities.PantryRecord, today time.Time) (entities.PantryEntry, error) {
	entry := entities.PantryEntry{Item: record.Item, Status: record.Status}

	if record.BuyDateOffset != nil {
		entry.BuyDate = today.AddDate(0, 0, *record.BuyDateOffset)
		expiryOffset := 0
		if record.ExpiryOffset != nil {
			expiryOffset = *record.ExpiryOffset
		}
		entry.ExpiryDate = today.AddDate(0, 0, expiryOffset)
		return entry, nil
	}

	buyDate, err := time.ParseInLocation(entities.DateLayout, record.BuyDate, time.Local)
	if err != nil {
		return entities.PantryEntry{}, fmt.Errorf("buy_date: %w", err)
	}
	expiryDate, err := time.ParseInLocation(entities.DateLayout, record.ExpiryDate, time.Local)
	if err != nil {
		return entities.PantryEntry{}, fmt.Errorf("expiry_date: %w", err)
	}
	entry.BuyDate = buyDate
	entry.ExpiryDate = expiryDate

	return entry, nil
}

// Save overwrites the whole history document. Dates are always written as
// YYYY-MM-DD, offsets never.
func (r *historyRepository) Save(ctx context.Context, entries []entities.PantryEntry) error {
	records := make([]entities.PantryRecord, 0, len(entries))
	for _, entry := range entries {
		records = append(records, entities.PantryRecord{
			Item:       entry.Item,
			BuyDate:    entry.BuyDate.Format(entities.DateLayout),
			ExpiryDate: entry.ExpiryDate.Format(entities.DateLayout),
			Status:     entry.Status,
		})
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return err
	}
	if err := r.blob.Write(ctx, r.key, data); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}
