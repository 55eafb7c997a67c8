package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"Smart-Grocery-Agent/entities"
	"Smart-Grocery-Agent/internal/utils/storage"
)

type (
	CatalogRepository interface {
		Load(ctx context.Context) (entities.CatalogDocument, error)
		Save(ctx context.Context, doc entities.CatalogDocument) error
	}

	catalogRepository struct {
		blob storage.Blob
		key  string
	}
)

func NewCatalogRepository(blob storage.Blob, key string) CatalogRepository {
	return &catalogRepository{blob: blob, key: key}
}

func (r *catalogRepository) Load(ctx context.Context) (entities.CatalogDocument, error) {
	data, err := r.blob.Read(ctx, r.key)
	if errors.Is(err, storage.ErrNotExist) {
		return entities.CatalogDocument{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	doc := entities.CatalogDocument{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return doc, nil
}

func (r *catalogRepository) Save(ctx context.Context, doc entities.CatalogDocument) error {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return err
	}
	if err := r.blob.Write(ctx, r.key, data); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}
