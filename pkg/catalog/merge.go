package catalog

import (
	"strings"

	"Smart-Grocery-Agent/domain"
	"Smart-Grocery-Agent/entities"
)

// MergeResult is the catalog after a classified insert.
type MergeResult struct {
	Document           entities.CatalogDocument
	Product            entities.Product
	CreatedAlternative *entities.Product
}

// MergeClassified inserts product into a copy of doc using the health and
// alternative fields of cls. An alternative the classifier invented is
// inserted first, so the new product's alternative always resolves.
// Category, price and shelf life of product are taken as given.
func MergeClassified(doc entities.CatalogDocument, product entities.Product, cls domain.Classification) (MergeResult, error) {
	product.Name = strings.TrimSpace(product.Name)
	if product.Name == "" || product.Price < 0 || product.DaysToExpire < 1 {
		return MergeResult{}, domain.ErrInvalidProduct
	}
	if product.Category == "" {
		product.Category = domain.CategoryUnknown
	}

	idx := NewIndex(doc)
	if _, exists := idx.Lookup(product.Name); exists {
		return MergeResult{}, domain.ErrProductExists
	}

	out := doc.Clone()
	result := MergeResult{}

	product.Healthy = cls.InputHealthy
	product.Alternative = nil

	if altName := alternativeName(cls, product.Name); !cls.InputHealthy && altName != "" {
		_, altExists := idx.Lookup(altName)
		switch {
		case altExists:
			product.Alternative = &altName
		case cls.AlternativeSource == domain.AlternativeNew:
			alt := inventedAlternative(altName, cls)
			insert(out, alt)
			result.CreatedAlternative = &alt
			product.Alternative = &altName
		}
		// an "existing" alternative that does not resolve is dropped
	}

	insert(out, product)
	result.Document = out
	result.Product = product

	return result, nil
}

func alternativeName(cls domain.Classification, self string) string {
	if cls.AlternativeName == nil {
		return ""
	}
	name := strings.TrimSpace(*cls.AlternativeName)
	if strings.EqualFold(name, self) {
		return ""
	}
	return name
}

func inventedAlternative(name string, cls domain.Classification) entities.Product {
	alt := entities.Product{
		Name:         name,
		Category:     strings.TrimSpace(cls.AlternativeCategory),
		Price:        cls.AlternativePrice,
		DaysToExpire: cls.AlternativeDaysToExpire,
		Healthy:      true,
	}
	if alt.Category == "" {
		alt.Category = domain.CategoryUnknown
	}
	if alt.Price < 0 {
		alt.Price = 0
	}
	if alt.DaysToExpire < 1 {
		alt.DaysToExpire = domain.ChatDefaultDaysToExpire
	}
	return alt
}

func insert(doc entities.CatalogDocument, p entities.Product) {
	items, ok := doc[p.Category]
	if !ok {
		items = make(map[string]entities.ProductRecord)
		doc[p.Category] = items
	}
	items[p.Name] = p.Record()
}

func remove(doc entities.CatalogDocument, p entities.Product) {
	items, ok := doc[p.Category]
	if !ok {
		return
	}
	delete(items, p.Name)
	if len(items) == 0 {
		delete(doc, p.Category)
	}
}
