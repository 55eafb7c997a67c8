package catalog

import (
	"sort"

	"Smart-Grocery-Agent/entities"
)

// Index is an immutable name -> product view of a catalog document. It is
// rebuilt whenever the catalog changes and never mutated afterwards.
type Index struct {
	products   map[string]entities.Product
	categories []string
	byCategory map[string][]string
}

func NewIndex(doc entities.CatalogDocument) *Index {
	idx := &Index{
		products:   make(map[string]entities.Product),
		byCategory: make(map[string][]string, len(doc)),
	}

	for category := range doc {
		idx.categories = append(idx.categories, category)
	}
	sort.Strings(idx.categories)

	for _, category := range idx.categories {
		items := doc[category]
		names := make([]string, 0, len(items))
		for name := range items {
			names = append(names, name)
		}
		sort.Strings(names)

		kept := names[:0]
		for _, name := range names {
			// names are unique catalog-wide; the first category wins
			if _, dup := idx.products[name]; dup {
				continue
			}
			record := items[name]
			var alt *string
			if record.Alternative != nil {
				a := *record.Alternative
				alt = &a
			}
			idx.products[name] = entities.Product{
				Name:         name,
				Category:     category,
				Price:        record.Price,
				DaysToExpire: record.DaysToExpire,
				Healthy:      record.Healthy,
				Alternative:  alt,
			}
			kept = append(kept, name)
		}
		idx.byCategory[category] = kept
	}

	return idx
}

func (i *Index) Lookup(name string) (entities.Product, bool) {
	p, ok := i.products[name]
	return p, ok
}

func (i *Index) Categories() []string {
	out := make([]string, len(i.categories))
	copy(out, i.categories)
	return out
}

func (i *Index) ProductsIn(category string) []entities.Product {
	names := i.byCategory[category]
	out := make([]entities.Product, 0, len(names))
	for _, name := range names {
		out = append(out, i.products[name])
	}
	return out
}

func (i *Index) Names() []string {
	out := make([]string, 0, len(i.products))
	for name := range i.products {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (i *Index) Len() int {
	return len(i.products)
}
