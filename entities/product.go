package entities

// ProductRecord is one product as stored in the catalog document.
type ProductRecord struct {
	Price        float64 `json:"price"`
	DaysToExpire int     `json:"days_to_expire"`
	Healthy      bool    `json:"healthy"`
	Alternative  *string `json:"alt"`
}

// CatalogDocument maps category name to product name to record.
type CatalogDocument map[string]map[string]ProductRecord

// Product is a catalog record resolved with its name and category.
type Product struct {
	Name         string
	Category     string
	Price        float64
	DaysToExpire int
	Healthy      bool
	Alternative  *string
}

func (p Product) Record() ProductRecord {
	return ProductRecord{
		Price:        p.Price,
		DaysToExpire: p.DaysToExpire,
		Healthy:      p.Healthy,
		Alternative:  p.Alternative,
	}
}

// HasAlternative reports whether the product is unhealthy and points at a
// replacement.
func (p Product) HasAlternative() bool {
	return !p.Healthy && p.Alternative != nil && *p.Alternative != ""
}

// Clone returns a deep copy of the document.
func (d CatalogDocument) Clone() CatalogDocument {
	out := make(CatalogDocument, len(d))
	for category, items := range d {
		copied := make(map[string]ProductRecord, len(items))
		for name, record := range items {
			if record.Alternative != nil {
				alt := *record.Alternative
				record.Alternative = &alt
			}
			copied[name] = record
		}
		out[category] = copied
	}
	return out
}
