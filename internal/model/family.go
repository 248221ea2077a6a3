package model

// ProductFamily groups SKUs that differ only by cable length.
type ProductFamily struct {
	Key         string           `json:"key"`  // category:subcategory:name
	Name        string           `json:"name"` // e.g. "LC/UPC-LC/UPC OS2 Duplex Patch Cord"
	Slug        string           `json:"slug"`
	Category    string           `json:"category"`
	Subcategory string           `json:"subcategory"`
	ConnectorA  string           `json:"connector_a"`
	ConnectorB  string           `json:"connector_b"`
	Fiber       string           `json:"fiber"`
	Config      string           `json:"config"` // Duplex, Simplex
	Jacket      string           `json:"jacket"`
	Specs       []string         `json:"specs"` // shared specs, length removed
	Variants    []ProductVariant `json:"variants"`
}

// ProductVariant is one length of a family.
type ProductVariant struct {
	SKU       string   `json:"sku"`
	Length    string   `json:"length"`     // "1m", "2.5m"
	LengthNum float64  `json:"length_num"` // meters, for sorting
	Price     float64  `json:"price"`
	CompareAt *float64 `json:"compare_at,omitempty"`
	InStock   bool     `json:"in_stock"`
	QuickShip bool     `json:"quick_ship"`
	Badge     Badge    `json:"badge,omitempty"`
}

// PriceFrom returns the lowest variant price, or 0 for an empty family.
func (f ProductFamily) PriceFrom() float64 {
	if len(f.Variants) == 0 {
		return 0
	}
	lo := f.Variants[0].Price
	for _, v := range f.Variants[1:] {
		if v.Price < lo {
			lo = v.Price
		}
	}
	return lo
}

// PriceTo returns the highest variant price, or 0 for an empty family.
func (f ProductFamily) PriceTo() float64 {
	var hi float64
	for _, v := range f.Variants {
		if v.Price > hi {
			hi = v.Price
		}
	}
	return hi
}

// InStockCount returns how many variants are currently in stock.
func (f ProductFamily) InStockCount() int {
	n := 0
	for _, v := range f.Variants {
		if v.InStock {
			n++
		}
	}
	return n
}

// Variant returns the variant with the given length label ("3m").
func (f ProductFamily) Variant(length string) (ProductVariant, bool) {
	for _, v := range f.Variants {
		if v.Length == length {
			return v, true
		}
	}
	return ProductVariant{}, false
}
