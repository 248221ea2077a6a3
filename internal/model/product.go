package model

import "math"

// Tier is the demand tier of a stocked SKU.
type Tier string

const (
	TierA Tier = "A" // top sellers, always stocked
	TierB Tier = "B"
	TierC Tier = "C"
)

// Badge is a merchandising label shown on product cards.
type Badge string

const (
	BadgeNone       Badge = ""
	BadgeBestSeller Badge = "Best Seller"
	BadgeNew        Badge = "New"
	BadgeSale       Badge = "Sale"
	BadgeBEADReady  Badge = "BEAD Ready"
	BadgeQuickShip  Badge = "Quick Ship"
)

// Product is a single off-the-shelf SKU in the shop catalog.
type Product struct {
	SKU         string   `json:"sku"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	Specs       []string `json:"specs"`
	Price       float64  `json:"price"`
	CompareAt   *float64 `json:"compare_at,omitempty"` // competitor price
	InStock     bool     `json:"in_stock"`
	QuickShip   bool     `json:"quick_ship"`
	Tier        Tier     `json:"tier"`
	Badge       Badge    `json:"badge,omitempty"`
	Image       string   `json:"image,omitempty"`
}

// SavingsPercent returns the whole-number discount against the compare-at
// price, or 0 when there is none. Halves round toward positive infinity,
// so a price just above compare-at yields -2 for -2.5.
func (p Product) SavingsPercent() int {
	if p.CompareAt == nil || *p.CompareAt <= 0 {
		return 0
	}
	pct := (*p.CompareAt - p.Price) / *p.CompareAt * 100
	return int(math.Floor(pct + 0.5))
}

// Price returns a pointer to v, for optional price fields.
func Price(v float64) *float64 {
	return &v
}

// Category is a top-level shop category.
type Category struct {
	Name          string        `json:"name"`
	Slug          string        `json:"slug"`
	Description   string        `json:"description"`
	Icon          string        `json:"icon"`
	EstimatedSKUs int           `json:"estimated_skus"`
	Subcategories []Subcategory `json:"subcategories"`
}

// Subcategory is a second-level shop grouping with its typical price band.
type Subcategory struct {
	Name          string     `json:"name"`
	Slug          string     `json:"slug"`
	EstimatedSKUs int        `json:"estimated_skus"`
	PriceRange    [2]float64 `json:"price_range"`
}

// Bundle is a use-case kit sold at a single price.
type Bundle struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Description    string       `json:"description"`
	TargetCustomer string       `json:"target_customer"`
	Items          []BundleItem `json:"items"`
	BundlePrice    float64      `json:"bundle_price"`
	Savings        float64      `json:"savings"`
	Badge          string       `json:"badge,omitempty"`
}

// BundleItem is one line of a bundle.
type BundleItem struct {
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Value float64 `json:"value"`
}

// ItemValue sums the listed value of every item in the bundle.
func (b Bundle) ItemValue() float64 {
	var total float64
	for _, it := range b.Items {
		total += float64(it.Qty) * it.Value
	}
	return total
}

// ProductFilter specifies criteria for listing products.
type ProductFilter struct {
	Query         string   `json:"query,omitempty"`
	Category      string   `json:"category,omitempty"`
	Subcategory   string   `json:"subcategory,omitempty"`
	Badge         Badge    `json:"badge,omitempty"`
	FiberTypes    []string `json:"fiber_types,omitempty"`
	Connectors    []string `json:"connectors,omitempty"`
	Jackets       []string `json:"jackets,omitempty"`
	MinPrice      float64  `json:"min_price,omitempty"`
	MaxPrice      float64  `json:"max_price,omitempty"`
	InStockOnly   bool     `json:"in_stock_only,omitempty"`
	QuickShipOnly bool     `json:"quick_ship_only,omitempty"`
	Limit         int      `json:"limit,omitempty"`
	Offset        int      `json:"offset,omitempty"`
}
