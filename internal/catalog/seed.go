package catalog

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/nexlume/fibercat/internal/model"
)

// cordLengths are the stocked patch-cord lengths in meters.
var cordLengths = []float64{1, 2, 3, 5, 7, 10, 15, 20, 25, 30, 50}

var (
	whitespaceRe = regexp.MustCompile(`\s`)
	nonSKURe     = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// cordSeries describes one connector/fiber combination sold in every
// stocked length.
type cordSeries struct {
	connA, connB string
	fiber        string
	config       string // Duplex or Simplex
	fiberSpec    string
	jacket       string
	base         float64
	category     string
	subcategory  string
	badge        model.Badge
}

// products expands the series into one product per length. Shorter lengths
// are stocked and tiered higher; only the shortest carries the badge.
func (s cordSeries) products() []model.Product {
	skuA := whitespaceRe.ReplaceAllString(strings.ReplaceAll(s.connA, "/", ""), "")
	skuB := whitespaceRe.ReplaceAllString(strings.ReplaceAll(s.connB, "/", ""), "")
	fiberSKU := nonSKURe.ReplaceAllString(s.fiber, "")
	cfgSKU := "DX"
	if s.config == "Simplex" {
		cfgSKU = "SX"
	}

	out := make([]model.Product, 0, len(cordLengths))
	for i, l := range cordLengths {
		raw := s.base + l*0.4
		p := model.Product{
			SKU:         fmt.Sprintf("NX-PC-%s%s-%s-%s-%gM", skuA, skuB, fiberSKU, cfgSKU, l),
			Name:        fmt.Sprintf("%s-%s %s %s Patch Cord — %gm", s.connA, s.connB, s.fiber, s.config, l),
			Category:    s.category,
			Subcategory: s.subcategory,
			Specs:       []string{s.fiberSpec, s.config, s.jacket, fmt.Sprintf("%gm", l)},
			Price:       cents(raw),
			CompareAt:   model.Price(cents(raw * 1.25)),
			InStock:     i < 8,
			QuickShip:   i < 6,
			Tier:        tierFor(i),
		}
		if i == 0 {
			p.Badge = s.badge
		}
		out = append(out, p)
	}
	return out
}

func tierFor(i int) model.Tier {
	switch {
	case i < 4:
		return model.TierA
	case i < 8:
		return model.TierB
	}
	return model.TierC
}

func cents(v float64) float64 {
	return math.Round(v*100) / 100
}

var cordRanges = []cordSeries{
	// Singlemode duplex
	{"LC/UPC", "LC/UPC", "OS2", "Duplex", "OS2 9/125μm", "LSZH", 3.99, "patch-cords", "sm-duplex", model.BadgeBestSeller},
	{"SC/UPC", "SC/UPC", "OS2", "Duplex", "OS2 9/125μm", "LSZH", 3.79, "patch-cords", "sm-duplex", model.BadgeNone},
	{"SC/UPC", "LC/UPC", "OS2", "Duplex", "OS2 9/125μm", "LSZH", 3.99, "patch-cords", "sm-duplex", model.BadgeNone},
	{"LC/APC", "LC/APC", "OS2", "Duplex", "OS2 9/125μm", "LSZH", 4.49, "patch-cords", "sm-duplex", model.BadgeNone},
	{"SC/APC", "LC/APC", "OS2", "Duplex", "OS2 9/125μm", "LSZH", 4.29, "patch-cords", "sm-duplex", model.BadgeNone},

	// Singlemode simplex
	{"SC/APC", "SC/APC", "OS2", "Simplex", "OS2 9/125μm", "LSZH", 2.99, "patch-cords", "sm-simplex", model.BadgeBEADReady},
	{"LC/UPC", "LC/UPC", "OS2", "Simplex", "OS2 9/125μm", "LSZH", 2.79, "patch-cords", "sm-simplex", model.BadgeNone},
	{"SC/UPC", "SC/UPC", "OS2", "Simplex", "OS2 9/125μm", "LSZH", 2.69, "patch-cords", "sm-simplex", model.BadgeNone},
	{"FC/UPC", "FC/UPC", "OS2", "Simplex", "OS2 9/125μm", "PVC", 3.29, "patch-cords", "sm-simplex", model.BadgeNone},
	{"ST", "ST", "OS2", "Simplex", "OS2 9/125μm", "PVC", 3.49, "patch-cords", "sm-simplex", model.BadgeNone},

	// OM4 duplex
	{"LC/UPC", "LC/UPC", "OM4", "Duplex", "OM4 50/125μm", "LSZH", 4.49, "patch-cords", "om4-duplex", model.BadgeBestSeller},
	{"SC/UPC", "SC/UPC", "OM4", "Duplex", "OM4 50/125μm", "LSZH", 4.29, "patch-cords", "om4-duplex", model.BadgeNone},
	{"LC/UPC", "SC/UPC", "OM4", "Duplex", "OM4 50/125μm", "LSZH", 4.49, "patch-cords", "om4-duplex", model.BadgeNone},

	// OM3 duplex
	{"LC/UPC", "LC/UPC", "OM3", "Duplex", "OM3 50/125μm", "LSZH", 3.49, "patch-cords", "om3-duplex", model.BadgeNone},
	{"SC/UPC", "SC/UPC", "OM3", "Duplex", "OM3 50/125μm", "LSZH", 3.29, "patch-cords", "om3-duplex", model.BadgeNone},
}

// optic is one transceiver model.
type optic struct {
	speed, kind       string
	reach, wavelength string
	connector, fiber  string
	price, compareAt  float64
	subcategory       string
	badge             model.Badge
}

func (o optic) product() model.Product {
	return model.Product{
		SKU:         fmt.Sprintf("NX-%s-%s", whitespaceRe.ReplaceAllString(o.speed, ""), whitespaceRe.ReplaceAllString(o.kind, "-")),
		Name:        fmt.Sprintf("%s %s Transceiver — %s %s", o.speed, o.kind, o.wavelength, o.reach),
		Category:    "transceivers",
		Subcategory: o.subcategory,
		Specs:       []string{o.speed, o.wavelength, o.fiber + " " + o.reach, o.connector, "DDM"},
		Price:       o.price,
		CompareAt:   model.Price(o.compareAt),
		InStock:     true,
		QuickShip:   true,
		Tier:        model.TierA,
		Badge:       o.badge,
	}
}

var optics = []optic{
	{"1G", "SFP-SX", "550m", "850nm", "LC Duplex", "OM2", 8.99, 30, "sfp-1g", ""},
	{"1G", "SFP-LX", "10km", "1310nm", "LC Duplex", "OS2", 9.99, 35, "sfp-1g", ""},
	{"1G", "SFP-EX", "40km", "1310nm", "LC Duplex", "OS2", 18.99, 65, "sfp-1g", ""},
	{"1G", "SFP-ZX", "80km", "1550nm", "LC Duplex", "OS2", 35.99, 120, "sfp-1g", ""},
	{"1G", "SFP-T", "100m", "RJ45", "RJ45", "Cat6a", 12.99, 40, "sfp-1g", ""},
	{"1G", "SFP-BXU", "20km", "1310nm TX/1490nm RX", "LC Simplex", "OS2", 14.99, 50, "bidi", ""},
	{"1G", "SFP-BXD", "20km", "1490nm TX/1310nm RX", "LC Simplex", "OS2", 14.99, 50, "bidi", ""},

	{"10G", "SFP+-SR", "300m", "850nm", "LC Duplex", "OM3", 12.99, 45, "sfp-plus-10g", model.BadgeBestSeller},
	{"10G", "SFP+-LR", "10km", "1310nm", "LC Duplex", "OS2", 15.99, 55, "sfp-plus-10g", model.BadgeBestSeller},
	{"10G", "SFP+-ER", "40km", "1550nm", "LC Duplex", "OS2", 45.99, 150, "sfp-plus-10g", ""},
	{"10G", "SFP+-ZR", "80km", "1550nm", "LC Duplex", "OS2", 79.99, 250, "sfp-plus-10g", ""},
	{"10G", "SFP+-T", "30m", "RJ45", "RJ45", "Cat6a", 24.99, 80, "sfp-plus-10g", ""},
	{"10G", "SFP+-CWDM-1270", "40km", "1270nm", "LC Duplex", "OS2", 39.99, 130, "cwdm-dwdm", ""},
	{"10G", "SFP+-CWDM-1290", "40km", "1290nm", "LC Duplex", "OS2", 39.99, 130, "cwdm-dwdm", ""},
	{"10G", "SFP+-CWDM-1310", "40km", "1310nm", "LC Duplex", "OS2", 39.99, 130, "cwdm-dwdm", ""},
	{"10G", "SFP+-CWDM-1330", "40km", "1330nm", "LC Duplex", "OS2", 39.99, 130, "cwdm-dwdm", ""},

	{"25G", "SFP28-SR", "100m", "850nm", "LC Duplex", "OM3", 24.99, 85, "sfp28-25g", ""},
	{"25G", "SFP28-LR", "10km", "1310nm", "LC Duplex", "OS2", 39.99, 130, "sfp28-25g", ""},

	{"40G", "QSFP+-SR4", "150m", "850nm", "MPO-12", "OM3", 35.99, 120, "qsfp-plus-40g", ""},
	{"40G", "QSFP+-LR4", "10km", "1310nm", "LC Duplex", "OS2", 89.99, 300, "qsfp-plus-40g", ""},
	{"40G", "QSFP+-PSM4", "10km", "1310nm", "MPO-12", "OS2", 69.99, 220, "qsfp-plus-40g", ""},

	{"100G", "QSFP28-SR4", "100m", "850nm", "MPO-12", "OM4", 49.99, 180, "qsfp28-100g", model.BadgeBestSeller},
	{"100G", "QSFP28-LR4", "10km", "1310nm", "LC Duplex", "OS2", 89.99, 350, "qsfp28-100g", ""},
	{"100G", "QSFP28-CWDM4", "2km", "1271-1331nm", "LC Duplex", "OS2", 65.99, 250, "qsfp28-100g", ""},
	{"100G", "QSFP28-PSM4", "500m", "1310nm", "MPO-12", "OS2", 55.99, 200, "qsfp28-100g", ""},

	{"400G", "QSFP-DD-SR8", "100m", "850nm", "MPO-16", "OM4", 189.99, 600, "qsfp-dd-400g", model.BadgeNew},
	{"400G", "QSFP-DD-DR4", "500m", "1310nm", "MPO-12", "OS2", 249.99, 800, "qsfp-dd-400g", model.BadgeNew},
	{"400G", "QSFP-DD-FR4", "2km", "1271-1331nm", "LC Duplex", "OS2", 299.99, 950, "qsfp-dd-400g", model.BadgeNew},
	{"400G", "QSFP-DD-LR4", "10km", "1310nm", "LC Duplex", "OS2", 449.99, 1400, "qsfp-dd-400g", ""},
}

// TopSKUs returns the launch best sellers.
func TopSKUs() []model.Product { return topSKUs() }

// FullCatalog returns every generated and listed product in display order:
// patch cords, transceivers, infrastructure, passives, test equipment.
func FullCatalog() []model.Product {
	var out []model.Product
	for _, s := range cordRanges {
		out = append(out, s.products()...)
	}
	for _, o := range optics {
		out = append(out, o.product())
	}
	out = append(out, infrastructure()...)
	out = append(out, adaptersPassives()...)
	out = append(out, testEquipment()...)
	return out
}

// Categories returns the shop categories.
func Categories() []model.Category {
	return []model.Category{
		{
			Name:          "Patch Cords & Cables",
			Slug:          "patch-cords",
			Description:   "Pre-terminated fiber optic patch cords in standard lengths. Same-day shipping on all stock items.",
			Icon:          "🔌",
			EstimatedSKUs: 280,
			Subcategories: []model.Subcategory{
				{Name: "Singlemode OS2 Duplex", Slug: "sm-duplex", EstimatedSKUs: 60, PriceRange: [2]float64{3.50, 45}},
				{Name: "Singlemode OS2 Simplex", Slug: "sm-simplex", EstimatedSKUs: 30, PriceRange: [2]float64{2.50, 35}},
				{Name: "Multimode OM3 Duplex", Slug: "om3-duplex", EstimatedSKUs: 30, PriceRange: [2]float64{3, 40}},
				{Name: "Multimode OM4 Duplex", Slug: "om4-duplex", EstimatedSKUs: 30, PriceRange: [2]float64{4, 50}},
				{Name: "Multimode OM5 Duplex", Slug: "om5-duplex", EstimatedSKUs: 15, PriceRange: [2]float64{8, 65}},
				{Name: "MPO/MTP Trunk Cables", Slug: "mpo-trunk", EstimatedSKUs: 40, PriceRange: [2]float64{25, 350}},
				{Name: "MPO Breakout Cables", Slug: "mpo-breakout", EstimatedSKUs: 25, PriceRange: [2]float64{35, 250}},
				{Name: "Armored Patch Cords", Slug: "armored", EstimatedSKUs: 20, PriceRange: [2]float64{8, 55}},
				{Name: "Bend-Insensitive (G.657A2)", Slug: "bend-insensitive", EstimatedSKUs: 15, PriceRange: [2]float64{4, 40}},
				{Name: "Mode Conditioning", Slug: "mode-conditioning", EstimatedSKUs: 10, PriceRange: [2]float64{15, 65}},
				{Name: "Pigtails", Slug: "pigtails", EstimatedSKUs: 25, PriceRange: [2]float64{2, 20}},
			},
		},
		{
			Name:          "Transceivers & Optics",
			Slug:          "transceivers",
			Description:   "Compatible SFP, SFP+, SFP28, QSFP+, QSFP28, and QSFP-DD modules. 70-95% below OEM pricing.",
			Icon:          "💡",
			EstimatedSKUs: 200,
			Subcategories: []model.Subcategory{
				{Name: "1G SFP", Slug: "sfp-1g", EstimatedSKUs: 25, PriceRange: [2]float64{8, 35}},
				{Name: "10G SFP+", Slug: "sfp-plus-10g", EstimatedSKUs: 40, PriceRange: [2]float64{12, 65}},
				{Name: "25G SFP28", Slug: "sfp28-25g", EstimatedSKUs: 20, PriceRange: [2]float64{25, 120}},
				{Name: "40G QSFP+", Slug: "qsfp-plus-40g", EstimatedSKUs: 20, PriceRange: [2]float64{35, 180}},
				{Name: "100G QSFP28", Slug: "qsfp28-100g", EstimatedSKUs: 30, PriceRange: [2]float64{45, 350}},
				{Name: "400G QSFP-DD", Slug: "qsfp-dd-400g", EstimatedSKUs: 15, PriceRange: [2]float64{150, 800}},
				{Name: "CWDM/DWDM", Slug: "cwdm-dwdm", EstimatedSKUs: 20, PriceRange: [2]float64{35, 250}},
				{Name: "BiDi Transceivers", Slug: "bidi", EstimatedSKUs: 15, PriceRange: [2]float64{20, 150}},
				{Name: "Media Converters", Slug: "media-converters", EstimatedSKUs: 15, PriceRange: [2]float64{25, 200}},
			},
		},
		{
			Name:          "Infrastructure & Panels",
			Slug:          "patch-panels",
			Description:   "Rack-mount panels, wall-mount enclosures, LGX cassettes, and cable management solutions.",
			Icon:          "🏗️",
			EstimatedSKUs: 150,
			Subcategories: []model.Subcategory{
				{Name: "Rack-Mount Patch Panels", Slug: "rack-mount", EstimatedSKUs: 30, PriceRange: [2]float64{25, 350}},
				{Name: "Wall-Mount Enclosures", Slug: "wall-mount", EstimatedSKUs: 15, PriceRange: [2]float64{30, 200}},
				{Name: "LGX Cassettes & Modules", Slug: "lgx-cassettes", EstimatedSKUs: 25, PriceRange: [2]float64{20, 150}},
				{Name: "Splice Closures", Slug: "splice-closures", EstimatedSKUs: 15, PriceRange: [2]float64{25, 400}},
				{Name: "Splice Trays", Slug: "splice-trays", EstimatedSKUs: 10, PriceRange: [2]float64{5, 30}},
				{Name: "FDH / FDT / NAP", Slug: "distribution", EstimatedSKUs: 20, PriceRange: [2]float64{50, 800}},
				{Name: "Cable Management", Slug: "cable-management", EstimatedSKUs: 20, PriceRange: [2]float64{5, 80}},
				{Name: "Racks & Cabinets", Slug: "racks", EstimatedSKUs: 15, PriceRange: [2]float64{80, 600}},
			},
		},
		{
			Name:          "Adapters, Attenuators & Passives",
			Slug:          "adapters",
			Description:   "Fiber adapters, couplers, fixed/variable attenuators, splitters, and WDM modules.",
			Icon:          "🔗",
			EstimatedSKUs: 120,
			Subcategories: []model.Subcategory{
				{Name: "Fiber Adapters (Couplers)", Slug: "fiber-adapters", EstimatedSKUs: 35, PriceRange: [2]float64{1, 15}},
				{Name: "Hybrid Adapters", Slug: "hybrid-adapters", EstimatedSKUs: 10, PriceRange: [2]float64{3, 20}},
				{Name: "Fixed Attenuators", Slug: "fixed-attenuators", EstimatedSKUs: 25, PriceRange: [2]float64{3, 25}},
				{Name: "Variable Attenuators", Slug: "variable-attenuators", EstimatedSKUs: 5, PriceRange: [2]float64{25, 120}},
				{Name: "PLC Splitters", Slug: "plc-splitters", EstimatedSKUs: 15, PriceRange: [2]float64{10, 80}},
				{Name: "FBT Splitters", Slug: "fbt-splitters", EstimatedSKUs: 10, PriceRange: [2]float64{8, 50}},
				{Name: "WDM Modules (MUX/DEMUX)", Slug: "wdm", EstimatedSKUs: 15, PriceRange: [2]float64{20, 200}},
				{Name: "Loopback Plugs", Slug: "loopbacks", EstimatedSKUs: 5, PriceRange: [2]float64{5, 20}},
			},
		},
		{
			Name:          "Tools, Test & Cleaning",
			Slug:          "test-equipment",
			Description:   "Visual fault locators, power meters, OTDRs, cleavers, cleaning kits, and field tools.",
			Icon:          "🔧",
			EstimatedSKUs: 80,
			Subcategories: []model.Subcategory{
				{Name: "Visual Fault Locators", Slug: "vfl", EstimatedSKUs: 8, PriceRange: [2]float64{15, 80}},
				{Name: "Optical Power Meters", Slug: "power-meters", EstimatedSKUs: 10, PriceRange: [2]float64{30, 250}},
				{Name: "Light Sources", Slug: "light-sources", EstimatedSKUs: 8, PriceRange: [2]float64{50, 300}},
				{Name: "OTDRs", Slug: "otdr", EstimatedSKUs: 5, PriceRange: [2]float64{800, 5000}},
				{Name: "Fiber Identifiers", Slug: "identifiers", EstimatedSKUs: 5, PriceRange: [2]float64{100, 500}},
				{Name: "Cleaning Tools & Kits", Slug: "cleaning", EstimatedSKUs: 15, PriceRange: [2]float64{5, 80}},
				{Name: "Fiber Cleavers", Slug: "cleavers", EstimatedSKUs: 5, PriceRange: [2]float64{50, 400}},
				{Name: "Stripping & Prep Tools", Slug: "stripping", EstimatedSKUs: 10, PriceRange: [2]float64{10, 60}},
				{Name: "Inspection Scopes", Slug: "inspection", EstimatedSKUs: 8, PriceRange: [2]float64{150, 2000}},
				{Name: "Connector Kits", Slug: "connector-kits", EstimatedSKUs: 6, PriceRange: [2]float64{20, 150}},
			},
		},
	}
}

// Bundles returns the curated kits.
func Bundles() []model.Bundle {
	return []model.Bundle{
		{
			ID:             "ftth-installer",
			Name:           "FTTH Installer Kit",
			Description:    "Everything a fiber installer needs for FTTH drop installations. BEAD program ready.",
			TargetCustomer: "ISP field technicians, FTTH contractors",
			Items: []model.BundleItem{
				{Name: "SC/APC Patch Cords (10-pack, mixed lengths)", Qty: 1, Value: 35},
				{Name: "Visual Fault Locator 10mW", Qty: 1, Value: 19},
				{Name: "Optical Power Meter", Qty: 1, Value: 40},
				{Name: "SC/APC One-Click Cleaner", Qty: 1, Value: 7},
				{Name: "Fiber Stripping Tool Set", Qty: 1, Value: 15},
				{Name: "Splice-on Connectors SC/APC (20-pack)", Qty: 1, Value: 40},
				{Name: "Carrying Case", Qty: 1, Value: 20},
			},
			BundlePrice: 139.99,
			Savings:     36,
			Badge:       string(model.BadgeBEADReady),
		},
		{
			ID:             "datacenter-starter",
			Name:           "Data Center Starter Pack",
			Description:    "Core connectivity kit for new rack deployments. Includes patch cords, panel, and optics.",
			TargetCustomer: "Data center engineers, colo providers",
			Items: []model.BundleItem{
				{Name: "1U 24-Port LC Patch Panel", Qty: 1, Value: 46},
				{Name: "LC-LC OS2 Duplex 2m (12-pack)", Qty: 1, Value: 48},
				{Name: "10G SFP+ SR Transceiver (4-pack)", Qty: 1, Value: 52},
				{Name: "LC One-Click Cleaner", Qty: 2, Value: 14},
				{Name: "Cable Management D-Rings (10-pack)", Qty: 1, Value: 12},
			},
			BundlePrice: 149.99,
			Savings:     22,
		},
		{
			ID:             "technician-tool",
			Name:           "Fiber Technician Tool Kit",
			Description:    "Complete testing and termination toolkit for field and shop work.",
			TargetCustomer: "Network technicians, contractors",
			Items: []model.BundleItem{
				{Name: "Visual Fault Locator 10mW", Qty: 1, Value: 19},
				{Name: "Optical Power Meter Pro", Qty: 1, Value: 40},
				{Name: "Fiber Inspection Scope 400×", Qty: 1, Value: 180},
				{Name: "Fiber Cleaver", Qty: 1, Value: 65},
				{Name: "Professional Cleaning Kit", Qty: 1, Value: 35},
				{Name: "Stripping & Prep Tool Set", Qty: 1, Value: 25},
				{Name: "Hard-Shell Carrying Case", Qty: 1, Value: 35},
			},
			BundlePrice: 349.99,
			Savings:     49,
		},
		{
			ID:             "cleaning-maintenance",
			Name:           "Cleaning & Maintenance Kit",
			Description:    "Keep your fiber connections clean and performing at spec. Essentials for any fiber environment.",
			TargetCustomer: "Any fiber optic user",
			Items: []model.BundleItem{
				{Name: "LC One-Click Cleaner", Qty: 2, Value: 14},
				{Name: "SC One-Click Cleaner", Qty: 2, Value: 14},
				{Name: "MPO One-Click Cleaner", Qty: 1, Value: 12},
				{Name: "IPA Cleaning Wipes (100-pack)", Qty: 1, Value: 8},
				{Name: "Lint-Free Swabs (200-pack)", Qty: 1, Value: 6},
				{Name: "Dust Caps Assortment (50-pack)", Qty: 1, Value: 5},
			},
			BundlePrice: 49.99,
			Savings:     9,
		},
		{
			ID:             "enterprise-network",
			Name:           "Enterprise Network Kit",
			Description:    "Everything to deploy a new floor or building fiber backbone. Panels, cords, and management.",
			TargetCustomer: "IT managers, enterprise network teams",
			Items: []model.BundleItem{
				{Name: "1U 48-Port LC Patch Panel", Qty: 2, Value: 160},
				{Name: "LC-LC OS2 Duplex 3m (24-pack)", Qty: 1, Value: 108},
				{Name: "LC-LC OM4 Duplex 3m (12-pack)", Qty: 1, Value: 60},
				{Name: "1G SFP LX Transceiver (8-pack)", Qty: 1, Value: 80},
				{Name: "Horizontal Cable Manager 1U", Qty: 2, Value: 30},
				{Name: "Professional Cleaning Kit", Qty: 1, Value: 35},
			},
			BundlePrice: 399.99,
			Savings:     73,
		},
	}
}
