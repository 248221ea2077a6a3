package configurator

import "github.com/nexlume/fibercat/internal/model"

// Step is one page of the configurator wizard.
type Step struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// ApplicationOption describes a selectable application.
type ApplicationOption struct {
	ID          model.Application `json:"id"`
	Label       string            `json:"label"`
	Description string            `json:"description"`
	Icon        string            `json:"icon"`
}

// Connector is a connector type with its family and end-face polish.
type Connector struct {
	ID          string       `json:"id"`
	Label       string       `json:"label"`
	Family      string       `json:"family"`
	Polish      model.Polish `json:"polish"`
	Description string       `json:"description"`
}

// Pair is a commonly ordered connector combination.
type Pair struct {
	A     string `json:"a"`
	B     string `json:"b"`
	Label string `json:"label"`
	Use   string `json:"use"`
}

// FiberCategory separates singlemode from multimode fiber.
type FiberCategory string

const (
	Singlemode FiberCategory = "singlemode"
	Multimode  FiberCategory = "multimode"
)

// FiberType is a fiber grade.
type FiberType struct {
	ID          string        `json:"id"`
	Label       string        `json:"label"`
	CoreClad    string        `json:"core_clad"`
	Color       string        `json:"color"`
	Category    FiberCategory `json:"category"`
	Description string        `json:"description"`
	Specs       []string      `json:"specs"`
}

// Construction is a cable build. FiberCount is zero when the construction
// accepts any count.
type Construction struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	FiberCount  int    `json:"fiber_count,omitempty"`
	Description string `json:"description"`
}

// Jacket is a jacket material or fire rating.
type Jacket struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Fire        string `json:"fire"`
}

// PerformanceSpecs holds the published performance envelope.
type PerformanceSpecs struct {
	Wavelengths      []int    `json:"wavelengths"`
	MaxInsertionLoss float64  `json:"max_insertion_loss_db"`
	Speeds           []string `json:"speeds"`
}

// Steps lists the wizard pages in order.
var Steps = []Step{
	{ID: "application", Label: "Application", Icon: "🎯"},
	{ID: "fiber-type", Label: "Fiber Type", Icon: "💡"},
	{ID: "construction", Label: "Construction", Icon: "🏗️"},
	{ID: "connector-a", Label: "Connector A", Icon: "🔌"},
	{ID: "connector-b", Label: "Connector B", Icon: "🔌"},
	{ID: "specs", Label: "Specs & Length", Icon: "📐"},
	{ID: "review", Label: "Review", Icon: "✅"},
}

// Applications lists the first-step choices.
var Applications = []ApplicationOption{
	{ID: model.AppDataCenter, Label: "Data Center", Description: "Hyperscale, colocation, and enterprise DC interconnects", Icon: "🏢"},
	{ID: model.AppFTTH, Label: "FTTH / Broadband", Description: "Fiber-to-the-home and BEAD program deployments", Icon: "🏠"},
	{ID: model.App5G, Label: "5G / Telecom", Description: "Small cell fronthaul, backhaul, and tower connections", Icon: "📡"},
	{ID: model.AppEnterprise, Label: "Enterprise Campus", Description: "Building backbone and horizontal cabling", Icon: "🏗️"},
	{ID: model.AppIndustrial, Label: "Industrial", Description: "Harsh environment, factory, and outdoor applications", Icon: "⚙️"},
	{ID: model.AppCustom, Label: "Custom / Other", Description: "Specialty applications and unique requirements", Icon: "🔧"},
}

// Connectors lists every terminable connector.
var Connectors = []Connector{
	{ID: "SC/APC", Label: "SC/APC", Family: "SC", Polish: model.PolishAPC, Description: "Standard in FTTH/PON, angled polish for low back-reflection"},
	{ID: "SC/UPC", Label: "SC/UPC", Family: "SC", Polish: model.PolishUPC, Description: "Push-pull snap-in, common in enterprise and patch panels"},
	{ID: "LC/APC", Label: "LC/APC", Family: "LC", Polish: model.PolishAPC, Description: "Small form factor, angled polish, ideal for high-density"},
	{ID: "LC/UPC", Label: "LC/UPC", Family: "LC", Polish: model.PolishUPC, Description: "Most popular data center connector, SFP+ compatible"},
	{ID: "FC/APC", Label: "FC/APC", Family: "FC", Polish: model.PolishAPC, Description: "Threaded coupling, vibration-resistant, test equipment"},
	{ID: "FC/UPC", Label: "FC/UPC", Family: "FC", Polish: model.PolishUPC, Description: "Threaded coupling, legacy telecom and CATV"},
	{ID: "ST", Label: "ST", Family: "ST", Polish: model.PolishUPC, Description: "Bayonet-style, legacy LAN and military applications"},
	{ID: "MPO/APC", Label: "MPO/APC", Family: "MPO", Polish: model.PolishAPC, Description: "Multi-fiber push-on, 12/24 fiber, angled polish"},
	{ID: "MTP/APC", Label: "MTP/APC", Family: "MTP", Polish: model.PolishAPC, Description: "US Conec elite grade, 12/24 fiber trunk & breakout"},
	{ID: "MPO/UPC", Label: "MPO/UPC", Family: "MPO", Polish: model.PolishUPC, Description: "Multi-fiber push-on, standard polish for data center"},
	{ID: "MTP/UPC", Label: "MTP/UPC", Family: "MTP", Polish: model.PolishUPC, Description: "US Conec elite grade, standard polish"},
	{ID: "OptiTap-SCA", Label: "OptiTap (SC/APC)", Family: "OptiTap", Polish: model.PolishAPC, Description: "Hardened drop connector, FDT/OptiTap deployments"},
	{ID: "E2000", Label: "E2000", Family: "E2000", Polish: model.PolishAPC, Description: "Spring-loaded dust cap, high-density European standard"},
	{ID: "MU", Label: "MU", Family: "MU", Polish: model.PolishUPC, Description: "Miniature unit, 1.25mm ferrule, compact patch panels"},
}

// CommonPairs lists the connector presets shown before free selection.
var CommonPairs = []Pair{
	{A: "SC/APC", B: "SC/APC", Label: "SC/APC – SC/APC", Use: "FTTH, PON"},
	{A: "SC/UPC", B: "SC/UPC", Label: "SC/UPC – SC/UPC", Use: "Enterprise, Patch Panels"},
	{A: "LC/UPC", B: "LC/UPC", Label: "LC/UPC – LC/UPC", Use: "Data Center, SFP+"},
	{A: "SC/APC", B: "LC/APC", Label: "SC/APC – LC/APC", Use: "FTTH to Equipment"},
	{A: "SC/UPC", B: "LC/UPC", Label: "SC/UPC – LC/UPC", Use: "Cross-connect"},
	{A: "SC/UPC", B: "LC/APC", Label: "SC/UPC – LC/APC", Use: "Mixed Plant"},
	{A: "LC/UPC", B: "ST", Label: "LC – ST", Use: "Legacy Upgrade"},
	{A: "LC/UPC", B: "FC/UPC", Label: "LC – FC", Use: "Test Equipment"},
	{A: "SC/UPC", B: "ST", Label: "SC – ST", Use: "Legacy Upgrade"},
	{A: "MTP/APC", B: "MTP/APC", Label: "MTP – MTP", Use: "Trunk Cable"},
	{A: "MPO/APC", B: "MTP/APC", Label: "MPO – MTP", Use: "Trunk Cable"},
	{A: "MPO/APC", B: "LC/UPC", Label: "MPO → 4×LC Breakout", Use: "Breakout / Harness"},
}

// FiberTypes lists singlemode then multimode grades.
var FiberTypes = []FiberType{
	{ID: "OS2", Label: "Singlemode OS2", CoreClad: "9/125μm", Color: "#EAB308", Category: Singlemode,
		Description: "Standard singlemode, long-haul to campus. G.652D compatible.",
		Specs:       []string{"1310/1550nm", "Up to 200km", "Low attenuation"}},
	{ID: "SMF-28", Label: "SMF-28 (Corning)", CoreClad: "9/125μm", Color: "#EAB308", Category: Singlemode,
		Description: "Industry-standard singlemode fiber. G.652D.",
		Specs:       []string{"1310/1550nm", "Lowest loss", "Universal compatibility"}},
	{ID: "SMF-28e+", Label: "SMF-28e+ (Corning)", CoreClad: "9/125μm", Color: "#EAB308", Category: Singlemode,
		Description: "Enhanced bend performance singlemode. G.652D + G.657A1.",
		Specs:       []string{"1310/1550nm", "Bend-optimized", "Macro-bend resistant"}},
	{ID: "SMF-28-Ultra", Label: "SMF-28 Ultra (Corning)", CoreClad: "9/125μm", Color: "#EAB308", Category: Singlemode,
		Description: "Lowest-loss singlemode for submarine and ultra-long-haul.",
		Specs:       []string{"1310/1550nm", "Ultra-low loss", "G.652D + G.657A2"}},
	{ID: "G.657A1", Label: "G.657A1 Bend-Insensitive", CoreClad: "9/125μm", Color: "#F59E0B", Category: Singlemode,
		Description: "Bend-insensitive for FTTH and tight indoor routing.",
		Specs:       []string{"10mm bend radius", "FTTH standard", "G.652D compatible"}},
	{ID: "G.657A2", Label: "G.657A2 Enhanced Bend", CoreClad: "9/125μm", Color: "#F59E0B", Category: Singlemode,
		Description: "Tightest bend radius singlemode. MDU and drop cable.",
		Specs:       []string{"7.5mm bend radius", "MDU/drop cable", "Extreme routing"}},
	{ID: "OM1", Label: "Multimode OM1", CoreClad: "62.5/125μm", Color: "#F97316", Category: Multimode,
		Description: "Legacy multimode. 100Mbps to 1Gbps, short runs.",
		Specs:       []string{"850nm", "Up to 275m @1G", "Legacy systems"}},
	{ID: "OM2", Label: "Multimode OM2", CoreClad: "50/125μm", Color: "#F97316", Category: Multimode,
		Description: "Standard 50μm multimode. Up to 550m at 1Gbps.",
		Specs:       []string{"850nm", "Up to 550m @1G", "Building backbone"}},
	{ID: "OM3", Label: "Multimode OM3", CoreClad: "50/125μm", Color: "#06B6D4", Category: Multimode,
		Description: "Laser-optimized 10G multimode. Up to 300m at 10Gbps.",
		Specs:       []string{"850nm", "Up to 300m @10G", "Data center cost-effective"}},
	{ID: "OM4", Label: "Multimode OM4", CoreClad: "50/125μm", Color: "#8B5CF6", Category: Multimode,
		Description: "High-bandwidth 10G/40G/100G multimode. Data center standard.",
		Specs:       []string{"850nm", "Up to 400m @10G", "40G/100G ready"}},
	{ID: "OM5", Label: "Multimode OM5 (WBMMF)", CoreClad: "50/125μm", Color: "#84CC16", Category: Multimode,
		Description: "Wideband multimode for SWDM, 400G, and future speeds.",
		Specs:       []string{"850-953nm", "SWDM optimized", "400G/800G future-ready"}},
}

// ConstructionTypes lists the cable builds.
var ConstructionTypes = []Construction{
	{ID: "simplex", Label: "Simplex", FiberCount: 1, Description: "Single fiber, one direction"},
	{ID: "duplex", Label: "Duplex", FiberCount: 2, Description: "Two fibers, bidirectional"},
	{ID: "zipcord", Label: "Zipcord", FiberCount: 2, Description: "Two bonded fibers, easy separation"},
	{ID: "breakout", Label: "Breakout / Fan-out", Description: "Individual jacketed fibers in outer jacket"},
	{ID: "flat-drop", Label: "Flat Drop", Description: "Flat profile for FTTH drop cables"},
	{ID: "round-drop", Label: "Round Drop", Description: "Round profile drop cable"},
	{ID: "tight-buffer", Label: "Tight-Buffered", Description: "900μm buffer over fiber, indoor use"},
	{ID: "loose-tube", Label: "Loose Tube", Description: "Gel-filled or dry, outdoor plant"},
	{ID: "micro-armored", Label: "Micro-Armored", Description: "Interlocking steel armor, rodent protection"},
	{ID: "armored", Label: "Armored", Description: "Full corrugated steel armor, direct burial"},
	{ID: "adss", Label: "All-Dielectric Self-Supporting (ADSS)", Description: "Aerial span, no metallic elements"},
	{ID: "indoor-outdoor", Label: "Indoor/Outdoor", Description: "Dual-rated for transition without splice"},
	{ID: "toneable", Label: "Toneable", Description: "Metallic element for toning/locating"},
}

// JacketTypes lists jacket ratings from most to least fire resistant.
var JacketTypes = []Jacket{
	{ID: "OFNP", Label: "OFNP / Plenum", Description: "Air handling spaces, lowest smoke/flame", Fire: "highest"},
	{ID: "OFNR", Label: "OFNR / Riser", Description: "Vertical runs between floors", Fire: "high"},
	{ID: "LSZH", Label: "LSZH", Description: "Low smoke zero halogen, transit and confined spaces", Fire: "high"},
	{ID: "PVC", Label: "PVC", Description: "General purpose indoor, cost-effective", Fire: "standard"},
	{ID: "MDPE", Label: "MDPE", Description: "Outdoor, direct burial, duct", Fire: "outdoor"},
}

// FiberCounts lists the orderable fiber counts.
var FiberCounts = []int{1, 2, 4, 6, 8, 12, 20, 24, 72, 96, 144, 216, 288}

// CableDiameters lists common outer diameters in millimeters.
var CableDiameters = []float64{0.9, 1.2, 1.6, 2.0, 2.5, 3.0, 4.8, 5.8, 6.2, 8.4, 9.7, 12.7}

// Performance is the published performance envelope.
var Performance = PerformanceSpecs{
	Wavelengths:      []int{850, 1310, 1550},
	MaxInsertionLoss: 0.35,
	Speeds:           []string{"1G", "10G", "25G", "40G", "100G", "400G", "800G"},
}

// LookupConnector returns the connector with the given ID.
func LookupConnector(id string) (Connector, bool) {
	for _, c := range Connectors {
		if c.ID == id {
			return c, true
		}
	}
	return Connector{}, false
}

// LookupFiberType returns the fiber type with the given ID.
func LookupFiberType(id string) (FiberType, bool) {
	for _, f := range FiberTypes {
		if f.ID == id {
			return f, true
		}
	}
	return FiberType{}, false
}

// LookupConstruction returns the construction with the given ID.
func LookupConstruction(id string) (Construction, bool) {
	for _, c := range ConstructionTypes {
		if c.ID == id {
			return c, true
		}
	}
	return Construction{}, false
}

// LookupJacket returns the jacket with the given ID.
func LookupJacket(id string) (Jacket, bool) {
	for _, j := range JacketTypes {
		if j.ID == id {
			return j, true
		}
	}
	return Jacket{}, false
}

func knownApplication(app model.Application) bool {
	for _, a := range Applications {
		if a.ID == app {
			return true
		}
	}
	return false
}
