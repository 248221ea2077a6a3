// Package configurator holds the cable configurator's option tables, the
// per-profile defaults and the rules that filter and validate a build.
package configurator

import (
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/nexlume/fibercat/internal/model"
)

// Unset is shown for any selection that has not been made.
const Unset = "—"

// Side identifies one end of the cable.
type Side string

const (
	SideA Side = "a"
	SideB Side = "b"
)

// DefaultConfiguration returns the starting state of a new build.
func DefaultConfiguration() model.CableConfiguration {
	return model.CableConfiguration{
		Length:      1,
		JacketColor: "yellow",
		FiberCount:  1,
	}
}

// Configurator applies profile defaults and derives context-filtered
// options. The zero value is not usable; call New.
type Configurator struct {
	profiles map[model.Profile]Defaults
}

// New creates a Configurator. A nil profiles map selects the built-in
// defaults.
func New(profiles map[model.Profile]Defaults) *Configurator {
	if profiles == nil {
		profiles = DefaultProfiles()
	}
	return &Configurator{profiles: profiles}
}

// Profiles returns the profile names in sorted order with their defaults.
func (c *Configurator) Profiles() ([]model.Profile, map[model.Profile]Defaults) {
	names := make([]model.Profile, 0, len(c.profiles))
	for name := range c.profiles {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names, c.profiles
}

// Defaults returns the defaults registered for profile.
func (c *Configurator) Defaults(profile model.Profile) (Defaults, bool) {
	d, ok := c.profiles[profile]
	return d, ok
}

// ApplyProfile merges the defaults of profile over cfg.
func (c *Configurator) ApplyProfile(cfg model.CableConfiguration, profile model.Profile) (model.CableConfiguration, error) {
	d, ok := c.profiles[profile]
	if !ok {
		return cfg, eris.Errorf("configurator: unknown profile %q", profile)
	}
	return d.Apply(cfg), nil
}

// SelectApplication sets the application and applies the profile it maps
// to. The returned profile is empty when the application has none.
func (c *Configurator) SelectApplication(cfg model.CableConfiguration, app model.Application) (model.CableConfiguration, model.Profile, error) {
	if !knownApplication(app) {
		return cfg, "", eris.Errorf("configurator: unknown application %q", app)
	}
	cfg.Application = app

	profile, ok := ProfileForApplication(app)
	if !ok {
		return cfg, "", nil
	}
	if _, registered := c.profiles[profile]; !registered {
		return cfg, "", nil
	}
	cfg, err := c.ApplyProfile(cfg, profile)
	if err != nil {
		return cfg, "", err
	}
	return cfg, profile, nil
}

// OptionSet is the option list offered for the current state of a build.
type OptionSet struct {
	Steps          []Step              `json:"steps"`
	Applications   []ApplicationOption `json:"applications"`
	FiberTypes     []FiberType         `json:"fiber_types"`
	Constructions  []Construction      `json:"constructions"`
	ConnectorsA    []Connector         `json:"connectors_a"`
	ConnectorsB    []Connector         `json:"connectors_b"`
	Pairs          []Pair              `json:"pairs"`
	Jackets        []Jacket            `json:"jackets"`
	FiberCounts    []int               `json:"fiber_counts"`
	CableDiameters []float64           `json:"cable_diameters"`
	Performance    PerformanceSpecs    `json:"performance"`
}

// Options returns the option tables narrowed to what fits cfg.
//
// Fiber types are limited to the category of the fiber the application's
// profile pins. Once connector A is chosen, connector B is limited to the
// same polish plus any common partner of A. Fixed-count constructions are
// dropped when cfg needs more fibers than they carry.
func (c *Configurator) Options(cfg model.CableConfiguration) OptionSet {
	set := OptionSet{
		Steps:          Steps,
		Applications:   Applications,
		FiberTypes:     FiberTypes,
		ConnectorsA:    Connectors,
		ConnectorsB:    Connectors,
		Pairs:          CommonPairs,
		Jackets:        JacketTypes,
		FiberCounts:    FiberCounts,
		CableDiameters: CableDiameters,
		Performance:    Performance,
	}

	if profile, ok := ProfileForApplication(cfg.Application); ok {
		if d, ok := c.profiles[profile]; ok && d.FiberType != nil {
			if ft, ok := LookupFiberType(*d.FiberType); ok {
				set.FiberTypes = FiberTypesByCategory(ft.Category)
			}
		}
	}

	set.Constructions = make([]Construction, 0, len(ConstructionTypes))
	for _, ct := range ConstructionTypes {
		if ct.FiberCount != 0 && ct.FiberCount < cfg.FiberCount {
			continue
		}
		set.Constructions = append(set.Constructions, ct)
	}

	if a, ok := LookupConnector(cfg.ConnectorA); ok {
		set.Pairs = PairsFor(a.ID)
		partners := make(map[string]bool)
		for _, p := range set.Pairs {
			partners[p.A], partners[p.B] = true, true
		}
		set.ConnectorsB = make([]Connector, 0, len(Connectors))
		for _, b := range Connectors {
			if b.Polish == a.Polish || partners[b.ID] {
				set.ConnectorsB = append(set.ConnectorsB, b)
			}
		}
	}

	return set
}

// FiberTypesByCategory returns the fiber types of one category.
func FiberTypesByCategory(category FiberCategory) []FiberType {
	out := make([]FiberType, 0, len(FiberTypes))
	for _, f := range FiberTypes {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out
}

// ConnectorsByPolish returns the connectors with the given polish.
func ConnectorsByPolish(polish model.Polish) []Connector {
	out := make([]Connector, 0, len(Connectors))
	for _, c := range Connectors {
		if c.Polish == polish {
			out = append(out, c)
		}
	}
	return out
}

// ConnectorsByFamily returns the connectors of one family, e.g. "LC".
func ConnectorsByFamily(family string) []Connector {
	out := make([]Connector, 0, len(Connectors))
	for _, c := range Connectors {
		if strings.EqualFold(c.Family, family) {
			out = append(out, c)
		}
	}
	return out
}

// PairsFor returns the common pairs that use connectorID on either end.
func PairsFor(connectorID string) []Pair {
	out := make([]Pair, 0)
	for _, p := range CommonPairs {
		if p.A == connectorID || p.B == connectorID {
			out = append(out, p)
		}
	}
	return out
}

// SelectConnector sets one end of the cable and its polish.
func SelectConnector(cfg model.CableConfiguration, side Side, id string) (model.CableConfiguration, error) {
	conn, ok := LookupConnector(id)
	if !ok {
		return cfg, eris.Errorf("configurator: unknown connector %q", id)
	}
	switch side {
	case SideA:
		cfg.ConnectorA, cfg.PolishA = conn.ID, conn.Polish
	case SideB:
		cfg.ConnectorB, cfg.PolishB = conn.ID, conn.Polish
	default:
		return cfg, eris.Errorf("configurator: unknown side %q", side)
	}
	return cfg, nil
}

// Problems lists every reason cfg cannot proceed to review. It is empty for
// a complete build.
func Problems(cfg model.CableConfiguration) []string {
	var problems []string

	if cfg.Application == "" {
		problems = append(problems, "application is required")
	} else if !knownApplication(cfg.Application) {
		problems = append(problems, fmt.Sprintf("unknown application %q", cfg.Application))
	}

	if cfg.FiberType == "" {
		problems = append(problems, "fiber type is required")
	} else if _, ok := LookupFiberType(cfg.FiberType); !ok {
		problems = append(problems, fmt.Sprintf("unknown fiber type %q", cfg.FiberType))
	}

	if cfg.Construction != "" {
		if ct, ok := LookupConstruction(cfg.Construction); !ok {
			problems = append(problems, fmt.Sprintf("unknown construction %q", cfg.Construction))
		} else if ct.FiberCount != 0 && ct.FiberCount < cfg.FiberCount {
			problems = append(problems, fmt.Sprintf("%s construction carries %d fibers, %d requested", ct.Label, ct.FiberCount, cfg.FiberCount))
		}
	}

	for _, end := range []struct {
		label, id string
	}{{"connector A", cfg.ConnectorA}, {"connector B", cfg.ConnectorB}} {
		if end.id == "" {
			problems = append(problems, end.label+" is required")
		} else if _, ok := LookupConnector(end.id); !ok {
			problems = append(problems, fmt.Sprintf("unknown %s %q", end.label, end.id))
		}
	}

	if cfg.JacketType == "" {
		problems = append(problems, "jacket type is required")
	} else if _, ok := LookupJacket(cfg.JacketType); !ok {
		problems = append(problems, fmt.Sprintf("unknown jacket type %q", cfg.JacketType))
	}

	if cfg.Length <= 0 {
		problems = append(problems, "length must be greater than zero")
	}
	if !slices.Contains(FiberCounts, cfg.FiberCount) {
		problems = append(problems, fmt.Sprintf("fiber count %d is not orderable", cfg.FiberCount))
	}
	if cfg.CableDiameter != nil && !slices.Contains(CableDiameters, *cfg.CableDiameter) {
		problems = append(problems, fmt.Sprintf("cable diameter %gmm is not available", *cfg.CableDiameter))
	}

	return problems
}

// Validate returns an error naming every problem with cfg, or nil.
func Validate(cfg model.CableConfiguration) error {
	problems := Problems(cfg)
	if len(problems) == 0 {
		return nil
	}
	return eris.Errorf("configurator: invalid configuration: %s", strings.Join(problems, "; "))
}

// SummaryRow is one line of the build summary.
type SummaryRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Summary returns the price-summary rows shown beside the wizard. Values
// are the raw selections; the length is always printed, even when it is not
// yet valid. Unit price is never computed here.
func Summary(cfg model.CableConfiguration) []SummaryRow {
	return []SummaryRow{
		{Label: "Application", Value: orUnset(string(cfg.Application))},
		{Label: "Fiber Type", Value: orUnset(cfg.FiberType)},
		{Label: "Connector A", Value: orUnset(cfg.ConnectorA)},
		{Label: "Connector B", Value: orUnset(cfg.ConnectorB)},
		{Label: "Length", Value: strconv.FormatFloat(cfg.Length, 'f', -1, 64) + "m"},
		{Label: "Jacket", Value: orUnset(cfg.JacketType)},
		{Label: "Unit Price", Value: "$" + Unset},
	}
}

func orUnset(s string) string {
	if s == "" {
		return Unset
	}
	return s
}
