package configurator

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/nexlume/fibercat/internal/model"
)

// Defaults is a partial configuration. Nil fields are left untouched when
// the defaults are applied.
type Defaults struct {
	Construction  *string  `yaml:"construction,omitempty" json:"construction,omitempty"`
	FiberType     *string  `yaml:"fiber_type,omitempty" json:"fiber_type,omitempty"`
	ConnectorA    *string  `yaml:"connector_a,omitempty" json:"connector_a,omitempty"`
	ConnectorB    *string  `yaml:"connector_b,omitempty" json:"connector_b,omitempty"`
	FiberCount    *int     `yaml:"fiber_count,omitempty" json:"fiber_count,omitempty"`
	JacketType    *string  `yaml:"jacket_type,omitempty" json:"jacket_type,omitempty"`
	CableDiameter *float64 `yaml:"cable_diameter,omitempty" json:"cable_diameter,omitempty"`
}

// Apply copies every field d defines onto cfg. Connector defaults also set
// the matching polish.
func (d Defaults) Apply(cfg model.CableConfiguration) model.CableConfiguration {
	if d.Construction != nil {
		cfg.Construction = *d.Construction
	}
	if d.FiberType != nil {
		cfg.FiberType = *d.FiberType
	}
	if d.ConnectorA != nil {
		cfg.ConnectorA = *d.ConnectorA
		cfg.PolishA = polishOf(cfg.ConnectorA)
	}
	if d.ConnectorB != nil {
		cfg.ConnectorB = *d.ConnectorB
		cfg.PolishB = polishOf(cfg.ConnectorB)
	}
	if d.FiberCount != nil {
		cfg.FiberCount = *d.FiberCount
	}
	if d.JacketType != nil {
		cfg.JacketType = *d.JacketType
	}
	if d.CableDiameter != nil {
		v := *d.CableDiameter
		cfg.CableDiameter = &v
	}
	return cfg
}

func str(s string) *string { return &s }
func num(n int) *int { return &n }
func mm(v float64) *float64 { return &v }

// DefaultProfiles returns the built-in profile defaults. Each call returns a
// fresh map.
func DefaultProfiles() map[model.Profile]Defaults {
	return map[model.Profile]Defaults{
		model.ProfilePatchCord: {
			Construction:  str("duplex"),
			FiberCount:    num(2),
			JacketType:    str("OFNP"),
			CableDiameter: mm(2.0),
		},
		model.ProfileDropCable: {
			Construction:  str("flat-drop"),
			FiberType:     str("G.657A2"),
			FiberCount:    num(1),
			JacketType:    str("LSZH"),
			CableDiameter: mm(3.0),
		},
		model.ProfileTrunk: {
			Construction:  str("loose-tube"),
			ConnectorA:    str("MTP/APC"),
			ConnectorB:    str("MTP/APC"),
			FiberCount:    num(12),
			JacketType:    str("OFNP"),
			CableDiameter: mm(4.8),
		},
		model.ProfileBreakout: {
			Construction:  str("breakout"),
			ConnectorA:    str("MPO/APC"),
			ConnectorB:    str("LC/UPC"),
			FiberCount:    num(12),
			JacketType:    str("OFNP"),
			CableDiameter: mm(6.2),
		},
		model.ProfileClosureTail: {
			Construction:  str("tight-buffer"),
			FiberCount:    num(1),
			JacketType:    str("PVC"),
			CableDiameter: mm(0.9),
		},
	}
}

// applicationProfiles maps an application to the profile that pre-fills the
// configurator once it is chosen. Custom builds start blank.
var applicationProfiles = map[model.Application]model.Profile{
	model.AppDataCenter: model.ProfilePatchCord,
	model.AppFTTH:       model.ProfileDropCable,
	model.App5G:         model.ProfileBreakout,
	model.AppEnterprise: model.ProfileTrunk,
	model.AppIndustrial: model.ProfileClosureTail,
}

// ProfileForApplication returns the profile used for app, if any.
func ProfileForApplication(app model.Application) (model.Profile, bool) {
	p, ok := applicationProfiles[app]
	return p, ok
}

// profileFile is the on-disk layout read by LoadProfiles.
type profileFile struct {
	Profiles map[model.Profile]Defaults `yaml:"profiles"`
}

// LoadProfiles reads profile overrides from a YAML file and layers them over
// the built-in defaults. A profile listed in the file replaces the built-in
// entry of the same name; new names are added.
func LoadProfiles(path string) (map[model.Profile]Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "configurator: read profiles %s", path)
	}

	var pf profileFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, eris.Wrap(err, "configurator: parse profiles")
	}

	profiles := DefaultProfiles()
	for name, d := range pf.Profiles {
		if name == "" {
			return nil, eris.New("configurator: profile with empty name")
		}
		profiles[name] = d
	}
	return profiles, nil
}

func polishOf(connectorID string) model.Polish {
	if c, ok := LookupConnector(connectorID); ok {
		return c.Polish
	}
	return ""
}
