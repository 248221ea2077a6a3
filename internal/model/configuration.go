package model

import "time"

// Application is the coarse deployment context chosen on the first
// configurator step.
type Application string

const (
	AppDataCenter Application = "data-center"
	AppFTTH       Application = "ftth"
	App5G         Application = "5g"
	AppEnterprise Application = "enterprise"
	AppIndustrial Application = "industrial"
	AppCustom     Application = "custom"
)

// Polish is a connector end-face polish.
type Polish string

const (
	PolishAPC Polish = "APC"
	PolishUPC Polish = "UPC"
	PolishPC  Polish = "PC"
)

// Profile is a cable use case that carries a partial default configuration.
type Profile string

const (
	ProfilePatchCord   Profile = "patch-cord"
	ProfileDropCable   Profile = "drop-cable"
	ProfileTrunk       Profile = "trunk"
	ProfileBreakout    Profile = "breakout"
	ProfileClosureTail Profile = "closure-tail"
)

// CableConfiguration is the state collected by the configurator. Empty
// strings and a nil CableDiameter mean "not chosen yet".
type CableConfiguration struct {
	Application   Application `json:"application,omitempty"`
	FiberType     string      `json:"fiber_type,omitempty"`
	Construction  string      `json:"construction,omitempty"`
	ConnectorA    string      `json:"connector_a,omitempty"`
	ConnectorB    string      `json:"connector_b,omitempty"`
	Length        float64     `json:"length"` // meters
	JacketType    string      `json:"jacket_type,omitempty"`
	JacketColor   string      `json:"jacket_color"`
	FiberCount    int         `json:"fiber_count"`
	CableDiameter *float64    `json:"cable_diameter,omitempty"` // mm
	PolishA       Polish      `json:"polish_a,omitempty"`
	PolishB       Polish      `json:"polish_b,omitempty"`
}

// SavedConfiguration is a named configuration persisted for later quoting.
type SavedConfiguration struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Profile   Profile            `json:"profile,omitempty"`
	Config    CableConfiguration `json:"config"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}
