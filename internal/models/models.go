package models

// VesselClass selects which capacity range, unit and stat table applies.
type VesselClass string

const (
	ClassContainer VesselClass = "container"
	ClassTanker    VesselClass = "tanker"
)

// BaseStats is the stat tuple every vessel calculation produces:
// range, cruising speed, fuel factor, CO2 factor and build time.
type BaseStats struct {
	RangeNm      float64 `json:"range_nm"`
	SpeedKn      float64 `json:"speed_kn"`
	FuelFactor   float64 `json:"fuel_factor"`
	CO2Factor    float64 `json:"co2_factor"`
	BuildTimeSec float64 `json:"build_time_sec"`
}

// CapacityRange documents a class's capacity domain and the stat/price
// bounds at its minimum and maximum capacity. Loaded once, never mutated.
type CapacityRange struct {
	Class       VesselClass `json:"class"`
	Unit        string      `json:"unit"`
	MinCapacity float64     `json:"min_capacity"`
	MaxCapacity float64     `json:"max_capacity"`
	MinStats    BaseStats   `json:"min_stats"`
	MaxStats    BaseStats   `json:"max_stats"`
	MinPrice    float64     `json:"min_price"`
	MaxPrice    float64     `json:"max_price"`
}

// StatPoint is one authored (range, speed) corner sample of an engine's
// (capacity, power) domain.
type StatPoint struct {
	RangeNm float64 `json:"range_nm"`
	SpeedKn float64 `json:"speed_kn"`
}

// EngineCorners holds the four bilinear interpolation anchors. All corner
// samples are authored against the container class's capacity domain,
// regardless of vessel class.
type EngineCorners struct {
	MinCapMinKW StatPoint `json:"min_cap_min_kw"`
	MinCapMaxKW StatPoint `json:"min_cap_max_kw"`
	MaxCapMinKW StatPoint `json:"max_cap_min_kw"`
	MaxCapMaxKW StatPoint `json:"max_cap_max_kw"`
}

type EngineModel struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	MinKW           float64       `json:"min_kw"`
	MaxKW           float64       `json:"max_kw"`
	BasePrice       float64       `json:"base_price"`
	PricePerExtraKW float64       `json:"price_per_extra_kw"`
	Corners         EngineCorners `json:"corners"`
}

// Perk is one optional vessel modification. Deltas are fractional: a
// CO2Delta of -0.10 multiplies the running CO2 factor by 0.90. Fields a
// given perk does not use stay zero (a propeller has no fuel delta, only
// enhanced thrusters carry PricePerUnit).
type Perk struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	PriceFactor     float64 `json:"price_factor"`
	CO2Delta        float64 `json:"co2_delta"`
	FuelDelta       float64 `json:"fuel_delta"`
	SpeedDelta      float64 `json:"speed_delta"`
	BuildTimeAddSec float64 `json:"build_time_add_sec"`
	PricePerUnit    float64 `json:"price_per_unit,omitempty"`
}

// PerkSelection is the player's choice on the build wizard's perk step.
// An empty antifouling ID means none; an empty propeller ID means the
// standard (zero-delta) propeller.
type PerkSelection struct {
	AntifoulingID     string `json:"antifouling_id,omitempty"`
	BulbousBow        bool   `json:"bulbous_bow"`
	PropellerID       string `json:"propeller_id,omitempty"`
	EnhancedThrusters bool   `json:"enhanced_thrusters"`
}

// VesselBuildRequest is assembled step by step by the build wizard.
// EngineID is empty until step 2, Perks is nil until step 3; quoting a
// partial request yields the matching partial price and stats.
type VesselBuildRequest struct {
	Name     string         `json:"name"`
	Class    VesselClass    `json:"class"`
	Capacity float64        `json:"capacity"`
	EngineID string         `json:"engine_id,omitempty"`
	EngineKW float64        `json:"engine_kw,omitempty"`
	Perks    *PerkSelection `json:"perks,omitempty"`
}

// BuildQuote is the staged result for a (possibly partial) build request.
type BuildQuote struct {
	Stats       BaseStats `json:"stats"`
	Unit        string    `json:"unit"`
	BasePrice   float64   `json:"base_price"`
	EnginePrice float64   `json:"engine_price"`
	PerkCost    float64   `json:"perk_cost"`
	TotalPrice  float64   `json:"total_price"`
}

// RouteParameters feeds the route economics formulas: a resolved vessel's
// capacity/class/fuel factor plus a candidate route's geometry.
type RouteParameters struct {
	DistanceNm float64     `json:"distance_nm"`
	SpeedKn    float64     `json:"speed_kn"`
	Capacity   float64     `json:"capacity"`
	Class      VesselClass `json:"class"`
	FuelFactor float64     `json:"fuel_factor"`
	Guards     int         `json:"guards"`
}

// HarborFeeRange is the per-unit harbor fee band for a route.
type HarborFeeRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// RouteQuote bundles the five independent route economics figures.
type RouteQuote struct {
	CreationFee   float64        `json:"creation_fee"`
	TravelTimeSec float64        `json:"travel_time_sec"`
	FuelTonnes    float64        `json:"fuel_tonnes"`
	HarborFee     HarborFeeRange `json:"harbor_fee_per_unit"`
	GuardsCost    float64        `json:"guards_cost"`
}

type VesselState string

const (
	VesselBuilding VesselState = "building"
	VesselDocked   VesselState = "docked"
	VesselAtSea    VesselState = "at_sea"
)

// OwnedVessel is a vessel in the player's fleet (not a catalog entry).
type OwnedVessel struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Class       VesselClass   `json:"class"`
	Capacity    float64       `json:"capacity"`
	EngineID    string        `json:"engine_id"`
	EngineKW    float64       `json:"engine_kw"`
	Perks       PerkSelection `json:"perks"`
	Stats       BaseStats     `json:"stats"`
	Price       float64       `json:"price"`
	State       VesselState   `json:"state"`
	AvailableIn int           `json:"available_in_ticks"`
	RouteID     string        `json:"route_id,omitempty"`
	TimerTicks  int           `json:"timer_ticks"`
	TripsDone   int           `json:"trips_done"`
}

type Route struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	VesselID       string         `json:"vessel_id"`
	DistanceNm     float64        `json:"distance_nm"`
	SpeedKn        float64        `json:"speed_kn"`
	Guards         int            `json:"guards"`
	CreationFee    float64        `json:"creation_fee"`
	TravelTimeSec  float64        `json:"travel_time_sec"`
	FuelTonnes     float64        `json:"fuel_tonnes"`
	HarborFee      HarborFeeRange `json:"harbor_fee_per_unit"`
	GuardsCost     float64        `json:"guards_cost"`
	RevenuePerTrip float64        `json:"revenue_per_trip"`
	CostPerTrip    float64        `json:"cost_per_trip"`
	ProfitPerTrip  float64        `json:"profit_per_trip"`
	LastTripProfit float64        `json:"last_trip_profit"`
}

type GameState struct {
	Cash          float64       `json:"cash"`
	Fleet         []OwnedVessel `json:"fleet"`
	Routes        []Route       `json:"routes"`
	SharesIssued  int           `json:"shares_issued"`
	Tick          int           `json:"tick"`
	IsRunning     bool          `json:"is_running"`
	Speed         int           `json:"speed"`
	LastCashDelta float64       `json:"last_cash_delta"`
	RecentEvents  []string      `json:"recent_events"`
}
