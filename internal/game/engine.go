package game

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"shipline_builder/internal/config"
	"shipline_builder/internal/formula"
	"shipline_builder/internal/models"
)

const defaultSavePath = "data/savegame.json"

// Engine owns simulation state and logic. All formula math is delegated to
// the formula package; the engine only turns those numbers into cash flow,
// timers and fleet state.
type Engine struct {
	mu       sync.Mutex
	state    models.GameState
	balance  config.Balance
	log      zerolog.Logger
	ctx      context.Context
	cancel   context.CancelFunc
	ticker   *time.Ticker
	savePath string
	onTick   func(models.GameState)
}

func NewEngine(balance config.Balance, log zerolog.Logger) *Engine {
	return &Engine{
		balance:  balance,
		log:      log,
		savePath: defaultSavePath,
	}
}

// SetSavePath configures where the save file is written.
func (e *Engine) SetSavePath(path string) {
	e.savePath = path
}

// SetOnTick registers a callback invoked with a state snapshot after every
// simulation tick (used for the websocket push).
func (e *Engine) SetOnTick(fn func(models.GameState)) {
	e.onTick = fn
}

// SetState replaces the current game state.
func (e *Engine) SetState(st models.GameState) {
	e.mu.Lock()
	e.state = st
	e.mu.Unlock()
}

func (e *Engine) State() models.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// SeedFleet creates the starter vessel for a fresh game.
func (e *Engine) SeedFleet() {
	starter := models.VesselBuildRequest{
		Name:     "First Light",
		Class:    models.ClassContainer,
		Capacity: 2000,
		EngineID: "mk1_diesel",
		EngineKW: 9000,
		Perks:    &models.PerkSelection{},
	}
	quote, err := formula.QuoteBuild(starter)
	if err != nil {
		e.log.Error().Err(err).Msg("seed fleet quote failed")
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Fleet = []models.OwnedVessel{{
		ID:       "vessel-1",
		Name:     starter.Name,
		Class:    starter.Class,
		Capacity: starter.Capacity,
		EngineID: starter.EngineID,
		EngineKW: starter.EngineKW,
		Stats:    quote.Stats,
		Price:    quote.TotalPrice,
		State:    models.VesselDocked,
	}}
}

// SaveState persists the current state to disk.
func (e *Engine) SaveState(path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.saveStateLocked(path)
}

func (e *Engine) saveStateLocked(path string) error {
	if path == "" {
		path = e.savePath
	}
	data, err := json.MarshalIndent(&e.state, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// LoadState loads state from disk if present.
func (e *Engine) LoadState(path string) error {
	if path == "" {
		path = e.savePath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var st models.GameState
	if err := json.Unmarshal(data, &st); err != nil {
		return err
	}
	for i := range st.Fleet {
		if st.Fleet[i].State == "" {
			st.Fleet[i].State = models.VesselDocked
		}
	}
	if st.RecentEvents == nil {
		st.RecentEvents = []string{}
	}
	e.mu.Lock()
	e.state = st
	e.mu.Unlock()
	return nil
}

// BuildVessel finalizes a build request: prices it, debits cash and puts
// the vessel into the shipyard queue.
func (e *Engine) BuildVessel(req models.VesselBuildRequest) (models.OwnedVessel, error) {
	if req.EngineID == "" {
		return models.OwnedVessel{}, fmt.Errorf("engine not selected")
	}
	if req.Perks == nil {
		req.Perks = &models.PerkSelection{}
	}
	quote, err := formula.QuoteBuild(req)
	if err != nil {
		return models.OwnedVessel{}, err
	}
	eng, err := formula.EngineByID(req.EngineID)
	if err != nil {
		return models.OwnedVessel{}, err
	}
	kw := formula.ClampEngineKW(eng, req.EngineKW)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "Unnamed Vessel"
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.Cash < quote.TotalPrice {
		return models.OwnedVessel{}, fmt.Errorf("insufficient cash")
	}
	e.state.Cash -= quote.TotalPrice

	vessel := models.OwnedVessel{
		ID:          "vessel-" + strconv.FormatInt(time.Now().UnixNano(), 10),
		Name:        name,
		Class:       req.Class,
		Capacity:    req.Capacity,
		EngineID:    req.EngineID,
		EngineKW:    kw,
		Perks:       *req.Perks,
		Stats:       quote.Stats,
		Price:       quote.TotalPrice,
		State:       models.VesselBuilding,
		AvailableIn: e.ticksFor(quote.Stats.BuildTimeSec),
	}
	e.state.Fleet = append(e.state.Fleet, vessel)
	e.addEventLocked(fmt.Sprintf("%s laid down (%.0f %s)", vessel.Name, vessel.Capacity, quote.Unit))
	return vessel, nil
}

// CreateRoute opens a route for an owned vessel, charging the creation fee
// and snapshotting the route economics for the tick loop.
func (e *Engine) CreateRoute(name, vesselID string, distanceNm, speedKn float64, guards int) (models.Route, error) {
	if distanceNm <= 0 {
		return models.Route{}, fmt.Errorf("invalid route distance")
	}
	if guards < 0 {
		guards = 0
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	vessel := e.findVesselLocked(vesselID)
	if vessel == nil {
		return models.Route{}, fmt.Errorf("vessel not found")
	}
	if vessel.State == models.VesselBuilding {
		return models.Route{}, fmt.Errorf("vessel still under construction")
	}
	if vessel.RouteID != "" {
		return models.Route{}, fmt.Errorf("vessel already assigned to a route")
	}
	if distanceNm > vessel.Stats.RangeNm {
		return models.Route{}, fmt.Errorf("route distance exceeds vessel range of %.0f nm", vessel.Stats.RangeNm)
	}

	if speedKn <= 0 || speedKn > vessel.Stats.SpeedKn {
		speedKn = vessel.Stats.SpeedKn
	}

	quote := formula.QuoteRoute(models.RouteParameters{
		DistanceNm: distanceNm,
		SpeedKn:    speedKn,
		Capacity:   vessel.Capacity,
		Class:      vessel.Class,
		FuelFactor: vessel.Stats.FuelFactor,
		Guards:     guards,
	})
	if e.state.Cash < quote.CreationFee {
		return models.Route{}, fmt.Errorf("insufficient cash")
	}

	eff := formula.EffectiveCapacity(vessel.Class, vessel.Capacity)
	revenue := eff * e.balance.CargoRatePerUnit * distanceNm / 1000
	harbor := (quote.HarborFee.Min + quote.HarborFee.Max) / 2 * eff
	cost := quote.FuelTonnes*e.balance.FuelPricePerTonne + harbor + quote.GuardsCost

	if name == "" {
		name = fmt.Sprintf("Route %d", len(e.state.Routes)+1)
	}
	route := models.Route{
		ID:             "route-" + strconv.FormatInt(time.Now().UnixNano(), 10),
		Name:           name,
		VesselID:       vessel.ID,
		DistanceNm:     distanceNm,
		SpeedKn:        speedKn,
		Guards:         guards,
		CreationFee:    quote.CreationFee,
		TravelTimeSec:  quote.TravelTimeSec,
		FuelTonnes:     quote.FuelTonnes,
		HarborFee:      quote.HarborFee,
		GuardsCost:     quote.GuardsCost,
		RevenuePerTrip: revenue,
		CostPerTrip:    cost,
		ProfitPerTrip:  revenue - cost,
	}

	e.state.Cash -= quote.CreationFee
	e.state.Routes = append(e.state.Routes, route)
	vessel.RouteID = route.ID
	vessel.State = models.VesselAtSea
	vessel.TimerTicks = e.tripTicks(route)
	e.addEventLocked(fmt.Sprintf("%s opened (%.0f nm)", route.Name, route.DistanceNm))
	return route, nil
}

// ShareIssue is the outcome of one share issuance.
type ShareIssue struct {
	Shares       int     `json:"shares"`
	Proceeds     float64 `json:"proceeds"`
	TotalIssued  int     `json:"total_issued"`
	CurrentPrice float64 `json:"current_price"`
}

// IssueShares sells count new shares, pricing each tranche-sized block at
// its own doubled price, and credits the proceeds.
func (e *Engine) IssueShares(count int) (ShareIssue, error) {
	if count <= 0 {
		return ShareIssue{}, fmt.Errorf("share count must be positive")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	issued := e.state.SharesIssued
	remaining := count
	proceeds := 0.0
	for remaining > 0 {
		tier := formula.ShareTranche(issued)
		price := formula.SharePrice(e.balance.ShareBasePrice, issued)
		boundary := formula.FirstTrancheShares + (tier+1)*formula.TrancheShares
		chunk := boundary - issued
		if chunk > remaining {
			chunk = remaining
		}
		proceeds += float64(chunk) * price
		issued += chunk
		remaining -= chunk
	}

	e.state.SharesIssued = issued
	e.state.Cash += proceeds
	e.addEventLocked(fmt.Sprintf("Issued %d shares for %.0f", count, proceeds))
	return ShareIssue{
		Shares:       count,
		Proceeds:     proceeds,
		TotalIssued:  issued,
		CurrentPrice: formula.SharePrice(e.balance.ShareBasePrice, issued),
	}, nil
}

// SetSpeed updates the simulation speed without starting it.
func (e *Engine) SetSpeed(speed int) {
	if speed < 1 {
		speed = 1
	}
	if speed > 4 {
		speed = 4
	}
	e.mu.Lock()
	e.state.Speed = speed
	running := e.state.IsRunning
	e.mu.Unlock()
	if running {
		e.startSim(speed)
	}
}

// StartSim starts the ticker loop.
func (e *Engine) StartSim(speed int) {
	if speed <= 0 {
		speed = e.State().Speed
		if speed <= 0 {
			speed = 1
		}
	}
	e.startSim(speed)
}

func (e *Engine) startSim(speed int) {
	if speed < 1 {
		speed = 1
	}
	if speed > 4 {
		speed = 4
	}
	interval := intervalForSpeed(speed)

	e.mu.Lock()
	e.state.Speed = speed
	e.state.IsRunning = true
	e.mu.Unlock()

	if e.ticker == nil {
		e.ticker = time.NewTicker(interval)
	} else {
		e.ticker.Reset(interval)
	}
	if e.cancel != nil {
		e.cancel()
	}
	e.ctx, e.cancel = context.WithCancel(context.Background())

	go func(ctx context.Context) {
		for {
			select {
			case <-ctx.Done():
				return
			case <-e.ticker.C:
				e.AdvanceTick()
			}
		}
	}(e.ctx)
}

// PauseSim stops the ticker loop.
func (e *Engine) PauseSim() {
	e.mu.Lock()
	e.state.IsRunning = false
	e.mu.Unlock()
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	if e.ticker != nil {
		e.ticker.Stop()
		e.ticker = nil
	}
}

// AdvanceTick runs one simulation tick: shipyard timers, voyages, cash.
func (e *Engine) AdvanceTick() {
	e.mu.Lock()

	cashDelta := 0.0
	for i := range e.state.Fleet {
		v := &e.state.Fleet[i]
		switch v.State {
		case models.VesselBuilding:
			if v.AvailableIn > 0 {
				v.AvailableIn--
			}
			if v.AvailableIn <= 0 {
				v.State = models.VesselDocked
				e.addEventLocked(fmt.Sprintf("%s delivered", v.Name))
			}
		case models.VesselAtSea:
			if v.TimerTicks > 0 {
				v.TimerTicks--
			}
			if v.TimerTicks > 0 {
				continue
			}
			rt := e.findRouteLocked(v.RouteID)
			if rt == nil {
				v.State = models.VesselDocked
				v.RouteID = ""
				continue
			}
			cashDelta += rt.ProfitPerTrip
			rt.LastTripProfit = rt.ProfitPerTrip
			v.TripsDone++
			v.TimerTicks = e.tripTicks(*rt)
		}
	}

	e.state.Cash += cashDelta
	e.state.LastCashDelta = cashDelta
	e.state.Tick++
	_ = e.saveStateLocked(e.savePath)
	snapshot := e.state
	e.mu.Unlock()

	if e.onTick != nil {
		e.onTick(snapshot)
	}
}

// ======================
// helper functions below

func (e *Engine) findVesselLocked(id string) *models.OwnedVessel {
	for i := range e.state.Fleet {
		if strings.EqualFold(e.state.Fleet[i].ID, id) {
			return &e.state.Fleet[i]
		}
	}
	return nil
}

func (e *Engine) findRouteLocked(id string) *models.Route {
	for i := range e.state.Routes {
		if e.state.Routes[i].ID == id {
			return &e.state.Routes[i]
		}
	}
	return nil
}

func (e *Engine) addEventLocked(msg string) {
	if msg == "" {
		return
	}
	e.state.RecentEvents = append(e.state.RecentEvents, msg)
	const maxEvents = 20
	if len(e.state.RecentEvents) > maxEvents {
		e.state.RecentEvents = e.state.RecentEvents[len(e.state.RecentEvents)-maxEvents:]
	}
	e.log.Debug().Str("event", msg).Msg("game event")
}

// ticksFor converts wall-clock seconds from the formula engine into whole
// simulation ticks, at least one.
func (e *Engine) ticksFor(seconds float64) int {
	ticks := int(math.Ceil(seconds / e.balance.SecondsPerTick))
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// tripTicks is the round-trip duration of a route in ticks.
func (e *Engine) tripTicks(rt models.Route) int {
	return e.ticksFor(2 * rt.TravelTimeSec)
}

func intervalForSpeed(speed int) time.Duration {
	switch speed {
	case 1:
		return 2 * time.Second
	case 2:
		return 1 * time.Second
	case 3:
		return 500 * time.Millisecond
	case 4:
		return 250 * time.Millisecond
	default:
		return 2 * time.Second
	}
}
