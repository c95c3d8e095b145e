package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"shipline_builder/internal/formula"
	"shipline_builder/internal/game"
	"shipline_builder/internal/models"
)

type Server struct {
	engine *game.Engine
	hub    *Hub
	log    zerolog.Logger
}

// New constructs the HTTP router wired to the game engine and the
// websocket hub.
func New(engine *game.Engine, hub *Hub, log zerolog.Logger) http.Handler {
	s := &Server{engine: engine, hub: hub, log: log}
	r := chi.NewRouter()
	r.Use(corsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/catalog/classes", s.handleClasses)
	r.Get("/catalog/engines", s.handleEngines)
	r.Get("/catalog/perks", s.handlePerks)
	r.Post("/vessels/quote", s.handleVesselQuote)
	r.Post("/vessels/build", s.handleBuild)
	r.Post("/routes/quote", s.handleRouteQuote)
	r.Post("/routes", s.handleCreateRoute)
	r.Post("/shares/issue", s.handleIssueShares)
	r.Get("/state", s.handleState)
	r.Post("/tick", s.handleTick)
	r.Post("/sim/start", s.handleSimStart)
	r.Post("/sim/pause", s.handleSimPause)
	r.Post("/sim/speed", s.handleSimSpeed)
	r.Get("/ws", s.handleWS)

	return r
}

func (s *Server) handleClasses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, formula.Classes())
}

func (s *Server) handleEngines(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, formula.Engines())
}

func (s *Server) handlePerks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, formula.Perks())
}

// handleVesselQuote is the wizard's recompute-on-input endpoint: partial
// requests get partial (staged) prices and stats.
func (s *Server) handleVesselQuote(w http.ResponseWriter, r *http.Request) {
	var req models.VesselBuildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "bad request")
		return
	}
	quote, err := formula.QuoteBuild(req)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, quote)
}

func (s *Server) handleBuild(w http.ResponseWriter, r *http.Request) {
	var req models.VesselBuildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "bad request")
		return
	}
	vessel, err := s.engine.BuildVessel(req)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, vessel)
}

type routeQuoteRequest struct {
	// either a vessel reference...
	VesselID string `json:"vessel_id,omitempty"`
	// ...or explicit vessel figures
	Capacity   float64            `json:"capacity,omitempty"`
	Class      models.VesselClass `json:"class,omitempty"`
	FuelFactor float64            `json:"fuel_factor,omitempty"`

	DistanceNm float64 `json:"distance_nm"`
	SpeedKn    float64 `json:"speed_kn"`
	Guards     int     `json:"guards"`
}

func (s *Server) handleRouteQuote(w http.ResponseWriter, r *http.Request) {
	var req routeQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "bad request")
		return
	}

	params := models.RouteParameters{
		DistanceNm: req.DistanceNm,
		SpeedKn:    req.SpeedKn,
		Capacity:   req.Capacity,
		Class:      req.Class,
		FuelFactor: req.FuelFactor,
		Guards:     req.Guards,
	}
	if req.VesselID != "" {
		vessel, ok := s.findVessel(req.VesselID)
		if !ok {
			writeJSONError(w, http.StatusBadRequest, "vessel not found")
			return
		}
		params.Capacity = vessel.Capacity
		params.Class = vessel.Class
		params.FuelFactor = vessel.Stats.FuelFactor
		if params.SpeedKn <= 0 {
			params.SpeedKn = vessel.Stats.SpeedKn
		}
	}
	if _, err := formula.ClassRange(params.Class); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, formula.QuoteRoute(params))
}

func (s *Server) handleCreateRoute(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name       string  `json:"name"`
		VesselID   string  `json:"vessel_id"`
		DistanceNm float64 `json:"distance_nm"`
		SpeedKn    float64 `json:"speed_kn"`
		Guards     int     `json:"guards"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.VesselID == "" {
		writeJSONError(w, http.StatusBadRequest, "bad request")
		return
	}
	route, err := s.engine.CreateRoute(req.Name, req.VesselID, req.DistanceNm, req.SpeedKn, req.Guards)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, route)
}

func (s *Server) handleIssueShares(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Shares int `json:"shares"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Shares <= 0 {
		writeJSONError(w, http.StatusBadRequest, "bad request")
		return
	}
	res, err := s.engine.IssueShares(req.Shares)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, res)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.engine.State())
}

func (s *Server) handleTick(w http.ResponseWriter, r *http.Request) {
	s.engine.AdvanceTick()
	writeJSON(w, s.engine.State())
}

func (s *Server) handleSimStart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Speed int `json:"speed"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)
	s.engine.StartSim(req.Speed)
	writeJSON(w, s.engine.State())
}

func (s *Server) handleSimPause(w http.ResponseWriter, r *http.Request) {
	s.engine.PauseSim()
	writeJSON(w, s.engine.State())
}

func (s *Server) handleSimSpeed(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Speed int `json:"speed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Speed <= 0 {
		writeJSONError(w, http.StatusBadRequest, "bad request")
		return
	}
	s.engine.SetSpeed(req.Speed)
	writeJSON(w, s.engine.State())
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	serveWs(s.hub, w, r)
}

// ===== helpers =====

func (s *Server) findVessel(id string) (models.OwnedVessel, bool) {
	for _, v := range s.engine.State().Fleet {
		if strings.EqualFold(v.ID, id) {
			return v, true
		}
	}
	return models.OwnedVessel{}, false
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	if msg == "" {
		msg = http.StatusText(status)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS, PUT, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
