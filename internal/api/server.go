// Package api exposes the agency's query and command surface over HTTP.
// GET endpoints are public (read-only observation). POST endpoints require
// a bearer admin key. The server owns the single-writer boundary around
// the Agency: the core needs no locking of its own, so every request
// serializes through one mutex here.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/talgya/ghost-agency/internal/agency"
	"github.com/talgya/ghost-agency/internal/agents"
	"github.com/talgya/ghost-agency/internal/engine"
	"github.com/talgya/ghost-agency/internal/facility"
	"github.com/talgya/ghost-agency/internal/persistence"
)

// Server serves the agency state over HTTP.
type Server struct {
	Agency   *agency.Agency
	Eng      *engine.Engine
	DB       *persistence.DB // optional archive, may be nil
	Hub      *Hub
	Port     int
	AdminKey string // bearer token for POST endpoints; empty = POST disabled

	mu sync.Mutex // single-writer boundary around Agency

	archivedEvents int // Agency.TotalEvents already flushed to the archive
}

// RunDay advances one in-game day inside the single-writer boundary and
// flushes the day to the archive. Wired as the engine's day callback.
func (s *Server) RunDay() agency.DailySummary {
	var summary agency.DailySummary
	s.mutate(func() { summary = s.Agency.DailyTick() })

	slog.Info("daily report",
		"day", summary.Day,
		"funds", humanize.Comma(int64(summary.Funds)),
		"reputation", summary.Reputation,
		"roster", summary.RosterSize,
		"missions", summary.MissionsRun,
	)

	s.archive(summary)
	s.FlushEvents()
	if msg, err := json.Marshal(StreamMessage{Type: "day", Payload: summary}); err == nil && s.Hub != nil {
		s.Hub.Broadcast(msg)
	}
	return summary
}

// FlushEvents archives mission-log entries not yet written. Entries that
// fell off the in-memory ring before a flush are gone; the ring cap is
// sized to make that unlikely between daily flushes.
func (s *Server) FlushEvents() {
	if s.DB == nil {
		return
	}

	s.mu.Lock()
	unseen := s.Agency.TotalEvents - s.archivedEvents
	if unseen > len(s.Agency.Events) {
		unseen = len(s.Agency.Events)
	}
	pending := make([]agency.Event, unseen)
	copy(pending, s.Agency.Events[len(s.Agency.Events)-unseen:])
	s.archivedEvents = s.Agency.TotalEvents
	s.mu.Unlock()

	if err := s.DB.ArchiveEvents(pending); err != nil {
		slog.Warn("event archive failed", "count", len(pending), "error", err)
	}
}

// Start begins serving in a goroutine.
func (s *Server) Start() {
	mux := http.NewServeMux()

	// Public observation endpoints.
	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/agents", s.handleAgents)
	mux.HandleFunc("/api/v1/regions", s.handleRegions)
	mux.HandleFunc("/api/v1/rooms", s.handleRooms)
	mux.HandleFunc("/api/v1/research", s.handleResearch)
	mux.HandleFunc("/api/v1/log", s.handleLog)
	mux.HandleFunc("/api/v1/catalog", s.handleCatalog)

	// Live mission-log stream.
	if s.Hub != nil {
		mux.HandleFunc("/api/v1/stream", s.Hub.serveWs)
	}

	// Command endpoints.
	mux.HandleFunc("/api/v1/hire", s.adminOnly(s.handleHire))
	mux.HandleFunc("/api/v1/resolve", s.adminOnly(s.handleResolve))
	mux.HandleFunc("/api/v1/class", s.adminOnly(s.handleClass))
	mux.HandleFunc("/api/v1/equip", s.adminOnly(s.handleEquip))
	mux.HandleFunc("/api/v1/buy", s.adminOnly(s.handleBuy))
	mux.HandleFunc("/api/v1/research/start", s.adminOnly(s.handleResearchStart))
	mux.HandleFunc("/api/v1/rooms/add", s.adminOnly(s.handleRoomAdd))
	mux.HandleFunc("/api/v1/rooms/upgrade", s.adminOnly(s.handleRoomUpgrade))
	mux.HandleFunc("/api/v1/rooms/fit", s.adminOnly(s.handleRoomFit))
	mux.HandleFunc("/api/v1/tick", s.adminOnly(s.handleTick))
	mux.HandleFunc("/api/v1/speed", s.adminOnly(s.handleSpeed))

	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr, "admin_auth", s.AdminKey != "")

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

func (s *Server) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if s.AdminKey == "" {
			http.Error(w, "admin endpoints disabled (no admin key set)", http.StatusForbidden)
			return
		}
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token != s.AdminKey {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

// mutate runs a command inside the single-writer boundary and pushes any
// mission-log entries it produced to stream observers.
func (s *Server) mutate(fn func()) {
	s.mu.Lock()
	before := len(s.Agency.Events)
	fn()
	appended := s.Agency.Events[min(before, len(s.Agency.Events)):]
	frames := make([][]byte, 0, len(appended))
	for _, e := range appended {
		if msg, err := json.Marshal(StreamMessage{Type: "event", Payload: e}); err == nil {
			frames = append(frames, msg)
		}
	}
	s.mu.Unlock()

	if s.Hub != nil {
		for _, f := range frames {
			s.Hub.Broadcast(f)
		}
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ag := s.Agency
	status := map[string]any{
		"day":         ag.Day,
		"funds":       ag.Funds,
		"funds_text":  "$" + humanize.Comma(int64(ag.Funds)),
		"reputation":  ag.Reputation,
		"roster":      len(ag.Roster),
		"available":   len(ag.AvailableAgents()),
		"fallen":      len(ag.Fallen),
		"rooms":       len(ag.Rooms),
		"regions":     len(ag.Map.Regions),
		"research":    ag.Research.Current,
		"researching": ag.Research.Current != "",
	}
	if s.Eng != nil {
		status["tick"] = s.Eng.Tick
		status["sim_time"] = engine.SimTime(s.Eng.Tick)
		status["speed"] = s.Eng.Speed
		status["running"] = s.Eng.Running
	}
	writeJSON(w, status)
}

func (s *Server) handleAgents(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	type entry struct {
		*agents.Agent
		StatusText string `json:"status_text"`
		ClassName  string `json:"class_name,omitempty"`
		TotalStats int    `json:"total_stats"`
	}
	roster := make([]entry, 0, len(s.Agency.Roster))
	for _, a := range s.Agency.Roster {
		e := entry{Agent: a, StatusText: agents.StatusName(a.Status), TotalStats: a.TotalStats()}
		if a.Class != nil {
			e.ClassName = agents.ClassName(*a.Class)
		}
		roster = append(roster, e)
	}
	writeJSON(w, map[string]any{
		"roster": roster,
		"fallen": s.Agency.Fallen,
	})
}

func (s *Server) handleRegions(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, s.Agency.Map)
}

func (s *Server) handleRooms(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	type entry struct {
		*facility.Room
		TypeText  string `json:"type_text"`
		DailyCost int    `json:"daily_cost"`
	}
	rooms := make([]entry, 0, len(s.Agency.Rooms))
	for _, room := range s.Agency.Rooms {
		rooms = append(rooms, entry{
			Room:      room,
			TypeText:  facility.TypeName(room.Type),
			DailyCost: room.TotalMaintenanceCost(),
		})
	}
	writeJSON(w, map[string]any{"rooms": rooms})
}

func (s *Server) handleResearch(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.Agency.Research
	writeJSON(w, map[string]any{
		"current":   res.Current,
		"progress":  res.Progress,
		"fraction":  res.Fraction(),
		"completed": res.Completed,
		"available": res.Available(s.Agency.Config().ResearchProjects),
	})
}

func (s *Server) handleLog(w http.ResponseWriter, r *http.Request) {
	n := 50
	if v := r.URL.Query().Get("n"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			n = parsed
		}
	}

	s.mu.Lock()
	events := s.Agency.RecentEvents(n)
	s.mu.Unlock()

	writeJSON(w, map[string]any{"events": events})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	level := 1
	if v := r.URL.Query().Get("level"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			level = parsed
		}
	}
	writeJSON(w, map[string]any{"items": s.Agency.Catalog().AvailableItems(level)})
}

func (s *Server) handleHire(w http.ResponseWriter, r *http.Request) {
	var hired *agents.Agent
	var ok bool
	s.mutate(func() { hired, ok = s.Agency.HireRandomAgent() })
	if !ok {
		writeJSON(w, map[string]any{"ok": false})
		return
	}
	writeJSON(w, map[string]any{"ok": true, "agent": hired})
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Region string `json:"region"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Region == "" {
		http.Error(w, "expected {\"region\": ...}", http.StatusBadRequest)
		return
	}

	var out *agency.Outcome
	var ok bool
	s.mutate(func() { out, ok = s.Agency.ResolveMission(req.Region) })
	if !ok {
		writeJSON(w, map[string]any{"ok": false})
		return
	}
	writeJSON(w, map[string]any{"ok": true, "outcome": out})
}

func (s *Server) handleClass(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AgentID uint64 `json:"agent_id"`
		Class   uint8  `json:"class"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || int(req.Class) >= agents.NumClasses {
		http.Error(w, "expected {\"agent_id\": ..., \"class\": ...}", http.StatusBadRequest)
		return
	}

	var ok bool
	s.mutate(func() {
		ok = s.Agency.AssignClass(agents.AgentID(req.AgentID), agents.Class(req.Class))
	})
	writeJSON(w, map[string]any{"ok": ok})
}

func (s *Server) handleEquip(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AgentID uint64 `json:"agent_id"`
		ItemID  string `json:"item_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ItemID == "" {
		http.Error(w, "expected {\"agent_id\": ..., \"item_id\": ...}", http.StatusBadRequest)
		return
	}

	var ok bool
	s.mutate(func() { ok = s.Agency.EquipItem(agents.AgentID(req.AgentID), req.ItemID) })
	writeJSON(w, map[string]any{"ok": ok})
}

func (s *Server) handleBuy(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AgentID uint64 `json:"agent_id"`
		Item    string `json:"item"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Item == "" {
		http.Error(w, "expected {\"agent_id\": ..., \"item\": ...}", http.StatusBadRequest)
		return
	}

	var ok bool
	s.mutate(func() { ok = s.Agency.BuyEquipment(agents.AgentID(req.AgentID), req.Item) })
	writeJSON(w, map[string]any{"ok": ok})
}

func (s *Server) handleResearchStart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Project string `json:"project"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Project == "" {
		http.Error(w, "expected {\"project\": ...}", http.StatusBadRequest)
		return
	}

	var ok bool
	s.mutate(func() { ok = s.Agency.StartResearch(req.Project) })
	writeJSON(w, map[string]any{"ok": ok})
}

func (s *Server) handleRoomAdd(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type string `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "expected {\"type\": ...}", http.StatusBadRequest)
		return
	}
	roomType, known := facility.TypeFromName(req.Type)
	if !known {
		http.Error(w, "unknown room type", http.StatusBadRequest)
		return
	}

	var room *facility.Room
	var ok bool
	s.mutate(func() { room, ok = s.Agency.AddRoom(roomType) })
	if !ok {
		writeJSON(w, map[string]any{"ok": false})
		return
	}
	writeJSON(w, map[string]any{"ok": true, "room": room})
}

func (s *Server) handleRoomUpgrade(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Index int `json:"index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "expected {\"index\": ...}", http.StatusBadRequest)
		return
	}

	var ok bool
	s.mutate(func() { ok = s.Agency.UpgradeRoom(req.Index) })
	writeJSON(w, map[string]any{"ok": ok})
}

func (s *Server) handleRoomFit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Index   int    `json:"index"`
		Upgrade string `json:"upgrade"`
		Remove  bool   `json:"remove"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Upgrade == "" {
		http.Error(w, "expected {\"index\": ..., \"upgrade\": ...}", http.StatusBadRequest)
		return
	}

	var ok bool
	s.mutate(func() {
		if req.Remove {
			ok = s.Agency.RemoveRoomUpgrade(req.Index, req.Upgrade)
		} else {
			ok = s.Agency.AddRoomUpgrade(req.Index, req.Upgrade)
		}
	})
	writeJSON(w, map[string]any{"ok": ok})
}

func (s *Server) handleTick(w http.ResponseWriter, r *http.Request) {
	summary := s.RunDay()
	writeJSON(w, map[string]any{"ok": true, "summary": summary})
}

// archive flushes the day to the SQLite archive. Archive failures are
// logged and never affect simulation state.
func (s *Server) archive(summary agency.DailySummary) {
	if s.DB == nil {
		return
	}
	if err := s.DB.AppendLedger(summary); err != nil {
		slog.Warn("ledger write failed", "day", summary.Day, "error", err)
	}
}

func (s *Server) handleSpeed(w http.ResponseWriter, r *http.Request) {
	if s.Eng == nil {
		http.Error(w, "no engine attached", http.StatusConflict)
		return
	}
	var req struct {
		Speed float64 `json:"speed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Speed < 0 {
		http.Error(w, "expected {\"speed\": ...}", http.StatusBadRequest)
		return
	}
	s.Eng.Speed = req.Speed
	writeJSON(w, map[string]any{"ok": true, "speed": req.Speed})
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}
