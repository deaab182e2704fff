// Package server wires the ranking API, player save profiles, websocket
// feed and health check into one http.Handler.
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/nmatjar/HashEmpire/internal/format"
	"github.com/nmatjar/HashEmpire/internal/game"
	"github.com/nmatjar/HashEmpire/internal/leaderboard"
)

type Server struct {
	mux     *http.ServeMux
	hub     *Hub
	saves   game.SaveRepository
	started time.Time
}

// New builds the handler around a ranking service and a save store.
// Accepted scores are pushed to websocket subscribers as score_update frames.
func New(svc *leaderboard.Service, saves game.SaveRepository) *Server {
	s := &Server{
		mux:     http.NewServeMux(),
		hub:     NewHub(),
		saves:   saves,
		started: time.Now(),
	}
	go s.hub.Run()

	svc.SetUpdateHook(func(e leaderboard.Entry) {
		log.Printf("score: %s (%s) peak %s, %s clicks",
			e.PlayerID, e.Empire, format.Amount(e.CurrencyPeak), format.Count(e.TotalClicks))
		frame, err := json.Marshal(Message{Type: "score_update", Payload: e})
		if err != nil {
			return
		}
		s.hub.Broadcast(frame)
	})

	leaderboard.NewHandler(svc).Register(s.mux)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /ws", s.hub.ServeWS)
	s.mux.HandleFunc("GET /api/saves/{playerId}", s.handleGetSave)
	s.mux.HandleFunc("PUT /api/saves/{playerId}", s.handlePutSave)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":         "ok",
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
		"uptime_seconds": int(time.Since(s.started).Seconds()),
	})
}

func (s *Server) handleGetSave(w http.ResponseWriter, r *http.Request) {
	doc, ok, err := s.saves.Load(r.PathValue("playerId"))
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !ok {
		writeErr(w, http.StatusNotFound, "no save for player")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": doc})
}

func (s *Server) handlePutSave(w http.ResponseWriter, r *http.Request) {
	var doc game.SaveDocument
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeErr(w, http.StatusBadRequest, "bad json")
		return
	}
	if doc.Version <= 0 || doc.Version > game.SaveVersion {
		writeErr(w, http.StatusBadRequest, "unsupported save version")
		return
	}
	if err := s.saves.Store(r.PathValue("playerId"), doc); err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}
