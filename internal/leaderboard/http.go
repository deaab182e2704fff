package leaderboard

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
)

// Handler exposes the ranking service as a JSON API.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/scores", h.handleSubmit)
	mux.HandleFunc("GET /api/leaderboard", h.handleTop)
	mux.HandleFunc("GET /api/leaderboard/category/{category}", h.handleCategory)
	mux.HandleFunc("GET /api/leaderboard/{playerId}", h.handleRank)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var e Entry
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		writeErr(w, http.StatusBadRequest, "bad json")
		return
	}
	stored, err := h.svc.SubmitScore(r.Context(), e)
	if err != nil {
		if errors.Is(err, ErrMissingStats) {
			writeErr(w, http.StatusBadRequest, err.Error())
			return
		}
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": stored})
}

func (h *Handler) handleTop(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	empire := r.URL.Query().Get("empire")

	entries, err := h.svc.Top(r.Context(), limit, empire)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    entries,
		"count":   len(entries),
	})
}

func (h *Handler) handleCategory(w http.ResponseWriter, r *http.Request) {
	category := Category(r.PathValue("category"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	empire := r.URL.Query().Get("empire")

	entries, err := h.svc.ByCategory(r.Context(), category, limit, empire)
	if err != nil {
		if errors.Is(err, ErrUnknownCategory) {
			writeErr(w, http.StatusBadRequest, err.Error())
			return
		}
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    entries,
		"count":   len(entries),
	})
}

func (h *Handler) handleRank(w http.ResponseWriter, r *http.Request) {
	playerID := r.PathValue("playerId")
	radius, _ := strconv.Atoi(r.URL.Query().Get("radius"))

	res, err := h.svc.RankOf(r.Context(), playerID, radius)
	if err != nil {
		if errors.Is(err, ErrPlayerNotFound) {
			writeErr(w, http.StatusNotFound, err.Error())
			return
		}
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": res})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}
