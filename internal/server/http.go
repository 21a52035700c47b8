package server

import (
	_ "embed"
	"encoding/json"
	"log"
	"net/http"

	. "MissileCommand/internal/game"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:generate go run ./cmd/webbuild

/* ------------------------------ Embeds ------------------------------ */

//go:embed web/index.html
var htmlIndex []byte

//go:embed web/client.js
var jsClient []byte

/* ------------------------------- HTTP ------------------------------- */

func newRouter(h *Hub) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(htmlIndex)
	})
	r.Get("/client.js", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		_, _ = w.Write(jsClient)
	})
	r.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWS(h, w, r)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Logger)
		r.Get("/health", healthCheck)
		r.Get("/rooms", listRooms(h))
		r.Get("/rooms/{id}", getRoom(h))
	})
	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func listRooms(h *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rooms := make([]roomSummaryDTO, 0)
		for _, id := range h.RoomIDs() {
			room, ok := h.LookupRoom(id)
			if !ok {
				continue
			}
			rooms = append(rooms, roomSummary(room.Snapshot()))
		}
		respondJSON(w, http.StatusOK, rooms)
	}
}

func getRoom(h *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		room, ok := h.LookupRoom(id)
		if !ok {
			respondJSON(w, http.StatusNotFound, errorDTO{Type: "not_found", Message: "room not found"})
			return
		}
		respondJSON(w, http.StatusOK, snapshotToDTO(room.Snapshot()))
	}
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("encode response: %v", err)
	}
}
