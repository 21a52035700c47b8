package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	. "MissileCommand/internal/game"
)

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthCheck(t *testing.T) {
	rec := get(t, newRouter(NewHub(DefaultParams())), "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "healthy") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRoomsAPI(t *testing.T) {
	hub := NewHub(DefaultParams())
	hub.GetRoom("r1").Tick()
	router := newRouter(hub)

	rec := get(t, router, "/api/rooms")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var rooms []roomSummaryDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &rooms); err != nil {
		t.Fatalf("decode rooms: %v", err)
	}
	if len(rooms) != 1 || rooms[0].ID != "r1" || rooms[0].Now != TickMs {
		t.Fatalf("unexpected rooms: %+v", rooms)
	}

	rec = get(t, router, "/api/rooms/r1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var state snapshotDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	if state.Room != "r1" || len(state.Cities) != 3 {
		t.Fatalf("unexpected state: %+v", state)
	}

	if rec := get(t, router, "/api/rooms/missing"); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if _, ok := hub.LookupRoom("missing"); ok {
		t.Fatal("lookup must not create rooms")
	}
}

func TestIndexServesClient(t *testing.T) {
	router := newRouter(NewHub(DefaultParams()))
	rec := get(t, router, "/")
	body, _ := io.ReadAll(rec.Body)
	if rec.Code != http.StatusOK || !strings.Contains(string(body), "/client.js") {
		t.Fatalf("unexpected index response %d", rec.Code)
	}
	if rec := get(t, router, "/client.js"); !strings.Contains(rec.Header().Get("Content-Type"), "javascript") {
		t.Fatalf("unexpected content type %q", rec.Header().Get("Content-Type"))
	}
}
