// Package api exposes a shared world over HTTP: JSON and text frames, PNG snapshots,
// manual tick/refresh and the WebSocket frame stream.
package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/render"
	"github.com/sheikhrachel/go-life/transport/websocket"
)

const maxPNGScale = 20

// Controller advances or restarts the world on behalf of a request.
// *model.SharedWorld is one; the game wraps it to keep stats and restart tracking in step.
type Controller interface {
	Tick() int
	Refresh()
}

// Server represents the REST API server
type Server struct {
	world   *model.SharedWorld
	control Controller
	pool    *model.FramePool
	hub     *websocket.Hub
	router  *mux.Router
	scale   int
}

// NewServer creates a new API server. A nil control ticks and refreshes world directly;
// hub may be nil to disable /ws.
func NewServer(world *model.SharedWorld, control Controller, pool *model.FramePool, hub *websocket.Hub, scale int) *Server {
	if control == nil {
		control = world
	}
	s := &Server{
		world:   world,
		control: control,
		pool:    pool,
		hub:     hub,
		router:  mux.NewRouter(),
		scale:   scale,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/world", s.handleGetWorld).Methods("GET")
	api.HandleFunc("/world/text", s.handleGetText).Methods("GET")
	api.HandleFunc("/world/png", s.handleGetPNG).Methods("GET")
	api.HandleFunc("/world/tick", s.handleTick).Methods("POST")
	api.HandleFunc("/world/refresh", s.handleRefresh).Methods("POST")

	if s.hub != nil {
		s.router.HandleFunc("/ws", s.hub.ServeWS)
	}
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func (s *Server) frame() websocket.Frame {
	snap, generation := s.world.Snapshot(s.pool)
	defer s.pool.Put(snap)
	return websocket.NewFrame(snap, generation)
}

func (s *Server) handleGetWorld(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.frame())
}

func (s *Server) handleGetText(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(s.world.Text()))
}

func (s *Server) handleGetPNG(w http.ResponseWriter, r *http.Request) {
	scale := s.scale
	if v := r.URL.Query().Get("scale"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxPNGScale {
			respondError(w, http.StatusBadRequest, "scale must be an integer between 1 and 20")
			return
		}
		scale = n
	}

	snap, _ := s.world.Snapshot(s.pool)
	defer s.pool.Put(snap)

	w.Header().Set("Content-Type", "image/png")
	if err := render.EncodePNG(w, snap, scale); err != nil {
		log.Printf("Failed to write png frame: %v", err)
	}
}

func (s *Server) handleTick(w http.ResponseWriter, r *http.Request) {
	s.control.Tick()
	respondJSON(w, http.StatusOK, s.frame())
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	s.control.Refresh()
	respondJSON(w, http.StatusOK, s.frame())
}
