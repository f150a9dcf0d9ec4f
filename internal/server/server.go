// Package server exposes the record store over a REST API. It
// owns everything the store contract delegates to callers: id generation,
// name-uniqueness pre-checks, the available-stock pre-check, and basic
// field validation.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/phani92/mate-service/internal/store"
	"github.com/phani92/mate-service/pkg/types"
)

// defaultItemStock is used when an item is created without a stock value:
// one crate of bottles.
const defaultItemStock = 24

// Server handles the /api routes against one record store.
type Server struct {
	store   *store.Store
	version string
	start   time.Time
}

// New creates a Server for the given store.
func New(st *store.Store, version string) *Server {
	return &Server{
		store:   st,
		version: version,
		start:   time.Now(),
	}
}

// Handler returns the route table. Method-qualified patterns make the mux
// answer 405 for wrong methods on known paths.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/state", s.handleState)
	mux.HandleFunc("GET /api/status", s.handleStatus)
	mux.HandleFunc("GET /api/health", s.handleHealth)

	mux.HandleFunc("POST /api/users", s.handleAddUser)
	mux.HandleFunc("DELETE /api/users/{id}", s.handleRemoveUser)

	mux.HandleFunc("POST /api/items", s.handleAddItem)
	mux.HandleFunc("DELETE /api/items/{id}", s.handleRemoveItem)
	mux.HandleFunc("PUT /api/items/{id}/stock", s.handleUpdateItemStock)

	mux.HandleFunc("POST /api/consumption", s.handleAddConsumption)
	mux.HandleFunc("DELETE /api/consumption/{id}", s.handleRemoveConsumption)

	mux.HandleFunc("POST /api/payments", s.handleAddPayment)

	mux.HandleFunc("POST /api/reset", s.handleReset)

	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "endpoint not found")
	})

	return withCORS(mux)
}

// withCORS adds permissive CORS headers to every response and
// short-circuits preflight requests with 204.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// newRecordID generates a UUID v7 for new entities, falling back to v4 if
// v7 generation fails.
func newRecordID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeState responds with the full serialized snapshot. Every mutating
// route answers with it so clients never need a follow-up read.
func (s *Server) writeState(w http.ResponseWriter) {
	blob, err := s.store.ExportState()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to export state")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(blob)
}

// writeStoreError maps store errors to status codes.
func (s *Server) writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, types.ErrNotFound):
		writeError(w, http.StatusNotFound, "record not found")
	case errors.Is(err, types.ErrCapacityExceeded):
		writeError(w, http.StatusInsufficientStorage, "capacity exceeded")
	case errors.Is(err, types.ErrInvalidQuantity), errors.Is(err, types.ErrInvalidAmount):
		writeError(w, http.StatusBadRequest, "invalid input")
	default:
		// Persistence write failure: the mutation is in memory but not
		// durable. Surfaced, not retried.
		writeError(w, http.StatusInternalServerError, "failed to persist state")
	}
}
