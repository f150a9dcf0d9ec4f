package server

import (
	"encoding/json"
	"net/http"
	"time"
)

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.writeState(w)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	users, items, consumption, payments := s.store.Counts()
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "mate-service",
		"version": s.version,
		"uptime":  int64(time.Since(s.start) / time.Second),
		"counts": map[string]int{
			"users":       users,
			"items":       items,
			"consumption": consumption,
			"payments":    payments,
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAddUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if s.store.UserExists(req.Name) {
		writeError(w, http.StatusBadRequest, "user already exists")
		return
	}

	if err := s.store.AddUser(r.Context(), newRecordID(), req.Name); err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeState(w)
}

func (s *Server) handleRemoveUser(w http.ResponseWriter, r *http.Request) {
	if err := s.store.RemoveUser(r.Context(), r.PathValue("id")); err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeState(w)
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
		Stock *int    `json:"stock"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Price <= 0 {
		writeError(w, http.StatusBadRequest, "invalid price")
		return
	}
	if s.store.ItemExists(req.Name) {
		writeError(w, http.StatusBadRequest, "item already exists")
		return
	}

	stock := defaultItemStock
	if req.Stock != nil {
		stock = *req.Stock
	}
	if err := s.store.AddItem(r.Context(), newRecordID(), req.Name, req.Price, stock); err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeState(w)
}

func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	if err := s.store.RemoveItem(r.Context(), r.PathValue("id")); err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeState(w)
}

func (s *Server) handleUpdateItemStock(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Stock *int `json:"stock"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Stock == nil || *req.Stock < 0 {
		writeError(w, http.StatusBadRequest, "invalid stock value")
		return
	}

	if err := s.store.UpdateItemStock(r.Context(), r.PathValue("id"), *req.Stock); err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeState(w)
}

func (s *Server) handleAddConsumption(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID   string `json:"userId"`
		ItemID   string `json:"itemId"`
		Quantity int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.UserID == "" || req.ItemID == "" || req.Quantity <= 0 {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	// Over-consumption guard lives here, not in the store.
	if req.Quantity > s.store.AvailableStock(req.ItemID) {
		writeError(w, http.StatusConflict, "not enough stock")
		return
	}

	if err := s.store.AddConsumption(r.Context(), newRecordID(), req.UserID, req.ItemID, req.Quantity); err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeState(w)
}

func (s *Server) handleRemoveConsumption(w http.ResponseWriter, r *http.Request) {
	if err := s.store.RemoveConsumption(r.Context(), r.PathValue("id")); err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeState(w)
}

func (s *Server) handleAddPayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string  `json:"userId"`
		ItemID string  `json:"itemId"`
		Amount float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.UserID == "" || req.ItemID == "" || req.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	if err := s.store.AddPayment(r.Context(), newRecordID(), req.UserID, req.ItemID, req.Amount); err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeState(w)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Reset(r.Context()); err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeState(w)
}
