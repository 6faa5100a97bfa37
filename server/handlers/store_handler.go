package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"sort"

	"github.com/gorilla/mux"

	redisdao "sf-server/dao/redis"
	"sf-server/hours"
	"sf-server/models"
	"sf-server/models/schedule"
	services "sf-server/service"
	"sf-server/util"
)

const STORE_ID_PATH_ARG = "store_id"

// StoreWithStatus pairs a store's identity with its cached status for the
// dashboard list view.
type StoreWithStatus struct {
	StoreID   string               `json:"store_id"`
	StoreName string               `json:"store_name"`
	Status    schedule.StoreStatus `json:"status"`
}

type StoreHandler struct {
	storeDao      *redisdao.RedisStoreDAO
	statusService *services.StoreStatusService
}

func NewStoreHandler(storeDao *redisdao.RedisStoreDAO, statusService *services.StoreStatusService) *StoreHandler {
	return &StoreHandler{storeDao: storeDao, statusService: statusService}
}

// GetStoreStatus handles GET /v1/stores/{store_id}/status.
// The status is computed fresh on every call; callers poll this endpoint to
// keep their badge current.
func (h *StoreHandler) GetStoreStatus(w http.ResponseWriter, r *http.Request) {
	storeID := mux.Vars(r)[STORE_ID_PATH_ARG]

	status, err := h.statusService.GetStoreStatus(storeID)
	if err != nil {
		log.Printf("[StoreHandler] No store for id=%s: %v", storeID, err)
		http.Error(w, "Store not found", http.StatusNotFound)
		return
	}

	writeJSON(w, status)
}

// ListStoreStatuses handles GET /v1/stores/status: the dashboard view over
// the statuses precomputed by the refresher. Stores without a cached status
// yet are skipped rather than failing the whole list.
func (h *StoreHandler) ListStoreStatuses(w http.ResponseWriter, r *http.Request) {
	ids, err := h.storeDao.ListStoreIDs()
	if err != nil {
		log.Println("Error listing stores:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	sort.Strings(ids)

	out := make([]StoreWithStatus, 0, len(ids))
	for _, id := range ids {
		store, err := h.storeDao.GetStore(id)
		if err != nil {
			log.Printf("No store document for id=%s, skipping", id)
			continue
		}
		status, err := h.storeDao.GetCachedStatus(id)
		if err != nil {
			log.Printf("No cached status for id=%s, skipping", id)
			continue
		}
		out = append(out, StoreWithStatus{
			StoreID:   store.StoreID,
			StoreName: store.StoreName,
			Status:    *status,
		})
	}

	writeJSON(w, out)
}

// GetStoreSchedule handles GET /v1/stores/{store_id}/schedule.
func (h *StoreHandler) GetStoreSchedule(w http.ResponseWriter, r *http.Request) {
	storeID := mux.Vars(r)[STORE_ID_PATH_ARG]

	store, err := h.storeDao.GetStore(storeID)
	if err != nil {
		http.Error(w, "Store not found", http.StatusNotFound)
		return
	}

	writeJSON(w, store.Schedule)
}

// PutStoreSchedule handles PUT /v1/stores/{store_id}/schedule: validate the
// submitted document, persist it when structurally sound, and drop the stale
// cached status. The validation result, warnings included, goes back to the
// editor either way.
func (h *StoreHandler) PutStoreSchedule(w http.ResponseWriter, r *http.Request) {
	storeID := mux.Vars(r)[STORE_ID_PATH_ARG]

	var raw schedule.RawWeeklySchedule
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		http.Error(w, "Invalid schedule document", http.StatusBadRequest)
		return
	}

	result := h.statusService.ValidateSchedule(raw)
	if !result.Valid {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		if err := json.NewEncoder(w).Encode(result); err != nil {
			log.Println("Error encoding validation result:", err)
		}
		return
	}

	store, err := h.storeDao.GetStore(storeID)
	if err != nil {
		store = &models.Store{StoreID: storeID}
	}
	store.Schedule = raw

	if err := h.storeDao.UpsertStore(*store); err != nil {
		log.Println("Error upserting store:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if err := h.storeDao.DeleteCachedStatus(storeID); err != nil {
		log.Printf("[StoreHandler] Failed to drop cached status for %s: %v", storeID, err)
	}

	writeJSON(w, result)
}

// GetScheduleChart handles GET /v1/stores/{store_id}/schedule/chart and
// renders the weekly open-hours chart as HTML.
func (h *StoreHandler) GetScheduleChart(w http.ResponseWriter, r *http.Request) {
	storeID := mux.Vars(r)[STORE_ID_PATH_ARG]

	store, err := h.storeDao.GetStore(storeID)
	if err != nil {
		http.Error(w, "Store not found", http.StatusNotFound)
		return
	}

	ws := hours.Normalize(store.Schedule)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.RenderWeeklyHoursChart(w, store.StoreName, ws); err != nil {
		log.Println("Error rendering schedule chart:", err)
	}
}

// Ping handles GET /ping
func (h *StoreHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "pong"})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("Error encoding response:", err)
	}
}
