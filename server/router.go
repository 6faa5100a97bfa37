package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// StoreHandlers is the set of HTTP handlers the router wires up. Declared as
// an interface so tests can register routes against a stub.
type StoreHandlers interface {
	GetStoreStatus(w http.ResponseWriter, r *http.Request)
	ListStoreStatuses(w http.ResponseWriter, r *http.Request)
	GetStoreSchedule(w http.ResponseWriter, r *http.Request)
	PutStoreSchedule(w http.ResponseWriter, r *http.Request)
	GetScheduleChart(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	storeHandler StoreHandlers
	router       *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	storeHandler StoreHandlers,
	router *mux.Router) *Router {
	return &Router{
		storeHandler: storeHandler,
		router:       router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/v1/stores/status", r.storeHandler.ListStoreStatuses).Methods("GET")
	r.router.HandleFunc("/v1/stores/{store_id}/status", r.storeHandler.GetStoreStatus).Methods("GET")
	r.router.HandleFunc("/v1/stores/{store_id}/schedule", r.storeHandler.GetStoreSchedule).Methods("GET")
	r.router.HandleFunc("/v1/stores/{store_id}/schedule", r.storeHandler.PutStoreSchedule).Methods("PUT")
	r.router.HandleFunc("/v1/stores/{store_id}/schedule/chart", r.storeHandler.GetScheduleChart).Methods("GET")

	r.router.HandleFunc("/ping", r.storeHandler.Ping).Methods("GET")
}
