package routes

import (
	"meetup_server/controllers"
	"meetup_server/services"

	"github.com/gorilla/mux"
)

// RegisterAutoMatchRoutes sets up routes for the auto-match workflow under /api/match
func RegisterAutoMatchRoutes(r *mux.Router, autoMatchService *services.AutoMatchService) {
	controller := controllers.NewAutoMatchController(autoMatchService)

	matchRouter := r.PathPrefix("/api/match").Subrouter()
	matchRouter.HandleFunc("/run/{userId}", controller.RunHandler).Methods("POST")       // Trigger one auto-match round
	matchRouter.HandleFunc("/clear/{userId}", controller.ClearHandler).Methods("DELETE") // Reset a user's groups/invites/memberships
}
