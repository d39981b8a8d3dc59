package routes

import (
	"meetup_server/controllers"
	"meetup_server/services"

	"github.com/gorilla/mux"
)

// RegisterInviteRoutes registers all invite-related routes under /api/invites
func RegisterInviteRoutes(r *mux.Router, inviteService *services.InviteService, lifecycleService *services.InviteLifecycleService) {
	controller := &controllers.InviteController{
		InviteService:    inviteService,
		LifecycleService: lifecycleService,
	}

	inviteRouter := r.PathPrefix("/api/invites").Subrouter()
	inviteRouter.HandleFunc("/pending/{userId}", controller.GetPendingInvitesHandler).Methods("GET") // Get pending invites
	inviteRouter.HandleFunc("/respond", controller.RespondHandler).Methods("PUT")                    // Accept or decline an invite
}
