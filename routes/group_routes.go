package routes

import (
	"meetup_server/controllers"
	"meetup_server/services"

	"github.com/gorilla/mux"
)

// RegisterGroupRoutes registers group read routes under /api/groups
func RegisterGroupRoutes(r *mux.Router, groupService *services.GroupService) {
	controller := &controllers.GroupController{GroupService: groupService}

	groupRouter := r.PathPrefix("/api/groups").Subrouter()
	groupRouter.HandleFunc("/user/{userId}", controller.GetUserGroupsHandler).Methods("GET") // Groups the user joined
	groupRouter.HandleFunc("/{groupId}", controller.GetGroupHandler).Methods("GET")          // One group with members
}
