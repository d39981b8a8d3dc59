package routes

import (
	"meetup_server/controllers"
	"meetup_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserProfileRoutes registers profile CRUD routes under /api/profiles
func RegisterUserProfileRoutes(r *mux.Router, userProfileService *services.UserProfileService) {
	controller := &controllers.UserProfileController{UserProfileService: userProfileService}

	profileRouter := r.PathPrefix("/api/profiles").Subrouter()
	profileRouter.HandleFunc("", controller.AddUserProfileHandler).Methods("POST")
	profileRouter.HandleFunc("/{userId}", controller.GetUserProfileHandler).Methods("GET")
	profileRouter.HandleFunc("/{userId}", controller.UpdateUserProfileHandler).Methods("PATCH")
	profileRouter.HandleFunc("/{userId}", controller.DeleteUserProfileHandler).Methods("DELETE")
}
