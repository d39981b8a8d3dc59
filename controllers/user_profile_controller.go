package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"meetup_server/matching"
	"meetup_server/models"
	"meetup_server/services"

	"github.com/gorilla/mux"
)

// UserProfileController handles HTTP requests for profile CRUD
type UserProfileController struct {
	UserProfileService *services.UserProfileService
}

// AddUserProfileHandler creates a profile
func (c *UserProfileController) AddUserProfileHandler(w http.ResponseWriter, r *http.Request) {
	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if profile.UserID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	created, err := c.UserProfileService.AddUserProfile(r.Context(), profile)
	if err != nil {
		http.Error(w, "Failed to create profile", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(created)
}

// GetUserProfileHandler fetches a profile, with the status emoji attached
// for map display
func (c *UserProfileController) GetUserProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	profile, err := c.UserProfileService.GetProfile(r.Context(), userID)
	if errors.Is(err, services.ErrItemNotFound) {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to fetch profile", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"profile":     profile,
		"statusEmoji": matching.EmojiForStatus(profile.Status),
	})
}

// UpdateUserProfileHandler applies partial updates to a profile
func (c *UserProfileController) UpdateUserProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var updates map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := c.UserProfileService.UpdateUserProfile(r.Context(), userID, updates)
	if err != nil {
		http.Error(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(updated)
}

// DeleteUserProfileHandler removes a profile
func (c *UserProfileController) DeleteUserProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if err := c.UserProfileService.DeleteUserProfile(r.Context(), userID); err != nil {
		http.Error(w, "Failed to delete profile", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": "Profile deleted"})
}
