package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"meetup_server/services"

	"github.com/gorilla/mux"
)

// AutoMatchController handles HTTP requests for the auto-match workflow
type AutoMatchController struct {
	AutoMatchService *services.AutoMatchService
}

// NewAutoMatchController creates a new AutoMatchController instance
func NewAutoMatchController(autoMatchService *services.AutoMatchService) *AutoMatchController {
	return &AutoMatchController{AutoMatchService: autoMatchService}
}

// RunHandler triggers one auto-match round for a user and reports the outcome
func (c *AutoMatchController) RunHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	result, err := c.AutoMatchService.Run(r.Context(), userID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Auto-match failed: %v", err), http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(result)
}

// ClearHandler removes all groups, invites and memberships for a user so
// matching can start over
func (c *AutoMatchController) ClearHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	if err := c.AutoMatchService.ClearUserData(r.Context(), userID); err != nil {
		http.Error(w, fmt.Sprintf("Failed to clear match data: %v", err), http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"message": "Match data cleared"})
}
