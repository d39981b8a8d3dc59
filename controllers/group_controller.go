package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"meetup_server/services"

	"github.com/gorilla/mux"
)

// GroupController handles HTTP requests for match groups
type GroupController struct {
	GroupService *services.GroupService
}

// GetGroupHandler fetches one group with its members
func (c *GroupController) GetGroupHandler(w http.ResponseWriter, r *http.Request) {
	groupID := mux.Vars(r)["groupId"]

	group, err := c.GroupService.GetGroup(r.Context(), groupID)
	if errors.Is(err, services.ErrItemNotFound) {
		http.Error(w, "Group not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to fetch group", http.StatusInternalServerError)
		return
	}

	members, err := c.GroupService.GetMembersForGroup(r.Context(), groupID)
	if err != nil {
		http.Error(w, "Failed to fetch group members", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"group":   group,
		"members": members,
	})
}

// GetUserGroupsHandler lists the groups a user has joined
func (c *GroupController) GetUserGroupsHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	groups, err := c.GroupService.GetGroupsForUser(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to fetch groups", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(groups)
}
