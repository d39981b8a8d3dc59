package controllers

import (
	"encoding/json"
	"net/http"

	"meetup_server/matching"
	"meetup_server/models"
	"meetup_server/services"

	"github.com/gorilla/mux"
)

// InviteController handles HTTP requests for invite-related actions
type InviteController struct {
	InviteService    *services.InviteService
	LifecycleService *services.InviteLifecycleService
}

// inviteView decorates an invite with its activity emoji for display
type inviteView struct {
	models.MatchInvite
	ActivityEmoji string `json:"activityEmoji"`
}

// GetPendingInvitesHandler returns the user's pending invites
func (c *InviteController) GetPendingInvitesHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	invites, err := c.InviteService.GetPendingInvites(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to fetch invites", http.StatusInternalServerError)
		return
	}

	views := make([]inviteView, len(invites))
	for i, invite := range invites {
		views[i] = inviteView{
			MatchInvite:   invite,
			ActivityEmoji: matching.EmojiForStatus(invite.GroupActivity),
		}
	}

	json.NewEncoder(w).Encode(views)
}

// RespondHandler accepts or declines an invite
func (c *InviteController) RespondHandler(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID   string `json:"userId"`
		InviteID string `json:"inviteId"`
		Status   string `json:"status"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var err error
	switch request.Status {
	case models.InviteStatusAccepted:
		err = c.LifecycleService.Accept(r.Context(), request.UserID, request.InviteID)
	case models.InviteStatusDeclined:
		err = c.LifecycleService.Decline(r.Context(), request.UserID, request.InviteID)
	default:
		http.Error(w, "status must be accepted or declined", http.StatusBadRequest)
		return
	}

	if err != nil {
		http.Error(w, "Failed to update invite", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"message": "Invite status updated successfully"})
}
