package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"
)

// NotificationServer pushes "your invites changed" signals to connected
// clients. Each client joins a room keyed by its user id; the auto-match
// workflow broadcasts a refresh event into the rooms of everyone it
// invited. Best-effort only: a user with no open connection simply fetches
// on next load.
type NotificationServer struct {
	server *socketio.Server
}

// NewNotificationServer initializes the Socket.IO server and its handlers
func NewNotificationServer() *NotificationServer {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("Socket connected:", c.ID())
		return nil
	})

	server.OnEvent("/", "join", func(c socketio.Conn, userID string) {
		if userID == "" {
			log.Println("Invalid userId in join request")
			return
		}
		c.Join(userRoom(userID))
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("Socket disconnected:", c.ID(), reason)
	})

	return &NotificationServer{server: server}
}

// NotifyInviteRefresh tells a user's open connections to refetch invites
func (n *NotificationServer) NotifyInviteRefresh(userID string) {
	n.server.BroadcastToRoom("/", userRoom(userID), "refreshInvites")
}

// Server exposes the underlying Socket.IO server for mounting and serving
func (n *NotificationServer) Server() *socketio.Server {
	return n.server
}

func userRoom(userID string) string {
	return "user:" + userID
}
