package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"meetup_server/routes"
	"meetup_server/services"
	"meetup_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Initialize Services
	userProfileService := &services.UserProfileService{Dynamo: dynamoService}
	groupService := &services.GroupService{Dynamo: dynamoService}
	inviteService := &services.InviteService{Dynamo: dynamoService}
	throttleService := &services.ThrottleService{Dynamo: dynamoService}

	lifecycleService := &services.InviteLifecycleService{
		Invites: inviteService,
		Members: groupService,
	}

	// Realtime invite-refresh notifications
	notificationServer := socket.NewNotificationServer()
	go func() {
		if err := notificationServer.Server().Serve(); err != nil {
			log.Printf("Socket server error: %v\n", err)
		}
	}()
	defer notificationServer.Server().Close()

	autoMatchService := &services.AutoMatchService{
		Profiles:       userProfileService,
		Groups:         groupService,
		Invites:        inviteService,
		Members:        groupService,
		Throttle:       throttleService,
		Notifier:       notificationServer,
		ThrottleWindow: throttleWindowFromEnv(),
		MaxMatches:     maxMatchesFromEnv(),
	}

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Meetup Matcher")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterUserProfileRoutes(r, userProfileService)
	routes.RegisterAutoMatchRoutes(r, autoMatchService)
	routes.RegisterInviteRoutes(r, inviteService, lifecycleService)
	routes.RegisterGroupRoutes(r, groupService)

	// Mount the socket server
	r.PathPrefix("/socket.io/").Handler(notificationServer.Server())

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}

// throttleWindowFromEnv reads MATCH_THROTTLE_WINDOW as a Go duration
func throttleWindowFromEnv() time.Duration {
	raw := os.Getenv("MATCH_THROTTLE_WINDOW")
	if raw == "" {
		return services.DefaultThrottleWindow
	}
	window, err := time.ParseDuration(raw)
	if err != nil || window <= 0 {
		log.Printf("Invalid MATCH_THROTTLE_WINDOW %q, using default\n", raw)
		return services.DefaultThrottleWindow
	}
	return window
}

// maxMatchesFromEnv reads MATCH_MAX_MATCHES as an int
func maxMatchesFromEnv() int {
	raw := os.Getenv("MATCH_MAX_MATCHES")
	if raw == "" {
		return 0 // service default
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("Invalid MATCH_MAX_MATCHES %q, using default\n", raw)
		return 0
	}
	return n
}
