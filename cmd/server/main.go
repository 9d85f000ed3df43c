package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/grammar-quest/backend/internal/auth"
	"github.com/grammar-quest/backend/internal/catalog"
	"github.com/grammar-quest/backend/internal/database"
	"github.com/grammar-quest/backend/internal/middleware"
	"github.com/grammar-quest/backend/internal/progression"
	"github.com/rs/cors"
)

func main() {
	// Validate the static catalog before anything else; a data-authoring
	// mistake should fail the boot, not surface mid-session.
	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		log.Fatalf("Invalid catalog: %v", err)
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize handlers
	authHandler := auth.NewHandler(db)
	progressionStore := progression.NewPostgresStore(db)
	progressionService := progression.NewService(progressionStore, cat)
	progressionHandler := progression.NewHandler(progressionService, cat)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/catalog/topics", progressionHandler.ListTopics).Methods("GET")
	api.HandleFunc("/catalog/store", progressionHandler.ListStoreItems).Methods("GET")
	api.HandleFunc("/catalog/achievements", progressionHandler.ListAchievements).Methods("GET")

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/auth/me", authHandler.GetCurrentUser).Methods("GET")
	protected.HandleFunc("/progress", progressionHandler.GetProgress).Methods("GET")
	protected.HandleFunc("/progress", progressionHandler.ResetProgress).Methods("DELETE")
	protected.HandleFunc("/session/start", progressionHandler.StartSession).Methods("POST")
	protected.HandleFunc("/levels/complete", progressionHandler.CompleteLevel).Methods("POST")
	protected.HandleFunc("/quiz/complete", progressionHandler.CompleteQuiz).Methods("POST")
	protected.HandleFunc("/exercise/answer", progressionHandler.SubmitExercise).Methods("POST")
	protected.HandleFunc("/store/purchase", progressionHandler.PurchaseItem).Methods("POST")
	protected.HandleFunc("/theme/activate", progressionHandler.ActivateTheme).Methods("POST")
	protected.HandleFunc("/xp/cheat", progressionHandler.CheatCode).Methods("POST")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
