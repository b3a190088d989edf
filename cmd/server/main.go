package main

import (
	"database/sql"
	"log"
	"net/http"

	"carhire/internal/api"
	"carhire/internal/config"
	"carhire/internal/repository"
	"carhire/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
)

func main() {
	godotenv.Load()
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL not set")
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	repo := repository.NewBookingRepository(db)
	if err := repo.InitSchema(); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	sender := service.NewSenderService(cfg)
	svc := service.NewBookingService(repo, sender)
	handler := api.NewBookingHandler(svc)

	reportSvc := service.NewReportService(repository.NewReportRepository(db))
	c := cron.New()
	if _, err := c.AddFunc("0 6 * * *", func() {
		if err := reportSvc.LogDailySummary(); err != nil {
			log.Printf("Daily summary failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule daily summary: %v", err)
	}
	c.Start()

	r := mux.NewRouter()
	r.HandleFunc("/api/bookings", handler.CreateBooking).Methods("POST")
	r.HandleFunc("/api/contact", handler.SubmitContact).Methods("POST")
	r.HandleFunc("/api/vehicles", handler.ListVehicles).Methods("GET")

	// The frontend is hosted separately, so the API stays open to any origin.
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	log.Printf("Server running on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, cors(r)))
}
