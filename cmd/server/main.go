package main

import (
	"context"
	"log"
	"net/http"
	"route-planner-service/internal/api"
	"route-planner-service/internal/app"
	"route-planner-service/internal/config"
	"time"
)

// main is the application composition root.
// It wires the configured provider and store behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	a, err := app.New(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer a.Close()

	router := api.NewRouter(a.Routes, a.Favorites, a.Recommendations)

	// WriteTimeout covers two geocode calls plus one directions call at their limits.
	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      2*cfg.GeocodeTimeout + cfg.RouteTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		a.Close()
		log.Fatal(err)
	}
}
