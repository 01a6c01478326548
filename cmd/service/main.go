package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"jamesfarrell.me/asktube/internal/api"
	"jamesfarrell.me/asktube/internal/api/handlers"
	"jamesfarrell.me/asktube/internal/config"
	"jamesfarrell.me/asktube/internal/locator"
	"jamesfarrell.me/asktube/internal/youtube"
)

func main() {
	config.InitLogger()

	if err := godotenv.Load(); err != nil {
		config.Log.Printf("Error loading .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		config.Log.Fatalf("Invalid configuration: %v", err)
	}

	// Wire the pipeline: transcript fetch, topic location, HTTP surface
	fetcher := youtube.NewClient()
	topics := locator.New(cfg.AIToken, cfg.ChatURL, cfg.Model)
	askHandler := handlers.NewAskHandler(fetcher, topics)

	router := api.NewRouter(askHandler)

	// Start the HTTP server
	config.Log.Infof("Starting HTTP server on :%s...", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		config.Log.Fatalf("HTTP server error: %v", err)
	}
}
