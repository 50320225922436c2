package main

import (
	"fmt"
	"log"

	"billscan/internal/config"
	"billscan/internal/extract"
	"billscan/internal/fetcher"
	"billscan/internal/handler"
	"billscan/internal/model/gemini"
	"billscan/internal/router"
)

// @title Medical Bill Line Item Extraction API
// @version 1.0.0
// @description Extract monetary line items from medical bill images referenced by URL
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if !cfg.Gemini.Configured() {
		log.Printf("warning: no Gemini API key configured; extraction requests will fail")
	}

	// The model client is read-only after construction and shared across
	// concurrent requests; it serves both the vision and text stages.
	modelClient := gemini.NewClient(&cfg.Gemini)
	imageFetcher := fetcher.New(&cfg.Download)

	extractSvc := extract.NewService(imageFetcher, modelClient, modelClient)

	extractH := handler.NewExtractHandler(extractSvc)
	infoH := handler.NewInfoHandler(&cfg.Gemini)

	r := router.Setup(extractH, infoH, cfg.CORS.AllowedOrigins)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
