package main

import (
	"fmt"
	"log"

	"github.com/Dromgooles/parser-files/internal/config"
	"github.com/Dromgooles/parser-files/internal/handler"
	"github.com/Dromgooles/parser-files/internal/parser"
	"github.com/Dromgooles/parser-files/internal/pdftext"
	"github.com/Dromgooles/parser-files/internal/router"
)

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

	p := parser.New()
	provider := pdftext.New()

	parseH := handler.NewParseHandler(p, provider, cfg)
	healthH := handler.NewHealthHandler()

	r := router.Setup(parseH, healthH, cfg.CORS.AllowedOrigins)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
