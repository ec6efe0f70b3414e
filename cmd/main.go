// Package main is the entry point for the stock-service application.
//
// @title           Coffee Stock Service API
// @version         1.0.0
// @description     Stock allocation and reservation API for a specialty coffee distributor.
//
//	Computes per-size availability from 250g base package stock, estimates
//	consumption for events and office use, and reconciles client selections
//	against live stock.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  suporte@cafelagoa.com.br
// @contact.url    https://github.com/cafelagoa/stock-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT access token. Format: "Bearer {token}". Required if authentication is enabled.
//
// @tag.name        Catalog
// @tag.description Product catalog and availability
//
// @tag.name        Calculators
// @tag.description Event and internal-use consumption calculators
//
// @tag.name        Reservations
// @tag.description Stock reservations and selection reconciliation
//
// @tag.name        Pricing
// @tag.description Client price lists and quotes
//
// @tag.name        Auth
// @tag.description Authentication endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	_ "github.com/cafelagoa/stock-service/docs" // swagger docs

	"github.com/cafelagoa/stock-service/config"
	"github.com/cafelagoa/stock-service/internal/app"
)

func main() {
	// Optional .env for local development; environment wins in production.
	_ = godotenv.Load()

	cfg := config.Load()

	router, cleanup, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}
	defer cleanup()

	server := app.NewServer(router, cfg.Server.Port)
	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
