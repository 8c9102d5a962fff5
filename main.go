package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"travel-agency/config"
	"travel-agency/database"
	"travel-agency/documents"
	"travel-agency/handlers"
	"travel-agency/router"
)

func main() {
	// .env is optional, the defaults work for a local install
	godotenv.Load()

	store, err := database.NewStore(config.DataDir())
	if err != nil {
		log.Fatalf("cannot initialize record store: %v", err)
	}

	docs, err := documents.NewStore(config.PassportsDir())
	if err != nil {
		log.Fatalf("cannot initialize document store: %v", err)
	}

	app := fiber.New()

	router.SetupRoutes(app, handlers.New(store, docs))

	log.Fatal(app.Listen(config.AppAddr()))
}
