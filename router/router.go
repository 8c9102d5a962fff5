package router

import (
	"travel-agency/handlers"
	"travel-agency/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/", logger.New())

	//Login
	login := api.Group("/login")
	login.Post("/", h.Login)

	authorized := api.Group("/", middleware.Authorize())

	//Trips
	trip := authorized.Group("/trips")
	trip.Get("/", h.GetTrips)
	trip.Post("/", h.CreateTrip)
	trip.Get("/:tripId/clients", h.GetTripClients)

	//Clients
	client := authorized.Group("/clients")
	client.Get("/", h.GetClients)
	client.Post("/", h.CreateClient)
	client.Delete("/:clientId", h.DeleteClient)
	client.Get("/:clientId/passport", h.GetClientPassport)
	client.Post("/:clientId/passport", h.UploadClientPassport)

	//Bookings
	booking := authorized.Group("/bookings")
	booking.Get("/", h.GetBookings)
	booking.Post("/", h.CreateBooking)
	booking.Patch("/:bookingId/status", h.UpdateBookingStatus)

	//Dashboard
	authorized.Get("/stats", h.GetStats)
	authorized.Post("/maintenance/recompute", h.RecomputeAggregates)
}
