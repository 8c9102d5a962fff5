package handlers

import (
	"encoding/json"
	"fmt"
	"strings"

	"travel-agency/database"
	"travel-agency/errors"
	"travel-agency/model"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetTrips(c *fiber.Ctx) error {
	tripsJson, jsonErr := json.MarshalIndent(h.Store.LoadTrips(), "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(tripsJson))
}

func (h *Handler) CreateTrip(c *fiber.Ctx) error {
	newTrip := new(model.Trip)
	if jsonErr := c.BodyParser(newTrip); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable trip parameters: %v", jsonErr))
	}

	newTrip.Name = strings.TrimSpace(newTrip.Name)
	if newTrip.Name == "" {
		return errors.RaiseBadRequestError(c, "trip name is required")
	}
	if newTrip.Price < 0 {
		return errors.RaiseBadRequestError(c, "trip price cannot be negative")
	}
	if newTrip.Capacity < 0 {
		return errors.RaiseBadRequestError(c, "trip capacity cannot be negative")
	}

	trips := h.Store.LoadTrips()

	newTrip.Id = database.NextId(trips)
	newTrip.Booked = 0
	newTrip.Status = model.TripStatusPlanning
	if strings.TrimSpace(newTrip.Image) == "" {
		newTrip.Image = model.TripImagePlaceholder
	}

	trips = append(trips, *newTrip)
	if commitErr := h.Store.CommitTrips(trips); commitErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", commitErr))
	}

	newTripJson, jsonErr := json.MarshalIndent(newTrip, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(newTripJson))
}

// GetTripClients lists the clients booked on one trip together with their
// bookings. Bookings pointing at a deleted client are left out.
func (h *Handler) GetTripClients(c *fiber.Ctx) error {
	tripId, err := parseId(c.Params("tripId"))
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("invalid tripId %v", c.Params("tripId")))
	}

	tripClientsJson, jsonErr := json.MarshalIndent(h.Queries.TripClients(tripId), "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(tripClientsJson))
}
