package handlers

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"

	"travel-agency/errors"
	"travel-agency/ledger"
	"travel-agency/model"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetBookings(c *fiber.Ctx) error {
	bookingsJson, jsonErr := json.MarshalIndent(h.Store.LoadBookings(), "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(bookingsJson))
}

func (h *Handler) CreateBooking(c *fiber.Ctx) error {
	type BookingRequest struct {
		ClientId    int     `json:"clientId"`
		TripId      int     `json:"tripId"`
		TotalAmount float64 `json:"totalAmount"`
		PaidAmount  float64 `json:"paidAmount"`
		Notes       string  `json:"notes"`
	}

	request := new(BookingRequest)
	if jsonErr := c.BodyParser(request); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable booking parameters: %v", jsonErr))
	}

	newBooking, createErr := h.Ledger.CreateBooking(
		request.ClientId,
		request.TripId,
		request.TotalAmount,
		request.PaidAmount,
		strings.TrimSpace(request.Notes))
	if createErr != nil {
		if stderrors.Is(createErr, ledger.ErrNotFound) {
			return errors.RaiseNotFoundError(c, fmt.Sprint(createErr))
		}
		return errors.RaiseBadRequestError(c,
			fmt.Sprintf("incorrect input for booking parameters: %v", createErr))
	}

	newBookingJson, jsonErr := json.MarshalIndent(newBooking, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(newBookingJson))
}

func (h *Handler) UpdateBookingStatus(c *fiber.Ctx) error {
	bookingId, err := parseId(c.Params("bookingId"))
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("invalid bookingId %v", c.Params("bookingId")))
	}

	type StatusRequest struct {
		Status string `json:"status"`
	}

	request := new(StatusRequest)
	if jsonErr := c.BodyParser(request); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable status parameters: %v", jsonErr))
	}
	if !model.IsValidBookingStatus(request.Status) {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unknown booking status %v", request.Status))
	}

	updateErr := h.Ledger.UpdateBookingStatus(bookingId, request.Status)
	if stderrors.Is(updateErr, ledger.ErrNotFound) {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("booking %v not found", bookingId))
	}
	if updateErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", updateErr))
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "booking status updated",
		"data":    fmt.Sprintf("booking %v is now %v", bookingId, request.Status)})
}
