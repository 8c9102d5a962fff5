package handlers

import (
	"fmt"
	"time"

	"travel-agency/errors"

	"github.com/gofiber/fiber/v2"
)

// GetStats serves the dashboard aggregates, always computed fresh from the
// collection files.
func (h *Handler) GetStats(c *fiber.Ctx) error {
	today := time.Now().Format("2006-01-02")
	upcomingTrips := h.Queries.UpcomingTrips()

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "dashboard stats",
		"data": fiber.Map{
			"totalRevenue":       h.Queries.TotalRevenue(),
			"pendingPayments":    h.Queries.PendingPaymentsCount(),
			"pendingBookings":    h.Queries.PendingBookingsCount(),
			"bookingsToday":      h.Queries.BookingsOnDate(today),
			"upcomingTripsCount": len(upcomingTrips),
			"upcomingTrips":      upcomingTrips,
		}})
}

// RecomputeAggregates rebuilds the derived fields from the booking list.
// This is the repair path for aggregates left stale by a crash between the
// booking write and its propagation.
func (h *Handler) RecomputeAggregates(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}

	if err := h.Ledger.RecomputeAggregates(); err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "aggregates recomputed from the booking ledger",
		"data":    nil})
}
