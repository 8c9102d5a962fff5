package ledger

import (
	"errors"
	"fmt"
	"log"
	"time"

	"travel-agency/database"
	"travel-agency/model"
)

// ErrNotFound is returned when an operation targets a record id that does
// not exist in its collection.
var ErrNotFound = errors.New("record not found")

// Ledger is the only write path that touches more than one collection. It
// creates bookings and keeps the derived fields on clients and trips
// (totalSpent, totalBookings, booked count) in line with the booking list.
type Ledger struct {
	store *database.Store
}

func New(store *database.Store) *Ledger {
	return &Ledger{store: store}
}

// CreateBooking validates the input, persists the new booking and then
// best-effort updates the client and trip aggregates. The booking itself is
// the source of truth: a missed aggregate update is logged, never rolled
// back, and RecomputeAggregates can repair it later.
func (l *Ledger) CreateBooking(clientId, tripId int, totalAmount, paidAmount float64, notes string) (model.Booking, error) {
	if clientId <= 0 {
		return model.Booking{}, fmt.Errorf("invalid clientId %v", clientId)
	}
	if tripId <= 0 {
		return model.Booking{}, fmt.Errorf("invalid tripId %v", tripId)
	}
	if totalAmount < 0 || paidAmount < 0 {
		return model.Booking{}, errors.New("booking amounts cannot be negative")
	}

	bookings := l.store.LoadBookings()

	newBooking := model.Booking{
		Id:            database.NextId(bookings),
		ClientId:      clientId,
		TripId:        tripId,
		TotalAmount:   totalAmount,
		PaidAmount:    paidAmount,
		BookingDate:   time.Now().Format("2006-01-02"),
		Status:        model.BookingStatusPending,
		PaymentStatus: model.PaymentStatusFor(paidAmount, totalAmount),
		Notes:         notes,
	}

	bookings = append(bookings, newBooking)
	if err := l.store.CommitBookings(bookings); err != nil {
		return model.Booking{}, err
	}

	l.propagateToClient(clientId, paidAmount)
	l.propagateToTrip(tripId)

	return newBooking, nil
}

func (l *Ledger) propagateToClient(clientId int, paidAmount float64) {
	clients := l.store.LoadClients()
	for clientIndex, client := range clients {
		if client.Id == clientId {
			clients[clientIndex].TotalSpent += paidAmount
			clients[clientIndex].TotalBookings += 1
			if err := l.store.CommitClients(clients); err != nil {
				log.Printf("failed to persist aggregates for client %v: %v", clientId, err)
			}
			return
		}
	}
	log.Printf("booking references unknown client %v, aggregates not updated", clientId)
}

func (l *Ledger) propagateToTrip(tripId int) {
	trips := l.store.LoadTrips()
	for tripIndex, trip := range trips {
		if trip.Id == tripId {
			trips[tripIndex].Booked += 1
			if err := l.store.CommitTrips(trips); err != nil {
				log.Printf("failed to persist booked count for trip %v: %v", tripId, err)
			}
			return
		}
	}
	log.Printf("booking references unknown trip %v, booked count not updated", tripId)
}

// UpdateBookingStatus overwrites the status of one booking. Payment status
// is untouched here.
func (l *Ledger) UpdateBookingStatus(bookingId int, status string) error {
	bookings := l.store.LoadBookings()
	for bookingIndex, booking := range bookings {
		if booking.Id == bookingId {
			bookings[bookingIndex].Status = status
			return l.store.CommitBookings(bookings)
		}
	}
	return ErrNotFound
}

// DeleteClient removes the client and every booking that references it, so
// no orphaned bookings remain. The two collection rewrites are independent:
// a crash in between leaves bookings to be cleaned up by a retry.
func (l *Ledger) DeleteClient(clientId int) error {
	clients := l.store.LoadClients()
	remainingClients := []model.Client{}
	for _, client := range clients {
		if client.Id != clientId {
			remainingClients = append(remainingClients, client)
		}
	}
	if err := l.store.CommitClients(remainingClients); err != nil {
		return err
	}

	bookings := l.store.LoadBookings()
	remainingBookings := []model.Booking{}
	for _, booking := range bookings {
		if booking.ClientId != clientId {
			remainingBookings = append(remainingBookings, booking)
		}
	}
	return l.store.CommitBookings(remainingBookings)
}

// RecomputeAggregates rebuilds every derived field from the booking list.
// This is the repair path for aggregates left stale by a crash between the
// booking write and the propagation writes.
func (l *Ledger) RecomputeAggregates() error {
	bookings := l.store.LoadBookings()

	spentByClient := map[int]float64{}
	bookingsByClient := map[int]int{}
	bookedByTrip := map[int]int{}
	for _, booking := range bookings {
		spentByClient[booking.ClientId] += booking.PaidAmount
		bookingsByClient[booking.ClientId] += 1
		bookedByTrip[booking.TripId] += 1
	}

	clients := l.store.LoadClients()
	for clientIndex, client := range clients {
		clients[clientIndex].TotalSpent = spentByClient[client.Id]
		clients[clientIndex].TotalBookings = bookingsByClient[client.Id]
	}
	if err := l.store.CommitClients(clients); err != nil {
		return err
	}

	trips := l.store.LoadTrips()
	for tripIndex, trip := range trips {
		trips[tripIndex].Booked = bookedByTrip[trip.Id]
	}
	return l.store.CommitTrips(trips)
}
