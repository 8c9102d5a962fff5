package queries

import (
	"time"

	"travel-agency/database"
	"travel-agency/model"
)

// UNKNOWN_LABEL is what the UI shows for a dangling clientId or tripId.
const UNKNOWN_LABEL = "غير معروف"

// Queries answers the read side joins and dashboard aggregates without
// turning the JSON files into a relational engine.
type Queries struct {
	store *database.Store
}

func New(store *database.Store) *Queries {
	return &Queries{store: store}
}

type BookingWithClient struct {
	model.Booking
	Client model.Client `json:"client"`
}

type ClientWithBooking struct {
	model.Client
	Booking model.Booking `json:"booking"`
}

// BookingsForTrip returns the bookings of one trip joined to their clients.
// Bookings whose client no longer exists are dropped silently.
func (q *Queries) BookingsForTrip(tripId int) []BookingWithClient {
	clientsById := q.clientsById()

	result := []BookingWithClient{}
	for _, booking := range q.store.LoadBookings() {
		if booking.TripId != tripId {
			continue
		}
		client, found := clientsById[booking.ClientId]
		if !found {
			continue
		}
		result = append(result, BookingWithClient{Booking: booking, Client: client})
	}
	return result
}

// TripClients returns the clients booked on one trip, each with the booking
// that put them there. Dangling client references are dropped.
func (q *Queries) TripClients(tripId int) []ClientWithBooking {
	clientsById := q.clientsById()

	result := []ClientWithBooking{}
	for _, booking := range q.store.LoadBookings() {
		if booking.TripId != tripId {
			continue
		}
		client, found := clientsById[booking.ClientId]
		if !found {
			continue
		}
		result = append(result, ClientWithBooking{Client: client, Booking: booking})
	}
	return result
}

func (q *Queries) ClientName(clientId int) string {
	for _, client := range q.store.LoadClients() {
		if client.Id == clientId {
			return client.Name
		}
	}
	return UNKNOWN_LABEL
}

func (q *Queries) TripName(tripId int) string {
	for _, trip := range q.store.LoadTrips() {
		if trip.Id == tripId {
			return trip.Name
		}
	}
	return UNKNOWN_LABEL
}

// TotalRevenue sums the paid amount over every booking.
func (q *Queries) TotalRevenue() float64 {
	var total float64 = 0
	for _, booking := range q.store.LoadBookings() {
		total += booking.PaidAmount
	}
	return total
}

// PendingPaymentsCount counts bookings that are not fully paid yet.
func (q *Queries) PendingPaymentsCount() int {
	count := 0
	for _, booking := range q.store.LoadBookings() {
		if booking.PaymentStatus != model.PaymentFullyPaid {
			count++
		}
	}
	return count
}

// PendingBookingsCount counts bookings still waiting for confirmation.
func (q *Queries) PendingBookingsCount() int {
	count := 0
	for _, booking := range q.store.LoadBookings() {
		if booking.Status == model.BookingStatusPending {
			count++
		}
	}
	return count
}

// BookingsOnDate counts bookings created on the given ISO date.
func (q *Queries) BookingsOnDate(date string) int {
	count := 0
	for _, booking := range q.store.LoadBookings() {
		if booking.BookingDate == date {
			count++
		}
	}
	return count
}

// UpcomingTrips returns the trips whose start date lies strictly in the
// future. Trips with an unparsable start date are not upcoming.
func (q *Queries) UpcomingTrips() []model.Trip {
	now := time.Now()

	upcoming := []model.Trip{}
	for _, trip := range q.store.LoadTrips() {
		startDate, err := time.Parse("2006-01-02", trip.StartDate)
		if err != nil {
			continue
		}
		if startDate.After(now) {
			upcoming = append(upcoming, trip)
		}
	}
	return upcoming
}

func (q *Queries) clientsById() map[int]model.Client {
	clientsById := map[int]model.Client{}
	for _, client := range q.store.LoadClients() {
		clientsById[client.Id] = client
	}
	return clientsById
}
