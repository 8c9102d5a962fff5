package database

import (
	"os"
	"path/filepath"
	"testing"

	"travel-agency/model"

	"github.com/stretchr/testify/assert"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("cannot create store: %v", err)
	}
	return store
}

func TestNewStoreBootstrapsEmptyCollections(t *testing.T) {
	store := newTestStore(t)

	assert.Equal(t, []model.Trip{}, store.LoadTrips())
	assert.Equal(t, []model.Client{}, store.LoadClients())
	assert.Equal(t, []model.Booking{}, store.LoadBookings())
}

func TestCommitAndLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	trips := []model.Trip{
		{Id: 1, Name: "عمرة رمضان", Destination: "مكة المكرمة", StartDate: "2026-03-01", Price: 85000, Capacity: 40, Status: model.TripStatusPlanning},
		{Id: 2, Name: "اسطنبول", Destination: "تركيا", StartDate: "2026-06-15", Price: 120000, Capacity: 25, Status: model.TripStatusConfirmed},
	}

	assert.NoError(t, store.CommitTrips(trips))
	assert.Equal(t, trips, store.LoadTrips())
}

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	store := newTestStore(t)

	assert.NoError(t, os.Remove(filepath.Join(store.dir, "bookings.json")))
	assert.Equal(t, []model.Booking{}, store.LoadBookings())
}

func TestLoadCorruptFileReturnsEmpty(t *testing.T) {
	store := newTestStore(t)

	corrupt := []byte(`[{"id": 1, "name": "broken`)
	assert.NoError(t, os.WriteFile(filepath.Join(store.dir, "clients.json"), corrupt, 0644))

	assert.Equal(t, []model.Client{}, store.LoadClients())
}

func TestCommitLeavesNoTempFiles(t *testing.T) {
	store := newTestStore(t)

	assert.NoError(t, store.CommitBookings([]model.Booking{{Id: 1, ClientId: 1, TripId: 1}}))

	leftovers, err := filepath.Glob(filepath.Join(store.dir, ".*.tmp"))
	assert.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestNextIdEmptyCollection(t *testing.T) {
	assert.Equal(t, 1, NextId([]model.Booking{}))
}

func TestNextIdIsGreaterThanEveryExistingId(t *testing.T) {
	bookings := []model.Booking{{Id: 2}, {Id: 7}, {Id: 5}}

	nextId := NextId(bookings)

	for _, booking := range bookings {
		assert.Greater(t, nextId, booking.Id)
	}
	assert.Equal(t, 8, nextId)
}

func TestNextIdSurvivesInteriorDeletion(t *testing.T) {
	// after a cascade delete the record with the highest id can sit in the
	// middle of the collection
	bookings := []model.Booking{{Id: 1}, {Id: 9}, {Id: 3}}

	assert.Equal(t, 10, NextId(bookings))
}
