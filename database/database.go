package database

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"travel-agency/config"
	"travel-agency/model"

	"github.com/google/uuid"
)

// Record is anything stored in a collection file under an integer id.
type Record interface {
	Identifier() int
}

// Store owns the collection files (trips.json, clients.json, bookings.json)
// under one data directory. It is constructed once in main and passed down,
// there is no package level instance.
type Store struct {
	dir   string
	locks map[string]*sync.Mutex
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create data directory %v: %v", dir, err)
	}

	store := &Store{
		dir: dir,
		locks: map[string]*sync.Mutex{
			config.TRIPS_COLLECTION:    {},
			config.CLIENTS_COLLECTION:  {},
			config.BOOKINGS_COLLECTION: {},
		},
	}

	// bootstrap empty collection files on first run
	for collection := range store.locks {
		path := store.collectionPath(collection)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if writeErr := os.WriteFile(path, []byte("[]"), 0644); writeErr != nil {
				return nil, writeErr
			}
		}
	}

	return store, nil
}

func (s *Store) collectionPath(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// readCollection loads a whole collection file. A missing or unparsable file
// reads as an empty collection so a fresh install just works.
func readCollection[T any](s *Store, collection string) []T {
	records := []T{}

	fileBytes, err := os.ReadFile(s.collectionPath(collection))
	if err != nil {
		return records
	}

	if err := json.Unmarshal(fileBytes, &records); err != nil {
		return []T{}
	}

	return records
}

// commitCollection replaces the whole collection file. The payload goes to a
// temp file first and is renamed over the original so a crash mid-write
// cannot truncate the collection.
func commitCollection[T any](s *Store, collection string, records []T) error {
	mu := s.locks[collection]
	mu.Lock()
	defer mu.Unlock()

	recordsBytes, err := json.MarshalIndent(records, "", "	")
	if err != nil {
		return err
	}

	tmpPath := filepath.Join(s.dir, fmt.Sprintf(".%v-%v.tmp", collection, uuid.NewString()))
	if err := os.WriteFile(tmpPath, recordsBytes, 0644); err != nil {
		return err
	}

	if err := os.Rename(tmpPath, s.collectionPath(collection)); err != nil {
		os.Remove(tmpPath)
		return err
	}

	return nil
}

func (s *Store) LoadTrips() []model.Trip {
	return readCollection[model.Trip](s, config.TRIPS_COLLECTION)
}

func (s *Store) CommitTrips(trips []model.Trip) error {
	return commitCollection(s, config.TRIPS_COLLECTION, trips)
}

func (s *Store) LoadClients() []model.Client {
	return readCollection[model.Client](s, config.CLIENTS_COLLECTION)
}

func (s *Store) CommitClients(clients []model.Client) error {
	return commitCollection(s, config.CLIENTS_COLLECTION, clients)
}

func (s *Store) LoadBookings() []model.Booking {
	return readCollection[model.Booking](s, config.BOOKINGS_COLLECTION)
}

func (s *Store) CommitBookings(bookings []model.Booking) error {
	return commitCollection(s, config.BOOKINGS_COLLECTION, bookings)
}

// NextId allocates the next identifier as max-of-all + 1 rather than
// last-element + 1. The delete-client cascade removes bookings from the
// middle of the collection, so the last element is not guaranteed to carry
// the highest id.
func NextId[T Record](records []T) int {
	maxId := 0
	for _, record := range records {
		if record.Identifier() > maxId {
			maxId = record.Identifier()
		}
	}
	return maxId + 1
}
