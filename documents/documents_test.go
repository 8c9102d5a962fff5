package documents

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "public", "uploads", "passports"))
	if err != nil {
		t.Fatalf("cannot create document store: %v", err)
	}
	return store
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		description string
		input       string
		expected    string
	}{
		{"latin name with space", "Ahmed Ali", "Ahmed_Ali"},
		{"arabic name is preserved", "أحمد علي", "أحمد_علي"},
		{"accents are stripped", "José Müller", "Jose_Muller"},
		{"punctuation becomes underscore", "O'Brien / Smith", "O_Brien___Smith"},
		{"digits are kept", "Client 42", "Client_42"},
	}

	for _, test := range tests {
		assert.Equalf(t, test.expected, SanitizeName(test.input), test.description)
	}
}

func TestStoreRetrieveRoundTrip(t *testing.T) {
	store := newTestStore(t)

	passportBytes := []byte("passport scan bytes")
	storedPath, err := store.Store("Ahmed Ali", passportBytes, ".pdf")
	assert.NoError(t, err)
	assert.Equal(t, "client_Ahmed_Ali.pdf", filepath.Base(storedPath))

	retrievedPath, err := store.Retrieve("Ahmed Ali")
	assert.NoError(t, err)
	assert.Equal(t, storedPath, retrievedPath)

	retrievedBytes, err := os.ReadFile(retrievedPath)
	assert.NoError(t, err)
	assert.Equal(t, passportBytes, retrievedBytes)
}

func TestStoreOverwritesInsteadOfDuplicating(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Store("Ahmed Ali", []byte("first upload"), "pdf")
	assert.NoError(t, err)
	storedPath, err := store.Store("Ahmed Ali", []byte("second upload"), "pdf")
	assert.NoError(t, err)

	files, err := filepath.Glob(filepath.Join(store.dir, "client_Ahmed_Ali.*"))
	assert.NoError(t, err)
	assert.Len(t, files, 1)

	storedBytes, err := os.ReadFile(storedPath)
	assert.NoError(t, err)
	assert.Equal(t, []byte("second upload"), storedBytes)
}

func TestStoreDefaultsExtension(t *testing.T) {
	store := newTestStore(t)

	storedPath, err := store.Store("Ahmed Ali", []byte("photo"), "")
	assert.NoError(t, err)
	assert.Equal(t, "client_Ahmed_Ali.jpg", filepath.Base(storedPath))
}

func TestRetrieveUnknownClient(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Retrieve("Nobody Here")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreRequiresName(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Store("   ", []byte("bytes"), "pdf")
	assert.Error(t, err)
}
