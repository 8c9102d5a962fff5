package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const TRIPS_COLLECTION string = "trips"
const CLIENTS_COLLECTION string = "clients"
const BOOKINGS_COLLECTION string = "bookings"

const DEFAULT_DATA_DIR string = "./data"
const PASSPORTS_SUBDIR string = "public/uploads/passports"

// The desktop app ships with a single operator account.
const ADMIN_LOGIN string = "admin"
const DEFAULT_ADMIN_PASSWORD string = "admin123"

func GetSecret(key string) (string, error) {
	val, exist := os.LookupEnv(key)
	if exist {
		return val, nil
	}
	return "", fmt.Errorf("no env variable with key %v", key)
}

// DataDir resolves the directory holding the collection files,
// TRAVEL_DATA_DIR overrides the default next to the binary.
func DataDir() string {
	dir := strings.TrimSpace(os.Getenv("TRAVEL_DATA_DIR"))
	if dir == "" {
		dir = DEFAULT_DATA_DIR
	}
	return dir
}

func PassportsDir() string {
	return filepath.Join(DataDir(), PASSPORTS_SUBDIR)
}

func AppAddr() string {
	addr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if addr == "" {
		addr = "127.0.0.1:8080"
	}
	return addr
}
