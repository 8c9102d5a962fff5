package handlers

import (
	"strconv"

	"travel-agency/database"
	"travel-agency/documents"
	"travel-agency/ledger"
	"travel-agency/queries"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Handler holds the storage components. Everything is constructed in main
// and injected here, nothing global.
type Handler struct {
	Store   *database.Store
	Ledger  *ledger.Ledger
	Queries *queries.Queries
	Docs    *documents.Store
}

func New(store *database.Store, docs *documents.Store) *Handler {
	return &Handler{
		Store:   store,
		Ledger:  ledger.New(store),
		Queries: queries.New(store),
		Docs:    docs,
	}
}

func parseId(raw string) (int, error) {
	return strconv.Atoi(raw)
}

func isAdminRole(c *fiber.Ctx) bool {
	token := c.Locals("identity").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	return claims["role"].(string) == "admin"
}
