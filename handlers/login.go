package handlers

import (
	"log"
	"os"
	"sync"
	"time"

	"travel-agency/config"
	"travel-agency/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
)

var (
	adminHashOnce     sync.Once
	adminPasswordHash []byte
)

// adminHash resolves the bcrypt hash of the single operator password.
// ADMIN_PASSWORD_HASH overrides the built-in default credential. Resolved
// lazily so .env loading in main has already happened.
func adminHash() []byte {
	adminHashOnce.Do(func() {
		if hash, exist := os.LookupEnv("ADMIN_PASSWORD_HASH"); exist {
			adminPasswordHash = []byte(hash)
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(config.DEFAULT_ADMIN_PASSWORD), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("cannot hash default admin password: %v", err)
		}
		adminPasswordHash = hash
	})
	return adminPasswordHash
}

func isPasswordHashCorrect(hash []byte, pass string) bool {
	err := bcrypt.CompareHashAndPassword(hash, []byte(pass))
	return err == nil
}

func (h *Handler) Login(c *fiber.Ctx) error {
	type Credentials struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}

	var creds = new(Credentials)

	if err := c.BodyParser(&creds); err != nil {
		return errors.RaiseBadRequestError(c, "cannot parse credentials")
	}

	if creds.Login != config.ADMIN_LOGIN || !isPasswordHashCorrect(adminHash(), creds.Password) {
		return errors.RaiseUnauthorizedError(c, "wrong login or password")
	}

	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = creds.Login
	claims["exp"] = time.Now().Add(time.Hour * 8).Unix()
	claims["role"] = "admin"

	sign, enverr := config.GetSecret("SIGN")
	if enverr != nil {
		log.Print(enverr)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	t, err := token.SignedString([]byte(sign))
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Success login", "data": t})
}
