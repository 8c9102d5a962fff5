package handlers

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"travel-agency/database"
	"travel-agency/documents"
	"travel-agency/errors"
	"travel-agency/model"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetClients(c *fiber.Ctx) error {
	clientsJson, jsonErr := json.MarshalIndent(h.Store.LoadClients(), "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(clientsJson))
}

func (h *Handler) CreateClient(c *fiber.Ctx) error {
	newClient := new(model.Client)
	if jsonErr := c.BodyParser(newClient); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable client parameters: %v", jsonErr))
	}

	newClient.Name = strings.TrimSpace(newClient.Name)
	if newClient.Name == "" {
		return errors.RaiseBadRequestError(c, "client name is required")
	}

	clients := h.Store.LoadClients()

	newClient.Id = database.NextId(clients)
	newClient.TotalBookings = 0
	newClient.TotalSpent = 0
	newClient.Documents = []string{}

	clients = append(clients, *newClient)
	if commitErr := h.Store.CommitClients(clients); commitErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", commitErr))
	}

	newClientJson, jsonErr := json.MarshalIndent(newClient, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(newClientJson))
}

// DeleteClient removes the client and cascades to every booking that
// references it.
func (h *Handler) DeleteClient(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}

	clientId, err := parseId(c.Params("clientId"))
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("invalid clientId %v", c.Params("clientId")))
	}

	if deleteErr := h.Ledger.DeleteClient(clientId); deleteErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", deleteErr))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "entity deleted",
		"data":    fmt.Sprintf("client with id %v and its bookings were deleted", clientId)})
}

// GetClientPassport streams back the passport file stored for the client.
func (h *Handler) GetClientPassport(c *fiber.Ctx) error {
	client, found := h.findClient(c.Params("clientId"))
	if !found {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("client %v not found", c.Params("clientId")))
	}

	path, retrieveErr := h.Docs.Retrieve(client.Name)
	if stderrors.Is(retrieveErr, documents.ErrNotFound) {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("no passport file stored for client %v", client.Name))
	}
	if retrieveErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("passport lookup error: %v", retrieveErr))
	}

	return c.SendFile(path)
}

// UploadClientPassport stores the uploaded file under the sanitized client
// name and records the stored file name on the client record. Re-uploading
// with the same extension overwrites the previous file.
func (h *Handler) UploadClientPassport(c *fiber.Ctx) error {
	client, found := h.findClient(c.Params("clientId"))
	if !found {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("client %v not found", c.Params("clientId")))
	}

	fileHeader, formErr := c.FormFile("passport")
	if formErr != nil {
		return errors.RaiseBadRequestError(c, "passport file is missing from the request")
	}

	file, openErr := fileHeader.Open()
	if openErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("cannot open uploaded file: %v", openErr))
	}
	defer file.Close()

	fileBytes, readErr := io.ReadAll(file)
	if readErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("cannot read uploaded file: %v", readErr))
	}

	ext := filepath.Ext(fileHeader.Filename)
	path, storeErr := h.Docs.Store(client.Name, fileBytes, ext)
	if storeErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("cannot store passport file: %v", storeErr))
	}

	h.recordDocument(client.Id, filepath.Base(path))

	return c.JSON(fiber.Map{"status": "success", "message": "passport stored", "data": path})
}

func (h *Handler) findClient(rawId string) (model.Client, bool) {
	clientId, err := parseId(rawId)
	if err != nil {
		return model.Client{}, false
	}
	for _, client := range h.Store.LoadClients() {
		if client.Id == clientId {
			return client, true
		}
	}
	return model.Client{}, false
}

// recordDocument appends the stored file name to the client's document list
// unless it is already there. Failures only cost the reference, the file
// itself is already on disk.
func (h *Handler) recordDocument(clientId int, storedName string) {
	clients := h.Store.LoadClients()
	for clientIndex, client := range clients {
		if client.Id != clientId {
			continue
		}
		for _, doc := range client.Documents {
			if doc == storedName {
				return
			}
		}
		clients[clientIndex].Documents = append(clients[clientIndex].Documents, storedName)
		if err := h.Store.CommitClients(clients); err != nil {
			log.Printf("failed to record document %v on client %v: %v", storedName, clientId, err)
		}
		return
	}
}
