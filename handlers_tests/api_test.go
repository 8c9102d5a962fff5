package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"testing"

	"travel-agency/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func loginToken(t *testing.T, app *fiber.App) string {
	t.Helper()

	req, _ := http.NewRequest(
		"POST",
		"/login",
		bytes.NewBufferString("{\"login\":\"admin\",\"password\":\"admin123\"}"))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req, -1)
	if err != nil || res.StatusCode != 200 {
		t.Fatalf("login failed: %v (status %v)", err, res.StatusCode)
	}

	var envelope struct {
		Data string `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		t.Fatalf("cannot decode login response: %v", err)
	}
	return envelope.Data
}

func doJson(t *testing.T, app *fiber.App, token, method, route, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req, _ := http.NewRequest(method, route, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%v %v failed: %v", method, route, err)
	}
	return res
}

func decodeBody(t *testing.T, res *http.Response, out any) {
	t.Helper()
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		t.Fatalf("cannot decode response body: %v", err)
	}
}

func TestBookingLifecycleOverTheApi(t *testing.T) {
	app := newTestApp(t)
	token := loginToken(t, app)

	// create a trip
	res := doJson(t, app, token, "POST", "/trips",
		`{"name":"عمرة رمضان","destination":"مكة المكرمة","startDate":"2030-03-01","endDate":"2030-03-15","price":85000,"capacity":40}`)
	assert.Equal(t, 200, res.StatusCode)

	var trip model.Trip
	decodeBody(t, res, &trip)
	assert.Equal(t, 1, trip.Id)
	assert.Equal(t, model.TripStatusPlanning, trip.Status)
	assert.Equal(t, 0, trip.Booked)

	// create a client
	res = doJson(t, app, token, "POST", "/clients",
		`{"name":"أحمد علي","phone":"0555123456","email":"ahmed@example.com"}`)
	assert.Equal(t, 200, res.StatusCode)

	var client model.Client
	decodeBody(t, res, &client)
	assert.Equal(t, 1, client.Id)
	assert.Equal(t, 0, client.TotalBookings)

	// book the client on the trip
	res = doJson(t, app, token, "POST", "/bookings",
		fmt.Sprintf(`{"clientId":%v,"tripId":%v,"totalAmount":85000,"paidAmount":20000,"notes":"دفعة أولى"}`, client.Id, trip.Id))
	assert.Equal(t, 200, res.StatusCode)

	var booking model.Booking
	decodeBody(t, res, &booking)
	assert.Equal(t, model.BookingStatusPending, booking.Status)
	assert.Equal(t, model.PaymentPartial, booking.PaymentStatus)

	// client aggregates were propagated
	res = doJson(t, app, token, "GET", "/clients", "")
	var clients []model.Client
	decodeBody(t, res, &clients)
	assert.Equal(t, float64(20000), clients[0].TotalSpent)
	assert.Equal(t, 1, clients[0].TotalBookings)

	// the trip now lists the client
	res = doJson(t, app, token, "GET", fmt.Sprintf("/trips/%v/clients", trip.Id), "")
	var tripClients []model.Client
	decodeBody(t, res, &tripClients)
	assert.Len(t, tripClients, 1)

	// confirm the booking
	res = doJson(t, app, token, "PATCH", fmt.Sprintf("/bookings/%v/status", booking.Id),
		fmt.Sprintf(`{"status":"%v"}`, model.BookingStatusConfirmed))
	assert.Equal(t, 200, res.StatusCode)

	res = doJson(t, app, token, "PATCH", fmt.Sprintf("/bookings/%v/status", booking.Id),
		`{"status":"not-a-status"}`)
	assert.Equal(t, 400, res.StatusCode)

	// stats reflect the ledger
	res = doJson(t, app, token, "GET", "/stats", "")
	assert.Equal(t, 200, res.StatusCode)

	// deleting the client cascades to its bookings
	res = doJson(t, app, token, "DELETE", fmt.Sprintf("/clients/%v", client.Id), "")
	assert.Equal(t, 200, res.StatusCode)

	res = doJson(t, app, token, "GET", "/bookings", "")
	var bookings []model.Booking
	decodeBody(t, res, &bookings)
	assert.Empty(t, bookings)
}

func TestPassportUploadAndDownload(t *testing.T) {
	app := newTestApp(t)
	token := loginToken(t, app)

	res := doJson(t, app, token, "POST", "/clients", `{"name":"Ahmed Ali","phone":"0555123456"}`)
	assert.Equal(t, 200, res.StatusCode)
	var client model.Client
	decodeBody(t, res, &client)

	// passport is missing at first
	res = doJson(t, app, token, "GET", fmt.Sprintf("/clients/%v/passport", client.Id), "")
	assert.Equal(t, 404, res.StatusCode)

	// upload a scan
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("passport", "scan.pdf")
	assert.NoError(t, err)
	_, err = part.Write([]byte("passport scan bytes"))
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	req, _ := http.NewRequest("POST", fmt.Sprintf("/clients/%v/passport", client.Id), body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	uploadRes, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, 200, uploadRes.StatusCode)

	// download it back
	res = doJson(t, app, token, "GET", fmt.Sprintf("/clients/%v/passport", client.Id), "")
	assert.Equal(t, 200, res.StatusCode)

	downloaded, err := io.ReadAll(res.Body)
	assert.NoError(t, err)
	assert.Equal(t, []byte("passport scan bytes"), downloaded)

	// the stored file name was recorded on the client
	res = doJson(t, app, token, "GET", "/clients", "")
	var clients []model.Client
	decodeBody(t, res, &clients)
	assert.Equal(t, []string{"client_Ahmed_Ali.pdf"}, clients[0].Documents)
}
