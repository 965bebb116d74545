package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hostel-backend/config"
	"hostel-backend/controllers"
	"hostel-backend/models"
	"hostel-backend/services"
)

type apiTest struct {
	router *gin.Engine
	db     *gorm.DB
}

func newAPITest(t *testing.T) *apiTest {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, config.Migrate(db))

	auth := services.NewAuthService(db, "test-secret")
	profiles := services.NewProfileService(db)
	rooms := services.NewRoomService(db)
	bookings := services.NewBookingService(db)
	dashboard := services.NewDashboardService()

	router := SetupRouter(
		controllers.NewRoomController(rooms),
		controllers.NewUserController(auth, profiles, bookings, dashboard),
		controllers.NewBookingController(bookings),
		auth,
	)
	return &apiTest{router: router, db: db}
}

func (a *apiTest) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func (a *apiTest) register(t *testing.T, email string) string {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/users/register", "", gin.H{
		"name":      "Jane Student",
		"email":     email,
		"password":  "hunter22",
		"studentId": "ST-001",
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	body := decode(t, w)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func (a *apiTest) seedRoom(t *testing.T, available bool) models.Room {
	t.Helper()
	room := models.Room{
		Name:       "Single Room",
		HostelName: "Maraga Hostel",
		Price:      16000,
		Capacity:   1,
		Available:  available,
	}
	require.NoError(t, a.db.Create(&room).Error)
	return room
}

func TestHealthEndpoint(t *testing.T) {
	api := newAPITest(t)

	w := api.do(t, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
}

func TestProtectedEndpointsRequireToken(t *testing.T) {
	api := newAPITest(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/users/me"},
		{http.MethodGet, "/api/users/dashboard"},
		{http.MethodPut, "/api/users/profile"},
		{http.MethodGet, "/api/bookings/my-bookings"},
		{http.MethodPost, "/api/bookings"},
		{http.MethodDelete, "/api/bookings/1"},
	}
	for _, p := range paths {
		w := api.do(t, p.method, p.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", p.method, p.path)
		assert.Equal(t, "No authorization header", decode(t, w)["message"])
	}

	w := api.do(t, http.MethodGet, "/api/users/me", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid token", decode(t, w)["message"])
}

func TestRegisterLoginMe(t *testing.T) {
	api := newAPITest(t)
	token := api.register(t, "jane@example.com")

	w := api.do(t, http.MethodPost, "/api/users/login", "", gin.H{
		"email":    "jane@example.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, w.Code)
	login := decode(t, w)
	assert.NotEmpty(t, login["token"])

	w = api.do(t, http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decode(t, w)
	assert.Equal(t, "jane@example.com", me["email"])
	assert.Equal(t, "Jane Student", me["name"])
	assert.Equal(t, "ST-001", me["studentId"])
}

func TestLoginWrongPassword(t *testing.T) {
	api := newAPITest(t)
	api.register(t, "jane@example.com")

	w := api.do(t, http.MethodPost, "/api/users/login", "", gin.H{
		"email":    "jane@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid login credentials", decode(t, w)["message"])
}

func TestRoomListingAndDetail(t *testing.T) {
	api := newAPITest(t)
	room := api.seedRoom(t, true)
	api.seedRoom(t, false)

	w := api.do(t, http.MethodGet, "/api/rooms", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rooms []models.Room
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	assert.Len(t, rooms, 2)

	w = api.do(t, http.MethodGet, "/api/rooms?available=true", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	assert.Len(t, rooms, 1)

	w = api.do(t, http.MethodGet, "/api/rooms/featured", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	assert.Len(t, rooms, 1)

	w = api.do(t, http.MethodGet, fmt.Sprintf("/api/rooms/%d", room.ID), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.do(t, http.MethodGet, "/api/rooms/9999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Room not found", decode(t, w)["message"])
}

func TestBookingLifecycle(t *testing.T) {
	api := newAPITest(t)
	token := api.register(t, "jane@example.com")
	room := api.seedRoom(t, true)

	checkIn := time.Now().AddDate(0, 1, 0).Format("2006-01-02")
	checkOut := time.Now().AddDate(0, 5, 0).Format("2006-01-02")

	w := api.do(t, http.MethodPost, "/api/bookings", token, gin.H{
		"roomId":          room.ID,
		"checkInDate":     checkIn,
		"checkOutDate":    checkOut,
		"specialRequests": "near the stairwell",
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	created := decode(t, w)
	assert.Equal(t, "confirmed", created["status"])
	bookingID := uint(created["id"].(float64))

	// the room flips to unavailable with the booking
	w = api.do(t, http.MethodGet, fmt.Sprintf("/api/rooms/%d", room.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["available"])

	// a second booking against the same room conflicts
	w = api.do(t, http.MethodPost, "/api/bookings", token, gin.H{
		"roomId":       room.ID,
		"checkInDate":  checkIn,
		"checkOutDate": checkOut,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Room is not available", decode(t, w)["message"])

	// my-bookings carries the room embedded
	w = api.do(t, http.MethodGet, "/api/bookings/my-bookings", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var bookings []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bookings))
	require.Len(t, bookings, 1)
	embedded, _ := bookings[0]["rooms"].(map[string]any)
	require.NotNil(t, embedded)
	assert.Equal(t, "Maraga Hostel", embedded["hostel_name"])

	// dashboard counts the stay as active
	w = api.do(t, http.MethodGet, "/api/users/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode(t, w)
	assert.EqualValues(t, 1, stats["activeBookings"])
	assert.EqualValues(t, 0, stats["pastBookings"])
	assert.NotEmpty(t, stats["upcomingCheckIn"])

	// cancel frees the room again
	w = api.do(t, http.MethodDelete, fmt.Sprintf("/api/bookings/%d", bookingID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cancelled := decode(t, w)
	assert.Equal(t, true, cancelled["success"])

	w = api.do(t, http.MethodGet, fmt.Sprintf("/api/rooms/%d", room.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["available"])

	w = api.do(t, http.MethodGet, "/api/bookings/my-bookings", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bookings))
	assert.Len(t, bookings, 0)
}

func TestCancelForeignBookingLooksMissing(t *testing.T) {
	api := newAPITest(t)
	owner := api.register(t, "owner@example.com")
	other := api.register(t, "other@example.com")
	room := api.seedRoom(t, true)

	w := api.do(t, http.MethodPost, "/api/bookings", owner, gin.H{
		"roomId":       room.ID,
		"checkInDate":  "2024-09-01",
		"checkOutDate": "2024-12-20",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	bookingID := uint(decode(t, w)["id"].(float64))

	w = api.do(t, http.MethodDelete, fmt.Sprintf("/api/bookings/%d", bookingID), other, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Booking not found", decode(t, w)["message"])

	// no state change: room stays taken, booking stays alive
	w = api.do(t, http.MethodGet, fmt.Sprintf("/api/rooms/%d", room.ID), "", nil)
	assert.Equal(t, false, decode(t, w)["available"])
	w = api.do(t, http.MethodGet, "/api/bookings/my-bookings", owner, nil)
	var bookings []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bookings))
	assert.Len(t, bookings, 1)
}

func TestCreateBookingValidation(t *testing.T) {
	api := newAPITest(t)
	token := api.register(t, "jane@example.com")
	room := api.seedRoom(t, true)

	// malformed date fails the bookdate binding rule
	w := api.do(t, http.MethodPost, "/api/bookings", token, gin.H{
		"roomId":       room.ID,
		"checkInDate":  "01/09/2024",
		"checkOutDate": "2024-12-20",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// missing room id
	w = api.do(t, http.MethodPost, "/api/bookings", token, gin.H{
		"checkInDate":  "2024-09-01",
		"checkOutDate": "2024-12-20",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown room
	w = api.do(t, http.MethodPost, "/api/bookings", token, gin.H{
		"roomId":       9999,
		"checkInDate":  "2024-09-01",
		"checkOutDate": "2024-12-20",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProfile(t *testing.T) {
	api := newAPITest(t)
	token := api.register(t, "jane@example.com")

	w := api.do(t, http.MethodPut, "/api/users/profile", token, gin.H{
		"name":             "Jane S. Student",
		"studentId":        "ST-002",
		"emergencyContact": "John Student",
		"emergencyPhone":   "0700000000",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Jane S. Student", body["name"])
	assert.Equal(t, "ST-002", body["studentId"])
	assert.Equal(t, "John Student", body["emergencyContact"])

	// name and student id are required
	w = api.do(t, http.MethodPut, "/api/users/profile", token, gin.H{
		"name": "Jane",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Name and Student ID are required", decode(t, w)["message"])
}

func TestParseCorsOrigins(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "")
	assert.Equal(t, []string{"*"}, parseCorsOrigins())

	t.Setenv("CORS_ORIGINS", "https://hostel.example, https://admin.example ,")
	assert.Equal(t, []string{"https://hostel.example", "https://admin.example"}, parseCorsOrigins())
}
