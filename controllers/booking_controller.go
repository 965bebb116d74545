package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hostel-backend/services"
	"hostel-backend/utils"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{Bookings: bookings}
}

type createBookingPayload struct {
	RoomID          uint   `json:"roomId" binding:"required"`
	CheckInDate     string `json:"checkInDate" binding:"required,bookdate"`
	CheckOutDate    string `json:"checkOutDate" binding:"required,bookdate"`
	SpecialRequests string `json:"specialRequests"`
	TotalPrice      int    `json:"totalPrice"`
}

// ParseBookingDate accepts the date-only form the booking form submits and
// the RFC3339 form older clients sent.
func ParseBookingDate(raw string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// ----------------------------------------------------
// 1. Create Booking (POST /api/bookings)
// ----------------------------------------------------

func (bc *BookingController) CreateBooking(c *gin.Context) {
	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	checkIn, ok := ParseBookingDate(payload.CheckInDate)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid check-in date")
		return
	}
	checkOut, ok := ParseBookingDate(payload.CheckOutDate)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid check-out date")
		return
	}

	booking, err := bc.Bookings.Create(services.CreateBookingInput{
		UserID:          c.GetUint("userID"),
		RoomID:          payload.RoomID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		SpecialRequests: payload.SpecialRequests,
		TotalPrice:      payload.TotalPrice,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// ----------------------------------------------------
// 2. Cancel Booking (DELETE /api/bookings/:id)
// ----------------------------------------------------

func (bc *BookingController) CancelBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Booking not found")
		return
	}

	bookingID, err := bc.Bookings.Cancel(c.GetUint("userID"), uint(id))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Booking cancelled successfully",
		"bookingId": bookingID,
	})
}

// ----------------------------------------------------
// 3. My Bookings (GET /api/bookings/my-bookings)
// ----------------------------------------------------

func (bc *BookingController) GetMyBookings(c *gin.Context) {
	bookings, err := bc.Bookings.ListForUser(c.GetUint("userID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
