// services/dashboard_service.go
package services

import (
	"math"
	"time"

	"hostel-backend/models"
)

const (
	// SemesterDays is the fixed billing period length.
	SemesterDays = 120
	// SemesterPrice is the flat per-semester rate in Ksh.
	SemesterPrice = 16000
)

// DashboardStats summarizes a user's booking set against a point in time.
// The upcoming fields are omitted from JSON when no booking qualifies.
type DashboardStats struct {
	ActiveBookings   int        `json:"activeBookings"`
	PastBookings     int        `json:"pastBookings"`
	UpcomingCheckIn  *time.Time `json:"upcomingCheckIn,omitempty"`
	UpcomingCheckOut *time.Time `json:"upcomingCheckOut,omitempty"`
}

// DashboardService derives dashboard statistics and stay prices. It is pure:
// no storage access, no side effects.
type DashboardService struct{}

func NewDashboardService() *DashboardService {
	return &DashboardService{}
}

// Summarize counts active and past bookings and picks the upcoming check-in
// and check-out dates.
//
// The "upcoming" fields take the FIRST qualifying booking in input order,
// not the chronologically nearest one. Callers pass bookings newest-created
// first, so with several future bookings the reported date can differ from
// the soonest stay. Deliberately preserved as-is pending product
// clarification; do not sort here.
//
// Bookings with a missing check-in or check-out date are excluded from all
// four computations.
func (s *DashboardService) Summarize(bookings []models.Booking, now time.Time) DashboardStats {
	var stats DashboardStats

	for _, b := range bookings {
		if b.CheckInDate == nil || b.CheckOutDate == nil {
			continue
		}
		checkIn := *b.CheckInDate
		checkOut := *b.CheckOutDate

		if checkOut.Before(now) {
			stats.PastBookings++
		} else {
			stats.ActiveBookings++
		}

		if stats.UpcomingCheckIn == nil && !checkIn.Before(now) {
			stats.UpcomingCheckIn = b.CheckInDate
		}
		if stats.UpcomingCheckOut == nil && !checkOut.Before(now) && !checkIn.After(now) {
			stats.UpcomingCheckOut = b.CheckOutDate
		}
	}

	return stats
}

// PriceForStay charges whole semesters: the day count rounds up to at least
// one day, and the semester count rounds up to at least one semester, so
// even a one-night stay costs a full semester.
func (s *DashboardService) PriceForStay(checkIn, checkOut time.Time) int {
	hours := math.Abs(checkOut.Sub(checkIn).Hours())
	days := int(math.Ceil(hours / 24))
	if days < 1 {
		days = 1
	}
	semesters := (days + SemesterDays - 1) / SemesterDays
	if semesters < 1 {
		semesters = 1
	}
	return semesters * SemesterPrice
}
