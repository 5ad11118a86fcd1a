// Package reports provides the reporting engine: sales, user, and attendance
// aggregates composed from the specialized repositories.
package reports

import (
	"time"

	"parkly/internal/core/types"
)

// --- Sales report ---

// SalesReport aggregates paid orders over an inclusive date range.
type SalesReport struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`

	TotalOrders       int64       `json:"totalOrders"`
	TotalTickets      int64       `json:"totalTickets"`
	TotalRevenue      types.Money `json:"totalRevenue"`
	AverageOrderValue types.Money `json:"averageOrderValue"`

	// Daily is ordered by date ascending
	Daily []DailySales `json:"daily"`

	// ByAttraction is ordered by revenue descending
	ByAttraction []AttractionSales `json:"byAttraction"`

	// ByPaymentMethod is ordered by amount descending
	ByPaymentMethod []PaymentMethodSales `json:"byPaymentMethod"`
}

// SalesTotals holds the scalar aggregates of the sales query.
type SalesTotals struct {
	Orders  int64       `db:"orders" json:"orders"`
	Tickets int64       `db:"tickets" json:"tickets"`
	Revenue types.Money `db:"revenue" json:"revenue"`
}

// DailySales is one calendar day of the sales breakdown.
type DailySales struct {
	Date    time.Time   `db:"date" json:"date"`
	Orders  int64       `db:"orders" json:"orders"`
	Tickets int64       `db:"tickets" json:"tickets"`
	Revenue types.Money `db:"revenue" json:"revenue"`
}

// AttractionSales is one attraction's share of ticket sales.
type AttractionSales struct {
	AttractionID   int64       `db:"attraction_id" json:"attractionId"`
	AttractionName string      `db:"attraction_name" json:"attractionName"`
	Tickets        int64       `db:"tickets" json:"tickets"`
	Revenue        types.Money `db:"revenue" json:"revenue"`
	Percentage     float64     `db:"-" json:"percentage"`
}

// PaymentMethodSales is one payment method's share of collected amounts.
type PaymentMethodSales struct {
	Method     string      `db:"method" json:"method"`
	Payments   int64       `db:"payments" json:"payments"`
	Amount     types.Money `db:"amount" json:"amount"`
	Percentage float64     `db:"-" json:"percentage"`
}

// --- User report ---

// UserReport aggregates the client base as of report time.
type UserReport struct {
	TotalClients  int64       `json:"totalClients"`
	ActiveClients int64       `json:"activeClients"`
	NewThisMonth  int64       `json:"newThisMonth"`
	AverageSpend  types.Money `json:"averageSpend"`

	// TopSpenders holds at most ten clients, total spend descending
	TopSpenders []ClientSpend `json:"topSpenders"`

	// Registrations covers the trailing 30 days, date ascending.
	// Days without registrations are omitted, not zero-filled.
	Registrations []DailyRegistrations `json:"registrations"`
}

// ClientTotals holds the scalar aggregates of the user report.
// TotalSpend sums paid orders across the whole client base; the engine
// derives the per-client average from it.
type ClientTotals struct {
	Total        int64       `db:"total" json:"total"`
	Active       int64       `db:"active" json:"active"`
	NewThisMonth int64       `db:"new_this_month" json:"newThisMonth"`
	TotalSpend   types.Money `db:"total_spend" json:"totalSpend"`
}

// ClientSpend is one client's lifetime spend ranking entry.
type ClientSpend struct {
	ClientID   int64       `db:"client_id" json:"clientId"`
	Name       string      `db:"name" json:"name"`
	Email      string      `db:"email" json:"email"`
	Orders     int64       `db:"orders" json:"orders"`
	TotalSpend types.Money `db:"total_spend" json:"totalSpend"`
}

// DailyRegistrations is one day's registration count.
type DailyRegistrations struct {
	Date  time.Time `db:"date" json:"date"`
	Count int64     `db:"count" json:"count"`
}

// --- Attendance report ---

// AttendanceReport aggregates confirmed/used tickets over a date range.
type AttendanceReport struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`

	// TotalVisitors counts distinct visitors across the whole range
	TotalVisitors int64 `json:"totalVisitors"`

	// Peak single day
	PeakDate     time.Time `json:"peakDate"`
	PeakVisitors int64     `json:"peakVisitors"`

	// Daily is ordered by date ascending
	Daily []DailyAttendance `json:"daily"`

	// Hourly always carries all 24 hours (0-23)
	Hourly []HourlyAttendance `json:"hourly"`

	// AgeGroups always carries the four fixed bands
	AgeGroups []AgeGroupAttendance `json:"ageGroups"`
}

// DailyAttendance is one day's distinct visitor count.
type DailyAttendance struct {
	Date     time.Time `db:"date" json:"date"`
	Visitors int64     `db:"visitors" json:"visitors"`
}

// HourlyAttendance is one hour-of-day's distinct visitor count.
type HourlyAttendance struct {
	Hour       int     `db:"hour" json:"hour"`
	Visitors   int64   `db:"visitors" json:"visitors"`
	Percentage float64 `db:"-" json:"percentage"`
}

// AgeGroupAttendance is one age band's visitor count.
type AgeGroupAttendance struct {
	Group      string  `json:"group"`
	Visitors   int64   `json:"visitors"`
	Percentage float64 `json:"percentage"`
}

// Age bands are fixed; visitors are banded by age at report time.
const (
	BandUnder18 = "under 18"
	Band18To30  = "18-30"
	Band31To50  = "31-50"
	Band51Plus  = "51+"
)

// AgeBands lists the bands in presentation order.
var AgeBands = []string{BandUnder18, Band18To30, Band31To50, Band51Plus}

// AgeBand returns the band a person born on dob falls into at time at.
func AgeBand(dob, at time.Time) string {
	age := at.Year() - dob.Year()
	// Birthday not yet reached this year. Compare month and day rather
	// than year-day so leap years do not shift the boundary.
	if at.Month() < dob.Month() || (at.Month() == dob.Month() && at.Day() < dob.Day()) {
		age--
	}
	switch {
	case age < 18:
		return BandUnder18
	case age <= 30:
		return Band18To30
	case age <= 50:
		return Band31To50
	default:
		return Band51Plus
	}
}
