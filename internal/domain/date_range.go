package domain

import (
	"time"

	"gorm.io/datatypes"
)

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"

// DateRange is a half-open stay [CheckIn, CheckOut) at day granularity
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// NewDateRange truncates both ends to UTC midnight
func NewDateRange(checkIn, checkOut time.Time) DateRange {
	return DateRange{CheckIn: Day(checkIn), CheckOut: Day(checkOut)}
}

// ParseDate parses a YYYY-MM-DD string into UTC midnight
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// Day keeps t's calendar date, as seen in t's own location, at UTC midnight
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Valid reports whether check-out is strictly after check-in
func (r DateRange) Valid() bool {
	return r.CheckOut.After(r.CheckIn)
}

// Nights is the number of whole days between check-in and check-out
func (r DateRange) Nights() int {
	return int(Day(r.CheckOut).Sub(Day(r.CheckIn)).Hours() / 24)
}

// Overlaps reports whether two half-open ranges intersect: a < d && c < b.
// Adjacent stays, where one check-out equals the other's check-in, do not overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(r.CheckOut)
}

// Dates returns both ends as DATE column values
func (r DateRange) Dates() (datatypes.Date, datatypes.Date) {
	return datatypes.Date(Day(r.CheckIn)), datatypes.Date(Day(r.CheckOut))
}
