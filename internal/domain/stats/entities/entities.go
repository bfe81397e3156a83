package entities

import "time"

// Period selects the statistics window
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodTotal   Period = "total"
)

// Cutoff returns the window start, or the zero time for the all-time view
func (p Period) Cutoff(now time.Time) time.Time {
	switch p {
	case PeriodDaily:
		return now.AddDate(0, 0, -1)
	case PeriodWeekly:
		return now.AddDate(0, 0, -7)
	case PeriodMonthly:
		return now.AddDate(0, 0, -30)
	default:
		return time.Time{}
	}
}

// Overview is the admin statistics snapshot for one period
type Overview struct {
	Period       Period
	TotalUsers   int64
	NewUsers     int64
	ActiveUsers  int64
	TotalMovies  int64
	NewMovies    int64
	TotalViews   int64
	TotalRatings int64
}
