package raid

import (
	"fmt"
	"time"
)

const (
	RemindBefore = 48 * time.Hour
	WindowWidth  = time.Hour
	DeleteAfter  = 12 * time.Hour
)

// Raids always start at 20:45 UTC
const (
	startHour   = 20
	startMinute = 45
)

// Window is the schedule derived from a raid event. The reminder may
// fire anywhere between Open and Close, both included.
type Window struct {
	Event    time.Time
	Open     time.Time
	Close    time.Time
	DeleteAt time.Time
}

// The event year is not in the announcement, so the caller's current
// year is used. Events across new year are dated in the wrong year.
func NewWindow(event RaidEvent, year int) Window {
	instant := time.Date(year, time.Month(event.Month()), event.Day, startHour, startMinute, 0, 0, time.UTC)
	open := instant.Add(-RemindBefore)
	return Window{
		Event:    instant,
		Open:     open,
		Close:    open.Add(WindowWidth),
		DeleteAt: instant.Add(DeleteAfter),
	}
}

func (w Window) Contains(now time.Time) bool {
	return !now.Before(w.Open) && !now.After(w.Close)
}

// Format the event date as "Monday March (10/03) - JJ/MM"
func FormatDate(event RaidEvent) string {
	return fmt.Sprintf("%s %s (%d/%02d) - JJ/MM", event.Weekday, event.MonthName, event.Day, event.Month())
}
