package raid

import (
	"strings"
	"time"

	"raidreminder/internal/roster"
)

const (
	ACTION_SKIP = iota
	ACTION_FIRE = iota
)

// Action is the outcome of evaluating an event at a given instant.
// Everything but Kind is only set when Kind is ACTION_FIRE.
type Action struct {
	Kind     int
	Window   Window
	Date     string
	Mentions string
	Body     string
}

type Scheduler struct {
	directory roster.Directory
	templates roster.Templates
	intn      func(n int) int
}

// intn picks the template and must behave like rand.IntN
func NewScheduler(directory roster.Directory, templates roster.Templates, intn func(n int) int) Scheduler {
	return Scheduler{directory: directory, templates: templates, intn: intn}
}

func (scheduler *Scheduler) Evaluate(event RaidEvent, now time.Time, year int) Action {

	window := NewWindow(event, year)
	if !window.Contains(now) {
		return Action{Kind: ACTION_SKIP}
	}

	date := FormatDate(event)
	mentions := scheduler.Mentions(event.UnresolvedPlayers)
	body := roster.Render(scheduler.templates.Pick(scheduler.intn), mentions, date)

	return Action{
		Kind:     ACTION_FIRE,
		Window:   window,
		Date:     date,
		Mentions: mentions,
		Body:     body,
	}
}

func (scheduler *Scheduler) Mentions(players []string) string {
	rendered := make([]string, len(players))
	for i, player := range players {
		rendered[i] = scheduler.directory.Mention(player)
	}
	return strings.Join(rendered, ", ")
}
