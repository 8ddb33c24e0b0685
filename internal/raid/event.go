package raid

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
	"github.com/samber/mo"
)

// Raid-Helper uses a zero-width space as the name of untitled columns
const untitledField = "\u200b"

var (
	// <:emoji:id> <:emoji:id> Name
	playerPattern = regexp.MustCompile(`<:\w+:\d+> <:\w+:\d+> (\S+)`)
	// Monday, March 10
	datePattern = regexp.MustCompile(`(\w+day), (\w+) (\d{1,2})`)
)

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

type Field struct {
	Name  string
	Value string
}

// RaidEvent is what a raid announcement tells us: the day it happens
// and the players it could not match to the roster
type RaidEvent struct {
	Title             string
	Weekday           string
	MonthName         string
	Day               int
	UnresolvedPlayers []string
}

// Month number, 1 for January
func (event RaidEvent) Month() int {
	return slices.Index(monthNames, event.MonthName) + 1
}

// Parse a raid announcement. No event is returned when the title has
// no date, or no unresolved field lists at least one player.
func Parse(title string, fields []Field) mo.Option[RaidEvent] {

	// Collect the text of every field listing unresolved players
	values := []string{}
	for _, field := range fields {
		if isUnresolved(field.Name) {
			values = append(values, field.Value)
		}
	}
	if len(values) == 0 {
		log.Debug().Str("title", title).Msg("No unresolved field in event")
		return mo.None[RaidEvent]()
	}

	// Extract player names in order of appearance, duplicates included
	players := []string{}
	for _, match := range playerPattern.FindAllStringSubmatch(strings.Join(values, "\n"), -1) {
		players = append(players, match[1])
	}
	if len(players) == 0 {
		log.Debug().Str("title", title).Msg("No unresolved players in event")
		return mo.None[RaidEvent]()
	}

	// Date of the raid
	match := datePattern.FindStringSubmatch(title)
	if match == nil {
		log.Debug().Str("title", title).Msg("No date in event title")
		return mo.None[RaidEvent]()
	}
	day, err := strconv.Atoi(match[3])
	if err != nil || day < 1 || day > 31 {
		log.Debug().Str("title", title).Msg("Day out of range in event title")
		return mo.None[RaidEvent]()
	}
	if !slices.Contains(monthNames, match[2]) {
		log.Debug().Str("title", title).Str("month", match[2]).Msg("Month not recognised")
		return mo.None[RaidEvent]()
	}

	return mo.Some(RaidEvent{
		Title:             title,
		Weekday:           match[1],
		MonthName:         match[2],
		Day:               day,
		UnresolvedPlayers: players,
	})
}

// ParseEmbed parses the embed a raid announcement carries
func ParseEmbed(embed *discordgo.MessageEmbed) mo.Option[RaidEvent] {
	if embed == nil {
		return mo.None[RaidEvent]()
	}
	fields := make([]Field, 0, len(embed.Fields))
	for _, field := range embed.Fields {
		if field == nil {
			continue
		}
		fields = append(fields, Field{Name: field.Name, Value: field.Value})
	}
	return Parse(embed.Title, fields)
}

func isUnresolved(name string) bool {
	return strings.Contains(strings.ToLower(name), "unknown") ||
		strings.TrimSpace(name) == "" ||
		name == untitledField
}
