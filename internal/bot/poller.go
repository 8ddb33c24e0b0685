package bot

import (
	"context"
	"fmt"
	"time"

	"raidreminder/internal/common"
	"raidreminder/internal/raid"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

type PollerConfig struct {
	SourceChannelID string
	ChatChannelID   string
	ScanLimit       int
	IconURL         string
}

// Poller scans the most recent messages of the source channel for
// raid announcements and posts a reminder for those whose reminder
// window is open.
type Poller struct {
	config    PollerConfig
	gateway   Gateway
	scheduler raid.Scheduler
	deleter   *Deleter
	clock     common.Clock
	// Reminders already posted, keyed by source message and event
	// instant, kept until the reminder itself is deleted
	reminded map[string]time.Time
}

func NewPoller(config PollerConfig, gateway Gateway, scheduler raid.Scheduler, deleter *Deleter, clock common.Clock) *Poller {
	return &Poller{
		config:    config,
		gateway:   gateway,
		scheduler: scheduler,
		deleter:   deleter,
		clock:     clock,
		reminded:  map[string]time.Time{},
	}
}

// Poll runs one scan. Failures are logged and never stop the loop.
func (p *Poller) Poll(ctx context.Context) {
	p.forget()

	channel, err := p.gateway.Channel(p.config.SourceChannelID, discordgo.WithContext(ctx))
	if err != nil {
		log.Error().Err(err).Str("channel", p.config.SourceChannelID).Msg("Could not fetch source channel")
		return
	}

	messages, err := p.gateway.ChannelMessages(p.config.SourceChannelID, p.config.ScanLimit, "", "", "", discordgo.WithContext(ctx))
	if err != nil {
		log.Error().Err(err).Str("channel", p.config.SourceChannelID).Msg("Could not fetch messages")
		return
	}
	log.Debug().Int("messages", len(messages)).Msg("Scanning source channel")

	for _, message := range messages {
		if ctx.Err() != nil {
			return
		}
		if message == nil || len(message.Embeds) == 0 {
			continue
		}
		if err := p.process(ctx, channel.GuildID, message); err != nil {
			log.Error().Err(err).Str("message", message.ID).Msg("Could not process raid event")
		}
	}
}

func (p *Poller) process(ctx context.Context, guildID string, message *discordgo.Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while processing message %s: %v", message.ID, r)
		}
	}()

	option := raid.ParseEmbed(message.Embeds[0])
	if !option.IsPresent() {
		return nil
	}
	event := option.MustGet()

	now := p.clock.Now().UTC()
	action := p.scheduler.Evaluate(event, now, now.Year())
	if action.Kind == raid.ACTION_SKIP {
		return nil
	}

	key := fmt.Sprintf("%s@%d", message.ID, action.Window.Event.Unix())
	if _, ok := p.reminded[key]; ok {
		log.Debug().Str("message", message.ID).Msg("Reminder already posted for this event")
		return nil
	}

	// Messages fetched over REST do not carry the guild id
	if message.GuildID != "" {
		guildID = message.GuildID
	}
	link := MessageLink(guildID, p.config.SourceChannelID, message.ID)

	sent, err := ReminderMessage(action, link, p.config.IconURL).Send(p.config.ChatChannelID, p.gateway, discordgo.WithContext(ctx))
	if err != nil {
		return err
	}
	p.reminded[key] = action.Window.DeleteAt
	log.Info().
		Str("event", event.Title).
		Str("message", sent.ID).
		Int("players", len(event.UnresolvedPlayers)).
		Msg("Raid reminder posted")

	p.deleter.Schedule(p.config.ChatChannelID, sent.ID, action.Window.DeleteAt)
	return nil
}

// Drop reminders whose post has already been deleted
func (p *Poller) forget() {
	now := p.clock.Now()
	for key, deleteAt := range p.reminded {
		if now.After(deleteAt) {
			delete(p.reminded, key)
		}
	}
}
