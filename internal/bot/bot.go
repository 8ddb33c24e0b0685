package bot

import (
	"context"
	"fmt"
	"math/rand/v2"

	"raidreminder/internal/common"
	"raidreminder/internal/config"
	"raidreminder/internal/raid"
	"raidreminder/internal/roster"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// Bot holds everything the reminder loop and the command handler
// need: the discord session, the roster and the templates
type Bot struct {
	config    *config.Config
	session   *discordgo.Session
	directory roster.Directory
	templates roster.Templates
	clock     common.Clock
	deleter   *Deleter
}

func New(cfg *config.Config, directory roster.Directory, templates roster.Templates) (*Bot, error) {

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("could not create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent

	bot := &Bot{
		config:    cfg,
		session:   session,
		directory: directory,
		templates: templates,
		clock:     common.SystemClock{},
	}
	bot.deleter = NewDeleter(session, bot.clock)

	session.AddHandler(bot.Receive)
	session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Info().Str("user", r.User.String()).Int("guilds", len(r.Guilds)).Msg("Bot is ready")
	})

	return bot, nil
}

// Run connects to discord and scans for raids until the context is done
func (bot *Bot) Run(ctx context.Context) error {

	if err := bot.session.Open(); err != nil {
		return fmt.Errorf("could not open discord session: %w", err)
	}
	defer bot.session.Close()

	iconURL := ""
	if user := bot.session.State.User; user != nil {
		iconURL = user.AvatarURL("")
		log.Info().Str("user", user.Username).Msg("Connected to discord")
	}

	scheduler := raid.NewScheduler(bot.directory, bot.templates, rand.IntN)
	poller := NewPoller(PollerConfig{
		SourceChannelID: bot.config.TargetChannelID,
		ChatChannelID:   bot.config.ChatChannelID,
		ScanLimit:       bot.config.ScanLimit,
		IconURL:         iconURL,
	}, bot.session, scheduler, bot.deleter, bot.clock)

	executor := common.NewTimedExecutor("raid-scan", bot.config.PollInterval, bot.clock, poller.Poll)
	executor.Run(ctx, bot.config.PollOnStart)

	if lost := bot.deleter.Shutdown(); lost > 0 {
		log.Warn().Int("lost", lost).Msg("Scheduled deletions will not happen")
	}
	return nil
}

func (bot *Bot) Receive(discord *discordgo.Session, message *discordgo.MessageCreate) {
	bot.reply(discord, message.Message)
}

func (bot *Bot) reply(gateway Gateway, message *discordgo.Message) {

	// Never answer bots, myself included
	if message.Author == nil || message.Author.Bot {
		return
	}

	parseResult := Parse(message.Content)
	if parseResult.parseid != PARSEID_OK {
		return
	}

	var responses []Response
	switch parseResult.command {
	case COMMAND_PING:
		responses = []Response{Pong()}
	default:
		panic(fmt.Sprintf("Command %d is not one of the possible ones", parseResult.command))
	}
	bot.sendResponses(gateway, message.ChannelID, responses)
}

func (bot *Bot) sendResponses(gateway Gateway, channelId string, responses []Response) {
	for _, response := range responses {
		if _, err := response.Send(channelId, gateway); err != nil {
			log.Error().Err(err).Msg("Could not send response")
		}
	}
}
