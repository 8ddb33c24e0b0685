package bot

import (
	"fmt"
	"time"

	"raidreminder/internal/raid"

	"github.com/bwmarrin/discordgo"
)

// Use "amber" color for reminders
const color int = 0xffcc00

const channelsURL = "https://discord.com/channels"

// Link to a message, which discord opens in place
func MessageLink(guildID string, channelID string, messageID string) string {
	return fmt.Sprintf("%s/%s/%s/%s", channelsURL, guildID, channelID, messageID)
}

// Discord renders this as "in 2 days", "3 hours ago", ...
func RelativeTimestamp(t time.Time) string {
	return fmt.Sprintf("<t:%d:R>", t.Unix())
}

func Pong() Response {
	return ResponseString{"Pong!"}
}

func ReminderMessage(action raid.Action, raidLink string, iconURL string) Response {

	embed := discordgo.MessageEmbed{
		Title:       fmt.Sprintf("📢 Rappel RAID 48h - %s", action.Date),
		Description: action.Body,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text:    "Soyez à l'heure !",
			IconURL: iconURL,
		},
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "⏳ Départ dans",
		Value:  RelativeTimestamp(action.Window.Event),
		Inline: true,
	})
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "🗑️ Suppression dans",
		Value:  RelativeTimestamp(action.Window.DeleteAt),
		Inline: true,
	})
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "🔗 Confirmation",
		Value:  fmt.Sprintf("[Confirmez votre présence ici](%s)", raidLink),
		Inline: true,
	})
	return ResponseEmbed{embed}
}
