package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type ResponseString struct {
	string
}
type ResponseEmbed struct {
	discordgo.MessageEmbed
}

type Response interface {
	Send(channelid string, gateway Gateway, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

func (response ResponseString) Send(channelid string, gateway Gateway, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	message, err := gateway.ChannelMessageSend(channelid, response.string, options...)
	if err != nil {
		return nil, fmt.Errorf("could not send message to channel %s: %w", channelid, err)
	}
	return message, nil
}

func (response ResponseEmbed) Send(channelid string, gateway Gateway, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	message, err := gateway.ChannelMessageSendEmbed(channelid, &response.MessageEmbed, options...)
	if err != nil {
		return nil, fmt.Errorf("could not send embed to channel %s: %w", channelid, err)
	}
	return message, nil
}
