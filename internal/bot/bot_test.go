package bot

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/mock"
)

func TestReplyPing(t *testing.T) {
	gateway := &mockGateway{}
	gateway.On("ChannelMessageSend", "general", "Pong!").Return(&discordgo.Message{ID: "pong"}, nil).Once()

	bot := &Bot{}
	bot.reply(gateway, &discordgo.Message{
		ChannelID: "general",
		Content:   "!ping",
		Author:    &discordgo.User{ID: "1", Username: "alice"},
	})

	gateway.AssertExpectations(t)
}

func TestReplyIgnores(t *testing.T) {
	tests := []struct {
		name    string
		message *discordgo.Message
	}{
		{"bot author", &discordgo.Message{Content: "!ping", Author: &discordgo.User{Bot: true}}},
		{"no author", &discordgo.Message{Content: "!ping"}},
		{"other text", &discordgo.Message{Content: "ping", Author: &discordgo.User{}}},
		{"unknown command", &discordgo.Message{Content: "!raid", Author: &discordgo.User{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := &mockGateway{}
			bot := &Bot{}
			bot.reply(gateway, tt.message)
			gateway.AssertNotCalled(t, "ChannelMessageSend", mock.Anything, mock.Anything)
		})
	}
}

func TestReplySendFailureIsLogged(t *testing.T) {
	gateway := &mockGateway{}
	gateway.On("ChannelMessageSend", "general", "Pong!").Return(nil, errors.New("missing access")).Once()

	bot := &Bot{}
	bot.reply(gateway, &discordgo.Message{ChannelID: "general", Content: "!ping", Author: &discordgo.User{}})

	gateway.AssertExpectations(t)
}
