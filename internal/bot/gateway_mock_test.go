package bot

import (
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/mock"
)

// mockGateway ignores request options
type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error) {
	args := m.Called(channelID)
	channel, _ := args.Get(0).(*discordgo.Channel)
	return channel, args.Error(1)
}

func (m *mockGateway) ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string, options ...discordgo.RequestOption) ([]*discordgo.Message, error) {
	args := m.Called(channelID, limit, beforeID, afterID, aroundID)
	messages, _ := args.Get(0).([]*discordgo.Message)
	return messages, args.Error(1)
}

func (m *mockGateway) ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	args := m.Called(channelID, content)
	message, _ := args.Get(0).(*discordgo.Message)
	return message, args.Error(1)
}

func (m *mockGateway) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	args := m.Called(channelID, embed)
	message, _ := args.Get(0).(*discordgo.Message)
	return message, args.Error(1)
}

func (m *mockGateway) ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error {
	args := m.Called(channelID, messageID)
	return args.Error(0)
}
