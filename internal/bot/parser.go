package bot

import (
	"strings"

	"github.com/rs/zerolog/log"
)

const prefix string = "!"

const (
	COMMAND_PING = iota
)

const (
	PARSEID_OK                     = iota
	PARSEID_NO_BOT_PREFIX          = iota
	PARSEID_COMMAND_NOT_RECOGNISED = iota
)

type ParseResult struct {
	command int
	parseid int
}

// Commands are matched on the whole message, so "!ping " or
// "!ping me" are not a ping
func Parse(message string) ParseResult {

	// The message has to start with the bot prefix
	if !strings.HasPrefix(message, prefix) {
		return ParseResult{parseid: PARSEID_NO_BOT_PREFIX}
	}

	switch message[len(prefix):] {
	case "ping":
		return ParseResult{command: COMMAND_PING, parseid: PARSEID_OK}
	default:
		log.Debug().Str("content", message).Msg("Command not recognised")
		return ParseResult{parseid: PARSEID_COMMAND_NOT_RECOGNISED}
	}
}
