package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		message string
		parseid int
	}{
		{"!ping", PARSEID_OK},
		{"hello", PARSEID_NO_BOT_PREFIX},
		{"", PARSEID_NO_BOT_PREFIX},
		{" !ping", PARSEID_NO_BOT_PREFIX},
		{"!ping ", PARSEID_COMMAND_NOT_RECOGNISED},
		{"!PING", PARSEID_COMMAND_NOT_RECOGNISED},
		{"!pong", PARSEID_COMMAND_NOT_RECOGNISED},
		{"!", PARSEID_COMMAND_NOT_RECOGNISED},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			result := Parse(tt.message)
			assert.Equal(t, tt.parseid, result.parseid)
			if tt.parseid == PARSEID_OK {
				assert.Equal(t, COMMAND_PING, result.command)
			}
		})
	}
}
