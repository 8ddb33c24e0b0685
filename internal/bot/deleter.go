package bot

import (
	"sync"
	"time"

	"raidreminder/internal/common"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type deletion struct {
	channelID string
	messageID string
	at        time.Time
	timer     common.Timer
}

// Deleter removes messages the bot posted once their time is up.
// Deletions only live in memory: whatever is still pending when the
// process stops is never deleted.
type Deleter struct {
	gateway Gateway
	clock   common.Clock
	mu      sync.Mutex
	pending map[uuid.UUID]*deletion
}

func NewDeleter(gateway Gateway, clock common.Clock) *Deleter {
	return &Deleter{
		gateway: gateway,
		clock:   clock,
		pending: map[uuid.UUID]*deletion{},
	}
}

// Schedule the deletion of a message at the given instant.
// An instant in the past deletes as soon as possible.
func (d *Deleter) Schedule(channelID string, messageID string, at time.Time) uuid.UUID {
	id := uuid.New()
	delay := at.Sub(d.clock.Now())
	if delay < 0 {
		delay = 0
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	job := &deletion{channelID: channelID, messageID: messageID, at: at}
	job.timer = d.clock.AfterFunc(delay, func() { d.run(id) })
	d.pending[id] = job

	log.Info().
		Str("task", id.String()).
		Str("channel", channelID).
		Str("message", messageID).
		Time("at", at).
		Msg("Deletion scheduled")
	return id
}

func (d *Deleter) run(id uuid.UUID) {
	d.mu.Lock()
	job, ok := d.pending[id]
	delete(d.pending, id)
	d.mu.Unlock()
	if !ok {
		return
	}

	if err := d.gateway.ChannelMessageDelete(job.channelID, job.messageID); err != nil {
		// Most likely someone deleted it by hand already
		log.Error().
			Err(err).
			Str("task", id.String()).
			Str("channel", job.channelID).
			Str("message", job.messageID).
			Msg("Could not delete message")
		return
	}
	log.Info().Str("task", id.String()).Str("message", job.messageID).Msg("Message deleted")
}

func (d *Deleter) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// Shutdown stops every timer and reports how many deletions are lost
func (d *Deleter) Shutdown() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	lost := 0
	for id, job := range d.pending {
		if job.timer.Stop() {
			lost++
			log.Warn().
				Str("task", id.String()).
				Str("channel", job.channelID).
				Str("message", job.messageID).
				Time("at", job.at).
				Msg("Pending deletion dropped at shutdown")
		}
		delete(d.pending, id)
	}
	return lost
}
