package manager

import "github.com/rs/zerolog"

// LogPublisher writes events to a structured logger. Failures log at warn,
// everything else at info.
type LogPublisher struct {
	log zerolog.Logger
}

func NewLogPublisher(l zerolog.Logger) *LogPublisher { return &LogPublisher{log: l} }

func (p *LogPublisher) Publish(e Event) {
	ev := p.log.Info()
	if e.Name == EventModelLoadFailed || e.Name == EventPredictionFailed {
		ev = p.log.Warn()
	}
	ev.Str("event", e.Name).Str("revision", e.Revision).Fields(e.Fields).Msg("manager event")
}
