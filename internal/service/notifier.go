package service

import (
	"github.com/rs/zerolog"

	"github.com/campanhas/campaigns-backend/internal/queue"
)

// Notifier processes campaign event jobs off a channel.
type Notifier struct {
	JobChan    <-chan queue.Event
	NotifyFunc func(event queue.Event) bool
	Log        zerolog.Logger
}

func NewNotifier(jobChan <-chan queue.Event, notifyFunc func(queue.Event) bool, log zerolog.Logger) *Notifier {
	return &Notifier{
		JobChan:    jobChan,
		NotifyFunc: notifyFunc,
		Log:        log,
	}
}

// Start begins processing events until the channel closes.
func (n *Notifier) Start() {
	for event := range n.JobChan {
		if n.NotifyFunc(event) {
			n.Log.Info().
				Str("kind", event.Kind).
				Str("campaign_id", event.CampaignID).
				Msg("Notification delivered")
		} else {
			n.Log.Warn().
				Str("kind", event.Kind).
				Str("campaign_id", event.CampaignID).
				Msg("Notification delivery failed")
		}
	}
}
