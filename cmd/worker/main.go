package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/campanhas/campaigns-backend/internal/config"
	"github.com/campanhas/campaigns-backend/internal/logger"
	"github.com/campanhas/campaigns-backend/internal/queue"
	"github.com/campanhas/campaigns-backend/internal/service"
)

// The worker drains campaign lifecycle events from RabbitMQ and hands them
// to the notifier. Delivery is a log line for now; the hook is where a
// Slack or e-mail integration would plug in.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg.Log).With().Str("component", "worker").Logger()

	q, err := queue.NewAMQPQueue(cfg.Queue.URL, cfg.Queue.QueueName, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to RabbitMQ")
	}
	defer q.Close()

	events, err := q.Consume()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start consuming")
	}

	notifier := service.NewNotifier(events, func(event queue.Event) bool {
		log.Info().
			Str("kind", event.Kind).
			Str("campaign_id", event.CampaignID).
			Str("actor", event.Actor).
			Str("detail", event.Detail).
			Msg("Campaign event")
		return true
	}, log)

	go notifier.Start()
	log.Info().Str("queue", cfg.Queue.QueueName).Msg("Worker consuming events")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Info().Msg("Worker shutting down")
}
