package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/campanhas/campaigns-backend/internal/config"
	"github.com/campanhas/campaigns-backend/internal/db"
	"github.com/campanhas/campaigns-backend/internal/handler"
	"github.com/campanhas/campaigns-backend/internal/logger"
	"github.com/campanhas/campaigns-backend/internal/queue"
	"github.com/campanhas/campaigns-backend/internal/repository"
	"github.com/campanhas/campaigns-backend/internal/service"
	"github.com/campanhas/campaigns-backend/internal/storage"
)

func main() {
	// Load .env when present; in production everything comes from the OS env.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg.Log)

	database, err := db.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close()

	if err := database.RunMigrations(cfg.Database.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	store, err := storage.New(cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize object storage")
	}

	// Fall back to the in-process queue when RabbitMQ is unreachable so that
	// local development does not require a broker.
	var q queue.Queue
	amqpQueue, err := queue.NewAMQPQueue(cfg.Queue.URL, cfg.Queue.QueueName, log)
	if err != nil {
		log.Warn().Err(err).Msg("RabbitMQ unavailable, using in-memory queue")
		q = queue.NewInMemoryQueue()
	} else {
		q = amqpQueue
	}
	defer q.Close()

	campaignRepo := &repository.CampaignRepository{DB: database.DB}
	tagRepo := &repository.TagRepository{DB: database.DB}
	institutionRepo := &repository.InstitutionRepository{DB: database.DB}
	positionRepo := &repository.PositionRepository{DB: database.DB}
	commentRepo := &repository.CommentRepository{DB: database.DB}
	attachmentRepo := &repository.AttachmentRepository{DB: database.DB}
	historyRepo := &repository.HistoryRepository{DB: database.DB}
	userRepo := &repository.UserRepository{DB: database.DB}

	userService := &service.UserService{UserRepo: userRepo}
	campaignService := &service.CampaignService{
		CampaignRepo:    campaignRepo,
		TagRepo:         tagRepo,
		InstitutionRepo: institutionRepo,
		HistoryRepo:     historyRepo,
		Users:           userService,
		Queue:           q,
		Log:             log,
	}
	commentService := &service.CommentService{
		CommentRepo:  commentRepo,
		CampaignRepo: campaignRepo,
		Users:        userService,
	}
	attachmentService := &service.AttachmentService{
		AttachmentRepo: attachmentRepo,
		CampaignRepo:   campaignRepo,
		HistoryRepo:    historyRepo,
		Storage:        store,
		Users:          userService,
		Queue:          q,
		Log:            log,
	}
	historyService := &service.HistoryService{
		HistoryRepo:  historyRepo,
		CampaignRepo: campaignRepo,
	}

	router := handler.NewRouter(handler.Handlers{
		Campaigns:   handler.NewCampaignHandler(campaignService, log),
		Comments:    handler.NewCommentHandler(commentService, log),
		Attachments: handler.NewAttachmentHandler(attachmentService, log),
		History:     handler.NewHistoryHandler(historyService, log),
		Lookups: &handler.LookupHandler{
			Tags:         tagRepo,
			Institutions: institutionRepo,
			Positions:    positionRepo,
			Log:          log,
		},
		Profile: handler.NewProfileHandler(userService, log),
	}, log)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info().Msg("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
