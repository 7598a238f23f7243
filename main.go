package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"hairlab-backoffice/backend"
	"hairlab-backoffice/config"
	"hairlab-backoffice/models"
	"hairlab-backoffice/routes"
	"hairlab-backoffice/services"
	"hairlab-backoffice/utils"
)

func main() {
	cfg := config.Load()
	config.InitLogger(cfg.LogLevel)

	if cfg.Server.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET not set")
	}

	db, err := config.ConnectDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	if err := db.AutoMigrate(
		&models.SessionEntry{},
		&models.ReminderTemplate{},
		&models.ReminderLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	reminderRepo := services.NewGormReminderRepository(db)
	if err := reminderRepo.SeedTemplates(context.Background()); err != nil {
		log.Error().Err(err).Msg("Failed to seed reminder templates")
	}

	client := backend.New(cfg.Backend)
	site := config.LoadSite(cfg.SiteFile)

	var sender services.Sender = services.LogSender{}
	if cfg.Twilio.Enabled() {
		sender = services.NewTwilioSender(cfg.Twilio)
	} else {
		log.Warn().Msg("Twilio credentials missing, messages will only be logged")
	}
	notifier := services.NewNotificationService(sender, reminderRepo)

	ttl := time.Duration(cfg.Server.JWTExpiryHours) * time.Hour
	sessions := services.NewSessionService(services.NewGormSessionStore(db), client, cfg.Server.JWTSecret, ttl)

	billingService := services.NewBillingService(client, services.NewCatalogService(client), cfg.Billing.DefaultGSTPercent)
	if cfg.Billing.NotifyReceipts {
		billingService.EnableReceipts(notifier)
	}
	sessions.OnLogout(billingService.Discard)

	reminders := services.NewReminderService(
		client.WithToken(cfg.Backend.ServiceToken), notifier, reminderRepo, cfg.Reminder.DaysAhead)
	limiter := utils.NewPerMinuteLimiter(cfg.Server.LoginRatePerMinute)

	scheduler := cron.New()
	if cfg.Backend.ServiceToken == "" {
		log.Warn().Msg("BACKEND_SERVICE_TOKEN not set, birthday reminders disabled")
	} else if err := reminders.Schedule(scheduler, cfg.Reminder.Schedule); err != nil {
		log.Fatal().Err(err).Str("spec", cfg.Reminder.Schedule).Msg("Invalid reminder schedule")
	}
	if _, err := scheduler.AddFunc("@every 15m", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		sessions.PurgeExpired(ctx)
		limiter.Cleanup(30 * time.Minute)
	}); err != nil {
		log.Fatal().Err(err).Msg("Failed to schedule housekeeping")
	}
	scheduler.Start()
	defer scheduler.Stop()

	r := routes.SetupRouter(routes.Deps{
		Config:        cfg,
		Site:          site,
		Client:        client,
		Sessions:      sessions,
		Billing:       billingService,
		ReminderAdmin: reminderRepo,
		Reminders:     reminders,
		LoginLimiter:  limiter,
	})
	printRoutes(r)

	log.Info().Str("port", cfg.Server.Port).Str("backend", client.BaseURL()).Msg("HairLab back-office starting")
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		log.Debug().Str("method", route.Method).Str("path", route.Path).Msg("route")
	}
}
