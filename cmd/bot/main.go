package main

import (
	"os"
	"os/signal"
	"syscall"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"gopkg.in/telebot.v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Missing credentials are a startup fault: log and halt before
		// entering the polling loop.
		logger.Log.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	logger.Init(cfg)
	log := logger.Get()
	log.Infof("Configuration loaded. LogLevel: %s, Environment: %s", cfg.LogLevel, cfg.Environment)

	// Initialize Telegram Bot
	pref := telebot.Settings{
		Token: cfg.TelegramToken,
		OnError: func(err error, c telebot.Context) { // Global error handler
			log.Errorf("telebot: %v", err)
		},
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		log.Fatalf("FATAL: Could not create Telegram bot: %v", err)
	}
	log.Info("Telegram bot initialized.")

	// Initialize API client and poll service
	apiClient := practicum.NewClient(cfg.Endpoint, cfg.PracticumToken, cfg.HTTPTimeout)
	telegramClient := telegram.NewTelebotAdapter(bot)
	pollService := app.NewPollService(apiClient, telegramClient, cfg.TelegramChatID, log)

	// Initialize and start the poll scheduler
	pollScheduler := scheduler.NewPollScheduler(pollService, log, cfg.RetryPeriod)
	if err := pollScheduler.Start(); err != nil {
		log.Fatalf("FATAL: Could not start poll scheduler: %v", err)
	}

	log.Info("Application setup complete. Polling for homework status updates...")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Info("Shutting down application...")
	pollScheduler.Stop()
	log.Info("Application shut down gracefully.")
}
