package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"salon-admin/internal/apiclient"
	"salon-admin/internal/bot"
	"salon-admin/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.TelegramToken == "" {
		log.Fatal("TG_BOT_TOKEN is required")
	}
	if cfg.PublicBaseURL == "" {
		log.Fatal("PUBLIC_BASE_URL is required")
	}

	client := apiclient.New(cfg.APIBaseURL)

	telegramBot, err := bot.New(cfg.TelegramToken, client, cfg.PublicBaseURL)
	if err != nil {
		log.Fatalf("bot: %v", err)
	}

	log.Println("Admin panel bot started.")
	if err := telegramBot.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("bot stopped with error: %v", err)
	}
	log.Println("Shutdown complete.")
}
