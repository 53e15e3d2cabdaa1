package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salon-admin/internal/config"
	"salon-admin/internal/repository"
	"salon-admin/internal/service"
	"salon-admin/internal/web"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	userRepo := repository.NewUserRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	users := service.NewUserService(userRepo)
	catalog := service.NewServiceCatalog(serviceRepo)
	orders := service.NewOrderService(orderRepo, userRepo)

	scheduler := service.NewSchedulerService(time.Local)
	if _, err := scheduler.ScheduleInterval(cfg.OrderSweepInterval, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		n, err := orders.ExpireOverdue(jobCtx, time.Now())
		if err != nil {
			log.Printf("expire orders: %v", err)
			return
		}
		if n > 0 {
			log.Printf("[info] deactivated %d expired orders", n)
		}
	}); err != nil {
		log.Fatalf("schedule order sweep: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	srv := web.NewServer(cfg.ServerAddr, users, catalog)
	if err := srv.Start(ctx); err != nil {
		log.Fatalf("server stopped with error: %v", err)
	}
	log.Println("Shutdown complete.")
}
