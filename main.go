package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/meinhoongagan/skillverify/config"
	"github.com/meinhoongagan/skillverify/db"
	"github.com/meinhoongagan/skillverify/redis"
	"github.com/meinhoongagan/skillverify/repositories"
	"github.com/meinhoongagan/skillverify/routes"
	"github.com/meinhoongagan/skillverify/services"
	"github.com/meinhoongagan/skillverify/utils"
)

func main() {
	if err := run(); err != nil {
		utils.Logger.Fatal(err)
	}
	utils.Logger.Info("Server stopped")
}

// run wires and serves the app. Deferred cleanup completes before it returns.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	utils.InitLogger(cfg.AppName, cfg.LogLevel)

	gdb, err := db.Open(cfg)
	if err != nil {
		return err
	}
	if sqlDB, err := gdb.DB(); err == nil {
		defer sqlDB.Close()
	}
	if cfg.AutoMigrate {
		if err := db.Migrate(gdb); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}
	if err := db.SeedAdmin(gdb, cfg); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	var revoker services.TokenRevoker
	if cfg.RedisAddr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		tokenStore, err := redis.NewTokenStore(ctx, cfg.RedisAddr, cfg.RedisPassword)
		cancel()
		if err != nil {
			return err
		}
		defer tokenStore.Close()
		revoker = tokenStore
		utils.Logger.Info("Redis token revocation enabled")
	} else {
		utils.Logger.Warn("REDIS_ADDR not set, logout will not revoke tokens")
	}

	var mailer utils.Mailer = utils.LogMailer{}
	if cfg.SMTPHost != "" {
		mailer = utils.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass, cfg.EmailFrom)
	} else {
		utils.Logger.Warn("SMTP_HOST not set, booking emails will only be logged")
	}

	var uploader utils.ImageUploader = utils.DisabledUploader{}
	if cfg.CloudinaryCloudName != "" && cfg.CloudinaryAPIKey != "" && cfg.CloudinaryAPISecret != "" {
		cld, err := utils.NewCloudinaryUploader(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryFolder)
		if err != nil {
			return fmt.Errorf("failed to configure Cloudinary: %w", err)
		}
		uploader = cld
	} else {
		utils.Logger.Warn("Cloudinary not configured, profile picture uploads are disabled")
	}

	store := repositories.NewStore(gdb)
	notifier := services.NewNotifier(mailer)
	defer notifier.Wait()
	tokens := services.NewTokenService(cfg.JWTSecret, cfg.JWTExpiresIn, revoker)

	handlers := routes.NewHandlers(
		tokens,
		services.NewAuthService(store, tokens, uploader, cfg.BcryptCost),
		services.NewWorkerService(store),
		services.NewBookingService(store, notifier),
		services.NewReviewService(store),
	)
	app := routes.NewApp(handlers, routes.Options{
		AppName:            cfg.AppName,
		CORSOrigins:        cfg.CORSOrigins,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		AccessLog:          true,
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		utils.Logger.Info("Shutting down server")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			utils.Logger.WithError(err).Error("Server shutdown failed")
		}
	}()

	utils.Logger.Infof("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
