package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/josewalke/web-salud-mental/internal/config"
	"github.com/josewalke/web-salud-mental/internal/db"
	"github.com/josewalke/web-salud-mental/internal/email"
	apihttp "github.com/josewalke/web-salud-mental/internal/http"
	"github.com/josewalke/web-salud-mental/internal/repository"
	"github.com/josewalke/web-salud-mental/internal/service"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	questionnaireRepo := repository.NewPgQuestionnaireRepository(pool)
	contactRepo := repository.NewPgContactRepository(pool)
	adminRepo := repository.NewPgAdminRepository(pool)

	emailSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}

	var tokenStore service.RefreshTokenStore
	contactLimiter := service.NewMemoryRateLimiter(time.Hour, 5)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
			contactLimiter = service.NewRedisRateLimiter(redisClient, time.Hour, 5)
		}
		cancel()
	}
	jwtSvc := service.NewJWTServiceWithStore(
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute,
		time.Duration(cfg.JWTRefreshTTLMinutes)*time.Minute,
		tokenStore,
	)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}

	questionnaireSvc := service.NewQuestionnaireService(logger, questionnaireRepo)
	adminSvc := service.NewAdminService(logger, adminRepo)
	contactSvc := service.NewContactService(logger, contactRepo, emailSender, cfg.ContactNotifyEmail, contactLimiter)

	questionnaireHandler := apihttp.NewQuestionnaireHandler(logger, questionnaireSvc)
	compatHandler := apihttp.NewCompatHandler(logger, questionnaireSvc)
	contactHandler := apihttp.NewContactHandler(logger, contactSvc)
	adminHandler := apihttp.NewAdminHandler(logger, adminSvc, jwtSvc)
	router := apihttp.NewRouter(logger, cfg.CORSAllowOrigins, jwtSvc, questionnaireHandler, compatHandler, contactHandler, adminHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
