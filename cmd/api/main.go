package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/HarmanGIT10/Ironic-gym-backend/internal/application/auth"
	"github.com/HarmanGIT10/Ironic-gym-backend/internal/application/checkout"
	"github.com/HarmanGIT10/Ironic-gym-backend/internal/application/order"
	"github.com/HarmanGIT10/Ironic-gym-backend/internal/application/product"
	"github.com/HarmanGIT10/Ironic-gym-backend/internal/application/user"
	"github.com/HarmanGIT10/Ironic-gym-backend/internal/config"
	"github.com/HarmanGIT10/Ironic-gym-backend/internal/infrastructure/dynamo"
	googleinfra "github.com/HarmanGIT10/Ironic-gym-backend/internal/infrastructure/google"
	jwtinfra "github.com/HarmanGIT10/Ironic-gym-backend/internal/infrastructure/jwt"
	s3infra "github.com/HarmanGIT10/Ironic-gym-backend/internal/infrastructure/s3"
	"github.com/HarmanGIT10/Ironic-gym-backend/internal/infrastructure/smtp"
	snsinfra "github.com/HarmanGIT10/Ironic-gym-backend/internal/infrastructure/sns"
	stripeinfra "github.com/HarmanGIT10/Ironic-gym-backend/internal/infrastructure/stripe"
	apihttp "github.com/HarmanGIT10/Ironic-gym-backend/internal/transport/http"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	jwtProvider, err := jwtinfra.NewProvider(cfg)
	if err != nil {
		slog.Error("failed to load JWT keys", "err", err)
		os.Exit(1)
	}

	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	userRepo := dynamo.NewUserRepo(dynamoClient, cfg.DynamoTables.Users)
	otpRepo := dynamo.NewOtpRepo(dynamoClient, cfg.DynamoTables.Otps)
	productRepo := dynamo.NewProductRepo(dynamoClient, cfg.DynamoTables.Products)
	orderRepo := dynamo.NewOrderRepo(dynamoClient, cfg.DynamoTables.Orders)

	mailer := smtp.NewMailer(cfg)
	imageStore := s3infra.NewStore(s3infra.NewClient(cfg), cfg.S3BucketName, cfg.AWSRegion)
	googleVerifier := googleinfra.NewVerifier(cfg.GoogleClientID)
	stripeCheckout := stripeinfra.NewCheckout(cfg)

	// SMS is optional; without it dispatch notifications are skipped.
	var smsSender snsinfra.SMSSender
	if s, err := snsinfra.NewSender(cfg); err != nil {
		slog.Warn("SNS unavailable, dispatch SMS disabled", "err", err)
	} else {
		smsSender = s
	}

	authService := auth.NewService(auth.ServiceDeps{
		OtpRepo:  otpRepo,
		UserRepo: userRepo,
		Mailer:   mailer,
		Google:   googleVerifier,
		JWT:      jwtProvider,
	})
	userService := user.NewService(userRepo)
	productService := product.NewService(productRepo, imageStore, s3infra.DetectContentType)
	orderService := order.NewService(orderRepo, mailer, smsSender)
	checkoutService := checkout.NewService(stripeCheckout)

	router := apihttp.NewRouter(apihttp.Deps{
		Auth:           authService,
		Users:          userService,
		Products:       productService,
		Orders:         orderService,
		Checkout:       checkoutService,
		JWT:            jwtProvider,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.AppPort, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("graceful shutdown failed", "err", err)
	}
}
