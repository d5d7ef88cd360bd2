package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/raushankrgupta/portfolio-backend/api"
	"github.com/raushankrgupta/portfolio-backend/config"
	"github.com/raushankrgupta/portfolio-backend/services"
	"github.com/raushankrgupta/portfolio-backend/storage"
	"github.com/raushankrgupta/portfolio-backend/utils"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := storage.Open(ctx, cfg.MongoURI, cfg.DBName)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}

	tokens, err := utils.NewTokenManager(cfg.JWTSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid JWT configuration")
	}

	mailer := utils.NewMailer(cfg.SendGridAPIKey, cfg.EmailFromName, cfg.EmailFromAddr)
	files := utils.NewFileStore(cfg.UploadDir)

	s3store, err := utils.NewS3Store(context.Background(), cfg.AWSRegion, cfg.AWSBucketName)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize S3 client")
	}

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to hash admin password")
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = store.EnsureAdmin(ctx, "Admin", cfg.AdminEmail, string(hash))
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to seed admin account")
		}
	}

	auth := services.NewAuthService(store, mailer, tokens, cfg.OTPTTL, cfg.AdminTokenTTL, cfg.UserTokenTTL)

	// Stored upload paths are relative to the upload root; they resolve
	// through the /uploads/ static route regardless of where the root lives.
	uploadBase := strings.TrimSuffix(cfg.BaseURL, "/") + "/uploads"

	router := api.NewRouter(api.RouterDeps{
		Tokens: tokens,

		Auth:       api.NewAuthHandler(auth),
		About:      api.NewAboutHandler(services.NewAboutService(store, files, uploadBase), files),
		Social:     api.NewSocialHandler(services.NewSocialService(store, files, uploadBase), files),
		Skills:     api.NewSkillsHandler(services.NewSkillService(store, files, uploadBase), files),
		Experience: api.NewExperienceHandler(services.NewExperienceService(store, files, uploadBase), files),
		Education:  api.NewEducationHandler(services.NewEducationService(store)),
		Team:       api.NewTeamHandler(services.NewTeamService(store, files, uploadBase), files),
		Projects:   api.NewProjectsHandler(services.NewProjectService(store, files, uploadBase), files),
		Terms:      api.NewTermsHandler(services.NewTermsService(store)),
		Contact:    api.NewContactHandler(services.NewContactService(store, s3store)),

		UploadDir: cfg.UploadDir,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect failed")
	}
}
