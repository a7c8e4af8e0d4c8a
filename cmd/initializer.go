package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"google.golang.org/api/option"

	"estateBack/internal/config"
	"estateBack/internal/handlers"
	"estateBack/internal/repositories"
	"estateBack/internal/services"
	"estateBack/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	cfg      config.Config
	db       *sql.DB

	tokens   *utils.Manager
	userRepo *repositories.UserRepository

	propertyHandler *handlers.PropertyHandler
	userHandler     *handlers.UserHandler
	adminHandler    *handlers.AdminHandler
	inquiryHandler  *handlers.InquiryHandler
}

func initializeApp(db *sql.DB, cfg config.Config, cache *redis.Client, messagingClient *messaging.Client, errorLog, infoLog *log.Logger) *application {
	tokens, err := utils.NewManager(cfg.Auth.SigningKey)
	if err != nil {
		errorLog.Fatal(err)
	}

	// Repositories
	propertyRepo := repositories.PropertyRepository{DB: db}
	userRepo := repositories.UserRepository{DB: db}
	inquiryRepo := repositories.InquiryRepository{DB: db}
	adminRepo := repositories.AdminRepository{DB: db}

	// Services
	propertyService := &services.PropertyService{PropertyRepo: &propertyRepo}
	userService := &services.UserService{
		UserRepo:     &userRepo,
		TokenManager: tokens,
		AccessTTL:    time.Duration(cfg.Auth.AccessTTLMinutes) * time.Minute,
		RefreshTTL:   time.Duration(cfg.Auth.RefreshTTLHours) * time.Hour,
	}
	notifier := &services.NotificationService{Client: messagingClient, UserRepo: &userRepo}
	inquiryService := &services.InquiryService{
		InquiryRepo:  &inquiryRepo,
		PropertyRepo: &propertyRepo,
		Notifier:     notifier,
	}
	adminService := &services.AdminService{
		AdminRepo:   &adminRepo,
		UserRepo:    &userRepo,
		InquiryRepo: &inquiryRepo,
		Cache:       cache,
		CacheTTL:    time.Duration(cfg.Redis.DashboardTTLSeconds) * time.Second,
	}

	images := &handlers.ImageStore{UploadsDir: cfg.Storage.UploadsDir}
	if cfg.Storage.S3.Enabled {
		images.S3 = utils.NewS3Storage(
			cfg.Storage.S3.Bucket,
			cfg.Storage.S3.Region,
			cfg.Storage.S3.Endpoint,
			cfg.Storage.S3.AccessKey,
			cfg.Storage.S3.SecretKey,
		)
	}

	return &application{
		errorLog:        errorLog,
		infoLog:         infoLog,
		cfg:             cfg,
		db:              db,
		tokens:          tokens,
		userRepo:        &userRepo,
		propertyHandler: &handlers.PropertyHandler{Service: propertyService, Images: images},
		userHandler:     &handlers.UserHandler{Service: userService},
		adminHandler:    &handlers.AdminHandler{Service: adminService},
		inquiryHandler:  &handlers.InquiryHandler{Service: inquiryService},
	}
}

func openDB(cfg config.Config) (*sql.DB, error) {
	db, err := sql.Open("mysql", cfg.Database.DSN)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetimeMins) * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func newMessagingClient(cfg config.Config) (*messaging.Client, error) {
	if cfg.Firebase.CredentialsFile == "" {
		return nil, errors.New("no credentials file configured")
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(cfg.Firebase.CredentialsFile))
	if err != nil {
		return nil, err
	}

	return app.Messaging(ctx)
}
