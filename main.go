package main

import (
	"context"
	"log"
	"time"

	"movie-catalog/cmd"
	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/memory"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/wire"
	"movie-catalog/pkg/database"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("storage", config.Storage.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	// Select the storage backend
	repos, err := initRepository(config, logger)
	if err != nil {
		logger.Fatal("Failed to initialize storage", zap.Error(err))
	}

	// Seed accounts exist out of band; the API never creates users.
	if err := seedUsers(repos, config, logger); err != nil {
		logger.Fatal("Failed to seed users", zap.Error(err))
	}

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}

func initRepository(config *utils.Config, logger *zap.Logger) (*repository.Repository, error) {
	if config.Storage.Driver != "postgres" {
		logger.Info("Using in-memory storage")
		return memory.NewRepository(logger), nil
	}

	if err := database.RunMigrations(config.Database); err != nil {
		return nil, err
	}

	db, err := database.InitDB(config.Database)
	if err != nil {
		return nil, err
	}

	logger.Info("Database connected successfully")

	return repository.NewRepository(db, logger), nil
}

func seedUsers(repos *repository.Repository, config *utils.Config, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	seeds := []struct {
		username string
		password string
		role     entity.UserRole
	}{
		{config.Seed.AdminUsername, config.Seed.AdminPassword, entity.RoleAdmin},
		{config.Seed.UserUsername, config.Seed.UserPassword, entity.RoleUser},
	}

	for _, seed := range seeds {
		existing, err := repos.User.FindByUsername(ctx, seed.username)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		hash, err := utils.HashPassword(seed.password)
		if err != nil {
			return err
		}

		user := &entity.User{
			Username:     seed.username,
			PasswordHash: hash,
			Role:         seed.role,
			CreatedAt:    time.Now(),
		}
		if err := repos.User.Create(ctx, user); err != nil {
			return err
		}

		logger.Info("Seed user created",
			zap.String("username", seed.username),
			zap.String("role", string(seed.role)),
		)
	}

	return nil
}
