package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Saujankhnl/remotely-internship/config"
	"github.com/Saujankhnl/remotely-internship/internal/api/handlers"
	"github.com/Saujankhnl/remotely-internship/internal/api/middleware"
	"github.com/Saujankhnl/remotely-internship/internal/api/routes"
	"github.com/Saujankhnl/remotely-internship/internal/cache"
	"github.com/Saujankhnl/remotely-internship/internal/logger"
	mongorepo "github.com/Saujankhnl/remotely-internship/internal/repositories/mongo"
	pgrepo "github.com/Saujankhnl/remotely-internship/internal/repositories/postgres"
	"github.com/Saujankhnl/remotely-internship/internal/services"
	"github.com/Saujankhnl/remotely-internship/internal/workers"
)

func main() {
	_ = godotenv.Load()

	l := logger.New()

	// Init PostgreSQL
	if err := config.InitPostgres(); err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	if err := config.MigratePostgres(); err != nil {
		log.Fatalf("PostgreSQL migrate error: %v", err)
	}
	l.Info("PostgreSQL connected")

	// Init MongoDB (status-change audit trail)
	if err := config.InitMongo(); err != nil {
		log.Fatalf("MongoDB init error: %v", err)
	}
	if err := config.EnsureMongoIndexes(); err != nil {
		log.Fatalf("MongoDB index error: %v", err)
	}
	l.Info("MongoDB connected")

	// Init Redis (ranking cache + screening progress)
	if err := config.InitRedis(); err != nil {
		log.Fatalf("Redis init error: %v", err)
	}
	l.Info("Redis connected")

	// Repositories
	profiles := pgrepo.NewProfileRepo(config.PostgresDB)
	postings := pgrepo.NewPostingRepo(config.PostgresDB)
	applications := pgrepo.NewApplicationRepo(config.PostgresDB)
	results := pgrepo.NewScreeningRepo(config.PostgresDB)
	badges := pgrepo.NewBadgeRepo(config.PostgresDB)
	notifications := pgrepo.NewNotificationRepo(config.PostgresDB)
	changes := mongorepo.NewStatusChangeRepo(config.MongoDatabase())

	rankingCache := cache.NewRedisCache(config.RedisClient)

	// Services
	notifier := services.NewNotificationService(notifications)
	mailer := services.NewLogEmailService(l)
	screeningSvc := services.NewScreeningService(services.ScreeningDeps{
		Applications: applications,
		Postings:     postings,
		Profiles:     profiles,
		Badges:       badges,
		Results:      results,
		Changes:      changes,
		Notifier:     notifier,
		Mailer:       mailer,
		Progress:     services.NewRedisProgressPublisher(config.RedisClient),
		Cache:        rankingCache,
		Logger:       l,
	})
	rankingSvc := services.NewRankingService(services.RankingDeps{
		Postings:     postings,
		Applications: applications,
		Profiles:     profiles,
		Badges:       badges,
		Cache:        rankingCache,
		Logger:       l,
	})

	// Scheduled auto-screening sweep
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	worker := &workers.AutoScreenWorker{
		Postings:  postings,
		Screening: screeningSvc,
		Logger:    l,
		Interval:  autoScreenInterval(),
	}
	if err := worker.Start(ctx); err != nil {
		log.Fatalf("auto-screen worker error: %v", err)
	}

	// Handlers & routes
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(l))

	routes.RegisterRoutes(r, routes.Deps{
		Screening: handlers.NewScreeningHandler(screeningSvc),
		Ranking:   handlers.NewRankingHandler(rankingSvc),
		Profile:   handlers.NewProfileHandler(profiles, badges),
		WS:        handlers.NewWSHandler(screeningSvc, config.RedisClient),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func autoScreenInterval() time.Duration {
	if v := os.Getenv("AUTO_SCREEN_INTERVAL_MINUTES"); v != "" {
		if m, err := strconv.Atoi(v); err == nil && m > 0 {
			return time.Duration(m) * time.Minute
		}
	}
	return 10 * time.Minute
}
