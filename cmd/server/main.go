package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/islamku/muadzin/internal/cache"
	"github.com/islamku/muadzin/internal/db"
	"github.com/islamku/muadzin/internal/myquran"
	"github.com/islamku/muadzin/internal/notify"
	"github.com/islamku/muadzin/internal/refresh"
)

func main() {
	env := LoadEnvironment()

	if env.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	conn, err := db.Init(env.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := db.RunMigrations(conn, env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	store := db.NewStore(conn)

	scheduleCache := cache.New(env.RedisAddress, env.RedisUsername, env.RedisPassword)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := scheduleCache.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("redis unreachable, schedules will be fetched on demand")
	}

	notifier, err := notify.NewMQTTNotifier(env.MQTTBrokerURL, env.MQTTClientID, env.DeviceGroup)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mqtt broker")
	}
	defer notifier.Close()

	apiClient := myquran.NewClient()
	if base := os.Getenv("MYQURAN_BASE_URL"); base != "" {
		apiClient.BaseURL = base
	}

	scheduler := notify.NewScheduler(notifier)

	loop := refresh.NewLoop(store, apiClient, scheduleCache, scheduler, env.RefreshInterval)
	loop.Start(ctx)
	defer loop.Stop()

	ticker := refresh.NewTicker(store, scheduleCache, notifier)
	ticker.Start(ctx)
	defer ticker.Stop()

	r := gin.Default()
	RegisterRoutes(r, env, store, scheduleCache, apiClient, loop)

	log.Info().Str("address", env.ServerAddress).Msg("starting server")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
