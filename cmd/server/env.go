package main

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/islamku/muadzin/internal/refresh"
)

type Environment struct {
	Environment    string
	ServerAddress  string
	SecretKey      string
	DatabaseURL    string
	MigrationsPath string

	RedisAddress  string
	RedisUsername string
	RedisPassword string

	MQTTBrokerURL string
	MQTTClientID  string
	DeviceGroup   string

	RefreshInterval time.Duration
}

// LoadEnvironment reads and validates env vars
func LoadEnvironment() Environment {
	// .env is optional; plain env vars win in deployment.
	if err := godotenv.Load(); err == nil {
		log.Info().Msg("loaded configuration from .env")
	}

	env := Environment{
		Environment:    os.Getenv("APP_ENV"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		SecretKey:      os.Getenv("JWT_SECRET"),
		ServerAddress:  os.Getenv("SERVER_ADDRESS"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),

		RedisAddress:  os.Getenv("REDIS_ADDRESS"),
		RedisUsername: os.Getenv("REDIS_USERNAME"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		MQTTBrokerURL: os.Getenv("MQTT_BROKER_URL"),
		MQTTClientID:  os.Getenv("MQTT_CLIENT_ID"),
		DeviceGroup:   os.Getenv("DEVICE_GROUP"),
	}

	if env.DatabaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}
	if env.SecretKey == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}
	if env.ServerAddress == "" {
		env.ServerAddress = ":8080"
	}
	if env.MigrationsPath == "" {
		env.MigrationsPath = "./migrations"
	}
	if env.RedisAddress == "" {
		env.RedisAddress = "localhost:6379"
	}
	if env.MQTTBrokerURL == "" {
		env.MQTTBrokerURL = "tcp://localhost:1883"
	}
	if env.MQTTClientID == "" {
		env.MQTTClientID = "muadzin-server"
	}
	if env.DeviceGroup == "" {
		env.DeviceGroup = "default"
	}

	env.RefreshInterval = refresh.MinimumInterval
	if raw := os.Getenv("REFRESH_INTERVAL_SECONDS"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatal().Str("value", raw).Msg("REFRESH_INTERVAL_SECONDS must be an integer")
		}
		env.RefreshInterval = time.Duration(seconds) * time.Second
	}

	return env
}
