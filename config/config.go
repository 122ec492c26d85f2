package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type AppConfig struct {
	Port            string
	Timezone        string
	DBPath          string
	JWTSecret       string
	RoutineInterval time.Duration
	SaveRetries     int
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Debugf("[cfg] no .env file loaded: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	interval := 60
	if v, err := strconv.Atoi(get("ROUTINE_CHECK_SECONDS", "60")); err == nil && v > 0 {
		interval = v
	}
	retries := 3
	if v, err := strconv.Atoi(get("SAVE_RETRIES", "3")); err == nil && v > 0 {
		retries = v
	}
	cfg := AppConfig{
		Port:            get("PORT", "8080"),
		Timezone:        get("TZ", "Europe/Paris"),
		DBPath:          get("DB_PATH", "jardin.db"),
		JWTSecret:       get("JWT_SECRET", "dev-secret-change-me"),
		RoutineInterval: time.Duration(interval) * time.Second,
		SaveRetries:     retries,
	}
	log.Infof("[cfg] port=%s db=%s routine_check=%s", cfg.Port, cfg.DBPath, cfg.RoutineInterval)
	return cfg
}
