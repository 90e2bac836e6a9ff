package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type ServerConfig struct {
	DatabaseURL   string
	HTTPAddr      string
	HolidayRegion string
	WebDir        string
}

var instance *ServerConfig
var once sync.Once

func GetServerConfig() *ServerConfig {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			logrus.Debug("no .env file found, using process environment")
		}

		instance = &ServerConfig{
			DatabaseURL:   getEnv("DATABASE_URL", "wio_data.db"),
			HTTPAddr:      getEnv("HTTP_ADDR", "127.0.0.1:8080"),
			HolidayRegion: getEnv("HOLIDAY_REGION", "us"),
			WebDir:        getEnv("WEB_DIR", "./web"),
		}
	})

	return instance
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}
