package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	App       App
	DB        DB
	Scheduler Scheduler
}

type App struct {
	App     string
	Version string
	Port    string
	Env     string
}

type DB struct {
	DbHost string
	DbUser string
	DbPass string
	DbPort string
	DbName string
	DbSsl  string
	DbTz   string
}

type Scheduler struct {
	WorkloadReportSpec string
}

var config *Config

func Init() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, reading configuration from environment")
	}

	config = &Config{
		App: App{
			App:     getEnv("APP_NAME", "taskdesk"),
			Version: getEnv("APP_VERSION", "1.0.0"),
			Port:    getEnv("APP_PORT", "3030"),
			Env:     getEnv("APP_ENV", "development"),
		},
		DB: DB{
			DbHost: getEnv("DB_HOST", "localhost"),
			DbUser: getEnv("DB_USER", "root"),
			DbPass: getEnv("DB_PASS", ""),
			DbPort: getEnv("DB_PORT", "3306"),
			DbName: getEnv("DB_NAME", "taskdesk"),
			DbSsl:  getEnv("DB_SSL", "false"),
			DbTz:   getEnv("DB_TZ", "UTC"),
		},
		Scheduler: Scheduler{
			WorkloadReportSpec: getEnv("WORKLOAD_REPORT_CRON", "0 8 * * *"),
		},
	}
}

func Get() *Config {
	if config == nil {
		Init()
	}
	return config
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
