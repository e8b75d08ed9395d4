package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Log       Logger    `mapstructure:"logger"`
	API       API       `mapstructure:"api"`
	Cache     Cache     `mapstructure:"cache"`
	Profile   Profile   `mapstructure:"profile"`
	Catalog   Catalog   `mapstructure:"catalog"`
	Simulator Simulator `mapstructure:"simulator"`
	Advisor   Advisor   `mapstructure:"advisor"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type API struct {
	Port              int `mapstructure:"port"`
	ChatRatePerSecond int `mapstructure:"chat_rate_per_second"`
	ChatBurst         int `mapstructure:"chat_burst"`
}

type Cache struct {
	DefaultExpiration time.Duration `mapstructure:"default_expiration"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
}

type Profile struct {
	DBPath string `mapstructure:"db_path"`
}

type Catalog struct {
	HistoryDays  int `mapstructure:"history_days"`
	TrendingSize int `mapstructure:"trending_size"`
}

type Simulator struct {
	Enabled  bool   `mapstructure:"enabled"`
	CronSpec string `mapstructure:"cron_spec"`
}

type Advisor struct {
	TopPicks int `mapstructure:"top_picks"`
}

func Load() (*Config, error) {
	// Optional .env for local development; viper picks the vars up afterwards.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("No config file loaded:", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("api.port", 8080)
	viper.SetDefault("api.chat_rate_per_second", 5)
	viper.SetDefault("api.chat_burst", 10)
	viper.SetDefault("cache.default_expiration", 15*time.Minute)
	viper.SetDefault("cache.cleanup_interval", 30*time.Minute)
	viper.SetDefault("profile.db_path", "stock-advisor.db")
	viper.SetDefault("catalog.history_days", 260)
	viper.SetDefault("catalog.trending_size", 5)
	viper.SetDefault("simulator.enabled", true)
	viper.SetDefault("simulator.cron_spec", "0 22 * * 1-5")
	viper.SetDefault("advisor.top_picks", 3)
}
