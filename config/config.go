package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Dispatch DispatchConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

// DispatchConfig tunes the scheduling core: intake rate limiting,
// notification batching, and the assignment strategy used by dispatch.
type DispatchConfig struct {
	Strategy           string
	IntakeBucketSize   int
	IntakeRefillPerSec float64
	BatchSize          int
	FlushInterval      time.Duration
	StatsCacheSize     int
	ActiveWindow       time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	flushInterval, err := time.ParseDuration(viper.GetString("DISPATCH_FLUSH_INTERVAL"))
	if err != nil {
		flushInterval = 30 * time.Second
	}

	activeWindow, err := time.ParseDuration(viper.GetString("DISPATCH_ACTIVE_WINDOW"))
	if err != nil {
		activeWindow = 60 * time.Minute
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:       viper.GetString("JWT_SECRET"),
			AccessExpiry: accessExpiry,
		},
		Dispatch: DispatchConfig{
			Strategy:           viper.GetString("DISPATCH_STRATEGY"),
			IntakeBucketSize:   viper.GetInt("DISPATCH_INTAKE_BUCKET_SIZE"),
			IntakeRefillPerSec: viper.GetFloat64("DISPATCH_INTAKE_REFILL_PER_SEC"),
			BatchSize:          viper.GetInt("DISPATCH_BATCH_SIZE"),
			FlushInterval:      flushInterval,
			StatsCacheSize:     viper.GetInt("DISPATCH_STATS_CACHE_SIZE"),
			ActiveWindow:       activeWindow,
		},
	}

	if config.Dispatch.Strategy == "" {
		config.Dispatch.Strategy = "least_load"
	}
	if config.Dispatch.IntakeBucketSize <= 0 {
		config.Dispatch.IntakeBucketSize = 20
	}
	if config.Dispatch.IntakeRefillPerSec <= 0 {
		config.Dispatch.IntakeRefillPerSec = 1
	}
	if config.Dispatch.BatchSize <= 0 {
		config.Dispatch.BatchSize = 10
	}
	if config.Dispatch.StatsCacheSize <= 0 {
		config.Dispatch.StatsCacheSize = 128
	}

	return config, nil
}
