package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Postgres  PostgresConfig  `mapstructure:"postgres"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Inventory InventoryConfig `mapstructure:"inventory"`
	Repair    RepairConfig    `mapstructure:"repair"`
}

type ServerConfig struct {
	Addr         string        `mapstructure:"addr"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	DB       int           `mapstructure:"db"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

type InventoryConfig struct {
	MaxRetries int `mapstructure:"max_retries"`
}

type RepairConfig struct {
	Interval time.Duration `mapstructure:"interval"`
	Lookback time.Duration `mapstructure:"lookback"`

	// HoldTTL bounds how long a pending-payment booking holds its
	// seats before the repair worker expires it. Zero disables expiry.
	HoldTTL time.Duration `mapstructure:"hold_ttl"`
}

// LoadConfig reads config/config.yaml, falling back to environment
// variables and defaults when the file is absent.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.AddConfigPath("./config")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.idle_timeout", 120*time.Second)
	v.SetDefault("postgres.host", GetEnv("DB_HOST", "localhost"))
	v.SetDefault("postgres.port", GetEnv("DB_PORT", "5432"))
	v.SetDefault("postgres.user", GetEnv("DB_USER", "postgres"))
	v.SetDefault("postgres.password", GetEnv("DB_PASSWORD", ""))
	v.SetDefault("postgres.dbname", GetEnv("DB_NAME", "seatcore"))
	v.SetDefault("redis.addr", GetEnv("REDIS_ADDR", "localhost:6379"))
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.cache_ttl", 30*time.Second)
	v.SetDefault("inventory.max_retries", 3)
	v.SetDefault("repair.interval", time.Minute)
	v.SetDefault("repair.lookback", time.Hour)
	v.SetDefault("repair.hold_ttl", 30*time.Minute)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
