package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/yatube-lab/backend/config"
	"github.com/yatube-lab/backend/pkg/logger"
	"github.com/yatube-lab/backend/pkg/xcontext"
)

// loadConfig reads the configuration from the environment, then overlays the
// toml file at path if any.
func (s *srv) loadConfig(path string) error {
	cfg := config.Configs{
		Env:      getEnv("ENV", "local"),
		LogLevel: getEnv("LOG_LEVEL", "INFO"),
		Database: config.DatabaseConfigs{
			Driver:   getEnv("DB_DRIVER", "mysql"),
			Host:     getEnv("MYSQL_HOST", "localhost"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			Database: getEnv("MYSQL_DATABASE", "yatube"),
			User:     getEnv("MYSQL_USER", "mysql"),
			Password: getEnv("MYSQL_PASSWORD", "mysql"),
			LogLevel: getEnv("DB_LOG_LEVEL", "ERROR"),
		},
		ApiServer: config.APIServerConfigs{
			ServerConfigs: config.ServerConfigs{
				Host: getEnv("API_HOST", ""),
				Port: getEnv("API_PORT", "8080"),
				Cert: getEnv("SERVER_CERT", ""),
				Key:  getEnv("SERVER_KEY", ""),
			},
			MetricsPort:    getEnv("METRICS_PORT", "9090"),
			AllowedOrigins: getEnvList("API_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		Auth: config.AuthConfigs{
			TokenSecret: getEnv("TOKEN_SECRET", "token_secret"),
			AccessToken: config.TokenConfigs{
				Name:       getEnv("ACCESS_TOKEN_NAME", "access_token"),
				Expiration: getEnvDuration("ACCESS_TOKEN_EXPIRATION", 24*time.Hour),
			},
			Admins: getEnvList("ADMIN_USERNAMES", nil),
		},
		Storage: config.S3Configs{
			Region:         getEnv("STORAGE_REGION", "auto"),
			Endpoint:       getEnv("STORAGE_ENDPOINT", "http://localhost:9000"),
			PublicEndpoint: getEnv("STORAGE_PUBLIC_ENDPOINT", "http://localhost:9000"),
			AccessKey:      getEnv("STORAGE_ACCESS_KEY", ""),
			SecretKey:      getEnv("STORAGE_SECRET_KEY", ""),
			SSLDisabled:    getEnvBool("STORAGE_SSL_DISABLED", true),
		},
		File: config.FileConfigs{
			MaxSize:       int64(getEnvInt("MAX_UPLOAD_FILE", 2*1024*1024)),
			MaxImageWidth: uint(getEnvInt("MAX_IMAGE_WIDTH", 960)),
			ImageBucket:   getEnv("IMAGE_BUCKET", "images"),
		},
		Redis: config.RedisConfigs{
			Addr: getEnv("REDIS_ADDRESS", "localhost:6379"),
		},
		Cache: config.CacheConfigs{
			Driver: getEnv("CACHE_DRIVER", "redis"),
			Prefix: getEnv("CACHE_PREFIX", "feed"),
		},
		Feed: config.FeedConfigs{
			PageSize: getEnvInt("FEED_PAGE_SIZE", 10),
			IndexTTL: getEnvDuration("FEED_INDEX_TTL", 20*time.Second),
		},
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return err
		}
	}

	s.ctx = xcontext.WithConfigs(s.ctx, cfg)
	return nil
}

func (s *srv) loadLogger() {
	level := logger.ParseLevel(xcontext.Configs(s.ctx).LogLevel)
	s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger(level))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return strings.TrimSpace(v)
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}

	return v
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}

	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return fallback
	}

	return v
}

func getEnvList(key string, fallback []string) []string {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}

	result := []string{}
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}

	return result
}
