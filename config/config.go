package config

import (
	"fmt"
	"time"
)

type Configs struct {
	Env      string
	LogLevel string

	Database  DatabaseConfigs
	ApiServer APIServerConfigs
	Auth      AuthConfigs
	Storage   S3Configs
	File      FileConfigs
	Redis     RedisConfigs
	Cache     CacheConfigs
	Feed      FeedConfigs
}

type DatabaseConfigs struct {
	// Driver is either mysql or sqlite.
	Driver   string
	Host     string
	Port     string
	Database string
	User     string
	Password string
	LogLevel string
}

func (d *DatabaseConfigs) ConnectionString() string {
	if d.Driver == "sqlite" {
		return d.Database
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host string
	Port string
	Cert string
	Key  string
}

type APIServerConfigs struct {
	ServerConfigs

	MetricsPort    string
	AllowedOrigins []string
}

type AuthConfigs struct {
	TokenSecret string
	AccessToken TokenConfigs

	// Admins are the usernames allowed to manage groups and the page cache.
	Admins []string
}

type TokenConfigs struct {
	Name       string
	Expiration time.Duration
}

type S3Configs struct {
	Region         string
	Endpoint       string
	PublicEndpoint string
	AccessKey      string
	SecretKey      string
	SSLDisabled    bool
}

type FileConfigs struct {
	MaxSize       int64
	MaxImageWidth uint
	ImageBucket   string
}

type RedisConfigs struct {
	Addr string
}

type CacheConfigs struct {
	// Driver is either memory or redis.
	Driver string
	Prefix string
}

type FeedConfigs struct {
	PageSize int
	IndexTTL time.Duration
}
