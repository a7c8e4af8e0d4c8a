package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Address               string `yaml:"address"`
		RequestTimeoutSeconds int    `yaml:"request_timeout_seconds"`
	} `yaml:"server"`
	Database struct {
		DSN                 string `yaml:"dsn"`
		MaxOpenConns        int    `yaml:"max_open_conns"`
		MaxIdleConns        int    `yaml:"max_idle_conns"`
		ConnMaxLifetimeMins int    `yaml:"conn_max_lifetime_minutes"`
	} `yaml:"database"`
	Auth struct {
		SigningKey       string `yaml:"signing_key"`
		AccessTTLMinutes int    `yaml:"access_ttl_minutes"`
		RefreshTTLHours  int    `yaml:"refresh_ttl_hours"`
	} `yaml:"auth"`
	Redis struct {
		Addr                string `yaml:"addr"`
		Password            string `yaml:"password"`
		DB                  int    `yaml:"db"`
		DashboardTTLSeconds int    `yaml:"dashboard_ttl_seconds"`
	} `yaml:"redis"`
	Storage struct {
		UploadsDir string `yaml:"uploads_dir"`
		S3         struct {
			Enabled   bool   `yaml:"enabled"`
			Bucket    string `yaml:"bucket"`
			Region    string `yaml:"region"`
			Endpoint  string `yaml:"endpoint"`
			AccessKey string `yaml:"access_key"`
			SecretKey string `yaml:"secret_key"`
		} `yaml:"s3"`
	} `yaml:"storage"`
	Firebase struct {
		CredentialsFile string `yaml:"credentials_file"`
	} `yaml:"firebase"`
}

func LoadConfig() Config {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		log.Fatalf("Failed to unmarshal config data: %v", err)
	}

	cfg.applyDefaults()
	cfg.applyEnv()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Address == "" {
		c.Server.Address = ":4001"
	}
	if c.Server.RequestTimeoutSeconds == 0 {
		c.Server.RequestTimeoutSeconds = 15
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 25
	}
	if c.Database.ConnMaxLifetimeMins == 0 {
		c.Database.ConnMaxLifetimeMins = 30
	}
	if c.Auth.AccessTTLMinutes == 0 {
		c.Auth.AccessTTLMinutes = 120
	}
	if c.Auth.RefreshTTLHours == 0 {
		c.Auth.RefreshTTLHours = 24 * 30
	}
	if c.Redis.DashboardTTLSeconds == 0 {
		c.Redis.DashboardTTLSeconds = 60
	}
	if c.Storage.UploadsDir == "" {
		c.Storage.UploadsDir = "./uploads"
	}
}

// Secrets and deployment-specific values win from the environment.
func (c *Config) applyEnv() {
	if v := os.Getenv("DB_DSN"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("AUTH_SIGNING_KEY"); v != "" {
		c.Auth.SigningKey = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Redis.DB = n
		}
	}
	if v := os.Getenv("S3_ACCESS_KEY"); v != "" {
		c.Storage.S3.AccessKey = v
	}
	if v := os.Getenv("S3_SECRET_KEY"); v != "" {
		c.Storage.S3.SecretKey = v
	}
	if v := os.Getenv("FIREBASE_CREDENTIALS_FILE"); v != "" {
		c.Firebase.CredentialsFile = v
	}
}
