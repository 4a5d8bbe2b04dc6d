package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Data      DataConfig      `mapstructure:"data"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Redis     RedisConfig     `mapstructure:"redis"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Reminders RemindersConfig `mapstructure:"reminders"`
}

type ServerConfig struct {
	Port    int           `mapstructure:"port"`
	Mode    string        `mapstructure:"mode"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// DataConfig locates the JSON documents the portal persists. Both stores
// live under Dir unless an absolute file path is given.
type DataConfig struct {
	Dir            string `mapstructure:"dir"`
	CalendarFile   string `mapstructure:"calendar_file"`
	PrinciplesFile string `mapstructure:"principles_file"`
}

// AuthConfig holds the single credential pair accepted by /api/login.
// This is a trivial gate for an internal tool, not a security boundary.
type AuthConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Host     string        `mapstructure:"host"`
	Port     int           `mapstructure:"port"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type CORSConfig struct {
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RemindersConfig controls the reminder registry. RescanCron is a cron
// expression for the periodic recompute of pending alerts from the
// persisted document.
type RemindersConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	RescanCron string `mapstructure:"rescan_cron"`
}

// LoadConfig reads configuration from an optional YAML file plus
// environment overrides. A missing config file is not an error: every
// field has a default, so the binary runs with zero configuration the
// way the original portal server did.
func LoadConfig(configPath string) (*Config, error) {
	var config Config

	// If CONFIG_FILE environment variable is set, use it
	if envConfigFile := os.Getenv("CONFIG_FILE"); envConfigFile != "" {
		configPath = envConfigFile
	}

	v := viper.New()
	v.SetConfigType("yaml")

	setDefaults(v)

	if configPath != "" {
		dir := filepath.Dir(configPath)
		file := filepath.Base(configPath)
		ext := filepath.Ext(file)
		name := strings.TrimSuffix(file, ext)

		v.AddConfigPath(dir)
		v.SetConfigName(name)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		// A config file is optional; only a malformed one is fatal.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error loading config file: %v", err)
		}
	}

	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Override with environment variables if they exist
	envVars := map[string]string{
		"server.port":           "PORT",
		"server.mode":           "SERVER_MODE",
		"server.timeout":        "SERVER_TIMEOUT",
		"data.dir":              "DATA_DIR",
		"auth.username":         "LOGIN_USERNAME",
		"auth.password":         "LOGIN_PASSWORD",
		"redis.enabled":         "REDIS_ENABLED",
		"redis.host":            "REDIS_HOST",
		"redis.port":            "REDIS_PORT",
		"redis.password":        "REDIS_PASSWORD",
		"redis.db":              "REDIS_DB",
		"logging.level":         "LOG_LEVEL",
		"logging.format":        "LOG_FORMAT",
		"reminders.rescan_cron": "REMINDERS_RESCAN_CRON",
	}

	for configKey, envVar := range envVars {
		if value := os.Getenv(envVar); value != "" {
			switch envVar {
			case "PORT", "REDIS_PORT", "REDIS_DB":
				if intVal, err := strconv.Atoi(value); err == nil {
					v.Set(configKey, intVal)
				}
			case "SERVER_TIMEOUT":
				if d, err := time.ParseDuration(value); err == nil {
					v.Set(configKey, d)
				}
			case "REDIS_ENABLED":
				if value == "true" || value == "1" {
					v.Set(configKey, true)
				} else if value == "false" || value == "0" {
					v.Set(configKey, false)
				}
			default:
				v.Set(configKey, value)
			}
		}
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %v", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.mode", "development")
	v.SetDefault("server.timeout", 10*time.Second)
	v.SetDefault("data.dir", ".")
	v.SetDefault("data.calendar_file", "calendar-events.json")
	v.SetDefault("data.principles_file", "principles-data.json")
	v.SetDefault("auth.username", "admin")
	v.SetDefault("auth.password", "terminal")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 5*time.Minute)
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Origin", "Content-Type", "Authorization"})
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("reminders.enabled", true)
	v.SetDefault("reminders.rescan_cron", "0 0 * * *")
}

// CalendarPath returns the resolved path of the calendar events document.
func (c *Config) CalendarPath() string {
	return resolve(c.Data.Dir, c.Data.CalendarFile)
}

// PrinciplesPath returns the resolved path of the principles document.
func (c *Config) PrinciplesPath() string {
	return resolve(c.Data.Dir, c.Data.PrinciplesFile)
}

func resolve(dir, file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dir, file)
}
