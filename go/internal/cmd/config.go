package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML file pointed to by CONFIG_PATH
type Config struct {
	Server struct {
		CORSOrigins []string `yaml:"cors_origins"`
	} `yaml:"server"`
	Attachments struct {
		Bucket    string `yaml:"bucket"`
		MaxSizeMB int64  `yaml:"max_size_mb"`
	} `yaml:"attachments"`
	Feed struct {
		StreamName    string `yaml:"stream_name"`
		SubjectPrefix string `yaml:"subject_prefix"`
	} `yaml:"feed"`
	Wyscout struct {
		MetricsPath string `yaml:"metrics_path"`
		DataDir     string `yaml:"data_dir"`
		ClipsDir    string `yaml:"clips_dir"`
	} `yaml:"wyscout"`
}

// Env holds the settings read from the environment
type Env struct {
	Port               string
	PlayersPath        string
	ConfigPath         string
	LogLevel           string
	NATSURL            string
	SupabaseURL        string
	SupabaseServiceKey string
	PublicBaseURL      string
}

func loadEnv() Env {
	return Env{
		Port:               getEnv("PORT", "8080"),
		PlayersPath:        getEnv("PLAYERS_PATH", "data/players.json"),
		ConfigPath:         os.Getenv("CONFIG_PATH"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		NATSURL:            os.Getenv("NATS_URL"),
		SupabaseURL:        os.Getenv("SUPABASE_URL"),
		SupabaseServiceKey: os.Getenv("SUPABASE_SERVICE_KEY"),
		PublicBaseURL:      getEnv("PUBLIC_BASE_URL", "http://localhost:"+getEnv("PORT", "8080")),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// loadConfig reads the YAML file at path. An empty path yields the defaults.
func loadConfig(path string) (*Config, error) {
	config := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if len(config.Server.CORSOrigins) == 0 {
		config.Server.CORSOrigins = splitList(getEnv("CORS_ORIGINS", "*"))
	}
	if config.Attachments.MaxSizeMB <= 0 {
		config.Attachments.MaxSizeMB = int64(getEnvAsInt("UPLOAD_MAX_MB", 50))
	}
	if config.Wyscout.MetricsPath == "" {
		config.Wyscout.MetricsPath = getEnv("WYSCOUT_METRICS_PATH", "public/wyscout-metrics.json")
	}
	if config.Wyscout.DataDir == "" {
		config.Wyscout.DataDir = getEnv("WYSCOUT_DATA_DIR", "public/data")
	}
	if config.Wyscout.ClipsDir == "" {
		config.Wyscout.ClipsDir = getEnv("WYSCOUT_CLIPS_DIR", "wyscout-clips")
	}
	return config, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
