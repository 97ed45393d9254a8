package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Redis configuration struct.
type RedisConfiguration struct {
	Host     string
	Port     string
	Password string
}

// Enabled reports whether a Redis host was configured.
func (r RedisConfiguration) Enabled() bool {
	return r.Host != ""
}

type DatabaseConfiguration struct {
	URL string
}

// Single rate limit window.
type RateLimitWindow struct {
	Count         int
	ResetInterval time.Duration
}

// Riot API configuration.
type RiotConfiguration struct {
	ApiKey     string
	SelfPuuid  string
	SelfRegion string
	Short      RateLimitWindow
	Long       RateLimitWindow
}

// Bucket configuration for the champion images.
type BucketConfiguration struct {
	Name         string
	Region       string
	Endpoint     string
	AccessKey    string
	AccessSecret string
	PublicURL    string
}

// FreshnessConfiguration holds how long stored data is served before a refetch.
type FreshnessConfiguration struct {
	Profile    time.Duration
	Matches    time.Duration
	MatchCount int
}

// ScoringConfiguration holds the effectiveness score weights.
type ScoringConfiguration struct {
	KDAWeight     float64
	DamageWeight  float64
	HealingWeight float64
}

type Config struct {
	Environment    string
	LogLevel       string
	HTTPAddr       string
	GRPCHealthAddr string
	AssetsDir      string
	Language       string

	Redis     RedisConfiguration
	Database  DatabaseConfiguration
	Riot      RiotConfiguration
	Bucket    BucketConfiguration
	Freshness FreshnessConfiguration
	Scoring   ScoringConfiguration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("GRPC_HEALTH_ADDR", ":50051")
	v.SetDefault("ASSETS_DIR", "public/champions")
	v.SetDefault("DDRAGON_LANGUAGE", "en_US")
	v.SetDefault("MY_REGION", "na1")

	v.SetDefault("PROFILE_FRESHNESS", 24*time.Hour)
	v.SetDefault("MATCH_FRESHNESS", time.Hour)
	v.SetDefault("MATCH_COUNT", 10)

	// Development key limits.
	v.SetDefault("RIOT_LIMIT_SHORT_COUNT", 20)
	v.SetDefault("RIOT_LIMIT_SHORT_INTERVAL", time.Second)
	v.SetDefault("RIOT_LIMIT_LONG_COUNT", 100)
	v.SetDefault("RIOT_LIMIT_LONG_INTERVAL", 2*time.Minute)

	v.SetDefault("SCORE_KDA_WEIGHT", 0.4)
	v.SetDefault("SCORE_DAMAGE_WEIGHT", 0.4)
	v.SetDefault("SCORE_HEALING_WEIGHT", 0.2)
}

// Load reads the .env file when present and binds the environment into a Config.
func Load() (*Config, error) {
	if os.Getenv("ENVIRONMENT") != "docker" {
		// A missing .env is fine, the variables can come from the environment.
		_ = godotenv.Load()
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Environment:    v.GetString("ENVIRONMENT"),
		LogLevel:       strings.ToLower(v.GetString("LOG_LEVEL")),
		HTTPAddr:       v.GetString("HTTP_ADDR"),
		GRPCHealthAddr: v.GetString("GRPC_HEALTH_ADDR"),
		AssetsDir:      v.GetString("ASSETS_DIR"),
		Language:       v.GetString("DDRAGON_LANGUAGE"),
		Redis: RedisConfiguration{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
		},
		Database: DatabaseConfiguration{
			URL: v.GetString("DATABASE_URL"),
		},
		Riot: RiotConfiguration{
			ApiKey:     v.GetString("API_KEY"),
			SelfPuuid:  v.GetString("MY_PUUID"),
			SelfRegion: strings.ToLower(v.GetString("MY_REGION")),
			Short: RateLimitWindow{
				Count:         v.GetInt("RIOT_LIMIT_SHORT_COUNT"),
				ResetInterval: v.GetDuration("RIOT_LIMIT_SHORT_INTERVAL"),
			},
			Long: RateLimitWindow{
				Count:         v.GetInt("RIOT_LIMIT_LONG_COUNT"),
				ResetInterval: v.GetDuration("RIOT_LIMIT_LONG_INTERVAL"),
			},
		},
		Bucket: BucketConfiguration{
			Name:         v.GetString("BUCKET_NAME"),
			Region:       v.GetString("BUCKET_REGION"),
			Endpoint:     v.GetString("BUCKET_ENDPOINT"),
			AccessKey:    v.GetString("BUCKET_ACCESS_KEY"),
			AccessSecret: v.GetString("BUCKET_ACCESS_SECRET"),
			PublicURL:    v.GetString("BUCKET_PUBLIC_URL"),
		},
		Freshness: FreshnessConfiguration{
			Profile:    v.GetDuration("PROFILE_FRESHNESS"),
			Matches:    v.GetDuration("MATCH_FRESHNESS"),
			MatchCount: v.GetInt("MATCH_COUNT"),
		},
		Scoring: ScoringConfiguration{
			KDAWeight:     v.GetFloat64("SCORE_KDA_WEIGHT"),
			DamageWeight:  v.GetFloat64("SCORE_DAMAGE_WEIGHT"),
			HealingWeight: v.GetFloat64("SCORE_HEALING_WEIGHT"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Freshness.MatchCount < 1 || c.Freshness.MatchCount > 100 {
		return fmt.Errorf("MATCH_COUNT must be between 1 and 100, got %d", c.Freshness.MatchCount)
	}
	if c.Freshness.Profile < 0 || c.Freshness.Matches < 0 {
		return fmt.Errorf("freshness windows can't be negative")
	}
	if c.Riot.Short.Count < 1 || c.Riot.Long.Count < 1 {
		return fmt.Errorf("rate limit counts must be positive")
	}
	return nil
}
