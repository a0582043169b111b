package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Failure policies for an unreachable classifier.
const (
	FailOpen   = "open"
	FailClosed = "closed"
)

// Store backends
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config is the runtime configuration gathered from the environment.
type Config struct {
	Port        string
	CORSOrigins string

	GeminiAPIKey      string
	GeminiModel       string
	GeminiBaseURL     string
	ClassifierTimeout time.Duration
	HeuristicDelay    time.Duration
	FailPolicy        string

	StoreBackend  string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	SessionTTL    time.Duration

	AlertSinks        []string
	KafkaBrokers      []string
	KafkaAlertTopic   string
	RedisAlertChannel string
	MQTTBroker        string
	MQTTAlertTopic    string

	// AlertPublishTimeout bounds how long a request waits on the sinks.
	AlertPublishTimeout time.Duration

	JWTSecret       string
	SessionTokenTTL time.Duration

	SeedTransactions   int
	RateLimitPerMinute int
}

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// Load reads the configuration from the environment. Missing values fall
// back to development defaults; nothing here is fatal.
func Load() *Config {
	apiKey := GetEnv("GEMINI_API_KEY", GetEnv("API_KEY", ""))

	policy := strings.ToLower(GetEnv("FAIL_POLICY", FailOpen))
	if policy != FailOpen && policy != FailClosed {
		log.Printf("unknown FAIL_POLICY %q, using %q", policy, FailOpen)
		policy = FailOpen
	}

	backend := strings.ToLower(GetEnv("STORE_BACKEND", StoreMemory))
	if backend != StoreMemory && backend != StoreRedis {
		log.Printf("unknown STORE_BACKEND %q, using %q", backend, StoreMemory)
		backend = StoreMemory
	}

	return &Config{
		Port:        GetEnv("PORT", "3000"),
		CORSOrigins: GetEnv("CORS_ORIGINS", "http://localhost:5173"),

		GeminiAPIKey:      apiKey,
		GeminiModel:       GetEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiBaseURL:     GetEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		ClassifierTimeout: GetDurationEnv("CLASSIFIER_TIMEOUT", 15*time.Second),
		HeuristicDelay:    GetDurationEnv("HEURISTIC_DELAY", 1500*time.Millisecond),
		FailPolicy:        policy,

		StoreBackend:  backend,
		RedisHost:     GetEnv("REDIS_HOST", "localhost"),
		RedisPort:     GetEnv("REDIS_PORT", "6379"),
		RedisPassword: GetEnv("REDIS_PASSWORD", ""),
		RedisDB:       GetIntEnv("REDIS_DB", 0),
		SessionTTL:    GetDurationEnv("SESSION_TTL", 24*time.Hour),

		AlertSinks:        GetListEnv("ALERT_SINKS", []string{"log"}),
		KafkaBrokers:      GetListEnv("KAFKA_BROKERS", []string{"localhost:9092"}),
		KafkaAlertTopic:   GetEnv("KAFKA_ALERT_TOPIC", "fraud-alerts"),
		RedisAlertChannel: GetEnv("REDIS_ALERT_CHANNEL", "fraudeye:alerts:live"),
		MQTTBroker:        GetEnv("MQTT_BROKER", "tcp://localhost:1883"),
		MQTTAlertTopic:    GetEnv("MQTT_ALERT_TOPIC", "fraudeye/alerts"),

		AlertPublishTimeout: GetDurationEnv("ALERT_PUBLISH_TIMEOUT", 2*time.Second),

		JWTSecret:       GetEnv("JWT_SECRET", "fraudeye"),
		SessionTokenTTL: GetDurationEnv("SESSION_TOKEN_TTL", 12*time.Hour),

		SeedTransactions:   GetIntEnv("SEED_TRANSACTIONS", 50),
		RateLimitPerMinute: GetIntEnv("RATE_LIMIT_PER_MINUTE", 30),
	}
}

// HasClassifierCredential reports whether the remote classifier can be used.
func (c *Config) HasClassifierCredential() bool {
	return c.GeminiAPIKey != ""
}

// WantsSink reports whether the named alert sink is configured. Names are
// matched case-insensitively.
func (c *Config) WantsSink(name string) bool {
	for _, s := range c.AlertSinks {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return true
		}
	}
	return false
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetDurationEnv returns a duration environment variable or a default value.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
		log.Printf("invalid %s=%q, using default %s", key, val, defaultVal)
	}
	return defaultVal
}

// GetListEnv splits a comma separated environment variable.
func GetListEnv(key string, defaultVal []string) []string {
	val, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(val) == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// IsProduction checks if the app runs in production mode.
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}
