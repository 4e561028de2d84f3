package config // package config loads application configuration from environment variables

import (
	"os"
	"strings"
	"time"
)

// DefaultGroqBaseURL is Groq's OpenAI-compatible endpoint.
const DefaultGroqBaseURL = "https://api.groq.com/openai/v1"

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Nothing here is required: every value has a
// default so the server can start on a bare machine.
type Config struct {
	Env         string // application environment (e.g. "dev", "prod")
	Port        string // HTTP port to listen on
	LogLevel    string // logrus level name
	LogFormat   string // "text" or "json"
	LogRequests bool   // emit one log line per request

	Groq GroqConfig

	CORSAllowOrigins []string // origins allowed on /api/*
	BodyLimit        string   // max request body, echo BodyLimit syntax (e.g. "1M")

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// GroqConfig holds the settings for the language-model client.  APIKey may
// be empty; callers are expected to warn about it rather than fail.
type GroqConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Load reads configuration values from environment variables and returns a
// Config.  Unparseable booleans and durations fall back to their defaults.
func Load() Config {
	port := envStr("PORT", "")
	if port == "" {
		port = envStr("APP_PORT", "5000")
	}
	return Config{
		Env:         envStr("APP_ENV", "dev"),
		Port:        port,
		LogLevel:    envStr("LOG_LEVEL", "info"),
		LogFormat:   strings.ToLower(envStr("LOG_FORMAT", "text")),
		LogRequests: envBool("LOG_REQUESTS", true),
		Groq: GroqConfig{
			APIKey:  strings.TrimSpace(os.Getenv("GROQ_API_KEY")),
			BaseURL: envStr("GROQ_BASE_URL", DefaultGroqBaseURL),
			Model:   envStr("GROQ_MODEL", "llama-3.3-70b-versatile"),
			Timeout: envDur("GROQ_TIMEOUT", 30*time.Second),
		},
		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{"*"}),
		BodyLimit:        envStr("BODY_LIMIT", "1M"),
		ReadTimeout:      envDur("READ_TIMEOUT", 10*time.Second),
		WriteTimeout:     envDur("WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:      envDur("IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout:  envDur("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string { return ":" + c.Port }

func envStr(k, d string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return d
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil && dur > 0 {
		return dur
	}
	return d
}

// envList splits a comma separated variable, dropping empty items.
func envList(k string, d []string) []string {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return d
	}
	return out
}
