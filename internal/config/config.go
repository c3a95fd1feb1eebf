// loads up the .env file and the process environment to be used internally by Callboard.

package config

import (
	"Callboard/internal/entity"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Defaults used when neither the env file nor the environment set a value.
const (
	DefaultPort            = "3000"
	DefaultEnv             = "PROD"
	DefaultStaticDir       = "public"
	DefaultSenderEmail     = "noreply@example.com"
	DefaultPublicAgentURL  = "wss://api.elevenlabs.io/v1/convai/conversation"
	DefaultUpstreamTimeout = 10 * time.Second
	DefaultPingInterval    = 30 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
)

// DefaultSignedURLEndpoints are tried in order when SIGNED_URL_ENDPOINTS is unset.
var DefaultSignedURLEndpoints = []string{
	"https://api.elevenlabs.io/v1/convai/conversation/get-signed-url",
	"https://api.elevenlabs.io/v1/convai/conversation/get_signed_url",
}

// Load reads envFile with godotenv (a missing file is fine) and then builds the Config
// out of the environment. Variables already present in the environment win over the file.
func Load(envFile string) (entity.Config, error) {
	if envFile != "" {
		if enverr := godotenv.Load(envFile); enverr != nil && !errors.Is(enverr, fs.ErrNotExist) {
			return entity.Config{}, fmt.Errorf("couldn't load %s: %w", envFile, enverr)
		}
	}
	return FromEnv()
}

// FromEnv builds the Config from the process environment only.
func FromEnv() (entity.Config, error) {
	cfg := entity.Config{
		Env:                orDefault(lookup("ENV"), DefaultEnv),
		Addr:               lookup("SRV_ADDR"),
		Port:               orDefault(lookup("PORT", "SRV_PORT"), DefaultPort),
		StaticDir:          orDefault(lookup("STATIC_DIR"), DefaultStaticDir),
		CORSOrigin:         orDefault(lookup("CORS_ORIGIN"), "*"),
		APIKey:             lookup("ELEVENLABS_API_KEY", "XI_API_KEY", "API_KEY"),
		AgentID:            lookup("ELEVENLABS_AGENT_ID", "AGENT_ID"),
		SignedURLEndpoints: splitList(lookup("SIGNED_URL_ENDPOINTS")),
		PublicAgentURL:     orDefault(lookup("PUBLIC_AGENT_WS_URL"), DefaultPublicAgentURL),
		FAQURL:             lookup("FAQ_URL", "FAQ_SOURCE_URL"),
		WebhookURL:         lookup("EMAIL_WEBHOOK_URL", "WEBHOOK_URL"),
		WebhookKey:         lookup("EMAIL_WEBHOOK_KEY", "WEBHOOK_KEY"),
		SenderEmail:        orDefault(lookup("SENDER_EMAIL", "FROM_EMAIL"), DefaultSenderEmail),
	}
	if len(cfg.SignedURLEndpoints) == 0 {
		cfg.SignedURLEndpoints = append([]string(nil), DefaultSignedURLEndpoints...)
	}

	var prserr error
	if cfg.UpstreamTimeout, prserr = duration("UPSTREAM_TIMEOUT", DefaultUpstreamTimeout); prserr != nil {
		return entity.Config{}, prserr
	}
	if cfg.PingInterval, prserr = duration("WS_PING_INTERVAL", DefaultPingInterval); prserr != nil {
		return entity.Config{}, prserr
	}
	if cfg.ShutdownTimeout, prserr = duration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout); prserr != nil {
		return entity.Config{}, prserr
	}
	return cfg, nil
}

// Warnings lists the degraded modes cfg will run in. None of them prevent boot.
func Warnings(cfg entity.Config) []string {
	var warnings []string
	if cfg.AgentID == "" {
		warnings = append(warnings, "ELEVENLABS_AGENT_ID is not set, /ws-signed-url will report a missing agent identifier")
	}
	if cfg.APIKey == "" {
		warnings = append(warnings, "ELEVENLABS_API_KEY is not set, /ws-signed-url will hand out the public agent URL")
	}
	if cfg.WebhookURL == "" {
		warnings = append(warnings, "EMAIL_WEBHOOK_URL is not set, email confirmations run in demo mode")
	}
	return warnings
}

// lookup returns the first non-empty value among the aliases.
func lookup(keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return ""
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func duration(key string, def time.Duration) (time.Duration, error) {
	raw := lookup(key)
	if raw == "" {
		return def, nil
	}
	d, prserr := time.ParseDuration(raw)
	if prserr != nil || d < 0 {
		return 0, fmt.Errorf("couldn't parse ENV: %s=%q", key, raw)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
