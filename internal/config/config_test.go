package config

import (
	"Callboard/internal/entity"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every variable FromEnv reads, cleared before each test so the host environment can't leak in.
var knownKeys = []string{
	"ENV", "SRV_ADDR", "PORT", "SRV_PORT", "STATIC_DIR", "CORS_ORIGIN",
	"ELEVENLABS_API_KEY", "XI_API_KEY", "API_KEY", "ELEVENLABS_AGENT_ID", "AGENT_ID",
	"SIGNED_URL_ENDPOINTS", "PUBLIC_AGENT_WS_URL", "FAQ_URL", "FAQ_SOURCE_URL",
	"EMAIL_WEBHOOK_URL", "WEBHOOK_URL", "EMAIL_WEBHOOK_KEY", "WEBHOOK_KEY",
	"SENDER_EMAIL", "FROM_EMAIL", "UPSTREAM_TIMEOUT", "WS_PING_INTERVAL", "SHUTDOWN_TIMEOUT",
}

func clearEnv(t *testing.T) {
	for _, key := range knownKeys {
		t.Setenv(key, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultEnv, cfg.Env)
	assert.Equal(t, DefaultStaticDir, cfg.StaticDir)
	assert.Equal(t, DefaultSenderEmail, cfg.SenderEmail)
	assert.Equal(t, DefaultSignedURLEndpoints, cfg.SignedURLEndpoints)
	assert.Equal(t, DefaultUpstreamTimeout, cfg.UpstreamTimeout)
	assert.Empty(t, cfg.APIKey)
	assert.Empty(t, cfg.AgentID)
	assert.Len(t, Warnings(cfg), 3)
}

func TestFromEnvAliases(t *testing.T) {
	clearEnv(t)
	t.Setenv("SRV_PORT", "8080")
	t.Setenv("XI_API_KEY", "alias-key")
	t.Setenv("AGENT_ID", "agent-7")
	t.Setenv("FAQ_SOURCE_URL", "http://faq.local/items")
	t.Setenv("WEBHOOK_URL", "http://hooks.local/email")
	t.Setenv("WEBHOOK_KEY", "secret")
	t.Setenv("FROM_EMAIL", "desk@example.org")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "alias-key", cfg.APIKey)
	assert.Equal(t, "agent-7", cfg.AgentID)
	assert.Equal(t, "http://faq.local/items", cfg.FAQURL)
	assert.Equal(t, "http://hooks.local/email", cfg.WebhookURL)
	assert.Equal(t, "secret", cfg.WebhookKey)
	assert.Equal(t, "desk@example.org", cfg.SenderEmail)
	assert.Empty(t, Warnings(cfg))
}

func TestFromEnvPrimaryNameWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "4000")
	t.Setenv("SRV_PORT", "8080")
	t.Setenv("ELEVENLABS_AGENT_ID", "primary")
	t.Setenv("AGENT_ID", "alias")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "primary", cfg.AgentID)
}

func TestFromEnvSignedURLEndpointsList(t *testing.T) {
	clearEnv(t)
	t.Setenv("SIGNED_URL_ENDPOINTS", " http://a.local/one , ,http://b.local/two")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, []string{"http://a.local/one", "http://b.local/two"}, cfg.SignedURLEndpoints)
}

func TestFromEnvInvalidDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("UPSTREAM_TIMEOUT", "soon")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestLoadReadsEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("ELEVENLABS_AGENT_ID=from-file\nUPSTREAM_TIMEOUT=2s\n"), 0o600))
	// godotenv.Load never overrides variables that exist, even empty ones.
	require.NoError(t, os.Unsetenv("ELEVENLABS_AGENT_ID"))
	require.NoError(t, os.Unsetenv("UPSTREAM_TIMEOUT"))
	t.Cleanup(func() {
		os.Unsetenv("ELEVENLABS_AGENT_ID")
		os.Unsetenv("UPSTREAM_TIMEOUT")
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.AgentID)
	assert.Equal(t, 2*time.Second, cfg.UpstreamTimeout)
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}

func TestWarningsListDegradedModes(t *testing.T) {
	assert.Len(t, Warnings(entity.Config{}), 3)

	warnings := Warnings(entity.Config{AgentID: "agent_42", WebhookURL: "https://hooks.example.com/mail"})
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "ELEVENLABS_API_KEY")

	assert.Empty(t, Warnings(entity.Config{AgentID: "agent_42", APIKey: "key", WebhookURL: "https://hooks.example.com/mail"}))
}
