// Structure of Callboard process-wide configuration.

package entity

import "time"

// Config is read once at startup and only ever passed around by value.
type Config struct {
	// DEV or PROD, drives logger format and gin mode.
	Env string
	// Address and Port to be used by gin.
	Addr string
	Port string
	// Directory holding index.html, public and assets.
	StaticDir string
	// Allowed CORS origin.
	CORSOrigin string

	// Voice-agent credentials, both optional.
	APIKey  string
	AgentID string
	// Ordered signed URL candidate endpoints.
	SignedURLEndpoints []string
	// Base of the public conversation URL used when no signed URL can be obtained.
	PublicAgentURL string

	// Remote FAQ source, optional.
	FAQURL string

	// Email confirmation webhook, optional. Without a URL dispatch runs in demo mode.
	WebhookURL  string
	WebhookKey  string
	SenderEmail string

	// Timeout of every outbound call.
	UpstreamTimeout time.Duration
	// Interval of WebSocket keepalive pings, 0 disables them.
	PingInterval time.Duration
	// Time allowed for the graceful shutdown.
	ShutdownTimeout time.Duration
}
