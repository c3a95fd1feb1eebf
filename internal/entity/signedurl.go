// Structure of the voice-agent session URL handed to browsers.

package entity

// SignedURLSourceFallback marks a public URL built locally.
const SignedURLSourceFallback = "fallback"

// SignedURLResponse is the outbound body of GET /ws-signed-url.
type SignedURLResponse struct {
	URL string `json:"url"`
	// Candidate endpoint which produced URL, or SignedURLSourceFallback.
	Source string `json:"source,omitempty"`
	Note   string `json:"note,omitempty"`
	Error  string `json:"error,omitempty"`
}
